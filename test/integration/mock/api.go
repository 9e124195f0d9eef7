package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock stands in for a third-party HTTP API. It records every request
// body by method and path and answers with the configured response.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]map[string]any
	responses map[string]cannedResponse
}

type cannedResponse struct {
	status int
	body   any
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]map[string]any{},
		responses: map[string]cannedResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	a.mu.Lock()
	a.requests[key] = append(a.requests[key], request)
	resp, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusOK, body: map[string]any{}}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}

// SetResponse fixes the answer for every request to method and path.
func (a *ApiMock) SetResponse(method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = cannedResponse{status: status, body: response}
}

// GetRequests returns the bodies received on method and path, oldest first.
func (a *ApiMock) GetRequests(method, path string) []map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]map[string]any, len(a.requests[method+path]))
	copy(out, a.requests[method+path])
	return out
}

// Reset forgets recorded requests and configured responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]map[string]any{}
	a.responses = map[string]cannedResponse{}
}
