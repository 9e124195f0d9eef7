package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/internal/application/adapter"
)

func TestResendClient_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer server.Close()

	client, err := NewResendClient("re_test", "Rental Desk", "stays@example.com", "host@example.com", server.URL)
	require.NoError(t, err)

	result, err := client.Send(context.Background(), adapter.SendEmailInput{
		To:      "guest@example.com",
		Subject: "Your stay at Casa Azul is confirmed",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "msg_123", result.ProviderID)
	assert.Equal(t, "Rental Desk <stays@example.com>", received["from"])
	assert.Equal(t, "Your stay at Casa Azul is confirmed", received["subject"])
	assert.Equal(t, []any{"guest@example.com"}, received["to"])
}

func TestResendClient_InvalidBaseURL(t *testing.T) {
	_, err := NewResendClient("re_test", "Rental Desk", "stays@example.com", "", "://bad")
	assert.Error(t, err)
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"422 validation_error: invalid to address", true},
		{"401 unauthorized", true},
		{"429 rate limit exceeded", false},
		{"500 internal server error", false},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, isPermanentError(assertErr(tt.msg)))
		})
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
