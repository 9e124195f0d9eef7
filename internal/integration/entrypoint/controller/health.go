package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	database Pinger
	redis    Pinger
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller. redis may be nil.
func NewHealthController(database, redis Pinger) *HealthController {
	return &HealthController{database: database, redis: redis}
}

// Check handles GET /health. A down database degrades the status to 503;
// Redis is optional and only reported.
func (h *HealthController) Check(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "ok",
		Database:  probe(pingCtx, h.database),
		Redis:     probe(pingCtx, h.redis),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if resp.Database != "connected" {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}

func probe(ctx context.Context, ping Pinger) string {
	if ping == nil {
		return "disabled"
	}
	if err := ping(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}
