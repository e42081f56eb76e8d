// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports service liveness and database reachability.
type HealthController struct {
	checkDatabase func() bool
	startedAt     time.Time
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	UptimeSec int64  `json:"uptime_seconds"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(checkDatabase func() bool) *HealthController {
	return &HealthController{
		checkDatabase: checkDatabase,
		startedAt:     time.Now().UTC(),
	}
}

// Check handles GET /health requests. The endpoint always answers 200; a
// broken database shows up in the body so load balancers keep routing while
// operators see the degradation.
func (h *HealthController) Check(c *gin.Context) {
	database := "disconnected"
	if h.checkDatabase != nil && h.checkDatabase() {
		database = "connected"
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  database,
		UptimeSec: int64(now.Sub(h.startedAt).Seconds()),
		Timestamp: now.Format(time.RFC3339),
	})
}
