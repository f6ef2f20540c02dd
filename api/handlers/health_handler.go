package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/mediaform/internal/infrastructure"
)

// Version is the reported application version
const Version = "1.0.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	client *infrastructure.APIClient
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(client *infrastructure.APIClient) *HealthHandler {
	return &HealthHandler{client: client}
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	API     string `json:"api"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
		API:     h.client.BaseURL(),
	})
}

// Ready handles GET /ready; the front-end is ready when the download API
// answers at all
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.client.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
