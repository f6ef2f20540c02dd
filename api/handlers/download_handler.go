package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/mediaform/internal/domain"
	"github.com/yourusername/mediaform/internal/infrastructure"
)

// DownloadHandler relays submissions to the download API after applying
// the same validation the form controller uses
type DownloadHandler struct {
	client *infrastructure.APIClient
	logger *zap.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(client *infrastructure.APIClient, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		client: client,
		logger: logger,
	}
}

// SubmitRequest represents a request to submit a URL for download
type SubmitRequest struct {
	URL string `json:"url" binding:"required"`
}

// Submit handles POST /api/download
func (h *DownloadHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "url is required"})
		return
	}

	trimmed := strings.TrimSpace(req.URL)
	if err := domain.ValidateURL(trimmed); err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "url is required"})
			return
		}
		// Rejected input never reaches the upstream API
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.client.Submit(c.Request.Context(), trimmed)
	if err != nil {
		var apiErr *infrastructure.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"detail": apiErr.Error()})
			return
		}
		h.logger.Error("Failed to reach download API", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"detail": "An unknown error occurred"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DetectResponse carries the platform name for the live chip
type DetectResponse struct {
	Platform domain.Platform `json:"platform"`
}

// Detect handles GET /api/detect?url=
func (h *DownloadHandler) Detect(c *gin.Context) {
	c.JSON(http.StatusOK, DetectResponse{
		Platform: domain.DetectPlatform(c.Query("url")),
	})
}

// File handles GET /files/*filepath by streaming the produced file from
// the download API
func (h *DownloadHandler) File(c *gin.Context) {
	downloadURL := "/files" + c.Param("filepath")

	body, info, err := h.client.OpenFile(c.Request.Context(), downloadURL)
	if err != nil {
		var apiErr *infrastructure.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"detail": apiErr.Error()})
			return
		}
		h.logger.Error("Failed to fetch file", zap.String("path", downloadURL), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"detail": "An unknown error occurred"})
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, info.ContentLength, info.ContentType, body, nil)
}
