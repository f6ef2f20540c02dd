package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/mediaform/internal/app"
	"github.com/yourusername/mediaform/internal/domain"
)

// ThemeHandler exposes the persisted theme preference
type ThemeHandler struct {
	themes *app.ThemeManager
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themes *app.ThemeManager) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// ThemeResponse carries the active theme
type ThemeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// Get handles GET /api/theme
func (h *ThemeHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeResponse{Theme: h.themes.Current()})
}

// SetThemeRequest represents a request to change the theme
type SetThemeRequest struct {
	Theme domain.Theme `json:"theme" binding:"required"`
}

// Set handles PUT /api/theme
func (h *ThemeHandler) Set(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "theme is required"})
		return
	}

	theme, err := h.themes.Set(req.Theme)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Theme: theme})
}

// Toggle handles POST /api/theme/toggle
func (h *ThemeHandler) Toggle(c *gin.Context) {
	theme, err := h.themes.Toggle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Theme: theme})
}
