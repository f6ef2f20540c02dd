package api

import (
	"io"
	"io/fs"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/mediaform/api/handlers"
	"github.com/yourusername/mediaform/api/middleware"
	"github.com/yourusername/mediaform/internal/app"
	"github.com/yourusername/mediaform/internal/infrastructure"
	"github.com/yourusername/mediaform/web"
)

// SetupRouter sets up the HTTP router: the JSON relay endpoints plus the
// embedded form page
func SetupRouter(client *infrastructure.APIClient, themes *app.ThemeManager, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(client)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Form endpoints
	downloadHandler := handlers.NewDownloadHandler(client, log)
	router.POST("/api/download", downloadHandler.Submit)
	router.GET("/api/detect", downloadHandler.Detect)
	router.GET("/files/*filepath", downloadHandler.File)

	// Theme endpoints
	themeHandler := handlers.NewThemeHandler(themes)
	router.GET("/api/theme", themeHandler.Get)
	router.PUT("/api/theme", themeHandler.Set)
	router.POST("/api/theme/toggle", themeHandler.Toggle)

	// Serve the embedded form page
	staticFS := web.GetStaticFS()

	router.GET("/", func(c *gin.Context) {
		serveFile(c, staticFS, "index.html")
	})

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path

		// Don't serve the page for API routes
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/files/") {
			c.JSON(404, gin.H{"detail": "not found"})
			return
		}

		filePath := strings.Trim(path, "/")
		if filePath == "" {
			filePath = "index.html"
		}

		if _, err := fs.Stat(staticFS, filePath); err != nil {
			// Fall back to the form page for unknown paths
			filePath = "index.html"
		}

		serveFile(c, staticFS, filePath)
	})

	return router
}

// serveFile serves a file from the embedded filesystem with a content type
// derived from its extension
func serveFile(c *gin.Context, staticFS fs.FS, filePath string) {
	file, err := staticFS.Open(filePath)
	if err != nil {
		c.String(404, "File not found: %v", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.String(500, "Failed to read file: %v", err)
		return
	}

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(filePath, ".html"):
		contentType = "text/html; charset=utf-8"
	case strings.HasSuffix(filePath, ".css"):
		contentType = "text/css; charset=utf-8"
	case strings.HasSuffix(filePath, ".js"):
		contentType = "application/javascript; charset=utf-8"
	case strings.HasSuffix(filePath, ".svg"):
		contentType = "image/svg+xml"
	case strings.HasSuffix(filePath, ".png"):
		contentType = "image/png"
	}

	c.Data(200, contentType, content)
}
