package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/mediaform/api"
	"github.com/yourusername/mediaform/internal/app"
	"github.com/yourusername/mediaform/internal/infrastructure"
	"github.com/yourusername/mediaform/pkg/logger"
)

var configPath = flag.String("config", "", "Path to config file")

func main() {
	flag.Parse()

	// Load configuration
	config, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		OutputPath: config.Logging.OutputPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting mediaform server",
		zap.String("host", config.Server.Host),
		zap.Int("port", config.Server.Port),
		zap.String("api_base", config.API.BaseURL))

	// Initialize preference store
	if err := os.MkdirAll(filepath.Dir(config.Preferences.DatabasePath), 0755); err != nil {
		log.Fatal("Failed to create preferences directory", zap.Error(err))
	}
	prefs, err := infrastructure.NewSQLitePreferenceRepository(config.Preferences.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize preference store", zap.Error(err))
	}
	defer prefs.Close()

	// Theme preference is read once here and written back on every toggle
	themes := app.NewThemeManager(prefs, log)

	// Initialize download API client
	client := infrastructure.NewAPIClient(&config.API, log)

	// Setup HTTP router
	router := api.SetupRouter(client, themes, log)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("HTTP server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
