package infrastructure

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/yourusername/mediaform/internal/domain"
)

// NotificationService sends desktop notifications when CLI downloads finish
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// Send sends a notification
func (n *NotificationService) Send(title, message string) error {
	if !n.config.Enabled {
		n.logger.Debug("Notifications disabled, skipping",
			zap.String("title", title))
		return nil
	}

	var cmd *exec.Cmd
	switch n.config.Method {
	case "osascript":
		script := fmt.Sprintf(`display notification %q with title %q`, message, title)
		cmd = exec.Command("osascript", "-e", script)
	case "notify-send":
		cmd = exec.Command("notify-send", title, message)
	default:
		n.logger.Warn("Unknown notification method", zap.String("method", n.config.Method))
		return nil
	}

	if err := cmd.Run(); err != nil {
		n.logger.Error("Failed to send notification",
			zap.String("method", n.config.Method),
			zap.Error(err))
		return err
	}

	return nil
}

// NotifyFileSaved sends a notification when a fetched file hits disk
func (n *NotificationService) NotifyFileSaved(filename string, platform domain.Platform) {
	n.Send("Download Ready", fmt.Sprintf("Saved %s (%s)", filename, platform))
}

// NotifyDownloadFailed sends a notification when a submission fails
func (n *NotificationService) NotifyDownloadFailed(url string, reason string) {
	n.Send("Download Failed", fmt.Sprintf("%s: %s", truncateString(url, 40), reason))
}

// truncateString truncates a string for notification display
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
