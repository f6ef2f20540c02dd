package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/mediaform/internal/domain"
	"github.com/yourusername/mediaform/internal/infrastructure"
)

// ErrSubmissionInFlight is returned when a submit or reset arrives while a
// request is already running. The in-flight request is never cancelled.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// unknownErrorMessage covers network failures and unparseable 2xx bodies
const unknownErrorMessage = "An unknown error occurred"

// FormController owns the submission state machine: idle, loading, success,
// error. It validates input, detects the platform for display, issues at
// most one API request at a time and records the outcome on its session.
type FormController struct {
	client domain.DownloadClient
	logger *zap.Logger

	mu      sync.Mutex
	session *domain.Session
}

// NewFormController creates a controller with a fresh idle session
func NewFormController(client domain.DownloadClient, logger *zap.Logger) *FormController {
	return &FormController{
		client:  client,
		logger:  logger,
		session: domain.NewSession(),
	}
}

// SetURL stores the raw input and returns the detected platform for the
// live chip. Detection never gates submission.
func (fc *FormController) SetURL(raw string) domain.Platform {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.session.URL = raw
	return domain.DetectPlatform(raw)
}

// Detect returns the platform for the current input
func (fc *FormController) Detect() domain.Platform {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return domain.DetectPlatform(fc.session.URL)
}

// Session returns a snapshot of the current session state
func (fc *FormController) Session() domain.Session {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	snapshot := *fc.session
	if fc.session.Result != nil {
		result := *fc.session.Result
		snapshot.Result = &result
	}
	return snapshot
}

// Submit runs the state machine for the current input. Empty input is
// silently ignored. Validation failures move to the error state without a
// network request. Valid input moves through loading to success or error
// depending on the API outcome.
func (fc *FormController) Submit(ctx context.Context) error {
	fc.mu.Lock()
	if fc.session.IsLoading() {
		fc.mu.Unlock()
		return ErrSubmissionInFlight
	}

	trimmed := strings.TrimSpace(fc.session.URL)
	if trimmed == "" {
		fc.session.MarkIdle()
		fc.mu.Unlock()
		return nil
	}

	if err := domain.ValidateURL(trimmed); err != nil {
		fc.session.MarkFailed(err.Error())
		fc.mu.Unlock()
		fc.logger.Debug("Rejected submission input", zap.Error(err))
		return err
	}

	submissionID := uuid.New().String()
	platform := domain.DetectPlatform(trimmed)
	fc.session.MarkLoading()
	fc.mu.Unlock()

	fc.logger.Info("Submitting download",
		zap.String("submission_id", submissionID),
		zap.String("url", trimmed),
		zap.String("platform", string(platform)))

	result, err := fc.client.Submit(ctx, trimmed)

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if err != nil {
		message := unknownErrorMessage
		var apiErr *infrastructure.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Error()
		}
		fc.session.MarkFailed(message)
		fc.logger.Warn("Submission failed",
			zap.String("submission_id", submissionID),
			zap.Error(err))
		return err
	}

	fc.session.MarkSuccess(result)
	fc.logger.Info("Submission succeeded",
		zap.String("submission_id", submissionID),
		zap.String("filename", result.Filename),
		zap.String("download_url", result.DownloadURL))
	return nil
}

// Reset returns the session to idle with url, result and error cleared. It
// is rejected while a submission is in flight; the loading view offers no
// reset path.
func (fc *FormController) Reset() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.session.IsLoading() {
		return ErrSubmissionInFlight
	}
	fc.session.Reset()
	return nil
}

// DownloadLink returns the absolute link to the produced file, or "" when
// the session is not in the success state
func (fc *FormController) DownloadLink() string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.session.Status != domain.StatusSuccess || fc.session.Result == nil {
		return ""
	}
	return fc.client.FileURL(fc.session.Result.DownloadURL)
}
