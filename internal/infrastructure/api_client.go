package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/mediaform/internal/domain"
)

// APIError represents a non-2xx response from the download API. Its
// message is the extracted detail when the body carried one, otherwise a
// generic "Server error {status}".
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("Server error %d", e.StatusCode)
}

// FileInfo describes the file behind a download link
type FileInfo struct {
	ContentType   string
	ContentLength int64
}

// APIClient talks to the upstream download API
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPIClient creates a client for the download API. The base URL is
// stored without a trailing slash.
func NewAPIClient(config *domain.APIConfig, logger *zap.Logger) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the API base without a trailing slash
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

type downloadRequest struct {
	URL string `json:"url"`
}

// Submit issues exactly one POST /api/download for the given URL
func (c *APIClient) Submit(ctx context.Context, rawURL string) (*domain.DownloadResult, error) {
	payload, err := json.Marshal(downloadRequest{URL: rawURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/download", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &errBody) == nil && errBody.Detail != "" {
			apiErr.Detail = errBody.Detail
		}
		c.logger.Warn("Download API rejected submission",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail))
		return nil, apiErr
	}

	var result domain.DownloadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result.DownloadURL == "" || result.Filename == "" {
		return nil, fmt.Errorf("malformed response: missing filename or download_url")
	}

	return &result, nil
}

// FileURL joins a returned download path with the API base
func (c *APIClient) FileURL(downloadURL string) string {
	if downloadURL == "" {
		return ""
	}
	if !strings.HasPrefix(downloadURL, "/") {
		downloadURL = "/" + downloadURL
	}
	return c.baseURL + downloadURL
}

// OpenFile opens the produced file for streaming. The caller owns the
// returned reader.
func (c *APIClient) OpenFile(ctx context.Context, downloadURL string) (io.ReadCloser, *FileInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FileURL(downloadURL), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, nil, &APIError{StatusCode: resp.StatusCode}
	}

	info := &FileInfo{
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}
	if info.ContentType == "" {
		info.ContentType = "application/octet-stream"
	}

	return resp.Body, info, nil
}

// FetchFile downloads the produced file into w and returns the bytes written
func (c *APIClient) FetchFile(ctx context.Context, downloadURL string, w io.Writer) (int64, error) {
	body, _, err := c.OpenFile(ctx, downloadURL)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("failed to fetch file: %w", err)
	}
	return n, nil
}

// Ping probes the API base for readiness checks. Any HTTP response counts
// as reachable.
func (c *APIClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download API unreachable: %w", err)
	}
	resp.Body.Close()

	return nil
}
