package domain

import "context"

// DownloadClient submits URLs to the download API and resolves the
// links it returns
type DownloadClient interface {
	// Submit issues exactly one request for the given URL and returns the
	// parsed payload, or an error per the taxonomy in the api client.
	Submit(ctx context.Context, url string) (*DownloadResult, error)

	// FileURL joins a returned download path with the API base
	FileURL(downloadURL string) string
}
