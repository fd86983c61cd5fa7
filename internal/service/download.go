package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ImageDownloader retrieves result images over plain HTTP.
// It implements the domain.Downloader interface.
type ImageDownloader struct {
	httpClient *http.Client
}

// NewImageDownloader creates a new downloader using the given HTTP client.
// A nil client falls back to http.DefaultClient.
func NewImageDownloader(httpClient *http.Client) *ImageDownloader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ImageDownloader{httpClient: httpClient}
}

// Fetch downloads the full byte payload behind the given URL
func (d *ImageDownloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
