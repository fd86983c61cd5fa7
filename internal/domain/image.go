package domain

import "context"

// Icifier turns raw photo bytes into a URL of the transformed image
type Icifier interface {
	Icify(ctx context.Context, raw []byte) (string, error)
}

// Downloader retrieves the bytes behind a result URL
type Downloader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
