package apiclient

import (
	"context"
	"io"
)

// API is the JSON surface feature repositories depend on; *Client satisfies it.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var _ API = (*Client)(nil)

// Uploader sends a single file as multipart/form-data.
type Uploader interface {
	Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error
}

// Fetcher returns a raw body and its content type.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, string, error)
}

var (
	_ Uploader = (*Client)(nil)
	_ Fetcher  = (*Client)(nil)
)
