package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultFetchTimeout bounds a single document download.
const defaultFetchTimeout = 30 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	body, err := client.FetchDocument(ctx, "https://example.com/egg.yaml")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a bounded timeout and a single retry.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetTimeout(defaultFetchTimeout).
		SetRetryCount(1)
	return &HTTPClient{Client: client}
}

// FetchDocument downloads the body found at url.
// Any non-2xx response is reported as an error.
func (c *HTTPClient) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching %s: unexpected status %s", url, resp.Status())
	}

	return resp.Body(), nil
}
