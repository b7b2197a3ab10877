package utils

import "github.com/go-resty/resty/v2"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// Embedding *resty.Client exposes the full resty API while letting the
// application add helpers without modifying the upstream type.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with default
// resty settings. Base URL, timeouts and headers are configured by the
// caller.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
