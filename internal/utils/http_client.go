package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. Embedding *resty.Client
// exposes its full API while leaving room for application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with a default-configured underlying
// resty.Client. Each call returns an independent client with its own
// connection pool and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
