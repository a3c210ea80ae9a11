package codereadr

import (
	"context"
	"net/http"
	"net/url"
)

// HTTPClient sends a single HTTP request. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// API defines the interface for CodeReadr operations
type API interface {
	// Request executes a section/action call and returns the parsed document
	Request(ctx context.Context, section Section, action Action, params url.Values) (*Response, error)

	// Ping verifies the API key is accepted
	Ping(ctx context.Context) error
}

var _ API = (*Client)(nil)
