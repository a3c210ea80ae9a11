package codereadr

import "time"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient HTTPClient
	baseURL    string
	timeout    time.Duration
	userAgent  string
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
}

// WithHTTPClient sets the HTTP client used to send requests.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It is ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}
