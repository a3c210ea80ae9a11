package codereadr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the CodeReadr API endpoint
	DefaultBaseURL = "https://api.codereadr.com/api/"
	// DefaultTimeout applies to the default HTTP client
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent unless overridden with WithUserAgent
	DefaultUserAgent = "codereadr-go/1.0"

	maxBodySize      = 10 * 1024 * 1024 // 10MB
	maxErrorBodySize = 512
)

// Client represents a CodeReadr API client
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient HTTPClient
	logger     zerolog.Logger
}

// NewClient creates a new CodeReadr client. The API key is sent as is and
// only checked by the server. Pass zerolog.Nop() to disable logging.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
		logger.Debug().
			Dur("timeout", options.timeout).
			Msg("No HTTP client supplied, using default net/http client")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    options.baseURL,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}
}

// BaseURL returns the endpoint requests are posted to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request posts a section/action call and returns the parsed document.
//
// Caller params are applied after api_key, section and action, so a caller
// key with one of those names replaces the client's value.
//
// A document whose status is not 1 is returned as *APIError, also when it
// arrives with a non-2xx HTTP code. Transport failures, other non-2xx
// responses and malformed XML are returned as their own error kinds and
// never as *APIError.
func (c *Client) Request(ctx context.Context, section Section, action Action, params url.Values) (*Response, error) {
	form := buildForm(c.apiKey, section, action, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("section", string(section)).
		Str("action", string(action)).
		Int("params", len(params)).
		Msg("Making CodeReadr API request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > maxBodySize {
		return nil, ErrResponseTooLarge
	}

	var doc *Response
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A CodeReadr document is honored whatever the HTTP code
		doc, err = ParseResponse(body)
		if err != nil || !doc.hasStatus() {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBodySize)}
		}
	} else {
		doc, err = ParseResponse(body)
		if err != nil {
			return nil, err
		}
	}

	status := doc.Status()
	c.logger.Debug().
		Str("section", string(section)).
		Str("action", string(action)).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("Received CodeReadr API response")

	if status != statusSuccess {
		return nil, &APIError{
			Section: section,
			Action:  action,
			Status:  status,
			Message: doc.ErrorMessage(),
		}
	}

	return doc, nil
}

// Ping verifies the API key by retrieving users
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Request(ctx, SectionUsers, ActionRetrieve, nil)
	return err
}

// buildForm merges the reserved fields with caller params. Caller params
// win on collision.
func buildForm(apiKey string, section Section, action Action, params url.Values) url.Values {
	form := url.Values{
		FieldAPIKey:  {apiKey},
		FieldSection: {string(section)},
		FieldAction:  {string(action)},
	}
	for key, values := range params {
		form[key] = append([]string(nil), values...)
	}
	return form
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
