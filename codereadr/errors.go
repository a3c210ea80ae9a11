package codereadr

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEmptyResponse indicates the response body held no XML root element
	ErrEmptyResponse = errors.New("codereadr: empty response document")
	// ErrTrailingContent indicates more than one root element or text outside it
	ErrTrailingContent = errors.New("codereadr: extra content at the end of the document")
	// ErrResponseTooLarge indicates the response body exceeded the read limit
	ErrResponseTooLarge = errors.New("codereadr: response too large")
)

// APIError is returned when CodeReadr answers a request with a status other
// than 1. The HTTP exchange itself succeeded.
type APIError struct {
	Section Section
	Action  Action
	Status  int
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("codereadr: API error (status %d) for %s/%s", e.Status, e.Section, e.Action)
	}
	return fmt.Sprintf("codereadr: API error: %s", e.Message)
}

// StatusError reports a non-2xx HTTP response. CodeReadr itself answers 200
// even on failure, so these come from proxies or outages.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("codereadr: unexpected HTTP status %d: %s", e.StatusCode, e.Body)
}

// ParseError wraps a failure to decode the response body as XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codereadr: parsing response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err carries an application-level failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
