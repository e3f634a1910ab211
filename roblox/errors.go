package roblox

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the Roblox API clients. Every non-200
// response maps to exactly one of these through an *APIError.
var (
	// ErrNotFound indicates the requested resource does not exist (404).
	ErrNotFound = errors.New("resource not found")
	// ErrBadRequest indicates an invalid or malformed request (400).
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized indicates authentication is required (401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited indicates the API rate limit was exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrServer indicates a Roblox internal server error (500).
	ErrServer = errors.New("roblox internal server error")
	// ErrUnexpectedStatus indicates a status code outside the known set.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrTransport wraps connection failures, timeouts and response
	// bodies that fail to decode. These never carry an HTTP status.
	ErrTransport = errors.New("transport failure")
)

// Search endpoints signal rejected terms through a numeric sub-code in
// the 400 response body. The sub-code table applies only to search.
var (
	// ErrSearchTermInappropriate is returned for sub-code 2.
	ErrSearchTermInappropriate = errors.New("search term is not appropriate for Roblox")
	// ErrSearchTermEmpty is returned for sub-code 3.
	ErrSearchTermEmpty = errors.New("search term is empty")
	// ErrSearchTermLength is returned for sub-code 4.
	ErrSearchTermLength = errors.New("search term length is out of range")
	// ErrSearchTermFiltered is returned for sub-code 5.
	ErrSearchTermFiltered = errors.New("search term was filtered")
	// ErrSearchTermTooShort is returned for sub-code 6.
	ErrSearchTermTooShort = errors.New("search term is too short")
)

// APIError is the error returned for any non-200 response.
type APIError struct {
	StatusCode int
	Code       int // Roblox error sub-code, populated for search 400s only
	Message    string
	kind       error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("roblox API error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap exposes the sentinel matching the status code so callers can
// branch with errors.Is.
func (e *APIError) Unwrap() error {
	return e.kind
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited checks if the error indicates a 429 response.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// statusError maps a non-200 status code to its error kind.
func statusError(status int, _ []byte) error {
	var kind error
	switch status {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusTooManyRequests:
		kind = ErrRateLimited
	case http.StatusInternalServerError:
		kind = ErrServer
	default:
		kind = ErrUnexpectedStatus
	}

	return &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		kind:       kind,
	}
}

// errorBody is the envelope Roblox wraps request errors in.
type errorBody struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// searchError maps 400 responses from the search endpoints through the
// term sub-code table. Unrecognized sub-codes and unparseable bodies
// fall back to the generic bad-request kind; every other status goes
// through statusError unchanged.
func searchError(status int, body []byte) error {
	if status != http.StatusBadRequest {
		return statusError(status, body)
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Errors) == 0 {
		return statusError(status, body)
	}

	first := parsed.Errors[0]
	kind := ErrBadRequest
	switch first.Code {
	case 2:
		kind = ErrSearchTermInappropriate
	case 3:
		kind = ErrSearchTermEmpty
	case 4:
		kind = ErrSearchTermLength
	case 5:
		kind = ErrSearchTermFiltered
	case 6:
		kind = ErrSearchTermTooShort
	}

	return &APIError{
		StatusCode: status,
		Code:       first.Code,
		Message:    first.Message,
		kind:       kind,
	}
}

func transportError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
