package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Sentinel errors for the failure classes callers react to.
var (
	ErrNotFound     = errors.New("user not found")
	ErrRateLimited  = errors.New("API rate limit exceeded, please try again later")
	ErrUnauthorized = errors.New("invalid authentication token")
	ErrAPI          = errors.New("GitHub API error")
)

// APIError is a GitHub API failure with its HTTP status.
// It unwraps to one of the sentinel errors above.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string { return e.Message }

// Unwrap returns the sentinel describing the failure class.
func (e *APIError) Unwrap() error { return e.kind }

// newAPIError maps an HTTP status code to a typed error.
func newAPIError(status int) *APIError {
	switch status {
	case http.StatusNotFound:
		return &APIError{Status: status, Message: ErrNotFound.Error(), kind: ErrNotFound}
	case http.StatusForbidden, http.StatusTooManyRequests:
		return &APIError{Status: status, Message: ErrRateLimited.Error(), kind: ErrRateLimited}
	case http.StatusUnauthorized:
		return &APIError{Status: status, Message: ErrUnauthorized.Error(), kind: ErrUnauthorized}
	default:
		return &APIError{
			Status:  status,
			Message: fmt.Sprintf("%s: %s", ErrAPI.Error(), http.StatusText(status)),
			kind:    ErrAPI,
		}
	}
}

// classify turns a go-github error into an *APIError when the response
// carried a status code. Transport failures are wrapped with op and returned as is.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return newAPIError(http.StatusForbidden)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return newAPIError(http.StatusForbidden)
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return newAPIError(respErr.Response.StatusCode)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// classifyGraphQL maps GraphQL failures onto the same errors as REST.
// The GraphQL client reports HTTP statuses and query errors only as text.
func classifyGraphQL(op string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Could not resolve to a User"):
		return newAPIError(http.StatusNotFound)
	case strings.Contains(msg, "status code: 401"):
		return newAPIError(http.StatusUnauthorized)
	case strings.Contains(msg, "status code: 403"), strings.Contains(msg, "status code: 429"):
		return newAPIError(http.StatusForbidden)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
