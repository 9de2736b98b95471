package judicial

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrFeedUnavailable signals a transport-level failure reaching the
	// people feed, as opposed to an HTTP error status.
	ErrFeedUnavailable = errors.New("people feed unreachable")

	// ErrMalformedPage signals a page whose body, results or pagination
	// block cannot be decoded. Run-fatal: without pagination the loop
	// cannot safely continue.
	ErrMalformedPage = errors.New("malformed people feed page")

	ErrPersonNotFound = errors.New("person not found")
)

// FeedStatusError is a terminal upstream HTTP status, classified into a
// per-code operator message.
type FeedStatusError struct {
	Status  int
	Message string
}

func (e *FeedStatusError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func NewFeedStatusError(status int) *FeedStatusError {
	return &FeedStatusError{Status: status, Message: feedStatusMessage(status)}
}

func feedStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "people feed rejected the request as malformed"
	case http.StatusUnauthorized:
		return "people feed authentication failed"
	case http.StatusForbidden:
		return "access to the people feed is forbidden"
	case http.StatusNotFound:
		return "people feed resource not found"
	case http.StatusTooManyRequests:
		return "people feed request limit exceeded"
	default:
		return "people feed returned an unexpected error"
	}
}
