package judicial

import "net/http"

// FetchAction is the outcome of classifying an upstream HTTP status.
type FetchAction int

const (
	// FetchDone: the page body is usable.
	FetchDone FetchAction = iota
	// FetchRetry: throttled; re-issue the same page after a pause.
	FetchRetry
	// FetchFatal: terminal status; the run cannot continue.
	FetchFatal
)

// ClassifyStatus maps an upstream HTTP status to the action the fetch loop
// takes. Pure function; the transport never sees it.
func ClassifyStatus(status int) FetchAction {
	switch {
	case status >= 200 && status < 300:
		return FetchDone
	case status == http.StatusTooManyRequests:
		return FetchRetry
	default:
		return FetchFatal
	}
}
