package yt2alt

import (
	"yt2alt/internal/httpx"
	"yt2alt/internal/retry"
	"yt2alt/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, yt2alt.ErrNotSignedIn) {
//		fmt.Println("Sign in first")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var httpErr *yt2alt.HTTPError
//	if errors.As(err, &httpErr) {
//		fmt.Printf("Request failed with status %d\n", httpErr.StatusCode)
//	}

// Type aliases for convenient error handling.
type (
	// HTTPError reports a non-success HTTP status from YouTube or an
	// Invidious server.
	HTTPError = httpx.HTTPError
	// RetryableError wraps errors that occurred after retries were exhausted.
	RetryableError = retry.RetryableError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrNotSignedIn indicates the operation needs a signed-in session.
	ErrNotSignedIn = youtube.ErrNotSignedIn
	// ErrUnsupportedCollection indicates the access method cannot read
	// the requested collection. The Data API cannot read watch history,
	// watch later, or recommendations.
	ErrUnsupportedCollection = youtube.ErrUnsupportedCollection
	// ErrEmptyResponse indicates YouTube returned a response with no
	// usable content.
	ErrEmptyResponse = youtube.ErrEmptyResponse
)

// IsRetryable determines if an error should be retried.
// It returns false for permanent errors like authorization failures.
func IsRetryable(err error) bool {
	return retry.IsRetryable(err)
}
