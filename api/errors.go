package api

import (
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
)

// ErrSessionExpired is returned by authenticated calls that got a 401. By the
// time it is returned the session has been cleared and the expiry handler run.
var ErrSessionExpired = apperrors.ErrSessionExpired

// RequestFailedError is a response with a non-success status. Body holds the
// raw response text for display.
type RequestFailedError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.URL, e.Status, http.StatusText(e.Status), e.Body)
}

// TransportError covers failures to reach the API or to read its answer,
// including success responses whose body is not JSON.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the HTTP status from a RequestFailedError in err's chain.
func StatusCode(err error) (int, bool) {
	var rf *RequestFailedError
	if apperrors.As(err, &rf) {
		return rf.Status, true
	}
	return 0, false
}
