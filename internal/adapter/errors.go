package adapter

import (
	"errors"
	"net/http"
)

// Error is a server-side failure as seen by the client: the HTTP status
// code plus the user-facing message from the JSON {"message"} body.
type Error struct {
	StatusCode int
	Message    string
}

// Error returns the server-provided message verbatim, so err.Error() can be
// shown to the end user without translation.
func (e *Error) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a server rejection with HTTP 401,
// which the client treats as "session expired, log in again".
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
