package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RemoteError is returned for any non-2xx backend response or transport
// failure. StatusCode is zero when the request never produced a response.
type RemoteError struct {
	StatusCode int
	cause      error
}

func (e *RemoteError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("API error: %v", e.cause)
	}
	return fmt.Sprintf("API error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *RemoteError) Unwrap() error {
	return e.cause
}

// IsRemote reports whether err originates from the backend or the
// transport, as opposed to a local validation problem.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
