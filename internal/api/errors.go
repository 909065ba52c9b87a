package api

import (
	"errors"
	"fmt"
	"net/http"
)

// FallbackMessage is shown when a failure carries no server message.
const FallbackMessage = "Something went wrong"

// ErrSessionExpired matches (via errors.Is) a 401 returned for a request that
// carried a bearer token.
var ErrSessionExpired = errors.New("session expired")

// NetworkError means no response was received: dial failure, timeout or a
// cancelled context.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response, or a 2xx envelope with success=false.
type ServerError struct {
	Status  int
	Message string
	// SessionExpired is set for 401s on authenticated requests.
	SessionExpired bool
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("server error: %d %s", e.Status, e.Message)
}

func (e *ServerError) Is(target error) bool {
	return target == ErrSessionExpired && e.SessionExpired
}

// DecodeError means a response arrived but its body was not a valid envelope
// for the expected type.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Message returns the text to show the user for err: the server's message
// when there is one, FallbackMessage otherwise.
func Message(err error) string {
	return MessageOr(err, FallbackMessage)
}

// MessageOr is Message with a caller-chosen fallback.
func MessageOr(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

// StatusCode returns the HTTP status of a ServerError, 0 for anything else.
func StatusCode(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
