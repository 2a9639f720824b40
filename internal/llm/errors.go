package llm

import (
	"errors"
	"fmt"
)

// ErrMissingResponse reports a payload that decoded as JSON but carries no
// generated-text field (e.g. an unexpected server version).
var ErrMissingResponse = errors.New("unexpected API response format: no response field")

// ConnectError wraps transport-level failures reaching the inference server.
type ConnectError struct {
	Endpoint string
	Timeout  bool
	Err      error
}

func (e *ConnectError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request to %s timed out, the server might be overloaded", e.Endpoint)
	}
	return fmt.Sprintf("could not connect to %s (is the server running?): %v", e.Endpoint, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// ServerError reports a non-success HTTP status or an unusable body.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned HTTP %d: %s", e.StatusCode, e.Message)
}
