package auth

import "fmt"

// AuthenticationError reports a login the Skribble API rejected. It carries
// the upstream status code and message and is not retried automatically.
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("skribble login failed: status %d: %s", e.StatusCode, e.Message)
}

// NetworkError reports a transport failure talking to the login endpoint
// (timeout, DNS, connection refused). Retrying is a caller decision.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("skribble login endpoint unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
