package skribble

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-expected status answered by a business endpoint. Token
// acquisition failures keep their own types (*auth.AuthenticationError,
// *auth.NetworkError) and pass through untouched.
type APIError struct {
	StatusCode int
	Message    string
	// Body is the raw response payload, kept for callers that need more than
	// the extracted message.
	Body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("skribble api request failed: status %d: %s", e.StatusCode, e.Message)
}

// failureMessage pulls a human-readable reason out of an error response,
// preferring the JSON message/error fields over the raw body.
func failureMessage(body []byte) string {
	var fields struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &fields); err == nil {
		if fields.Message != "" {
			return fields.Message
		}
		if fields.Error != "" {
			return fields.Error
		}
	}
	return strings.TrimSpace(string(body))
}
