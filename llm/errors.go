package llm

import (
	"errors"
	"fmt"
)

// ErrNoChoices is returned when a 200 reply carries an empty choices array
var ErrNoChoices = errors.New("response contained no choices")

// StatusError is returned for any non-200 reply from the chat-completion endpoint
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("Error: %d, %s", e.StatusCode, body)
}

// IsStatusError checks if an error is a StatusError
func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
