package client

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// APIError is a non-2xx response. Message is the body's message field when the
// server sent one, otherwise the status reason phrase.
type APIError struct {
	StatusCode int
	Message    string
	Body       *Response
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches another *APIError with the same status code, so callers can test
// errors.Is(err, &client.APIError{StatusCode: http.StatusNotFound}).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.StatusCode == e.StatusCode
}

func newAPIError(res *http.Response, body *Response) *APIError {
	message := body.message()
	if message == "" {
		message = reasonPhrase(res)
	}
	return &APIError{
		StatusCode: res.StatusCode,
		Message:    message,
		Body:       body,
	}
}

func reasonPhrase(res *http.Response) string {
	if phrase := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode))); phrase != "" {
		return phrase
	}
	if phrase := http.StatusText(res.StatusCode); phrase != "" {
		return phrase
	}
	return fmt.Sprintf("status %d", res.StatusCode)
}
