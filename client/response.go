package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rayaboutique242-create/raya-console/internal/errors"
)

// Kind tags the shape of a response body.
type Kind int

const (
	KindEmpty Kind = iota // 204 or an empty body
	KindJSON              // body parsed as JSON
	KindText              // body that is not JSON
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindJSON:
		return "json"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Response is a successful or failed API response body. Exactly one of JSON and
// Text is set, according to Kind.
type Response struct {
	StatusCode int
	Kind       Kind
	JSON       json.RawMessage
	Text       string
}

func newResponse(statusCode int, body []byte) *Response {
	res := &Response{StatusCode: statusCode}
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
		res.Kind = KindEmpty
	case json.Valid(trimmed):
		res.Kind = KindJSON
		res.JSON = json.RawMessage(trimmed)
	default:
		res.Kind = KindText
		res.Text = string(body)
	}
	return res
}

func (r *Response) IsEmpty() bool {
	return r == nil || r.Kind == KindEmpty
}

// Decode unmarshals a JSON body into v.
func (r *Response) Decode(v any) error {
	if r == nil || r.Kind != KindJSON {
		kind := KindEmpty
		if r != nil {
			kind = r.Kind
		}
		return fmt.Errorf("%w: cannot decode %s body", errors.ErrInvalidResponse, kind)
	}
	if err := json.Unmarshal(r.JSON, v); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidResponse, err)
	}
	return nil
}

// message extracts the server-provided error message of a JSON body. Validation
// failures may report a list of messages, which are joined.
func (r *Response) message() string {
	if r == nil || r.Kind != KindJSON {
		return ""
	}
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(r.JSON, &body); err != nil || len(body.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(body.Message, &single); err == nil {
		return single
	}
	var list []string
	if err := json.Unmarshal(body.Message, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return ""
}
