package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	DefaultMessage = "(no message)"
	DefaultType    = "general"
)

// Reply texts returned in the JSON envelope.
const (
	MsgReceived      = "Your message has been received! Thank you, and God bless."
	MsgInvalidFormat = "Invalid data format."
	MsgMissingFields = "Malformed request: name and email are required."
	MsgInternalError = "An internal server error occurred."
)

var (
	ErrInvalidFormat = errors.New("invalid data format")
	ErrMissingFields = errors.New("name and email are required")

	errNotText = errors.New("value is not a JSON primitive")
)

// text is a form field read as text. Strings are taken as is; numbers and
// booleans keep their literal form. Objects and arrays are rejected.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errNotText
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
	case '{', '[':
		return errNotText
	default:
		*t = text(data)
	}
	return nil
}

// SubmissionRequest is the decoded body of POST /contact. A nil field means
// the key was absent or null; a pointer to "" is present.
type SubmissionRequest struct {
	Name    *text `json:"name" validate:"required"`
	Email   *text `json:"email" validate:"required"`
	Message *text `json:"message"`
	Type    *text `json:"type"`
}

// Submission is a form submission with defaults applied.
type Submission struct {
	Name    string
	Email   string
	Message string
	Type    string
}

// Submission applies the message and type defaults. Callers validate first.
func (r *SubmissionRequest) Submission() Submission {
	sub := Submission{
		Message: DefaultMessage,
		Type:    DefaultType,
	}
	if r.Name != nil {
		sub.Name = string(*r.Name)
	}
	if r.Email != nil {
		sub.Email = string(*r.Email)
	}
	if r.Message != nil {
		sub.Message = string(*r.Message)
	}
	if r.Type != nil {
		sub.Type = string(*r.Type)
	}
	return sub
}

// DecodeSubmission parses a request body. An empty body or a JSON null yields
// a nil request and no error. Syntax errors, trailing data and non-object
// documents wrap ErrInvalidFormat; an object or array field value is returned
// as is.
func DecodeSubmission(data []byte) (*SubmissionRequest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var req *SubmissionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syntaxErr):
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		case errors.As(err, &typeErr) && typeErr.Field == "":
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		default:
			return nil, fmt.Errorf("failed to extract submission fields: %w", err)
		}
	}

	return req, nil
}
