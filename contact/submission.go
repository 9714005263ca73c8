// Package contact turns contact-form submissions into the operator notification
// and the submitter acknowledgment.
package contact

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// PhoneNotProvided is rendered when the submitter left the phone empty.
const PhoneNotProvided = "Not provided"

// ErrMissingFields matches every *ValidationError via errors.Is.
var ErrMissingFields = errors.New("missing required fields")

//go:embed submission.schema.json
var submissionSchemaJSON string

var submissionSchema = jsonschema.MustCompileString("submission.schema.json", submissionSchemaJSON)

// Submission is a contact-form payload. Name, Email and Message are required.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// PhoneOrDefault returns the phone number or "Not provided".
func (s Submission) PhoneOrDefault() string {
	if s.Phone == "" {
		return PhoneNotProvided
	}
	return s.Phone
}

// Validate checks presence only. Formats are not checked.
func (s Submission) Validate() error {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Email == "" {
		missing = append(missing, "email")
	}
	if s.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// ValidationError reports a body that is not a usable submission.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Fields) > 0:
		return fmt.Sprintf("%s: %v", ErrMissingFields, e.Fields)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrMissingFields, e.Err)
	}
	return ErrMissingFields.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrMissingFields }

// Decode reads a JSON body, checks it against the submission schema and
// returns the typed Submission. Any failure is a *ValidationError.
func Decode(r io.Reader) (Submission, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Submission{}, &ValidationError{Err: err}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Submission{}, &ValidationError{Err: err}
	}
	if err := submissionSchema.Validate(doc); err != nil {
		return Submission{}, &ValidationError{Err: err}
	}
	var wire struct {
		Submission
		Phone json.RawMessage `json:"phone"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return Submission{}, &ValidationError{Err: err}
	}
	sub := wire.Submission
	if sub.Phone, err = phoneText(wire.Phone); err != nil {
		return Submission{}, &ValidationError{Err: err}
	}
	return sub, sub.Validate()
}

// phoneText accepts the phone as a JSON string or number. Numbers keep
// their literal text; null and absent mean no phone.
func phoneText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	return string(raw), nil
}
