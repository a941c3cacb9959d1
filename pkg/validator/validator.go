package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/todolist/pkg/httpx"
)

// InvalidRequestMessage is the client-facing message for rejected bodies.
const InvalidRequestMessage = "Invalid request, please try again."

// ErrInvalidRequest is matched by every *RequestError.
var ErrInvalidRequest = errors.New("invalid request")

// RequestError describes why a request body was rejected. Fields is keyed
// by JSON field name and is empty when the body could not be decoded.
type RequestError struct {
	Fields map[string]string
	cause  error
}

func (e *RequestError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %v", ErrInvalidRequest, e.cause)
	}
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(parts, ", "))
}

func (e *RequestError) Unwrap() []error {
	return []error{ErrInvalidRequest, e.cause}
}

var validate *validator.Validate

// NullableString is a JSON string field that may be explicitly null.
// Set records whether the key appeared in the body at all, so "required"
// rejects a missing key while accepting null.
type NullableString struct {
	Value *string
	Set   bool
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// nullableStringValue presents a NullableString to the validator: nil when
// absent, the string when set, and an empty string when null.
func nullableStringValue(v reflect.Value) any {
	n, ok := v.Interface().(NullableString)
	if !ok || !n.Set {
		return nil
	}
	if n.Value == nil {
		return new(string)
	}
	return n.Value
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(nullableStringValue, NullableString{})

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "numeric":
		return "Must be a numeric value"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// Decode reads a single JSON value from the body into T and validates it.
// Trailing data after the value is rejected. Any failure is returned as a
// *RequestError so callers can reject the request before touching the
// datastore.
func Decode[T any](r *http.Request) (*T, error) {
	var req T
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		return nil, &RequestError{Fields: map[string]string{}, cause: fmt.Errorf("decode json: %w", err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &RequestError{Fields: map[string]string{}, cause: errors.New("decode json: unexpected data after body")}
	}
	if err := Validate(&req); err != nil {
		return nil, &RequestError{Fields: FormatValidationErrors(err), cause: err}
	}
	return &req, nil
}

// WriteInvalid writes the standard 400 body for a rejected request.
func WriteInvalid(w http.ResponseWriter, err error) {
	body := map[string]any{"error": InvalidRequestMessage}
	var re *RequestError
	if errors.As(err, &re) && len(re.Fields) > 0 {
		body["fields"] = re.Fields
	}
	httpx.JSON(w, http.StatusBadRequest, body)
}
