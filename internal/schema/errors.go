package schema

import (
	stdErrors "errors"
	"fmt"
)

// Category identifies the stable class of a validation failure. Callers and
// tests match on categories; messages are presentation only.
type Category string

const (
	CategoryInvalidEmail     Category = "invalid_email"
	CategoryInsecurePassword Category = "insecure_password"
	CategoryNotString        Category = "not_string"
	CategoryNotNumber        Category = "not_number"
	CategoryNotBoolean       Category = "not_boolean"
	CategoryNotDateString    Category = "not_date_string"
	CategoryNotDateObject    Category = "not_date_object"
	CategoryNotArray         Category = "not_array"
	CategoryNotObject        Category = "not_object"
	CategoryOutOfRange       Category = "out_of_range"
	CategoryMissingKey       Category = "missing_key"
	CategoryUnknownType      Category = "unknown_type"
	CategoryTooManyKeys      Category = "too_many_keys"
)

// Error is a validation failure qualified with the path of the offending
// field. The path grows by prefixing parent segments as the failure bubbles
// up, so the top-level caller sees e.g. ".quote_elements.[2].vat".
type Error struct {
	Category Category
	Path     string
	Reason   string
}

func newError(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Reason: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// prefixField returns a copy of the error with a field segment prepended.
func (e *Error) prefixField(name string) *Error {
	return &Error{Category: e.Category, Path: "." + name + e.Path, Reason: e.Reason}
}

// prefixIndex returns a copy of the error with an array index segment prepended.
func (e *Error) prefixIndex(index int) *Error {
	return &Error{Category: e.Category, Path: fmt.Sprintf(".[%d]%s", index, e.Path), Reason: e.Reason}
}

// Details renders the error as the payload returned to API clients.
func (e *Error) Details() map[string]string {
	return map[string]string{
		"category": string(e.Category),
		"path":     e.Path,
		"reason":   e.Reason,
	}
}

// AsError extracts a schema validation error from an error chain.
func AsError(err error) (*Error, bool) {
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}
