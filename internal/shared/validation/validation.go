// Package validation holds the stateless input checks that guard every
// write and query path. Checks fail fast: the first violated rule is
// returned as an *Error carrying the offending field name.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Code surfaced in the GraphQL extensions map for every validation failure.
const ErrorCode = "VALIDATION_ERROR"

// UUID: canonical 8-4-4-4-12 hex groups, version nibble 1-5, variant nibble 8/9/a/b.
var uuidRegex = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// URL: conservative absolute http/https grammar - scheme, optional www.,
// host with a dot separated TLD, optional path/query.
var urlRegex = regexp.MustCompile(
	`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// Error is a validation failure with a machine readable code and the
// name of the field that failed.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// Extensions implements graphql-go's gqlerrors.ExtendedError so the code
// and field reach the client in the errors[].extensions map.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":  ErrorCode,
		"field": e.Field,
	}
}

func newError(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// StringOptions bounds a string check. Zero values disable the bound.
type StringOptions struct {
	MinLength int
	MaxLength int
	Trim      bool // reject values that are empty after trimming whitespace
}

// NumberOptions bounds a numeric check. Nil bounds are not enforced.
type NumberOptions struct {
	Min     *float64
	Max     *float64
	Integer bool
}

// Required fails when the value is missing or an empty string.
func Required(value interface{}, field string) error {
	missing := false
	switch v := value.(type) {
	case nil:
		missing = true
	case string:
		missing = v == ""
	case *string:
		missing = v == nil || *v == ""
	case int:
		// A zero rating means the field was never set.
		missing = v == 0
	case *int:
		missing = v == nil
	case *float64:
		missing = v == nil
	}
	if missing {
		return newError(field, "%s is required", field)
	}
	return nil
}

// String checks length bounds and, with Trim, non-blankness.
// A nil value always passes (optional field semantics).
func String(value *string, field string, opts StringOptions) error {
	if value == nil {
		return nil
	}
	v := *value
	if opts.MinLength > 0 && len(v) < opts.MinLength {
		return newError(field, "%s must be at least %d characters long", field, opts.MinLength)
	}
	if opts.MaxLength > 0 && len(v) > opts.MaxLength {
		return newError(field, "%s must be no more than %d characters long", field, opts.MaxLength)
	}
	if opts.Trim && strings.TrimSpace(v) == "" {
		return newError(field, "%s cannot be empty", field)
	}
	return nil
}

// Number checks finiteness, range and wholeness. A nil value always passes.
func Number(value *float64, field string, opts NumberOptions) error {
	if value == nil {
		return nil
	}
	num := *value
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return newError(field, "%s must be a valid number", field)
	}
	if opts.Min != nil && num < *opts.Min {
		return newError(field, "%s must be at least %s", field, formatBound(*opts.Min))
	}
	if opts.Max != nil && num > *opts.Max {
		return newError(field, "%s must be no more than %s", field, formatBound(*opts.Max))
	}
	if opts.Integer && num != math.Trunc(num) {
		return newError(field, "%s must be an integer", field)
	}
	return nil
}

// UUID fails unless the value matches the canonical textual format.
// A nil value always passes.
func UUID(value *string, field string) error {
	if value == nil {
		return nil
	}
	if !uuidRegex.MatchString(*value) {
		return newError(field, "%s must be a valid UUID", field)
	}
	return nil
}

// URL fails unless the value is an absolute http/https URL.
// A nil value always passes.
func URL(value *string, field string) error {
	if value == nil {
		return nil
	}
	if !urlRegex.MatchString(*value) {
		return newError(field, "%s must be a valid URL", field)
	}
	return nil
}

// Email fails unless the value looks like an address. A nil value passes.
func Email(value *string, field string) error {
	if value == nil {
		return nil
	}
	if !emailRegex.MatchString(*value) {
		return newError(field, "%s must be a valid email address", field)
	}
	return nil
}

// Date fails unless the value parses to a calendar date. A nil value passes.
func Date(value *string, field string) error {
	if value == nil {
		return nil
	}
	if _, err := ParseDate(*value); err != nil {
		return newError(field, "%s must be a valid date", field)
	}
	return nil
}

// Rating is Number with min=1, max=5, integer. A nil value passes.
func Rating(value *int, field string) error {
	if value == nil {
		return nil
	}
	num := float64(*value)
	return Number(&num, field, NumberOptions{Min: Float(1), Max: Float(5), Integer: true})
}

// ParseDate parses an ISO-8601 date or datetime string.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// Float returns a pointer for use in NumberOptions bounds.
func Float(v float64) *float64 { return &v }

// Bounds render without a decimal point when whole ("at least 1", not "at least 1.0").
func formatBound(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
