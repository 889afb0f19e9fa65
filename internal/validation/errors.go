// Package validation holds the field-level error type shared by the auth
// flow and the CRUD handlers, plus the helpers that fill it.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// NonField collects errors that do not belong to a single input field.
const NonField = "non_field_errors"

const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
	MsgUnique   = "This field must be unique."
	MsgEmail    = "Enter a valid email address."

	MsgDecimalPlaces = "Ensure that there are no more than 2 decimal places."
	MsgMaxDigits     = "Ensure that there are no more than 8 digits before the decimal point."
)

// FieldErrors maps a wire field name to its messages. It is serialised as
// the 400 response body as-is.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func InvalidChoice(v string) string {
	return fmt.Sprintf("%q is not a valid choice.", v)
}

func InvalidPK(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}
