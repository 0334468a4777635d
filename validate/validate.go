// Package validate collects per-field validation failures so a whole
// payload can be rejected in one round trip.
package validate

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps an offending field name to a human-readable message.
// It satisfies error so services can return it directly.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Required records an error when value is empty or whitespace.
func (e FieldErrors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = "is required"
	}
}

// Min records an error when value is below min.
func (e FieldErrors) Min(field string, value, min int) {
	if value < min {
		e[field] = fmt.Sprintf("must be at least %d", min)
	}
}

// NonNegative records an error when value is below zero.
func (e FieldErrors) NonNegative(field string, value int) {
	if value < 0 {
		e[field] = "must not be negative"
	}
}

// OneOf records an error when value is not among allowed. Empty values are
// left to Required.
func (e FieldErrors) OneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e[field] = fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))
}

// NonEmptyList records an error when the slice has no entries.
func (e FieldErrors) NonEmptyList(field string, values []string) {
	if len(values) == 0 {
		e[field] = "must contain at least one entry"
	}
}

// Err returns the collected errors, or nil when every check passed.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
