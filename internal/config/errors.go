// Package config provides the rule set monocheck validates a repository
// against. Rules are plain values built from compiled defaults; nothing is
// read from disk or the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rule validation.
var (
	// ErrInvalidRules indicates the rule set is invalid.
	ErrInvalidRules = errors.New("config: invalid rules")

	// ErrEmptyField indicates a required rule field is empty.
	ErrEmptyField = errors.New("config: required field is empty")

	// ErrNotBaseName indicates a name that must be a single path element contains a separator.
	ErrNotBaseName = errors.New("config: value must be a base name without path separators")

	// ErrDuplicateEntry indicates a list rule contains the same entry twice.
	ErrDuplicateEntry = errors.New("config: duplicate entry")
)

// ValidationError describes one invalid rule field.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors lists every invalid field of a rule set.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i := range e {
		msgs[i] = e[i].Error()
	}
	return "invalid rules: " + strings.Join(msgs, "; ")
}

// Is matches ErrInvalidRules.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidRules
}

// Unwrap exposes each field error to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i := range e {
		errs[i] = &e[i]
	}
	return errs
}
