package config

import (
	"fmt"
	"strings"
)

// Validate checks the rule set for correctness. It returns ValidationErrors
// listing every problem found, or nil.
func Validate(r Rules) error {
	var errs []ValidationError

	errs = append(errs, validateRequired(r)...)
	errs = append(errs, validateBaseName("marker_name", r.MarkerName)...)
	errs = append(errs, validateBaseName("manifest_name", r.ManifestName)...)
	errs = append(errs, validateList("ignore_substrings", r.IgnoreSubstrings)...)
	errs = append(errs, validateList("forbidden_dependencies", r.ForbiddenDependencies)...)

	if len(errs) > 0 {
		return ValidationErrors(errs)
	}
	return nil
}

// validateRequired checks that scalar fields are populated.
func validateRequired(r Rules) []ValidationError {
	var errs []ValidationError

	required := []struct {
		field string
		value string
	}{
		{"marker_name", r.MarkerName},
		{"manifest_name", r.ManifestName},
		{"workspace_field", r.WorkspaceField},
		{"dependency_field", r.DependencyField},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: "required field is empty",
				Wrapped: ErrEmptyField,
			})
		}
	}

	return errs
}

// validateBaseName rejects names that would resolve to a nested path.
func validateBaseName(field, value string) []ValidationError {
	if value == "" {
		return nil // reported by validateRequired
	}
	if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
		return []ValidationError{{
			Field:   field,
			Message: "must be a single path element",
			Value:   value,
			Wrapped: ErrNotBaseName,
		}}
	}
	return nil
}

// validateList rejects empty and repeated entries.
func validateList(field string, values []string) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(values))

	for i, v := range values {
		name := fmt.Sprintf("%s[%d]", field, i)
		if v == "" {
			errs = append(errs, ValidationError{
				Field:   name,
				Message: "entry is empty",
				Wrapped: ErrEmptyField,
			})
			continue
		}
		if seen[v] {
			errs = append(errs, ValidationError{
				Field:   name,
				Message: "entry appears more than once",
				Value:   v,
				Wrapped: ErrDuplicateEntry,
			})
		}
		seen[v] = true
	}

	return errs
}
