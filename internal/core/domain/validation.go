package domain

import (
	"fmt"
	"strings"
)

// maxValuePreview caps the rendered length of offending values in
// validation summaries.
const maxValuePreview = 50

// ValidationError describes one field-level problem in untrusted glossary
// data. Field is a path-like identifier (e.g. "terms[2].relatedTerms[1]").
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`

	// HasValue distinguishes "no value recorded" from a recorded nil.
	HasValue bool `json:"-"`
}

// Preview renders the offending value for logs, capped at 50 characters
// with an ellipsis marker.
func (e ValidationError) Preview() string {
	if !e.HasValue {
		return ""
	}
	s := fmt.Sprintf("%v", e.Value)
	if len(s) > maxValuePreview {
		s = s[:maxValuePreview] + "..."
	}
	return s
}

// ValidationResult is the outcome of validating raw glossary data: the
// largest valid subset of term records plus every problem found.
type ValidationResult struct {
	// Valid is true when no errors were collected.
	Valid bool

	// Errors lists every problem in the order checks were performed.
	Errors []ValidationError

	// Glossary holds the usable subset of term records, in input order.
	Glossary Glossary
}

// InvalidGlossaryError is the aggregate error raised when validation is
// configured to fail on error. It carries the full error list; Error()
// renders the multi-line summary (count header plus one numbered line per
// error).
type InvalidGlossaryError struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *InvalidGlossaryError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "glossary validation failed: %d error(s)", len(e.Errors))
	for i, ve := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %s: %s", i+1, ve.Field, ve.Message)
		if preview := ve.Preview(); preview != "" {
			fmt.Fprintf(&b, " (value: %s)", preview)
		}
	}
	return b.String()
}
