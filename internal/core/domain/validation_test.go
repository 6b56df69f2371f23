package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidGlossaryError_Summary(t *testing.T) {
	err := &InvalidGlossaryError{Errors: []ValidationError{
		{Field: "terms[0].term", Message: "term must be a non-empty string", Value: "", HasValue: true},
		{Field: "terms[2]", Message: "term entry must be an object", Value: 42, HasValue: true},
	}}

	summary := err.Error()
	lines := strings.Split(summary, "\n")
	assert.Equal(t, "glossary validation failed: 2 error(s)", lines[0])
	assert.Contains(t, lines[1], "1. terms[0].term: term must be a non-empty string")
	assert.Contains(t, lines[2], "2. terms[2]: term entry must be an object (value: 42)")
}

func TestValidationError_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	e := ValidationError{Field: "terms[0].term", Message: "m", Value: long, HasValue: true}

	preview := e.Preview()
	assert.Len(t, preview, 53)
	assert.True(t, strings.HasSuffix(preview, "..."))
	assert.Equal(t, strings.Repeat("x", 50), preview[:50])
}

func TestValidationError_NoValue(t *testing.T) {
	e := ValidationError{Field: "terms", Message: "missing required field"}
	assert.Empty(t, e.Preview())
}
