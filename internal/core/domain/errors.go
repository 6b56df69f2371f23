package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a document format no parser handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrGlossaryNotConfigured indicates no glossary source is set.
	// Annotation requires a glossary path via flag or config.
	ErrGlossaryNotConfigured = errors.New("glossary not configured")
)
