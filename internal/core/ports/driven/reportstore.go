package driven

import (
	"context"
	"time"
)

// Report records the outcome of annotating one document.
type Report struct {
	// ID is the unique report identifier.
	ID string

	// DocumentPath is the annotated document's source path.
	DocumentPath string

	// Annotations is the total number of annotation nodes emitted.
	Annotations int

	// TermHits maps case-folded terms to their hit counts.
	TermHits map[string]int

	// AnnotatedAt is when the document was processed.
	AnnotatedAt time.Time
}

// TermCoverage aggregates hit counts for one term across all reports.
type TermCoverage struct {
	// Term is the case-folded term key.
	Term string

	// Documents is the number of distinct documents mentioning the term.
	Documents int

	// Hits is the total annotation count for the term.
	Hits int
}

// ReportStore persists annotation coverage reports.
type ReportStore interface {
	// SaveReport stores or replaces the report for a document path.
	SaveReport(ctx context.Context, report *Report) error

	// Coverage returns per-term aggregates, ordered by descending hits.
	Coverage(ctx context.Context) ([]TermCoverage, error)

	// Close releases the underlying resources.
	Close() error
}
