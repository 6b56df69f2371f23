package driving

import (
	"context"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
)

// AnnotateResult summarises one annotated document.
type AnnotateResult struct {
	// Path is the document's source path.
	Path string

	// Annotations is the number of annotation nodes emitted.
	Annotations int

	// Changed is true when the output differs from the input.
	Changed bool

	// Output is the rendered annotated document.
	Output []byte
}

// AnnotateService annotates documents with glossary term references.
type AnnotateService interface {
	// AnnotateFile reads, annotates and returns a single document.
	AnnotateFile(ctx context.Context, path string) (*AnnotateResult, error)

	// AnnotateTree runs the scanner over an already-parsed tree and
	// returns the number of annotations emitted. The tree is mutated in
	// place.
	AnnotateTree(ctx context.Context, tree *domain.Node) (int, error)
}

// GlossaryService exposes glossary validation and coverage reporting.
type GlossaryService interface {
	// Validate checks a glossary file and returns the full result,
	// including the usable subset when some entries are invalid.
	Validate(ctx context.Context, path string) (*domain.ValidationResult, error)

	// Stats returns per-term coverage aggregates from past annotation
	// runs.
	Stats(ctx context.Context) ([]TermStat, error)
}

// TermStat is one row of glossary coverage output.
type TermStat struct {
	// Term is the case-folded term key.
	Term string

	// Documents is the number of documents mentioning the term.
	Documents int

	// Hits is the total annotation count.
	Hits int
}
