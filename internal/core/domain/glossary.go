package domain

import "strings"

// TermRecord is a single validated glossary entry.
// Records are immutable once validation has produced them.
type TermRecord struct {
	// Term is the display name matched in document text. Non-empty, trimmed.
	Term string `json:"term"`

	// Definition is the tooltip text. May be empty.
	Definition string `json:"definition"`

	// Abbreviation is an optional short form (e.g. "API").
	Abbreviation string `json:"abbreviation,omitempty"`

	// RelatedTerms lists the names of related glossary entries.
	RelatedTerms []string `json:"relatedTerms,omitempty"`

	// ID is an optional stable identifier for the entry.
	ID string `json:"id,omitempty"`
}

// Key returns the case-folded term used for uniqueness and matching.
func (r TermRecord) Key() string {
	return strings.ToLower(r.Term)
}

// Anchor returns the URL fragment for this term on the glossary page:
// the case-folded term with spaces replaced by hyphens.
func (r TermRecord) Anchor() string {
	return strings.ReplaceAll(r.Key(), " ", "-")
}

// Glossary is the root container of validated term records.
// It is built once per scan configuration and read-only afterwards,
// so it may be shared across concurrent document transforms.
type Glossary struct {
	Terms []TermRecord `json:"terms"`
}

// Len returns the number of term records.
func (g *Glossary) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Terms)
}
