package driven

import "github.com/custodia-labs/glossa-cli/internal/core/domain"

// DocumentParser parses raw document bytes into a domain tree.
type DocumentParser interface {
	// Parse builds a document tree. The returned tree is owned by the
	// caller.
	Parse(source []byte) (*domain.Node, error)
}

// DocumentRenderer serialises a domain tree back to document text.
type DocumentRenderer interface {
	// Render writes the tree as document text.
	Render(tree *domain.Node) ([]byte, error)
}
