package driven

import "github.com/custodia-labs/glossa-cli/internal/core/domain"

// TreeTransformer rewrites a parsed document tree in place.
//
// Transformers have no recoverable error states: malformed or empty trees
// degrade to a no-op rather than failing. The caller owns the tree before
// and after the call; the transformer must leave it fully linked.
type TreeTransformer interface {
	// Name returns the transformer name for logging.
	Name() string

	// Transform mutates the tree in place.
	Transform(tree *domain.Node)
}

// TransformerFactory builds a transformer bound to a glossary. The scanner
// derives its term index from the glossary once; the factory lets services
// rebuild it when the backing glossary snapshot changes.
type TransformerFactory interface {
	// ForGlossary returns a transformer over the glossary's terms.
	ForGlossary(g *domain.Glossary) TreeTransformer
}
