package scanner

import (
	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.TransformerFactory = (*Factory)(nil)

// Factory builds scanners bound to a glossary snapshot. The route and
// options are fixed at construction; the term index is derived per
// glossary.
type Factory struct {
	routePath string
	opts      []Option
}

// NewFactory creates a scanner factory.
func NewFactory(routePath string, opts ...Option) *Factory {
	return &Factory{routePath: routePath, opts: opts}
}

// ForGlossary returns a scanner over the glossary's terms. A nil or empty
// glossary yields a no-op transformer.
func (f *Factory) ForGlossary(g *domain.Glossary) driven.TreeTransformer {
	var terms []domain.TermRecord
	if g != nil {
		terms = g.Terms
	}
	return New(terms, f.routePath, f.opts...)
}
