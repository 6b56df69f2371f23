package scanner

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
)

// Ensure Scanner implements the interface.
var _ driven.TreeTransformer = (*Scanner)(nil)

// DefaultComponent is the annotation component identifier referenced by
// injected import declarations.
const DefaultComponent = "GlossaryTerm"

// DefaultImportPath is where the annotation component is imported from.
const DefaultImportPath = "@site/src/components/GlossaryTerm"

// Scanner rewrites plain-text glossary term mentions in a document tree
// into annotation nodes. Construct once per glossary; a Scanner is
// read-only after construction and safe for concurrent Transform calls on
// distinct trees.
type Scanner struct {
	index      *TermIndex
	routePath  string
	component  string
	importPath string
	plurals    bool
}

// Option configures the scanner.
type Option func(*Scanner)

// WithComponent sets the annotation component identifier.
func WithComponent(name string) Option {
	return func(s *Scanner) {
		if name != "" {
			s.component = name
		}
	}
}

// WithImportPath sets the module path of the injected import declaration.
func WithImportPath(path string) Option {
	return func(s *Scanner) {
		if path != "" {
			s.importPath = path
		}
	}
}

// WithPlurals toggles simple-plural matching ('s' and 'es' suffixes).
func WithPlurals(enabled bool) Option {
	return func(s *Scanner) {
		s.plurals = enabled
	}
}

// New creates a scanner over the given term records. RoutePath is the page
// the annotations link to; per-term anchors are appended to it. An empty
// term set yields a no-op transformer.
func New(terms []domain.TermRecord, routePath string, opts ...Option) *Scanner {
	s := &Scanner{
		index:      NewTermIndex(terms),
		routePath:  strings.TrimSuffix(routePath, "/"),
		component:  DefaultComponent,
		importPath: DefaultImportPath,
		plurals:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the transformer name.
func (s *Scanner) Name() string {
	return "glossary-scanner"
}

// Transform walks the tree, rewrites matched text nodes and, when at least
// one annotation was emitted, injects the component import once. Calling
// Transform repeatedly on the same tree is idempotent: annotated regions
// are protected contexts and the import check-then-insert never
// duplicates.
func (s *Scanner) Transform(tree *domain.Node) {
	if tree == nil || s.index.Len() == 0 {
		return
	}
	if s.walk(tree) > 0 {
		s.injectImport(tree)
	}
}

// walk visits parent's children with explicit index bookkeeping so a
// splice continues traversal after the inserted sequence. Returns the
// number of annotation nodes emitted in this subtree.
func (s *Scanner) walk(parent *domain.Node) int {
	emitted := 0
	for i := 0; i < len(parent.Children); i++ {
		child := parent.Children[i]
		if child.Type == domain.NodeText {
			if parent.Protected() {
				continue
			}
			replacement, count := s.rewriteText(child, parent.Inline())
			if count > 0 {
				i = parent.SpliceChildren(i, replacement)
				emitted += count
			}
			continue
		}
		emitted += s.walk(child)
	}
	return emitted
}

// rewriteText matches one text node and builds its replacement sequence:
// plain-text fragments interleaved with annotation nodes, in text order.
// Returns nil and zero when nothing matched.
func (s *Scanner) rewriteText(node *domain.Node, inline bool) ([]*domain.Node, int) {
	if node.Value == "" {
		return nil, 0
	}
	matches := s.index.findMatches(node.Value, s.plurals)
	if len(matches) == 0 {
		return nil, 0
	}

	runes := []rune(node.Value)
	replacement := make([]*domain.Node, 0, 2*len(matches)+1)
	cursor := 0
	for _, m := range matches {
		if m.start > cursor {
			replacement = append(replacement, domain.NewText(string(runes[cursor:m.start])))
		}
		replacement = append(replacement, s.annotation(m, inline))
		cursor = m.end()
	}
	if cursor < len(runes) {
		replacement = append(replacement, domain.NewText(string(runes[cursor:])))
	}
	return replacement, len(matches)
}

// annotation builds the node for one match. The single child holds the
// original-cased matched text.
func (s *Scanner) annotation(m match, inline bool) *domain.Node {
	nodeType := domain.NodeAnnotation
	if inline {
		nodeType = domain.NodeAnnotationInline
	}
	return &domain.Node{
		Type:       nodeType,
		Term:       m.entry.record.Term,
		Definition: m.entry.record.Definition,
		Path:       s.routePath + "#" + m.entry.record.Anchor(),
		Children:   []*domain.Node{domain.NewText(m.text)},
	}
}

// injectImport inserts the component import at the top of the document,
// after any leading front-matter, unless a declaration binding the same
// identifier already exists.
func (s *Scanner) injectImport(tree *domain.Node) {
	for _, child := range tree.Children {
		if child.Binds(s.component) {
			return
		}
	}

	decl := &domain.Node{
		Type:        domain.NodeImport,
		Source:      fmt.Sprintf("import %s from %q;", s.component, s.importPath),
		Identifiers: []string{s.component},
	}

	at := 0
	for at < len(tree.Children) && tree.Children[at].Type == domain.NodeFrontMatter {
		at++
	}
	tree.Children = append(tree.Children, nil)
	copy(tree.Children[at+1:], tree.Children[at:])
	tree.Children[at] = decl
}
