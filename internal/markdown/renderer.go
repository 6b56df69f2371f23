package markdown

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.DocumentRenderer = (*Renderer)(nil)

// Renderer serialises a domain tree to MDX text. Annotation nodes become
// component elements; import declarations are re-emitted verbatim from
// their lexical payload.
type Renderer struct {
	component string
}

// RendererOption configures the renderer.
type RendererOption func(*Renderer)

// WithRenderComponent sets the annotation element name.
func WithRenderComponent(name string) RendererOption {
	return func(r *Renderer) {
		if name != "" {
			r.component = name
		}
	}
}

// NewRenderer creates an MDX renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{component: "GlossaryTerm"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the tree as MDX text. Top-level blocks are separated by
// blank lines.
func (r *Renderer) Render(tree *domain.Node) ([]byte, error) {
	if tree == nil {
		return nil, domain.ErrInvalidInput
	}

	blocks := make([]string, 0, len(tree.Children))
	for _, child := range tree.Children {
		blocks = append(blocks, r.renderBlock(child))
	}
	out := strings.Join(blocks, "\n\n")
	if out != "" {
		out += "\n"
	}
	return []byte(out), nil
}

func (r *Renderer) renderBlock(n *domain.Node) string {
	switch n.Type {
	case domain.NodeFrontMatter:
		return "---\n" + n.Value + "---"

	case domain.NodeImport:
		return n.Source

	case domain.NodeParagraph:
		return r.renderInlineChildren(n)

	case domain.NodeHeading:
		return strings.Repeat("#", n.Depth) + " " + r.renderInlineChildren(n)

	case domain.NodeCode:
		return "```" + n.Lang + "\n" + r.renderInlineChildren(n) + "```"

	case domain.NodeList:
		return r.renderList(n)

	case domain.NodeBlockquote:
		return prefixLines(r.renderBlockChildren(n), "> ")

	case domain.NodeAnnotation:
		return r.renderAnnotation(n)

	case domain.NodeContainer:
		if len(n.Children) == 0 {
			return n.Value
		}
		return r.renderBlockChildren(n)

	default:
		// Inline node hoisted to block position; render it inline.
		return r.renderInline(n)
	}
}

func (r *Renderer) renderBlockChildren(n *domain.Node) string {
	blocks := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		blocks = append(blocks, r.renderBlock(child))
	}
	return strings.Join(blocks, "\n\n")
}

func (r *Renderer) renderInlineChildren(n *domain.Node) string {
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(r.renderInline(child))
	}
	return b.String()
}

func (r *Renderer) renderInline(n *domain.Node) string {
	switch n.Type {
	case domain.NodeText:
		return n.Value

	case domain.NodeInlineCode:
		return "`" + r.renderInlineChildren(n) + "`"

	case domain.NodeEmphasis:
		marker := "*"
		if n.Depth == 2 {
			marker = "**"
		}
		return marker + r.renderInlineChildren(n) + marker

	case domain.NodeLink:
		label := r.renderInlineChildren(n)
		if n.Title != "" {
			return fmt.Sprintf(`[%s](%s "%s")`, label, n.URL, n.Title)
		}
		return fmt.Sprintf("[%s](%s)", label, n.URL)

	case domain.NodeAnnotation, domain.NodeAnnotationInline:
		return r.renderAnnotation(n)

	case domain.NodeContainer:
		if len(n.Children) == 0 {
			return n.Value
		}
		return r.renderInlineChildren(n)

	default:
		return r.renderInlineChildren(n)
	}
}

// renderList renders list items one per line; nested blocks inside an
// item are flattened onto the item line separated by a space.
func (r *Renderer) renderList(n *domain.Node) string {
	lines := make([]string, 0, len(n.Children))
	for i, item := range n.Children {
		marker := "- "
		if n.Ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		parts := make([]string, 0, len(item.Children))
		for _, child := range item.Children {
			parts = append(parts, r.renderBlock(child))
		}
		lines = append(lines, marker+strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

// renderAnnotation emits the component element. The single child is the
// original-cased matched text.
func (r *Renderer) renderAnnotation(n *domain.Node) string {
	return fmt.Sprintf(`<%s term="%s" definition="%s" path="%s">%s</%s>`,
		r.component,
		escapeAttr(n.Term),
		escapeAttr(n.Definition),
		escapeAttr(n.Path),
		r.renderInlineChildren(n),
		r.component,
	)
}

// escapeAttr keeps attribute values well-formed inside double quotes.
func escapeAttr(v string) string {
	return strings.ReplaceAll(v, `"`, "&quot;")
}

// prefixLines prepends prefix to every line of s.
func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
