// Package markdown converts between markdown/MDX text and the domain
// document tree.
//
// Parsing is delegated to goldmark; the resulting AST is converted into
// domain nodes so that core packages never see goldmark types. Front
// matter and top-level import declarations are captured as their own node
// types because the scanner needs them (import idempotence, injection
// placement).
package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/custodia-labs/glossa-cli/internal/core/domain"
	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// importRe matches the head of an ESM import declaration and captures the
// bound identifiers (default import or a brace list).
var importRe = regexp.MustCompile(`^import\s+(?:\{([^}]*)\}|([A-Za-z_$][A-Za-z0-9_$]*))\s+from\s`)

// Parser parses markdown/MDX documents into domain trees.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a markdown parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse builds a domain tree from document source. Front matter is
// captured first, then the remainder is parsed as markdown; top-level
// paragraphs that are lexically import declarations become import nodes.
func (p *Parser) Parse(source []byte) (*domain.Node, error) {
	tree := &domain.Node{Type: domain.NodeDocument}

	body, frontMatter := splitFrontMatter(source)
	if frontMatter != nil {
		tree.AppendChild(frontMatter)
	}

	doc := p.md.Parser().Parse(text.NewReader(body))
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		if node := convertBlock(child, body); node != nil {
			tree.AppendChild(node)
		}
	}
	return tree, nil
}

// splitFrontMatter strips a leading "---" fenced metadata block and
// returns the remaining body plus the front-matter node, or nil when the
// document has none.
func splitFrontMatter(source []byte) ([]byte, *domain.Node) {
	const fence = "---"

	s := string(source)
	if !strings.HasPrefix(s, fence+"\n") {
		return source, nil
	}
	rest := s[len(fence)+1:]
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return source, nil
	}
	inner := rest[:end+1]
	body := rest[end+1+len(fence):]
	body = strings.TrimPrefix(body, "\n")
	return []byte(body), &domain.Node{Type: domain.NodeFrontMatter, Value: inner}
}

// convertBlock maps one top-level or nested block node.
func convertBlock(n ast.Node, source []byte) *domain.Node {
	switch b := n.(type) {
	case *ast.Paragraph:
		if decl := importDeclaration(b, source); decl != nil {
			return decl
		}
		return convertContainer(domain.NodeParagraph, b, source)

	case *ast.TextBlock:
		return convertContainer(domain.NodeParagraph, b, source)

	case *ast.Heading:
		node := convertContainer(domain.NodeHeading, b, source)
		node.Depth = b.Level
		return node

	case *ast.FencedCodeBlock:
		node := &domain.Node{Type: domain.NodeCode, Lang: codeInfo(b, source)}
		node.AppendChild(domain.NewText(blockLines(b, source)))
		return node

	case *ast.CodeBlock:
		node := &domain.Node{Type: domain.NodeCode}
		node.AppendChild(domain.NewText(blockLines(b, source)))
		return node

	case *ast.List:
		node := &domain.Node{Type: domain.NodeList, Ordered: b.IsOrdered()}
		for item := b.FirstChild(); item != nil; item = item.NextSibling() {
			node.AppendChild(convertContainerBlocks(domain.NodeListItem, item, source))
		}
		return node

	case *ast.Blockquote:
		return convertContainerBlocks(domain.NodeBlockquote, b, source)

	case *ast.ThematicBreak:
		return &domain.Node{Type: domain.NodeContainer, Value: "---"}

	case *ast.HTMLBlock:
		return &domain.Node{Type: domain.NodeContainer, Value: htmlBlockSource(b, source)}

	default:
		return nil
	}
}

// convertContainer maps a block with inline children.
func convertContainer(t domain.NodeType, n ast.Node, source []byte) *domain.Node {
	node := &domain.Node{Type: t}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if converted := convertInline(child, source); converted != nil {
			node.AppendChild(converted)
		}
	}
	return node
}

// convertContainerBlocks maps a block whose children are themselves blocks
// (list items, blockquotes).
func convertContainerBlocks(t domain.NodeType, n ast.Node, source []byte) *domain.Node {
	node := &domain.Node{Type: t}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if converted := convertBlock(child, source); converted != nil {
			node.AppendChild(converted)
		}
	}
	return node
}

// convertInline maps one inline node.
func convertInline(n ast.Node, source []byte) *domain.Node {
	switch i := n.(type) {
	case *ast.Text:
		value := string(i.Segment.Value(source))
		if i.HardLineBreak() {
			value += "\\\n"
		} else if i.SoftLineBreak() {
			value += "\n"
		}
		return domain.NewText(value)

	case *ast.String:
		return domain.NewText(string(i.Value))

	case *ast.CodeSpan:
		node := &domain.Node{Type: domain.NodeInlineCode}
		node.AppendChild(domain.NewText(inlineText(i, source)))
		return node

	case *ast.Emphasis:
		node := convertContainer(domain.NodeEmphasis, i, source)
		node.Depth = i.Level
		return node

	case *ast.Link:
		node := &domain.Node{
			Type:  domain.NodeLink,
			URL:   string(i.Destination),
			Title: string(i.Title),
		}
		for child := i.FirstChild(); child != nil; child = child.NextSibling() {
			if converted := convertInline(child, source); converted != nil {
				node.AppendChild(converted)
			}
		}
		return node

	case *ast.AutoLink:
		url := string(i.URL(source))
		node := &domain.Node{Type: domain.NodeLink, URL: url}
		node.AppendChild(domain.NewText(string(i.Label(source))))
		return node

	case *ast.Image:
		// Images are opaque: alt text must not be annotated.
		alt := inlineText(i, source)
		value := "![" + alt + "](" + string(i.Destination) + ")"
		return &domain.Node{Type: domain.NodeContainer, Value: value}

	case *ast.RawHTML:
		var buf bytes.Buffer
		for s := 0; s < i.Segments.Len(); s++ {
			seg := i.Segments.At(s)
			buf.Write(seg.Value(source))
		}
		return &domain.Node{Type: domain.NodeContainer, Value: buf.String()}

	default:
		return nil
	}
}

// importDeclaration recognises a top-level paragraph that is lexically an
// ESM import statement and converts it into an import node carrying the
// verbatim source text.
func importDeclaration(p *ast.Paragraph, source []byte) *domain.Node {
	raw := strings.TrimSpace(blockLines(p, source))
	m := importRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	var identifiers []string
	if m[1] != "" {
		for _, id := range strings.Split(m[1], ",") {
			if id = strings.TrimSpace(id); id != "" {
				identifiers = append(identifiers, id)
			}
		}
	} else {
		identifiers = append(identifiers, m[2])
	}
	return &domain.Node{
		Type:        domain.NodeImport,
		Source:      raw,
		Identifiers: identifiers,
	}
}

// blockLines concatenates a block node's source lines.
func blockLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// htmlBlockSource includes the closure line fenced HTML blocks carry.
func htmlBlockSource(b *ast.HTMLBlock, source []byte) string {
	raw := blockLines(b, source)
	if b.HasClosure() {
		raw += string(b.ClosureLine.Value(source))
	}
	return strings.TrimRight(raw, "\n")
}

// codeInfo extracts the fence info string (language).
func codeInfo(b *ast.FencedCodeBlock, source []byte) string {
	if b.Info == nil {
		return ""
	}
	return string(b.Info.Segment.Value(source))
}

// inlineText flattens an inline subtree to its plain text.
func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(inlineText(child, source))
		}
	}
	return buf.String()
}
