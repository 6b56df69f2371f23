package domain

// NodeType discriminates the kinds of nodes in a parsed document tree.
type NodeType string

// Document node types.
const (
	// NodeDocument is the tree root.
	NodeDocument NodeType = "document"

	// NodeText is a run of plain text.
	NodeText NodeType = "text"

	// NodeCode is a fenced or indented code block.
	NodeCode NodeType = "code"

	// NodeInlineCode is a backtick code span.
	NodeInlineCode NodeType = "inline-code"

	// NodeLink is a hyperlink containing text children.
	NodeLink NodeType = "link"

	// NodeParagraph is an inline-flow container of text and spans.
	NodeParagraph NodeType = "paragraph"

	// NodeHeading is a section heading (inline-flow, Depth 1-6).
	NodeHeading NodeType = "heading"

	// NodeEmphasis is an emphasised span (inline-flow, Level 1-2).
	NodeEmphasis NodeType = "emphasis"

	// NodeList is an ordered or unordered list.
	NodeList NodeType = "list"

	// NodeListItem is a single list entry.
	NodeListItem NodeType = "list-item"

	// NodeBlockquote is a quoted block.
	NodeBlockquote NodeType = "blockquote"

	// NodeContainer is a generic flow container.
	NodeContainer NodeType = "container"

	// NodeFrontMatter is a leading metadata block (--- fences).
	NodeFrontMatter NodeType = "front-matter"

	// NodeImport is a top-level component import declaration.
	// It carries the lexical source line plus the parsed identifiers.
	NodeImport NodeType = "import"

	// NodeAnnotation is the flow variant of a glossary term mention.
	NodeAnnotation NodeType = "annotation"

	// NodeAnnotationInline is the inline variant, used inside
	// paragraph-class containers.
	NodeAnnotationInline NodeType = "annotation-inline"
)

// Node is a single node of a parsed document tree.
//
// The tree is owned by the caller of any transformer; transformers mutate
// it in place and must leave it fully linked (no node appears twice, no
// dangling children) when they return.
type Node struct {
	// Type discriminates which of the payload fields below are meaningful.
	Type NodeType

	// Value holds text content for text, code, inline-code and
	// front-matter nodes.
	Value string

	// Children are the ordered child nodes of flow/inline containers.
	Children []*Node

	// URL and Title are set on link nodes.
	URL   string
	Title string

	// Depth is the heading level (1-6) on heading nodes.
	Depth int

	// Ordered marks ordered lists.
	Ordered bool

	// Lang is the info string of fenced code blocks.
	Lang string

	// Source is the lexical payload of an import declaration,
	// re-emitted verbatim by the renderer.
	Source string

	// Identifiers are the component names an import declaration binds.
	Identifiers []string

	// Term, Definition and Path carry annotation metadata: the matched
	// term name, its definition snippet and the route to the full
	// glossary entry.
	Term       string
	Definition string
	Path       string
}

// NewText returns a plain text node.
func NewText(value string) *Node {
	return &Node{Type: NodeText, Value: value}
}

// Inline reports whether this node is a paragraph-class (inline-flow)
// container. Annotations emitted under an inline container use the inline
// node variant; elsewhere the flow variant is used.
func (n *Node) Inline() bool {
	switch n.Type {
	case NodeParagraph, NodeHeading, NodeEmphasis:
		return true
	default:
		return false
	}
}

// Protected reports whether text children of this node must never be
// scanned for glossary terms: code, inline code, links and existing
// annotations are protected contexts.
func (n *Node) Protected() bool {
	switch n.Type {
	case NodeCode, NodeInlineCode, NodeLink, NodeAnnotation, NodeAnnotationInline:
		return true
	default:
		return false
	}
}

// SpliceChildren replaces the child at index i with the given sequence and
// returns the index of the last inserted element, so a visitor iterating
// the child list can continue after the splice without revisiting or
// skipping nodes. Splicing an empty sequence removes the child and returns
// i-1. Out-of-range indices leave the node untouched.
func (n *Node) SpliceChildren(i int, replacement []*Node) int {
	if i < 0 || i >= len(n.Children) {
		return i
	}
	out := make([]*Node, 0, len(n.Children)-1+len(replacement))
	out = append(out, n.Children[:i]...)
	out = append(out, replacement...)
	out = append(out, n.Children[i+1:]...)
	n.Children = out
	return i + len(replacement) - 1
}

// AppendChild adds a child to the end of the child list.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Binds reports whether an import declaration binds the given component
// identifier.
func (n *Node) Binds(identifier string) bool {
	if n.Type != NodeImport {
		return false
	}
	for _, id := range n.Identifiers {
		if id == identifier {
			return true
		}
	}
	return false
}
