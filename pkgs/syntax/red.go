package syntax

// SyntaxNode is a cheap, ephemeral handle over a position in the green
// tree: the node itself, its parent (if any), its absolute byte offset,
// and its index among its parent's children. Two SyntaxNodes compare
// equal (via Equal) when they denote the same position in the same
// tree, even though they are recomputed, not cached, on each traversal.
type SyntaxNode struct {
	parent        *SyntaxNode
	green         *GreenNode
	offset        int
	indexInParent int
}

// NewRoot wraps a green tree's root node as the root SyntaxNode.
func NewRoot(green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, offset: 0}
}

// Kind returns the syntax kind of the underlying green node.
func (n *SyntaxNode) Kind() Kind { return n.green.Kind }

// Parent returns the enclosing node, or nil at the root.
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

// TextRange returns the half-open [start, end) byte range this node
// spans in the original input.
func (n *SyntaxNode) TextRange() (start, end int) {
	return n.offset, n.offset + n.green.Width()
}

// Text concatenates every descendant token's text, i.e. the exact
// source slice this node covers.
func (n *SyntaxNode) Text() string { return n.green.Text() }

// Equal reports whether two SyntaxNodes denote the same position in the
// same green tree.
func (n *SyntaxNode) Equal(other *SyntaxNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.green == other.green && n.offset == other.offset
}

// Element is a node-or-token child, the heterogeneous element type
// Children() iterates over.
type Element struct {
	Node  *SyntaxNode
	Token *SyntaxToken
}

// IsNode reports whether this element wraps a node rather than a token.
func (e Element) IsNode() bool { return e.Node != nil }

// SyntaxToken is the red-tree view of a leaf: its kind, text, and
// absolute offset.
type SyntaxToken struct {
	Kind   Kind
	Text   string
	Offset int
}

// End returns the byte offset one past the token.
func (t *SyntaxToken) End() int { return t.Offset + len(t.Text) }

// Children returns this node's direct children as a heterogeneous,
// ordered sequence of nodes and tokens, each computed lazily with its
// absolute offset derived from this node's offset plus the widths of
// preceding siblings.
func (n *SyntaxNode) Children() []Element {
	elems := make([]Element, 0, len(n.green.Children))
	off := n.offset
	for i, c := range n.green.Children {
		if c.Node != nil {
			elems = append(elems, Element{Node: &SyntaxNode{
				parent:        n,
				green:         c.Node,
				offset:        off,
				indexInParent: i,
			}})
			off += c.Node.Width()
		} else {
			elems = append(elems, Element{Token: &SyntaxToken{
				Kind:   c.Token.Kind,
				Text:   c.Token.Text,
				Offset: off,
			}})
			off += len(c.Token.Text)
		}
	}
	return elems
}

// ChildNodes returns only the node children, discarding tokens, in
// order.
func (n *SyntaxNode) ChildNodes() []*SyntaxNode {
	var out []*SyntaxNode
	for _, e := range n.Children() {
		if e.Node != nil {
			out = append(out, e.Node)
		}
	}
	return out
}

// FirstChildOfKind returns the first direct child node of the given
// kind, or nil if there is none. Used throughout the typed AST facade
// for "optional child" accessors.
func (n *SyntaxNode) FirstChildOfKind(k Kind) *SyntaxNode {
	for _, e := range n.Children() {
		if e.Node != nil && e.Node.Kind() == k {
			return e.Node
		}
	}
	return nil
}

// ChildrenOfKind returns every direct child node of the given kind, in
// order.
func (n *SyntaxNode) ChildrenOfKind(k Kind) []*SyntaxNode {
	var out []*SyntaxNode
	for _, e := range n.Children() {
		if e.Node != nil && e.Node.Kind() == k {
			out = append(out, e.Node)
		}
	}
	return out
}

// FirstToken returns the first direct child token of the given kind, or
// nil if there is none. Composite nodes expose their significant
// tokens (names, punctuators) this way; trivia is skipped implicitly
// because trivia tokens are tagged with their own trivia kinds, never
// the kind an accessor asks for (P6).
func (n *SyntaxNode) FirstToken(k Kind) *SyntaxToken {
	for _, e := range n.Children() {
		if e.Token != nil && e.Token.Kind == k {
			return e.Token
		}
	}
	return nil
}

// Tokens returns every direct child token, trivia included, in order.
func (n *SyntaxNode) Tokens() []*SyntaxToken {
	var out []*SyntaxToken
	for _, e := range n.Children() {
		if e.Token != nil {
			out = append(out, e.Token)
		}
	}
	return out
}
