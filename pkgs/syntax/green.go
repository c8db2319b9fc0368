package syntax

import "github.com/aledsdavies/gqlcst/pkgs/token"

// GreenToken is a leaf in the green tree: a syntax-tagged token together
// with its exact source text.
type GreenToken struct {
	Kind Kind
	Text string
}

// GreenNode is an immutable, order-preserving composite node. Green
// nodes know their own text length but not their absolute offset in the
// source — that is computed on demand by the red (Syntax) layer.
type GreenNode struct {
	Kind     Kind
	Children []GreenChild
	width    int
}

// GreenChild is a tagged union: exactly one of Node or Token is set.
type GreenChild struct {
	Node  *GreenNode
	Token *GreenToken
}

func childNode(n *GreenNode) GreenChild   { return GreenChild{Node: n} }
func childToken(t *GreenToken) GreenChild { return GreenChild{Token: t} }

// Width returns the total length in bytes of the text covered by this
// node, i.e. the sum of all descendant token texts.
func (g *GreenNode) Width() int {
	return g.width
}

// Text reconstructs the exact source text spanned by this node by
// concatenating every descendant token's text, in order. pkgs/lexer
// always emits a token for every byte of input — malformed lexemes are
// tagged ILLEGAL rather than dropped — so Text() on the DOCUMENT root
// reconstructs the entire input even when the parse had errors.
func (g *GreenNode) Text() string {
	var b []byte
	g.appendText(&b)
	return string(b)
}

func (g *GreenNode) appendText(b *[]byte) {
	for _, c := range g.Children {
		if c.Node != nil {
			c.Node.appendText(b)
		} else {
			*b = append(*b, c.Token.Text...)
		}
	}
}

// Tree is the result of a parse: the DOCUMENT root and the diagnostics
// collected while building it. The root is always present, even for
// empty or wholly invalid input.
type Tree struct {
	Root   *GreenNode
	Errors []token.Error
}
