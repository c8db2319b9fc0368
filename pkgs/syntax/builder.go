package syntax

import (
	"fmt"

	"github.com/aledsdavies/gqlcst/pkgs/token"
)

// DefaultMaxDepth is the recommended recursion bound: inputs whose node
// nesting exceeds this depth are rejected with a diagnostic instead of
// risking a stack overflow in the recursive descent grammar.
const DefaultMaxDepth = 500

// frame is one open node under construction: its kind and the children
// accreted into it so far.
type frame struct {
	kind     Kind
	children []GreenChild
}

// Builder is the stack-based green-tree constructor the grammar drives:
// StartNode/Token/Finish on the returned guard, and a terminal
// Finish(errors) that freezes the tree. A fresh Builder has one implicit
// frame — the eventual DOCUMENT root.
//
// The scoped guard returned by StartNode is the load-bearing resource
// contract: callers must call Finish on every exit path. This is the Go
// substitute for a Drop-based scope guard — an explicit method instead
// of a destructor, since Go has no automatic destructors to hook.
type Builder struct {
	frames   []frame
	maxDepth int
	depthErr bool
}

// NewBuilder creates a Builder with one open frame, ready to accept
// StartNode/Token calls. maxDepth of 0 uses DefaultMaxDepth.
func NewBuilder(maxDepth int) *Builder {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Builder{
		frames:   []frame{{}}, // frames[0] is never finished; it becomes the root
		maxDepth: maxDepth,
	}
}

// NodeGuard is returned by StartNode; Finish must be called exactly once
// to close the node it opened.
type NodeGuard struct {
	b       *Builder
	kind    Kind
	opened  bool
	wasOver bool
}

// StartNode pushes a new frame of the given kind. If the depth limit
// would be exceeded, no frame is pushed and nothing is added to the
// tree; the returned guard reports OverDepth and its Finish is a no-op,
// so every StartNode is still matched by exactly one Finish from the
// caller's point of view.
func (b *Builder) StartNode(kind Kind) *NodeGuard {
	if len(b.frames) > b.maxDepth {
		if !b.depthErr {
			b.depthErr = true
		}
		return &NodeGuard{b: b, kind: kind, wasOver: true}
	}
	b.frames = append(b.frames, frame{kind: kind})
	return &NodeGuard{b: b, kind: kind, opened: true}
}

// Finish closes the node this guard opened, attaching it as a child of
// the new top frame. Safe to call multiple times; only the first call
// has an effect.
func (g *NodeGuard) Finish() {
	if g == nil || !g.opened {
		return
	}
	g.opened = false
	b := g.b
	top := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	node := &GreenNode{Kind: top.kind, Children: top.children}
	for _, c := range top.children {
		if c.Node != nil {
			node.width += c.Node.width
		} else {
			node.width += len(c.Token.Text)
		}
	}
	parent := &b.frames[len(b.frames)-1]
	parent.children = append(parent.children, childNode(node))
}

// OverDepth reports whether this guard was refused because the depth
// limit was exceeded.
func (g *NodeGuard) OverDepth() bool { return g.wasOver }

// Checkpoint marks a position among the current top frame's children, to
// be wrapped later by StartNodeAt. Used for NonNullType, where the
// grammar only learns a '!' follows after it has already parsed the
// inner NamedType or ListType.
type Checkpoint struct {
	frameIndex int
	childIndex int
}

// Checkpoint captures the current top frame and its child count.
func (b *Builder) Checkpoint() Checkpoint {
	top := len(b.frames) - 1
	return Checkpoint{frameIndex: top, childIndex: len(b.frames[top].children)}
}

// StartNodeAt opens a new node that retroactively wraps every child
// appended to the checkpointed frame since the checkpoint was taken,
// inserting the new node at that position instead of appending at the
// end — the standard "wrap a previously-parsed sibling" technique for a
// stack-only green-tree builder.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) *NodeGuard {
	top := len(b.frames) - 1
	if cp.frameIndex != top {
		panic("syntax: StartNodeAt checkpoint does not belong to the current frame")
	}
	children := b.frames[top].children
	wrapped := append([]GreenChild(nil), children[cp.childIndex:]...)
	b.frames[top].children = children[:cp.childIndex]
	b.frames = append(b.frames, frame{kind: kind, children: wrapped})
	return &NodeGuard{b: b, kind: kind, opened: true}
}

// Token appends a leaf token to the current top frame.
func (b *Builder) Token(kind Kind, text string) {
	top := &b.frames[len(b.frames)-1]
	top.children = append(top.children, childToken(&GreenToken{Kind: kind, Text: text}))
}

// Depth returns the number of currently open frames, including the
// implicit root frame.
func (b *Builder) Depth() int { return len(b.frames) }

// Finish requires exactly one frame remaining (the root) and returns the
// completed Tree. Calling it with unbalanced StartNode/Finish pairs is a
// programming error in the grammar and panics loudly.
func (b *Builder) Finish(errors []token.Error) *Tree {
	if len(b.frames) != 1 {
		panic(fmt.Sprintf("syntax: Builder.Finish called with %d open frames, expected 1 (root) — a StartNode was never matched by Finish", len(b.frames)))
	}
	root := b.frames[0]
	// The implicit root frame is always DOCUMENT, even on empty or
	// wholly invalid input.
	node := &GreenNode{Kind: DOCUMENT, Children: root.children}
	for _, c := range root.children {
		if c.Node != nil {
			node.width += c.Node.width
		} else {
			node.width += len(c.Token.Text)
		}
	}
	return &Tree{Root: node, Errors: errors}
}
