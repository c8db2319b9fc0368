package syntax

import (
	"testing"

	"github.com/aledsdavies/gqlcst/pkgs/token"
)

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder(0)
	g := b.StartNode(OPERATION_DEFINITION)
	b.Token(L_BRACE, "{")
	b.Token(WHITESPACE, " ")
	b.Token(NAME, "hero")
	b.Token(R_BRACE, "}")
	g.Finish()

	tree := b.Finish(nil)
	if tree.Root.Kind != DOCUMENT {
		t.Fatalf("root kind = %s, want DOCUMENT", tree.Root.Kind)
	}
	if got, want := tree.Root.Text(), "{ hero}"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestBuilderFinishPanicsOnUnclosedNode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Finish to panic on an unbalanced builder")
		}
	}()
	b := NewBuilder(0)
	b.StartNode(FIELD)
	b.Finish(nil)
}

func TestBuilderDepthLimit(t *testing.T) {
	b := NewBuilder(3)
	var guards []*NodeGuard
	for i := 0; i < 10; i++ {
		guards = append(guards, b.StartNode(LIST_TYPE))
	}
	overCount := 0
	for _, g := range guards {
		if g.OverDepth() {
			overCount++
		}
	}
	if overCount == 0 {
		t.Fatal("expected at least one guard to report OverDepth")
	}
	for i := len(guards) - 1; i >= 0; i-- {
		guards[i].Finish()
	}
	tree := b.Finish([]token.Error{{Message: "maximum nesting depth exceeded"}})
	if tree.Root.Kind != DOCUMENT {
		t.Fatalf("root kind = %s, want DOCUMENT", tree.Root.Kind)
	}
}

func TestStartNodeAtWrapsPriorSiblings(t *testing.T) {
	b := NewBuilder(0)

	outer := b.StartNode(VARIABLE_DEFINITION)
	cp := b.Checkpoint()
	inner := b.StartNode(NAMED_TYPE)
	b.Token(NAME, "Int")
	inner.Finish()

	wrap := b.StartNodeAt(cp, NON_NULL_TYPE)
	b.Token(BANG, "!")
	wrap.Finish()
	outer.Finish()

	tree := b.Finish(nil)
	def := tree.Root.Children[0].Node
	if len(def.Children) != 1 {
		t.Fatalf("expected the NamedType to be wrapped into a single NonNullType child, got %d children", len(def.Children))
	}
	nn := def.Children[0].Node
	if nn.Kind != NON_NULL_TYPE {
		t.Fatalf("wrapped node kind = %s, want NON_NULL_TYPE", nn.Kind)
	}
	if got, want := nn.Text(), "Int!"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}
