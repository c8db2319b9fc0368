package syntax

import "testing"

func buildSample() *GreenNode {
	field := &GreenNode{Kind: FIELD, Children: []GreenChild{
		childToken(&GreenToken{Kind: NAME, Text: "hero"}),
	}}
	field.width = len("hero")

	selectionSet := &GreenNode{Kind: SELECTION_SET, Children: []GreenChild{
		childToken(&GreenToken{Kind: L_BRACE, Text: "{"}),
		childToken(&GreenToken{Kind: WHITESPACE, Text: " "}),
		childNode(field),
		childToken(&GreenToken{Kind: R_BRACE, Text: "}"}),
	}}
	selectionSet.width = 1 + 1 + field.width + 1

	root := &GreenNode{Kind: DOCUMENT, Children: []GreenChild{childNode(selectionSet)}}
	root.width = selectionSet.width
	return root
}

func TestSyntaxNodeNavigation(t *testing.T) {
	root := NewRoot(buildSample())
	if root.Kind() != DOCUMENT {
		t.Fatalf("root kind = %s, want DOCUMENT", root.Kind())
	}

	ss := root.FirstChildOfKind(SELECTION_SET)
	if ss == nil {
		t.Fatal("expected a SELECTION_SET child")
	}
	start, end := ss.TextRange()
	if start != 0 || end != 7 {
		t.Fatalf("TextRange() = (%d, %d), want (0, 7)", start, end)
	}
	if ss.Parent().Kind() != DOCUMENT {
		t.Fatalf("Parent().Kind() = %s, want DOCUMENT", ss.Parent().Kind())
	}

	field := ss.FirstChildOfKind(FIELD)
	if field == nil {
		t.Fatal("expected a FIELD child")
	}
	if got, want := field.Text(), "hero"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
	fStart, _ := field.TextRange()
	if fStart != 2 {
		t.Fatalf("field offset = %d, want 2", fStart)
	}

	name := field.FirstToken(NAME)
	if name == nil || name.Text != "hero" || name.Offset != 2 {
		t.Fatalf("FirstToken(NAME) = %+v, want Text=hero Offset=2", name)
	}
}

func TestSyntaxNodeEqual(t *testing.T) {
	root1 := NewRoot(buildSample())
	root2 := NewRoot(buildSample())

	a := root1.FirstChildOfKind(SELECTION_SET)
	b := root1.FirstChildOfKind(SELECTION_SET)
	if !a.Equal(b) {
		t.Error("two navigations to the same position should be Equal")
	}

	c := root2.FirstChildOfKind(SELECTION_SET)
	if a.Equal(c) {
		t.Error("nodes from different green trees should not be Equal even at the same offset")
	}
}

func TestChildrenIncludesTrivia(t *testing.T) {
	root := NewRoot(buildSample())
	ss := root.FirstChildOfKind(SELECTION_SET)

	elems := ss.Children()
	if len(elems) != 4 {
		t.Fatalf("got %d children, want 4", len(elems))
	}
	if elems[1].Token == nil || elems[1].Token.Kind != WHITESPACE {
		t.Fatalf("elems[1] = %+v, want a WHITESPACE token", elems[1])
	}
	if !elems[2].IsNode() {
		t.Fatal("elems[2] should be a node (FIELD)")
	}
}
