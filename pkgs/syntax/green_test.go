package syntax

import "testing"

func TestGreenNodeTextAndWidth(t *testing.T) {
	leaf := &GreenNode{Kind: NAMED_TYPE, Children: []GreenChild{
		childToken(&GreenToken{Kind: NAME, Text: "Int"}),
	}}
	leaf.width = len("Int")

	wrapper := &GreenNode{Kind: NON_NULL_TYPE, Children: []GreenChild{
		childNode(leaf),
		childToken(&GreenToken{Kind: BANG, Text: "!"}),
	}}
	wrapper.width = leaf.width + 1

	if got, want := wrapper.Text(), "Int!"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got, want := wrapper.Width(), 4; got != want {
		t.Errorf("Width() = %d, want %d", got, want)
	}
}

func TestKindIsToken(t *testing.T) {
	if !NAME.IsToken() {
		t.Error("NAME.IsToken() = false, want true")
	}
	if DOCUMENT.IsToken() {
		t.Error("DOCUMENT.IsToken() = true, want false")
	}
	if ERROR.IsToken() {
		t.Error("ERROR.IsToken() = true, want false")
	}
}
