package ast_test

import (
	"testing"

	"github.com/aledsdavies/gqlcst/pkgs/ast"
	"github.com/aledsdavies/gqlcst/pkgs/parser"
	"github.com/aledsdavies/gqlcst/pkgs/syntax"
)

func parseDoc(t *testing.T, input string) *ast.Document {
	t.Helper()
	tree := parser.Parse(input)
	return ast.NewDocument(syntax.NewRoot(tree.Root))
}

func firstField(t *testing.T, doc *ast.Document) *ast.Field {
	t.Helper()
	op, ok := doc.Definitions()[0].(*ast.OperationDefinition)
	if !ok {
		t.Fatalf("definition is %T, want *ast.OperationDefinition", doc.Definitions()[0])
	}
	sels := op.SelectionSet().Selections()
	if len(sels) == 0 {
		t.Fatal("no selections")
	}
	field, ok := sels[0].(*ast.Field)
	if !ok {
		t.Fatalf("selection is %T, want *ast.Field", sels[0])
	}
	return field
}

func firstArgValue(t *testing.T, doc *ast.Document) ast.Value {
	t.Helper()
	field := firstField(t, doc)
	args := field.Arguments().List()
	if len(args) == 0 {
		t.Fatal("no arguments")
	}
	return args[0].Value()
}

func TestStringValueDecodedLineEscapes(t *testing.T) {
	doc := parseDoc(t, `{ a(b: "hi\nthere é \"quoted\"") }`)
	sv, ok := firstArgValue(t, doc).(*ast.StringValue)
	if !ok {
		t.Fatalf("value is %T, want *ast.StringValue", firstArgValue(t, doc))
	}
	if sv.IsBlock() {
		t.Error("IsBlock() = true, want false for a line string")
	}
	want := "hi\nthere é \"quoted\""
	if got := sv.Decoded(); got != want {
		t.Errorf("Decoded() = %q, want %q", got, want)
	}
}

func TestStringValueDecodedSurrogatePair(t *testing.T) {
	doc := parseDoc(t, "{ a(b: \"\\uD83D\\uDE00\") }")
	sv, ok := firstArgValue(t, doc).(*ast.StringValue)
	if !ok {
		t.Fatalf("value is %T, want *ast.StringValue", firstArgValue(t, doc))
	}
	want := "\U0001F600"
	if got := sv.Decoded(); got != want {
		t.Errorf("Decoded() = %q, want %q (single code point, not two replacement characters)", got, want)
	}
	if n := len([]rune(sv.Decoded())); n != 1 {
		t.Errorf("Decoded() has %d runes, want 1", n)
	}
}

func TestStringValueDecodedUnpairedSurrogate(t *testing.T) {
	doc := parseDoc(t, `{ a(b: "\uD83Dx") }`)
	sv, ok := firstArgValue(t, doc).(*ast.StringValue)
	if !ok {
		t.Fatalf("value is %T, want *ast.StringValue", firstArgValue(t, doc))
	}
	want := "�x"
	if got := sv.Decoded(); got != want {
		t.Errorf("Decoded() = %q, want %q for an unpaired high surrogate", got, want)
	}
}

func TestStringValueDecodedBlockDedent(t *testing.T) {
	input := "{ a(b: \"\"\"\n    Hello,\n      World!\n\n    Yours,\n      GraphQL.\n  \"\"\") }"
	doc := parseDoc(t, input)
	sv, ok := firstArgValue(t, doc).(*ast.StringValue)
	if !ok {
		t.Fatalf("value is %T, want *ast.StringValue", firstArgValue(t, doc))
	}
	if !sv.IsBlock() {
		t.Error("IsBlock() = false, want true for a block string")
	}
	want := "Hello,\n  World!\n\nYours,\n  GraphQL."
	if got := sv.Decoded(); got != want {
		t.Errorf("Decoded() =\n%q\nwant\n%q", got, want)
	}
}

func TestStringValueDecodedBlockEscapedTripleQuote(t *testing.T) {
	doc := parseDoc(t, `{ a(b: """He said \"""hi\""".""") }`)
	sv, ok := firstArgValue(t, doc).(*ast.StringValue)
	if !ok {
		t.Fatalf("value is %T, want *ast.StringValue", firstArgValue(t, doc))
	}
	if got, want := sv.Decoded(), `He said """hi""".`; got != want {
		t.Errorf("Decoded() = %q, want %q", got, want)
	}
}

func TestValueVariantsRoundTripThroughWrap(t *testing.T) {
	doc := parseDoc(t, `{ a(i: 7, f: 3.5, s: "x", b: true, n: null, e: RED) }`)
	field := firstField(t, doc)
	args := field.Arguments().List()
	if len(args) != 6 {
		t.Fatalf("got %d arguments, want 6", len(args))
	}

	iv, ok := args[0].Value().(*ast.IntValue)
	if !ok {
		t.Fatalf("args[0] is %T, want *ast.IntValue", args[0].Value())
	}
	if n, err := iv.Int64(); err != nil || n != 7 {
		t.Errorf("Int64() = (%d, %v), want (7, nil)", n, err)
	}

	fv, ok := args[1].Value().(*ast.FloatValue)
	if !ok {
		t.Fatalf("args[1] is %T, want *ast.FloatValue", args[1].Value())
	}
	if f, err := fv.Float64(); err != nil || f != 3.5 {
		t.Errorf("Float64() = (%v, %v), want (3.5, nil)", f, err)
	}

	if _, ok := args[2].Value().(*ast.StringValue); !ok {
		t.Errorf("args[2] is %T, want *ast.StringValue", args[2].Value())
	}

	bv, ok := args[3].Value().(*ast.BooleanValue)
	if !ok || !bv.Bool() {
		t.Fatalf("args[3] = %+v, want BooleanValue true", args[3].Value())
	}

	if _, ok := args[4].Value().(*ast.NullValue); !ok {
		t.Errorf("args[4] is %T, want *ast.NullValue", args[4].Value())
	}

	ev, ok := args[5].Value().(*ast.EnumValue)
	if !ok || ev.Name() != "RED" {
		t.Fatalf("args[5] = %+v, want EnumValue RED", args[5].Value())
	}
}

func TestListAndObjectValues(t *testing.T) {
	doc := parseDoc(t, `{ a(l: [1, 2, 3], o: {x: 1, y: "z"}) }`)
	field := firstField(t, doc)
	args := field.Arguments().List()
	if len(args) != 2 {
		t.Fatalf("got %d arguments, want 2", len(args))
	}

	lv, ok := args[0].Value().(*ast.ListValue)
	if !ok {
		t.Fatalf("args[0] is %T, want *ast.ListValue", args[0].Value())
	}
	elems := lv.Values()
	if len(elems) != 3 {
		t.Fatalf("got %d list elements, want 3", len(elems))
	}
	for i, want := range []string{"1", "2", "3"} {
		iv, ok := elems[i].(*ast.IntValue)
		if !ok || iv.Text() != want {
			t.Errorf("elems[%d] = %+v, want IntValue %s", i, elems[i], want)
		}
	}

	ov, ok := args[1].Value().(*ast.ObjectValue)
	if !ok {
		t.Fatalf("args[1] is %T, want *ast.ObjectValue", args[1].Value())
	}
	fields := ov.Fields()
	if len(fields) != 2 || fields[0].Name() != "x" || fields[1].Name() != "y" {
		t.Fatalf("fields = %v, want [x y]", fields)
	}
	if _, ok := fields[1].Value().(*ast.StringValue); !ok {
		t.Errorf("fields[1].Value() is %T, want *ast.StringValue", fields[1].Value())
	}
}

func TestTypeVariants(t *testing.T) {
	doc := parseDoc(t, `query Q($a: String, $b: [Int!]!, $c: [[ID]]) { f }`)
	op := doc.Definitions()[0].(*ast.OperationDefinition)
	vars := op.VariableDefinitions().List()
	if len(vars) != 3 {
		t.Fatalf("got %d variable definitions, want 3", len(vars))
	}

	if _, ok := vars[0].Type().(*ast.NamedType); !ok {
		t.Errorf("vars[0].Type() is %T, want *ast.NamedType", vars[0].Type())
	}

	nn, ok := vars[1].Type().(*ast.NonNullType)
	if !ok {
		t.Fatalf("vars[1].Type() is %T, want *ast.NonNullType", vars[1].Type())
	}
	lt, ok := nn.InnerType().(*ast.ListType)
	if !ok {
		t.Fatalf("inner type is %T, want *ast.ListType", nn.InnerType())
	}
	innerNN, ok := lt.ElementType().(*ast.NonNullType)
	if !ok {
		t.Fatalf("list element is %T, want *ast.NonNullType", lt.ElementType())
	}
	if named, ok := innerNN.InnerType().(*ast.NamedType); !ok || named.Name() != "Int" {
		t.Errorf("innermost type = %+v, want NamedType Int", innerNN.InnerType())
	}

	outerList, ok := vars[2].Type().(*ast.ListType)
	if !ok {
		t.Fatalf("vars[2].Type() is %T, want *ast.ListType", vars[2].Type())
	}
	innerList, ok := outerList.ElementType().(*ast.ListType)
	if !ok {
		t.Fatalf("element type is %T, want *ast.ListType", outerList.ElementType())
	}
	if named, ok := innerList.ElementType().(*ast.NamedType); !ok || named.Name() != "ID" {
		t.Errorf("innermost type = %+v, want NamedType ID", innerList.ElementType())
	}
}

// Accessors must stay total on a recovered (partially-malformed) tree:
// they return zero values rather than panicking when an expected child
// is missing.
func TestAccessorsAreTotalOnRecoveredTree(t *testing.T) {
	doc := parseDoc(t, "{ a { } }")
	op := doc.Definitions()[0].(*ast.OperationDefinition)
	sels := op.SelectionSet().Selections()
	if len(sels) != 1 {
		t.Fatalf("got %d selections, want 1", len(sels))
	}
	field := sels[0].(*ast.Field)
	if field.Name() != "a" {
		t.Fatalf("Name() = %q, want a", field.Name())
	}
	// The empty nested selection set is an error but must not panic here.
	inner := field.SelectionSet()
	if inner != nil {
		if got := len(inner.Selections()); got != 0 {
			t.Errorf("inner Selections() = %d, want 0", got)
		}
	}
}

func TestFragmentDefinitionAndDirectives(t *testing.T) {
	doc := parseDoc(t, `fragment F on User @skip(if: true) { id }`)
	frag, ok := doc.Definitions()[0].(*ast.FragmentDefinition)
	if !ok {
		t.Fatalf("definition is %T, want *ast.FragmentDefinition", doc.Definitions()[0])
	}
	if frag.Name() != "F" {
		t.Errorf("Name() = %q, want F", frag.Name())
	}
	if cond, ok := frag.TypeCondition(); !ok || cond != "User" {
		t.Errorf("TypeCondition() = (%q, %v), want (User, true)", cond, ok)
	}
	dirs := frag.Directives().List()
	if len(dirs) != 1 || dirs[0].Name() != "skip" {
		t.Fatalf("directives = %v, want one named skip", dirs)
	}
	args := dirs[0].Arguments().List()
	if len(args) != 1 || args[0].Name() != "if" {
		t.Fatalf("directive arguments = %v, want one named if", args)
	}
}
