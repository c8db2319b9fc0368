package ast

import "github.com/aledsdavies/gqlcst/pkgs/syntax"

// OperationDefinition is a query, mutation, or subscription — including
// the anonymous shorthand form, where OperationType returns "".
type OperationDefinition struct{ node *syntax.SyntaxNode }

func (o *OperationDefinition) Node() *syntax.SyntaxNode { return o.node }
func (*OperationDefinition) isDefinition()              {}

// OperationType returns "query", "mutation", or "subscription", or ""
// for the shorthand form (a bare SelectionSet with no leading keyword).
func (o *OperationDefinition) OperationType() string {
	t := o.node.FirstToken(syntax.NAME)
	if t == nil {
		return ""
	}
	switch t.Text {
	case "query", "mutation", "subscription":
		return t.Text
	default:
		return ""
	}
}

// Name returns the operation's name, or "" if anonymous.
func (o *OperationDefinition) Name() string {
	toks := o.node.Tokens()
	seenKeyword := o.OperationType() == ""
	for _, t := range toks {
		if t.Kind != syntax.NAME {
			continue
		}
		if !seenKeyword {
			seenKeyword = true
			continue
		}
		return t.Text
	}
	return ""
}

func (o *OperationDefinition) VariableDefinitions() *VariableDefinitions {
	n := o.node.FirstChildOfKind(syntax.VARIABLE_DEFINITIONS)
	if n == nil {
		return nil
	}
	return &VariableDefinitions{node: n}
}

func (o *OperationDefinition) Directives() *Directives { return directivesOf(o.node) }

func (o *OperationDefinition) SelectionSet() *SelectionSet {
	n := o.node.FirstChildOfKind(syntax.SELECTION_SET)
	if n == nil {
		return nil
	}
	return &SelectionSet{node: n}
}

// FragmentDefinition is a named "fragment Name on Type { ... }".
type FragmentDefinition struct{ node *syntax.SyntaxNode }

func (f *FragmentDefinition) Node() *syntax.SyntaxNode { return f.node }
func (*FragmentDefinition) isDefinition()              {}

func (f *FragmentDefinition) Name() string {
	n, _ := namedChildText(f.node, syntax.FRAGMENT_NAME)
	return n
}

// TypeCondition returns the "on Type" target and true, or "", false if
// the definition is malformed enough to be missing one.
func (f *FragmentDefinition) TypeCondition() (string, bool) {
	return typeCondition(f.node)
}

// typeCondition reads the type name out of a TYPE_CONDITION child. The
// leading "on" keyword is tagged NAME as well, so the type name is the
// second NAME token of that node, not the first.
func typeCondition(n *syntax.SyntaxNode) (string, bool) {
	tc := n.FirstChildOfKind(syntax.TYPE_CONDITION)
	if tc == nil {
		return "", false
	}
	seen := 0
	for _, t := range tc.Tokens() {
		if t.Kind == syntax.NAME {
			if seen++; seen == 2 {
				return t.Text, true
			}
		}
	}
	return "", false
}

func (f *FragmentDefinition) Directives() *Directives { return directivesOf(f.node) }

func (f *FragmentDefinition) SelectionSet() *SelectionSet {
	n := f.node.FirstChildOfKind(syntax.SELECTION_SET)
	if n == nil {
		return nil
	}
	return &SelectionSet{node: n}
}

// SelectionSet is an ordered list of selections.
type SelectionSet struct{ node *syntax.SyntaxNode }

func (s *SelectionSet) Node() *syntax.SyntaxNode { return s.node }

func (s *SelectionSet) Selections() []Selection {
	var out []Selection
	for _, c := range s.node.ChildNodes() {
		if sel := wrapSelection(c); sel != nil {
			out = append(out, sel)
		}
	}
	return out
}

// Selection is the sum type of Field, FragmentSpread, and InlineFragment.
type Selection interface {
	Node() *syntax.SyntaxNode
	isSelection()
}

func wrapSelection(n *syntax.SyntaxNode) Selection {
	switch n.Kind() {
	case syntax.FIELD:
		return &Field{node: n}
	case syntax.FRAGMENT_SPREAD:
		return &FragmentSpread{node: n}
	case syntax.INLINE_FRAGMENT:
		return &InlineFragment{node: n}
	default:
		return nil
	}
}

// Field is a selected field, with an optional alias, arguments,
// directives, and (for composite fields) a nested SelectionSet.
type Field struct{ node *syntax.SyntaxNode }

func (f *Field) Node() *syntax.SyntaxNode { return f.node }
func (*Field) isSelection()               {}

// Alias returns the field's alias and true, or "", false if unaliased.
func (f *Field) Alias() (string, bool) {
	a := f.node.FirstChildOfKind(syntax.ALIAS)
	if a == nil {
		return "", false
	}
	return name(a), true
}

// Name returns the field's own name (never the alias).
func (f *Field) Name() string { return name(f.node) }

func (f *Field) Arguments() *Arguments {
	n := f.node.FirstChildOfKind(syntax.ARGUMENTS)
	if n == nil {
		return nil
	}
	return &Arguments{node: n}
}

func (f *Field) Directives() *Directives { return directivesOf(f.node) }

func (f *Field) SelectionSet() *SelectionSet {
	n := f.node.FirstChildOfKind(syntax.SELECTION_SET)
	if n == nil {
		return nil
	}
	return &SelectionSet{node: n}
}

// FragmentSpread is "...Name Directives?".
type FragmentSpread struct{ node *syntax.SyntaxNode }

func (f *FragmentSpread) Node() *syntax.SyntaxNode { return f.node }
func (*FragmentSpread) isSelection()               {}

func (f *FragmentSpread) Name() string {
	n, _ := namedChildText(f.node, syntax.FRAGMENT_NAME)
	return n
}

func (f *FragmentSpread) Directives() *Directives { return directivesOf(f.node) }

// InlineFragment is "...on Type? Directives? SelectionSet".
type InlineFragment struct{ node *syntax.SyntaxNode }

func (f *InlineFragment) Node() *syntax.SyntaxNode { return f.node }
func (*InlineFragment) isSelection()               {}

// TypeCondition returns the "on Type" target and true, or "", false if
// there is none.
func (f *InlineFragment) TypeCondition() (string, bool) {
	return typeCondition(f.node)
}

func (f *InlineFragment) Directives() *Directives { return directivesOf(f.node) }

func (f *InlineFragment) SelectionSet() *SelectionSet {
	n := f.node.FirstChildOfKind(syntax.SELECTION_SET)
	if n == nil {
		return nil
	}
	return &SelectionSet{node: n}
}

// Arguments is an ordered, possibly-repeated-name list of Argument
// (uniqueness of names is a validation concern the lossless layer
// doesn't enforce).
type Arguments struct{ node *syntax.SyntaxNode }

func (a *Arguments) Node() *syntax.SyntaxNode { return a.node }

func (a *Arguments) List() []*Argument {
	var out []*Argument
	for _, c := range a.node.ChildrenOfKind(syntax.ARGUMENT) {
		out = append(out, &Argument{node: c})
	}
	return out
}

type Argument struct{ node *syntax.SyntaxNode }

func (a *Argument) Node() *syntax.SyntaxNode { return a.node }
func (a *Argument) Name() string             { return name(a.node) }
func (a *Argument) Value() Value {
	for _, c := range a.node.ChildNodes() {
		if v := wrapValue(c); v != nil {
			return v
		}
	}
	return nil
}

// Directives is an ordered list of Directive.
type Directives struct{ node *syntax.SyntaxNode }

func (d *Directives) Node() *syntax.SyntaxNode { return d.node }

func (d *Directives) List() []*Directive {
	var out []*Directive
	for _, c := range d.node.ChildrenOfKind(syntax.DIRECTIVE) {
		out = append(out, &Directive{node: c})
	}
	return out
}

type Directive struct{ node *syntax.SyntaxNode }

func (d *Directive) Node() *syntax.SyntaxNode { return d.node }
func (d *Directive) Name() string             { return name(d.node) }

func (d *Directive) Arguments() *Arguments {
	n := d.node.FirstChildOfKind(syntax.ARGUMENTS)
	if n == nil {
		return nil
	}
	return &Arguments{node: n}
}

// VariableDefinitions is the parenthesized list on an operation.
type VariableDefinitions struct{ node *syntax.SyntaxNode }

func (v *VariableDefinitions) Node() *syntax.SyntaxNode { return v.node }

func (v *VariableDefinitions) List() []*VariableDefinition {
	var out []*VariableDefinition
	for _, c := range v.node.ChildrenOfKind(syntax.VARIABLE_DEFINITION) {
		out = append(out, &VariableDefinition{node: c})
	}
	return out
}

type VariableDefinition struct{ node *syntax.SyntaxNode }

func (v *VariableDefinition) Node() *syntax.SyntaxNode { return v.node }

func (v *VariableDefinition) Variable() string {
	vr := v.node.FirstChildOfKind(syntax.VARIABLE)
	if vr == nil {
		return ""
	}
	return name(vr)
}

func (v *VariableDefinition) Type() Type {
	for _, c := range v.node.ChildNodes() {
		if t := wrapType(c); t != nil {
			return t
		}
	}
	return nil
}

// DefaultValue returns the "= Value" default and true, or nil, false.
func (v *VariableDefinition) DefaultValue() (Value, bool) {
	seenEqual := false
	for _, e := range v.node.Children() {
		if e.Token != nil && e.Token.Kind == syntax.EQUAL {
			seenEqual = true
			continue
		}
		if seenEqual && e.Node != nil {
			if val := wrapValue(e.Node); val != nil {
				return val, true
			}
		}
	}
	return nil, false
}

func (v *VariableDefinition) Directives() *Directives { return directivesOf(v.node) }
