package ast

import "github.com/aledsdavies/gqlcst/pkgs/syntax"

type SchemaDefinition struct{ node *syntax.SyntaxNode }

func (d *SchemaDefinition) Node() *syntax.SyntaxNode { return d.node }
func (*SchemaDefinition) isDefinition()              {}
func (d *SchemaDefinition) Description() (string, bool) { return description(d.node) }
func (d *SchemaDefinition) Directives() *Directives      { return directivesOf(d.node) }

func (d *SchemaDefinition) RootOperationTypes() []*RootOperationTypeDefinition {
	var out []*RootOperationTypeDefinition
	for _, c := range d.node.ChildrenOfKind(syntax.ROOT_OPERATION_TYPE_DEFINITION) {
		out = append(out, &RootOperationTypeDefinition{node: c})
	}
	return out
}

type RootOperationTypeDefinition struct{ node *syntax.SyntaxNode }

func (r *RootOperationTypeDefinition) Node() *syntax.SyntaxNode { return r.node }

// OperationType returns "query", "mutation", or "subscription".
func (r *RootOperationTypeDefinition) OperationType() string { return name(r.node) }

func (r *RootOperationTypeDefinition) Type() Type {
	n := r.node.FirstChildOfKind(syntax.NAMED_TYPE)
	if n == nil {
		return nil
	}
	return &NamedType{node: n}
}

type SchemaExtension struct{ node *syntax.SyntaxNode }

func (d *SchemaExtension) Node() *syntax.SyntaxNode { return d.node }
func (*SchemaExtension) isDefinition()              {}
func (d *SchemaExtension) Directives() *Directives  { return directivesOf(d.node) }

func (d *SchemaExtension) RootOperationTypes() []*RootOperationTypeDefinition {
	var out []*RootOperationTypeDefinition
	for _, c := range d.node.ChildrenOfKind(syntax.ROOT_OPERATION_TYPE_DEFINITION) {
		out = append(out, &RootOperationTypeDefinition{node: c})
	}
	return out
}

type ScalarTypeDefinition struct{ node *syntax.SyntaxNode }

func (d *ScalarTypeDefinition) Node() *syntax.SyntaxNode    { return d.node }
func (*ScalarTypeDefinition) isDefinition()                 {}
func (d *ScalarTypeDefinition) Description() (string, bool) { return description(d.node) }
func (d *ScalarTypeDefinition) Name() string                { return definitionName(d.node) }
func (d *ScalarTypeDefinition) Directives() *Directives      { return directivesOf(d.node) }

type ScalarTypeExtension struct{ node *syntax.SyntaxNode }

func (d *ScalarTypeExtension) Node() *syntax.SyntaxNode { return d.node }
func (*ScalarTypeExtension) isDefinition()              {}
func (d *ScalarTypeExtension) Name() string             { return definitionName(d.node) }
func (d *ScalarTypeExtension) Directives() *Directives  { return directivesOf(d.node) }

type ObjectTypeDefinition struct{ node *syntax.SyntaxNode }

func (d *ObjectTypeDefinition) Node() *syntax.SyntaxNode    { return d.node }
func (*ObjectTypeDefinition) isDefinition()                 {}
func (d *ObjectTypeDefinition) Description() (string, bool) { return description(d.node) }
func (d *ObjectTypeDefinition) Name() string                { return definitionName(d.node) }
func (d *ObjectTypeDefinition) Interfaces() []string        { return interfaceNames(d.node) }
func (d *ObjectTypeDefinition) Directives() *Directives      { return directivesOf(d.node) }
func (d *ObjectTypeDefinition) Fields() []*FieldDefinition   { return fieldDefinitions(d.node) }

type ObjectTypeExtension struct{ node *syntax.SyntaxNode }

func (d *ObjectTypeExtension) Node() *syntax.SyntaxNode  { return d.node }
func (*ObjectTypeExtension) isDefinition()               {}
func (d *ObjectTypeExtension) Name() string              { return definitionName(d.node) }
func (d *ObjectTypeExtension) Interfaces() []string      { return interfaceNames(d.node) }
func (d *ObjectTypeExtension) Directives() *Directives   { return directivesOf(d.node) }
func (d *ObjectTypeExtension) Fields() []*FieldDefinition { return fieldDefinitions(d.node) }

type InterfaceTypeDefinition struct{ node *syntax.SyntaxNode }

func (d *InterfaceTypeDefinition) Node() *syntax.SyntaxNode    { return d.node }
func (*InterfaceTypeDefinition) isDefinition()                 {}
func (d *InterfaceTypeDefinition) Description() (string, bool) { return description(d.node) }
func (d *InterfaceTypeDefinition) Name() string                { return definitionName(d.node) }
func (d *InterfaceTypeDefinition) Interfaces() []string        { return interfaceNames(d.node) }
func (d *InterfaceTypeDefinition) Directives() *Directives      { return directivesOf(d.node) }
func (d *InterfaceTypeDefinition) Fields() []*FieldDefinition   { return fieldDefinitions(d.node) }

type InterfaceTypeExtension struct{ node *syntax.SyntaxNode }

func (d *InterfaceTypeExtension) Node() *syntax.SyntaxNode  { return d.node }
func (*InterfaceTypeExtension) isDefinition()               {}
func (d *InterfaceTypeExtension) Name() string              { return definitionName(d.node) }
func (d *InterfaceTypeExtension) Interfaces() []string      { return interfaceNames(d.node) }
func (d *InterfaceTypeExtension) Directives() *Directives   { return directivesOf(d.node) }
func (d *InterfaceTypeExtension) Fields() []*FieldDefinition { return fieldDefinitions(d.node) }

func interfaceNames(n *syntax.SyntaxNode) []string {
	impl := n.FirstChildOfKind(syntax.IMPLEMENTS_INTERFACES)
	if impl == nil {
		return nil
	}
	var out []string
	for _, t := range impl.ChildrenOfKind(syntax.NAMED_TYPE) {
		out = append(out, name(t))
	}
	return out
}

func fieldDefinitions(n *syntax.SyntaxNode) []*FieldDefinition {
	fd := n.FirstChildOfKind(syntax.FIELDS_DEFINITION)
	if fd == nil {
		return nil
	}
	var out []*FieldDefinition
	for _, c := range fd.ChildrenOfKind(syntax.FIELD_DEFINITION) {
		out = append(out, &FieldDefinition{node: c})
	}
	return out
}

type FieldDefinition struct{ node *syntax.SyntaxNode }

func (f *FieldDefinition) Node() *syntax.SyntaxNode    { return f.node }
func (f *FieldDefinition) Description() (string, bool) { return description(f.node) }
func (f *FieldDefinition) Name() string                { return name(f.node) }
func (f *FieldDefinition) Directives() *Directives      { return directivesOf(f.node) }

func (f *FieldDefinition) Arguments() []*InputValueDefinition {
	ad := f.node.FirstChildOfKind(syntax.ARGUMENTS_DEFINITION)
	if ad == nil {
		return nil
	}
	var out []*InputValueDefinition
	for _, c := range ad.ChildrenOfKind(syntax.INPUT_VALUE_DEFINITION) {
		out = append(out, &InputValueDefinition{node: c})
	}
	return out
}

func (f *FieldDefinition) Type() Type {
	for _, c := range f.node.ChildNodes() {
		if t := wrapType(c); t != nil {
			return t
		}
	}
	return nil
}

type InputValueDefinition struct{ node *syntax.SyntaxNode }

func (v *InputValueDefinition) Node() *syntax.SyntaxNode    { return v.node }
func (v *InputValueDefinition) Description() (string, bool) { return description(v.node) }
func (v *InputValueDefinition) Name() string                { return name(v.node) }
func (v *InputValueDefinition) Directives() *Directives      { return directivesOf(v.node) }

func (v *InputValueDefinition) Type() Type {
	for _, c := range v.node.ChildNodes() {
		if t := wrapType(c); t != nil {
			return t
		}
	}
	return nil
}

func (v *InputValueDefinition) DefaultValue() (Value, bool) {
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

type UnionTypeDefinition struct{ node *syntax.SyntaxNode }

func (d *UnionTypeDefinition) Node() *syntax.SyntaxNode    { return d.node }
func (*UnionTypeDefinition) isDefinition()                 {}
func (d *UnionTypeDefinition) Description() (string, bool) { return description(d.node) }
func (d *UnionTypeDefinition) Name() string                { return definitionName(d.node) }
func (d *UnionTypeDefinition) Directives() *Directives      { return directivesOf(d.node) }
func (d *UnionTypeDefinition) MemberTypes() []string        { return unionMembers(d.node) }

type UnionTypeExtension struct{ node *syntax.SyntaxNode }

func (d *UnionTypeExtension) Node() *syntax.SyntaxNode { return d.node }
func (*UnionTypeExtension) isDefinition()              {}
func (d *UnionTypeExtension) Name() string             { return definitionName(d.node) }
func (d *UnionTypeExtension) Directives() *Directives  { return directivesOf(d.node) }
func (d *UnionTypeExtension) MemberTypes() []string    { return unionMembers(d.node) }

func unionMembers(n *syntax.SyntaxNode) []string {
	m := n.FirstChildOfKind(syntax.UNION_MEMBER_TYPES)
	if m == nil {
		return nil
	}
	var out []string
	for _, t := range m.ChildrenOfKind(syntax.NAMED_TYPE) {
		out = append(out, name(t))
	}
	return out
}

type EnumTypeDefinition struct{ node *syntax.SyntaxNode }

func (d *EnumTypeDefinition) Node() *syntax.SyntaxNode    { return d.node }
func (*EnumTypeDefinition) isDefinition()                 {}
func (d *EnumTypeDefinition) Description() (string, bool) { return description(d.node) }
func (d *EnumTypeDefinition) Name() string                { return definitionName(d.node) }
func (d *EnumTypeDefinition) Directives() *Directives      { return directivesOf(d.node) }
func (d *EnumTypeDefinition) Values() []*EnumValueDefinition {
	return enumValueDefinitions(d.node)
}

type EnumTypeExtension struct{ node *syntax.SyntaxNode }

func (d *EnumTypeExtension) Node() *syntax.SyntaxNode        { return d.node }
func (*EnumTypeExtension) isDefinition()                     {}
func (d *EnumTypeExtension) Name() string                    { return definitionName(d.node) }
func (d *EnumTypeExtension) Directives() *Directives          { return directivesOf(d.node) }
func (d *EnumTypeExtension) Values() []*EnumValueDefinition {
	return enumValueDefinitions(d.node)
}

func enumValueDefinitions(n *syntax.SyntaxNode) []*EnumValueDefinition {
	evd := n.FirstChildOfKind(syntax.ENUM_VALUES_DEFINITION)
	if evd == nil {
		return nil
	}
	var out []*EnumValueDefinition
	for _, c := range evd.ChildrenOfKind(syntax.ENUM_VALUE_DEFINITION) {
		out = append(out, &EnumValueDefinition{node: c})
	}
	return out
}

type EnumValueDefinition struct{ node *syntax.SyntaxNode }

func (v *EnumValueDefinition) Node() *syntax.SyntaxNode    { return v.node }
func (v *EnumValueDefinition) Description() (string, bool) { return description(v.node) }
func (v *EnumValueDefinition) Value() string                { return name(v.node) }
func (v *EnumValueDefinition) Directives() *Directives       { return directivesOf(v.node) }

type InputObjectTypeDefinition struct{ node *syntax.SyntaxNode }

func (d *InputObjectTypeDefinition) Node() *syntax.SyntaxNode    { return d.node }
func (*InputObjectTypeDefinition) isDefinition()                 {}
func (d *InputObjectTypeDefinition) Description() (string, bool) { return description(d.node) }
func (d *InputObjectTypeDefinition) Name() string                { return definitionName(d.node) }
func (d *InputObjectTypeDefinition) Directives() *Directives      { return directivesOf(d.node) }
func (d *InputObjectTypeDefinition) Fields() []*InputValueDefinition {
	return inputFieldDefinitions(d.node)
}

type InputObjectTypeExtension struct{ node *syntax.SyntaxNode }

func (d *InputObjectTypeExtension) Node() *syntax.SyntaxNode { return d.node }
func (*InputObjectTypeExtension) isDefinition()              {}
func (d *InputObjectTypeExtension) Name() string             { return definitionName(d.node) }
func (d *InputObjectTypeExtension) Directives() *Directives  { return directivesOf(d.node) }
func (d *InputObjectTypeExtension) Fields() []*InputValueDefinition {
	return inputFieldDefinitions(d.node)
}

func inputFieldDefinitions(n *syntax.SyntaxNode) []*InputValueDefinition {
	ifd := n.FirstChildOfKind(syntax.INPUT_FIELDS_DEFINITION)
	if ifd == nil {
		return nil
	}
	var out []*InputValueDefinition
	for _, c := range ifd.ChildrenOfKind(syntax.INPUT_VALUE_DEFINITION) {
		out = append(out, &InputValueDefinition{node: c})
	}
	return out
}

type DirectiveDefinition struct{ node *syntax.SyntaxNode }

func (d *DirectiveDefinition) Node() *syntax.SyntaxNode    { return d.node }
func (*DirectiveDefinition) isDefinition()                 {}
func (d *DirectiveDefinition) Description() (string, bool) { return description(d.node) }
func (d *DirectiveDefinition) Name() string                { return definitionName(d.node) }

func (d *DirectiveDefinition) Arguments() []*InputValueDefinition {
	ad := d.node.FirstChildOfKind(syntax.ARGUMENTS_DEFINITION)
	if ad == nil {
		return nil
	}
	var out []*InputValueDefinition
	for _, c := range ad.ChildrenOfKind(syntax.INPUT_VALUE_DEFINITION) {
		out = append(out, &InputValueDefinition{node: c})
	}
	return out
}

// Repeatable reports whether the "repeatable" keyword is present.
func (d *DirectiveDefinition) Repeatable() bool {
	for _, t := range d.node.Tokens() {
		if t.Kind == syntax.NAME && t.Text == "repeatable" {
			return true
		}
	}
	return false
}

func (d *DirectiveDefinition) Locations() []string {
	dl := d.node.FirstChildOfKind(syntax.DIRECTIVE_LOCATIONS)
	if dl == nil {
		return nil
	}
	var out []string
	for _, t := range dl.Tokens() {
		if t.Kind == syntax.NAME {
			out = append(out, t.Text)
		}
	}
	return out
}
