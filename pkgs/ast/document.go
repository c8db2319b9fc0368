// Package ast is a typed, read-only projection over pkgs/syntax: every
// accessor here is a query against the underlying SyntaxNode, not a
// separate representation — there is no parallel tree to keep in sync.
package ast

import "github.com/aledsdavies/gqlcst/pkgs/syntax"

// Document wraps the DOCUMENT root of a parsed tree.
type Document struct {
	node *syntax.SyntaxNode
}

// NewDocument wraps a DOCUMENT SyntaxNode. Callers typically get the
// SyntaxNode from syntax.NewRoot(tree.Root) after parsing.
func NewDocument(node *syntax.SyntaxNode) *Document { return &Document{node: node} }

// Node exposes the underlying syntax node, for callers that need
// position or text information the typed facade doesn't surface
// directly.
func (d *Document) Node() *syntax.SyntaxNode { return d.node }

// Definitions returns every top-level definition, each resolved to its
// concrete variant.
func (d *Document) Definitions() []Definition {
	var out []Definition
	for _, child := range d.node.ChildNodes() {
		if def := wrapDefinition(child); def != nil {
			out = append(out, def)
		}
	}
	return out
}

// Definition is the sum type of every kind of top-level definition: an
// executable operation or fragment, or a type-system definition or
// extension.
type Definition interface {
	Node() *syntax.SyntaxNode
	isDefinition()
}

func wrapDefinition(n *syntax.SyntaxNode) Definition {
	switch n.Kind() {
	case syntax.OPERATION_DEFINITION:
		return &OperationDefinition{node: n}
	case syntax.FRAGMENT_DEFINITION:
		return &FragmentDefinition{node: n}
	case syntax.SCHEMA_DEFINITION:
		return &SchemaDefinition{node: n}
	case syntax.SCHEMA_EXTENSION:
		return &SchemaExtension{node: n}
	case syntax.SCALAR_TYPE_DEFINITION:
		return &ScalarTypeDefinition{node: n}
	case syntax.SCALAR_TYPE_EXTENSION:
		return &ScalarTypeExtension{node: n}
	case syntax.OBJECT_TYPE_DEFINITION:
		return &ObjectTypeDefinition{node: n}
	case syntax.OBJECT_TYPE_EXTENSION:
		return &ObjectTypeExtension{node: n}
	case syntax.INTERFACE_TYPE_DEFINITION:
		return &InterfaceTypeDefinition{node: n}
	case syntax.INTERFACE_TYPE_EXTENSION:
		return &InterfaceTypeExtension{node: n}
	case syntax.UNION_TYPE_DEFINITION:
		return &UnionTypeDefinition{node: n}
	case syntax.UNION_TYPE_EXTENSION:
		return &UnionTypeExtension{node: n}
	case syntax.ENUM_TYPE_DEFINITION:
		return &EnumTypeDefinition{node: n}
	case syntax.ENUM_TYPE_EXTENSION:
		return &EnumTypeExtension{node: n}
	case syntax.INPUT_OBJECT_TYPE_DEFINITION:
		return &InputObjectTypeDefinition{node: n}
	case syntax.INPUT_OBJECT_TYPE_EXTENSION:
		return &InputObjectTypeExtension{node: n}
	case syntax.DIRECTIVE_DEFINITION:
		return &DirectiveDefinition{node: n}
	default:
		return nil
	}
}

// description reads an optional leading DESCRIPTION child's string text,
// quotes included — decoding is the caller's job via StringValue.Decoded
// semantics, mirrored here as a free function since descriptions aren't
// full Value nodes.
func description(n *syntax.SyntaxNode) (string, bool) {
	d := n.FirstChildOfKind(syntax.DESCRIPTION)
	if d == nil {
		return "", false
	}
	t := d.FirstToken(syntax.STRING_VALUE)
	if t == nil {
		return "", false
	}
	return t.Text, true
}

func name(n *syntax.SyntaxNode) string {
	t := n.FirstToken(syntax.NAME)
	if t == nil {
		return ""
	}
	return t.Text
}

// definitionName reads a type-system definition or extension's own name
// out of its DEFINITION_NAME child. Unlike name(), it never risks
// returning the node's own leading keyword (scalar/type/interface/
// union/enum/input/directive), which is also tagged NAME and would
// otherwise be the first match.
func definitionName(n *syntax.SyntaxNode) string {
	s, _ := namedChildText(n, syntax.DEFINITION_NAME)
	return s
}

func namedChildText(n *syntax.SyntaxNode, kind syntax.Kind) (string, bool) {
	c := n.FirstChildOfKind(kind)
	if c == nil {
		return "", false
	}
	return name(c), true
}

func directivesOf(n *syntax.SyntaxNode) *Directives {
	d := n.FirstChildOfKind(syntax.DIRECTIVES)
	if d == nil {
		return nil
	}
	return &Directives{node: d}
}
