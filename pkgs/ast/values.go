package ast

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/gqlcst/pkgs/syntax"
)

// Value is the sum type of every value literal GraphQL allows in
// argument, default-value, and object-field position.
type Value interface {
	Node() *syntax.SyntaxNode
	isValue()
}

func wrapValue(n *syntax.SyntaxNode) Value {
	switch n.Kind() {
	case syntax.VARIABLE:
		return &VariableRef{node: n}
	case syntax.INT_VALUE:
		return &IntValue{node: n}
	case syntax.FLOAT_VALUE:
		return &FloatValue{node: n}
	case syntax.STRING_VALUE:
		return &StringValue{node: n}
	case syntax.BOOLEAN_VALUE:
		return &BooleanValue{node: n}
	case syntax.NULL_VALUE:
		return &NullValue{node: n}
	case syntax.ENUM_VALUE:
		return &EnumValue{node: n}
	case syntax.LIST_VALUE:
		return &ListValue{node: n}
	case syntax.OBJECT_VALUE:
		return &ObjectValue{node: n}
	default:
		return nil
	}
}

// VariableRef is a "$name" used in value position.
type VariableRef struct{ node *syntax.SyntaxNode }

func (v *VariableRef) Node() *syntax.SyntaxNode { return v.node }
func (*VariableRef) isValue()                   {}
func (v *VariableRef) Name() string             { return name(v.node) }

type IntValue struct{ node *syntax.SyntaxNode }

func (v *IntValue) Node() *syntax.SyntaxNode { return v.node }
func (*IntValue) isValue()                   {}
func (v *IntValue) Text() string             { return tokenText(v.node, syntax.INT) }

// tokenText returns the text of a leaf value's own token. The node's
// Text would also include the trivia bumped in after that token.
func tokenText(n *syntax.SyntaxNode, kind syntax.Kind) string {
	t := n.FirstToken(kind)
	if t == nil {
		return ""
	}
	return t.Text
}

// Int64 parses the literal text as a base-10 integer. It can fail for
// values outside int64's range; the raw Text is always available
// regardless.
func (v *IntValue) Int64() (int64, error) {
	return strconv.ParseInt(v.Text(), 10, 64)
}

type FloatValue struct{ node *syntax.SyntaxNode }

func (v *FloatValue) Node() *syntax.SyntaxNode { return v.node }
func (*FloatValue) isValue()                   {}
func (v *FloatValue) Text() string             { return tokenText(v.node, syntax.FLOAT) }

func (v *FloatValue) Float64() (float64, error) {
	return strconv.ParseFloat(v.Text(), 64)
}

// StringValue is a StringValue literal, block or single-line, quotes
// included in Text.
type StringValue struct{ node *syntax.SyntaxNode }

func (v *StringValue) Node() *syntax.SyntaxNode { return v.node }
func (*StringValue) isValue()                   {}
func (v *StringValue) Text() string             { return tokenText(v.node, syntax.STRING) }

// IsBlock reports whether this is a """block""" string rather than a
// "line" string.
func (v *StringValue) IsBlock() bool {
	return strings.HasPrefix(v.Text(), `"""`)
}

// Decoded returns the string's content with surrounding quotes removed
// and, for line strings, escape sequences resolved. Block strings are
// returned with their block indentation stripped per the GraphQL block
// string value algorithm, but without further escape processing beyond
// the \""" literal-quote escape (original_source's apollo-parser
// str_value carries the same two-forked behavior).
func (v *StringValue) Decoded() string {
	text := v.Text()
	if v.IsBlock() {
		return decodeBlockString(strings.TrimSuffix(strings.TrimPrefix(text, `"""`), `"""`))
	}
	return decodeLineString(strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`))
}

func decodeLineString(body string) string {
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+4 < len(body) {
				if n, err := strconv.ParseUint(body[i+1:i+5], 16, 32); err == nil {
					high := rune(n)
					if high >= 0xD800 && high <= 0xDBFF {
						// A high surrogate must be immediately followed by a
						// "\uXXXX" low surrogate to form a single code point
						// (UTF-16 surrogate pair); an unpaired high surrogate
						// falls through to WriteRune, which yields U+FFFD.
						const pairLen = 1 + 4 + 1 + 4 // "uXXXX" + "\uXXXX"
						if i+pairLen < len(body) && body[i+5] == '\\' && body[i+6] == 'u' {
							if low, err := strconv.ParseUint(body[i+7:i+11], 16, 32); err == nil && low >= 0xDC00 && low <= 0xDFFF {
								b.WriteRune(0x10000 + (high-0xD800)*0x400 + (rune(low) - 0xDC00))
								i += 10
								continue
							}
						}
					}
					b.WriteRune(high)
					i += 4
					continue
				}
			}
			b.WriteString(`\u`)
		default:
			b.WriteByte('\\')
			b.WriteByte(body[i])
		}
	}
	return b.String()
}

func decodeBlockString(body string) string {
	body = strings.ReplaceAll(body, `\"""`, `"""`)
	lines := strings.Split(body, "\n")

	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue // blank line doesn't count
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

type BooleanValue struct{ node *syntax.SyntaxNode }

func (v *BooleanValue) Node() *syntax.SyntaxNode { return v.node }
func (*BooleanValue) isValue()                   {}
func (v *BooleanValue) Bool() bool               { return tokenText(v.node, syntax.NAME) == "true" }

type NullValue struct{ node *syntax.SyntaxNode }

func (v *NullValue) Node() *syntax.SyntaxNode { return v.node }
func (*NullValue) isValue()                   {}

type EnumValue struct{ node *syntax.SyntaxNode }

func (v *EnumValue) Node() *syntax.SyntaxNode { return v.node }
func (*EnumValue) isValue()                   {}
func (v *EnumValue) Name() string             { return name(v.node) }

type ListValue struct{ node *syntax.SyntaxNode }

func (v *ListValue) Node() *syntax.SyntaxNode { return v.node }
func (*ListValue) isValue()                   {}

func (v *ListValue) Values() []Value {
	var out []Value
	for _, c := range v.node.ChildNodes() {
		if val := wrapValue(c); val != nil {
			out = append(out, val)
		}
	}
	return out
}

type ObjectValue struct{ node *syntax.SyntaxNode }

func (v *ObjectValue) Node() *syntax.SyntaxNode { return v.node }
func (*ObjectValue) isValue()                   {}

func (v *ObjectValue) Fields() []*ObjectFieldValue {
	var out []*ObjectFieldValue
	for _, c := range v.node.ChildrenOfKind(syntax.OBJECT_FIELD) {
		out = append(out, &ObjectFieldValue{node: c})
	}
	return out
}

type ObjectFieldValue struct{ node *syntax.SyntaxNode }

func (f *ObjectFieldValue) Node() *syntax.SyntaxNode { return f.node }
func (f *ObjectFieldValue) Name() string             { return name(f.node) }
func (f *ObjectFieldValue) Value() Value {
	for _, c := range f.node.ChildNodes() {
		if v := wrapValue(c); v != nil {
			return v
		}
	}
	return nil
}

// Type is the sum type of NamedType, ListType, and NonNullType.
type Type interface {
	Node() *syntax.SyntaxNode
	isType()
}

func wrapType(n *syntax.SyntaxNode) Type {
	switch n.Kind() {
	case syntax.NAMED_TYPE:
		return &NamedType{node: n}
	case syntax.LIST_TYPE:
		return &ListType{node: n}
	case syntax.NON_NULL_TYPE:
		return &NonNullType{node: n}
	default:
		return nil
	}
}

type NamedType struct{ node *syntax.SyntaxNode }

func (t *NamedType) Node() *syntax.SyntaxNode { return t.node }
func (*NamedType) isType()                    {}
func (t *NamedType) Name() string             { return name(t.node) }

type ListType struct{ node *syntax.SyntaxNode }

func (t *ListType) Node() *syntax.SyntaxNode { return t.node }
func (*ListType) isType()                    {}

func (t *ListType) ElementType() Type {
	for _, c := range t.node.ChildNodes() {
		if inner := wrapType(c); inner != nil {
			return inner
		}
	}
	return nil
}

// NonNullType wraps a NamedType or ListType with a trailing '!'.
type NonNullType struct{ node *syntax.SyntaxNode }

func (t *NonNullType) Node() *syntax.SyntaxNode { return t.node }
func (*NonNullType) isType()                    {}

func (t *NonNullType) InnerType() Type {
	for _, c := range t.node.ChildNodes() {
		if inner := wrapType(c); inner != nil {
			return inner
		}
	}
	return nil
}
