// Package syntax implements the lossless concrete syntax tree: an
// immutable "green" tree built bottom-up by the parser, and a "red"
// navigable view computed lazily over it.
package syntax

import (
	"fmt"

	"github.com/aledsdavies/gqlcst/pkgs/token"
)

// Kind is the closed set of syntax kinds shared by tokens and composite
// nodes in the tree — one flat namespace, so a single switch over Kind()
// can classify any tree element.
type Kind int

const (
	ERROR Kind = iota

	// Token kinds, mirrored 1:1 from token.Kind.
	K_ILLEGAL
	K_EOF
	BANG
	DOLLAR
	L_PAREN
	R_PAREN
	SPREAD
	COLON
	EQUAL
	AT
	L_BRACKET
	R_BRACKET
	L_BRACE
	R_BRACE
	PIPE
	NAME
	STRING
	INT
	FLOAT
	WHITESPACE
	COMMENT
	COMMA

	// Composite node kinds — the GraphQL grammar's productions.
	DOCUMENT
	OPERATION_DEFINITION
	VARIABLE_DEFINITIONS
	VARIABLE_DEFINITION
	SELECTION_SET
	FIELD
	ALIAS
	ARGUMENTS
	ARGUMENT
	FRAGMENT_SPREAD
	INLINE_FRAGMENT
	FRAGMENT_DEFINITION
	FRAGMENT_NAME
	DEFINITION_NAME
	TYPE_CONDITION
	DIRECTIVES
	DIRECTIVE

	VARIABLE
	STRING_VALUE
	INT_VALUE
	FLOAT_VALUE
	BOOLEAN_VALUE
	NULL_VALUE
	ENUM_VALUE
	LIST_VALUE
	OBJECT_VALUE
	OBJECT_FIELD

	NAMED_TYPE
	LIST_TYPE
	NON_NULL_TYPE

	DESCRIPTION

	SCHEMA_DEFINITION
	SCHEMA_EXTENSION
	ROOT_OPERATION_TYPE_DEFINITION
	SCALAR_TYPE_DEFINITION
	SCALAR_TYPE_EXTENSION
	OBJECT_TYPE_DEFINITION
	OBJECT_TYPE_EXTENSION
	IMPLEMENTS_INTERFACES
	INTERFACE_TYPE_DEFINITION
	INTERFACE_TYPE_EXTENSION
	UNION_TYPE_DEFINITION
	UNION_TYPE_EXTENSION
	UNION_MEMBER_TYPES
	ENUM_TYPE_DEFINITION
	ENUM_TYPE_EXTENSION
	ENUM_VALUES_DEFINITION
	ENUM_VALUE_DEFINITION
	INPUT_OBJECT_TYPE_DEFINITION
	INPUT_OBJECT_TYPE_EXTENSION
	INPUT_FIELDS_DEFINITION
	INPUT_VALUE_DEFINITION
	FIELDS_DEFINITION
	FIELD_DEFINITION
	ARGUMENTS_DEFINITION
	DIRECTIVE_DEFINITION
	DIRECTIVE_LOCATIONS
)

var kindNames = [...]string{
	ERROR:                          "ERROR",
	K_ILLEGAL:                      "ILLEGAL",
	K_EOF:                          "EOF",
	BANG:                           "BANG",
	DOLLAR:                         "DOLLAR",
	L_PAREN:                        "L_PAREN",
	R_PAREN:                        "R_PAREN",
	SPREAD:                         "SPREAD",
	COLON:                          "COLON",
	EQUAL:                          "EQUAL",
	AT:                             "AT",
	L_BRACKET:                      "L_BRACKET",
	R_BRACKET:                      "R_BRACKET",
	L_BRACE:                        "L_BRACE",
	R_BRACE:                        "R_BRACE",
	PIPE:                           "PIPE",
	NAME:                           "NAME",
	STRING:                         "STRING",
	INT:                            "INT",
	FLOAT:                          "FLOAT",
	WHITESPACE:                     "WHITESPACE",
	COMMENT:                        "COMMENT",
	COMMA:                          "COMMA",
	DOCUMENT:                       "DOCUMENT",
	OPERATION_DEFINITION:           "OPERATION_DEFINITION",
	VARIABLE_DEFINITIONS:           "VARIABLE_DEFINITIONS",
	VARIABLE_DEFINITION:            "VARIABLE_DEFINITION",
	SELECTION_SET:                  "SELECTION_SET",
	FIELD:                          "FIELD",
	ALIAS:                          "ALIAS",
	ARGUMENTS:                      "ARGUMENTS",
	ARGUMENT:                       "ARGUMENT",
	FRAGMENT_SPREAD:                "FRAGMENT_SPREAD",
	INLINE_FRAGMENT:                "INLINE_FRAGMENT",
	FRAGMENT_DEFINITION:            "FRAGMENT_DEFINITION",
	FRAGMENT_NAME:                  "FRAGMENT_NAME",
	DEFINITION_NAME:                "DEFINITION_NAME",
	TYPE_CONDITION:                 "TYPE_CONDITION",
	DIRECTIVES:                     "DIRECTIVES",
	DIRECTIVE:                      "DIRECTIVE",
	VARIABLE:                       "VARIABLE",
	STRING_VALUE:                   "STRING_VALUE",
	INT_VALUE:                      "INT_VALUE",
	FLOAT_VALUE:                    "FLOAT_VALUE",
	BOOLEAN_VALUE:                  "BOOLEAN_VALUE",
	NULL_VALUE:                     "NULL_VALUE",
	ENUM_VALUE:                     "ENUM_VALUE",
	LIST_VALUE:                     "LIST_VALUE",
	OBJECT_VALUE:                   "OBJECT_VALUE",
	OBJECT_FIELD:                   "OBJECT_FIELD",
	NAMED_TYPE:                     "NAMED_TYPE",
	LIST_TYPE:                      "LIST_TYPE",
	NON_NULL_TYPE:                  "NON_NULL_TYPE",
	DESCRIPTION:                    "DESCRIPTION",
	SCHEMA_DEFINITION:              "SCHEMA_DEFINITION",
	SCHEMA_EXTENSION:               "SCHEMA_EXTENSION",
	ROOT_OPERATION_TYPE_DEFINITION: "ROOT_OPERATION_TYPE_DEFINITION",
	SCALAR_TYPE_DEFINITION:         "SCALAR_TYPE_DEFINITION",
	SCALAR_TYPE_EXTENSION:          "SCALAR_TYPE_EXTENSION",
	OBJECT_TYPE_DEFINITION:         "OBJECT_TYPE_DEFINITION",
	OBJECT_TYPE_EXTENSION:          "OBJECT_TYPE_EXTENSION",
	IMPLEMENTS_INTERFACES:          "IMPLEMENTS_INTERFACES",
	INTERFACE_TYPE_DEFINITION:      "INTERFACE_TYPE_DEFINITION",
	INTERFACE_TYPE_EXTENSION:       "INTERFACE_TYPE_EXTENSION",
	UNION_TYPE_DEFINITION:          "UNION_TYPE_DEFINITION",
	UNION_TYPE_EXTENSION:           "UNION_TYPE_EXTENSION",
	UNION_MEMBER_TYPES:             "UNION_MEMBER_TYPES",
	ENUM_TYPE_DEFINITION:           "ENUM_TYPE_DEFINITION",
	ENUM_TYPE_EXTENSION:            "ENUM_TYPE_EXTENSION",
	ENUM_VALUES_DEFINITION:         "ENUM_VALUES_DEFINITION",
	ENUM_VALUE_DEFINITION:          "ENUM_VALUE_DEFINITION",
	INPUT_OBJECT_TYPE_DEFINITION:   "INPUT_OBJECT_TYPE_DEFINITION",
	INPUT_OBJECT_TYPE_EXTENSION:    "INPUT_OBJECT_TYPE_EXTENSION",
	INPUT_FIELDS_DEFINITION:        "INPUT_FIELDS_DEFINITION",
	INPUT_VALUE_DEFINITION:         "INPUT_VALUE_DEFINITION",
	FIELDS_DEFINITION:              "FIELDS_DEFINITION",
	FIELD_DEFINITION:               "FIELD_DEFINITION",
	ARGUMENTS_DEFINITION:           "ARGUMENTS_DEFINITION",
	DIRECTIVE_DEFINITION:           "DIRECTIVE_DEFINITION",
	DIRECTIVE_LOCATIONS:            "DIRECTIVE_LOCATIONS",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsToken reports whether this Kind mirrors a token.Kind leaf rather
// than a composite production.
func (k Kind) IsToken() bool {
	return k >= K_ILLEGAL && k <= COMMA
}

// fromTokenKind maps a lexer token.Kind onto its mirrored syntax.Kind.
func fromTokenKind(k token.Kind) Kind {
	switch k {
	case token.ILLEGAL:
		return K_ILLEGAL
	case token.EOF:
		return K_EOF
	case token.BANG:
		return BANG
	case token.DOLLAR:
		return DOLLAR
	case token.LPAREN:
		return L_PAREN
	case token.RPAREN:
		return R_PAREN
	case token.SPREAD:
		return SPREAD
	case token.COLON:
		return COLON
	case token.EQUAL:
		return EQUAL
	case token.AT:
		return AT
	case token.LBRACKET:
		return L_BRACKET
	case token.RBRACKET:
		return R_BRACKET
	case token.LBRACE:
		return L_BRACE
	case token.RBRACE:
		return R_BRACE
	case token.PIPE:
		return PIPE
	case token.NAME:
		return NAME
	case token.STRING:
		return STRING
	case token.INT:
		return INT
	case token.FLOAT:
		return FLOAT
	case token.WHITESPACE:
		return WHITESPACE
	case token.COMMENT:
		return COMMENT
	case token.COMMA:
		return COMMA
	default:
		return K_ILLEGAL
	}
}

// FromTokenKind exposes fromTokenKind to the parser package, which tags
// bumped tokens with a syntax.Kind that may differ from their lexical
// kind (e.g. a description's STRING token tagged STRING_VALUE) while
// still being able to fall back to the
// mirrored kind for plain token consumption.
func FromTokenKind(k token.Kind) Kind { return fromTokenKind(k) }
