// Package token defines the lexical vocabulary shared by the lexer and
// parser: token kinds, tokens, and the structured error value both
// stages use to report diagnostics.
package token

import "fmt"

// Kind identifies the lexical category of a Token. It is a closed set:
// every GraphQL punctuator and literal form, the trivia kinds that must
// be preserved losslessly (Whitespace, Comment, Comma), and a synthetic
// EOF.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Punctuators
	BANG     // !
	DOLLAR   // $
	LPAREN   // (
	RPAREN   // )
	SPREAD   // ...
	COLON    // :
	EQUAL    // =
	AT       // @
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }
	PIPE     // |

	// Literals
	NAME
	STRING
	INT
	FLOAT

	// Trivia — full tokens, never dropped
	WHITESPACE
	COMMENT
	COMMA
)

var kindNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	BANG:       "BANG",
	DOLLAR:     "DOLLAR",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SPREAD:     "SPREAD",
	COLON:      "COLON",
	EQUAL:      "EQUAL",
	AT:         "AT",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	PIPE:       "PIPE",
	NAME:       "NAME",
	STRING:     "STRING",
	INT:        "INT",
	FLOAT:      "FLOAT",
	WHITESPACE: "WHITESPACE",
	COMMENT:    "COMMENT",
	COMMA:      "COMMA",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTrivia reports whether tokens of this kind carry no semantic weight
// in the GraphQL grammar (§4.1, §8 P6): they are preserved in the tree
// but never consumed directly as grammar input.
func (k Kind) IsTrivia() bool {
	return k == WHITESPACE || k == COMMENT || k == COMMA
}

// Token is a single lexeme: its kind, the exact substring matched, and
// the starting byte offset in the original input. Concatenating the
// Data of every token produced by the lexer, in order, reconstructs the
// input exactly.
type Token struct {
	Kind  Kind
	Data  string
	Index int
}

// End returns the byte offset one past the token's last byte.
func (t Token) End() int {
	return t.Index + len(t.Data)
}

// Error is a structured diagnostic: a message, the offending text (empty
// if not applicable), and the byte offset it occurred at.
type Error struct {
	Message string
	Data    string
	Index   int
}

func (e Error) String() string {
	if e.Data == "" {
		return fmt.Sprintf("%d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("%d: %s: %q", e.Index, e.Message, e.Data)
}
