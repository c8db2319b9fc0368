package lexer

import (
	"testing"

	"github.com/aledsdavies/gqlcst/pkgs/token"
	"github.com/google/go-cmp/cmp"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexPunctuatorsAndTrivia(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "shorthand query skeleton",
			input: "{ hero }",
			want:  []token.Kind{token.LBRACE, token.WHITESPACE, token.NAME, token.WHITESPACE, token.RBRACE, token.EOF},
		},
		{
			name:  "spread",
			input: "...F",
			want:  []token.Kind{token.SPREAD, token.NAME, token.EOF},
		},
		{
			name:  "comma is trivia",
			input: "a,b",
			want:  []token.Kind{token.NAME, token.COMMA, token.NAME, token.EOF},
		},
		{
			name:  "comment runs to end of line",
			input: "# hi\na",
			want:  []token.Kind{token.COMMENT, token.WHITESPACE, token.NAME, token.EOF},
		},
		{
			name:  "all single-char punctuators",
			input: "!$():=@[]{}|",
			want: []token.Kind{
				token.BANG, token.DOLLAR, token.LPAREN, token.RPAREN, token.COLON,
				token.EQUAL, token.AT, token.LBRACKET, token.RBRACKET, token.LBRACE,
				token.RBRACE, token.PIPE, token.EOF,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := Lex(tt.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if diff := cmp.Diff(tt.want, kinds(toks)); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    token.Kind
		wantErr bool
	}{
		{"zero", "0", token.INT, false},
		{"simple int", "42", token.INT, false},
		{"negative int", "-7", token.INT, false},
		{"float fraction", "3.14", token.FLOAT, false},
		{"float exponent", "6e10", token.FLOAT, false},
		{"float exponent signed", "6E-10", token.FLOAT, false},
		{"leading zero is malformed", "012", token.ILLEGAL, true},
		{"trailing dot is malformed", "1.", token.ILLEGAL, true},
		{"dangling exponent is malformed", "1e", token.ILLEGAL, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, errs := Lex(tt.input)
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("expected a lexical error, got none (tokens=%v)", toks)
				}
				return
			}
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(toks) < 1 || toks[0].Kind != tt.kind {
				t.Fatalf("got %v, want first token kind %s", toks, tt.kind)
			}
		})
	}
}

func TestLexStrings(t *testing.T) {
	t.Run("line string with escapes", func(t *testing.T) {
		toks, errs := Lex(`"a\nb\"c"`)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(toks) != 2 || toks[0].Kind != token.STRING {
			t.Fatalf("got %v", toks)
		}
	})

	t.Run("block string with embedded quotes", func(t *testing.T) {
		input := `"""He said "hi"."""`
		toks, errs := Lex(input)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if len(toks) != 2 || toks[0].Kind != token.STRING || toks[0].Data != input {
			t.Fatalf("got %+v", toks)
		}
	})

	t.Run("unterminated line string", func(t *testing.T) {
		toks, errs := Lex(`"oops`)
		if len(errs) == 0 {
			t.Fatal("expected an unterminated-string error")
		}
		if len(toks) != 2 || toks[0].Kind != token.ILLEGAL || toks[0].Data != `"oops` {
			t.Fatalf("expected a single ILLEGAL token covering the whole input, got %+v", toks)
		}
	})

	t.Run("unterminated string inside larger input still resumes", func(t *testing.T) {
		toks, errs := Lex(`{ a(b: "oops }`)
		if len(errs) == 0 {
			t.Fatal("expected an error for the unterminated string")
		}
		// The bad string becomes a single ILLEGAL token; lexing still reaches EOF.
		if toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("lexing did not resume to EOF: %v", toks)
		}
		foundIllegal := false
		for _, tok := range toks {
			if tok.Kind == token.ILLEGAL {
				foundIllegal = true
			}
		}
		if !foundIllegal {
			t.Fatalf("expected an ILLEGAL token for the unterminated string, got %v", toks)
		}
	})
}

func TestLexUnexpectedCharacter(t *testing.T) {
	toks, errs := Lex("ø a")
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %v", errs)
	}
	if errs[0].Index != 0 || errs[0].Data != "ø" {
		t.Fatalf("unexpected error value: %+v", errs[0])
	}
	if diff := cmp.Diff([]token.Kind{token.ILLEGAL, token.WHITESPACE, token.NAME, token.EOF}, kinds(toks)); diff != "" {
		t.Errorf("kinds mismatch after recovery (-want +got):\n%s", diff)
	}
}

func TestLexReconstructsInput(t *testing.T) {
	inputs := []string{
		"",
		"{ hero { name } }",
		"query Q($x: Int!) { a(b: $x) }",
		"# a comment\ntype T { f: String }",
	}
	for _, input := range inputs {
		toks, _ := Lex(input)
		var got string
		for _, tok := range toks {
			got += tok.Data
		}
		if got != input {
			t.Errorf("round-trip mismatch: got %q, want %q", got, input)
		}
	}
}
