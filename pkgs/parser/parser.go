// Package parser implements a hand-written recursive-descent GraphQL
// grammar: it drives pkgs/lexer and pkgs/syntax to produce a lossless
// concrete syntax tree, never aborting on malformed input.
package parser

import (
	"fmt"
	"sort"

	"github.com/aledsdavies/gqlcst/pkgs/lexer"
	"github.com/aledsdavies/gqlcst/pkgs/syntax"
	"github.com/aledsdavies/gqlcst/pkgs/token"
)

// ParserOpt configures a parse run using the functional-options style;
// the only knob currently exposed is the recursion depth limit.
type ParserOpt func(*config)

type config struct {
	maxDepth int
}

// WithMaxDepth overrides the default recursion bound (syntax.DefaultMaxDepth).
func WithMaxDepth(n int) ParserOpt {
	return func(c *config) { c.maxDepth = n }
}

// Parser holds all mutable state for a single parse run: the token
// cursor, the green-tree builder, and the accumulated diagnostics. A
// Parser is single-use; call Parse to drive it to completion.
type Parser struct {
	tokens []token.Token
	pos    int

	b      *syntax.Builder
	errors []token.Error

	depthLimited bool
}

// New constructs a Parser over input, running the lexer eagerly (its
// errors are folded into the parser's own diagnostic list).
func New(input string, opts ...ParserOpt) *Parser {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	toks, lexErrs := lexer.Lex(input)
	p := &Parser{
		tokens: toks,
		b:      syntax.NewBuilder(cfg.maxDepth),
		errors: append([]token.Error(nil), lexErrs...),
	}
	return p
}

// Parse lexes and parses input in one call, returning the resulting
// syntax tree. This is the library's primary entry point.
func Parse(input string, opts ...ParserOpt) *syntax.Tree {
	return New(input, opts...).Parse()
}

// Parse drives the grammar from the Parser's current state to
// completion and returns the finished tree.
func (p *Parser) Parse() *syntax.Tree {
	p.skipLeadingTrivia()
	p.document()

	sort.SliceStable(p.errors, func(i, j int) bool {
		return p.errors[i].Index < p.errors[j].Index
	})
	return p.b.Finish(p.errors)
}

// --- token-stream primitives ---

// cur returns the token at the cursor without consuming it.
func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

// peek returns the kind of the next non-consumed token, including
// trivia. Because every significant token consumption (bump, errAndPop)
// immediately drains trailing trivia, and leading trivia is drained
// once up front, the cursor in practice always rests on a non-trivia
// token or EOF by the time grammar code calls peek — trivia never
// "shows through" to dispatch logic, so grammar code never needs a
// separate trivia-skipping step at its own call sites.
func (p *Parser) peek() token.Kind {
	return p.cur().Kind
}

// at reports whether the current token has the given kind.
func (p *Parser) at(k token.Kind) bool {
	return p.peek() == k
}

// atName reports whether the current token is a NAME with the given
// literal text — the mechanism by which keyword-like names (query,
// fragment, on, true, schema, extend, ...) are classified without the
// lexer treating them as keywords.
func (p *Parser) atName(text string) bool {
	t := p.cur()
	return t.Kind == token.NAME && t.Data == text
}

// peekN returns the kind of the k-th next non-trivia token (1 = the
// current one), skipping trivia for lookahead purposes only — it never
// advances the cursor or mutates the tree.
func (p *Parser) peekN(k int) token.Kind {
	return p.peekNToken(k).Kind
}

// peekNToken is peekN but returns the full token, letting callers
// inspect Data (e.g. to distinguish "on" from an arbitrary fragment
// name during spread disambiguation).
func (p *Parser) peekNToken(k int) token.Token {
	count := 0
	for i := p.pos; i < len(p.tokens); i++ {
		if !p.tokens[i].Kind.IsTrivia() {
			count++
			if count == k {
				return p.tokens[i]
			}
		}
	}
	return token.Token{Kind: token.EOF}
}

// skipLeadingTrivia drains any trivia sitting at the very start of the
// token stream into the current (root) frame, before the first
// significant token is ever bumped.
func (p *Parser) skipLeadingTrivia() {
	p.drainTrivia()
}

func (p *Parser) drainTrivia() {
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		t := p.tokens[p.pos]
		p.b.Token(syntax.FromTokenKind(t.Kind), t.Data)
		p.pos++
	}
}

// bump pops the next token, emits it to the builder tagged as synKind,
// and then drains any immediately following trivia — the "trivia bump"
// policy that keeps whitespace/comments/commas out of the grammar's own
// bookkeeping while still preserving them in the tree.
func (p *Parser) bump(synKind syntax.Kind) {
	if p.pos >= len(p.tokens) {
		return
	}
	t := p.tokens[p.pos]
	p.b.Token(synKind, t.Data)
	p.pos++
	p.drainTrivia()
}

// bumpAs is bump using the token's own mirrored syntax kind, for
// positions where the grammar doesn't need to retag the token (e.g.
// inside an ERROR recovery node).
func (p *Parser) bumpAs() {
	p.bump(syntax.FromTokenKind(p.cur().Kind))
}

// expect bumps the current token tagged as synKind if it matches
// expected; otherwise it records an UnexpectedToken/MissingExpected
// error and does NOT advance, leaving the caller to decide how to
// recover.
func (p *Parser) expect(expected token.Kind, synKind syntax.Kind, label string) bool {
	if p.at(expected) {
		p.bump(synKind)
		return true
	}
	p.err(fmt.Sprintf("expected %s, got %s", label, p.curDisplay()))
	return false
}

func (p *Parser) curDisplay() string {
	t := p.cur()
	if t.Kind == token.EOF {
		return "EOF"
	}
	return fmt.Sprintf("%q", t.Data)
}

// err emits an error pointing at the current token.
func (p *Parser) err(msg string) {
	t := p.cur()
	p.errors = append(p.errors, token.Error{Message: msg, Data: t.Data, Index: t.Index})
}

// errAndPop emits an error and discards the current token, wrapping it
// in an ERROR node so it still appears in the tree — used at positions
// where no production can make sense of the token at all.
//
// An ILLEGAL token is the lexer's own way of reporting a malformed
// lexeme while still producing something to discard; the lexer has
// already recorded a diagnostic for that exact span, so errAndPop just
// wraps it without piling on a second, redundant error.
func (p *Parser) errAndPop(msg string) {
	if p.at(token.ILLEGAL) {
		g := p.start(syntax.ERROR)
		p.bumpAs()
		g.Finish()
		return
	}
	p.err(msg)
	if p.at(token.EOF) {
		return
	}
	g := p.start(syntax.ERROR)
	p.bumpAs()
	g.Finish()
}

// start opens a node, applying the recursion-depth limit: if the
// builder refuses because the limit was exceeded, a single Limit error
// is recorded (only once per parse) and the caller should treat the
// returned guard as already-finished and stop recursing.
func (p *Parser) start(kind syntax.Kind) *syntax.NodeGuard {
	g := p.b.StartNode(kind)
	if g.OverDepth() && !p.depthLimited {
		p.depthLimited = true
		p.err("maximum nesting depth exceeded")
	}
	return g
}

// bumpKeyword consumes the current token (already known by the caller to
// be a NAME matching some keyword-like text, via atName) tagged as plain
// NAME — GraphQL has no reserved words, so "query", "on", "implements"
// and friends are ordinary names the grammar recognizes positionally.
func (p *Parser) bumpKeyword() { p.bump(syntax.NAME) }

// definitionName wraps a type-system definition or extension's own name
// in a DEFINITION_NAME child, tagged NAME like the leading keyword that
// precedes it (scalar/type/interface/union/enum/input/directive are
// ordinary names too, bumped via bumpKeyword). Without this wrapping,
// the definition's own name and its leading keyword would both be bare
// NAME children of the same node, and FirstToken(syntax.NAME) would
// always find the keyword first. Nesting the real name under its own
// node lets FirstChildOfKind target it unambiguously — the same
// technique fragmentDefinition uses for FRAGMENT_NAME and field uses
// for ALIAS.
func (p *Parser) definitionName(label string) {
	g := p.start(syntax.DEFINITION_NAME)
	p.expect(token.NAME, syntax.NAME, label)
	g.Finish()
}

// startDefinitionWithDescription opens a node of kind and, if a
// StringValue immediately precedes it, consumes that string as a leading
// DESCRIPTION child before returning — every type-system definition
// production begins this way.
func (p *Parser) startDefinitionWithDescription(kind syntax.Kind) *syntax.NodeGuard {
	g := p.start(kind)
	if p.at(token.STRING) {
		dg := p.start(syntax.DESCRIPTION)
		p.bump(syntax.STRING_VALUE)
		dg.Finish()
	}
	return g
}
