package parser

import (
	"github.com/aledsdavies/gqlcst/pkgs/syntax"
	"github.com/aledsdavies/gqlcst/pkgs/token"
)

// operationDefinition parses either the shorthand form (a bare
// SelectionSet) or a full "query/mutation/subscription Name?
// VariableDefinitions? Directives? SelectionSet".
func (p *Parser) operationDefinition() {
	g := p.start(syntax.OPERATION_DEFINITION)
	defer g.Finish()

	if p.at(token.LBRACE) {
		p.selectionSet()
		return
	}

	p.bumpKeyword() // query | mutation | subscription

	if p.at(token.NAME) {
		p.bump(syntax.NAME)
	}
	if p.at(token.LPAREN) {
		p.variableDefinitions()
	}
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.selectionSet()
	} else {
		p.err("expected a selection set")
	}
}

func (p *Parser) variableDefinitions() {
	g := p.start(syntax.VARIABLE_DEFINITIONS)
	defer g.Finish()
	p.expect(token.LPAREN, syntax.L_PAREN, "'('")
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		prev := p.pos
		p.variableDefinition()
		if p.pos == prev {
			p.errAndPop("unexpected token in variable definitions")
		}
	}
	p.expect(token.RPAREN, syntax.R_PAREN, "')'")
}

func (p *Parser) variableDefinition() {
	g := p.start(syntax.VARIABLE_DEFINITION)
	defer g.Finish()
	if !p.at(token.DOLLAR) {
		p.err("expected a variable")
		return
	}
	p.variable()
	p.expect(token.COLON, syntax.COLON, "':'")
	p.type_()
	if p.at(token.EQUAL) {
		p.bump(syntax.EQUAL)
		p.value()
	}
	if p.at(token.AT) {
		p.directives()
	}
}

func (p *Parser) variable() {
	g := p.start(syntax.VARIABLE)
	defer g.Finish()
	p.expect(token.DOLLAR, syntax.DOLLAR, "'$'")
	p.expect(token.NAME, syntax.NAME, "variable name")
}

// selectionSet parses "{ Selection+ }". An empty brace pair is syntactically
// accepted (the braces still balance and the node still closes) but
// recorded as an error, since the grammar requires at least one
// selection.
func (p *Parser) selectionSet() {
	g := p.start(syntax.SELECTION_SET)
	if g.OverDepth() {
		g.Finish()
		return
	}
	defer g.Finish()

	p.expect(token.LBRACE, syntax.L_BRACE, "'{'")
	count := 0
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		prev := p.pos
		p.selection()
		count++
		if p.pos == prev {
			p.errAndPop("unexpected token in selection set")
		}
	}
	if count == 0 {
		p.err("selection set must not be empty")
	}
	p.expect(token.RBRACE, syntax.R_BRACE, "'}'")
}

// selection disambiguates a fragment spread from an inline fragment with
// two tokens of lookahead past "...": a Name that isn't "on" is a spread
// target, "on" or "{" starts an inline fragment.
func (p *Parser) selection() {
	if p.at(token.SPREAD) {
		switch p.peekN(2) {
		case token.NAME:
			if p.peekNToken(2).Data == "on" {
				p.inlineFragment()
			} else {
				p.fragmentSpread()
			}
		case token.LBRACE:
			p.inlineFragment()
		default:
			p.errAndPop("expected a fragment name, 'on', or '{' after '...'")
		}
		return
	}
	p.field()
}

func (p *Parser) fragmentSpread() {
	g := p.start(syntax.FRAGMENT_SPREAD)
	defer g.Finish()
	p.expect(token.SPREAD, syntax.SPREAD, "'...'")
	fn := p.start(syntax.FRAGMENT_NAME)
	p.expect(token.NAME, syntax.NAME, "fragment name")
	fn.Finish()
	if p.at(token.AT) {
		p.directives()
	}
}

func (p *Parser) inlineFragment() {
	g := p.start(syntax.INLINE_FRAGMENT)
	defer g.Finish()
	p.expect(token.SPREAD, syntax.SPREAD, "'...'")
	if p.atName("on") {
		tc := p.start(syntax.TYPE_CONDITION)
		p.bumpKeyword()
		p.expect(token.NAME, syntax.NAME, "type name")
		tc.Finish()
	}
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.selectionSet()
	} else {
		p.err("expected a selection set")
	}
}

// field parses "Alias? Name Arguments? Directives? SelectionSet?". The
// alias/name ambiguity needs two tokens of lookahead: a Name immediately
// followed by a Colon is an alias, not the field name itself.
func (p *Parser) field() {
	g := p.start(syntax.FIELD)
	defer g.Finish()

	if p.at(token.NAME) && p.peekN(2) == token.COLON {
		al := p.start(syntax.ALIAS)
		p.bump(syntax.NAME)
		p.expect(token.COLON, syntax.COLON, "':'")
		al.Finish()
	}

	if !p.expect(token.NAME, syntax.NAME, "field name") {
		return
	}
	if p.at(token.LPAREN) {
		p.arguments()
	}
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.selectionSet()
	}
}

func (p *Parser) arguments() {
	g := p.start(syntax.ARGUMENTS)
	defer g.Finish()
	p.expect(token.LPAREN, syntax.L_PAREN, "'('")
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		prev := p.pos
		p.argument()
		if p.pos == prev {
			p.errAndPop("unexpected token in arguments")
		}
	}
	p.expect(token.RPAREN, syntax.R_PAREN, "')'")
}

func (p *Parser) argument() {
	g := p.start(syntax.ARGUMENT)
	defer g.Finish()
	if !p.expect(token.NAME, syntax.NAME, "argument name") {
		return
	}
	p.expect(token.COLON, syntax.COLON, "':'")
	p.value()
}

func (p *Parser) directives() {
	g := p.start(syntax.DIRECTIVES)
	defer g.Finish()
	for p.at(token.AT) {
		p.directive()
	}
}

func (p *Parser) directive() {
	g := p.start(syntax.DIRECTIVE)
	defer g.Finish()
	p.expect(token.AT, syntax.AT, "'@'")
	p.expect(token.NAME, syntax.NAME, "directive name")
	if p.at(token.LPAREN) {
		p.arguments()
	}
}

// fragmentDefinition parses "fragment FragmentName on TypeCondition
// Directives? SelectionSet". "on" is not a reserved word elsewhere, but
// is mandatory right here.
func (p *Parser) fragmentDefinition() {
	g := p.start(syntax.FRAGMENT_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // fragment

	fn := p.start(syntax.FRAGMENT_NAME)
	p.expect(token.NAME, syntax.NAME, "fragment name")
	fn.Finish()

	if p.atName("on") {
		tc := p.start(syntax.TYPE_CONDITION)
		p.bumpKeyword()
		p.expect(token.NAME, syntax.NAME, "type condition")
		tc.Finish()
	} else {
		p.err("expected 'on'")
	}

	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.selectionSet()
	} else {
		p.err("expected a selection set")
	}
}
