package parser

import (
	"github.com/aledsdavies/gqlcst/pkgs/syntax"
	"github.com/aledsdavies/gqlcst/pkgs/token"
)

// value dispatches on the current token to the right Value variant. An
// unadorned Name that isn't "true", "false", or "null" is an EnumValue —
// those three are the only reserved-looking names in the whole grammar,
// and only in value position.
func (p *Parser) value() {
	switch {
	case p.at(token.DOLLAR):
		p.variable()
	case p.at(token.INT):
		g := p.start(syntax.INT_VALUE)
		p.bump(syntax.INT)
		g.Finish()
	case p.at(token.FLOAT):
		g := p.start(syntax.FLOAT_VALUE)
		p.bump(syntax.FLOAT)
		g.Finish()
	case p.at(token.STRING):
		g := p.start(syntax.STRING_VALUE)
		p.bump(syntax.STRING)
		g.Finish()
	case p.atName("true"), p.atName("false"):
		g := p.start(syntax.BOOLEAN_VALUE)
		p.bumpKeyword()
		g.Finish()
	case p.atName("null"):
		g := p.start(syntax.NULL_VALUE)
		p.bumpKeyword()
		g.Finish()
	case p.at(token.NAME):
		g := p.start(syntax.ENUM_VALUE)
		p.bump(syntax.NAME)
		g.Finish()
	case p.at(token.LBRACKET):
		p.listValue()
	case p.at(token.LBRACE):
		p.objectValue()
	default:
		p.errAndPop("expected a value")
	}
}

func (p *Parser) listValue() {
	g := p.start(syntax.LIST_VALUE)
	if g.OverDepth() {
		g.Finish()
		return
	}
	defer g.Finish()
	p.expect(token.LBRACKET, syntax.L_BRACKET, "'['")
	for !p.at(token.RBRACKET) && !p.at(token.EOF) {
		prev := p.pos
		p.value()
		if p.pos == prev {
			p.errAndPop("unexpected token in list value")
		}
	}
	p.expect(token.RBRACKET, syntax.R_BRACKET, "']'")
}

func (p *Parser) objectValue() {
	g := p.start(syntax.OBJECT_VALUE)
	if g.OverDepth() {
		g.Finish()
		return
	}
	defer g.Finish()
	p.expect(token.LBRACE, syntax.L_BRACE, "'{'")
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		prev := p.pos
		p.objectField()
		if p.pos == prev {
			p.errAndPop("unexpected token in object value")
		}
	}
	p.expect(token.RBRACE, syntax.R_BRACE, "'}'")
}

func (p *Parser) objectField() {
	g := p.start(syntax.OBJECT_FIELD)
	defer g.Finish()
	if !p.expect(token.NAME, syntax.NAME, "field name") {
		return
	}
	p.expect(token.COLON, syntax.COLON, "':'")
	p.value()
}

// type_ parses NamedType, ListType, or either wrapped in a trailing '!'.
// Because the grammar only learns whether a NonNullType applies after
// parsing the inner type, the inner type is checkpointed first and
// wrapped in place with StartNodeAt once the '!' is seen — the base type
// is never re-parsed or copied.
func (p *Parser) type_() {
	cp := p.b.Checkpoint()
	p.typeBase()
	if p.at(token.BANG) {
		g := p.b.StartNodeAt(cp, syntax.NON_NULL_TYPE)
		p.bump(syntax.BANG)
		g.Finish()
		if p.at(token.BANG) {
			p.errAndPop("unexpected '!' following a non-null type")
		}
	}
}

func (p *Parser) typeBase() {
	if p.at(token.LBRACKET) {
		p.listType()
		return
	}
	p.namedType()
}

func (p *Parser) namedType() {
	g := p.start(syntax.NAMED_TYPE)
	defer g.Finish()
	p.expect(token.NAME, syntax.NAME, "type name")
}

func (p *Parser) listType() {
	g := p.start(syntax.LIST_TYPE)
	if g.OverDepth() {
		g.Finish()
		return
	}
	defer g.Finish()
	p.expect(token.LBRACKET, syntax.L_BRACKET, "'['")
	if p.at(token.RBRACKET) {
		p.err("expected a type")
	} else {
		p.type_()
	}
	p.expect(token.RBRACKET, syntax.R_BRACKET, "']'")
}
