package parser

import (
	"github.com/aledsdavies/gqlcst/pkgs/syntax"
	"github.com/aledsdavies/gqlcst/pkgs/token"
)

// document is the grammar's entry point: under the implicit DOCUMENT
// root, loop parsing top-level definitions until EOF. Every iteration
// must make progress; a definition that consumes nothing is a
// programming error elsewhere in the grammar, not a reason to loop
// forever, so it is treated the same as any other stuck token.
func (p *Parser) document() {
	for !p.at(token.EOF) {
		prev := p.pos
		p.definition()
		if p.pos == prev {
			p.errAndPop("unexpected token")
		}
	}
}

// definition dispatches on the current (non-trivia) token to the
// production for exactly one top-level definition.
func (p *Parser) definition() {
	switch {
	case p.at(token.LBRACE):
		p.operationDefinition()
	case p.atName("query"), p.atName("mutation"), p.atName("subscription"):
		p.operationDefinition()
	case p.atName("fragment"):
		p.fragmentDefinition()
	case p.at(token.STRING):
		p.descriptionLedDefinition()
	case p.atName("schema"):
		p.schemaDefinition()
	case p.atName("scalar"):
		p.scalarTypeDefinition()
	case p.atName("type"):
		p.objectTypeDefinition()
	case p.atName("interface"):
		p.interfaceTypeDefinition()
	case p.atName("union"):
		p.unionTypeDefinition()
	case p.atName("enum"):
		p.enumTypeDefinition()
	case p.atName("input"):
		p.inputObjectTypeDefinition()
	case p.atName("directive"):
		p.directiveDefinition()
	case p.atName("extend"):
		p.extension()
	default:
		p.errAndPop("unexpected token")
	}
}

// descriptionLedDefinition decides which definition a leading StringValue
// belongs to by peeking past it, then dispatches to that production —
// which itself re-consumes the description via
// startDefinitionWithDescription, so the string ends up nested under the
// right node instead of floating at document scope.
func (p *Parser) descriptionLedDefinition() {
	next := p.peekNToken(2)
	if next.Kind == token.NAME {
		switch next.Data {
		case "schema":
			p.schemaDefinition()
			return
		case "scalar":
			p.scalarTypeDefinition()
			return
		case "type":
			p.objectTypeDefinition()
			return
		case "interface":
			p.interfaceTypeDefinition()
			return
		case "union":
			p.unionTypeDefinition()
			return
		case "enum":
			p.enumTypeDefinition()
			return
		case "input":
			p.inputObjectTypeDefinition()
			return
		case "directive":
			p.directiveDefinition()
			return
		}
	}
	p.err("description must be followed by a type system definition")
	g := p.start(syntax.ERROR)
	p.bump(syntax.STRING_VALUE)
	g.Finish()
}

// extension re-dispatches on the Name following "extend", since "extend"
// alone does not say what kind of extension this is.
func (p *Parser) extension() {
	next := p.peekNToken(2)
	if next.Kind != token.NAME {
		p.errAndPop("expected a definition keyword after 'extend'")
		return
	}
	switch next.Data {
	case "schema":
		p.schemaExtension()
	case "scalar":
		p.scalarTypeExtension()
	case "type":
		p.objectTypeExtension()
	case "interface":
		p.interfaceTypeExtension()
	case "union":
		p.unionTypeExtension()
	case "enum":
		p.enumTypeExtension()
	case "input":
		p.inputObjectTypeExtension()
	default:
		p.errAndPop("unknown extension kind")
	}
}
