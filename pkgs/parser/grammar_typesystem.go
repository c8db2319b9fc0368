package parser

import (
	"github.com/aledsdavies/gqlcst/pkgs/syntax"
	"github.com/aledsdavies/gqlcst/pkgs/token"
)

func (p *Parser) schemaDefinition() {
	g := p.startDefinitionWithDescription(syntax.SCHEMA_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // schema
	if p.at(token.AT) {
		p.directives()
	}
	p.expect(token.LBRACE, syntax.L_BRACE, "'{'")
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		prev := p.pos
		p.rootOperationTypeDefinition()
		if p.pos == prev {
			p.errAndPop("unexpected token in schema definition")
		}
	}
	p.expect(token.RBRACE, syntax.R_BRACE, "'}'")
}

func (p *Parser) rootOperationTypeDefinition() {
	g := p.start(syntax.ROOT_OPERATION_TYPE_DEFINITION)
	defer g.Finish()
	if !p.expect(token.NAME, syntax.NAME, "operation type") {
		return
	}
	p.expect(token.COLON, syntax.COLON, "':'")
	p.namedType()
}

func (p *Parser) schemaExtension() {
	g := p.start(syntax.SCHEMA_EXTENSION)
	defer g.Finish()
	p.bumpKeyword() // extend
	p.bumpKeyword() // schema
	hasDirectives := p.at(token.AT)
	if hasDirectives {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.expect(token.LBRACE, syntax.L_BRACE, "'{'")
		for !p.at(token.RBRACE) && !p.at(token.EOF) {
			prev := p.pos
			p.rootOperationTypeDefinition()
			if p.pos == prev {
				p.errAndPop("unexpected token in schema extension")
			}
		}
		p.expect(token.RBRACE, syntax.R_BRACE, "'}'")
	} else if !hasDirectives {
		p.err("schema extension must add directives or root operation types")
	}
}

func (p *Parser) scalarTypeDefinition() {
	g := p.startDefinitionWithDescription(syntax.SCALAR_TYPE_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // scalar
	p.definitionName("scalar name")
	if p.at(token.AT) {
		p.directives()
	}
}

func (p *Parser) scalarTypeExtension() {
	g := p.start(syntax.SCALAR_TYPE_EXTENSION)
	defer g.Finish()
	p.bumpKeyword() // extend
	p.bumpKeyword() // scalar
	p.definitionName("scalar name")
	if p.at(token.AT) {
		p.directives()
	} else {
		p.err("scalar extension must add directives")
	}
}

func (p *Parser) objectTypeDefinition() {
	g := p.startDefinitionWithDescription(syntax.OBJECT_TYPE_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // type
	p.definitionName("type name")
	if p.atName("implements") {
		p.implementsInterfaces()
	}
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.fieldsDefinition()
	}
}

func (p *Parser) objectTypeExtension() {
	g := p.start(syntax.OBJECT_TYPE_EXTENSION)
	defer g.Finish()
	p.bumpKeyword() // extend
	p.bumpKeyword() // type
	p.definitionName("type name")
	if p.atName("implements") {
		p.implementsInterfaces()
	}
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.fieldsDefinition()
	}
}

// implementsInterfaces parses "implements Name+". GraphQL's official
// grammar separates the interface list with '&', but that punctuator is
// outside this toolkit's closed token vocabulary: a stray '&' becomes a
// lexer "unexpected character" error and an ILLEGAL token, which the
// loop below wraps in an ERROR node (errAndPop adds no second error for
// it) before it goes on with the next interface name.
func (p *Parser) implementsInterfaces() {
	g := p.start(syntax.IMPLEMENTS_INTERFACES)
	defer g.Finish()
	p.bumpKeyword() // implements
	for p.at(token.NAME) || p.at(token.ILLEGAL) {
		if p.at(token.ILLEGAL) {
			p.errAndPop("unexpected token in implements list")
			continue
		}
		p.namedType()
	}
}

func (p *Parser) fieldsDefinition() {
	g := p.start(syntax.FIELDS_DEFINITION)
	defer g.Finish()
	p.expect(token.LBRACE, syntax.L_BRACE, "'{'")
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		prev := p.pos
		p.fieldDefinition()
		if p.pos == prev {
			p.errAndPop("unexpected token in field list")
		}
	}
	p.expect(token.RBRACE, syntax.R_BRACE, "'}'")
}

func (p *Parser) fieldDefinition() {
	g := p.startDefinitionWithDescription(syntax.FIELD_DEFINITION)
	defer g.Finish()
	if !p.expect(token.NAME, syntax.NAME, "field name") {
		return
	}
	if p.at(token.LPAREN) {
		p.argumentsDefinition()
	}
	p.expect(token.COLON, syntax.COLON, "':'")
	p.type_()
	if p.at(token.AT) {
		p.directives()
	}
}

func (p *Parser) argumentsDefinition() {
	g := p.start(syntax.ARGUMENTS_DEFINITION)
	defer g.Finish()
	p.expect(token.LPAREN, syntax.L_PAREN, "'('")
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		prev := p.pos
		p.inputValueDefinition()
		if p.pos == prev {
			p.errAndPop("unexpected token in argument definitions")
		}
	}
	p.expect(token.RPAREN, syntax.R_PAREN, "')'")
}

func (p *Parser) inputValueDefinition() {
	g := p.startDefinitionWithDescription(syntax.INPUT_VALUE_DEFINITION)
	defer g.Finish()
	if !p.expect(token.NAME, syntax.NAME, "input value name") {
		return
	}
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

func (p *Parser) interfaceTypeDefinition() {
	g := p.startDefinitionWithDescription(syntax.INTERFACE_TYPE_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // interface
	p.definitionName("interface name")
	if p.atName("implements") {
		p.implementsInterfaces()
	}
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.fieldsDefinition()
	}
}

func (p *Parser) interfaceTypeExtension() {
	g := p.start(syntax.INTERFACE_TYPE_EXTENSION)
	defer g.Finish()
	p.bumpKeyword() // extend
	p.bumpKeyword() // interface
	p.definitionName("interface name")
	if p.atName("implements") {
		p.implementsInterfaces()
	}
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.fieldsDefinition()
	}
}

func (p *Parser) unionTypeDefinition() {
	g := p.startDefinitionWithDescription(syntax.UNION_TYPE_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // union
	p.definitionName("union name")
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.EQUAL) {
		p.unionMemberTypes()
	}
}

func (p *Parser) unionTypeExtension() {
	g := p.start(syntax.UNION_TYPE_EXTENSION)
	defer g.Finish()
	p.bumpKeyword() // extend
	p.bumpKeyword() // union
	p.definitionName("union name")
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.EQUAL) {
		p.unionMemberTypes()
	}
}

// unionMemberTypes parses "= '|'? NamedType ('|' NamedType)*". The
// leading pipe is purely cosmetic and optional, matching how GraphQL
// documents are commonly formatted with each member on its own line.
func (p *Parser) unionMemberTypes() {
	g := p.start(syntax.UNION_MEMBER_TYPES)
	defer g.Finish()
	p.expect(token.EQUAL, syntax.EQUAL, "'='")
	if p.at(token.PIPE) {
		p.bump(syntax.PIPE)
	}
	if !p.at(token.NAME) {
		p.err("expected a union member type")
		return
	}
	p.namedType()
	for p.at(token.PIPE) {
		p.bump(syntax.PIPE)
		if !p.at(token.NAME) {
			p.err("expected a union member type")
			break
		}
		p.namedType()
	}
}

func (p *Parser) enumTypeDefinition() {
	g := p.startDefinitionWithDescription(syntax.ENUM_TYPE_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // enum
	p.definitionName("enum name")
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.enumValuesDefinition()
	}
}

func (p *Parser) enumTypeExtension() {
	g := p.start(syntax.ENUM_TYPE_EXTENSION)
	defer g.Finish()
	p.bumpKeyword() // extend
	p.bumpKeyword() // enum
	p.definitionName("enum name")
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.enumValuesDefinition()
	}
}

func (p *Parser) enumValuesDefinition() {
	g := p.start(syntax.ENUM_VALUES_DEFINITION)
	defer g.Finish()
	p.expect(token.LBRACE, syntax.L_BRACE, "'{'")
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		prev := p.pos
		p.enumValueDefinition()
		if p.pos == prev {
			p.errAndPop("unexpected token in enum values")
		}
	}
	p.expect(token.RBRACE, syntax.R_BRACE, "'}'")
}

func (p *Parser) enumValueDefinition() {
	g := p.startDefinitionWithDescription(syntax.ENUM_VALUE_DEFINITION)
	defer g.Finish()
	if !p.expect(token.NAME, syntax.NAME, "enum value") {
		return
	}
	if p.at(token.AT) {
		p.directives()
	}
}

func (p *Parser) inputObjectTypeDefinition() {
	g := p.startDefinitionWithDescription(syntax.INPUT_OBJECT_TYPE_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // input
	p.definitionName("input name")
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.inputFieldsDefinition()
	}
}

func (p *Parser) inputObjectTypeExtension() {
	g := p.start(syntax.INPUT_OBJECT_TYPE_EXTENSION)
	defer g.Finish()
	p.bumpKeyword() // extend
	p.bumpKeyword() // input
	p.definitionName("input name")
	if p.at(token.AT) {
		p.directives()
	}
	if p.at(token.LBRACE) {
		p.inputFieldsDefinition()
	}
}

func (p *Parser) inputFieldsDefinition() {
	g := p.start(syntax.INPUT_FIELDS_DEFINITION)
	defer g.Finish()
	p.expect(token.LBRACE, syntax.L_BRACE, "'{'")
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		prev := p.pos
		p.inputValueDefinition()
		if p.pos == prev {
			p.errAndPop("unexpected token in input fields")
		}
	}
	p.expect(token.RBRACE, syntax.R_BRACE, "'}'")
}

func (p *Parser) directiveDefinition() {
	g := p.startDefinitionWithDescription(syntax.DIRECTIVE_DEFINITION)
	defer g.Finish()
	p.bumpKeyword() // directive
	p.expect(token.AT, syntax.AT, "'@'")
	p.definitionName("directive name")
	if p.at(token.LPAREN) {
		p.argumentsDefinition()
	}
	if p.atName("repeatable") {
		p.bumpKeyword()
	}
	if p.atName("on") {
		p.bumpKeyword()
		p.directiveLocations()
	} else {
		p.err("expected 'on'")
	}
}

func (p *Parser) directiveLocations() {
	g := p.start(syntax.DIRECTIVE_LOCATIONS)
	defer g.Finish()
	if p.at(token.PIPE) {
		p.bump(syntax.PIPE)
	}
	if !p.expect(token.NAME, syntax.NAME, "directive location") {
		return
	}
	for p.at(token.PIPE) {
		p.bump(syntax.PIPE)
		if !p.expect(token.NAME, syntax.NAME, "directive location") {
			break
		}
	}
}
