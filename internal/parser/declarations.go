package parser

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/token"
)

func (p *Parser) parseDecorators() []*ast.Decorator {
	var decorators []*ast.Decorator
	for p.curTokenIs(token.AT) {
		tok := p.curToken
		p.nextToken()
		expr := p.parseExpression(MEMBER)
		decorators = append(decorators, &ast.Decorator{Token: tok, Expression: expr})
		p.nextToken()
	}
	return decorators
}

func (p *Parser) parseHeritageClause(kw token.Kind) []*ast.TypeReference {
	var refs []*ast.TypeReference
	p.nextToken() // consume the keyword
	for {
		if !p.curTokenIs(token.IDENT) {
			break
		}
		ref := p.parseTypeReference().(*ast.TypeReference)
		refs = append(refs, ref)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	return refs
}

func (p *Parser) parseClassDeclaration() ast.Statement {
	return p.parseClassBody()
}

func (p *Parser) parseClassExpression() ast.Expression {
	tok := p.curToken
	cls := p.parseClassBody()
	return &ast.ClassExpression{Token: tok, Class: cls}
}

func (p *Parser) parseClassBody() *ast.ClassDeclaration {
	tok := p.curToken
	decl := &ast.ClassDeclaration{Token: tok}
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		decl.Name = p.curToken.Literal
	}
	decl.TypeParams = p.parseTypeParameterList()
	if p.peekTokenIs(token.EXTENDS) {
		p.nextToken()
		p.nextToken()
		ref := p.parseTypeReference().(*ast.TypeReference)
		decl.Extends = ref
	}
	if p.peekTokenIs(token.IMPLEMENTS) {
		p.nextToken()
		decl.Implements = p.parseHeritageClause(token.IMPLEMENTS)
	}
	p.expectPeek(token.LBRACE)
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		member := p.parseClassMember()
		if member != nil {
			decl.Members = append(decl.Members, member)
		}
		p.nextToken()
	}
	return decl
}

// parseClassMember parses one class body member: field, method,
// accessor, auto-accessor, constructor, or static block.
func (p *Parser) parseClassMember() ast.ClassMember {
	var decorators []*ast.Decorator
	if p.curTokenIs(token.AT) {
		decorators = p.parseDecorators()
	}

	if p.curTokenIs(token.STATIC) && p.peekTokenIs(token.LBRACE) {
		tok := p.curToken
		p.nextToken()
		body := p.parseBlockStatement()
		return &ast.StaticBlock{Token: tok, Body: body}
	}

	modifier := ""
	static := false
	abstract := false
	override := false
	readonly := false

	for {
		switch p.curToken.Type {
		case token.PUBLIC, token.PRIVATE, token.PROTECTED:
			modifier = p.curToken.Literal
			p.nextToken()
			continue
		case token.STATIC:
			static = true
			p.nextToken()
			continue
		case token.ABSTRACT:
			abstract = true
			p.nextToken()
			continue
		case token.OVERRIDE:
			override = true
			p.nextToken()
			continue
		case token.READONLY:
			readonly = true
			p.nextToken()
			continue
		}
		break
	}

	async := false
	if p.curTokenIs(token.ASYNC) {
		async = true
		p.nextToken()
	}

	if p.curToken.Literal == "accessor" && p.curTokenIs(token.IDENT) {
		p.nextToken()
		return p.parseAutoAccessor(modifier, static, decorators)
	}

	if p.curTokenIs(token.GET) || p.curTokenIs(token.SET) {
		kind := p.curToken.Literal
		tok := p.curToken
		p.nextToken()
		name := p.curToken.Literal
		params, _ := p.parseParameterList()
		var retType ast.TypeExpression
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			retType = p.parseTypeExpression()
		}
		var body *ast.BlockStatement
		if p.peekTokenIs(token.LBRACE) {
			p.nextToken()
			body = p.parseBlockStatement()
		}
		return &ast.AccessorDeclaration{
			Token: tok, Name: name, Kind: kind, Params: params, ReturnType: retType,
			Body: body, Modifier: modifier, Static: static, Abstract: abstract, Decorators: decorators,
		}
	}

	generator := false
	if p.curTokenIs(token.STAR) {
		generator = true
		p.nextToken()
	}

	nameTok := p.curToken
	name := p.curToken.Literal
	computed := false
	if p.curTokenIs(token.LBRACKET) {
		computed = true
		p.nextToken()
		// computed member name expression is parsed and discarded;
		// the member's Name is left empty
		p.parseExpression(LOWEST)
		p.expectPeek(token.RBRACKET)
		name = ""
	}

	if p.peekTokenIs(token.LPAREN) || p.peekTokenIs(token.LT) {
		typeParams := p.parseTypeParameterList()
		params, _ := p.parseParameterList()
		var retType ast.TypeExpression
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			retType = p.parseReturnTypeExpression()
		}
		var body *ast.BlockStatement
		if p.peekTokenIs(token.LBRACE) {
			p.nextToken()
			body = p.parseBlockStatement()
		} else if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return &ast.MethodDeclaration{
			Token: nameTok, Name: name, Computed: computed, TypeParams: typeParams, Params: params,
			ReturnType: retType, Body: body, Modifier: modifier, Static: static, Abstract: abstract,
			Override: override, Async: async, Generator: generator, Decorators: decorators,
		}
	}

	field := &ast.FieldDeclaration{Token: nameTok, Name: name, Computed: computed, Modifier: modifier,
		Static: static, Readonly: readonly, Abstract: abstract, Decorators: decorators}
	if p.peekTokenIs(token.QUESTION) {
		p.nextToken()
		field.Optional = true
	}
	if p.peekTokenIs(token.BANG) {
		p.nextToken()
		field.Definite = true
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		field.TypeAnn = p.parseTypeExpression()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		field.Initializer = p.parseExpression(ASSIGN)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return field
}

func (p *Parser) parseAutoAccessor(modifier string, static bool, decorators []*ast.Decorator) ast.ClassMember {
	tok := p.curToken
	name := p.curToken.Literal
	acc := &ast.AutoAccessorDeclaration{Token: tok, Name: name, Modifier: modifier, Static: static, Decorators: decorators}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		acc.TypeAnn = p.parseTypeExpression()
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		acc.Initializer = p.parseExpression(ASSIGN)
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return acc
}

func (p *Parser) parseInterfaceDeclaration() ast.Statement {
	tok := p.curToken
	p.expectPeek(token.IDENT)
	decl := &ast.InterfaceDeclaration{Token: tok, Name: p.curToken.Literal}
	decl.TypeParams = p.parseTypeParameterList()
	if p.peekTokenIs(token.EXTENDS) {
		p.nextToken()
		decl.Extends = p.parseHeritageClause(token.EXTENDS)
	}
	p.expectPeek(token.LBRACE)
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		member := p.parseInterfaceMember()
		decl.Members = append(decl.Members, member)
		if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
		p.nextToken()
	}
	return decl
}

func (p *Parser) parseInterfaceMember() ast.InterfaceMember {
	tok := p.curToken
	if p.curTokenIs(token.LBRACKET) {
		p.nextToken()
		keyName := p.curToken.Literal
		p.expectPeek(token.COLON)
		p.nextToken()
		keyType := p.parseTypeExpression()
		p.expectPeek(token.RBRACKET)
		p.expectPeek(token.COLON)
		p.nextToken()
		valType := p.parseTypeExpression()
		return ast.InterfaceMember{Index: &ast.IndexSignature{Token: tok, KeyName: keyName, KeyType: keyType, ValueType: valType}}
	}
	if p.curTokenIs(token.LPAREN) {
		params, _ := p.tryParseFunctionTypeParams()
		p.expectPeek(token.COLON)
		p.nextToken()
		ret := p.parseTypeExpression()
		return ast.InterfaceMember{Call: &ast.CallSignature{Token: tok, Params: params, ReturnType: ret}}
	}
	name := p.curToken.Literal
	optional := false
	readonly := false
	if name == "readonly" && (p.peekTokenIs(token.IDENT)) {
		readonly = true
		p.nextToken()
		name = p.curToken.Literal
	}
	if p.peekTokenIs(token.QUESTION) {
		p.nextToken()
		optional = true
	}
	if p.peekTokenIs(token.LPAREN) {
		params, _ := p.tryParseFunctionTypeParamsAtPeek()
		var ret ast.TypeExpression
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			ret = p.parseReturnTypeExpression()
		}
		return ast.InterfaceMember{Method: &ast.MethodSignature{Token: tok, Name: name, Params: params, ReturnType: ret, Optional: optional}}
	}
	p.expectPeek(token.COLON)
	p.nextToken()
	propType := p.parseTypeExpression()
	return ast.InterfaceMember{Property: &ast.PropertySignature{Token: tok, Name: name, Type: propType, Optional: optional, Readonly: readonly}}
}

func (p *Parser) parseEnumDeclaration() ast.Statement {
	tok := p.curToken
	p.expectPeek(token.IDENT)
	decl := &ast.EnumDeclaration{Token: tok, Name: p.curToken.Literal}
	p.expectPeek(token.LBRACE)
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		m := ast.EnumMember{Name: p.curToken.Literal}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			m.Initializer = p.parseExpression(ASSIGN)
		}
		decl.Members = append(decl.Members, m)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACE) {
				p.nextToken()
				break
			}
			p.nextToken()
			continue
		}
		p.nextToken()
		break
	}
	return decl
}

func (p *Parser) parseNamespaceDeclaration() ast.Statement {
	tok := p.curToken
	legacy := p.curTokenIs(token.MODULE)
	p.expectPeek(token.IDENT)
	name := p.curToken.Literal
	for p.peekTokenIs(token.DOT) {
		p.nextToken()
		p.expectPeek(token.IDENT)
		name += "." + p.curToken.Literal
	}
	p.expectPeek(token.LBRACE)
	p.nextToken()
	decl := &ast.NamespaceDeclaration{Token: tok, Name: name, LegacyKeyword: legacy}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if s := p.parseStatement(); s != nil {
			decl.Body = append(decl.Body, s)
		}
		p.nextToken()
	}
	return decl
}

func (p *Parser) parseAmbientDeclaration() ast.Statement {
	tok := p.curToken
	if p.peekTokenIs(token.MODULE) {
		p.nextToken()
		return p.parseDeclareModule(tok)
	}
	if p.peekTokenIs(token.GLOBAL) {
		p.nextToken()
		p.expectPeek(token.LBRACE)
		p.nextToken()
		decl := &ast.DeclareGlobalStatement{Token: tok}
		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			if s := p.parseStatement(); s != nil {
				decl.Body = append(decl.Body, s)
			}
			p.nextToken()
		}
		return decl
	}
	p.nextToken()
	inner := p.parseStatement()
	return &ast.AmbientDeclaration{Token: tok, Declaration: inner}
}

func (p *Parser) parseDeclareModule(tok token.Token) ast.Statement {
	stringNamed := p.peekTokenIs(token.STRING)
	p.nextToken()
	name := p.curToken.Literal
	p.expectPeek(token.LBRACE)
	p.nextToken()
	decl := &ast.DeclareModuleStatement{Token: tok, Name: name, StringNamed: stringNamed}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if s := p.parseStatement(); s != nil {
			decl.Body = append(decl.Body, s)
		}
		p.nextToken()
	}
	return decl
}
