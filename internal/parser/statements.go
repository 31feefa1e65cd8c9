package parser

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/token"
)

// parseStatement dispatches on the current token's kind to the
// matching statement parser. Declarations (var/let/const/function/
// class/interface/...) are parsed here too since in TypeScript
// syntax they are statements, not a separate grammar production.
func (p *Parser) parseStatement() ast.Statement {
	var stmt ast.Statement
	switch p.curToken.Type {
	case token.CONST:
		if p.peekTokenIs(token.ENUM) {
			constTok := p.curToken
			p.nextToken()
			enumDecl := p.parseEnumDeclaration().(*ast.EnumDeclaration)
			enumDecl.Token = constTok
			enumDecl.Const = true
			stmt = enumDecl
		} else {
			stmt = p.parseVariableDeclaration()
			if p.peekTokenIs(token.SEMICOLON) {
				p.nextToken()
			}
		}
	case token.VAR, token.LET:
		stmt = p.parseVariableDeclaration()
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	case token.FUNCTION:
		stmt = p.parseFunctionDeclaration()
	case token.ASYNC:
		if p.peekTokenIs(token.FUNCTION) {
			p.nextToken()
			fn := p.parseFunctionDeclaration().(*ast.FunctionDeclaration)
			fn.Async = true
			stmt = fn
		} else {
			stmt = p.parseExpressionStatement()
		}
	case token.CLASS:
		stmt = p.parseClassDeclaration()
	case token.INTERFACE:
		stmt = p.parseInterfaceDeclaration()
	case token.ENUM:
		stmt = p.parseEnumDeclaration()
	case token.NAMESPACE, token.MODULE:
		stmt = p.parseNamespaceDeclaration()
	case token.TYPE:
		stmt = p.parseTypeAliasDeclaration()
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	case token.IMPORT:
		stmt = p.parseImportDeclaration()
	case token.EXPORT:
		stmt = p.parseExportDeclaration()
	case token.DECLARE:
		stmt = p.parseAmbientDeclaration()
	case token.IF:
		stmt = p.parseIfStatement()
	case token.WHILE:
		stmt = p.parseWhileStatement("")
	case token.DO:
		stmt = p.parseDoWhileStatement("")
	case token.FOR:
		stmt = p.parseForStatement("")
	case token.SWITCH:
		stmt = p.parseSwitchStatement("")
	case token.RETURN:
		stmt = p.parseReturnStatement()
	case token.BREAK:
		stmt = p.parseBreakStatement()
	case token.CONTINUE:
		stmt = p.parseContinueStatement()
	case token.THROW:
		stmt = p.parseThrowStatement()
	case token.TRY:
		stmt = p.parseTryStatement()
	case token.USING:
		stmt = p.parseUsingStatement(false)
	case token.AWAIT:
		if p.peekTokenIs(token.USING) {
			p.nextToken()
			stmt = p.parseUsingStatement(true)
		} else {
			stmt = p.parseExpressionStatement()
		}
	case token.LBRACE:
		stmt = p.parseBlockStatement()
	case token.SEMICOLON:
		stmt = &ast.EmptyStatement{Token: p.curToken}
	case token.IDENT:
		if p.peekTokenIs(token.COLON) {
			stmt = p.parseLabeledStatement()
		} else {
			stmt = p.parseExpressionStatement()
		}
	default:
		stmt = p.parseExpressionStatement()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	tok := p.curToken
	block := &ast.BlockStatement{Token: tok}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if s := p.parseStatement(); s != nil {
			block.Statements = append(block.Statements, s)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	tok := p.curToken
	kind := tok.Literal
	decl := &ast.VariableDeclaration{Token: tok, Kind: kind}
	p.nextToken()
	for {
		d := &ast.VariableDeclarator{}
		switch p.curToken.Type {
		case token.LBRACKET:
			d.Pattern = p.parseArrayPattern()
		case token.LBRACE:
			d.Pattern = p.parseObjectPattern()
		default:
			d.Name = p.curToken.Literal
			if p.peekTokenIs(token.BANG) {
				p.nextToken()
				d.Definite = true
			}
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			d.TypeAnn = p.parseTypeExpression()
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			d.Initializer = p.parseExpression(ASSIGN)
		}
		decl.Declarations = append(decl.Declarations, d)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	return decl
}

func (p *Parser) parseArrayPattern() *ast.ArrayPattern {
	tok := p.curToken
	pat := &ast.ArrayPattern{Token: tok}
	p.nextToken()
	for !p.curTokenIs(token.RBRACKET) {
		if p.curTokenIs(token.COMMA) {
			pat.Elements = append(pat.Elements, nil)
			p.nextToken()
			continue
		}
		el := &ast.PatternElement{}
		if p.curTokenIs(token.DOTDOTDOT) {
			el.Rest = true
			p.nextToken()
		}
		el.Target = p.parseBindingTarget()
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			el.Default = p.parseExpression(ASSIGN)
		}
		pat.Elements = append(pat.Elements, el)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RBRACKET)
	return pat
}

func (p *Parser) parseObjectPattern() *ast.ObjectPattern {
	tok := p.curToken
	pat := &ast.ObjectPattern{Token: tok}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		el := &ast.PatternElement{}
		if p.curTokenIs(token.DOTDOTDOT) {
			el.Rest = true
			p.nextToken()
			el.Target = &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}
		} else {
			el.Key = p.curToken.Literal
			if p.peekTokenIs(token.COLON) {
				p.nextToken()
				p.nextToken()
				el.Target = p.parseBindingTarget()
			} else {
				el.Target = &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}
			}
			if p.peekTokenIs(token.ASSIGN) {
				p.nextToken()
				p.nextToken()
				el.Default = p.parseExpression(ASSIGN)
			}
		}
		pat.Elements = append(pat.Elements, el)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RBRACE)
	return pat
}

func (p *Parser) parseBindingTarget() ast.Node {
	switch p.curToken.Type {
	case token.LBRACKET:
		return p.parseArrayPattern()
	case token.LBRACE:
		return p.parseObjectPattern()
	default:
		return &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}
	}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	p.expectPeek(token.LPAREN)
	p.nextToken()
	test := p.parseExpression(LOWEST)
	p.expectPeek(token.RPAREN)
	p.nextToken()
	consequent := p.parseStatement()
	stmt := &ast.IfStatement{Token: tok, Test: test, Consequent: consequent}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternate = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement(label string) ast.Statement {
	tok := p.curToken
	p.expectPeek(token.LPAREN)
	p.nextToken()
	test := p.parseExpression(LOWEST)
	p.expectPeek(token.RPAREN)
	p.nextToken()
	body := p.parseStatement()
	return &ast.WhileStatement{Token: tok, Test: test, Body: body, Label: label}
}

func (p *Parser) parseDoWhileStatement(label string) ast.Statement {
	tok := p.curToken
	p.nextToken()
	body := p.parseStatement()
	p.expectPeek(token.WHILE)
	p.expectPeek(token.LPAREN)
	p.nextToken()
	test := p.parseExpression(LOWEST)
	p.expectPeek(token.RPAREN)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.DoWhileStatement{Token: tok, Body: body, Test: test, Label: label}
}

// parseForStatement disambiguates the classic three-clause form from
// `for (decl of expr)` / `for (decl in expr)` by parsing the init
// clause first and inspecting the following token.
func (p *Parser) parseForStatement(label string) ast.Statement {
	tok := p.curToken
	await := false
	p.expectPeek(token.LPAREN)

	var initNode ast.Node
	p.nextToken()
	if p.curTokenIs(token.VAR) || p.curTokenIs(token.LET) || p.curTokenIs(token.CONST) {
		declTok := p.curToken
		kind := p.curToken.Literal
		p.nextToken()
		d := &ast.VariableDeclarator{}
		switch p.curToken.Type {
		case token.LBRACKET:
			d.Pattern = p.parseArrayPattern()
		case token.LBRACE:
			d.Pattern = p.parseObjectPattern()
		default:
			d.Name = p.curToken.Literal
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			d.TypeAnn = p.parseTypeExpression()
		}
		decl := &ast.VariableDeclaration{Token: declTok, Kind: kind, Declarations: []*ast.VariableDeclarator{d}}
		if p.peekTokenIs(token.OF) {
			p.nextToken()
			p.nextToken()
			right := p.parseExpression(ASSIGN)
			p.expectPeek(token.RPAREN)
			p.nextToken()
			body := p.parseStatement()
			return &ast.ForOfStatement{Token: tok, Left: decl, Right: right, Body: body, Await: await, Label: label}
		}
		if p.peekTokenIs(token.IN) {
			p.nextToken()
			p.nextToken()
			right := p.parseExpression(ASSIGN)
			p.expectPeek(token.RPAREN)
			p.nextToken()
			body := p.parseStatement()
			return &ast.ForInStatement{Token: tok, Left: decl, Right: right, Body: body, Label: label}
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			d.Initializer = p.parseExpression(ASSIGN)
		}
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			d2 := &ast.VariableDeclarator{Name: p.curToken.Literal}
			if p.peekTokenIs(token.ASSIGN) {
				p.nextToken()
				p.nextToken()
				d2.Initializer = p.parseExpression(ASSIGN)
			}
			decl.Declarations = append(decl.Declarations, d2)
		}
		initNode = decl
	} else if !p.curTokenIs(token.SEMICOLON) {
		expr := p.parseExpression(LOWEST)
		if p.peekTokenIs(token.OF) {
			p.nextToken()
			p.nextToken()
			right := p.parseExpression(ASSIGN)
			p.expectPeek(token.RPAREN)
			p.nextToken()
			body := p.parseStatement()
			return &ast.ForOfStatement{Token: tok, Left: expr, Right: right, Body: body, Await: await, Label: label}
		}
		if p.peekTokenIs(token.IN) {
			p.nextToken()
			p.nextToken()
			right := p.parseExpression(ASSIGN)
			p.expectPeek(token.RPAREN)
			p.nextToken()
			body := p.parseStatement()
			return &ast.ForInStatement{Token: tok, Left: expr, Right: right, Body: body, Label: label}
		}
		initNode = expr
	}

	p.expectPeek(token.SEMICOLON)
	var test ast.Expression
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		test = p.parseExpression(LOWEST)
	}
	p.expectPeek(token.SEMICOLON)
	var update ast.Expression
	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		update = p.parseExpression(LOWEST)
	}
	p.expectPeek(token.RPAREN)
	p.nextToken()
	body := p.parseStatement()
	return &ast.ForStatement{Token: tok, Init: initNode, Test: test, Update: update, Body: body, Label: label}
}

func (p *Parser) parseSwitchStatement(label string) ast.Statement {
	tok := p.curToken
	p.expectPeek(token.LPAREN)
	p.nextToken()
	disc := p.parseExpression(LOWEST)
	p.expectPeek(token.RPAREN)
	p.expectPeek(token.LBRACE)
	p.nextToken()
	stmt := &ast.SwitchStatement{Token: tok, Discriminant: disc, Label: label}
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		c := ast.SwitchCase{Token: p.curToken}
		if p.curTokenIs(token.CASE) {
			p.nextToken()
			c.Test = p.parseExpression(LOWEST)
			p.expectPeek(token.COLON)
		} else if p.curTokenIs(token.DEFAULT) {
			p.expectPeek(token.COLON)
		}
		p.nextToken()
		for !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			if s := p.parseStatement(); s != nil {
				c.Consequent = append(c.Consequent, s)
			}
			p.nextToken()
		}
		stmt.Cases = append(stmt.Cases, c)
	}
	return stmt
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	tok := p.curToken
	label := p.curToken.Literal
	p.nextToken() // consume ':'
	p.nextToken()
	switch p.curToken.Type {
	case token.WHILE:
		return &ast.LabeledStatement{Token: tok, Label: label, Body: p.parseWhileStatement(label)}
	case token.DO:
		return &ast.LabeledStatement{Token: tok, Label: label, Body: p.parseDoWhileStatement(label)}
	case token.FOR:
		return &ast.LabeledStatement{Token: tok, Label: label, Body: p.parseForStatement(label)}
	case token.SWITCH:
		return &ast.LabeledStatement{Token: tok, Label: label, Body: p.parseSwitchStatement(label)}
	default:
		return &ast.LabeledStatement{Token: tok, Label: label, Body: p.parseStatement()}
	}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RBRACE) {
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return &ast.ReturnStatement{Token: tok}
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ReturnStatement{Token: tok, Argument: val}
}

func (p *Parser) parseBreakStatement() ast.Statement {
	tok := p.curToken
	label := ""
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		label = p.curToken.Literal
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.BreakStatement{Token: tok, Label: label}
}

func (p *Parser) parseContinueStatement() ast.Statement {
	tok := p.curToken
	label := ""
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		label = p.curToken.Literal
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ContinueStatement{Token: tok, Label: label}
}

func (p *Parser) parseThrowStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ThrowStatement{Token: tok, Argument: val}
}

func (p *Parser) parseTryStatement() ast.Statement {
	tok := p.curToken
	p.expectPeek(token.LBRACE)
	block := p.parseBlockStatement()
	stmt := &ast.TryStatement{Token: tok, Block: block}
	if p.peekTokenIs(token.CATCH) {
		p.nextToken()
		catchTok := p.curToken
		clause := &ast.CatchClause{Token: catchTok}
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			p.nextToken()
			clause.Param = p.curToken.Literal
			if p.peekTokenIs(token.COLON) {
				p.nextToken()
				p.nextToken()
				clause.TypeAnn = p.parseTypeExpression()
			}
			p.expectPeek(token.RPAREN)
		}
		p.expectPeek(token.LBRACE)
		clause.Body = p.parseBlockStatement()
		stmt.Handler = clause
	}
	if p.peekTokenIs(token.FINALLY) {
		p.nextToken()
		p.expectPeek(token.LBRACE)
		stmt.Finalizer = p.parseBlockStatement()
	}
	return stmt
}

func (p *Parser) parseUsingStatement(await bool) ast.Statement {
	tok := p.curToken
	p.expectPeek(token.IDENT)
	name := p.curToken.Literal
	p.expectPeek(token.ASSIGN)
	p.nextToken()
	init := p.parseExpression(ASSIGN)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.UsingStatement{Token: tok, Await: await, Name: name, Initializer: init}
}

// parseParameterList parses `(p1: T1, p2?: T2, ...rest: T3[])`
// starting with the current token at LPAREN.
func (p *Parser) parseParameterList() ([]*ast.Parameter, bool) {
	var params []*ast.Parameter
	p.expectPeek(token.LPAREN)
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}
	p.nextToken()
	for {
		param := &ast.Parameter{}
		switch p.curToken.Type {
		case token.PUBLIC, token.PRIVATE, token.PROTECTED, token.READONLY:
			param.Modifier = p.curToken.Literal
			p.nextToken()
		}
		if p.curTokenIs(token.DOTDOTDOT) {
			param.Rest = true
			p.nextToken()
		}
		param.Name = p.curToken.Literal
		if p.peekTokenIs(token.QUESTION) {
			p.nextToken()
			param.Optional = true
		}
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			param.TypeAnn = p.parseTypeExpression()
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			param.Default = p.parseExpression(ASSIGN)
		}
		params = append(params, param)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RPAREN)
	return params, true
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	tok := p.curToken
	generator := false
	if p.peekTokenIs(token.STAR) {
		p.nextToken()
		generator = true
	}
	p.expectPeek(token.IDENT)
	name := p.curToken.Literal
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
	return &ast.FunctionDeclaration{
		Token: tok, Name: name, TypeParams: typeParams, Params: params,
		ReturnType: retType, Body: body, Generator: generator,
	}
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	tok := p.curToken
	name := ""
	generator := false
	if p.peekTokenIs(token.STAR) {
		p.nextToken()
		generator = true
	}
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		name = p.curToken.Literal
	}
	typeParams := p.parseTypeParameterList()
	params, _ := p.parseParameterList()
	var retType ast.TypeExpression
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		retType = p.parseReturnTypeExpression()
	}
	p.expectPeek(token.LBRACE)
	body := p.parseBlockStatement()
	return &ast.FunctionExpression{
		Token: tok, Name: name, TypeParams: typeParams, Params: params,
		ReturnType: retType, Body: body, Generator: generator,
	}
}

func (p *Parser) parseTypeAliasDeclaration() ast.Statement {
	tok := p.curToken
	p.expectPeek(token.IDENT)
	name := p.curToken.Literal
	typeParams := p.parseTypeParameterList()
	p.expectPeek(token.ASSIGN)
	p.nextToken()
	value := p.parseTypeExpression()
	return &ast.TypeAliasDeclaration{Token: tok, Name: name, TypeParams: typeParams, Value: value}
}
