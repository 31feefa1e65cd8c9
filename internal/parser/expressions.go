package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/lexer"
	"github.com/cwbudde/go-tscheck/internal/token"
)

func (p *Parser) registerExpressionParsers() {
	p.prefixParseFns[token.IDENT] = p.parseIdentifier
	p.prefixParseFns[token.NUMBER] = p.parseNumericLiteral
	p.prefixParseFns[token.BIGINT] = p.parseBigIntLiteral
	p.prefixParseFns[token.STRING] = p.parseStringLiteral
	p.prefixParseFns[token.TEMPLATE_STRING] = p.parseTemplateLiteral
	p.prefixParseFns[token.TRUE] = p.parseBooleanLiteral
	p.prefixParseFns[token.FALSE] = p.parseBooleanLiteral
	p.prefixParseFns[token.NULL] = p.parseNullLiteral
	p.prefixParseFns[token.UNDEFINED] = p.parseUndefinedLiteral
	p.prefixParseFns[token.THIS] = p.parseThisExpression
	p.prefixParseFns[token.SUPER] = p.parseSuperExpression
	p.prefixParseFns[token.LPAREN] = p.parseGroupedOrArrow
	p.prefixParseFns[token.LBRACKET] = p.parseArrayLiteral
	p.prefixParseFns[token.LBRACE] = p.parseObjectLiteral
	p.prefixParseFns[token.NEW] = p.parseNewExpression
	p.prefixParseFns[token.FUNCTION] = p.parseFunctionExpression
	p.prefixParseFns[token.CLASS] = p.parseClassExpression
	p.prefixParseFns[token.TYPEOF] = p.parseUnaryPrefix
	p.prefixParseFns[token.VOID] = p.parseUnaryPrefix
	p.prefixParseFns[token.DELETE] = p.parseDeleteExpression
	p.prefixParseFns[token.AWAIT] = p.parseAwaitExpression
	p.prefixParseFns[token.YIELD] = p.parseYieldExpression
	p.prefixParseFns[token.BANG] = p.parseUnaryPrefix
	p.prefixParseFns[token.MINUS] = p.parseUnaryPrefix
	p.prefixParseFns[token.PLUS] = p.parseUnaryPrefix
	p.prefixParseFns[token.TILDE] = p.parseUnaryPrefix
	p.prefixParseFns[token.PLUS_PLUS] = p.parseUnaryPrefix
	p.prefixParseFns[token.MINUS_MINUS] = p.parseUnaryPrefix
	p.prefixParseFns[token.ASYNC] = p.parseAsyncPrefixed
	p.prefixParseFns[token.IMPORT] = p.parseImportKeywordExpression
	p.prefixParseFns[token.LT] = p.parseAngleBracketTypeAssertion

	infixKinds := []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.STAR_STAR,
		token.EQ, token.NEQ, token.STRICT_EQ, token.STRICT_NEQ,
		token.LT, token.GT, token.LE, token.GE,
		token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR, token.USHR,
		token.INSTANCEOF, token.IN,
	}
	for _, k := range infixKinds {
		p.infixParseFns[k] = p.parseBinaryExpression
	}
	p.infixParseFns[token.AND_AND] = p.parseLogicalExpression
	p.infixParseFns[token.OR_OR] = p.parseLogicalExpression
	p.infixParseFns[token.QUESTION_QUESTION] = p.parseLogicalExpression
	p.infixParseFns[token.QUESTION] = p.parseConditionalExpression
	p.infixParseFns[token.LPAREN] = p.parseCallExpression
	p.infixParseFns[token.DOT] = p.parseMemberExpression
	p.infixParseFns[token.QUESTION_DOT] = p.parseMemberExpression
	p.infixParseFns[token.LBRACKET] = p.parseComputedMemberExpression
	p.infixParseFns[token.PLUS_PLUS] = p.parsePostfixExpression
	p.infixParseFns[token.MINUS_MINUS] = p.parsePostfixExpression
	p.infixParseFns[token.AS] = p.parseAsExpression
	p.infixParseFns[token.SATISFIES] = p.parseSatisfiesExpression

	assignKinds := []token.Kind{
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.AND_AND_ASSIGN,
		token.OR_OR_ASSIGN, token.QQ_ASSIGN,
	}
	for _, k := range assignKinds {
		p.infixParseFns[k] = p.parseAssignmentExpression
	}
}

// parseExpression implements standard Pratt-style precedence climbing.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.errorf(p.curToken.Pos, ErrNoPrefixParse, "no prefix parse function for %v", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	stmt := &ast.ExpressionStatement{Token: tok, Expression: expr}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}
}

func (p *Parser) parseNumericLiteral() ast.Expression {
	tok := p.curToken
	val, err := strconv.ParseFloat(strings.TrimSpace(tok.Literal), 64)
	if err != nil {
		p.errorf(tok.Pos, ErrInvalidSyntax, "invalid numeric literal %q", tok.Literal)
	}
	return &ast.NumericLiteral{Token: tok, Value: val}
}

func (p *Parser) parseBigIntLiteral() ast.Expression {
	return &ast.BigIntLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == token.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression      { return &ast.NullLiteral{Token: p.curToken} }
func (p *Parser) parseUndefinedLiteral() ast.Expression { return &ast.UndefinedLiteral{Token: p.curToken} }
func (p *Parser) parseThisExpression() ast.Expression   { return &ast.ThisExpression{Token: p.curToken} }
func (p *Parser) parseSuperExpression() ast.Expression  { return &ast.SuperExpression{Token: p.curToken} }

// parseTemplateLiteral splits the raw TEMPLATE_STRING span captured by
// the lexer into its quasis and `${...}` expressions, re-lexing each
// interpolated span with a fresh lexer.Lexer.
func (p *Parser) parseTemplateLiteral() ast.Expression {
	tok := p.curToken
	raw := tok.Literal
	inner := raw[1 : len(raw)-1] // strip surrounding backticks

	lit := &ast.TemplateLiteral{Token: tok}
	var quasi strings.Builder
	i := 0
	for i < len(inner) {
		if inner[i] == '\\' && i+1 < len(inner) {
			quasi.WriteByte(inner[i])
			quasi.WriteByte(inner[i+1])
			i += 2
			continue
		}
		if inner[i] == '$' && i+1 < len(inner) && inner[i+1] == '{' {
			depth := 1
			start := i + 2
			j := start
			for j < len(inner) && depth > 0 {
				switch inner[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			lit.Quasis = append(lit.Quasis, quasi.String())
			quasi.Reset()
			sub := lexer.New(inner[start:j])
			subParser := New(sub)
			expr := subParser.parseExpression(LOWEST)
			p.errors = append(p.errors, subParser.errors...)
			lit.Expressions = append(lit.Expressions, expr)
			i = j + 1
			continue
		}
		quasi.WriteByte(inner[i])
		i++
	}
	lit.Quasis = append(lit.Quasis, quasi.String())
	return lit
}

func (p *Parser) parseUnaryPrefix() ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpression{Token: tok, Operator: op, Operand: operand, Prefix: true}
}

func (p *Parser) parseDeleteExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.DeleteExpression{Token: tok, Operand: p.parseExpression(PREFIX)}
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.AwaitExpression{Token: tok, Operand: p.parseExpression(PREFIX)}
}

func (p *Parser) parseYieldExpression() ast.Expression {
	tok := p.curToken
	delegate := false
	if p.peekTokenIs(token.STAR) {
		p.nextToken()
		delegate = true
	}
	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.RPAREN) || p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.COMMA) {
		return &ast.YieldExpression{Token: tok, Delegate: delegate}
	}
	p.nextToken()
	return &ast.YieldExpression{Token: tok, Argument: p.parseExpression(ASSIGN), Delegate: delegate}
}

func (p *Parser) parseAsyncPrefixed() ast.Expression {
	// `async function` or `async (params) => body` or `async x => body`.
	if p.peekTokenIs(token.FUNCTION) {
		p.nextToken()
		fn := p.parseFunctionExpression().(*ast.FunctionExpression)
		fn.Async = true
		return fn
	}
	p.nextToken()
	arrow := p.parseArrowFromCurrent()
	if a, ok := arrow.(*ast.ArrowFunctionExpression); ok {
		a.Async = true
	}
	return arrow
}

func (p *Parser) parseGroupedOrArrow() ast.Expression {
	// Speculatively try an arrow function `(params) => body`; if the
	// parenthesized group turns out not to be followed by `=>`, treat
	// it as a grouping/tuple-like expression.
	return p.parseArrowFromCurrent()
}

// parseArrowFromCurrent handles both `(params) => body` and the bare
// single-identifier arrow form `x => body`. The cursor is at LPAREN or
// at the identifier.
func (p *Parser) parseArrowFromCurrent() ast.Expression {
	tok := p.curToken
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ARROW) {
		param := &ast.Parameter{Name: p.curToken.Literal}
		p.nextToken() // consume =>
		p.nextToken()
		body := p.parseArrowBody()
		return &ast.ArrowFunctionExpression{Token: tok, Params: []*ast.Parameter{param}, Body: body}
	}
	if p.curTokenIs(token.IDENT) {
		return p.parseIdentifier()
	}

	// LPAREN case: could be a grouped expression or an arrow parameter list.
	savedCur, savedPeek := p.curToken, p.peekToken
	savedErrLen := len(p.errors)
	savedLex := *p.l
	if params, ok := p.tryParseArrowParams(); ok {
		var retType ast.TypeExpression
		if p.peekTokenIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			retType = p.parseTypeExpression()
		}
		if p.expectPeek(token.ARROW) {
			p.nextToken()
			body := p.parseArrowBody()
			return &ast.ArrowFunctionExpression{Token: tok, Params: params, ReturnType: retType, Body: body}
		}
	}
	// Not an arrow function: rewind and parse as a grouped expression.
	p.curToken, p.peekToken = savedCur, savedPeek
	*p.l = savedLex
	p.errors = p.errors[:savedErrLen]
	p.nextToken() // consume '('
	inner := p.parseExpression(LOWEST)
	p.expectPeek(token.RPAREN)
	return &ast.GroupingExpression{Token: tok, Inner: inner}
}

func (p *Parser) parseArrowBody() ast.Node {
	if p.curTokenIs(token.LBRACE) {
		return p.parseBlockStatement()
	}
	return p.parseExpression(ASSIGN)
}

// tryParseArrowParams attempts to parse `(params)` as an arrow
// parameter list starting at LPAREN. It does not roll back lexer
// state itself; on failure the caller restores p.curToken/p.peekToken
// together with a copy of the lexer's state taken before the attempt.
func (p *Parser) tryParseArrowParams() ([]*ast.Parameter, bool) {
	if !p.curTokenIs(token.LPAREN) {
		return nil, false
	}
	var params []*ast.Parameter
	p.nextToken()
	for !p.curTokenIs(token.RPAREN) {
		if !p.curTokenIs(token.IDENT) && !p.curTokenIs(token.DOTDOTDOT) {
			return nil, false
		}
		param := &ast.Parameter{}
		if p.curTokenIs(token.DOTDOTDOT) {
			param.Rest = true
			p.nextToken()
		}
		if !p.curTokenIs(token.IDENT) {
			return nil, false
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
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			break
		}
		return nil, false
	}
	return params, true
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	lit := &ast.ArrayLiteral{Token: tok}
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return lit
	}
	p.nextToken()
	for {
		if p.curTokenIs(token.DOTDOTDOT) {
			spreadTok := p.curToken
			p.nextToken()
			lit.Elements = append(lit.Elements, &ast.SpreadElement{Token: spreadTok, Argument: p.parseExpression(ASSIGN)})
		} else if p.curTokenIs(token.COMMA) {
			lit.Elements = append(lit.Elements, nil) // elision
		} else {
			lit.Elements = append(lit.Elements, p.parseExpression(ASSIGN))
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACKET) {
				break
			}
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RBRACKET)
	return lit
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.curToken
	lit := &ast.ObjectLiteral{Token: tok}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return lit
	}
	p.nextToken()
	for {
		prop := ast.ObjectProperty{}
		if p.curTokenIs(token.DOTDOTDOT) {
			spreadTok := p.curToken
			p.nextToken()
			prop.Spread = &ast.SpreadElement{Token: spreadTok, Argument: p.parseExpression(ASSIGN)}
			lit.Properties = append(lit.Properties, prop)
		} else if p.curTokenIs(token.LBRACKET) {
			p.nextToken()
			keyExpr := p.parseExpression(LOWEST)
			p.expectPeek(token.RBRACKET)
			p.expectPeek(token.COLON)
			p.nextToken()
			prop.Key = keyExpr
			prop.Computed = true
			prop.Value = p.parseExpression(ASSIGN)
			lit.Properties = append(lit.Properties, prop)
		} else {
			keyTok := p.curToken
			var key ast.Expression
			switch keyTok.Type {
			case token.STRING:
				key = &ast.StringLiteral{Token: keyTok, Value: keyTok.Literal}
			case token.NUMBER:
				key = p.parseNumericLiteral()
			default:
				key = &ast.Identifier{Token: keyTok, Name: keyTok.Literal}
			}
			prop.Key = key
			if p.peekTokenIs(token.COLON) {
				p.nextToken()
				p.nextToken()
				prop.Value = p.parseExpression(ASSIGN)
			} else if p.peekTokenIs(token.LPAREN) {
				// method shorthand: treat as a FunctionExpression value
				fnTok := p.curToken
				params, _ := p.parseParameterList()
				var retType ast.TypeExpression
				if p.peekTokenIs(token.COLON) {
					p.nextToken()
					p.nextToken()
					retType = p.parseReturnTypeExpression()
				}
				p.expectPeek(token.LBRACE)
				body := p.parseBlockStatement()
				prop.Value = &ast.FunctionExpression{Token: fnTok, Params: params, ReturnType: retType, Body: body}
			} else {
				prop.Shorthand = true
			}
			lit.Properties = append(lit.Properties, prop)
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if p.peekTokenIs(token.RBRACE) {
				break
			}
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RBRACE)
	return lit
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	callee := p.parseExpression(MEMBER)
	newExpr := &ast.NewExpression{Token: tok, Callee: callee}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		newExpr.Arguments = p.parseArgumentList()
	}
	return newExpr
}

func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	for {
		if p.curTokenIs(token.DOTDOTDOT) {
			spreadTok := p.curToken
			p.nextToken()
			args = append(args, &ast.SpreadElement{Token: spreadTok, Argument: p.parseExpression(ASSIGN)})
		} else {
			args = append(args, p.parseExpression(ASSIGN))
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RPAREN)
	return args
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.LogicalExpression{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	consequent := p.parseExpression(ASSIGN)
	p.expectPeek(token.COLON)
	p.nextToken()
	alternate := p.parseExpression(ASSIGN)
	return &ast.ConditionalExpression{Token: tok, Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Literal
	p.nextToken()
	value := p.parseExpression(ASSIGN - 1)
	return &ast.AssignmentExpression{Token: tok, Target: left, Operator: op, Value: value}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseArgumentList()
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	tok := p.curToken
	optional := tok.Type == token.QUESTION_DOT
	if !p.expectPeek(token.IDENT) {
		return object
	}
	prop := &ast.Identifier{Token: p.curToken, Name: p.curToken.Literal}
	return &ast.MemberExpression{Token: tok, Object: object, Property: prop, Optional: optional}
}

func (p *Parser) parseComputedMemberExpression(object ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	index := p.parseExpression(LOWEST)
	p.expectPeek(token.RBRACKET)
	return &ast.MemberExpression{Token: tok, Object: object, Property: index, Computed: true}
}

func (p *Parser) parsePostfixExpression(operand ast.Expression) ast.Expression {
	tok := p.curToken
	return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Operand: operand, Prefix: false}
}

func (p *Parser) parseAsExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	target := p.parseTypeExpression()
	return &ast.TypeAssertionExpression{Token: tok, Expression: left, TargetType: target}
}

func (p *Parser) parseSatisfiesExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	target := p.parseTypeExpression()
	return &ast.SatisfiesExpression{Token: tok, Expression: left, TargetType: target}
}

func (p *Parser) parseAngleBracketTypeAssertion() ast.Expression {
	tok := p.curToken
	p.nextToken()
	target := p.parseTypeExpression()
	p.expectPeek(token.GT)
	p.nextToken()
	expr := p.parseExpression(PREFIX)
	return &ast.TypeAssertionExpression{Token: tok, Expression: expr, TargetType: target, AngleBracketSyntax: true}
}

func (p *Parser) parseImportKeywordExpression() ast.Expression {
	tok := p.curToken
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		src := p.parseExpression(ASSIGN)
		p.expectPeek(token.RPAREN)
		return &ast.DynamicImportExpression{Token: tok, Source: src}
	}
	if p.expectPeek(token.DOT) {
		p.expectPeek(token.IDENT) // "meta"
		return &ast.ImportMetaExpression{Token: tok}
	}
	return &ast.ImportMetaExpression{Token: tok}
}
