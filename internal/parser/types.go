package parser

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/token"
)

var keywordTypeNames = map[token.Kind]string{
	token.VOID:      "void",
	token.NULL:      "null",
	token.UNDEFINED: "undefined",
}

// parseTypeExpression parses a type annotation starting at the union
// level (the lowest type-level precedence): `A | B & C`.
func (p *Parser) parseTypeExpression() ast.TypeExpression {
	return p.parseUnionType()
}

// parseReturnTypeExpression parses a function/method return type
// annotation, additionally recognizing the `param is T` / `this is T`
// type-predicate forms that are only legal in that position.
func (p *Parser) parseReturnTypeExpression() ast.TypeExpression {
	tok := p.curToken
	if (p.curTokenIs(token.THIS) || p.curTokenIs(token.IDENT)) && p.peekTokenIs(token.IS) {
		name := p.curToken.Literal
		p.nextToken() // consume 'is'
		p.nextToken()
		return &ast.PredicateTypeNode{Token: tok, ParamName: name, Type: p.parseTypeExpression()}
	}
	return p.parseTypeExpression()
}

func (p *Parser) parseUnionType() ast.TypeExpression {
	tok := p.curToken
	// a leading `|` is permitted before the first arm
	if p.curTokenIs(token.PIPE) {
		p.nextToken()
	}
	first := p.parseIntersectionType()
	if !p.peekTokenIs(token.PIPE) {
		return first
	}
	union := &ast.UnionTypeNode{Token: tok, Types: []ast.TypeExpression{first}}
	for p.peekTokenIs(token.PIPE) {
		p.nextToken()
		p.nextToken()
		union.Types = append(union.Types, p.parseIntersectionType())
	}
	return union
}

func (p *Parser) parseIntersectionType() ast.TypeExpression {
	tok := p.curToken
	if p.curTokenIs(token.AMP) {
		p.nextToken()
	}
	first := p.parsePostfixType()
	if !p.peekTokenIs(token.AMP) {
		return first
	}
	inter := &ast.IntersectionTypeNode{Token: tok, Types: []ast.TypeExpression{first}}
	for p.peekTokenIs(token.AMP) {
		p.nextToken()
		p.nextToken()
		inter.Types = append(inter.Types, p.parsePostfixType())
	}
	return inter
}

// parsePostfixType handles the `T[]` array-type suffix (repeatable:
// `T[][]`) wrapped around a primary type.
func (p *Parser) parsePostfixType() ast.TypeExpression {
	base := p.parsePrimaryType()
	for p.peekTokenIs(token.LBRACKET) {
		tok := p.peekToken
		p.nextToken()
		if p.peekTokenIs(token.RBRACKET) {
			p.nextToken()
			base = &ast.ArrayTypeNode{Token: tok, ElementType: base}
			continue
		}
		// indexed access type `T[K]`
		p.nextToken()
		idx := p.parseTypeExpression()
		p.expectPeek(token.RBRACKET)
		base = &ast.IndexedAccessTypeNode{Token: tok, Object: base, IndexType: idx}
	}
	return base
}

func (p *Parser) parsePrimaryType() ast.TypeExpression {
	tok := p.curToken
	switch tok.Type {
	case token.VOID, token.NULL, token.UNDEFINED:
		p.curToken.Literal = keywordTypeNames[tok.Type]
		return &ast.KeywordTypeNode{Token: tok, Name: keywordTypeNames[tok.Type]}
	case token.IDENT:
		switch tok.Literal {
		case "string", "number", "boolean", "bigint", "symbol", "any", "unknown", "never", "object":
			return &ast.KeywordTypeNode{Token: tok, Name: tok.Literal}
		}
		return p.parseTypeReference()
	case token.STRING:
		return &ast.LiteralTypeNode{Token: tok, Value: &ast.StringLiteral{Token: tok, Value: tok.Literal}}
	case token.NUMBER:
		num := p.parseNumericLiteral()
		return &ast.LiteralTypeNode{Token: tok, Value: num}
	case token.BIGINT:
		return &ast.LiteralTypeNode{Token: tok, Value: &ast.BigIntLiteral{Token: tok, Value: tok.Literal}}
	case token.TRUE, token.FALSE:
		return &ast.LiteralTypeNode{Token: tok, Value: &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}}
	case token.MINUS:
		// negative numeric literal type: `-1`
		p.nextToken()
		num := p.parseNumericLiteral().(*ast.NumericLiteral)
		num.Value = -num.Value
		return &ast.LiteralTypeNode{Token: tok, Value: num}
	case token.LPAREN:
		return p.parseParenOrFunctionType()
	case token.LBRACKET:
		return p.parseTupleType()
	case token.LBRACE:
		return p.parseObjectOrMappedType()
	case token.KEYOF:
		p.nextToken()
		return &ast.KeyofTypeNode{Token: tok, Operand: p.parsePostfixType()}
	case token.TYPEOF:
		p.nextToken()
		expr := p.parseExpression(MEMBER)
		return &ast.TypeofTypeNode{Token: tok, Expression: expr}
	default:
		p.errorf(tok.Pos, ErrExpectedType, "expected a type, got %v (%q)", tok.Type, tok.Literal)
		return &ast.KeywordTypeNode{Token: tok, Name: "any"}
	}
}

func (p *Parser) parseTypeReference() ast.TypeExpression {
	tok := p.curToken
	name := p.curToken.Literal
	for p.peekTokenIs(token.DOT) {
		p.nextToken()
		p.expectPeek(token.IDENT)
		name += "." + p.curToken.Literal
	}
	ref := &ast.TypeReference{Token: tok, Name: name}
	if p.peekTokenIs(token.LT) {
		p.nextToken()
		ref.TypeArgs = p.parseTypeArgumentList()
	}
	return ref
}

func (p *Parser) parseTypeArgumentList() []ast.TypeExpression {
	var args []ast.TypeExpression
	p.nextToken()
	args = append(args, p.parseTypeExpression())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseTypeExpression())
	}
	p.expectPeek(token.GT)
	return args
}

// parseParenOrFunctionType disambiguates `(T)` grouping from
// `(a: A, b: B) => R` function-type syntax by checking whether the
// parenthesized list is followed by `=>`.
func (p *Parser) parseParenOrFunctionType() ast.TypeExpression {
	tok := p.curToken
	savedCur, savedPeek := p.curToken, p.peekToken
	savedErrLen := len(p.errors)
	savedLex := *p.l

	if params, ok := p.tryParseFunctionTypeParams(); ok {
		if p.expectPeek(token.ARROW) {
			p.nextToken()
			ret := p.parseTypeExpression()
			return &ast.FunctionTypeNode{Token: tok, Params: params, ReturnType: ret}
		}
	}
	p.curToken, p.peekToken = savedCur, savedPeek
	*p.l = savedLex
	p.errors = p.errors[:savedErrLen]
	p.nextToken()
	inner := p.parseTypeExpression()
	p.expectPeek(token.RPAREN)
	return &ast.ParenthesizedTypeNode{Token: tok, Inner: inner}
}

func (p *Parser) tryParseFunctionTypeParams() ([]ast.FunctionTypeParam, bool) {
	if !p.curTokenIs(token.LPAREN) {
		return nil, false
	}
	var params []ast.FunctionTypeParam
	p.nextToken()
	for !p.curTokenIs(token.RPAREN) {
		fp := ast.FunctionTypeParam{}
		if p.curTokenIs(token.DOTDOTDOT) {
			fp.Rest = true
			p.nextToken()
		}
		if !p.curTokenIs(token.IDENT) {
			return nil, false
		}
		fp.Name = p.curToken.Literal
		if p.peekTokenIs(token.QUESTION) {
			p.nextToken()
			fp.Optional = true
		}
		if !p.expectPeek(token.COLON) {
			return nil, false
		}
		p.nextToken()
		fp.Type = p.parseTypeExpression()
		params = append(params, fp)
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

func (p *Parser) parseTupleType() ast.TypeExpression {
	tok := p.curToken
	tuple := &ast.TupleTypeNode{Token: tok}
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return tuple
	}
	p.nextToken()
	for {
		el := ast.TupleElement{}
		if p.curTokenIs(token.DOTDOTDOT) {
			el.Rest = true
			p.nextToken()
		}
		el.Type = p.parseTypeExpression()
		if p.peekTokenIs(token.QUESTION) {
			p.nextToken()
			el.Optional = true
		}
		tuple.Elements = append(tuple.Elements, el)
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
	return tuple
}

// parseObjectOrMappedType disambiguates `{ [K in Keys]: V }` mapped
// types from plain object type literals.
func (p *Parser) parseObjectOrMappedType() ast.TypeExpression {
	tok := p.curToken
	if p.peekTokenIs(token.LBRACKET) {
		savedCur, savedPeek := p.curToken, p.peekToken
		savedErrLen := len(p.errors)
		savedLex := *p.l
		if mapped, ok := p.tryParseMappedType(); ok {
			return mapped
		}
		p.curToken, p.peekToken = savedCur, savedPeek
		*p.l = savedLex
		p.errors = p.errors[:savedErrLen]
	}
	return p.parseObjectTypeNode(tok)
}

func (p *Parser) tryParseMappedType() (ast.TypeExpression, bool) {
	tok := p.curToken
	p.nextToken() // consume '{'
	if !p.curTokenIs(token.LBRACKET) {
		return nil, false
	}
	p.nextToken()
	if !p.curTokenIs(token.IDENT) {
		return nil, false
	}
	paramName := p.curToken.Literal
	if !p.expectPeek(token.IN) {
		return nil, false
	}
	p.nextToken()
	constraint := p.parseTypeExpression()
	if !p.expectPeek(token.RBRACKET) {
		return nil, false
	}
	if !p.expectPeek(token.COLON) {
		return nil, false
	}
	p.nextToken()
	valueType := p.parseTypeExpression()
	if !p.expectPeek(token.RBRACE) {
		return nil, false
	}
	return &ast.MappedTypeNode{Token: tok, ParamName: paramName, Constraint: constraint, ValueType: valueType}, true
}

func (p *Parser) parseObjectTypeNode(tok token.Token) ast.TypeExpression {
	obj := &ast.ObjectTypeNode{Token: tok}
	p.nextToken() // consume '{'
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
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
			obj.IndexSignatures = append(obj.IndexSignatures, ast.IndexSignature{
				Token: tok, KeyName: keyName, KeyType: keyType, ValueType: valType,
			})
		} else if p.curTokenIs(token.LPAREN) {
			params, _ := p.tryParseFunctionTypeParams()
			p.expectPeek(token.COLON)
			p.nextToken()
			ret := p.parseTypeExpression()
			obj.CallSignatures = append(obj.CallSignatures, ast.CallSignature{Token: tok, Params: params, ReturnType: ret})
		} else {
			name := p.curToken.Literal
			optional := false
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
					ret = p.parseTypeExpression()
				}
				obj.Methods = append(obj.Methods, ast.MethodSignature{Token: tok, Name: name, Params: params, ReturnType: ret, Optional: optional})
			} else {
				p.expectPeek(token.COLON)
				p.nextToken()
				propType := p.parseTypeExpression()
				obj.Properties = append(obj.Properties, ast.PropertySignature{Token: tok, Name: name, Type: propType, Optional: optional})
			}
		}
		if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
		p.nextToken()
	}
	return obj
}

// tryParseFunctionTypeParamsAtPeek parses a `(...)` parameter list
// whose LPAREN is the peek token, advancing through it.
func (p *Parser) tryParseFunctionTypeParamsAtPeek() ([]ast.FunctionTypeParam, bool) {
	p.nextToken()
	return p.tryParseFunctionTypeParams()
}

func (p *Parser) parseTypeParameterList() []*ast.TypeParameterNode {
	var params []*ast.TypeParameterNode
	if !p.peekTokenIs(token.LT) {
		return params
	}
	p.nextToken() // at '<'
	p.nextToken()
	for {
		tp := &ast.TypeParameterNode{Token: p.curToken, Name: p.curToken.Literal}
		if p.peekTokenIs(token.EXTENDS) {
			p.nextToken()
			p.nextToken()
			tp.Constraint = p.parseTypeExpression()
		}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			tp.Default = p.parseTypeExpression()
		}
		params = append(params, tp)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.GT)
	return params
}
