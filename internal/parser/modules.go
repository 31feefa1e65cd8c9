package parser

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/token"
)

func (p *Parser) parseImportDeclaration() ast.Statement {
	tok := p.curToken
	decl := &ast.ImportDeclaration{Token: tok}

	if p.peekTokenIs(token.TYPE) {
		// `import type ...` — only when not immediately the binding name "type"
		save := p.peekToken
		p.nextToken()
		if p.peekTokenIs(token.FROM) || p.peekTokenIs(token.IDENT) || p.peekTokenIs(token.LBRACE) || p.peekTokenIs(token.STAR) {
			decl.TypeOnly = true
		} else {
			// "type" was actually the default import's binding name
			p.curToken = save
		}
	}

	if p.peekTokenIs(token.STRING) {
		p.nextToken()
		decl.Source = p.curToken.Literal
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return decl
	}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		first := p.curToken.Literal
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			if p.curTokenIs(token.REQUIRE) {
				p.expectPeek(token.LPAREN)
				p.expectPeek(token.STRING)
				target := p.curToken.Literal
				p.expectPeek(token.RPAREN)
				if p.peekTokenIs(token.SEMICOLON) {
					p.nextToken()
				}
				decl.RequireEquals = true
				decl.EqualsBinding = first
				decl.RequireTarget = target
				return decl
			}
		}
		decl.Default = first
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
		} else {
			p.parseImportSource(decl)
			if p.peekTokenIs(token.SEMICOLON) {
				p.nextToken()
			}
			return decl
		}
	}

	if p.curTokenIs(token.STAR) {
		p.expectPeek(token.AS)
		p.expectPeek(token.IDENT)
		decl.NamespaceAlias = p.curToken.Literal
	} else if p.curTokenIs(token.LBRACE) {
		decl.Named = p.parseNamedImportSpecifiers()
	}

	p.parseImportSource(decl)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return decl
}

func (p *Parser) parseImportSource(decl *ast.ImportDeclaration) {
	p.expectPeek(token.FROM)
	p.expectPeek(token.STRING)
	decl.Source = p.curToken.Literal
}

func (p *Parser) parseNamedImportSpecifiers() []ast.ImportSpecifier {
	var specs []ast.ImportSpecifier
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		s := ast.ImportSpecifier{}
		if p.curTokenIs(token.TYPE) && !p.peekTokenIs(token.COMMA) && !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.AS) {
			s.TypeOnly = true
			p.nextToken()
		}
		s.Imported = p.curToken.Literal
		s.Local = s.Imported
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			p.nextToken()
			s.Local = p.curToken.Literal
		}
		specs = append(specs, s)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RBRACE)
	return specs
}

func (p *Parser) parseExportDeclaration() ast.Statement {
	tok := p.curToken
	decl := &ast.ExportDeclaration{Token: tok}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		decl.IsExportEquals = true
		decl.ExportEqualsVal = p.parseExpression(LOWEST)
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return decl
	}

	if p.peekTokenIs(token.DEFAULT) {
		p.nextToken()
		p.nextToken()
		switch p.curToken.Type {
		case token.FUNCTION:
			decl.Declaration = p.parseFunctionDeclaration()
		case token.CLASS:
			decl.Declaration = p.parseClassDeclaration()
		default:
			decl.Default = p.parseExpression(ASSIGN)
			if p.peekTokenIs(token.SEMICOLON) {
				p.nextToken()
			}
		}
		return decl
	}

	if p.peekTokenIs(token.STAR) {
		p.nextToken()
		decl.Star = true
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			p.nextToken()
			decl.StarAlias = p.curToken.Literal
		}
		p.expectPeek(token.FROM)
		p.expectPeek(token.STRING)
		decl.Source = p.curToken.Literal
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return decl
	}

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		decl.Named = p.parseNamedExportSpecifiers()
		if p.peekTokenIs(token.FROM) {
			p.nextToken()
			p.expectPeek(token.STRING)
			decl.Source = p.curToken.Literal
		}
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return decl
	}

	p.nextToken()
	decl.Declaration = p.parseStatement()
	return decl
}

func (p *Parser) parseNamedExportSpecifiers() []ast.ExportSpecifier {
	var specs []ast.ExportSpecifier
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		s := ast.ExportSpecifier{}
		s.Local = p.curToken.Literal
		s.Exported = s.Local
		if p.peekTokenIs(token.AS) {
			p.nextToken()
			p.nextToken()
			s.Exported = p.curToken.Literal
		}
		specs = append(specs, s)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expectPeek(token.RBRACE)
	return specs
}
