// Package parser implements a recursive-descent / Pratt parser that
// turns a token.Token stream into an *ast.Program. Coverage is scoped
// to the constructs internal/checker needs to exercise the narrowing,
// overload-resolution, generic-inference, abstract-class, excess-
// property, and bigint scenarios — not full TypeScript grammar.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/lexer"
	"github.com/cwbudde/go-tscheck/internal/token"
)

// Precedence levels for operators, lowest to highest.
const (
	_ int = iota
	LOWEST
	ASSIGN      // = += -= etc.
	CONDITIONAL // ?:
	COALESCE    // ??
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	BITWISE_OR  // |
	BITWISE_XOR // ^
	BITWISE_AND // &
	EQUALS      // == === != !==
	LESSGREATER // < > <= >= instanceof in
	SHIFT       // << >> >>>
	SUM         // + -
	PRODUCT     // * / %
	EXPONENT    // **
	PREFIX      // !x -x +x ~x typeof x await x
	POSTFIX     // x++ x--
	CALL        // f(x) f?.(x)
	MEMBER      // x.y x?.y x[y] new X(...)
)

var precedences = map[token.Kind]int{
	token.ASSIGN:         ASSIGN,
	token.PLUS_ASSIGN:    ASSIGN,
	token.MINUS_ASSIGN:   ASSIGN,
	token.STAR_ASSIGN:    ASSIGN,
	token.SLASH_ASSIGN:   ASSIGN,
	token.PERCENT_ASSIGN: ASSIGN,
	token.AND_AND_ASSIGN: ASSIGN,
	token.OR_OR_ASSIGN:   ASSIGN,
	token.QQ_ASSIGN:      ASSIGN,
	token.QUESTION:       CONDITIONAL,
	token.QUESTION_QUESTION: COALESCE,
	token.OR_OR:          LOGICAL_OR,
	token.AND_AND:        LOGICAL_AND,
	token.PIPE:           BITWISE_OR,
	token.CARET:          BITWISE_XOR,
	token.AMP:            BITWISE_AND,
	token.EQ:             EQUALS,
	token.NEQ:            EQUALS,
	token.STRICT_EQ:      EQUALS,
	token.STRICT_NEQ:     EQUALS,
	token.LT:             LESSGREATER,
	token.GT:             LESSGREATER,
	token.LE:             LESSGREATER,
	token.GE:             LESSGREATER,
	token.INSTANCEOF:     LESSGREATER,
	token.IN:             LESSGREATER,
	token.AS:             LESSGREATER,
	token.SATISFIES:      LESSGREATER,
	token.SHL:            SHIFT,
	token.SHR:            SHIFT,
	token.USHR:           SHIFT,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.STAR:           PRODUCT,
	token.SLASH:          PRODUCT,
	token.PERCENT:        PRODUCT,
	token.STAR_STAR:      EXPONENT,
	token.PLUS_PLUS:      POSTFIX,
	token.MINUS_MINUS:    POSTFIX,
	token.LPAREN:         CALL,
	token.QUESTION_DOT:   MEMBER,
	token.DOT:            MEMBER,
	token.LBRACKET:       MEMBER,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser converts a token stream into an *ast.Program.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*SyntaxError

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New builds a Parser ready to call Parse on the given source text.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.infixParseFns = make(map[token.Kind]infixParseFn)
	p.registerExpressionParsers()

	// prime curToken/peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error accumulated during parsing.
func (p *Parser) Errors() []*SyntaxError { return p.errors }

// Parse consumes the entire token stream and returns the resulting
// program. Parsing continues past a malformed statement (panic-mode
// recovery via synchronize) so a single typo doesn't hide every other
// diagnostic in the file.
func (p *Parser) Parse(path string) *ast.Program {
	prog := &ast.Program{Path: path}
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	return prog
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curToken.Type == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekToken.Type == k }

// expectPeek advances if the peek token matches k, else records an
// error and leaves the cursor in place.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}

func (p *Parser) peekError(k token.Kind) {
	msg := fmt.Sprintf("expected next token to be %v, got %v (%q) instead", k, p.peekToken.Type, p.peekToken.Literal)
	p.errors = append(p.errors, newSyntaxError(p.peekToken.Pos, msg, ErrUnexpectedToken))
}

func (p *Parser) errorf(pos token.Position, code, format string, args ...interface{}) {
	p.errors = append(p.errors, newSyntaxError(pos, fmt.Sprintf(format, args...), code))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// synchronize skips tokens until a likely statement boundary, so one
// malformed statement doesn't cascade into spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			return
		}
		switch p.peekToken.Type {
		case token.VAR, token.LET, token.CONST, token.FUNCTION, token.CLASS,
			token.INTERFACE, token.IF, token.FOR, token.WHILE, token.RETURN,
			token.EXPORT, token.IMPORT:
			return
		}
		p.nextToken()
	}
}
