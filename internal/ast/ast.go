// Package ast defines the abstract syntax tree node types produced by
// internal/parser and consumed by internal/checker. Node shapes mirror
// spec.md §6's expression/statement kind catalogue.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/go-tscheck/internal/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of a single module's AST.
type Program struct {
	Path       string // module path, set by the resolver/driver, not the parser
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Identifier is a bare name reference, used both as an expression and
// (embedded) as the name of declarations.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) String() string         { return i.Name }
func (i *Identifier) Pos() token.Position    { return i.Token.Pos }

// ThisExpression is `this`.
type ThisExpression struct{ Token token.Token }

func (e *ThisExpression) expressionNode()      {}
func (e *ThisExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ThisExpression) String() string       { return "this" }
func (e *ThisExpression) Pos() token.Position  { return e.Token.Pos }

// SuperExpression is `super`.
type SuperExpression struct{ Token token.Token }

func (e *SuperExpression) expressionNode()      {}
func (e *SuperExpression) TokenLiteral() string { return e.Token.Literal }
func (e *SuperExpression) String() string       { return "super" }
func (e *SuperExpression) Pos() token.Position  { return e.Token.Pos }

// ImportMetaExpression is `import.meta`.
type ImportMetaExpression struct{ Token token.Token }

func (e *ImportMetaExpression) expressionNode()      {}
func (e *ImportMetaExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ImportMetaExpression) String() string       { return "import.meta" }
func (e *ImportMetaExpression) Pos() token.Position  { return e.Token.Pos }

// ---- literals ----

type NumericLiteral struct {
	Token token.Token
	Value float64
}

func (l *NumericLiteral) expressionNode()      {}
func (l *NumericLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *NumericLiteral) String() string       { return l.Token.Literal }
func (l *NumericLiteral) Pos() token.Position  { return l.Token.Pos }

type BigIntLiteral struct {
	Token token.Token
	Value string // decimal digits, no suffix
}

func (l *BigIntLiteral) expressionNode()      {}
func (l *BigIntLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *BigIntLiteral) String() string       { return l.Value + "n" }
func (l *BigIntLiteral) Pos() token.Position  { return l.Token.Pos }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (l *StringLiteral) expressionNode()      {}
func (l *StringLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *StringLiteral) String() string       { return `"` + l.Value + `"` }
func (l *StringLiteral) Pos() token.Position  { return l.Token.Pos }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (l *BooleanLiteral) expressionNode()      {}
func (l *BooleanLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *BooleanLiteral) String() string       { return l.Token.Literal }
func (l *BooleanLiteral) Pos() token.Position  { return l.Token.Pos }

type NullLiteral struct{ Token token.Token }

func (l *NullLiteral) expressionNode()      {}
func (l *NullLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *NullLiteral) String() string       { return "null" }
func (l *NullLiteral) Pos() token.Position  { return l.Token.Pos }

type UndefinedLiteral struct{ Token token.Token }

func (l *UndefinedLiteral) expressionNode()      {}
func (l *UndefinedLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *UndefinedLiteral) String() string       { return "undefined" }
func (l *UndefinedLiteral) Pos() token.Position  { return l.Token.Pos }

// TemplateLiteral is a `...${...}...` literal: len(Quasis) == len(Expressions)+1.
type TemplateLiteral struct {
	Token       token.Token
	Quasis      []string
	Expressions []Expression
}

func (l *TemplateLiteral) expressionNode()      {}
func (l *TemplateLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *TemplateLiteral) String() string {
	var sb strings.Builder
	sb.WriteString("`")
	for i, q := range l.Quasis {
		sb.WriteString(q)
		if i < len(l.Expressions) {
			sb.WriteString("${")
			sb.WriteString(l.Expressions[i].String())
			sb.WriteString("}")
		}
	}
	sb.WriteString("`")
	return sb.String()
}
func (l *TemplateLiteral) Pos() token.Position { return l.Token.Pos }

// TaggedTemplateExpression is tag`...`.
type TaggedTemplateExpression struct {
	Token    token.Token
	Tag      Expression
	Template *TemplateLiteral
}

func (e *TaggedTemplateExpression) expressionNode()      {}
func (e *TaggedTemplateExpression) TokenLiteral() string { return e.Token.Literal }
func (e *TaggedTemplateExpression) String() string       { return e.Tag.String() + e.Template.String() }
func (e *TaggedTemplateExpression) Pos() token.Position  { return e.Token.Pos }
