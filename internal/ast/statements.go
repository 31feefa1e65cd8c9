package ast

import (
	"strings"

	"github.com/cwbudde/go-tscheck/internal/token"
)

// BlockStatement is `{ statements }`, also used as a function body.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (s *BlockStatement) statementNode()      {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStatement) Pos() token.Position  { return s.Token.Pos }
func (s *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range s.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) statementNode()      {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ExpressionStatement) String() string {
	if s.Expression == nil {
		return ""
	}
	return s.Expression.String()
}

// EmptyStatement is a bare `;`.
type EmptyStatement struct{ Token token.Token }

func (s *EmptyStatement) statementNode()      {}
func (s *EmptyStatement) TokenLiteral() string { return s.Token.Literal }
func (s *EmptyStatement) Pos() token.Position  { return s.Token.Pos }
func (s *EmptyStatement) String() string       { return ";" }

// IfStatement is `if (test) consequent else alternate`.
type IfStatement struct {
	Token       token.Token
	Test        Expression
	Consequent  Statement
	Alternate   Statement // nil if no else clause
}

func (s *IfStatement) statementNode()      {}
func (s *IfStatement) TokenLiteral() string { return s.Token.Literal }
func (s *IfStatement) Pos() token.Position  { return s.Token.Pos }
func (s *IfStatement) String() string {
	out := "if (" + s.Test.String() + ") " + s.Consequent.String()
	if s.Alternate != nil {
		out += " else " + s.Alternate.String()
	}
	return out
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Token token.Token
	Test  Expression
	Body  Statement
	Label string // "" if this loop has no enclosing label
}

func (s *WhileStatement) statementNode()      {}
func (s *WhileStatement) TokenLiteral() string { return s.Token.Literal }
func (s *WhileStatement) Pos() token.Position  { return s.Token.Pos }
func (s *WhileStatement) String() string       { return "while (" + s.Test.String() + ") " + s.Body.String() }

// DoWhileStatement is `do body while (test);`.
type DoWhileStatement struct {
	Token token.Token
	Body  Statement
	Test  Expression
	Label string
}

func (s *DoWhileStatement) statementNode()      {}
func (s *DoWhileStatement) TokenLiteral() string { return s.Token.Literal }
func (s *DoWhileStatement) Pos() token.Position  { return s.Token.Pos }
func (s *DoWhileStatement) String() string {
	return "do " + s.Body.String() + " while (" + s.Test.String() + ")"
}

// ForStatement is the classic three-clause `for (init; test; update) body`.
type ForStatement struct {
	Token  token.Token
	Init   Node // *VariableDeclaration or Expression or nil
	Test   Expression // nil if omitted
	Update Expression // nil if omitted
	Body   Statement
	Label  string
}

func (s *ForStatement) statementNode()      {}
func (s *ForStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ForStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ForStatement) String() string       { return "for (...) " + s.Body.String() }

// ForOfStatement is `for (decl of expr) body`.
type ForOfStatement struct {
	Token   token.Token
	Left    Node // *VariableDeclaration (single declarator) or Expression (assignment target)
	Right   Expression
	Body    Statement
	Await   bool
	Label   string
}

func (s *ForOfStatement) statementNode()      {}
func (s *ForOfStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ForOfStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ForOfStatement) String() string {
	kw := "for"
	if s.Await {
		kw = "for await"
	}
	return kw + " (... of " + s.Right.String() + ") " + s.Body.String()
}

// ForInStatement is `for (decl in expr) body`.
type ForInStatement struct {
	Token token.Token
	Left  Node
	Right Expression
	Body  Statement
	Label string
}

func (s *ForInStatement) statementNode()      {}
func (s *ForInStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ForInStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ForInStatement) String() string {
	return "for (... in " + s.Right.String() + ") " + s.Body.String()
}

// SwitchCase is one `case expr:` or `default:` arm of a SwitchStatement.
// Test is nil for the default arm.
type SwitchCase struct {
	Token      token.Token
	Test       Expression
	Consequent []Statement
}

// SwitchStatement is `switch (disc) { cases }`.
type SwitchStatement struct {
	Token      token.Token
	Discriminant Expression
	Cases      []SwitchCase
	Label      string
}

func (s *SwitchStatement) statementNode()      {}
func (s *SwitchStatement) TokenLiteral() string { return s.Token.Literal }
func (s *SwitchStatement) Pos() token.Position  { return s.Token.Pos }
func (s *SwitchStatement) String() string {
	return "switch (" + s.Discriminant.String() + ") { ... }"
}

// LabeledStatement is `label: stmt`.
type LabeledStatement struct {
	Token token.Token
	Label string
	Body  Statement
}

func (s *LabeledStatement) statementNode()      {}
func (s *LabeledStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LabeledStatement) Pos() token.Position  { return s.Token.Pos }
func (s *LabeledStatement) String() string       { return s.Label + ": " + s.Body.String() }

// ReturnStatement is `return expr;`.
type ReturnStatement struct {
	Token    token.Token
	Argument Expression // nil for a bare `return;`
}

func (s *ReturnStatement) statementNode()      {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ReturnStatement) String() string {
	if s.Argument == nil {
		return "return;"
	}
	return "return " + s.Argument.String() + ";"
}

// BreakStatement is `break;` or `break label;`.
type BreakStatement struct {
	Token token.Token
	Label string // "" if unlabeled
}

func (s *BreakStatement) statementNode()      {}
func (s *BreakStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BreakStatement) Pos() token.Position  { return s.Token.Pos }
func (s *BreakStatement) String() string {
	if s.Label == "" {
		return "break;"
	}
	return "break " + s.Label + ";"
}

// ContinueStatement is `continue;` or `continue label;`.
type ContinueStatement struct {
	Token token.Token
	Label string
}

func (s *ContinueStatement) statementNode()      {}
func (s *ContinueStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ContinueStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ContinueStatement) String() string {
	if s.Label == "" {
		return "continue;"
	}
	return "continue " + s.Label + ";"
}

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	Token    token.Token
	Argument Expression
}

func (s *ThrowStatement) statementNode()      {}
func (s *ThrowStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ThrowStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ThrowStatement) String() string       { return "throw " + s.Argument.String() + ";" }

// CatchClause is the `catch (param) body` part of a TryStatement.
type CatchClause struct {
	Token   token.Token
	Param   string         // "" if the catch binding was omitted
	TypeAnn TypeExpression // only `unknown`/`any` is legal here; kept for diagnostics
	Body    *BlockStatement
}

// TryStatement is `try block catch (e) handler finally fin`.
type TryStatement struct {
	Token     token.Token
	Block     *BlockStatement
	Handler   *CatchClause // nil if no catch
	Finalizer *BlockStatement // nil if no finally
}

func (s *TryStatement) statementNode()      {}
func (s *TryStatement) TokenLiteral() string { return s.Token.Literal }
func (s *TryStatement) Pos() token.Position  { return s.Token.Pos }
func (s *TryStatement) String() string       { return "try " + s.Block.String() }

// UsingStatement is `using name = expr;` / `await using name = expr;`
// (explicit resource management).
type UsingStatement struct {
	Token       token.Token
	Await       bool
	Name        string
	Initializer Expression
}

func (s *UsingStatement) statementNode()      {}
func (s *UsingStatement) TokenLiteral() string { return s.Token.Literal }
func (s *UsingStatement) Pos() token.Position  { return s.Token.Pos }
func (s *UsingStatement) String() string {
	kw := "using"
	if s.Await {
		kw = "await using"
	}
	return kw + " " + s.Name + " = " + s.Initializer.String() + ";"
}

// DirectiveStatement is a string-literal directive prologue entry,
// e.g. `"use strict";`.
type DirectiveStatement struct {
	Token     token.Token
	Directive string
}

func (s *DirectiveStatement) statementNode()      {}
func (s *DirectiveStatement) TokenLiteral() string { return s.Token.Literal }
func (s *DirectiveStatement) Pos() token.Position  { return s.Token.Pos }
func (s *DirectiveStatement) String() string       { return `"` + s.Directive + `";` }
