package ast

import (
	"strings"

	"github.com/cwbudde/go-tscheck/internal/token"
)

// GroupingExpression is a parenthesized expression, kept distinct from
// its inner expression so the checker can tell a fresh object/array
// literal apart from one wrapped in parens (spec.md §4.3 excess-
// property check only fires on a syntactically fresh literal).
type GroupingExpression struct {
	Token token.Token
	Inner Expression
}

func (e *GroupingExpression) expressionNode()      {}
func (e *GroupingExpression) TokenLiteral() string { return e.Token.Literal }
func (e *GroupingExpression) String() string       { return "(" + e.Inner.String() + ")" }
func (e *GroupingExpression) Pos() token.Position  { return e.Token.Pos }

// BinaryExpression covers arithmetic, bitwise, relational and equality
// operators.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *BinaryExpression) expressionNode()      {}
func (e *BinaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}
func (e *BinaryExpression) Pos() token.Position { return e.Token.Pos }

// LogicalExpression covers &&, ||, ?? — kept separate from
// BinaryExpression because the checker must propagate narrowings
// through them (spec.md §4.2) rather than just compute a value type.
type LogicalExpression struct {
	Token    token.Token
	Left     Expression
	Operator string // "&&", "||", "??"
	Right    Expression
}

func (e *LogicalExpression) expressionNode()      {}
func (e *LogicalExpression) TokenLiteral() string { return e.Token.Literal }
func (e *LogicalExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}
func (e *LogicalExpression) Pos() token.Position { return e.Token.Pos }

// UnaryExpression covers prefix !, -, +, ~, typeof, void, delete and
// postfix/prefix ++/--.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Operand  Expression
	Prefix   bool
}

func (e *UnaryExpression) expressionNode()      {}
func (e *UnaryExpression) TokenLiteral() string { return e.Token.Literal }
func (e *UnaryExpression) String() string {
	if e.Prefix {
		return e.Operator + e.Operand.String()
	}
	return e.Operand.String() + e.Operator
}
func (e *UnaryExpression) Pos() token.Position { return e.Token.Pos }

// NonNullExpression is `expr!`.
type NonNullExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *NonNullExpression) expressionNode()      {}
func (e *NonNullExpression) TokenLiteral() string { return e.Token.Literal }
func (e *NonNullExpression) String() string       { return e.Operand.String() + "!" }
func (e *NonNullExpression) Pos() token.Position  { return e.Token.Pos }

// DeleteExpression is `delete expr`.
type DeleteExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *DeleteExpression) expressionNode()      {}
func (e *DeleteExpression) TokenLiteral() string { return e.Token.Literal }
func (e *DeleteExpression) String() string       { return "delete " + e.Operand.String() }
func (e *DeleteExpression) Pos() token.Position  { return e.Token.Pos }

// AwaitExpression is `await expr`.
type AwaitExpression struct {
	Token   token.Token
	Operand Expression
}

func (e *AwaitExpression) expressionNode()      {}
func (e *AwaitExpression) TokenLiteral() string { return e.Token.Literal }
func (e *AwaitExpression) String() string       { return "await " + e.Operand.String() }
func (e *AwaitExpression) Pos() token.Position  { return e.Token.Pos }

// YieldExpression is `yield expr` or `yield* expr`.
type YieldExpression struct {
	Token    token.Token
	Argument Expression // nil for a bare `yield`
	Delegate bool
}

func (e *YieldExpression) expressionNode()      {}
func (e *YieldExpression) TokenLiteral() string { return e.Token.Literal }
func (e *YieldExpression) String() string {
	star := ""
	if e.Delegate {
		star = "*"
	}
	if e.Argument == nil {
		return "yield" + star
	}
	return "yield" + star + " " + e.Argument.String()
}
func (e *YieldExpression) Pos() token.Position { return e.Token.Pos }

// ConditionalExpression is the ternary `cond ? then : else`.
type ConditionalExpression struct {
	Token       token.Token
	Test        Expression
	Consequent  Expression
	Alternate   Expression
}

func (e *ConditionalExpression) expressionNode()      {}
func (e *ConditionalExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ConditionalExpression) String() string {
	return "(" + e.Test.String() + " ? " + e.Consequent.String() + " : " + e.Alternate.String() + ")"
}
func (e *ConditionalExpression) Pos() token.Position { return e.Token.Pos }

// AssignmentExpression covers `=` and the compound forms.
type AssignmentExpression struct {
	Token    token.Token
	Target   Expression
	Operator string // "=", "+=", "&&=", etc.
	Value    Expression
}

func (e *AssignmentExpression) expressionNode()      {}
func (e *AssignmentExpression) TokenLiteral() string { return e.Token.Literal }
func (e *AssignmentExpression) String() string {
	return e.Target.String() + " " + e.Operator + " " + e.Value.String()
}
func (e *AssignmentExpression) Pos() token.Position { return e.Token.Pos }

// SequenceExpression is the comma operator.
type SequenceExpression struct {
	Token       token.Token
	Expressions []Expression
}

func (e *SequenceExpression) expressionNode()      {}
func (e *SequenceExpression) TokenLiteral() string { return e.Token.Literal }
func (e *SequenceExpression) String() string {
	parts := make([]string, len(e.Expressions))
	for i, x := range e.Expressions {
		parts[i] = x.String()
	}
	return strings.Join(parts, ", ")
}
func (e *SequenceExpression) Pos() token.Position { return e.Token.Pos }

// SpreadElement is `...expr`, valid in call arguments and array/object
// literals.
type SpreadElement struct {
	Token    token.Token
	Argument Expression
}

func (e *SpreadElement) expressionNode()      {}
func (e *SpreadElement) TokenLiteral() string { return e.Token.Literal }
func (e *SpreadElement) String() string       { return "..." + e.Argument.String() }
func (e *SpreadElement) Pos() token.Position  { return e.Token.Pos }

// CallExpression is `callee(args)` or `callee?.(args)` or, with
// TypeArguments set, `callee<T>(args)`.
type CallExpression struct {
	Token         token.Token
	Callee        Expression
	TypeArguments []TypeExpression
	Arguments     []Expression
	Optional      bool
}

func (e *CallExpression) expressionNode()      {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) String() string {
	parts := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		parts[i] = a.String()
	}
	op := "("
	if e.Optional {
		op = "?.("
	}
	return e.Callee.String() + op + strings.Join(parts, ", ") + ")"
}
func (e *CallExpression) Pos() token.Position { return e.Token.Pos }

// NewExpression is `new Callee(args)`.
type NewExpression struct {
	Token         token.Token
	Callee        Expression
	TypeArguments []TypeExpression
	Arguments     []Expression
}

func (e *NewExpression) expressionNode()      {}
func (e *NewExpression) TokenLiteral() string { return e.Token.Literal }
func (e *NewExpression) String() string {
	parts := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		parts[i] = a.String()
	}
	return "new " + e.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (e *NewExpression) Pos() token.Position { return e.Token.Pos }

// MemberExpression is `obj.prop`, `obj[expr]`, or the optional-chaining
// forms `obj?.prop` / `obj?.[expr]`.
type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property Expression // Identifier for `.prop`, arbitrary Expression for `[expr]`
	Computed bool
	Optional bool
}

func (e *MemberExpression) expressionNode()      {}
func (e *MemberExpression) TokenLiteral() string { return e.Token.Literal }
func (e *MemberExpression) String() string {
	if e.Computed {
		return e.Object.String() + "[" + e.Property.String() + "]"
	}
	dot := "."
	if e.Optional {
		dot = "?."
	}
	return e.Object.String() + dot + e.Property.String()
}
func (e *MemberExpression) Pos() token.Position { return e.Token.Pos }

// ArrayLiteral is `[a, b, ...c]`. A syntactically present array literal
// is always treated as fresh by the checker.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression // may contain *SpreadElement; elision represented as nil entries
}

func (e *ArrayLiteral) expressionNode()      {}
func (e *ArrayLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) String() string {
	parts := make([]string, len(e.Elements))
	for i, x := range e.Elements {
		if x == nil {
			continue
		}
		parts[i] = x.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *ArrayLiteral) Pos() token.Position { return e.Token.Pos }

// ObjectProperty is one `key: value`, shorthand `key`, method, or
// spread member of an ObjectLiteral.
type ObjectProperty struct {
	Key      Expression // Identifier, StringLiteral, NumericLiteral, or computed Expression
	Value    Expression // nil for a *SpreadElement stored directly as Key's owner below
	Computed bool
	Shorthand bool
	Spread   *SpreadElement // set instead of Key/Value for `...expr` members
}

// ObjectLiteral is `{ a: 1, b, ...rest }`.
type ObjectLiteral struct {
	Token      token.Token
	Properties []ObjectProperty
}

func (e *ObjectLiteral) expressionNode()      {}
func (e *ObjectLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ObjectLiteral) String() string {
	parts := make([]string, 0, len(e.Properties))
	for _, p := range e.Properties {
		if p.Spread != nil {
			parts = append(parts, p.Spread.String())
			continue
		}
		if p.Shorthand {
			parts = append(parts, p.Key.String())
			continue
		}
		parts = append(parts, p.Key.String()+": "+p.Value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (e *ObjectLiteral) Pos() token.Position { return e.Token.Pos }

// TypeAssertionExpression covers both `<T>expr` and `expr as T`.
type TypeAssertionExpression struct {
	Token      token.Token
	Expression Expression
	TargetType TypeExpression
	AngleBracketSyntax bool
}

func (e *TypeAssertionExpression) expressionNode()      {}
func (e *TypeAssertionExpression) TokenLiteral() string { return e.Token.Literal }
func (e *TypeAssertionExpression) String() string {
	if e.AngleBracketSyntax {
		return "<" + e.TargetType.String() + ">" + e.Expression.String()
	}
	return e.Expression.String() + " as " + e.TargetType.String()
}
func (e *TypeAssertionExpression) Pos() token.Position { return e.Token.Pos }

// SatisfiesExpression is `expr satisfies T`.
type SatisfiesExpression struct {
	Token      token.Token
	Expression Expression
	TargetType TypeExpression
}

func (e *SatisfiesExpression) expressionNode()      {}
func (e *SatisfiesExpression) TokenLiteral() string { return e.Token.Literal }
func (e *SatisfiesExpression) String() string {
	return e.Expression.String() + " satisfies " + e.TargetType.String()
}
func (e *SatisfiesExpression) Pos() token.Position { return e.Token.Pos }

// DynamicImportExpression is `import(specifier)`.
type DynamicImportExpression struct {
	Token  token.Token
	Source Expression
}

func (e *DynamicImportExpression) expressionNode()      {}
func (e *DynamicImportExpression) TokenLiteral() string { return e.Token.Literal }
func (e *DynamicImportExpression) String() string       { return "import(" + e.Source.String() + ")" }
func (e *DynamicImportExpression) Pos() token.Position  { return e.Token.Pos }

// Parameter is a function/method/arrow parameter.
type Parameter struct {
	Name         string
	TypeAnn      TypeExpression // nil if untyped (inferred contextually)
	Default      Expression
	Optional     bool
	Rest         bool
	Modifier     string // "", "public", "private", "protected", "readonly" — constructor parameter properties
}

// ArrowFunctionExpression is `(params): T => body` or `async (params) => body`.
type ArrowFunctionExpression struct {
	Token      token.Token
	TypeParams []*TypeParameterNode
	Params     []*Parameter
	ReturnType TypeExpression
	Body       Node // *BlockStatement or an Expression
	Async      bool
}

func (e *ArrowFunctionExpression) expressionNode()      {}
func (e *ArrowFunctionExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ArrowFunctionExpression) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.Name
	}
	return "(" + strings.Join(parts, ", ") + ") => " + e.Body.String()
}
func (e *ArrowFunctionExpression) Pos() token.Position { return e.Token.Pos }

// FunctionExpression is `function name?(params): T { body }` used as a value.
type FunctionExpression struct {
	Token      token.Token
	Name       string // "" for anonymous
	TypeParams []*TypeParameterNode
	Params     []*Parameter
	ReturnType TypeExpression
	Body       *BlockStatement
	Async      bool
	Generator  bool
}

func (e *FunctionExpression) expressionNode()      {}
func (e *FunctionExpression) TokenLiteral() string { return e.Token.Literal }
func (e *FunctionExpression) String() string        { return "function " + e.Name + "(...)" }
func (e *FunctionExpression) Pos() token.Position   { return e.Token.Pos }
