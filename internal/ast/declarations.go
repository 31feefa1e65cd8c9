package ast

import (
	"strings"

	"github.com/cwbudde/go-tscheck/internal/token"
)

// VariableDeclarator is one `name: T = init` binding within a
// VariableDeclaration. Name may itself be a destructuring pattern,
// represented by Pattern when non-nil (Name is then "").
type VariableDeclarator struct {
	Name        string
	Pattern     Pattern // non-nil for destructuring bindings
	TypeAnn     TypeExpression
	Initializer Expression
	Definite    bool // `name!: T`
}

// Pattern is a destructuring binding target: array or object pattern.
type Pattern interface {
	Node
	patternNode()
}

// ArrayPattern is `[a, b, ...rest]` in a binding position.
type ArrayPattern struct {
	Token    token.Token
	Elements []*PatternElement // nil entries represent elision
}

func (p *ArrayPattern) patternNode()        {}
func (p *ArrayPattern) statementNode()      {}
func (p *ArrayPattern) expressionNode()     {}
func (p *ArrayPattern) TokenLiteral() string { return p.Token.Literal }
func (p *ArrayPattern) Pos() token.Position  { return p.Token.Pos }
func (p *ArrayPattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		if e == nil {
			continue
		}
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PatternElement is one element of an ArrayPattern or property of an
// ObjectPattern.
type PatternElement struct {
	Key      string // property key for object patterns; "" for array patterns
	Computed bool
	Target   Node // *Identifier, *ArrayPattern, or *ObjectPattern
	Default  Expression
	Rest     bool
}

func (e *PatternElement) String() string {
	s := e.Target.String()
	if e.Rest {
		s = "..." + s
	}
	if e.Default != nil {
		s += " = " + e.Default.String()
	}
	return s
}

// ObjectPattern is `{ a, b: c, ...rest }` in a binding position.
type ObjectPattern struct {
	Token    token.Token
	Elements []*PatternElement
}

func (p *ObjectPattern) patternNode()        {}
func (p *ObjectPattern) statementNode()      {}
func (p *ObjectPattern) expressionNode()     {}
func (p *ObjectPattern) TokenLiteral() string { return p.Token.Literal }
func (p *ObjectPattern) Pos() token.Position  { return p.Token.Pos }
func (p *ObjectPattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// VariableDeclaration is `var|let|const decl, decl, ...;`.
type VariableDeclaration struct {
	Token        token.Token
	Kind         string // "var", "let", "const"
	Declarations []*VariableDeclarator
}

func (d *VariableDeclaration) statementNode()      {}
func (d *VariableDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *VariableDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *VariableDeclaration) String() string {
	parts := make([]string, len(d.Declarations))
	for i, decl := range d.Declarations {
		name := decl.Name
		if decl.Pattern != nil {
			name = decl.Pattern.String()
		}
		if decl.Initializer != nil {
			parts[i] = name + " = " + decl.Initializer.String()
		} else {
			parts[i] = name
		}
	}
	return d.Kind + " " + strings.Join(parts, ", ") + ";"
}

// FunctionDeclaration is `function name<T>(params): R { body }`.
type FunctionDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []*TypeParameterNode
	Params     []*Parameter
	ReturnType TypeExpression
	Body       *BlockStatement // nil for an ambient/overload-signature-only declaration
	Async      bool
	Generator  bool
}

func (d *FunctionDeclaration) statementNode()      {}
func (d *FunctionDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *FunctionDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *FunctionDeclaration) String() string       { return "function " + d.Name + "(...)" }

// TypeAliasDeclaration is `type Name<T> = T;`.
type TypeAliasDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []*TypeParameterNode
	Value      TypeExpression
}

func (d *TypeAliasDeclaration) statementNode()      {}
func (d *TypeAliasDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *TypeAliasDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *TypeAliasDeclaration) String() string {
	return "type " + d.Name + " = " + d.Value.String() + ";"
}

// EnumMember is one `Name = init` or `Name` entry of an EnumDeclaration.
type EnumMember struct {
	Name        string
	Initializer Expression // nil for an auto-numbered numeric member
}

// EnumDeclaration is `const? enum Name { members }`.
type EnumDeclaration struct {
	Token   token.Token
	Name    string
	Const   bool
	Members []EnumMember
}

func (d *EnumDeclaration) statementNode()      {}
func (d *EnumDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *EnumDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *EnumDeclaration) String() string {
	kw := "enum"
	if d.Const {
		kw = "const enum"
	}
	return kw + " " + d.Name
}

// NamespaceDeclaration is `namespace Name { body }` (or the legacy
// `module Name { body }` spelling).
type NamespaceDeclaration struct {
	Token      token.Token
	Name       string
	Body       []Statement
	LegacyKeyword bool // true if spelled with `module` rather than `namespace`
}

func (d *NamespaceDeclaration) statementNode()      {}
func (d *NamespaceDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *NamespaceDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *NamespaceDeclaration) String() string       { return "namespace " + d.Name }
