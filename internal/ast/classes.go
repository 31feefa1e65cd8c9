package ast

import (
	"strings"

	"github.com/cwbudde/go-tscheck/internal/token"
)

// ClassMember is any member of a ClassDeclaration body.
type ClassMember interface {
	Node
	classMemberNode()
}

// FieldDeclaration is a class property, with or without an initializer.
type FieldDeclaration struct {
	Token       token.Token
	Name        string
	Computed    bool
	TypeAnn     TypeExpression
	Initializer Expression
	Modifier    string // "", "public", "private", "protected"
	Static      bool
	Readonly    bool
	Abstract    bool
	Optional    bool
	Definite    bool // `name!: T`
	Decorators  []*Decorator
}

func (m *FieldDeclaration) classMemberNode()     {}
func (m *FieldDeclaration) TokenLiteral() string { return m.Token.Literal }
func (m *FieldDeclaration) Pos() token.Position  { return m.Token.Pos }
func (m *FieldDeclaration) String() string {
	s := m.Name
	if m.TypeAnn != nil {
		s += ": " + m.TypeAnn.String()
	}
	return s
}

// MethodDeclaration covers ordinary methods and constructors (Name ==
// "constructor").
type MethodDeclaration struct {
	Token      token.Token
	Name       string
	Computed   bool
	TypeParams []*TypeParameterNode
	Params     []*Parameter
	ReturnType TypeExpression
	Body       *BlockStatement // nil for an abstract or interface method
	Modifier   string
	Static     bool
	Abstract   bool
	Override   bool
	Async      bool
	Generator  bool
	Decorators []*Decorator
}

func (m *MethodDeclaration) classMemberNode()     {}
func (m *MethodDeclaration) TokenLiteral() string { return m.Token.Literal }
func (m *MethodDeclaration) Pos() token.Position  { return m.Token.Pos }
func (m *MethodDeclaration) String() string       { return m.Name + "(...)" }

// AccessorDeclaration is a `get`/`set` class member.
type AccessorDeclaration struct {
	Token      token.Token
	Name       string
	Kind       string // "get" or "set"
	Params     []*Parameter
	ReturnType TypeExpression
	Body       *BlockStatement
	Modifier   string
	Static     bool
	Abstract   bool
	Decorators []*Decorator
}

func (m *AccessorDeclaration) classMemberNode()     {}
func (m *AccessorDeclaration) TokenLiteral() string { return m.Token.Literal }
func (m *AccessorDeclaration) Pos() token.Position  { return m.Token.Pos }
func (m *AccessorDeclaration) String() string       { return m.Kind + " " + m.Name + "(...)" }

// AutoAccessorDeclaration is `accessor name: T = init`.
type AutoAccessorDeclaration struct {
	Token       token.Token
	Name        string
	TypeAnn     TypeExpression
	Initializer Expression
	Modifier    string
	Static      bool
	Decorators  []*Decorator
}

func (m *AutoAccessorDeclaration) classMemberNode()     {}
func (m *AutoAccessorDeclaration) TokenLiteral() string { return m.Token.Literal }
func (m *AutoAccessorDeclaration) Pos() token.Position  { return m.Token.Pos }
func (m *AutoAccessorDeclaration) String() string       { return "accessor " + m.Name }

// StaticBlock is a `static { ... }` class member.
type StaticBlock struct {
	Token token.Token
	Body  *BlockStatement
}

func (m *StaticBlock) classMemberNode()     {}
func (m *StaticBlock) TokenLiteral() string { return m.Token.Literal }
func (m *StaticBlock) Pos() token.Position  { return m.Token.Pos }
func (m *StaticBlock) String() string       { return "static { ... }" }

// Decorator is `@expr` attached to a class or class member. Parameters
// carry no decorators in this AST, and the checker does not report
// diag.DecoratorMisuse for any decorator placement.
type Decorator struct {
	Token      token.Token
	Expression Expression
}

func (d *Decorator) TokenLiteral() string { return d.Token.Literal }
func (d *Decorator) Pos() token.Position  { return d.Token.Pos }
func (d *Decorator) String() string       { return "@" + d.Expression.String() }

// HeritageClause is the `extends`/`implements` clause of a class or
// interface.
type HeritageClause struct {
	Kind  string // "extends" or "implements"
	Types []*TypeReference
}

// ClassDeclaration is a class declaration or class expression's shape.
type ClassDeclaration struct {
	Token      token.Token
	Name       string // "" for an anonymous class expression
	TypeParams []*TypeParameterNode
	Extends    *TypeReference // nil if none
	Implements []*TypeReference
	Members    []ClassMember
	Abstract   bool
	Decorators []*Decorator
}

func (d *ClassDeclaration) statementNode()      {}
func (d *ClassDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *ClassDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *ClassDeclaration) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(d.Name)
	if d.Extends != nil {
		sb.WriteString(" extends ")
		sb.WriteString(d.Extends.String())
	}
	return sb.String()
}

// ClassExpression wraps a ClassDeclaration for use as a value
// expression, e.g. `const C = class Base { ... }`.
type ClassExpression struct {
	Token token.Token
	Class *ClassDeclaration
}

func (e *ClassExpression) expressionNode()      {}
func (e *ClassExpression) TokenLiteral() string { return e.Token.Literal }
func (e *ClassExpression) Pos() token.Position  { return e.Token.Pos }
func (e *ClassExpression) String() string       { return e.Class.String() }

// InterfaceMember is one member of an InterfaceDeclaration body; it
// reuses the same signature node shapes as ObjectTypeNode.
type InterfaceMember struct {
	Property  *PropertySignature
	Method    *MethodSignature
	Index     *IndexSignature
	Call      *CallSignature
	Construct *ConstructSignature
}

// InterfaceDeclaration is `interface Name<T> extends A, B { ... }`.
type InterfaceDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []*TypeParameterNode
	Extends    []*TypeReference
	Members    []InterfaceMember
}

func (d *InterfaceDeclaration) statementNode()      {}
func (d *InterfaceDeclaration) TokenLiteral() string { return d.Token.Literal }
func (d *InterfaceDeclaration) Pos() token.Position  { return d.Token.Pos }
func (d *InterfaceDeclaration) String() string       { return "interface " + d.Name }
