package ast

import (
	"strings"

	"github.com/cwbudde/go-tscheck/internal/token"
)

// TypeExpression is the syntactic counterpart of internal/types.TypeInfo:
// it is what the parser produces from a type annotation, before
// internal/checker resolves it against the current internal/typeenv.
type TypeExpression interface {
	Node
	typeExpressionNode()
}

// TypeParameterNode is one `<T extends U = D>` entry on a generic
// declaration.
type TypeParameterNode struct {
	Token      token.Token
	Name       string
	Constraint TypeExpression // nil if absent
	Default    TypeExpression // nil if absent
}

func (n *TypeParameterNode) TokenLiteral() string { return n.Token.Literal }
func (n *TypeParameterNode) Pos() token.Position  { return n.Token.Pos }
func (n *TypeParameterNode) String() string {
	s := n.Name
	if n.Constraint != nil {
		s += " extends " + n.Constraint.String()
	}
	if n.Default != nil {
		s += " = " + n.Default.String()
	}
	return s
}

// TypeReference is a named type, optionally with type arguments:
// `Identifier`, `Array<T>`, `A.B.C<T>`.
type TypeReference struct {
	Token     token.Token
	Name      string   // dotted qualified name joined with "."
	TypeArgs  []TypeExpression
}

func (t *TypeReference) typeExpressionNode()   {}
func (t *TypeReference) TokenLiteral() string  { return t.Token.Literal }
func (t *TypeReference) Pos() token.Position   { return t.Token.Pos }
func (t *TypeReference) String() string {
	if len(t.TypeArgs) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		parts[i] = a.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}

// LiteralTypeNode is a literal used as a type: `"a"`, `1`, `true`, a
// template literal type, or a bigint literal type.
type LiteralTypeNode struct {
	Token token.Token
	Value Expression // *StringLiteral, *NumericLiteral, *BooleanLiteral, *BigIntLiteral, *TemplateLiteral
}

func (t *LiteralTypeNode) typeExpressionNode()  {}
func (t *LiteralTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *LiteralTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *LiteralTypeNode) String() string       { return t.Value.String() }

// KeywordTypeNode covers the primitive keyword type names: string,
// number, boolean, bigint, symbol, any, unknown, never, void, object,
// undefined, null.
type KeywordTypeNode struct {
	Token token.Token
	Name  string
}

func (t *KeywordTypeNode) typeExpressionNode()  {}
func (t *KeywordTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *KeywordTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *KeywordTypeNode) String() string       { return t.Name }

// ArrayTypeNode is `T[]`.
type ArrayTypeNode struct {
	Token       token.Token
	ElementType TypeExpression
}

func (t *ArrayTypeNode) typeExpressionNode()  {}
func (t *ArrayTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *ArrayTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *ArrayTypeNode) String() string       { return t.ElementType.String() + "[]" }

// TupleElement is one member of a TupleTypeNode, possibly labeled,
// optional, or a rest element.
type TupleElement struct {
	Label    string // "" if unlabeled
	Type     TypeExpression
	Optional bool
	Rest     bool
}

// TupleTypeNode is `[A, B?, ...C[]]`.
type TupleTypeNode struct {
	Token    token.Token
	Elements []TupleElement
}

func (t *TupleTypeNode) typeExpressionNode()  {}
func (t *TupleTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *TupleTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *TupleTypeNode) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		s := e.Type.String()
		if e.Rest {
			s = "..." + s
		}
		if e.Optional {
			s += "?"
		}
		if e.Label != "" {
			s = e.Label + ": " + s
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// UnionTypeNode is `A | B | C`.
type UnionTypeNode struct {
	Token token.Token
	Types []TypeExpression
}

func (t *UnionTypeNode) typeExpressionNode()  {}
func (t *UnionTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *UnionTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *UnionTypeNode) String() string {
	parts := make([]string, len(t.Types))
	for i, x := range t.Types {
		parts[i] = x.String()
	}
	return strings.Join(parts, " | ")
}

// IntersectionTypeNode is `A & B & C`.
type IntersectionTypeNode struct {
	Token token.Token
	Types []TypeExpression
}

func (t *IntersectionTypeNode) typeExpressionNode()  {}
func (t *IntersectionTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *IntersectionTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *IntersectionTypeNode) String() string {
	parts := make([]string, len(t.Types))
	for i, x := range t.Types {
		parts[i] = x.String()
	}
	return strings.Join(parts, " & ")
}

// ParenthesizedTypeNode preserves explicit grouping, needed so the
// parser can distinguish `(A | B)[]` from `A | B[]`.
type ParenthesizedTypeNode struct {
	Token token.Token
	Inner TypeExpression
}

func (t *ParenthesizedTypeNode) typeExpressionNode()  {}
func (t *ParenthesizedTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *ParenthesizedTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *ParenthesizedTypeNode) String() string       { return "(" + t.Inner.String() + ")" }

// FunctionTypeParam is one parameter of a FunctionTypeNode.
type FunctionTypeParam struct {
	Name     string
	Type     TypeExpression
	Optional bool
	Rest     bool
}

// FunctionTypeNode is `(a: A, b?: B, ...c: C[]) => R`.
type FunctionTypeNode struct {
	Token      token.Token
	TypeParams []*TypeParameterNode
	Params     []FunctionTypeParam
	ReturnType TypeExpression
}

func (t *FunctionTypeNode) typeExpressionNode()  {}
func (t *FunctionTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *FunctionTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *FunctionTypeNode) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		s := p.Name + ": " + p.Type.String()
		if p.Rest {
			s = "..." + s
		}
		parts[i] = s
	}
	return "(" + strings.Join(parts, ", ") + ") => " + t.ReturnType.String()
}

// IndexSignature is `[key: K]: V` within an ObjectTypeNode.
type IndexSignature struct {
	Token     token.Token
	KeyName   string
	KeyType   TypeExpression // "string" or "number" keyword type
	ValueType TypeExpression
	Readonly  bool
}

// PropertySignature is one member of an ObjectTypeNode or
// InterfaceDeclaration body.
type PropertySignature struct {
	Token    token.Token
	Name     string
	Computed bool
	Type     TypeExpression
	Optional bool
	Readonly bool
}

// MethodSignature is a callable member of an ObjectTypeNode or
// interface body.
type MethodSignature struct {
	Token      token.Token
	Name       string
	TypeParams []*TypeParameterNode
	Params     []FunctionTypeParam
	ReturnType TypeExpression
	Optional   bool
}

// CallSignature / ConstructSignature let an ObjectTypeNode itself be
// callable or newable, e.g. `{ (x: number): string }`.
type CallSignature struct {
	Token      token.Token
	TypeParams []*TypeParameterNode
	Params     []FunctionTypeParam
	ReturnType TypeExpression
}

type ConstructSignature struct {
	Token      token.Token
	TypeParams []*TypeParameterNode
	Params     []FunctionTypeParam
	ReturnType TypeExpression
}

// ObjectTypeNode is a type literal: `{ a: string; [k: string]: number }`.
type ObjectTypeNode struct {
	Token               token.Token
	Properties          []PropertySignature
	Methods             []MethodSignature
	IndexSignatures     []IndexSignature
	CallSignatures      []CallSignature
	ConstructSignatures []ConstructSignature
}

func (t *ObjectTypeNode) typeExpressionNode()  {}
func (t *ObjectTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *ObjectTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *ObjectTypeNode) String() string {
	parts := make([]string, 0, len(t.Properties)+len(t.Methods)+len(t.IndexSignatures))
	for _, p := range t.Properties {
		s := p.Name
		if p.Optional {
			s += "?"
		}
		parts = append(parts, s+": "+p.Type.String())
	}
	for _, m := range t.Methods {
		parts = append(parts, m.Name+"(...): "+m.ReturnType.String())
	}
	for _, idx := range t.IndexSignatures {
		parts = append(parts, "["+idx.KeyName+": "+idx.KeyType.String()+"]: "+idx.ValueType.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// KeyofTypeNode is `keyof T`.
type KeyofTypeNode struct {
	Token    token.Token
	Operand  TypeExpression
}

func (t *KeyofTypeNode) typeExpressionNode()  {}
func (t *KeyofTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *KeyofTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *KeyofTypeNode) String() string       { return "keyof " + t.Operand.String() }

// TypeofTypeNode is `typeof expr` used in type position.
type TypeofTypeNode struct {
	Token      token.Token
	Expression Expression
}

func (t *TypeofTypeNode) typeExpressionNode()  {}
func (t *TypeofTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *TypeofTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *TypeofTypeNode) String() string       { return "typeof " + t.Expression.String() }

// IndexedAccessTypeNode is `T[K]`.
type IndexedAccessTypeNode struct {
	Token      token.Token
	Object     TypeExpression
	IndexType  TypeExpression
}

func (t *IndexedAccessTypeNode) typeExpressionNode()  {}
func (t *IndexedAccessTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *IndexedAccessTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *IndexedAccessTypeNode) String() string {
	return t.Object.String() + "[" + t.IndexType.String() + "]"
}

// ConditionalTypeNode is `Check extends Extends ? True : False`.
type ConditionalTypeNode struct {
	Token    token.Token
	Check    TypeExpression
	Extends  TypeExpression
	True     TypeExpression
	False    TypeExpression
}

func (t *ConditionalTypeNode) typeExpressionNode()  {}
func (t *ConditionalTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *ConditionalTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *ConditionalTypeNode) String() string {
	return t.Check.String() + " extends " + t.Extends.String() + " ? " + t.True.String() + " : " + t.False.String()
}

// InferTypeNode is `infer X` inside a ConditionalTypeNode's Extends arm.
type InferTypeNode struct {
	Token token.Token
	Name  string
}

func (t *InferTypeNode) typeExpressionNode()  {}
func (t *InferTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *InferTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *InferTypeNode) String() string       { return "infer " + t.Name }

// PredicateTypeNode is a user-defined type guard return annotation:
// `param is T` or `this is T`, legal only in a function/method's return
// type position.
type PredicateTypeNode struct {
	Token     token.Token
	ParamName string // "this" for a `this is T` predicate
	Type      TypeExpression
}

func (t *PredicateTypeNode) typeExpressionNode()  {}
func (t *PredicateTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *PredicateTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *PredicateTypeNode) String() string       { return t.ParamName + " is " + t.Type.String() }

// MappedTypeNode is `{ [K in Keys]: T }`.
type MappedTypeNode struct {
	Token       token.Token
	ParamName   string
	Constraint  TypeExpression
	ValueType   TypeExpression
	Optional    string // "", "+", "-"
	Readonly    string // "", "+", "-"
}

func (t *MappedTypeNode) typeExpressionNode()  {}
func (t *MappedTypeNode) TokenLiteral() string { return t.Token.Literal }
func (t *MappedTypeNode) Pos() token.Position  { return t.Token.Pos }
func (t *MappedTypeNode) String() string {
	return "{ [" + t.ParamName + " in " + t.Constraint.String() + "]: " + t.ValueType.String() + " }"
}
