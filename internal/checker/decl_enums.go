package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// buildEnumType assigns every member a literal value — the declared
// initializer when present, otherwise the next number after the last
// numeric member seen (TypeScript's auto-increment rule), and binds
// each member as a Name.Member path via EnumMemberType (spec.md §4.5).
func (c *Checker) buildEnumType(decl *ast.EnumDeclaration) *types.EnumType {
	enum := &types.EnumType{Name: decl.Name, Const: decl.Const}
	next := 0.0

	for _, m := range decl.Members {
		var val types.TypeInfo
		switch {
		case m.Initializer != nil:
			t := types.Resolve(c.checkExpr(m.Initializer))
			switch lit := t.(type) {
			case *types.LiteralNumber:
				val = lit
				next = lit.Value + 1
			case *types.LiteralString:
				val = lit
			default:
				val = &types.LiteralNumber{Value: next}
				next++
			}
		default:
			val = &types.LiteralNumber{Value: next}
			next++
		}
		enum.Members = append(enum.Members, &types.EnumMemberType{Enum: enum, Name: m.Name, Value: val})
	}
	return enum
}

func (c *Checker) enumTypeFor(decl *ast.EnumDeclaration) *types.EnumType {
	if t, ok := c.collected[decl]; ok {
		if enum, ok := t.(*types.EnumType); ok {
			return enum
		}
	}
	enum := c.buildEnumType(decl)
	c.collected[decl] = enum
	return enum
}
