package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkIdentifier resolves a bare name against any narrowing recorded
// for it first, then the lexical environment, matching spec.md §4.2's
// rule that a narrowed type always wins over a binding's declared one.
func (c *Checker) checkIdentifier(e *ast.Identifier) types.TypeInfo {
	if t, ok := c.narrowing.Get(e.Name); ok {
		return t
	}
	if t, ok := c.env.LookupValue(e.Name); ok {
		return t
	}
	c.addError(diag.UndefinedNameDiag(c.pos(e), c.file, e.Name))
	return types.Any
}

// checkThisExpression resolves `this` against the innermost function's
// recorded receiver type (an arrow function's context inherits the
// enclosing function's receiver — see expr_calls.go's
// checkArrowFunction), then the enclosing class body.
func (c *Checker) checkThisExpression(e *ast.ThisExpression) types.TypeInfo {
	if fc := c.currentFunction(); fc != nil && fc.thisType != nil {
		return fc.thisType
	}
	if cls := c.currentClass(); cls != nil {
		return &types.Instance{Class: cls}
	}
	return types.Any
}

// checkSuperExpression resolves `super` to an Instance of the
// enclosing class's parent, reporting InvalidOperation when used
// outside a derived class body.
func (c *Checker) checkSuperExpression(e *ast.SuperExpression) types.TypeInfo {
	cls := c.currentClass()
	if cls == nil || cls.Parent == nil {
		c.addError(diag.New(diag.InvalidOperation, c.pos(e), c.file, "'super' is only valid inside a derived class"))
		return types.Any
	}
	return &types.Instance{Class: cls.Parent}
}

// checkImportMeta models `import.meta` as a fixed record shape; module
// bundlers vary this in practice, but every target this checker cares
// about at minimum exposes `url`.
func (c *Checker) checkImportMeta(e *ast.ImportMetaExpression) types.TypeInfo {
	return &types.Record{Properties: []types.PropertyInfo{
		{Name: "url", Type: types.String},
	}}
}

// checkTemplateLiteral checks every interpolated expression for its own
// sake (arbitrary types coerce to string at this position, so no
// assignability check is performed against them) and types the whole
// template as string, or as the literal text itself when there are no
// interpolations.
func (c *Checker) checkTemplateLiteral(e *ast.TemplateLiteral) types.TypeInfo {
	for _, expr := range e.Expressions {
		c.checkExpr(expr)
	}
	if len(e.Expressions) == 0 && len(e.Quasis) == 1 {
		return &types.LiteralString{Value: e.Quasis[0]}
	}
	return types.String
}

// checkTaggedTemplate checks the tag as a call target against the
// template's quasis/expressions. Overload resolution for tag functions
// is intentionally simple (first signature or the implementation
// signature of an overload group) since a tag function distinguishing
// behavior by argument count is vanishingly rare in practice.
func (c *Checker) checkTaggedTemplate(e *ast.TaggedTemplateExpression) types.TypeInfo {
	tagType := c.checkExpr(e.Tag)
	for _, expr := range e.Template.Expressions {
		c.checkExpr(expr)
	}
	switch fn := types.Resolve(tagType).(type) {
	case *types.Function:
		return fn.ReturnType
	case *types.OverloadedFunction:
		if fn.Implementation != nil {
			return fn.Implementation.ReturnType
		}
		if len(fn.Signatures) > 0 {
			return fn.Signatures[0].ReturnType
		}
	}
	c.addError(diag.NotCallableDiag(c.pos(e), c.file, tagType.String()))
	return types.Any
}
