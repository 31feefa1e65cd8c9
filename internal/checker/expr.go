package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkExpr assigns a types.TypeInfo to expr and records it in
// c.Types, the single entry point spec.md §4.3's Expression Checker is
// driven through. Every other file in this package that needs an
// expression's type calls this (or checkExprContextual) rather than
// re-implementing any of the type-switch arms below.
func (c *Checker) checkExpr(expr ast.Expression) types.TypeInfo {
	if expr == nil {
		return types.Any
	}
	if t := c.Types.GetType(expr); t != nil {
		return t
	}
	t := c.checkExprKind(expr)
	if t == nil {
		t = types.Any
	}
	c.Types.SetType(expr, t)
	return t
}

// checkExprContextual is checkExpr's contextual counterpart, used
// wherever spec.md §4.3 calls for an expected type to flow into a
// literal before it is checked (an assignment's RHS, a call argument,
// a return value): fresh array/object literals and untyped
// arrow/function expressions use expected to type elements, choose
// between tuple and array inference, and fill in unannotated parameter
// types. Anything else falls back to checkExpr, expected unused.
func (c *Checker) checkExprContextual(expr ast.Expression, expected types.TypeInfo) types.TypeInfo {
	if expr == nil {
		return types.Any
	}
	if t := c.Types.GetType(expr); t != nil {
		return t
	}
	var t types.TypeInfo
	switch e := expr.(type) {
	case *ast.ArrayLiteral:
		t = c.checkArrayLiteral(e, expected)
	case *ast.ObjectLiteral:
		t = c.checkObjectLiteral(e, expected, true)
	case *ast.ArrowFunctionExpression:
		t = c.checkArrowFunction(e, expected)
	case *ast.FunctionExpression:
		t = c.checkFunctionExpression(e, expected)
	default:
		// A parenthesized literal is no longer "fresh" (spec.md §4.3);
		// falling through to the uncontextual dispatcher both drops
		// the expected type for excess-property purposes and unwraps
		// the GroupingExpression itself via checkExprKind's own arm.
		t = c.checkExprKind(expr)
	}
	if t == nil {
		t = types.Any
	}
	c.Types.SetType(expr, t)
	return t
}

// checkExprKind is the uncached type-switch dispatcher every
// expression kind spec.md's grammar defines resolves through.
func (c *Checker) checkExprKind(expr ast.Expression) types.TypeInfo {
	switch e := expr.(type) {
	case *ast.Identifier:
		return c.checkIdentifier(e)
	case *ast.ThisExpression:
		return c.checkThisExpression(e)
	case *ast.SuperExpression:
		return c.checkSuperExpression(e)
	case *ast.ImportMetaExpression:
		return c.checkImportMeta(e)
	case *ast.NumericLiteral:
		return &types.LiteralNumber{Value: e.Value}
	case *ast.BigIntLiteral:
		return &types.LiteralBigInt{Value: e.Value}
	case *ast.StringLiteral:
		return &types.LiteralString{Value: e.Value}
	case *ast.BooleanLiteral:
		return &types.LiteralBoolean{Value: e.Value}
	case *ast.NullLiteral:
		return types.Null
	case *ast.UndefinedLiteral:
		return types.Undefined
	case *ast.TemplateLiteral:
		return c.checkTemplateLiteral(e)
	case *ast.TaggedTemplateExpression:
		return c.checkTaggedTemplate(e)
	case *ast.GroupingExpression:
		return c.checkExpr(e.Inner)
	case *ast.BinaryExpression:
		return c.checkBinaryExpression(e)
	case *ast.LogicalExpression:
		return c.checkLogicalExpression(e)
	case *ast.UnaryExpression:
		return c.checkUnaryExpression(e)
	case *ast.NonNullExpression:
		return c.checkNonNullExpression(e)
	case *ast.DeleteExpression:
		c.checkExpr(e.Operand)
		return types.Boolean
	case *ast.AwaitExpression:
		return c.checkAwaitExpression(e)
	case *ast.YieldExpression:
		return c.checkYieldExpression(e)
	case *ast.ConditionalExpression:
		return c.checkConditionalExpression(e)
	case *ast.AssignmentExpression:
		return c.checkAssignmentExpression(e)
	case *ast.SequenceExpression:
		return c.checkSequenceExpression(e)
	case *ast.SpreadElement:
		return c.checkExpr(e.Argument)
	case *ast.CallExpression:
		return c.checkCallExpression(e)
	case *ast.NewExpression:
		return c.checkNewExpression(e)
	case *ast.MemberExpression:
		return c.checkMemberExpression(e)
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(e, nil)
	case *ast.ObjectLiteral:
		return c.checkObjectLiteral(e, nil, true)
	case *ast.TypeAssertionExpression:
		return c.checkTypeAssertion(e)
	case *ast.SatisfiesExpression:
		return c.checkSatisfies(e)
	case *ast.DynamicImportExpression:
		return c.checkDynamicImport(e)
	case *ast.ArrowFunctionExpression:
		return c.checkArrowFunction(e, nil)
	case *ast.FunctionExpression:
		return c.checkFunctionExpression(e, nil)
	case *ast.ClassExpression:
		return c.checkClassExpression(e)
	case *ast.ArrayPattern, *ast.ObjectPattern:
		// A pattern only reaches expression position inside an already-
		// malformed assignment target; the statement checker handles
		// every legitimate destructuring site directly.
		return types.Any
	default:
		c.addError(diag.New(diag.InvalidOperation, c.pos(expr), c.file, "Unsupported expression form."))
		return types.Any
	}
}
