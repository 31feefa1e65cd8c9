package checker

import (
	"fmt"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/types"
)

func isBigIntLike(t types.TypeInfo) bool {
	switch types.Resolve(t).Kind() {
	case types.KindBigInt, types.KindLiteralBigInt:
		return true
	default:
		return false
	}
}

func isNumberLike(t types.TypeInfo) bool {
	switch types.Resolve(t).Kind() {
	case types.KindNumber, types.KindLiteralNumber:
		return true
	default:
		return false
	}
}

func isStringLike(t types.TypeInfo) bool {
	switch types.Resolve(t).Kind() {
	case types.KindString, types.KindLiteralString:
		return true
	default:
		return false
	}
}

func isNullishMember(m types.TypeInfo) bool {
	switch types.Resolve(m).Kind() {
	case types.KindNull, types.KindUndefined:
		return true
	default:
		return false
	}
}

// checkBinaryExpression types every non-logical binary operator
// spec.md's grammar defines. Logical operators (&&, ||, ??) go through
// checkLogicalExpression instead, since they narrow rather than simply
// combine their operand types.
func (c *Checker) checkBinaryExpression(e *ast.BinaryExpression) types.TypeInfo {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)
	switch e.Operator {
	case "+":
		return c.checkPlusOperator(e, left, right)
	case "-", "*", "/", "%", "**", "&", "|", "^", "<<", ">>":
		return c.checkNumericOperator(e, left, right)
	case ">>>":
		if isBigIntLike(left) || isBigIntLike(right) {
			c.addError(diag.UnsupportedShiftDiag(c.pos(e), c.file))
			return types.Never
		}
		return types.Number
	case "<", ">", "<=", ">=", "==", "!=", "===", "!==", "instanceof", "in":
		return types.Boolean
	default:
		c.addError(diag.New(diag.InvalidOperation, c.pos(e), c.file, fmt.Sprintf("Unsupported operator '%s'", e.Operator)))
		return types.Any
	}
}

// checkPlusOperator handles `+`'s three-way overload: numeric
// addition, bigint addition, and string concatenation (triggered by
// either operand being string-like), per spec.md S6.
func (c *Checker) checkPlusOperator(e *ast.BinaryExpression, left, right types.TypeInfo) types.TypeInfo {
	if isBigIntLike(left) && isBigIntLike(right) {
		return types.BigIntT
	}
	if isBigIntLike(left) != isBigIntLike(right) && (isBigIntLike(left) || isBigIntLike(right)) {
		c.addError(diag.MixedBigIntDiag(c.pos(e), c.file, "+"))
		return types.Never
	}
	if isStringLike(left) || isStringLike(right) {
		return types.String
	}
	if isNumberLike(left) && isNumberLike(right) {
		return types.Number
	}
	return types.Any
}

// checkNumericOperator handles every arithmetic/bitwise operator other
// than `+` and `>>>`: both operands bigint yields bigint, a bigint
// mixed with anything else is an error, otherwise the result is
// number.
func (c *Checker) checkNumericOperator(e *ast.BinaryExpression, left, right types.TypeInfo) types.TypeInfo {
	if isBigIntLike(left) && isBigIntLike(right) {
		return types.BigIntT
	}
	if isBigIntLike(left) != isBigIntLike(right) && (isBigIntLike(left) || isBigIntLike(right)) {
		c.addError(diag.MixedBigIntDiag(c.pos(e), c.file, e.Operator))
		return types.Never
	}
	return types.Number
}

// checkLogicalExpression types &&, ||, and ??, narrowing the right
// operand's checking environment by the left operand's truthiness (or
// nullishness, for ??) the same way an if-statement's consequent is
// narrowed (spec.md §4.2).
func (c *Checker) checkLogicalExpression(e *ast.LogicalExpression) types.TypeInfo {
	left := c.checkExpr(e.Left)
	switch e.Operator {
	case "&&":
		restore := c.narrowing.Apply(c.narrowCondition(e.Left, true), c.pathBaseType)
		right := c.checkExpr(e.Right)
		restore()
		return types.NewUnion(keepFalsy(left), right)
	case "||":
		restore := c.narrowing.Apply(c.narrowCondition(e.Left, false), c.pathBaseType)
		right := c.checkExpr(e.Right)
		restore()
		return types.NewUnion(keepTruthy(left), right)
	case "??":
		right := c.checkExpr(e.Right)
		return types.NewUnion(filterByKeep(false, isNullishMember)(left), right)
	default:
		return types.Any
	}
}

// checkUnaryExpression types !, -, +, ~, typeof, void, and prefix/
// postfix ++/--.
func (c *Checker) checkUnaryExpression(e *ast.UnaryExpression) types.TypeInfo {
	operand := c.checkExpr(e.Operand)
	switch e.Operator {
	case "!":
		return types.Boolean
	case "typeof":
		return types.String
	case "void":
		return types.Undefined
	case "-", "+", "~", "++", "--":
		if isBigIntLike(operand) {
			return types.BigIntT
		}
		return types.Number
	default:
		c.addError(diag.New(diag.InvalidOperation, c.pos(e), c.file, fmt.Sprintf("Unsupported operator '%s'", e.Operator)))
		return types.Any
	}
}

// checkNonNullExpression types `expr!`, stripping null/undefined from
// the operand's type unconditionally (the author is asserting the
// value can't be nullish here, so no diagnostic fires even when the
// operand type contains no nullish member to strip).
func (c *Checker) checkNonNullExpression(e *ast.NonNullExpression) types.TypeInfo {
	return filterByKeep(false, isNullishMember)(c.checkExpr(e.Operand))
}

// checkAwaitExpression types `await expr` by unwrapping any Promise
// layers from the operand's type (spec.md's async handling).
func (c *Checker) checkAwaitExpression(e *ast.AwaitExpression) types.TypeInfo {
	return types.Awaited(c.checkExpr(e.Operand))
}

// checkYieldExpression checks a yield's argument for its own sake. A
// generator's declared yield type is not threaded back through yield
// expressions in this pass; the type a `yield` expression itself
// produces (the value sent back in via .next()) is modeled as any.
func (c *Checker) checkYieldExpression(e *ast.YieldExpression) types.TypeInfo {
	if e.Argument != nil {
		c.checkExpr(e.Argument)
	}
	return types.Any
}

// checkConditionalExpression types `test ? cons : alt`, narrowing cons
// under test's truthy guards and alt under its falsy ones, and typing
// the whole expression as the union of both branches.
func (c *Checker) checkConditionalExpression(e *ast.ConditionalExpression) types.TypeInfo {
	c.checkExpr(e.Test)

	restore := c.narrowing.Apply(c.narrowCondition(e.Test, true), c.pathBaseType)
	cons := c.checkExpr(e.Consequent)
	restore()

	restoreAlt := c.narrowing.Apply(c.narrowCondition(e.Test, false), c.pathBaseType)
	alt := c.checkExpr(e.Alternate)
	restoreAlt()

	return types.NewUnion(cons, alt)
}

// checkSequenceExpression types `a, b, c` as the type of its last
// expression, having checked every earlier one for side effects only.
func (c *Checker) checkSequenceExpression(e *ast.SequenceExpression) types.TypeInfo {
	var last types.TypeInfo = types.Undefined
	for _, expr := range e.Expressions {
		last = c.checkExpr(expr)
	}
	return last
}

// checkAssignmentExpression types `target op= value`, reporting a
// readonly-assignment diagnostic for a const binding or readonly
// field/property target and re-narrowing the target's path to the
// assigned value's type (spec.md §4.2: an assignment is itself a
// narrowing event).
func (c *Checker) checkAssignmentExpression(e *ast.AssignmentExpression) types.TypeInfo {
	targetType := c.checkExpr(e.Target)
	c.checkAssignmentTargetReadonly(e.Target)

	if e.Operator == "=" {
		valType := c.checkExprContextual(e.Value, targetType)
		if !c.Assignable(targetType, valType) {
			c.addError(diag.TypeMismatchDiag(c.pos(e.Value), c.file, targetType, valType, ""))
		}
		if path, ok := pathOf(e.Target); ok {
			c.narrowing.Set(path, valType)
		}
		return valType
	}

	valType := c.checkExpr(e.Value)
	switch e.Operator {
	case "&&=", "||=", "??=":
		result := types.NewUnion(targetType, valType)
		if path, ok := pathOf(e.Target); ok {
			c.narrowing.Set(path, result)
		}
		return result
	default:
		return targetType
	}
}

func (c *Checker) checkAssignmentTargetReadonly(target ast.Expression) {
	switch t := target.(type) {
	case *ast.Identifier:
		if c.readonlyValues[t.Name] {
			c.addError(diag.ReadonlyAssignmentDiag(c.pos(t), c.file, t.Name))
		}
	case *ast.MemberExpression:
		if t.Computed {
			return
		}
		ident, ok := t.Property.(*ast.Identifier)
		if !ok {
			return
		}
		objType := c.checkExpr(t.Object)
		if isReadonlyProperty(objType, ident.Name) {
			c.addError(diag.ReadonlyAssignmentDiag(c.pos(t), c.file, ident.Name))
		}
	}
}

func isReadonlyProperty(t types.TypeInfo, name string) bool {
	switch v := types.Resolve(t).(type) {
	case *types.Record:
		if p, ok := v.Property(name); ok {
			return p.Readonly
		}
	case *types.Instance:
		if v.Class == nil {
			return false
		}
		if _, field, _, _, ok := v.Class.Member(name); ok && field != nil {
			return field.Readonly
		}
	}
	return false
}
