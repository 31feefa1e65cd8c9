package checker

import (
	"fmt"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkMemberExpression types `obj.prop` and `obj[expr]`, including
// optional chaining (`obj?.prop`): an optional access strips
// null/undefined from the object's type before lookup and adds
// undefined back onto the result, short-circuiting the rest of a
// chained access the way spec.md §4.3 describes.
func (c *Checker) checkMemberExpression(e *ast.MemberExpression) types.TypeInfo {
	objType := c.checkExpr(e.Object)
	effective := objType
	nullable := false
	if e.Optional {
		nullable = hasNullishMember(objType)
		effective = filterByKeep(false, isNullishMember)(objType)
	}

	var result types.TypeInfo
	if e.Computed {
		result = c.checkComputedMember(e, effective)
	} else {
		ident, ok := e.Property.(*ast.Identifier)
		if !ok {
			result = types.Any
		} else if t, found := propertyTypeOf(effective, ident.Name); found {
			result = t
			c.checkMemberVisibility(e, effective, ident.Name)
		} else {
			c.addError(diag.New(diag.InvalidOperation, c.pos(e), c.file,
				fmt.Sprintf("Property '%s' does not exist on type '%s'.", ident.Name, effective.String())))
			result = types.Any
		}
	}

	if nullable {
		return types.NewUnion(result, types.Undefined)
	}
	return result
}

func hasNullishMember(t types.TypeInfo) bool {
	resolved := types.Resolve(t)
	if u, ok := resolved.(*types.Union); ok {
		for _, m := range u.Members {
			if isNullishMember(m) {
				return true
			}
		}
		return false
	}
	return isNullishMember(resolved)
}

// checkComputedMember types `obj[expr]`: an Array indexes to its
// element type, a Tuple indexes to the matching element when the
// index is a literal number (else the union of all elements), and a
// Record consults a literal string key's own property first, falling
// back to a matching index signature.
func (c *Checker) checkComputedMember(e *ast.MemberExpression, objType types.TypeInfo) types.TypeInfo {
	keyType := c.checkExpr(e.Property)

	switch v := types.Resolve(objType).(type) {
	case *types.Array:
		return v.Element
	case *types.Tuple:
		if lit, ok := types.Resolve(keyType).(*types.LiteralNumber); ok {
			idx := int(lit.Value)
			if idx >= 0 && idx < len(v.Elements) {
				return v.Elements[idx].Type
			}
		}
		members := make([]types.TypeInfo, len(v.Elements))
		for i, el := range v.Elements {
			members[i] = el.Type
		}
		return types.NewUnion(members...)
	case *types.Record:
		if lit, ok := types.Resolve(keyType).(*types.LiteralString); ok {
			if p, ok := v.Property(lit.Value); ok {
				return p.Type
			}
		}
		keyKind := types.KindString
		if isNumberLike(keyType) {
			keyKind = types.KindNumber
		}
		for _, idx := range v.IndexSignatures {
			if idx.KeyKind == keyKind {
				return idx.Value
			}
		}
		return types.Any
	default:
		return types.Any
	}
}

// checkMemberVisibility reports a private/protected access from
// outside the owning class (or, for protected, outside its subclass
// chain), spec.md's class member access rules.
func (c *Checker) checkMemberVisibility(e *ast.MemberExpression, objType types.TypeInfo, name string) {
	inst, ok := types.Resolve(objType).(*types.Instance)
	if !ok || inst.Class == nil {
		return
	}
	owner, field, method, accessor, found := inst.Class.Member(name)
	if !found {
		return
	}
	var vis types.Visibility
	switch {
	case field != nil:
		vis = field.Visibility
	case method != nil:
		vis = method.Visibility
	case accessor != nil:
		vis = accessor.Visibility
	default:
		return
	}
	if vis == types.Public {
		return
	}
	cur := c.currentClass()
	switch vis {
	case types.Private:
		if cur != owner {
			c.addError(diag.PrivateAccessDiag(c.pos(e), c.file, name, owner.Name))
		}
	case types.Protected:
		if cur == nil || !(cur == owner || cur.IsSubclassOf(owner) || owner.IsSubclassOf(cur)) {
			c.addError(diag.PrivateAccessDiag(c.pos(e), c.file, name, owner.Name))
		}
	}
}

// checkTypeAssertion types `expr as T` / `<T>expr`: the operand is
// checked for its own sake (its inferred type is discarded, not
// compared against T — this checker does not enforce TypeScript's
// "sufficiently overlaps" restriction on assertions).
func (c *Checker) checkTypeAssertion(e *ast.TypeAssertionExpression) types.TypeInfo {
	c.checkExpr(e.Expression)
	return c.resolveType(e.TargetType)
}

// checkSatisfies types `expr satisfies T`: unlike `as`, the
// expression's own (possibly narrower, e.g. literal) type is
// preserved as the result, with T only used to contextually type the
// expression and to report a mismatch.
func (c *Checker) checkSatisfies(e *ast.SatisfiesExpression) types.TypeInfo {
	target := c.resolveType(e.TargetType)
	exprType := c.checkExprContextual(e.Expression, target)
	if !c.Assignable(target, exprType) {
		c.addError(diag.TypeMismatchDiag(c.pos(e.Expression), c.file, target, exprType, ""))
	}
	return exprType
}

// checkDynamicImport types `import(source)` as Promise<Namespace> when
// source is a literal specifier resolvable through the same module
// table static imports use, else Promise<any>.
func (c *Checker) checkDynamicImport(e *ast.DynamicImportExpression) types.TypeInfo {
	c.checkExpr(e.Source)
	if lit, ok := e.Source.(*ast.StringLiteral); ok {
		if mod, ok := c.resolveModuleRecord(c.pos(e), lit.Value); ok {
			return types.NewPromise(mod.AsNamespace(lit.Value))
		}
	}
	return types.NewPromise(types.Any)
}

// checkClassExpression types a class expression by building its
// ClassType the same way a class declaration does (decl_classes.go's
// buildClassType), yielding the constructor's own "typeof C" value.
func (c *Checker) checkClassExpression(e *ast.ClassExpression) types.TypeInfo {
	return c.buildClassType(e.Class)
}
