package checker

import (
	"fmt"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkArrayLiteral types `[a, b, ...c]`. Against a Tuple expected
// type of matching arity (and no spreads) each element checks
// positionally; otherwise every element checks against the expected
// element type (if expected is an Array) and the literal's type is
// inferred as T[] where T is the union of every element's (widened,
// when untyped) type.
func (c *Checker) checkArrayLiteral(e *ast.ArrayLiteral, expected types.TypeInfo) types.TypeInfo {
	resolved := types.Resolve(expected)
	if tup, ok := resolved.(*types.Tuple); ok && len(tup.Elements) == len(e.Elements) && !arrayLiteralHasSpread(e) {
		for i, el := range e.Elements {
			want := tup.Elements[i].Type
			if el == nil {
				continue
			}
			got := c.checkExprContextual(el, want)
			if !c.Assignable(want, got) {
				c.addError(diag.TypeMismatchDiag(c.pos(el), c.file, want, got, ""))
			}
		}
		return tup
	}

	var elemExpected types.TypeInfo
	if arr, ok := resolved.(*types.Array); ok {
		elemExpected = arr.Element
	}

	var members []types.TypeInfo
	for _, el := range e.Elements {
		if el == nil {
			members = append(members, types.Undefined)
			continue
		}
		if sp, ok := el.(*ast.SpreadElement); ok {
			st := c.checkExpr(sp.Argument)
			switch s := types.Resolve(st).(type) {
			case *types.Array:
				members = append(members, s.Element)
			case *types.Tuple:
				for _, te := range s.Elements {
					members = append(members, te.Type)
				}
			default:
				members = append(members, types.Any)
			}
			continue
		}
		var t types.TypeInfo
		if elemExpected != nil {
			t = c.checkExprContextual(el, elemExpected)
		} else {
			t = widenIfUntyped(c.checkExpr(el))
		}
		members = append(members, t)
	}

	if len(members) == 0 {
		if elemExpected != nil {
			return &types.Array{Element: elemExpected}
		}
		return &types.Array{Element: types.Any}
	}
	return &types.Array{Element: types.NewUnion(members...)}
}

func arrayLiteralHasSpread(e *ast.ArrayLiteral) bool {
	for _, el := range e.Elements {
		if _, ok := el.(*ast.SpreadElement); ok {
			return true
		}
	}
	return false
}

// widenIfUntyped widens a literal type to its primitive base, matching
// the inference TypeScript performs for array/object literal members
// with no contextual type to hold them to a narrower literal.
func widenIfUntyped(t types.TypeInfo) types.TypeInfo {
	if w := widen(t); w != nil {
		return w
	}
	return t
}

// checkObjectLiteral types `{ a: 1, b, ...rest }`. fresh marks whether
// this literal is syntactically fresh at this position (spec.md §4.3):
// only a fresh literal triggers the excess-property check against an
// expected shape; one reached by unwrapping a GroupingExpression is not
// (see expr.go's checkExprContextual).
func (c *Checker) checkObjectLiteral(e *ast.ObjectLiteral, expected types.TypeInfo, fresh bool) types.TypeInfo {
	known, hasShape := knownPropertyNames(expected)

	var props []types.PropertyInfo
	var indexSigs []types.IndexSignatureInfo
	seen := map[string]bool{}

	for _, p := range e.Properties {
		if p.Spread != nil {
			st := c.checkExpr(p.Spread.Argument)
			if rec, ok := types.Resolve(st).(*types.Record); ok {
				for _, rp := range rec.Properties {
					if !seen[rp.Name] {
						props = append(props, rp)
						seen[rp.Name] = true
					}
				}
			}
			continue
		}

		if p.Computed {
			c.checkExpr(p.Key)
		}
		name := propertyKeyName(p.Key)

		var valExpected types.TypeInfo
		if hasShape {
			valExpected, _ = propertyTypeOf(expected, name)
		}

		var val types.TypeInfo
		switch {
		case p.Shorthand:
			val = c.checkExpr(p.Value)
		case valExpected != nil:
			val = c.checkExprContextual(p.Value, valExpected)
			if !c.Assignable(valExpected, val) {
				c.addError(diag.TypeMismatchDiag(c.pos(p.Value), c.file, valExpected, val, name))
			}
		default:
			val = widenIfUntyped(c.checkExpr(p.Value))
		}

		if fresh && hasShape && name != "" {
			if _, known := known[name]; !known {
				c.addError(diag.ExcessPropertyDiag(c.pos(p.Value), c.file, name, expected.String()))
			}
		}

		if name == "" {
			indexSigs = append(indexSigs, types.IndexSignatureInfo{KeyKind: types.KindString, Value: val})
			continue
		}
		if !seen[name] {
			props = append(props, types.PropertyInfo{Name: name, Type: val})
			seen[name] = true
		}
	}

	return &types.Record{Properties: props, IndexSignatures: indexSigs}
}

// propertyKeyName returns the statically-known name of an object
// literal or member-expression key, or "" when the key is a computed
// expression whose value isn't known until runtime.
func propertyKeyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLiteral:
		return k.Value
	case *ast.NumericLiteral:
		return fmt.Sprintf("%v", k.Value)
	default:
		return ""
	}
}

// knownPropertyNames returns the set of member names expected's shape
// statically declares, and whether expected has a known enough shape
// to run the excess-property check against at all: a Record with an
// index signature, a bare union, or any non-object type reports false
// since "every extra key is fine" and "which union member to check
// against" are both out of scope for this simplified pass.
func knownPropertyNames(expected types.TypeInfo) (map[string]bool, bool) {
	switch v := types.Resolve(expected).(type) {
	case *types.Record:
		if len(v.IndexSignatures) > 0 {
			return nil, false
		}
		names := make(map[string]bool, len(v.Properties))
		for _, p := range v.Properties {
			names[p.Name] = true
		}
		return names, true
	case *types.InterfaceType:
		props, methods := v.AllMembers()
		names := make(map[string]bool, len(props)+len(methods))
		for n := range props {
			names[n] = true
		}
		for n := range methods {
			names[n] = true
		}
		return names, true
	case *types.Instance:
		if v.Class == nil {
			return nil, false
		}
		names := make(map[string]bool)
		for _, n := range classMemberNames(v.Class) {
			names[n] = true
		}
		return names, true
	default:
		return nil, false
	}
}
