package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// NarrowingContext is the persistent stack of flow-sensitive type
// refinements recorded while walking a function body (spec.md §4.2):
// each narrowable reference (an identifier or a dotted, non-computed
// member chain) maps to the TypeInfo it has been refined to along the
// current path through the control-flow graph. Frames nest one per
// entered branch/block, so leaving a branch via the restore func
// returned by Push discards only what that branch narrowed.
type NarrowingContext struct {
	frames []map[string]types.TypeInfo
}

// NewNarrowingContext starts a context with a single root frame.
func NewNarrowingContext() *NarrowingContext {
	return &NarrowingContext{frames: []map[string]types.TypeInfo{{}}}
}

// Get returns the narrowed type recorded for path, searching from the
// innermost frame outward.
func (n *NarrowingContext) Get(path string) (types.TypeInfo, bool) {
	for i := len(n.frames) - 1; i >= 0; i-- {
		if t, ok := n.frames[i][path]; ok {
			return t, true
		}
	}
	return nil, false
}

// Set records a narrowing for path in the innermost frame.
func (n *NarrowingContext) Set(path string, t types.TypeInfo) {
	n.frames[len(n.frames)-1][path] = t
}

// Clear removes any narrowing recorded for path in the innermost frame.
func (n *NarrowingContext) Clear(path string) {
	delete(n.frames[len(n.frames)-1], path)
}

// Push opens a new frame (entering an if/else arm, a loop body, a
// switch case) and returns a restore func that closes it, matching the
// RAII scope-guard discipline used elsewhere in the checker.
func (n *NarrowingContext) Push() func() {
	n.frames = append(n.frames, map[string]types.TypeInfo{})
	return func() { n.frames = n.frames[:len(n.frames)-1] }
}

// Apply opens a frame and immediately records every (path, type) pair
// in guards, returning the restore func.
func (n *NarrowingContext) Apply(guards guardSet, base func(path string) types.TypeInfo) func() {
	restore := n.Push()
	for path, op := range guards {
		cur := base(path)
		if cur == nil {
			continue
		}
		n.Set(path, op(cur))
	}
	return restore
}

// Promote copies the innermost frame's bindings into the frame below it
// and pops. checkIfStatement does not call it, so a narrowing from an
// if without else ends with the statement, even when the consequent
// always returns or throws.
func (n *NarrowingContext) Promote() {
	if len(n.frames) < 2 {
		return
	}
	top := n.frames[len(n.frames)-1]
	under := n.frames[len(n.frames)-2]
	for k, v := range top {
		under[k] = v
	}
	n.frames = n.frames[:len(n.frames)-1]
}

// narrowOp transforms a reference's currently-known type into its
// narrowed form; applied lazily at Apply time against whatever type is
// in scope for that path right now, so the same guardSet can be reused
// for both branches of an if/else by calling narrowCondition twice
// (positive and negative).
type narrowOp func(base types.TypeInfo) types.TypeInfo

// guardSet maps a narrowable path to the refinement a condition implies
// about it, for one truth value of that condition.
type guardSet map[string]narrowOp

func mergeIntersect(a, b guardSet) guardSet {
	out := make(guardSet, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok {
			prior := existing
			out[k] = func(base types.TypeInfo) types.TypeInfo { return v(prior(base)) }
		} else {
			out[k] = v
		}
	}
	return out
}

// mergeUnion keeps only paths narrowed in both a and b, widening the
// result to the union of what each side would narrow it to — the
// guard `||` needs (spec.md: `x === "a" || x === "b"` only narrows a
// path covered by both disjuncts).
func mergeUnion(a, b guardSet) guardSet {
	out := make(guardSet, len(a))
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			continue
		}
		out[k] = func(base types.TypeInfo) types.TypeInfo {
			return types.NewUnion(av(base), bv(base))
		}
	}
	return out
}

// pathOf extracts a dotted narrowing key from an identifier or a chain
// of non-computed member accesses (`a.b.c`); computed access, calls,
// and anything else has no stable narrowable path.
func pathOf(e ast.Expression) (string, bool) {
	switch v := e.(type) {
	case *ast.Identifier:
		return v.Name, true
	case *ast.ThisExpression:
		return "this", true
	case *ast.MemberExpression:
		if v.Computed {
			return "", false
		}
		prop, ok := v.Property.(*ast.Identifier)
		if !ok {
			return "", false
		}
		base, ok := pathOf(v.Object)
		if !ok {
			return "", false
		}
		return base + "." + prop.Name, true
	default:
		return "", false
	}
}

// narrowCondition computes the guardSet implied by cond being true
// (positive) or false (!positive), covering spec.md §4.2's guard
// catalogue: typeof, null/undefined equality, instanceof, the `in`
// operator, literal/discriminant equality, truthiness, user-defined
// type predicates, and && / || / ! composition.
func (c *Checker) narrowCondition(cond ast.Expression, positive bool) guardSet {
	switch v := cond.(type) {
	case *ast.GroupingExpression:
		return c.narrowCondition(v.Inner, positive)

	case *ast.UnaryExpression:
		if v.Operator == "!" && v.Prefix {
			return c.narrowCondition(v.Operand, !positive)
		}

	case *ast.LogicalExpression:
		switch v.Operator {
		case "&&":
			left := c.narrowCondition(v.Left, positive)
			right := c.narrowCondition(v.Right, positive)
			if positive {
				return mergeIntersect(left, right)
			}
			return mergeUnion(left, right)
		case "||":
			left := c.narrowCondition(v.Left, positive)
			right := c.narrowCondition(v.Right, positive)
			if positive {
				return mergeUnion(left, right)
			}
			return mergeIntersect(left, right)
		}

	case *ast.BinaryExpression:
		if g, ok := c.narrowBinary(v, positive); ok {
			return g
		}

	case *ast.CallExpression:
		if g, ok := c.narrowPredicateCall(v); ok {
			if !positive {
				return invertGuard(g)
			}
			return g
		}

	default:
		// fall through to truthiness below
	}

	if path, ok := pathOf(cond); ok {
		if positive {
			return guardSet{path: keepTruthy}
		}
		return guardSet{path: keepFalsy}
	}
	return guardSet{}
}

func invertGuard(g guardSet) guardSet {
	out := make(guardSet, len(g))
	for path, op := range g {
		prior := op
		out[path] = func(base types.TypeInfo) types.TypeInfo {
			// A predicate guard has no natural complement type (the
			// "not T" of an arbitrary T isn't representable); leave
			// the base type unrefined for the negative branch.
			_ = prior
			return base
		}
	}
	return out
}

func (c *Checker) narrowPredicateCall(call *ast.CallExpression) (guardSet, bool) {
	calleeType := c.Types.GetType(call.Callee)
	fn, ok := types.Resolve(calleeType).(*types.Function)
	if !ok || fn.Predicate == nil {
		return nil, false
	}
	var target ast.Expression
	if fn.Predicate.ParamIndex == -1 {
		if len(call.Arguments) == 0 {
			return nil, false
		}
		if me, ok := call.Callee.(*ast.MemberExpression); ok {
			target = me.Object
		} else {
			return nil, false
		}
	} else if fn.Predicate.ParamIndex < len(call.Arguments) {
		target = call.Arguments[fn.Predicate.ParamIndex]
	} else {
		return nil, false
	}
	path, ok := pathOf(target)
	if !ok {
		return nil, false
	}
	want := fn.Predicate.Type
	return guardSet{path: func(types.TypeInfo) types.TypeInfo { return want }}, true
}

func (c *Checker) narrowBinary(bin *ast.BinaryExpression, positive bool) (guardSet, bool) {
	switch bin.Operator {
	case "===", "!==", "==", "!=":
		return c.narrowEquality(bin, positive)
	case "instanceof":
		return c.narrowInstanceof(bin, positive)
	case "in":
		return c.narrowIn(bin, positive)
	}
	return nil, false
}

func (c *Checker) narrowEquality(bin *ast.BinaryExpression, positive bool) (guardSet, bool) {
	wantEqual := bin.Operator == "===" || bin.Operator == "=="
	// actualKeep is true when this condition being in the requested
	// (positive/negative) state means "path matches the compared
	// value", false when it means "path does not match it".
	actualKeep := positive == wantEqual

	if g, ok := c.narrowTypeofEquality(bin, actualKeep); ok {
		return g, true
	}
	if g, ok := c.narrowNullishEquality(bin, actualKeep); ok {
		return g, true
	}
	if g, ok := c.narrowDiscriminant(bin, actualKeep); ok {
		return g, true
	}
	if g, ok := c.narrowLiteralEquality(bin, actualKeep); ok {
		return g, true
	}
	return nil, false
}

func (c *Checker) narrowTypeofEquality(bin *ast.BinaryExpression, keep bool) (guardSet, bool) {
	typeofExpr, lit := matchTypeofPair(bin.Left, bin.Right)
	if typeofExpr == nil {
		typeofExpr, lit = matchTypeofPair(bin.Right, bin.Left)
	}
	if typeofExpr == nil {
		return nil, false
	}
	path, ok := pathOf(typeofExpr.Operand)
	if !ok {
		return nil, false
	}
	want := typeofKindType(lit)
	if want == nil {
		return nil, false
	}
	return guardSet{path: filterByKeep(keep, func(m types.TypeInfo) bool { return matchesTypeofKind(m, lit) })}, true
}

func matchTypeofPair(a, b ast.Expression) (*ast.UnaryExpression, string) {
	u, ok := a.(*ast.UnaryExpression)
	if !ok || u.Operator != "typeof" {
		return nil, ""
	}
	s, ok := b.(*ast.StringLiteral)
	if !ok {
		return nil, ""
	}
	return u, s.Value
}

func typeofKindType(kw string) types.TypeInfo {
	switch kw {
	case "string":
		return types.String
	case "number":
		return types.Number
	case "boolean":
		return types.Boolean
	case "bigint":
		return types.BigIntT
	case "symbol":
		return types.Symbol
	case "undefined":
		return types.Undefined
	case "object":
		return types.Object
	case "function":
		return types.Any
	default:
		return nil
	}
}

func matchesTypeofKind(m types.TypeInfo, kw string) bool {
	r := types.Resolve(m)
	switch kw {
	case "string":
		return isPrimitiveKind(r, types.KindString) || r.Kind() == types.KindLiteralString
	case "number":
		return isPrimitiveKind(r, types.KindNumber) || r.Kind() == types.KindLiteralNumber
	case "boolean":
		return isPrimitiveKind(r, types.KindBoolean) || r.Kind() == types.KindLiteralBoolean
	case "bigint":
		return isPrimitiveKind(r, types.KindBigInt) || r.Kind() == types.KindLiteralBigInt
	case "symbol":
		return r.Kind() == types.KindSymbol || r.Kind() == types.KindUniqueSymbol
	case "undefined":
		return r.Kind() == types.KindUndefined
	case "object":
		return r.Kind() == types.KindNull || r.Kind() == types.KindRecord || r.Kind() == types.KindInstance ||
			r.Kind() == types.KindArray || r.Kind() == types.KindBuiltinContainer
	case "function":
		return r.Kind() == types.KindFunction || r.Kind() == types.KindOverloadedFunction
	default:
		return false
	}
}

func (c *Checker) narrowNullishEquality(bin *ast.BinaryExpression, keep bool) (guardSet, bool) {
	var target ast.Expression
	var isNullLit, isUndefinedLit bool
	switch {
	case isNullOrUndefinedLiteral(bin.Right):
		target = bin.Left
		isNullLit, isUndefinedLit = literalNullish(bin.Right)
	case isNullOrUndefinedLiteral(bin.Left):
		target = bin.Right
		isNullLit, isUndefinedLit = literalNullish(bin.Left)
	default:
		return nil, false
	}
	path, ok := pathOf(target)
	if !ok {
		return nil, false
	}
	loose := bin.Operator == "==" || bin.Operator == "!="
	match := func(m types.TypeInfo) bool {
		r := types.Resolve(m)
		if loose {
			return r.Kind() == types.KindNull || r.Kind() == types.KindUndefined
		}
		if isNullLit {
			return r.Kind() == types.KindNull
		}
		if isUndefinedLit {
			return r.Kind() == types.KindUndefined
		}
		return false
	}
	return guardSet{path: filterByKeep(keep, match)}, true
}

func isNullOrUndefinedLiteral(e ast.Expression) bool {
	switch e.(type) {
	case *ast.NullLiteral, *ast.UndefinedLiteral:
		return true
	default:
		return false
	}
}

func literalNullish(e ast.Expression) (isNull, isUndefined bool) {
	switch e.(type) {
	case *ast.NullLiteral:
		return true, false
	case *ast.UndefinedLiteral:
		return false, true
	default:
		return false, false
	}
}

// narrowDiscriminant handles `obj.tag === "literal"`: it narrows obj's
// own path to the subset of its union members whose `tag` property type
// is exactly the compared literal (spec.md's discriminated-union
// narrowing, S1).
func (c *Checker) narrowDiscriminant(bin *ast.BinaryExpression, keep bool) (guardSet, bool) {
	member, lit := matchMemberLiteralPair(bin.Left, bin.Right)
	if member == nil {
		member, lit = matchMemberLiteralPair(bin.Right, bin.Left)
	}
	if member == nil || member.Computed {
		return nil, false
	}
	prop, ok := member.Property.(*ast.Identifier)
	if !ok {
		return nil, false
	}
	basePath, ok := pathOf(member.Object)
	if !ok {
		return nil, false
	}
	litType := c.Types.GetType(lit)
	if litType == nil {
		return nil, false
	}
	propName := prop.Name
	match := func(m types.TypeInfo) bool {
		pt, ok := propertyTypeOf(m, propName)
		if !ok {
			return true // members without the discriminant stay ambiguous, not excluded
		}
		return types.Resolve(pt).Equals(types.Resolve(litType))
	}
	return guardSet{basePath: filterByKeep(keep, match)}, true
}

func matchMemberLiteralPair(a, b ast.Expression) (*ast.MemberExpression, ast.Expression) {
	m, ok := a.(*ast.MemberExpression)
	if !ok {
		return nil, nil
	}
	switch b.(type) {
	case *ast.StringLiteral, *ast.NumericLiteral, *ast.BooleanLiteral:
		return m, b
	default:
		return nil, nil
	}
}

func propertyTypeOf(t types.TypeInfo, name string) (types.TypeInfo, bool) {
	switch v := types.Resolve(t).(type) {
	case *types.Record:
		if p, ok := v.Property(name); ok {
			return p.Type, true
		}
	case *types.Instance:
		if v.Class == nil {
			return nil, false
		}
		if _, field, method, accessor, ok := v.Class.Member(name); ok {
			switch {
			case field != nil:
				return field.Type, true
			case method != nil:
				return method.Signature, true
			case accessor != nil:
				return accessor.Type, true
			}
		}
	case *types.InterfaceType:
		props, methods := v.AllMembers()
		if p, ok := props[name]; ok {
			return p.Type, true
		}
		if m, ok := methods[name]; ok {
			return m, true
		}
	case *types.Namespace:
		if m, ok := v.Members[name]; ok {
			return m, true
		}
	case *types.EnumType:
		if m, ok := v.Member(name); ok {
			return m, true
		}
	}
	return nil, false
}

// narrowLiteralEquality handles the degenerate but common `x === 5` /
// `x === "a"` form where x itself (not a member of it) is compared.
func (c *Checker) narrowLiteralEquality(bin *ast.BinaryExpression, keep bool) (guardSet, bool) {
	var target, litExpr ast.Expression
	if isLiteralExpr(bin.Right) {
		target, litExpr = bin.Left, bin.Right
	} else if isLiteralExpr(bin.Left) {
		target, litExpr = bin.Right, bin.Left
	} else {
		return nil, false
	}
	path, ok := pathOf(target)
	if !ok {
		return nil, false
	}
	litType := c.Types.GetType(litExpr)
	if litType == nil {
		return nil, false
	}
	match := func(m types.TypeInfo) bool { return types.Resolve(m).Equals(types.Resolve(litType)) }
	return guardSet{path: filterByKeep(keep, match)}, true
}

func isLiteralExpr(e ast.Expression) bool {
	switch e.(type) {
	case *ast.StringLiteral, *ast.NumericLiteral, *ast.BooleanLiteral, *ast.BigIntLiteral, *ast.NullLiteral, *ast.UndefinedLiteral:
		return true
	default:
		return false
	}
}

func (c *Checker) narrowInstanceof(bin *ast.BinaryExpression, positive bool) (guardSet, bool) {
	path, ok := pathOf(bin.Left)
	if !ok {
		return nil, false
	}
	rightType := c.Types.GetType(bin.Right)
	cls, ok := types.Resolve(rightType).(*types.ClassType)
	if !ok {
		return nil, false
	}
	match := func(m types.TypeInfo) bool {
		inst, ok := types.Resolve(m).(*types.Instance)
		return ok && inst.Class != nil && inst.Class.IsSubclassOf(cls)
	}
	keep := positive
	op := filterByKeep(keep, match)
	if positive {
		// If the current narrowed type doesn't already describe an
		// Instance of cls (e.g. it was `unknown` or an interface), fall
		// back to asserting the Instance directly rather than filtering
		// a union that has no such member.
		inner := op
		op = func(base types.TypeInfo) types.TypeInfo {
			result := inner(base)
			if isNever(result) {
				return &types.Instance{Class: cls}
			}
			return result
		}
	}
	return guardSet{path: op}, true
}

func (c *Checker) narrowIn(bin *ast.BinaryExpression, positive bool) (guardSet, bool) {
	lit, ok := bin.Left.(*ast.StringLiteral)
	if !ok {
		return nil, false
	}
	path, ok := pathOf(bin.Right)
	if !ok {
		return nil, false
	}
	match := func(m types.TypeInfo) bool {
		_, ok := propertyTypeOf(m, lit.Value)
		return ok
	}
	return guardSet{path: filterByKeep(positive, match)}, true
}

// filterByKeep builds a narrowOp that, for a Union base, keeps only
// members satisfying match (keep==true) or only members failing it
// (keep==false); for a non-Union base it passes through unchanged
// unless the base itself decides the match, in which case it collapses
// to never.
func filterByKeep(keep bool, match func(types.TypeInfo) bool) narrowOp {
	return func(base types.TypeInfo) types.TypeInfo {
		resolved := types.Resolve(base)
		if u, ok := resolved.(*types.Union); ok {
			var kept []types.TypeInfo
			for _, m := range u.Members {
				if match(m) == keep {
					kept = append(kept, m)
				}
			}
			if len(kept) == 0 {
				return types.Never
			}
			return types.NewUnion(kept...)
		}
		if match(resolved) == keep {
			return base
		}
		return types.Never
	}
}

// keepTruthy narrows base by removing null, undefined, and the literal
// falsy members `false`, `0`, `""` from a union (spec.md's truthiness
// guard).
func keepTruthy(base types.TypeInfo) types.TypeInfo {
	return filterByKeep(false, isFalsyMember)(base)
}

// keepFalsy is keepTruthy's complement, used for the else/negative arm.
func keepFalsy(base types.TypeInfo) types.TypeInfo {
	return filterByKeep(true, isFalsyMember)(base)
}

func isFalsyMember(m types.TypeInfo) bool {
	switch v := types.Resolve(m).(type) {
	case *types.Primitive:
		return v.Kind() == types.KindNull || v.Kind() == types.KindUndefined || v.Kind() == types.KindVoid
	case *types.LiteralString:
		return v.Value == ""
	case *types.LiteralNumber:
		return v.Value == 0
	case *types.LiteralBoolean:
		return !v.Value
	default:
		return false
	}
}
