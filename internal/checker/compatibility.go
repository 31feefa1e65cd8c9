package checker

import "github.com/cwbudde/go-tscheck/internal/types"

// compatKey is the memoization key for Assignable: a cache of
// (expected, actual) pairs, grounded on spec.md §4.1's requirement
// that a second call to assignable(E, A) return the same value without
// recursion. The cache belongs to one Checker and so lasts for one
// module's check; it is not shared across the modules of a Session.
type compatKey struct {
	expected types.TypeInfo
	actual   types.TypeInfo
}

// Assignable implements spec.md §4.1's assignable(expected, actual)
// predicate: the single relation underlying every assignment, return,
// argument-passing, and narrowing decision in the checker. Rules are
// tried in priority order; the first matching rule decides.
func (c *Checker) Assignable(expected, actual types.TypeInfo) bool {
	if expected == nil || actual == nil {
		return false
	}
	key := compatKey{expected, actual}
	if v, ok := c.compatCache[key]; ok {
		return v
	}
	// Seed the in-flight pair as "assignable" before recursing so that
	// mutually-recursive interfaces/generics (A references B which
	// references A) terminate rather than looping forever; a false
	// result gets corrected once the real computation finishes.
	c.compatCache[key] = true
	result := c.assignableUncached(expected, actual)
	c.compatCache[key] = result
	return result
}

func (c *Checker) assignableUncached(expected, actual types.TypeInfo) bool {
	expected = types.Resolve(expected)
	actual = types.Resolve(actual)

	// 1. any absorbs everything, either side.
	if isAny(expected) || isAny(actual) {
		return true
	}

	// 2/3/4. TypeParameter handling.
	if etp, ok := expected.(*types.TypeParameter); ok {
		if atp, ok := actual.(*types.TypeParameter); ok {
			return etp == atp
		}
		if etp.Constraint != nil {
			return c.Assignable(etp.Constraint, actual)
		}
		return true
	}
	if atp, ok := actual.(*types.TypeParameter); ok {
		if atp.Constraint != nil {
			return c.Assignable(expected, atp.Constraint)
		}
		return false
	}

	// 5/6. never.
	if isNever(actual) {
		return true
	}
	if isNever(expected) {
		return isNever(actual)
	}

	// 7/8. unknown.
	if isUnknown(expected) {
		return true
	}
	if isUnknown(actual) {
		return isUnknown(expected) || isAny(expected)
	}

	// 9. null.
	if isNull(actual) {
		if isNull(expected) {
			return true
		}
		if u, ok := expected.(*types.Union); ok {
			return u.Has(types.Null)
		}
		return false
	}

	// 10/11. literal handling: an actual literal is assignable to an
	// identical expected literal, or to whatever primitive it widens to.
	if isLiteral(actual) {
		if isLiteral(expected) {
			return expected.Equals(actual)
		}
		if widened := widen(actual); widened != nil && c.Assignable(expected, widened) {
			return true
		}
	}

	// 12/13/14. Union as expected/actual.
	if eu, ok := expected.(*types.Union); ok {
		if au, ok := actual.(*types.Union); ok {
			for _, am := range au.Members {
				if !c.assignableToAny(eu.Members, am) {
					return false
				}
			}
			return true
		}
		return c.assignableToAny(eu.Members, actual)
	}
	if au, ok := actual.(*types.Union); ok {
		for _, am := range au.Members {
			if !c.Assignable(expected, am) {
				return false
			}
		}
		return true
	}

	// 15/16. Intersection as expected/actual.
	if ei, ok := expected.(*types.Intersection); ok {
		for _, em := range ei.Members {
			if !c.Assignable(em, actual) {
				return false
			}
		}
		return true
	}
	if ai, ok := actual.(*types.Intersection); ok {
		for _, am := range ai.Members {
			if c.Assignable(expected, am) {
				return true
			}
		}
		return false
	}

	// 17. Enum compatibility.
	if em, ok := expected.(*types.EnumMemberType); ok {
		if am, ok := actual.(*types.EnumMemberType); ok {
			return em.Enum == am.Enum && em.Name == am.Name
		}
	}
	if ee, ok := expected.(*types.EnumType); ok {
		return c.assignableEnum(ee, actual, true)
	}
	if ae, ok := actual.(*types.EnumType); ok {
		return c.assignableEnum(ae, expected, false)
	}
	if am, ok := actual.(*types.EnumMemberType); ok {
		return c.assignableEnum(am.Enum, expected, false)
	}

	// 18. Primitive equality.
	if ep, ok := expected.(*types.Primitive); ok {
		if ap, ok := actual.(*types.Primitive); ok {
			return ep.Kind() == ap.Kind()
		}
		return false
	}

	// 19. Promise<A> to Promise<B>, covariant.
	if ebc, ok := expected.(*types.BuiltinContainer); ok {
		if abc, ok := actual.(*types.BuiltinContainer); ok {
			return c.assignableBuiltinContainer(ebc, abc)
		}
		return false
	}

	// 20. Instance <-> Instance: nominal, walk superclass chain; or
	// same GenericClass with pairwise-assignable type args.
	if ei, ok := expected.(*types.Instance); ok {
		if ai, ok := actual.(*types.Instance); ok {
			return c.assignableInstance(ei, ai)
		}
		// An Instance expected type also accepts a structurally
		// compatible Record (duck typing a class's public surface).
		if ar, ok := actual.(*types.Record); ok {
			return c.assignableClassAsStructural(ei.Class, ar)
		}
		return false
	}

	// 21/22. Interface as expected: structural.
	if eiface, ok := expected.(*types.InterfaceType); ok {
		return c.assignableToInterface(eiface, actual)
	}

	// 23. Array <-> Array, covariant.
	if ea, ok := expected.(*types.Array); ok {
		if aa, ok := actual.(*types.Array); ok {
			return c.Assignable(ea.Element, aa.Element)
		}
		if at, ok := actual.(*types.Tuple); ok {
			return c.assignableTupleToArray(ea, at)
		}
		return false
	}

	// 24. Record <-> Record: structural.
	if er, ok := expected.(*types.Record); ok {
		return c.assignableToRecord(er, actual)
	}

	// 25/26/27. Tuple handling.
	if et, ok := expected.(*types.Tuple); ok {
		if at, ok := actual.(*types.Tuple); ok {
			return c.assignableTupleToTuple(et, at)
		}
		if aa, ok := actual.(*types.Array); ok {
			return c.assignableArrayToTuple(et, aa)
		}
		return false
	}

	// 28. Function <-> Function.
	if ef, ok := expected.(*types.Function); ok {
		if af, ok := actual.(*types.Function); ok {
			return c.assignableFunction(ef, af)
		}
		if aof, ok := actual.(*types.OverloadedFunction); ok {
			for _, sig := range aof.Signatures {
				if c.assignableFunction(ef, sig) {
					return true
				}
			}
			return false
		}
		return false
	}
	if eof, ok := expected.(*types.OverloadedFunction); ok {
		if af, ok := actual.(*types.Function); ok {
			for _, sig := range eof.Signatures {
				if c.assignableFunction(sig, af) {
					return true
				}
			}
			return false
		}
	}

	if ens, ok := expected.(*types.Namespace); ok {
		if ans, ok := actual.(*types.Namespace); ok {
			return ens == ans || ens.Name == ans.Name
		}
	}

	// Nothing else matches.
	return false
}

func (c *Checker) assignableToAny(candidates []types.TypeInfo, actual types.TypeInfo) bool {
	for _, e := range candidates {
		if c.Assignable(e, actual) {
			return true
		}
	}
	return false
}

func (c *Checker) assignableEnum(enum *types.EnumType, other types.TypeInfo, expectedIsEnum bool) bool {
	if oe, ok := other.(*types.EnumType); ok {
		return enum == oe || enum.Name == oe.Name
	}
	if om, ok := other.(*types.EnumMemberType); ok {
		return om.Enum == enum || om.Enum.Name == enum.Name
	}
	kind := enumValueKind(enum)
	switch kind {
	case "numeric":
		return isPrimitiveKind(other, types.KindNumber)
	case "string":
		return isPrimitiveKind(other, types.KindString)
	default: // heterogeneous
		return isPrimitiveKind(other, types.KindNumber) || isPrimitiveKind(other, types.KindString)
	}
}

func enumValueKind(e *types.EnumType) string {
	sawString, sawNumber := false, false
	for _, m := range e.Members {
		switch types.Resolve(m.Value).Kind() {
		case types.KindLiteralString:
			sawString = true
		case types.KindLiteralNumber:
			sawNumber = true
		}
	}
	switch {
	case sawString && sawNumber:
		return "heterogeneous"
	case sawString:
		return "string"
	default:
		return "numeric"
	}
}

func (c *Checker) assignableBuiltinContainer(expected, actual *types.BuiltinContainer) bool {
	if expected.Name != actual.Name {
		return false
	}
	if len(expected.Args) != len(actual.Args) {
		return false
	}
	for i := range expected.Args {
		if !c.Assignable(expected.Args[i], actual.Args[i]) {
			return false
		}
	}
	return true
}

func (c *Checker) assignableInstance(expected, actual *types.Instance) bool {
	if expected.Class == nil || actual.Class == nil {
		return false
	}
	if !actual.Class.IsSubclassOf(expected.Class) && actual.Class != expected.Class {
		return false
	}
	if len(expected.Args) == 0 {
		return true
	}
	if len(expected.Args) != len(actual.Args) {
		return false
	}
	positions := c.variancePositions(expected.Class.Name, expected.Class.TypeParams)
	for i := range expected.Args {
		if !c.assignableByVariance(positions[i], expected.Args[i], actual.Args[i]) {
			return false
		}
	}
	return true
}

func (c *Checker) assignableByVariance(v variance, expected, actual types.TypeInfo) bool {
	switch v {
	case varianceCovariant:
		return c.Assignable(expected, actual)
	case varianceContravariant:
		return c.Assignable(actual, expected)
	case varianceInvariant:
		return c.Assignable(expected, actual) && c.Assignable(actual, expected)
	default: // bivariant
		return c.Assignable(expected, actual) || c.Assignable(actual, expected)
	}
}

// assignableClassAsStructural lets a Record (or an ambient builtin's
// structural shape) satisfy an Instance-typed expectation when every
// public, non-static member the class requires is present and
// assignable — used for interop with the Record-shaped ambient
// builtins (internal/builtins) that have no class identity to match
// nominally.
func (c *Checker) assignableClassAsStructural(class *types.ClassType, actual *types.Record) bool {
	for cls := class; cls != nil; cls = cls.Parent {
		for name, field := range cls.Fields {
			if field.Static {
				continue
			}
			if field.Visibility != types.Public {
				return false
			}
			prop, ok := actual.Property(name)
			if !ok {
				if field.Optional {
					continue
				}
				return false
			}
			if !c.Assignable(field.Type, prop.Type) {
				return false
			}
		}
		for name, method := range cls.Methods {
			if method.Visibility != types.Public || method.Static {
				continue
			}
			prop, ok := actual.Property(name)
			if !ok {
				return false
			}
			if !c.Assignable(method.Signature, prop.Type) {
				return false
			}
		}
	}
	return true
}

func (c *Checker) assignableToInterface(iface *types.InterfaceType, actual types.TypeInfo) bool {
	props, methods := iface.AllMembers()
	switch a := actual.(type) {
	case *types.Record:
		for name, p := range props {
			ap, ok := a.Property(name)
			if !ok {
				if p.Optional {
					continue
				}
				return false
			}
			if !c.Assignable(p.Type, ap.Type) {
				return false
			}
		}
		for name, m := range methods {
			ap, ok := a.Property(name)
			if !ok {
				return false
			}
			if !c.Assignable(m, ap.Type) {
				return false
			}
		}
		return true
	case *types.Instance:
		if a.Class == nil {
			return false
		}
		return a.Class.ImplementsInterface(iface) || c.classSatisfiesInterface(a.Class, iface)
	case *types.InterfaceType:
		aprops, amethods := a.AllMembers()
		for name, p := range props {
			ap, ok := aprops[name]
			if !ok {
				if p.Optional {
					continue
				}
				return false
			}
			if !c.Assignable(p.Type, ap.Type) {
				return false
			}
		}
		for name, m := range methods {
			am, ok := amethods[name]
			if !ok {
				return false
			}
			if !c.Assignable(m, am) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (c *Checker) classSatisfiesInterface(class *types.ClassType, iface *types.InterfaceType) bool {
	props, methods := iface.AllMembers()
	for name, p := range props {
		_, field, _, _, ok := class.Member(name)
		if !ok || field == nil {
			if p.Optional {
				continue
			}
			return false
		}
		if !c.Assignable(p.Type, field.Type) {
			return false
		}
	}
	for name, m := range methods {
		_, _, method, _, ok := class.Member(name)
		if !ok || method == nil {
			return false
		}
		if !c.Assignable(m, method.Signature) {
			return false
		}
	}
	return true
}

func (c *Checker) assignableToRecord(expected *types.Record, actual types.TypeInfo) bool {
	switch a := actual.(type) {
	case *types.Record:
		for _, ep := range expected.Properties {
			ap, ok := a.Property(ep.Name)
			if !ok {
				if ep.Optional {
					continue
				}
				return false
			}
			if !c.Assignable(ep.Type, ap.Type) {
				return false
			}
		}
		return true
	case *types.Instance:
		if a.Class == nil {
			return false
		}
		for _, ep := range expected.Properties {
			_, field, method, accessor, ok := a.Class.Member(ep.Name)
			switch {
			case ok && field != nil:
				if !c.Assignable(ep.Type, field.Type) {
					return false
				}
			case ok && method != nil:
				if !c.Assignable(ep.Type, method.Signature) {
					return false
				}
			case ok && accessor != nil:
				if !c.Assignable(ep.Type, accessor.Type) {
					return false
				}
			default:
				if ep.Optional {
					continue
				}
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (c *Checker) assignableTupleToTuple(expected, actual *types.Tuple) bool {
	if len(actual.Elements) < expected.RequiredCount() {
		return false
	}
	hasRest := expected.HasRest()
	if !hasRest && len(actual.Elements) > len(expected.Elements) {
		return false
	}
	overlap := len(expected.Elements)
	if hasRest {
		overlap--
	}
	for i := 0; i < overlap && i < len(actual.Elements); i++ {
		if !c.Assignable(expected.Elements[i].Type, actual.Elements[i].Type) {
			return false
		}
	}
	if hasRest {
		restType := expected.Elements[len(expected.Elements)-1].Type
		for i := overlap; i < len(actual.Elements); i++ {
			if !c.Assignable(restType, actual.Elements[i].Type) {
				return false
			}
		}
	}
	return true
}

func (c *Checker) assignableTupleToArray(expected *types.Array, actual *types.Tuple) bool {
	for _, el := range actual.Elements {
		if !c.Assignable(expected.Element, el.Type) {
			return false
		}
	}
	return true
}

func (c *Checker) assignableArrayToTuple(expected *types.Tuple, actual *types.Array) bool {
	if !expected.HasRest() {
		allOptional := true
		for _, el := range expected.Elements {
			if !el.Optional {
				allOptional = false
				break
			}
		}
		if !allOptional {
			return false
		}
	}
	for _, el := range expected.Elements {
		if !c.Assignable(el.Type, actual.Element) {
			return false
		}
	}
	return true
}

func (c *Checker) assignableFunction(expected, actual *types.Function) bool {
	if len(actual.Params) > len(expected.Params) {
		return false
	}
	for i, ap := range actual.Params {
		ep := expected.Params[i]
		// Contravariant: the expected parameter must be assignable to
		// the actual one, so a callback declared to accept a wider
		// type can be passed where a narrower one is expected.
		if !c.Assignable(ap.Type, ep.Type) {
			return false
		}
	}
	return c.Assignable(expected.ReturnType, actual.ReturnType)
}

func isAny(t types.TypeInfo) bool     { return t != nil && t.Kind() == types.KindAny }
func isNever(t types.TypeInfo) bool   { return t != nil && t.Kind() == types.KindNever }
func isUnknown(t types.TypeInfo) bool { return t != nil && t.Kind() == types.KindUnknown }
func isNull(t types.TypeInfo) bool    { return t != nil && t.Kind() == types.KindNull }

func isPrimitiveKind(t types.TypeInfo, kind types.Kind) bool {
	t = types.Resolve(t)
	if p, ok := t.(*types.Primitive); ok {
		return p.Kind() == kind
	}
	return false
}

// isLiteral reports whether t is one of the four singleton literal
// TypeInfo variants.
func isLiteral(t types.TypeInfo) bool {
	switch t.(type) {
	case *types.LiteralString, *types.LiteralNumber, *types.LiteralBoolean, *types.LiteralBigInt:
		return true
	default:
		return false
	}
}

// widen returns the primitive a literal type widens to, or nil if lit
// is not a literal.
func widen(lit types.TypeInfo) types.TypeInfo {
	switch lit.(type) {
	case *types.LiteralString:
		return types.String
	case *types.LiteralNumber:
		return types.Number
	case *types.LiteralBoolean:
		return types.Boolean
	case *types.LiteralBigInt:
		return types.BigIntT
	default:
		return nil
	}
}
