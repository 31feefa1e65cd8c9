package checker

import "github.com/cwbudde/go-tscheck/internal/types"

// variance classifies how a generic class's type parameter appears in
// its members, deciding whether comparing Box<A> to Box<B> can fall
// back to comparing A and B directly (covariant/contravariant) or
// must require A and B be mutually assignable (invariant), per
// spec.md §9's generic-variance note.
type variance int

const (
	varianceInvariant variance = iota
	varianceCovariant
	varianceContravariant
	varianceBivariant
)

// variancePosition is the cached element type for a class's per-
// type-parameter variance table; kept as a distinct name from
// variance itself so context.go's varianceCache field reads clearly
// even though the two are the same underlying values today.
type variancePosition = variance

// variancePositions returns, for each of params (in order), the
// variance its occurrences in cls's member signatures exhibit, caching
// the result under the class's name so repeated Instance/Instance
// comparisons don't re-walk the class body.
func (c *Checker) variancePositions(className string, params []*types.TypeParameter) []variancePosition {
	if cached, ok := c.varianceCache[className]; ok {
		return cached
	}
	result := make([]variancePosition, len(params))
	for i, tp := range params {
		result[i] = c.classParamVariance(className, tp)
	}
	c.varianceCache[className] = result
	return result
}

// classParamVariance inspects every field and method signature of the
// class named className for occurrences of tp, combining them:
//   - a field of type tp (or containing it) not marked readonly forces
//     invariance, since it is both read and written;
//   - a readonly field or a method return position is covariant;
//   - a method parameter position is contravariant.
//
// When tp appears in more than one of these roles the result is
// invariant, since no single relation (covariant or contravariant)
// would be sound for every use.
func (c *Checker) classParamVariance(className string, tp *types.TypeParameter) variancePosition {
	cls := c.lookupClassByName(className)
	if cls == nil {
		return varianceInvariant
	}
	seenCovariant, seenContravariant := false, false
	for _, f := range cls.Fields {
		if !occursIn(f.Type, tp) {
			continue
		}
		if f.Readonly {
			seenCovariant = true
		} else {
			seenCovariant, seenContravariant = true, true
		}
	}
	for _, m := range cls.Methods {
		if occursIn(m.Signature.ReturnType, tp) {
			seenCovariant = true
		}
		for _, p := range m.Signature.Params {
			if occursIn(p.Type, tp) {
				seenContravariant = true
			}
		}
	}
	for _, a := range cls.Accessors {
		if occursIn(a.Type, tp) {
			if a.Setter != nil {
				seenCovariant, seenContravariant = true, true
			} else {
				seenCovariant = true
			}
		}
	}
	switch {
	case seenCovariant && seenContravariant:
		return varianceInvariant
	case seenContravariant:
		return varianceContravariant
	case seenCovariant:
		return varianceCovariant
	default:
		return varianceBivariant
	}
}

func (c *Checker) lookupClassByName(name string) *types.ClassType {
	if v, ok := c.env.LookupValue(name); ok {
		if cls, ok := v.(*types.ClassType); ok {
			return cls
		}
	}
	return nil
}

// occursIn reports whether tp appears anywhere inside t's structure.
func occursIn(t types.TypeInfo, tp *types.TypeParameter) bool {
	switch v := types.Resolve(t).(type) {
	case *types.TypeParameter:
		return v == tp
	case *types.Array:
		return occursIn(v.Element, tp)
	case *types.Tuple:
		for _, e := range v.Elements {
			if occursIn(e.Type, tp) {
				return true
			}
		}
		return false
	case *types.Record:
		for _, p := range v.Properties {
			if occursIn(p.Type, tp) {
				return true
			}
		}
		for _, s := range v.IndexSignatures {
			if occursIn(s.Value, tp) {
				return true
			}
		}
		return false
	case *types.Function:
		if occursIn(v.ReturnType, tp) {
			return true
		}
		for _, p := range v.Params {
			if occursIn(p.Type, tp) {
				return true
			}
		}
		return false
	case *types.Union:
		for _, m := range v.Members {
			if occursIn(m, tp) {
				return true
			}
		}
		return false
	case *types.Intersection:
		for _, m := range v.Members {
			if occursIn(m, tp) {
				return true
			}
		}
		return false
	case *types.Instance:
		for _, a := range v.Args {
			if occursIn(a, tp) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
