package types

import (
	"sort"
	"strings"
)

// Union is a canonicalized sum type. Canonicalization (flatten nested
// unions, drop duplicate members by structural equality, sort by
// String() for a stable display and hash key) happens once in
// NewUnion rather than on every comparison, so Equals can stay a
// simple pairwise walk (spec.md §4.3: union member order must not
// affect assignability or display).
type Union struct{ Members []TypeInfo }

// NewUnion builds a canonical Union from a set of member types,
// flattening nested unions and deduping structurally-equal members. If
// after flattening and deduping only one member remains, that member
// is returned directly (not wrapped in a Union) — `A | A` is just `A`.
func NewUnion(members ...TypeInfo) TypeInfo {
	flat := flattenUnion(members)
	deduped := dedupeTypes(flat)
	if len(deduped) == 1 {
		return deduped[0]
	}
	sortTypes(deduped)
	return &Union{Members: deduped}
}

func flattenUnion(members []TypeInfo) []TypeInfo {
	var out []TypeInfo
	for _, m := range members {
		if u, ok := m.(*Union); ok {
			out = append(out, flattenUnion(u.Members)...)
		} else {
			out = append(out, m)
		}
	}
	return out
}

func dedupeTypes(in []TypeInfo) []TypeInfo {
	var out []TypeInfo
	for _, t := range in {
		dup := false
		for _, seen := range out {
			if seen.Equals(t) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

func sortTypes(ts []TypeInfo) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].String() < ts[j].String() })
}

func (u *Union) Kind() Kind { return KindUnion }

func (u *Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		s := m.String()
		if m.Kind() == KindFunction || m.Kind() == KindIntersection {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, " | ")
}

func (u *Union) Equals(other TypeInfo) bool {
	o, ok := other.(*Union)
	if !ok || len(o.Members) != len(u.Members) {
		return false
	}
	for i, m := range u.Members {
		if !m.Equals(o.Members[i]) {
			return false
		}
	}
	return true
}

// Has reports whether t structurally matches one of u's members.
func (u *Union) Has(t TypeInfo) bool {
	for _, m := range u.Members {
		if m.Equals(t) {
			return true
		}
	}
	return false
}

// Intersection is a canonicalized product type: `A & B`. Like Union,
// canonicalization happens once at construction (spec.md §4.3).
type Intersection struct{ Members []TypeInfo }

// NewIntersection builds a canonical Intersection, flattening nested
// intersections and deduping. A single remaining member after dedup is
// returned unwrapped.
func NewIntersection(members ...TypeInfo) TypeInfo {
	var flat []TypeInfo
	for _, m := range members {
		if it, ok := m.(*Intersection); ok {
			flat = append(flat, it.Members...)
		} else {
			flat = append(flat, m)
		}
	}
	deduped := dedupeTypes(flat)
	if len(deduped) == 1 {
		return deduped[0]
	}
	sortTypes(deduped)
	return &Intersection{Members: deduped}
}

func (i *Intersection) Kind() Kind { return KindIntersection }

func (i *Intersection) String() string {
	parts := make([]string, len(i.Members))
	for idx, m := range i.Members {
		s := m.String()
		if m.Kind() == KindFunction || m.Kind() == KindUnion {
			s = "(" + s + ")"
		}
		parts[idx] = s
	}
	return strings.Join(parts, " & ")
}

func (i *Intersection) Equals(other TypeInfo) bool {
	o, ok := other.(*Intersection)
	if !ok || len(o.Members) != len(i.Members) {
		return false
	}
	for idx, m := range i.Members {
		if !m.Equals(o.Members[idx]) {
			return false
		}
	}
	return true
}

// TypeAlias is a named alternate spelling for another TypeInfo,
// grounded directly on the teacher's types.TypeAlias{Name,
// AliasedType} (built for `tclassAlias := &types.TypeAlias{Name:
// "TClass", AliasedType: types.NewClassOfType(objectClass)}` in
// analyzer.go). Resolution through an alias is transparent: Equals
// delegates to the aliased type so `type ID = string` and `string` are
// interchangeable everywhere compatibility is checked.
type TypeAlias struct {
	Name        string
	TypeParams  []*TypeParameter
	AliasedType TypeInfo
}

func (a *TypeAlias) Kind() Kind     { return a.AliasedType.Kind() }
func (a *TypeAlias) String() string { return a.Name }
func (a *TypeAlias) Equals(other TypeInfo) bool {
	if alias, ok := other.(*TypeAlias); ok {
		return a.AliasedType.Equals(alias.AliasedType)
	}
	return a.AliasedType.Equals(other)
}

// Resolve unwraps a chain of TypeAlias values, and an InstantiatedGeneric's
// wrapper around its substituted Result, down to the first TypeInfo that
// is neither — so every caller that structurally switches on a concrete
// TypeInfo variant (Assignable, narrowing, variance inference) sees
// `Box<string>` as the Instance it actually is, not the display wrapper
// that remembers Box and string for String()/Equals().
func Resolve(t TypeInfo) TypeInfo {
	for {
		switch v := t.(type) {
		case *TypeAlias:
			t = v.AliasedType
		case *InstantiatedGeneric:
			t = v.Result
		default:
			return t
		}
	}
}
