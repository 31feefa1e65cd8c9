package types

import "strings"

// TypeParameter is the type bound to a generic declaration's own type
// variable (the `T` in `class Box<T>`), used both as a placeholder
// inside the unstantiated declaration's member signatures and, once
// substituted by the instantiation engine, replaced structurally
// throughout those signatures (spec.md §4.5).
type TypeParameter struct {
	Name       string
	Constraint TypeInfo // nil if unconstrained
	Default    TypeInfo // nil if no default
}

func (t *TypeParameter) Kind() Kind     { return KindTypeParameter }
func (t *TypeParameter) String() string { return t.Name }
func (t *TypeParameter) Equals(other TypeInfo) bool { return other == TypeInfo(t) }

// GenericClass is the un-instantiated type bound to a generic class
// declaration's name — `Box` as opposed to `Box<string>`. Type
// arguments are applied by Instantiate, which substitutes TypeParams
// throughout a structural copy of Body and returns an Instance.
type GenericClass struct {
	Name       string
	TypeParams []*TypeParameter
	Body       *ClassType // declares members in terms of TypeParams
}

func (g *GenericClass) Kind() Kind     { return KindGenericClass }
func (g *GenericClass) String() string { return g.Name }
func (g *GenericClass) Equals(other TypeInfo) bool { return other == TypeInfo(g) }

// GenericInterface is the un-instantiated counterpart for interfaces.
type GenericInterface struct {
	Name       string
	TypeParams []*TypeParameter
	Body       *InterfaceType
}

func (g *GenericInterface) Kind() Kind     { return KindGenericInterface }
func (g *GenericInterface) String() string { return g.Name }
func (g *GenericInterface) Equals(other TypeInfo) bool { return other == TypeInfo(g) }

// GenericFunction is the un-instantiated counterpart for a function or
// method declared with its own type parameter list, as opposed to one
// inherited from an enclosing generic class.
type GenericFunction struct {
	Name       string
	TypeParams []*TypeParameter
	Body       *Function
}

func (g *GenericFunction) Kind() Kind     { return KindGenericFunction }
func (g *GenericFunction) String() string { return g.Name }
func (g *GenericFunction) Equals(other TypeInfo) bool { return other == TypeInfo(g) }

// InstantiatedGeneric records which generic declaration an Instance (or
// instantiated Function) came from and with which type arguments, so
// the checker can report `Box<string>` rather than a structurally
// expanded dump, and so two instantiations of the same generic with
// equal arguments compare equal without re-walking their bodies.
type InstantiatedGeneric struct {
	Origin TypeInfo // *GenericClass, *GenericInterface, or *GenericFunction
	Args   []TypeInfo
	Result TypeInfo // the substituted Instance/InterfaceType/Function
}

func (i *InstantiatedGeneric) Kind() Kind { return i.Result.Kind() }

func (i *InstantiatedGeneric) String() string {
	name := i.Origin.String()
	parts := make([]string, len(i.Args))
	for idx, a := range i.Args {
		parts[idx] = a.String()
	}
	return name + "<" + strings.Join(parts, ", ") + ">"
}

func (i *InstantiatedGeneric) Equals(other TypeInfo) bool {
	o, ok := other.(*InstantiatedGeneric)
	if !ok {
		return i.Result.Equals(other)
	}
	if o.Origin != i.Origin || len(o.Args) != len(i.Args) {
		return false
	}
	for idx, a := range i.Args {
		if !a.Equals(o.Args[idx]) {
			return false
		}
	}
	return true
}

// Substitute walks t, replacing every TypeParameter found in bindings
// with its bound TypeInfo. Unbound TypeParameters (e.g. one belonging
// to an enclosing generic not being instantiated here) pass through
// unchanged. This is the structural-copy step Instantiate relies on to
// turn a GenericClass/GenericInterface/GenericFunction body into a
// concrete Instance/InterfaceType/Function.
func Substitute(t TypeInfo, bindings map[*TypeParameter]TypeInfo) TypeInfo {
	switch v := t.(type) {
	case *TypeParameter:
		if bound, ok := bindings[v]; ok {
			return bound
		}
		return v
	case *Array:
		return &Array{Element: Substitute(v.Element, bindings)}
	case *Tuple:
		elems := make([]TupleElementInfo, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = TupleElementInfo{Label: e.Label, Type: Substitute(e.Type, bindings), Optional: e.Optional, Rest: e.Rest}
		}
		return &Tuple{Elements: elems}
	case *Record:
		props := make([]PropertyInfo, len(v.Properties))
		for i, p := range v.Properties {
			props[i] = PropertyInfo{Name: p.Name, Type: Substitute(p.Type, bindings), Optional: p.Optional, Readonly: p.Readonly}
		}
		idx := make([]IndexSignatureInfo, len(v.IndexSignatures))
		for i, s := range v.IndexSignatures {
			idx[i] = IndexSignatureInfo{KeyKind: s.KeyKind, Value: Substitute(s.Value, bindings)}
		}
		return &Record{Properties: props, IndexSignatures: idx}
	case *Function:
		params := make([]ParameterInfo, len(v.Params))
		for i, p := range v.Params {
			params[i] = ParameterInfo{Name: p.Name, Type: Substitute(p.Type, bindings), Optional: p.Optional, Rest: p.Rest, Default: p.Default}
		}
		return &Function{TypeParams: v.TypeParams, Params: params, ReturnType: Substitute(v.ReturnType, bindings), ThisType: v.ThisType}
	case *Union:
		members := make([]TypeInfo, len(v.Members))
		for i, m := range v.Members {
			members[i] = Substitute(m, bindings)
		}
		return NewUnion(members...)
	case *Intersection:
		members := make([]TypeInfo, len(v.Members))
		for i, m := range v.Members {
			members[i] = Substitute(m, bindings)
		}
		return NewIntersection(members...)
	case *Instance:
		args := make([]TypeInfo, len(v.Args))
		for i, a := range v.Args {
			args[i] = Substitute(a, bindings)
		}
		return &Instance{Class: v.Class, Args: args}
	default:
		return t
	}
}

// InstantiateClass pairs args with g's declaration. The class body
// itself is left unsubstituted: Instance carries both Class and Args,
// and member lookups (internal/checker/generics.go) apply Substitute
// lazily at access time against Class.TypeParams — this avoids copying
// every member of every class on each `new Box<string>()` when most
// programs only ever access a handful of a generic class's members.
func InstantiateClass(g *GenericClass, args []TypeInfo) *InstantiatedGeneric {
	filled := fillDefaults(g.TypeParams, args)
	inst := &Instance{Class: g.Body, Args: filled}
	return &InstantiatedGeneric{Origin: g, Args: filled, Result: inst}
}

func fillDefaults(params []*TypeParameter, args []TypeInfo) []TypeInfo {
	out := make([]TypeInfo, len(params))
	for i, tp := range params {
		switch {
		case i < len(args):
			out[i] = args[i]
		case tp.Default != nil:
			out[i] = tp.Default
		default:
			out[i] = Any
		}
	}
	return out
}

// InstantiateInterface substitutes args for g.TypeParams throughout
// g.Body's own properties and methods (inherited members are picked up
// through AllMembers on the resulting copy's Extends list, left
// unsubstituted since a parent interface is only ever referenced with
// its own, separately-resolved type arguments).
func InstantiateInterface(g *GenericInterface, args []TypeInfo) *InstantiatedGeneric {
	filled := fillDefaults(g.TypeParams, args)
	bindings := make(map[*TypeParameter]TypeInfo, len(g.TypeParams))
	for i, tp := range g.TypeParams {
		bindings[tp] = filled[i]
	}
	out := &InterfaceType{
		Name:       g.Name,
		Extends:    g.Body.Extends,
		Properties: make(map[string]PropertyInfo, len(g.Body.Properties)),
		Methods:    make(map[string]*Function, len(g.Body.Methods)),
	}
	for k, p := range g.Body.Properties {
		out.Properties[k] = PropertyInfo{Name: p.Name, Type: Substitute(p.Type, bindings), Optional: p.Optional, Readonly: p.Readonly}
	}
	for k, m := range g.Body.Methods {
		out.Methods[k] = Substitute(m, bindings).(*Function)
	}
	out.Freeze()
	return &InstantiatedGeneric{Origin: g, Args: filled, Result: out}
}

// InstantiateFunction substitutes args for g.TypeParams throughout
// g.Body and returns the resulting concrete Function.
func InstantiateFunction(g *GenericFunction, args []TypeInfo) *InstantiatedGeneric {
	filled := fillDefaults(g.TypeParams, args)
	bindings := make(map[*TypeParameter]TypeInfo, len(g.TypeParams))
	for i, tp := range g.TypeParams {
		bindings[tp] = filled[i]
	}
	result := Substitute(g.Body, bindings).(*Function)
	return &InstantiatedGeneric{Origin: g, Args: filled, Result: result}
}
