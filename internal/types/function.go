package types

import "strings"

// ParameterInfo is one parameter of a Function signature.
type ParameterInfo struct {
	Name     string
	Type     TypeInfo
	Optional bool
	Rest     bool
	Default  bool // true if the parameter has a default initializer (affects call-site arity, not assignability)
}

// Function is a single call signature: `(a: A, b?: B, ...c: C[]) => R`.
// Grounded on the teacher's types.FunctionType{Parameters []types.Type,
// ReturnType types.Type}, extended with named/optional/rest parameter
// metadata that the teacher's Pascal parameter lists didn't need but
// TypeScript arity/optionality checks (spec.md §4.2) do.
type Function struct {
	TypeParams []*TypeParameter
	Params     []ParameterInfo
	ReturnType TypeInfo
	// This is the method receiver type for a bound method pulled off a
	// class/interface; nil for free functions and arrow functions.
	ThisType TypeInfo

	// Predicate, when non-nil, makes this a user-defined type guard
	// declared with a `param is T` or `this is T` return annotation:
	// calling it narrows the named parameter (or the receiver, when
	// ParamIndex is -1) to Predicate.Type in the truthy branch.
	Predicate *TypePredicate
}

// TypePredicate is the payload of a `x is T` / `this is T` function
// return annotation (spec.md's narrowing guard catalogue).
type TypePredicate struct {
	ParamIndex int // index into Params; -1 for `this is T`
	Type       TypeInfo
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		s := p.Name
		if p.Rest {
			s = "..." + s
		}
		if p.Optional {
			s += "?"
		}
		s += ": " + p.Type.String()
		parts[i] = s
	}
	prefix := ""
	if len(f.TypeParams) > 0 {
		names := make([]string, len(f.TypeParams))
		for i, tp := range f.TypeParams {
			names[i] = tp.Name
		}
		prefix = "<" + strings.Join(names, ", ") + ">"
	}
	return prefix + "(" + strings.Join(parts, ", ") + ") => " + f.ReturnType.String()
}

func (f *Function) Equals(other TypeInfo) bool {
	o, ok := other.(*Function)
	if !ok || len(o.Params) != len(f.Params) || len(o.TypeParams) != len(f.TypeParams) {
		return false
	}
	if !f.ReturnType.Equals(o.ReturnType) {
		return false
	}
	for i, p := range f.Params {
		op := o.Params[i]
		if p.Optional != op.Optional || p.Rest != op.Rest || !p.Type.Equals(op.Type) {
			return false
		}
	}
	return true
}

// RequiredParamCount returns how many leading parameters have neither
// a default value nor an optional marker nor are a rest parameter.
func (f *Function) RequiredParamCount() int {
	n := 0
	for _, p := range f.Params {
		if p.Optional || p.Default || p.Rest {
			break
		}
		n++
	}
	return n
}

// OverloadedFunction is a named group of Function signatures sharing one
// binding, as produced by repeated `function f(...): R;` overload
// declarations followed by one implementation signature. Grounded on
// the teacher's ConstructorOverloads map on ClassType, generalized here
// to free functions and methods alike (spec.md §4.4).
type OverloadedFunction struct {
	Name        string
	Signatures  []*Function
	Implementation *Function // the catch-all implementation signature, not itself callable from outside
}

func (o *OverloadedFunction) Kind() Kind { return KindOverloadedFunction }

func (o *OverloadedFunction) String() string {
	sigs := make([]string, len(o.Signatures))
	for i, s := range o.Signatures {
		sigs[i] = s.String()
	}
	return strings.Join(sigs, " & ")
}

func (o *OverloadedFunction) Equals(other TypeInfo) bool {
	oo, ok := other.(*OverloadedFunction)
	if !ok || len(oo.Signatures) != len(o.Signatures) {
		return false
	}
	for i, s := range o.Signatures {
		if !s.Equals(oo.Signatures[i]) {
			return false
		}
	}
	return true
}
