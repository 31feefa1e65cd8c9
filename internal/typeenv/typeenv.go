// Package typeenv implements the nested lexical scope chain used to
// resolve identifiers, type aliases, and type parameters during
// checking (spec.md §3, TypeEnvironment). Grounded on the teacher's
// internal/semantic/pass_context.go Scope/NewScope/Lookup/LookupChain
// parent-chain design, generalized from one symbol table per scope to
// three parallel tables (values, type aliases, type parameters) since
// TypeScript's value and type namespaces are distinct — `type T = ...`
// and `let T = ...` don't collide — while a type parameter shadows an
// outer type alias of the same name the way the teacher's scopes let
// an inner Define shadow an outer one.
package typeenv

import "github.com/cwbudde/go-tscheck/internal/types"

// Kind identifies the lexical purpose of a Scope, mirroring the
// teacher's ScopeKind (global/function/block).
type Kind int

const (
	Global Kind = iota
	Module
	Function
	Block
	ClassBody
)

// Scope is one link in the enclosing chain. Unlike the teacher's
// single Symbols map, a Scope here carries three independent tables
// because a name can simultaneously denote a value binding (`const x`)
// and, in an unrelated declaration, a type alias (`type x = ...`) —
// TypeScript keeps these namespaces separate, so collapsing them into
// one map would make `const Point = ...; type Point = ...` (a
// perfectly legal pair of declarations) indistinguishable from a
// genuine redeclaration error.
type Scope struct {
	Kind   Kind
	Parent *Scope

	values     map[string]types.TypeInfo
	typeAliases map[string]types.TypeInfo
	typeParams map[string]*types.TypeParameter
}

// New creates a root scope with no parent.
func New(kind Kind) *Scope {
	return &Scope{
		Kind:        kind,
		values:      make(map[string]types.TypeInfo),
		typeAliases: make(map[string]types.TypeInfo),
		typeParams:  make(map[string]*types.TypeParameter),
	}
}

// Push creates a new child scope nested under s.
func (s *Scope) Push(kind Kind) *Scope {
	child := New(kind)
	child.Parent = s
	return child
}

// DefineValue binds name to t in this scope, shadowing any outer
// binding of the same name. Returns false if name is already bound in
// this exact scope (a caller-level redeclaration error, not silently
// overwritten).
func (s *Scope) DefineValue(name string, t types.TypeInfo) bool {
	if _, exists := s.values[name]; exists {
		return false
	}
	s.values[name] = t
	return true
}

// Redefine binds name to t in this scope unconditionally, overwriting
// any existing binding. Used to replace a single function's signature
// with a merged *types.OverloadedFunction once a second overload
// signature for the same name is collected (DefineValue's
// already-bound guard would otherwise reject the second signature
// outright).
func (s *Scope) Redefine(name string, t types.TypeInfo) {
	s.values[name] = t
}

// LookupValue searches this scope and its Parent chain for a value
// binding.
func (s *Scope) LookupValue(name string) (types.TypeInfo, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if t, ok := scope.values[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// DefineTypeAlias binds name to a type alias target in this scope.
func (s *Scope) DefineTypeAlias(name string, t types.TypeInfo) bool {
	if _, exists := s.typeAliases[name]; exists {
		return false
	}
	s.typeAliases[name] = t
	return true
}

// LookupTypeAlias searches this scope and its Parent chain for a type
// alias or class/interface type binding. Type parameters shadow type
// aliases of the same name: a scope's own typeParams table is checked
// before falling through to typeAliases at the same level, matching
// how `class Box<T> { x: T }`'s T must not resolve to some unrelated
// outer `type T = ...`.
func (s *Scope) LookupTypeAlias(name string) (types.TypeInfo, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if tp, ok := scope.typeParams[name]; ok {
			return tp, true
		}
		if t, ok := scope.typeAliases[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// DefineTypeParameter binds a generic declaration's own type variable
// in this scope, shadowing any outer type alias of the same name for
// as long as this scope (and its children) is active.
func (s *Scope) DefineTypeParameter(tp *types.TypeParameter) bool {
	if _, exists := s.typeParams[tp.Name]; exists {
		return false
	}
	s.typeParams[tp.Name] = tp
	return true
}

// LookupTypeParameter searches this scope and its Parent chain for a
// type parameter binding only (skipping type aliases), used when the
// caller specifically needs to know whether a name is a generic
// declaration's own variable (e.g. to validate `infer X` placement).
func (s *Scope) LookupTypeParameter(name string) (*types.TypeParameter, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if tp, ok := scope.typeParams[name]; ok {
			return tp, true
		}
	}
	return nil, false
}

// OwnValues returns this scope's own value bindings, excluding any
// parent scope, so a caller that pushed a scope to hold an ambient
// block's declarations (`declare global`/`declare module`) can
// enumerate everything bound there without requiring each one to
// carry its own `export` keyword — ambient block members are globally
// visible by construction, the way the teacher's unit-level `interface`
// section symbols are visible to every importing unit without a
// separate export list.
func (s *Scope) OwnValues() map[string]types.TypeInfo {
	return s.values
}

// OwnTypeAliases mirrors OwnValues for the type-alias namespace.
func (s *Scope) OwnTypeAliases() map[string]types.TypeInfo {
	return s.typeAliases
}

// InFunction reports whether s or any enclosing scope up to (but not
// including) the nearest Module/Global boundary is a Function scope —
// used to validate `return`, `await`, and `yield` placement.
func (s *Scope) InFunction() bool {
	for scope := s; scope != nil; scope = scope.Parent {
		if scope.Kind == Function {
			return true
		}
		if scope.Kind == Module || scope.Kind == Global {
			return false
		}
	}
	return false
}
