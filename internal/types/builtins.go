package types

import "strings"

// BuiltinContainer models the handful of generic runtime container
// types a checked program can name without importing anything —
// Promise<T>, Array's Map/Set/WeakMap/WeakSet cousins, Date, RegExp,
// Error, and the iterator protocol types. The teacher's primitive set
// (tobject/Exception chain in analyzer.go) had no equivalent since
// Pascal has no built-in generic containers; these are modeled here as
// one uniform struct rather than N bespoke types because their only
// checker-relevant behavior is "named generic type with fixed arity",
// identical to how internal/builtins (the ambient library catalog)
// also describes them to callers — see internal/builtins/globals.go.
type BuiltinContainer struct {
	Name string
	Args []TypeInfo // type arguments, in declaration order; empty for non-generic containers like Date
}

func (b *BuiltinContainer) Kind() Kind { return KindBuiltinContainer }

func (b *BuiltinContainer) String() string {
	if len(b.Args) == 0 {
		return b.Name
	}
	parts := make([]string, len(b.Args))
	for i, a := range b.Args {
		parts[i] = a.String()
	}
	return b.Name + "<" + strings.Join(parts, ", ") + ">"
}

func (b *BuiltinContainer) Equals(other TypeInfo) bool {
	o, ok := other.(*BuiltinContainer)
	if !ok || o.Name != b.Name || len(o.Args) != len(b.Args) {
		return false
	}
	for i, a := range b.Args {
		if !a.Equals(o.Args[i]) {
			return false
		}
	}
	return true
}

// Well-known container constructors, one function per name so callers
// never hand-build a BuiltinContainer with a typo'd name.

func NewPromise(resolved TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "Promise", Args: []TypeInfo{resolved}}
}

func NewArrayMap(key, value TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "Map", Args: []TypeInfo{key, value}}
}

func NewArraySet(element TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "Set", Args: []TypeInfo{element}}
}

func NewWeakMap(key, value TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "WeakMap", Args: []TypeInfo{key, value}}
}

func NewWeakSet(element TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "WeakSet", Args: []TypeInfo{element}}
}

func NewIterator(element TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "Iterator", Args: []TypeInfo{element}}
}

func NewGenerator(yield, ret, next TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "Generator", Args: []TypeInfo{yield, ret, next}}
}

func NewAsyncGenerator(yield, ret, next TypeInfo) *BuiltinContainer {
	return &BuiltinContainer{Name: "AsyncGenerator", Args: []TypeInfo{yield, ret, next}}
}

var (
	DateType    = &BuiltinContainer{Name: "Date"}
	RegExpType  = &BuiltinContainer{Name: "RegExp"}
	ErrorType   = &BuiltinContainer{Name: "Error"}
	BufferType  = &BuiltinContainer{Name: "Buffer"}
	TimeoutType = &BuiltinContainer{Name: "Timeout"}
)

// Awaited unwraps nested Promise<...> layers, as the `await` operator
// and async function return-type inference both need (spec.md's async
// handling): Awaited(Promise<Promise<T>>) == T, Awaited(T) == T for any
// non-Promise T.
func Awaited(t TypeInfo) TypeInfo {
	for {
		bc, ok := Resolve(t).(*BuiltinContainer)
		if !ok || bc.Name != "Promise" || len(bc.Args) != 1 {
			return t
		}
		t = bc.Args[0]
	}
}
