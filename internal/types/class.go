package types

import "strings"

// Visibility mirrors the teacher's int(ast.VisibilityPublic) encoding
// on types.MethodInfo, generalized to the three TypeScript access
// modifiers (spec.md's class member rules).
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "public"
	}
}

// FieldInfo is one data member of a ClassType.
type FieldInfo struct {
	Name       string
	Type       TypeInfo
	Visibility Visibility
	Static     bool
	Readonly   bool
	Optional   bool
}

// MethodInfo is one method member, grounded directly on the teacher's
// types.MethodInfo{Signature *FunctionType, Visibility int} shape.
type MethodInfo struct {
	Name       string
	Signature  *Function
	Visibility Visibility
	Static     bool
	Abstract   bool
	Override   bool
	// Virtual marks a method participating in dynamic dispatch; a
	// subclass MethodInfo.Override is only legal against a base
	// MethodInfo.Virtual member (mirrors the teacher's
	// VirtualMethods/OverrideMethods bookkeeping, generalized since
	// TypeScript methods are virtual by default unless private).
	Virtual bool
}

// AccessorInfo is a get/set pair (either half may be absent).
type AccessorInfo struct {
	Name       string
	Type       TypeInfo
	Getter     *Function
	Setter     *Function
	Visibility Visibility
	Static     bool
	Abstract   bool
}

// ClassType is the nominal type bound to a class declaration's name —
// distinct from Instance, the type of a value whose static type *is*
// an instance of the class. Grounded on the teacher's
// internal/semantic/analyzer.go registerBuiltinExceptionTypes, which
// builds types.ClassType{Name, Parent, Fields, Methods,
// FieldVisibility, MethodVisibility, VirtualMethods, OverrideMethods,
// AbstractMethods, Constructors, ConstructorOverloads, Interfaces,
// Properties} then freezes it into the class table.
//
// Construction goes through NewClassBuilder so that a class extending
// itself through a generic parameter, or a class whose methods
// reference its own Instance type in their signatures, can be wired up
// before the type is handed out to any caller; once Freeze is called
// the ClassType is treated as immutable by every other package.
type ClassType struct {
	Name       string
	Parent     *ClassType // nil for classes with no extends clause (implicit Object base omitted by Non-goal)
	Abstract   bool
	TypeParams []*TypeParameter

	Fields     map[string]*FieldInfo
	Methods    map[string]*MethodInfo
	Accessors  map[string]*AccessorInfo
	Interfaces []*InterfaceType

	// Constructor holds the non-overloaded case; ConstructorOverloads
	// holds every signature when the class declares more than one
	// (spec.md's overload-group rule also applies to constructors).
	Constructor         *Function
	ConstructorOverloads []*Function

	frozen bool
}

// NewClassBuilder starts construction of a named class.
func NewClassBuilder(name string) *ClassType {
	return &ClassType{
		Name:      name,
		Fields:    map[string]*FieldInfo{},
		Methods:   map[string]*MethodInfo{},
		Accessors: map[string]*AccessorInfo{},
	}
}

// AddField registers a field; panics if called after Freeze.
func (c *ClassType) AddField(f *FieldInfo) {
	c.mustBeMutable()
	c.Fields[f.Name] = f
}

// AddMethod registers a method; panics if called after Freeze.
func (c *ClassType) AddMethod(m *MethodInfo) {
	c.mustBeMutable()
	c.Methods[m.Name] = m
}

// AddAccessor registers a get/set pair; panics if called after Freeze.
func (c *ClassType) AddAccessor(a *AccessorInfo) {
	c.mustBeMutable()
	c.Accessors[a.Name] = a
}

// AddConstructorOverload appends one constructor signature, grounded on
// the teacher's objectClass.AddConstructorOverload("Create", &types.MethodInfo{...}).
func (c *ClassType) AddConstructorOverload(sig *Function) {
	c.mustBeMutable()
	c.ConstructorOverloads = append(c.ConstructorOverloads, sig)
	if len(c.ConstructorOverloads) == 1 {
		c.Constructor = sig
	} else {
		c.Constructor = nil
	}
}

func (c *ClassType) mustBeMutable() {
	if c.frozen {
		panic("types: class " + c.Name + " is frozen")
	}
}

// Freeze locks the class against further mutation. Safe to call more
// than once.
func (c *ClassType) Freeze() *ClassType {
	c.frozen = true
	return c
}

func (c *ClassType) Kind() Kind     { return KindClass }
func (c *ClassType) String() string { return "typeof " + c.Name }
func (c *ClassType) Equals(other TypeInfo) bool { return other == TypeInfo(c) }

// Member looks up a field, method, or accessor by name, walking the
// Parent chain. Returns the owning class alongside the member so
// visibility checks can tell "declared here" from "inherited".
func (c *ClassType) Member(name string) (owner *ClassType, field *FieldInfo, method *MethodInfo, accessor *AccessorInfo, ok bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if f, found := cls.Fields[name]; found {
			return cls, f, nil, nil, true
		}
		if m, found := cls.Methods[name]; found {
			return cls, nil, m, nil, true
		}
		if a, found := cls.Accessors[name]; found {
			return cls, nil, nil, a, true
		}
	}
	return nil, nil, nil, nil, false
}

// IsSubclassOf reports whether c is other or a descendant of other.
func (c *ClassType) IsSubclassOf(other *ClassType) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		if cls == other {
			return true
		}
	}
	return false
}

// ImplementsInterface reports whether c declares other in its
// Interfaces list at any level of the inheritance chain.
func (c *ClassType) ImplementsInterface(other *InterfaceType) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		for _, iface := range cls.Interfaces {
			if iface == other {
				return true
			}
		}
	}
	return false
}

// Instance is the type of a value produced by `new C()` or typed as
// `C` in an annotation — as opposed to ClassType, the type of the
// class constructor binding itself (`typeof C`). Grounded on the
// teacher's types.NewClassOfType(objectClass), which the checker here
// splits into two directions: NewClassOf wraps a ClassType as "typeof
// C", and Instance (this type) is the default type an identifier
// referring to the class resolves to in a type position.
type Instance struct {
	Class *ClassType
	// Args holds resolved type arguments when Class.TypeParams is
	// non-empty, e.g. Instance{Class: Box, Args: [string]} for Box<string>.
	Args []TypeInfo
}

func (i *Instance) Kind() Kind { return KindInstance }

func (i *Instance) String() string {
	if len(i.Args) == 0 {
		return i.Class.Name
	}
	parts := make([]string, len(i.Args))
	for idx, a := range i.Args {
		parts[idx] = a.String()
	}
	return i.Class.Name + "<" + strings.Join(parts, ", ") + ">"
}

func (i *Instance) Equals(other TypeInfo) bool {
	o, ok := other.(*Instance)
	if !ok || o.Class != i.Class || len(o.Args) != len(i.Args) {
		return false
	}
	for idx, a := range i.Args {
		if !a.Equals(o.Args[idx]) {
			return false
		}
	}
	return true
}

// ClassOf wraps a ClassType as the "typeof C" static-side type, i.e.
// the type of the constructor function value itself.
func ClassOf(c *ClassType) *ClassType { return c }

// InterfaceType is a structural contract: a named set of property,
// method, and index-signature members plus any interfaces it extends.
// Grounded on the teacher's types.InterfaceType referenced from
// ClassType.Interfaces.
type InterfaceType struct {
	Name       string
	TypeParams []*TypeParameter
	Extends    []*InterfaceType
	Properties map[string]PropertyInfo
	Methods    map[string]*Function
	frozen     bool
}

// NewInterfaceBuilder starts construction of a named interface.
func NewInterfaceBuilder(name string) *InterfaceType {
	return &InterfaceType{
		Name:       name,
		Properties: map[string]PropertyInfo{},
		Methods:    map[string]*Function{},
	}
}

func (i *InterfaceType) AddProperty(p PropertyInfo) {
	i.mustBeMutable()
	i.Properties[p.Name] = p
}

func (i *InterfaceType) AddMethod(name string, fn *Function) {
	i.mustBeMutable()
	i.Methods[name] = fn
}

func (i *InterfaceType) mustBeMutable() {
	if i.frozen {
		panic("types: interface " + i.Name + " is frozen")
	}
}

func (i *InterfaceType) Freeze() *InterfaceType {
	i.frozen = true
	return i
}

func (i *InterfaceType) Kind() Kind     { return KindInterface }
func (i *InterfaceType) String() string { return i.Name }
func (i *InterfaceType) Equals(other TypeInfo) bool { return other == TypeInfo(i) }

// AllMembers flattens this interface's own and inherited (via Extends)
// properties and methods into one structural Record — used by the
// compatibility engine to check a class or object literal against an
// interface without special-casing inheritance at every call site.
func (i *InterfaceType) AllMembers() (props map[string]PropertyInfo, methods map[string]*Function) {
	props = map[string]PropertyInfo{}
	methods = map[string]*Function{}
	var walk func(it *InterfaceType)
	walk = func(it *InterfaceType) {
		for _, parent := range it.Extends {
			walk(parent)
		}
		for k, v := range it.Properties {
			props[k] = v
		}
		for k, v := range it.Methods {
			methods[k] = v
		}
	}
	walk(i)
	return props, methods
}

// EnumMemberType is the type of one member of an Enum, e.g. Color.Red.
type EnumMemberType struct {
	Enum  *EnumType
	Name  string
	Value TypeInfo // *LiteralString or *LiteralNumber
}

func (e *EnumMemberType) Kind() Kind     { return KindEnumMember }
func (e *EnumMemberType) String() string { return e.Enum.Name + "." + e.Name }
func (e *EnumMemberType) Equals(other TypeInfo) bool {
	o, ok := other.(*EnumMemberType)
	return ok && o.Enum == e.Enum && o.Name == e.Name
}

// EnumType is the type of an `enum E { ... }` declaration's binding.
type EnumType struct {
	Name    string
	Const   bool
	Members []*EnumMemberType
}

func (e *EnumType) Kind() Kind     { return KindEnum }
func (e *EnumType) String() string { return e.Name }
func (e *EnumType) Equals(other TypeInfo) bool { return other == TypeInfo(e) }

// Member returns the named member, if any.
func (e *EnumType) Member(name string) (*EnumMemberType, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}
