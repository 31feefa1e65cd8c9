package types

import "testing"

func TestPrimitiveEquals(t *testing.T) {
	if !String.Equals(String) {
		t.Error("expected string to equal itself")
	}
	if String.Equals(Number) {
		t.Error("expected string not to equal number")
	}
}

func TestLiteralStringDisplay(t *testing.T) {
	lit := &LiteralString{Value: "ok"}
	if lit.String() != `"ok"` {
		t.Errorf(`expected "ok", got %s`, lit.String())
	}
}

func TestArrayEquals(t *testing.T) {
	a := &Array{Element: String}
	b := &Array{Element: String}
	c := &Array{Element: Number}
	if !a.Equals(b) {
		t.Error("expected string[] to equal string[]")
	}
	if a.Equals(c) {
		t.Error("expected string[] not to equal number[]")
	}
	if a.String() != "string[]" {
		t.Errorf("expected 'string[]', got %q", a.String())
	}
}

func TestUnionCanonicalizationDedupesAndFlattens(t *testing.T) {
	inner := NewUnion(String, Number)
	u := NewUnion(inner, Number, Boolean)
	union, ok := u.(*Union)
	if !ok {
		t.Fatalf("expected *Union, got %T", u)
	}
	if len(union.Members) != 3 {
		t.Fatalf("expected 3 members after flatten+dedupe, got %d (%s)", len(union.Members), union.String())
	}
}

func TestUnionOfOneMemberCollapses(t *testing.T) {
	u := NewUnion(String, String)
	if _, ok := u.(*Union); ok {
		t.Fatalf("expected single-member union to collapse to its member, got %#v", u)
	}
	if !u.Equals(String) {
		t.Errorf("expected collapsed union to equal string, got %s", u.String())
	}
}

func TestUnionDisplayIsOrderIndependent(t *testing.T) {
	a := NewUnion(Number, String, Boolean)
	b := NewUnion(Boolean, Number, String)
	if a.String() != b.String() {
		t.Errorf("expected stable display regardless of construction order, got %q vs %q", a.String(), b.String())
	}
}

func TestClassBuilderFreezeDiscipline(t *testing.T) {
	base := NewClassBuilder("Animal")
	base.AddMethod(&MethodInfo{
		Name:      "speak",
		Signature: &Function{ReturnType: String},
		Virtual:   true,
	})
	base.Freeze()

	dog := NewClassBuilder("Dog")
	dog.Parent = base
	dog.AddMethod(&MethodInfo{
		Name:      "speak",
		Signature: &Function{ReturnType: String},
		Override:  true,
	})
	dog.Freeze()

	if !dog.IsSubclassOf(base) {
		t.Error("expected Dog to be a subclass of Animal")
	}
	owner, _, method, _, ok := dog.Member("speak")
	if !ok || owner != dog || method == nil || !method.Override {
		t.Errorf("expected Dog's own override of speak, got owner=%v method=%#v", owner, method)
	}
}

func TestClassBuilderPanicsAfterFreeze(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected AddField after Freeze to panic")
		}
	}()
	c := NewClassBuilder("Sealed").Freeze()
	c.AddField(&FieldInfo{Name: "x", Type: Number})
}

func TestInterfaceAllMembersFlattensExtends(t *testing.T) {
	base := NewInterfaceBuilder("Named")
	base.AddProperty(PropertyInfo{Name: "name", Type: String})
	base.Freeze()

	sized := NewInterfaceBuilder("Sized")
	sized.Extends = []*InterfaceType{base}
	sized.AddProperty(PropertyInfo{Name: "size", Type: Number})
	sized.Freeze()

	props, _ := sized.AllMembers()
	if _, ok := props["name"]; !ok {
		t.Error("expected inherited property 'name' via Extends")
	}
	if _, ok := props["size"]; !ok {
		t.Error("expected own property 'size'")
	}
}

func TestInstanceEqualsComparesTypeArgs(t *testing.T) {
	box := NewClassBuilder("Box").Freeze()
	a := &Instance{Class: box, Args: []TypeInfo{String}}
	b := &Instance{Class: box, Args: []TypeInfo{String}}
	c := &Instance{Class: box, Args: []TypeInfo{Number}}
	if !a.Equals(b) {
		t.Error("expected Box<string> to equal Box<string>")
	}
	if a.Equals(c) {
		t.Error("expected Box<string> not to equal Box<number>")
	}
}

func TestInstantiateClassFillsDefaults(t *testing.T) {
	tp := &TypeParameter{Name: "T", Default: Any}
	box := NewClassBuilder("Box").Freeze()
	generic := &GenericClass{Name: "Box", TypeParams: []*TypeParameter{tp}, Body: box}
	inst := InstantiateClass(generic, nil)
	if len(inst.Args) != 1 || !inst.Args[0].Equals(Any) {
		t.Errorf("expected missing type argument to fill from default 'any', got %#v", inst.Args)
	}
}

func TestSubstituteReplacesTypeParameterInFunctionSignature(t *testing.T) {
	tp := &TypeParameter{Name: "T"}
	fn := &Function{
		Params:     []ParameterInfo{{Name: "x", Type: tp}},
		ReturnType: tp,
	}
	bindings := map[*TypeParameter]TypeInfo{tp: String}
	result := Substitute(fn, bindings).(*Function)
	if !result.ReturnType.Equals(String) || !result.Params[0].Type.Equals(String) {
		t.Errorf("expected T substituted with string throughout, got %s", result.String())
	}
}

func TestAwaitedUnwrapsNestedPromises(t *testing.T) {
	nested := NewPromise(NewPromise(String))
	if got := Awaited(nested); !got.Equals(String) {
		t.Errorf("expected Awaited(Promise<Promise<string>>) == string, got %s", got.String())
	}
	if got := Awaited(Number); !got.Equals(Number) {
		t.Errorf("expected Awaited(number) == number, got %s", got.String())
	}
}

func TestTypeAliasResolvesTransparently(t *testing.T) {
	alias := &TypeAlias{Name: "ID", AliasedType: String}
	if !alias.Equals(String) {
		t.Error("expected alias to equal its aliased type")
	}
	if Resolve(alias) != TypeInfo(String) {
		t.Error("expected Resolve to unwrap the alias")
	}
}

func TestFunctionRequiredParamCount(t *testing.T) {
	fn := &Function{Params: []ParameterInfo{
		{Name: "a", Type: String},
		{Name: "b", Type: Number, Optional: true},
		{Name: "rest", Type: String, Rest: true},
	}}
	if fn.RequiredParamCount() != 1 {
		t.Errorf("expected 1 required param, got %d", fn.RequiredParamCount())
	}
}
