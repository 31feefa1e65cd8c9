package typeenv

import (
	"testing"

	"github.com/cwbudde/go-tscheck/internal/types"
)

func TestLookupValueWalksParentChain(t *testing.T) {
	outer := New(Global)
	outer.DefineValue("x", types.String)

	inner := outer.Push(Block)
	if got, ok := inner.LookupValue("x"); !ok || !got.Equals(types.String) {
		t.Fatalf("expected inner scope to see outer binding, got %v, %v", got, ok)
	}
}

func TestDefineValueRejectsRedeclarationInSameScope(t *testing.T) {
	s := New(Block)
	if !s.DefineValue("x", types.String) {
		t.Fatal("expected first definition to succeed")
	}
	if s.DefineValue("x", types.Number) {
		t.Fatal("expected redefinition in the same scope to fail")
	}
}

func TestValueAndTypeAliasNamespacesAreIndependent(t *testing.T) {
	s := New(Global)
	if !s.DefineValue("Point", types.String) {
		t.Fatal("expected value definition to succeed")
	}
	if !s.DefineTypeAlias("Point", types.Number) {
		t.Fatal("expected type alias of the same name to succeed independently")
	}
	v, _ := s.LookupValue("Point")
	ta, _ := s.LookupTypeAlias("Point")
	if !v.Equals(types.String) || !ta.Equals(types.Number) {
		t.Fatalf("expected independent namespaces, got value=%s alias=%s", v, ta)
	}
}

func TestTypeParameterShadowsOuterTypeAlias(t *testing.T) {
	outer := New(Global)
	outer.DefineTypeAlias("T", types.String)

	inner := outer.Push(ClassBody)
	inner.DefineTypeParameter(&types.TypeParameter{Name: "T"})

	resolved, ok := inner.LookupTypeAlias("T")
	if !ok {
		t.Fatal("expected T to resolve")
	}
	if _, isParam := resolved.(*types.TypeParameter); !isParam {
		t.Fatalf("expected the inner type parameter to shadow the outer alias, got %#v", resolved)
	}
}

func TestOwnValuesExcludesParentScope(t *testing.T) {
	outer := New(Global)
	outer.DefineValue("x", types.String)

	inner := outer.Push(Block)
	inner.DefineValue("y", types.Number)

	own := inner.OwnValues()
	if _, ok := own["y"]; !ok {
		t.Error("expected inner scope's own binding to appear in OwnValues")
	}
	if _, ok := own["x"]; ok {
		t.Error("expected OwnValues to exclude the parent scope's binding")
	}
}

func TestOwnTypeAliasesExcludesParentScope(t *testing.T) {
	outer := New(Global)
	outer.DefineTypeAlias("Outer", types.String)

	inner := outer.Push(Block)
	inner.DefineTypeAlias("Inner", types.Number)

	own := inner.OwnTypeAliases()
	if _, ok := own["Inner"]; !ok {
		t.Error("expected inner scope's own type alias to appear in OwnTypeAliases")
	}
	if _, ok := own["Outer"]; ok {
		t.Error("expected OwnTypeAliases to exclude the parent scope's alias")
	}
}

func TestInFunctionStopsAtModuleBoundary(t *testing.T) {
	module := New(Module)
	block := module.Push(Block)
	if block.InFunction() {
		t.Error("expected a bare block under a module scope not to be considered inside a function")
	}

	fn := module.Push(Function)
	nested := fn.Push(Block)
	if !nested.InFunction() {
		t.Error("expected a block nested in a function scope to report InFunction")
	}
}
