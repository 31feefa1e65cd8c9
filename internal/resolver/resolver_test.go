package resolver

import (
	"testing"

	"github.com/cwbudde/go-tscheck/internal/ast"
)

func TestResolveRelativeSpecifierJoinsAgainstFromDir(t *testing.T) {
	r := NewMapResolver(nil)
	got, err := r.Resolve("/src/app/main.ts", "./util")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/src/app/util" {
		t.Errorf("expected /src/app/util, got %s", got)
	}
}

func TestResolveParentRelativeSpecifier(t *testing.T) {
	r := NewMapResolver(nil)
	got, err := r.Resolve("/src/app/main.ts", "../shared/format")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/src/shared/format" {
		t.Errorf("expected /src/shared/format, got %s", got)
	}
}

func TestResolveBareSpecifierUsesAliasTable(t *testing.T) {
	r := NewMapResolver(map[string]string{"left-pad": "/node_modules/left-pad/index.d.ts"})
	got, err := r.Resolve("/src/app/main.ts", "left-pad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/node_modules/left-pad/index.d.ts" {
		t.Errorf("expected aliased path, got %s", got)
	}
}

func TestResolveUnknownBareSpecifierErrors(t *testing.T) {
	r := NewMapResolver(nil)
	if _, err := r.Resolve("/src/app/main.ts", "nonexistent"); err == nil {
		t.Fatal("expected an error for an unresolvable bare specifier")
	}
}

func TestCacheModuleRoundTrips(t *testing.T) {
	r := NewMapResolver(nil)
	prog := &ast.Program{Path: "/src/app/util.ts"}
	r.CacheModule("/src/app/util.ts", prog)
	got, ok := r.GetCachedModule("/src/app/util.ts")
	if !ok || got != prog {
		t.Fatalf("expected cached module to round-trip, got %v, %v", got, ok)
	}
}
