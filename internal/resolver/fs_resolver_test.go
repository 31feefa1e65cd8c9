package resolver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFSResolverResolvesVerbatimPath(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.ts")
	util := filepath.Join(dir, "util.ts")
	write(t, main, "")
	write(t, util, "")

	r := NewFSResolver()
	got, err := r.Resolve(main, "./util.ts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != util {
		t.Errorf("expected %s, got %s", util, got)
	}
}

func TestFSResolverTriesExtensions(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.ts")
	util := filepath.Join(dir, "util.ts")
	write(t, main, "")
	write(t, util, "")

	r := NewFSResolver()
	got, err := r.Resolve(main, "./util")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != util {
		t.Errorf("expected %s, got %s", util, got)
	}
}

func TestFSResolverTriesIndex(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.ts")
	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0o755); err != nil {
		t.Fatal(err)
	}
	index := filepath.Join(dir, "lib", "index.ts")
	write(t, main, "")
	write(t, index, "")

	r := NewFSResolver()
	got, err := r.Resolve(main, "./lib")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != index {
		t.Errorf("expected %s, got %s", index, got)
	}
}

func TestFSResolverBareSpecifierPassesThrough(t *testing.T) {
	r := NewFSResolver()
	got, err := r.Resolve("/src/main.ts", "fs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fs" {
		t.Errorf("expected bare specifier to pass through unchanged, got %s", got)
	}
}

func TestFSResolverMissingModuleErrors(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.ts")
	write(t, main, "")

	r := NewFSResolver()
	if _, err := r.Resolve(main, "./missing"); err == nil {
		t.Fatal("expected an error for a module that does not exist on disk")
	}
}

func TestFSResolverCacheModuleRoundTrips(t *testing.T) {
	r := NewFSResolver()
	if _, ok := r.GetCachedModule("/src/util.ts"); ok {
		t.Fatal("expected no cached module before CacheModule is called")
	}
	r.CacheModule("/src/util.ts", nil)
	if _, ok := r.GetCachedModule("/src/util.ts"); !ok {
		t.Fatal("expected cached module to round-trip")
	}
}

func write(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}
