package cmd

import (
	"testing"

	"github.com/cwbudde/go-tscheck/internal/ast"
)

func TestMatchesInclude(t *testing.T) {
	patterns := []string{"**/*.ts"}
	cases := map[string]bool{
		"src/app.ts":      true,
		"src/lib/util.ts": true,
		"README.md":       false,
		"app.tsx":         false,
	}
	for path, want := range cases {
		if got := matchesInclude(path, patterns); got != want {
			t.Errorf("matchesInclude(%q, %v) = %v, want %v", path, patterns, got, want)
		}
	}
}

func TestRelativeImportSpecifiers(t *testing.T) {
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.ImportDeclaration{Source: "./util"},
			&ast.ImportDeclaration{Source: "fs"},
			&ast.ExportDeclaration{Source: "../shared"},
			&ast.ExportDeclaration{},
		},
	}

	got := relativeImportSpecifiers(prog)
	want := map[string]bool{"./util": true, "../shared": true}
	if len(got) != len(want) {
		t.Fatalf("relativeImportSpecifiers = %v, want exactly %v", got, want)
	}
	for _, spec := range got {
		if !want[spec] {
			t.Errorf("unexpected specifier %q in result %v", spec, got)
		}
	}
}

func TestCountErrors(t *testing.T) {
	if n := countErrors(nil); n != 0 {
		t.Fatalf("countErrors(nil) = %d, want 0", n)
	}
}
