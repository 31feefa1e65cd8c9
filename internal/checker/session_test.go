package checker

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-tscheck/internal/builtins"
	"github.com/cwbudde/go-tscheck/internal/config"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/lexer"
	"github.com/cwbudde/go-tscheck/internal/parser"
	"github.com/cwbudde/go-tscheck/internal/resolver"
)

// sourceFile pairs a module path with its source, kept as a slice
// (not a map) so multi-module tests control checking order exactly —
// Session.Check only reorders modules that a relative import actually
// connects.
type sourceFile struct {
	path string
	src  string
}

// checkSource parses and checks a single-module program, returning
// every diagnostic the run produced.
func checkSource(t *testing.T, input string) []*diag.Diagnostic {
	t.Helper()
	return checkModules(t, []sourceFile{{path: "main.ts", src: input}})
}

// checkModules parses and checks several modules at once, in the
// given order, so import/export and cross-module augmentation tests
// can exercise the session's module graph.
func checkModules(t *testing.T, files []sourceFile) []*diag.Diagnostic {
	t.Helper()
	return checkModulesWithAliases(t, files, nil)
}

// checkModulesWithAliases is checkModules with a bare-specifier alias
// table, for tests that import a non-relative specifier (e.g. a
// `declare module "left-pad"` ambient shim) MapResolver otherwise has
// no way to resolve.
func checkModulesWithAliases(t *testing.T, files []sourceFile, aliases map[string]string) []*diag.Diagnostic {
	t.Helper()

	var modules []*ResolvedModule
	for _, f := range files {
		l := lexer.New(f.src)
		p := parser.New(l)
		prog := p.Parse(f.path)
		if len(p.Errors()) > 0 {
			t.Fatalf("%s: parser errors: %v", f.path, p.Errors())
		}
		modules = append(modules, &ResolvedModule{Path: f.path, Program: prog})
	}

	session := NewSession(builtins.NewCatalog(), resolver.NewMapResolver(aliases), config.Default())
	result, err := session.Check(modules)
	if err != nil {
		t.Fatalf("Session.Check: %v", err)
	}
	return result.Diagnostics
}

func expectNoErrors(t *testing.T, input string) {
	t.Helper()
	items := checkSource(t, input)
	for _, d := range items {
		if d.Severity == diag.Error || d.Severity == diag.Fatal {
			t.Errorf("expected no errors, got: %s", d.Message)
		}
	}
}

func expectErrorKind(t *testing.T, input string, kind diag.Kind) {
	t.Helper()
	items := checkSource(t, input)
	for _, d := range items {
		if d.Kind == kind {
			return
		}
	}
	var got []string
	for _, d := range items {
		got = append(got, string(d.Kind))
	}
	t.Errorf("expected a %s diagnostic, got: %s", kind, strings.Join(got, ", "))
}

func TestEmptyProgram(t *testing.T) {
	expectNoErrors(t, ``)
}

func TestVariableDeclarationAndUse(t *testing.T) {
	expectNoErrors(t, `
		let x: number = 1;
		let y: string = "hi";
		function add(a: number, b: number): number {
			return a + b;
		}
		add(x, 2);
	`)
}

func TestUndefinedName(t *testing.T) {
	expectErrorKind(t, `
		function f(): number {
			return doesNotExist;
		}
	`, diag.UndefinedName)
}

func TestTypeMismatchOnAssignment(t *testing.T) {
	expectErrorKind(t, `
		let x: number = "not a number";
	`, diag.TypeMismatch)
}

func TestReadonlyAssignment(t *testing.T) {
	expectErrorKind(t, `
		class Point {
			readonly x: number;
			constructor(x: number) {
				this.x = x;
			}
		}
		function move(p: Point): void {
			p.x = 5;
		}
	`, diag.ReadonlyAssignment)
}

func TestAbstractInstantiation(t *testing.T) {
	expectErrorKind(t, `
		abstract class Shape {
			abstract area(): number;
		}
		let s = new Shape();
	`, diag.AbstractInstantiation)
}

func TestFunctionOverloadGroup(t *testing.T) {
	expectNoErrors(t, `
		function combine(a: string, b: string): string;
		function combine(a: number, b: number): number;
		function combine(a: any, b: any): any {
			return a;
		}
		combine("a", "b");
		combine(1, 2);
	`)
}

func TestInterfaceImplementation(t *testing.T) {
	expectNoErrors(t, `
		interface Greeter {
			greet(name: string): string;
		}
		class English implements Greeter {
			greet(name: string): string {
				return "Hello " + name;
			}
		}
	`)
}

func TestEnumMembersAreNumberedOrLiteral(t *testing.T) {
	expectNoErrors(t, `
		enum Direction {
			Up,
			Down,
			Left,
			Right,
		}
		let d: Direction = Direction.Up;
	`)
}

func TestNamespaceMemberAccess(t *testing.T) {
	expectNoErrors(t, `
		namespace Utils {
			export function double(n: number): number {
				return n * 2;
			}
		}
		Utils.double(4);
	`)
}

func TestModuleImportExport(t *testing.T) {
	items := checkModules(t, []sourceFile{
		{path: "math", src: `
			export function square(n: number): number {
				return n * n;
			}
		`},
		{path: "main", src: `
			import { square } from "./math";
			let r: number = square(3);
		`},
	})
	for _, d := range items {
		if d.Severity == diag.Error || d.Severity == diag.Fatal {
			t.Errorf("expected no errors, got: %s", d.Message)
		}
	}
}

// TestDeclareGlobalAugmentation checks that a `declare global` block
// in one module becomes visible to a module checked afterward in the
// same session — augmentation happens after a module's own body pass,
// so the declaring module itself cannot observe its own global in the
// same pass (see augment.go's documented simplification).
func TestDeclareGlobalAugmentation(t *testing.T) {
	items := checkModules(t, []sourceFile{
		{path: "globals", src: `
			declare global {
				function greet(name: string): string;
			}
		`},
		{path: "main", src: `
			greet("world");
		`},
	})
	for _, d := range items {
		if d.Severity == diag.Error || d.Severity == diag.Fatal {
			t.Errorf("expected no errors, got: %s", d.Message)
		}
	}
}

// TestDeclareModuleAugmentsAmbientPath checks that `declare module
// "path" { ... }` creates (or extends) the ModuleRecord a later
// import of that same string specifier resolves to, the way an
// ambient `.d.ts` shim stands in for a module with no real source
// file (spec.md §4.6 step 4).
func TestDeclareModuleAugmentsAmbientPath(t *testing.T) {
	items := checkModulesWithAliases(t, []sourceFile{
		{path: "shim", src: `
			declare module "left-pad" {
				export function pad(s: string, len: number): string;
			}
		`},
		{path: "main", src: `
			import { pad } from "left-pad";
			let r: string = pad("x", 5);
		`},
	}, map[string]string{"left-pad": "left-pad"})
	for _, d := range items {
		if d.Severity == diag.Error || d.Severity == diag.Fatal {
			t.Errorf("expected no errors, got: %s", d.Message)
		}
	}
}

func TestExportEqualsConflict(t *testing.T) {
	expectErrorKind(t, `
		function first(): number { return 1; }
		function second(): number { return 2; }
		export = first;
		export = second;
	`, diag.ExportAssignmentConflict)
}
