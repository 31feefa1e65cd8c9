package parser_test

import (
	"testing"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/lexer"
	"github.com/cwbudde/go-tscheck/internal/parser"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	prog := p.Parse("test.ts")
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", input, errs)
	}
	return prog
}

func TestParseVariableDeclarationWithUnionType(t *testing.T) {
	prog := parseProgram(t, `let x: string | number = 1;`)
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", prog.Statements[0])
	}
	union, ok := decl.Declarations[0].TypeAnn.(*ast.UnionTypeNode)
	if !ok || len(union.Types) != 2 {
		t.Fatalf("expected a 2-arm union type, got %#v", decl.Declarations[0].TypeAnn)
	}
}

func TestParseFunctionDeclarationWithGenerics(t *testing.T) {
	prog := parseProgram(t, `function identity<T>(x: T): T { return x; }`)
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", prog.Statements[0])
	}
	if fn.Name != "identity" || len(fn.TypeParams) != 1 || fn.TypeParams[0].Name != "T" {
		t.Fatalf("unexpected function shape: %#v", fn)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("unexpected params: %#v", fn.Params)
	}
}

func TestParseClassWithHeritageAndAccessors(t *testing.T) {
	prog := parseProgram(t, `
class Box<T> extends Base implements Sized {
  private value: T;
  constructor(value: T) { this.value = value; }
  get size(): number { return 1; }
}`)
	cls, ok := prog.Statements[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected *ast.ClassDeclaration, got %T", prog.Statements[0])
	}
	if cls.Name != "Box" || cls.Extends == nil || cls.Extends.Name != "Base" {
		t.Fatalf("unexpected class shape: %#v", cls)
	}
	if len(cls.Implements) != 1 || cls.Implements[0].Name != "Sized" {
		t.Fatalf("unexpected implements clause: %#v", cls.Implements)
	}
	var sawCtor, sawGetter bool
	for _, m := range cls.Members {
		switch mm := m.(type) {
		case *ast.MethodDeclaration:
			if mm.Name == "constructor" {
				sawCtor = true
			}
		case *ast.AccessorDeclaration:
			if mm.Kind == "get" && mm.Name == "size" {
				sawGetter = true
			}
		}
	}
	if !sawCtor || !sawGetter {
		t.Fatalf("expected constructor and getter members, got %#v", cls.Members)
	}
}

func TestParseArrowFunctionVsGroupedExpression(t *testing.T) {
	prog := parseProgram(t, `let f = (a: number, b: number): number => a + b;`)
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarations[0].Initializer.(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expected *ast.ArrowFunctionExpression, got %T", decl.Declarations[0].Initializer)
	}
	if len(arrow.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(arrow.Params))
	}

	prog2 := parseProgram(t, `let g = (1 + 2) * 3;`)
	decl2 := prog2.Statements[0].(*ast.VariableDeclaration)
	if _, ok := decl2.Declarations[0].Initializer.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected grouped expression to parse as a binary expression, got %T", decl2.Declarations[0].Initializer)
	}
}

func TestParseNarrowingGuardShape(t *testing.T) {
	prog := parseProgram(t, `
function describe(x: string | number): string {
  if (typeof x === "string") {
    return x;
  }
  return x.toString();
}`)
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	ifStmt, ok := fn.Body.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected an if statement guard, got %T", fn.Body.Statements[0])
	}
	bin, ok := ifStmt.Test.(*ast.BinaryExpression)
	if !ok || bin.Operator != "===" {
		t.Fatalf("expected a === guard, got %#v", ifStmt.Test)
	}
}

func TestParseInterfaceWithIndexSignature(t *testing.T) {
	prog := parseProgram(t, `
interface Dictionary<V> {
  [key: string]: V;
  readonly size: number;
}`)
	iface := prog.Statements[0].(*ast.InterfaceDeclaration)
	if iface.Name != "Dictionary" || len(iface.Members) != 2 {
		t.Fatalf("unexpected interface shape: %#v", iface)
	}
	if iface.Members[0].Index == nil {
		t.Fatalf("expected first member to be an index signature, got %#v", iface.Members[0])
	}
}

func TestParseTemplateLiteralExpression(t *testing.T) {
	prog := parseProgram(t, "let s = `hello ${name}!`;")
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	tpl, ok := decl.Declarations[0].Initializer.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expected *ast.TemplateLiteral, got %T", decl.Declarations[0].Initializer)
	}
	if len(tpl.Expressions) != 1 {
		t.Fatalf("expected 1 interpolated expression, got %d", len(tpl.Expressions))
	}
}
