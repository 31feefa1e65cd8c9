package diag

import (
	"strings"
	"testing"
)

func TestBagTracksFirstFatalOnly(t *testing.T) {
	b := NewBag()
	b.Add(New(TypeMismatch, Position{Line: 1, Column: 1}, "a.ts", "oops"))
	if b.HasFatal() {
		t.Fatal("expected no fatal diagnostic yet")
	}
	first := NewFatal(Redeclaration, Position{Line: 2, Column: 1}, "a.ts", "first fatal")
	second := NewFatal(Redeclaration, Position{Line: 3, Column: 1}, "a.ts", "second fatal")
	b.Add(first)
	b.Add(second)
	if !b.HasFatal() || b.Fatal() != first {
		t.Fatalf("expected the first fatal diagnostic to stick, got %#v", b.Fatal())
	}
	if b.Len() != 3 {
		t.Fatalf("expected 3 diagnostics recorded, got %d", b.Len())
	}
}

func TestBagHasErrorsIgnoresWarnings(t *testing.T) {
	b := NewBag()
	b.Add(NewWarning(ExcessProperty, Position{Line: 1, Column: 1}, "a.ts", "just a warning"))
	if b.HasErrors() {
		t.Fatal("expected warnings alone not to count as errors")
	}
	b.Add(New(TypeMismatch, Position{Line: 1, Column: 1}, "a.ts", "real error"))
	if !b.HasErrors() {
		t.Fatal("expected HasErrors to report true once an Error-severity diagnostic is added")
	}
}

func TestFilterReturnsOnlyMatchingKind(t *testing.T) {
	b := NewBag()
	b.Add(New(TypeMismatch, Position{Line: 1, Column: 1}, "a.ts", "m1"))
	b.Add(New(UndefinedName, Position{Line: 2, Column: 1}, "a.ts", "u1"))
	b.Add(New(TypeMismatch, Position{Line: 3, Column: 1}, "a.ts", "m2"))

	mismatches := b.Filter(TypeMismatch)
	if len(mismatches) != 2 {
		t.Fatalf("expected 2 type_mismatch diagnostics, got %d", len(mismatches))
	}
}

func TestFormatterAlignsCaretOnAsciiLine(t *testing.T) {
	source := "let x: string = 1;"
	valueCol := strings.Index(source, "1") + 1 // 1-indexed column of the offending literal
	f := NewFormatter(map[string]string{"a.ts": source})
	d := New(TypeMismatch, Position{Line: 1, Column: valueCol}, "a.ts", "Type 'number' is not assignable to type 'string'")
	out := f.Format(d)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a 3-line rendering (header, source, caret), got %d: %q", len(lines), out)
	}
	caretCol := strings.Index(lines[2], "^")
	expectedCol := strings.LastIndex(lines[1], "1") // caret and the source's '1' (after the line-number gutter) share the same rendered column
	if caretCol != expectedCol {
		t.Errorf("expected caret aligned under the '1' at column %d, got %d", expectedCol, caretCol)
	}
}

func TestFormatAllNumbersMultipleDiagnostics(t *testing.T) {
	f := NewFormatter(nil)
	items := []*Diagnostic{
		New(TypeMismatch, Position{Line: 1, Column: 1}, "a.ts", "first"),
		New(UndefinedName, Position{Line: 2, Column: 1}, "a.ts", "second"),
	}
	out := f.FormatAll(items)
	if !strings.Contains(out, "[1 of 2]") || !strings.Contains(out, "[2 of 2]") {
		t.Errorf("expected numbered diagnostic banners, got %q", out)
	}
}
