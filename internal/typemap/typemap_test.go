package typemap

import (
	"testing"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/token"
	"github.com/cwbudde/go-tscheck/internal/types"
)

func TestSetAndGetTypeRoundTrips(t *testing.T) {
	m := New()
	expr := &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Name: "x"}

	if m.HasType(expr) {
		t.Fatal("expected no recorded type before SetType")
	}
	m.SetType(expr, types.String)
	if !m.HasType(expr) {
		t.Fatal("expected HasType to report true after SetType")
	}
	if got := m.GetType(expr); !got.Equals(types.String) {
		t.Fatalf("expected string, got %v", got)
	}
	if m.TypeCount() != 1 {
		t.Fatalf("expected TypeCount 1, got %d", m.TypeCount())
	}
}

func TestSymbolTypesAreIndependentOfExpressionTypes(t *testing.T) {
	m := New()
	decl := &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Name: "x"}

	m.SetSymbolType(decl, types.Number)
	if m.HasType(decl) {
		t.Fatal("expected the expression table not to see a symbol-only entry")
	}
	if got := m.GetSymbolType(decl); !got.Equals(types.Number) {
		t.Fatalf("expected number, got %v", got)
	}
	if m.SymbolCount() != 1 {
		t.Fatalf("expected SymbolCount 1, got %d", m.SymbolCount())
	}
}

func TestClearEmptiesBothTables(t *testing.T) {
	m := New()
	node := &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "x"}, Name: "x"}
	m.SetType(node, types.String)
	m.SetSymbolType(node, types.String)

	m.Clear()
	if m.TypeCount() != 0 || m.SymbolCount() != 0 {
		t.Fatalf("expected both tables empty after Clear, got %d/%d", m.TypeCount(), m.SymbolCount())
	}
}

func TestDistinctNodesGetDistinctEntries(t *testing.T) {
	m := New()
	a := &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "a"}, Name: "a"}
	b := &ast.Identifier{Token: token.Token{Type: token.IDENT, Literal: "b"}, Name: "b"}
	m.SetType(a, types.String)
	m.SetType(b, types.Number)

	if !m.GetType(a).Equals(types.String) || !m.GetType(b).Equals(types.Number) {
		t.Fatal("expected each node to keep its own recorded type")
	}
}
