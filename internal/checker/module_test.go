package checker

import (
	"testing"

	"github.com/cwbudde/go-tscheck/internal/types"
)

func TestModuleRecordAddValueExport(t *testing.T) {
	m := NewModuleRecord("math")
	if !m.AddValueExport("square", types.Number) {
		t.Fatal("expected first value export to succeed")
	}
	got, ok := m.LookupValue("square")
	if !ok || got != types.Number {
		t.Fatalf("LookupValue(square) = %v, %v; want Number, true", got, ok)
	}
}

func TestModuleRecordExportEqualsExcludesOtherExports(t *testing.T) {
	m := NewModuleRecord("legacy")
	if !m.SetExportEquals(types.String) {
		t.Fatal("expected first export= to succeed")
	}
	if m.AddValueExport("extra", types.Number) {
		t.Fatal("expected a named export after export= to be rejected")
	}
	if m.SetDefault(types.Number) {
		t.Fatal("expected a default export after export= to be rejected")
	}
}

func TestModuleRecordSetExportEqualsTwiceConflicts(t *testing.T) {
	m := NewModuleRecord("legacy")
	if !m.SetExportEquals(types.String) {
		t.Fatal("expected first export= to succeed")
	}
	if m.SetExportEquals(types.Number) {
		t.Fatal("expected a second export= to be rejected")
	}
}

func TestModuleRecordSetDefaultTwiceConflicts(t *testing.T) {
	m := NewModuleRecord("app")
	if !m.SetDefault(types.Number) {
		t.Fatal("expected first default export to succeed")
	}
	if m.SetDefault(types.String) {
		t.Fatal("expected a second default export to be rejected")
	}
}

func TestModuleRecordLookupMissing(t *testing.T) {
	m := NewModuleRecord("empty")
	if _, ok := m.LookupValue("nope"); ok {
		t.Fatal("expected LookupValue on an empty record to fail")
	}
	if _, ok := m.LookupType("nope"); ok {
		t.Fatal("expected LookupType on an empty record to fail")
	}
}

func TestModuleRecordAsNamespace(t *testing.T) {
	m := NewModuleRecord("util")
	m.AddValueExport("double", types.Number)
	m.AddTypeExport("Options", types.String)

	ns := m.AsNamespace("Util")
	if ns.Name != "Util" {
		t.Fatalf("AsNamespace name = %q, want Util", ns.Name)
	}
	if _, ok := ns.Members["double"]; !ok {
		t.Error("expected value export to appear on the namespace")
	}
	if _, ok := ns.Members["Options"]; ok {
		t.Error("AsNamespace only flattens value exports; a type-only export should not appear")
	}
}
