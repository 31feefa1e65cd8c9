package builtins

import (
	"testing"

	"github.com/maruel/natural"

	"github.com/cwbudde/go-tscheck/internal/types"
)

func TestNewCatalogRegistersAllBuiltinModules(t *testing.T) {
	c := NewCatalog()
	want := []string{
		"fs", "path", "process", "os", "crypto", "util", "events", "stream",
		"buffer", "url", "querystring", "assert", "timers", "http",
		"child_process", "dns", "zlib", "readline", "perf_hooks", "string_decoder",
	}
	for _, specifier := range want {
		if _, ok := c.Module(specifier); !ok {
			t.Errorf("expected module %q to be registered", specifier)
		}
	}
}

func TestModuleLookupMissesUnknownSpecifier(t *testing.T) {
	c := NewCatalog()
	if _, ok := c.Module("not-a-real-module"); ok {
		t.Fatal("expected unknown specifier to miss")
	}
}

func TestSpecifierNamesAreNaturallySorted(t *testing.T) {
	c := NewCatalog()
	names := c.SpecifierNames()
	if len(names) != len(c.modules) {
		t.Fatalf("expected %d names, got %d", len(c.modules), len(names))
	}
	for i := 1; i < len(names); i++ {
		if natural.Less(names[i], names[i-1]) {
			t.Fatalf("names not naturally sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestFsModuleExportsExpectedNames(t *testing.T) {
	c := NewCatalog()
	fs, ok := c.Module("fs")
	if !ok {
		t.Fatal("expected fs module to be registered")
	}
	for _, export := range []string{"readFileSync", "writeFileSync", "existsSync", "statSync", "promises"} {
		if _, ok := fs.Exports[export]; !ok {
			t.Errorf("expected fs to export %q", export)
		}
	}
}

func TestEventsModuleEmitterMethodsReturnSelfInstance(t *testing.T) {
	c := NewCatalog()
	events, ok := c.Module("events")
	if !ok {
		t.Fatal("expected events module to be registered")
	}
	emitter, ok := events.Exports["EventEmitter"]
	if !ok {
		t.Fatal("expected events to export EventEmitter")
	}
	if emitter.String() == "" {
		t.Fatal("expected EventEmitter to have a non-empty display string")
	}
	cls, ok := emitter.(*types.ClassType)
	if !ok {
		t.Fatalf("expected EventEmitter to be a class, got %T", emitter)
	}
	for _, name := range []string{"on", "once", "off"} {
		inst, ok := cls.Methods[name].Signature.ReturnType.(*types.Instance)
		if !ok || inst.Class != cls {
			t.Errorf("expected %s to return an EventEmitter instance, got %v", name, cls.Methods[name].Signature.ReturnType)
		}
	}
}

func TestGlobalsIncludeConsoleAndWellKnownAmbientNames(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"console", "setTimeout", "clearTimeout", "globalThis", "NaN", "parseInt"} {
		if _, ok := c.Globals[name]; !ok {
			t.Errorf("expected global %q to be registered", name)
		}
	}
}

func TestModuleExportNamesAreNaturallySorted(t *testing.T) {
	c := NewCatalog()
	path, ok := c.Module("path")
	if !ok {
		t.Fatal("expected path module to be registered")
	}
	names := path.ExportNames()
	if len(names) != len(path.Exports) {
		t.Fatalf("expected %d export names, got %d", len(path.Exports), len(names))
	}
	for i := 1; i < len(names); i++ {
		if natural.Less(names[i], names[i-1]) {
			t.Fatalf("export names not naturally sorted: %q before %q", names[i-1], names[i])
		}
	}
}
