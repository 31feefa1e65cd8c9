package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFallsBackToDefaultWhenNoProjectFileExists(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DecoratorMode != DecoratorModeStandard {
		t.Errorf("expected default decorator mode standard, got %q", p.DecoratorMode)
	}
	if !p.Strict {
		t.Error("expected default strict mode to be true")
	}
}

func TestLoadPrefersJSONOverYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tscheck.json", `{"decoratorMode": "legacy", "strict": false}`)
	writeFile(t, dir, "tscheck.yaml", "decoratorMode: standard\nstrict: true\n")

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DecoratorMode != DecoratorModeLegacy {
		t.Errorf("expected json config to win, got decoratorMode=%q", p.DecoratorMode)
	}
	if p.Strict {
		t.Error("expected json config's strict:false to win")
	}
}

func TestParseJSONReadsArrayFields(t *testing.T) {
	data := []byte(`{
		"lib": ["dom", "es2020"],
		"include": ["src/**/*.ts"],
		"exclude": ["src/**/*.spec.ts", "node_modules/**"]
	}`)
	p, err := parseJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Lib) != 2 || p.Lib[0] != "dom" || p.Lib[1] != "es2020" {
		t.Errorf("unexpected lib: %v", p.Lib)
	}
	if len(p.Include) != 1 || p.Include[0] != "src/**/*.ts" {
		t.Errorf("unexpected include: %v", p.Include)
	}
	if len(p.Exclude) != 2 {
		t.Errorf("unexpected exclude: %v", p.Exclude)
	}
}

func TestParseJSONRejectsUnknownDecoratorMode(t *testing.T) {
	_, err := parseJSON([]byte(`{"decoratorMode": "futuristic"}`))
	if err == nil {
		t.Fatal("expected an error for an unknown decoratorMode")
	}
}

func TestParseJSONRejectsInvalidJSON(t *testing.T) {
	_, err := parseJSON([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestParseYAMLAppliesDefaultsForMissingFields(t *testing.T) {
	p, err := parseYAML([]byte("strict: false\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DecoratorMode != DecoratorModeStandard {
		t.Errorf("expected decoratorMode to default to standard, got %q", p.DecoratorMode)
	}
	if p.Strict {
		t.Error("expected strict:false to be honored")
	}
}

func TestParseYAMLRejectsUnknownDecoratorMode(t *testing.T) {
	_, err := parseYAML([]byte("decoratorMode: futuristic\n"))
	if err == nil {
		t.Fatal("expected an error for an unknown decoratorMode")
	}
}

func TestIncludesHonorsWildcardAtAnyDepth(t *testing.T) {
	p := &Project{Include: []string{"**/*.ts"}, Exclude: []string{"**/*.spec.ts"}}

	if !p.Includes("src/app.ts") {
		t.Error("expected src/app.ts to be included")
	}
	if !p.Includes("src/nested/deep/widget.ts") {
		t.Error("expected a deeply nested .ts file to be included")
	}
	if p.Includes("src/app.spec.ts") {
		t.Error("expected a .spec.ts file to be excluded")
	}
	if p.Includes("src/app.js") {
		t.Error("expected a .js file not to match the .ts include glob")
	}
}

func TestIncludesWithNoIncludePatternsDefaultsToEverythingNotExcluded(t *testing.T) {
	p := &Project{Exclude: []string{"node_modules/**"}}

	if !p.Includes("src/app.ts") {
		t.Error("expected src/app.ts to be included when Include is empty")
	}
	if p.Includes("node_modules/lodash/index.ts") {
		t.Error("expected node_modules paths to stay excluded")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
