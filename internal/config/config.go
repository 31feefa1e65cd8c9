// Package config loads the project configuration (tscheck.json or
// tscheck.yaml) that governs decorator mode, strictness, ambient lib
// selection, and the file glob used to discover a project's sources.
// There is no teacher analogue — go-dws drives its entire behavior
// from CLI flags (cmd/dwscript/cmd/root.go) — so this package is
// additive, built in the teacher's "flat struct plus loader function"
// idiom rather than the teacher's own CLI-flag style.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// DecoratorMode selects which decorator proposal's arity and target
// rules the checker enforces (spec.md's decorator-semantics open
// question, resolved per-project rather than hardcoded).
type DecoratorMode string

const (
	DecoratorModeLegacy   DecoratorMode = "legacy"
	DecoratorModeStandard DecoratorMode = "standard"
)

// Project is the fully-resolved project configuration, after defaults
// have been filled in by Default.
type Project struct {
	DecoratorMode DecoratorMode `json:"decoratorMode" yaml:"decoratorMode"`
	Strict        bool          `json:"strict" yaml:"strict"`
	Lib           []string      `json:"lib" yaml:"lib"`
	Include       []string      `json:"include" yaml:"include"`
	Exclude       []string      `json:"exclude" yaml:"exclude"`
}

// Default returns the project configuration used when no tscheck.json
// or tscheck.yaml is found: standard decorators, strict mode on, every
// built-in module ambient, every .ts file included.
func Default() *Project {
	return &Project{
		DecoratorMode: DecoratorModeStandard,
		Strict:        true,
		Lib:           nil,
		Include:       []string{"**/*.ts"},
		Exclude:       []string{"node_modules/**"},
	}
}

// Load reads a project configuration from dir, preferring
// tscheck.json over tscheck.yaml/tscheck.yml when more than one is
// present, and falling back to Default when neither file exists.
func Load(dir string) (*Project, error) {
	jsonPath := filepath.Join(dir, "tscheck.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		return parseJSON(data)
	}

	for _, name := range []string{"tscheck.yaml", "tscheck.yml"} {
		yamlPath := filepath.Join(dir, name)
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			continue
		}
		return parseYAML(data)
	}

	return Default(), nil
}

// parseJSON reads a handful of optional top-level fields out of raw
// JSON with gjson rather than unmarshaling into a strict struct tree —
// an unrecognized extra field in a user's tscheck.json should never
// turn into a hard parse error.
func parseJSON(data []byte) (*Project, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config: tscheck.json is not valid JSON")
	}
	p := Default()
	root := gjson.ParseBytes(data)

	if v := root.Get("decoratorMode"); v.Exists() {
		mode, err := parseDecoratorMode(v.String())
		if err != nil {
			return nil, err
		}
		p.DecoratorMode = mode
	}
	if v := root.Get("strict"); v.Exists() {
		p.Strict = v.Bool()
	}
	if v := root.Get("lib"); v.Exists() && v.IsArray() {
		p.Lib = stringArray(v)
	}
	if v := root.Get("include"); v.Exists() && v.IsArray() {
		p.Include = stringArray(v)
	}
	if v := root.Get("exclude"); v.Exists() && v.IsArray() {
		p.Exclude = stringArray(v)
	}

	return p, nil
}

func stringArray(v gjson.Result) []string {
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

// parseYAML unmarshals tscheck.yaml into Project directly: unlike
// gjson's handful of optional fields, go-yaml's struct tags already
// describe the whole shape, so there is no benefit to a field-by-field
// reader here.
func parseYAML(data []byte) (*Project, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("config: invalid tscheck.yaml: %w", err)
	}
	if p.DecoratorMode == "" {
		p.DecoratorMode = DecoratorModeStandard
	} else if _, err := parseDecoratorMode(string(p.DecoratorMode)); err != nil {
		return nil, err
	}
	return p, nil
}

func parseDecoratorMode(raw string) (DecoratorMode, error) {
	switch strings.ToLower(raw) {
	case "legacy":
		return DecoratorModeLegacy, nil
	case "standard", "":
		return DecoratorModeStandard, nil
	default:
		return "", fmt.Errorf("config: unknown decoratorMode %q (want %q or %q)", raw, DecoratorModeLegacy, DecoratorModeStandard)
	}
}
