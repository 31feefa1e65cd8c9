package checker

import (
	"fmt"
	"sort"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/builtins"
	"github.com/cwbudde/go-tscheck/internal/config"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/resolver"
	"github.com/cwbudde/go-tscheck/internal/typemap"
)

// ResolvedModule is one already-parsed file handed to a Session: its
// canonical path (as a Resolver would produce from any specifier that
// refers to it) and its parsed AST.
type ResolvedModule struct {
	Path    string
	Program *ast.Program
}

// Result is everything a Session.Check run produced: every
// diagnostic across every module, the shared type side-table, and the
// per-module export surfaces a caller can inspect.
type Result struct {
	Diagnostics []*diag.Diagnostic
	Types       *typemap.Map
	Modules     map[string]*ModuleRecord
}

// HasErrors reports whether any module produced an Error or Fatal
// diagnostic.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.Error || d.Severity == diag.Fatal {
			return true
		}
	}
	return false
}

// Session checks a set of modules as one program, sharing a single
// diagnostic bag, type side-table, and builtin catalog across all of
// them — the multi-module counterpart of the teacher's PassManager
// driving one Pascal program's units through RunAll.
type Session struct {
	Catalog  *builtins.Catalog
	Resolver resolver.Resolver
	Project  *config.Project
}

// NewSession creates a Session. A nil Resolver defaults to an empty
// MapResolver (only builtin/ambient modules resolve); a nil Project
// defaults to config.Default().
func NewSession(catalog *builtins.Catalog, res resolver.Resolver, project *config.Project) *Session {
	if catalog == nil {
		catalog = builtins.NewCatalog()
	}
	if res == nil {
		res = resolver.NewMapResolver(nil)
	}
	if project == nil {
		project = config.Default()
	}
	return &Session{Catalog: catalog, Resolver: res, Project: project}
}

// Check type-checks every module in modules, in an order that lets an
// import see its dependency's completed ModuleRecord before its own
// declaration pass runs (spec.md §4.6). Modules outside any dependency
// cycle are checked in that resolved order; a cyclic group is ordered
// by the depth-first walk that enters it from its earliest member in
// source order (that member is checked after the members it reaches),
// with every member's (possibly still partially empty) ModuleRecord
// visible to the others from the start —
// the same best-effort handling real circular ES module imports get at
// runtime.
func (s *Session) Check(modules []*ResolvedModule) (*Result, error) {
	bag := diag.NewBag()
	tm := typemap.New()
	records := make(map[string]*ModuleRecord, len(modules))
	byPath := make(map[string]*ResolvedModule, len(modules))

	for _, m := range modules {
		if _, dup := byPath[m.Path]; dup {
			return nil, fmt.Errorf("checker: duplicate module path %q", m.Path)
		}
		byPath[m.Path] = m
		records[m.Path] = NewModuleRecord(m.Path)
	}

	order, err := topoOrder(modules, s.Resolver)
	if err != nil {
		return nil, err
	}

	for _, path := range order {
		m := byPath[path]
		c := New(m.Path, s.Catalog, s.Resolver, s.Project, bag, tm, records)
		record := records[m.Path]
		c.checkProgram(m.Program, record)
		c.applyAugmentations(m.Program)
		if bag.HasFatal() {
			break
		}
	}

	return &Result{Diagnostics: bag.All(), Types: tm, Modules: records}, nil
}

// topoOrder returns modules' paths ordered so a module is checked
// after every local (relative-specifier) import it statically
// declares; within a cycle the back edge is ignored and the modules
// keep the depth-first post-order of the walk. Bare
// specifiers (package/ambient modules) are not modeled as edges since
// they never point at another entry in modules.
func topoOrder(modules []*ResolvedModule, res resolver.Resolver) ([]string, error) {
	byPath := make(map[string]*ResolvedModule, len(modules))
	index := make(map[string]int, len(modules))
	for i, m := range modules {
		byPath[m.Path] = m
		index[m.Path] = i
	}

	visited := make(map[string]int) // 0 = unvisited, 1 = in progress, 2 = done
	var order []string

	var visit func(path string) error
	visit = func(path string) error {
		m, ok := byPath[path]
		if !ok {
			return nil // bare specifier or a module outside this batch
		}
		switch visited[path] {
		case 2:
			return nil
		case 1:
			return nil // cycle: stop descending along the back edge
		}
		visited[path] = 1
		for _, dep := range localImportPaths(m, res) {
			if err := visit(dep); err != nil {
				return err
			}
		}
		visited[path] = 2
		order = append(order, path)
		return nil
	}

	paths := make([]string, len(modules))
	for i, m := range modules {
		paths[i] = m.Path
	}
	sort.Slice(paths, func(i, j int) bool { return index[paths[i]] < index[paths[j]] })

	for _, p := range paths {
		if err := visit(p); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// localImportPaths collects every relative import/re-export
// specifier a module's top-level statements declare, resolved to a
// canonical path against the module's own path, for dependency
// ordering purposes only (actual binding during checking still goes
// through bindImport/applyStarExport, which re-resolve independently).
func localImportPaths(m *ResolvedModule, res resolver.Resolver) []string {
	var out []string
	add := func(spec string) {
		if spec == "" {
			return
		}
		if len(spec) < 2 || (spec[:2] != "./" && spec[:2] != "..") {
			return
		}
		resolved, err := res.Resolve(m.Path, spec)
		if err != nil {
			return
		}
		out = append(out, resolved)
	}
	for _, stmt := range m.Program.Statements {
		switch s := stmt.(type) {
		case *ast.ImportDeclaration:
			add(s.Source)
			add(s.RequireTarget)
		case *ast.ExportDeclaration:
			add(s.Source)
		}
	}
	return out
}
