// Package checker implements the static type checker: it walks a
// parsed module's AST, assigns a types.TypeInfo to every expression,
// verifies every statement, enforces declaration rules, and produces
// diagnostics (spec.md §§1-7). Grounded on the teacher's
// internal/semantic package — specifically its Pass/PassManager
// two-phase architecture (pass.go), its PassContext scope-stack/
// current-function/current-class state bag (pass_context.go), and its
// overload_resolution.go signature-selection loop — generalized from
// DWScript's nominal Pascal type system to this language's structural,
// union/intersection/generic-heavy one.
package checker

import (
	"strings"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/builtins"
	"github.com/cwbudde/go-tscheck/internal/config"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/resolver"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/typemap"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// functionContext is the per-function state the teacher's PassContext
// keeps as loose fields (CurrentFunction, InLambda, ...); bundled here
// into one struct so pushFunction/popFunction can save and restore it
// atomically, matching spec.md §5's RAII scope-guard discipline.
type functionContext struct {
	returnType   types.TypeInfo
	thisType     types.TypeInfo
	isAsync      bool
	isGenerator  bool
	name         string

	// inferredReturns accumulates every `return expr`'s checked type
	// when the function carries no declared return annotation, so the
	// function's own type can be built as their union once the body
	// finishes checking (spec.md §4.4).
	inferredReturns []types.TypeInfo
}

// loopContext tracks the nearest enclosing loop/switch for bare
// break/continue validation, and the set of labels reachable from
// here for labeled break/continue validation.
type loopContext struct {
	isLoop bool // false for a bare (non-loop) switch
	label  string
}

// Checker holds all state threaded through one module's checking pass:
// the shared catalog/resolver/config inputs, the output sinks (diag
// bag, type map), and the mutable "current X" stacks spec.md §5
// requires to be saved/restored around nested scopes.
type Checker struct {
	Catalog  *builtins.Catalog
	Resolver resolver.Resolver
	Project  *config.Project
	Bag      *diag.Bag
	Types    *typemap.Map

	file string
	env  *typeenv.Scope

	compatCache   map[compatKey]bool
	varianceCache map[string][]variancePosition

	functionStack []*functionContext
	classStack    []*types.ClassType
	loopStack     []*loopContext
	labels        map[string]bool

	narrowing *NarrowingContext

	modules map[string]*ModuleRecord

	// readonlyValues tracks const bindings (and readonly promoted
	// constructor parameter properties) by narrowing path, so
	// checkAssignmentExpression can report ReadonlyAssignmentDiag the
	// same way it reports a readonly field/property assignment.
	readonlyValues map[string]bool

	// collected marks an ast.Node already bound during the declaration
	// pass (decl_collect.go), so the body pass's per-statement checkers
	// skip re-defining it and only build+define genuinely nested
	// declarations encountered mid-body.
	collected map[ast.Node]types.TypeInfo

	// currentModuleRecord is the ModuleRecord this Checker's module
	// exports into, set by Session before running either pass.
	currentModuleRecord *ModuleRecord
}

// New creates a Checker for a single file, wired to the given shared
// catalog/resolver/project configuration and output sinks. Session
// (session.go) constructs one Checker per module in dependency order
// and reuses the Catalog/Resolver/Bag/Types across the whole run.
func New(file string, catalog *builtins.Catalog, res resolver.Resolver, project *config.Project, bag *diag.Bag, tm *typemap.Map, modules map[string]*ModuleRecord) *Checker {
	if project == nil {
		project = config.Default()
	}
	root := typeenv.New(typeenv.Global)
	seedGlobals(root, catalog)

	return &Checker{
		Catalog:       catalog,
		Resolver:      res,
		Project:       project,
		Bag:           bag,
		Types:         tm,
		file:          file,
		env:           root,
		compatCache:   make(map[compatKey]bool),
		varianceCache: make(map[string][]variancePosition),
		labels:        make(map[string]bool),
		narrowing:     NewNarrowingContext(),
		modules:       modules,
		readonlyValues: make(map[string]bool),
		collected:      make(map[ast.Node]types.TypeInfo),
	}
}

func seedGlobals(root *typeenv.Scope, catalog *builtins.Catalog) {
	if catalog == nil {
		return
	}
	for name, t := range catalog.Globals {
		root.DefineValue(name, t)
	}
}

// pos converts a token.Position-bearing AST node to a diag.Position
// and reports diagnostics against the checker's own file.
func (c *Checker) pos(n ast.Node) diag.Position {
	p := n.Pos()
	return diag.Position{Line: p.Line, Column: p.Column}
}

func (c *Checker) addError(d *diag.Diagnostic) {
	c.Bag.Add(d)
}

// pushScope opens a child scope and returns a guard func restoring the
// previous environment, matching
// spec.md §5's RAII scope-guard discipline: `defer c.pushScope(...)()`.
func (c *Checker) pushScope(kind typeenv.Kind) func() {
	prev := c.env
	c.env = c.env.Push(kind)
	return func() { c.env = prev }
}

func (c *Checker) pushFunction(fc *functionContext) func() {
	c.functionStack = append(c.functionStack, fc)
	return func() { c.functionStack = c.functionStack[:len(c.functionStack)-1] }
}

func (c *Checker) currentFunction() *functionContext {
	if len(c.functionStack) == 0 {
		return nil
	}
	return c.functionStack[len(c.functionStack)-1]
}

func (c *Checker) pushClass(cls *types.ClassType) func() {
	c.classStack = append(c.classStack, cls)
	return func() { c.classStack = c.classStack[:len(c.classStack)-1] }
}

func (c *Checker) currentClass() *types.ClassType {
	if len(c.classStack) == 0 {
		return nil
	}
	return c.classStack[len(c.classStack)-1]
}

func (c *Checker) pushLoop(lc *loopContext) func() {
	c.loopStack = append(c.loopStack, lc)
	return func() { c.loopStack = c.loopStack[:len(c.loopStack)-1] }
}

func (c *Checker) inLoopOrSwitch() bool {
	return len(c.loopStack) > 0
}

func (c *Checker) findLabel(label string) (*loopContext, bool) {
	for i := len(c.loopStack) - 1; i >= 0; i-- {
		if c.loopStack[i].label == label {
			return c.loopStack[i], true
		}
	}
	return nil, false
}

// recordReturn appends a checked `return expr` type to the innermost
// function's inference buffer; a no-op outside any function (a stray
// top-level return is a statement-checker diagnostic, not a crash
// here).
func (c *Checker) recordReturn(t types.TypeInfo) {
	if fc := c.currentFunction(); fc != nil {
		fc.inferredReturns = append(fc.inferredReturns, t)
	}
}

// pathBaseType resolves a narrowing path's (e.g. "a.b.c") declared
// type by looking up its root identifier in the environment and
// walking each remaining segment through propertyTypeOf, giving
// NarrowingContext.Apply a base type to refine when no narrowing has
// been recorded for that path yet.
func (c *Checker) pathBaseType(path string) types.TypeInfo {
	segments := strings.Split(path, ".")
	t, ok := c.env.LookupValue(segments[0])
	if !ok {
		return nil
	}
	for _, seg := range segments[1:] {
		next, ok := propertyTypeOf(t, seg)
		if !ok {
			return nil
		}
		t = next
	}
	return t
}
