// Package builtins declares the ambient type surface available to
// every checked program without an import: the global scope (console,
// Array, Promise, ...) and the Node-style built-in modules resolvable
// by bare specifier ("fs", "path", "process", ...). Grounded on the
// teacher's internal/semantic/analyzer.go registerBuiltinExceptionTypes
// and initArrayHelpers/initIntrinsicHelpers — both build declarative
// tables of `*types.ClassType`/`*types.FunctionType` values once at
// analyzer construction time, the same shape this package uses for its
// own declarative module tables.
package builtins

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/cwbudde/go-tscheck/internal/types"
)

// Module is one built-in module's exported surface: a fixed map of
// export name to resolved TypeInfo, as if it were a fully type-checked
// .d.ts ambient module declaration.
type Module struct {
	Specifier string
	Exports   map[string]types.TypeInfo
}

// Catalog is the full set of built-in modules plus the global scope's
// ambient bindings (console, setTimeout, globalThis's well-known
// constructors), assembled once by NewCatalog and treated as read-only
// by the checker.
type Catalog struct {
	Globals map[string]types.TypeInfo
	modules map[string]*Module
}

// NewCatalog builds the full built-in catalog.
func NewCatalog() *Catalog {
	c := &Catalog{
		Globals: map[string]types.TypeInfo{},
		modules: map[string]*Module{},
	}
	c.registerGlobals()
	for _, m := range []*Module{
		fsModule(),
		pathModule(),
		processModule(),
		osModule(),
		cryptoModule(),
		utilModule(),
		eventsModule(),
		streamModule(),
		bufferModule(),
		urlModule(),
		querystringModule(),
		assertModule(),
		timersModule(),
		httpModule(),
		childProcessModule(),
		dnsModule(),
		zlibModule(),
		readlineModule(),
		perfHooksModule(),
		stringDecoderModule(),
	} {
		c.modules[m.Specifier] = m
	}
	return c
}

// Module returns the built-in module registered under specifier, if any.
func (c *Catalog) Module(specifier string) (*Module, bool) {
	m, ok := c.modules[specifier]
	return m, ok
}

// SpecifierNames returns every registered built-in module specifier,
// naturally sorted, so runs of digits compare by numeric value
// ("a9" sorts before "a10", unlike a plain lexical sort).
func (c *Catalog) SpecifierNames() []string {
	names := make([]string, 0, len(c.modules))
	for name := range c.modules {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names
}

// ExportNames returns a module's export names, naturally sorted.
func (m *Module) ExportNames() []string {
	names := make([]string, 0, len(m.Exports))
	for name := range m.Exports {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
	return names
}

func fn(params []types.ParameterInfo, ret types.TypeInfo) *types.Function {
	return &types.Function{Params: params, ReturnType: ret}
}

func param(name string, t types.TypeInfo) types.ParameterInfo {
	return types.ParameterInfo{Name: name, Type: t}
}

func optParam(name string, t types.TypeInfo) types.ParameterInfo {
	return types.ParameterInfo{Name: name, Type: t, Optional: true}
}
