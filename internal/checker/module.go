package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/builtins"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// ModuleRecord is the export table built for one module as its
// top-level declarations are collected (spec.md §4.6): named value
// exports, named type exports, an optional default export, and the
// mutually-exclusive CommonJS `export =` form. Session owns the map of
// resolved path to ModuleRecord and hands it to each Checker so that
// importing a sibling module already checked earlier in dependency
// order is a plain lookup, never a re-check.
type ModuleRecord struct {
	Path string

	Values  map[string]types.TypeInfo
	Types   map[string]types.TypeInfo
	Default types.TypeInfo

	// ExportEquals holds the bound value for `export = expr`; when
	// non-nil, Values/Types/Default must all be empty (spec.md §4.6/§7
	// treats mixing export forms as a fatal, not recoverable, error).
	ExportEquals types.TypeInfo

	// reexports holds modules named in `export * from "m"`, searched by
	// LookupValue/LookupType after this record's own tables.
	reexports []*ModuleRecord
}

// NewModuleRecord creates an empty record for the module at path.
func NewModuleRecord(path string) *ModuleRecord {
	return &ModuleRecord{
		Path:   path,
		Values: map[string]types.TypeInfo{},
		Types:  map[string]types.TypeInfo{},
	}
}

// AddValueExport registers a named value export. ok is false if this
// module already used `export =` (a fatal conflict the caller reports
// via diag.ExportAssignmentConflictDiag).
func (m *ModuleRecord) AddValueExport(name string, t types.TypeInfo) bool {
	if m.ExportEquals != nil {
		return false
	}
	m.Values[name] = t
	return true
}

// AddTypeExport registers a named type export (interface, type alias,
// enum-as-type, or a class's type-side binding).
func (m *ModuleRecord) AddTypeExport(name string, t types.TypeInfo) bool {
	if m.ExportEquals != nil {
		return false
	}
	m.Types[name] = t
	return true
}

// SetDefault registers this module's `export default` value. ok is
// false on a second default export or a conflict with `export =`.
func (m *ModuleRecord) SetDefault(t types.TypeInfo) bool {
	if m.ExportEquals != nil || m.Default != nil {
		return false
	}
	m.Default = t
	return true
}

// SetExportEquals registers `export = expr`. ok is false if this
// module already has any other export recorded.
func (m *ModuleRecord) SetExportEquals(t types.TypeInfo) bool {
	if len(m.Values) > 0 || len(m.Types) > 0 || m.Default != nil || m.ExportEquals != nil {
		return false
	}
	m.ExportEquals = t
	return true
}

// AddReexport records a `export * from "m"` source module, searched
// after this record's own tables by LookupValue/LookupType.
func (m *ModuleRecord) AddReexport(source *ModuleRecord) {
	m.reexports = append(m.reexports, source)
}

// LookupValue finds a named value export, including through `export *`
// re-exports.
func (m *ModuleRecord) LookupValue(name string) (types.TypeInfo, bool) {
	if t, ok := m.Values[name]; ok {
		return t, true
	}
	for _, r := range m.reexports {
		if t, ok := r.LookupValue(name); ok {
			return t, true
		}
	}
	return nil, false
}

// LookupType finds a named type export, including through re-exports.
func (m *ModuleRecord) LookupType(name string) (types.TypeInfo, bool) {
	if t, ok := m.Types[name]; ok {
		return t, true
	}
	for _, r := range m.reexports {
		if t, ok := r.LookupType(name); ok {
			return t, true
		}
	}
	return nil, false
}

// AsNamespace flattens a module's value exports into a Namespace type,
// the binding given to `import * as ns from "m"`.
func (m *ModuleRecord) AsNamespace(alias string) *types.Namespace {
	members := make(map[string]types.TypeInfo, len(m.Values))
	for k, v := range m.Values {
		members[k] = v
	}
	return &types.Namespace{Name: alias, Members: members}
}

// resolveModuleRecord resolves a module specifier relative to the file
// currently being checked and returns its already-built ModuleRecord.
// Session populates c.modules with every dependency's record in
// topological order before checking a module that imports it, so a
// resolver failure or a not-yet-checked module both surface as a
// ModuleResolution diagnostic rather than a panic.
func (c *Checker) resolveModuleRecord(pos diag.Position, specifier string) (*ModuleRecord, bool) {
	if builtin, ok := c.Catalog.Module(specifier); ok {
		return c.builtinModuleRecord(builtin), true
	}
	resolved, err := c.Resolver.Resolve(c.file, specifier)
	if err != nil {
		c.addError(diag.New(diag.ModuleResolution, pos, c.file, "Cannot find module '"+specifier+"' or its corresponding type declarations."))
		return nil, false
	}
	record, ok := c.modules[resolved]
	if !ok {
		c.addError(diag.New(diag.ModuleResolution, pos, c.file, "Cannot find module '"+specifier+"' or its corresponding type declarations."))
		return nil, false
	}
	return record, true
}

func (c *Checker) builtinModuleRecord(mod *builtins.Module) *ModuleRecord {
	record := NewModuleRecord(mod.Specifier)
	for name, t := range mod.Exports {
		record.AddValueExport(name, t)
	}
	return record
}

// bindImport applies one ImportDeclaration to the current (module-top-
// level) scope, binding Default/NamespaceAlias/Named/RequireEquals
// forms against the resolved source module's export table.
func (c *Checker) bindImport(decl *ast.ImportDeclaration) {
	specifier := decl.Source
	if decl.RequireEquals {
		specifier = decl.RequireTarget
	}
	pos := c.pos(decl)
	record, ok := c.resolveModuleRecord(pos, specifier)
	if !ok {
		return
	}

	if decl.RequireEquals {
		if record.ExportEquals != nil {
			c.env.DefineValue(decl.EqualsBinding, record.ExportEquals)
		} else {
			c.env.DefineValue(decl.EqualsBinding, record.AsNamespace(decl.EqualsBinding))
		}
		return
	}

	if decl.Default != "" {
		if record.Default != nil {
			c.env.DefineValue(decl.Default, record.Default)
		} else {
			c.addError(diag.New(diag.ModuleResolution, pos, c.file, "Module '\""+specifier+"\"' has no default export."))
		}
	}
	if decl.NamespaceAlias != "" {
		c.env.DefineValue(decl.NamespaceAlias, record.AsNamespace(decl.NamespaceAlias))
	}
	for _, spec := range decl.Named {
		if spec.TypeOnly {
			if t, ok := record.LookupType(spec.Imported); ok {
				c.env.DefineTypeAlias(spec.Local, t)
				continue
			}
		}
		if t, ok := record.LookupValue(spec.Imported); ok {
			c.env.DefineValue(spec.Local, t)
			continue
		}
		if t, ok := record.LookupType(spec.Imported); ok {
			c.env.DefineTypeAlias(spec.Local, t)
			continue
		}
		c.addError(diag.New(diag.ModuleResolution, pos, c.file,
			"Module '\""+specifier+"\"' has no exported member '"+spec.Imported+"'."))
	}
}

// applyStarExport resolves an `export * from "m"` / `export * as ns
// from "m"` declaration against the current module's own record.
func (c *Checker) applyStarExport(decl *ast.ExportDeclaration, own *ModuleRecord) {
	pos := c.pos(decl)
	source, ok := c.resolveModuleRecord(pos, decl.Source)
	if !ok {
		return
	}
	if decl.StarAlias != "" {
		own.AddValueExport(decl.StarAlias, source.AsNamespace(decl.StarAlias))
		return
	}
	own.AddReexport(source)
}
