package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// declEntry is one top-level statement with its export wrapper, if
// any, peeled away so the two-phase pass below can dispatch on the
// wrapped declaration's own kind regardless of whether it was
// exported.
type declEntry struct {
	stmt     ast.Statement
	exported bool
}

func unwrapExports(stmts []ast.Statement) []declEntry {
	out := make([]declEntry, 0, len(stmts))
	for _, s := range stmts {
		if exp, ok := s.(*ast.ExportDeclaration); ok {
			if exp.Declaration != nil {
				out = append(out, declEntry{stmt: exp.Declaration, exported: true})
				continue
			}
		}
		out = append(out, declEntry{stmt: s})
	}
	return out
}

// collectDeclarations is the Declarations pass (spec.md §4.5): every
// interface, type alias, class, and enum is first given a stub name
// binding (so a sibling declaration can reference it before its
// members are resolved, regardless of source order), then has its
// actual shape filled in; functions are grouped into overloaded
// bindings as they're reached. Whatever an exported declaration
// produces is folded into record, the module's own ModuleRecord, so
// imports of this module by another resolve without re-walking this
// module's statements. A plain top-level variable is not pre-bound
// into scope here — only var/let/const with an explicit value pass
// the body a real initializer-derived type, and that type can depend
// on expressions the declaration pass has no business evaluating —
// but an annotated one still contributes its declared type to the
// module's export surface.
func (c *Checker) collectDeclarations(stmts []ast.Statement, record *ModuleRecord) {
	decls := unwrapExports(stmts)

	for _, d := range decls {
		switch n := d.stmt.(type) {
		case *ast.InterfaceDeclaration:
			iface := types.NewInterfaceBuilder(n.Name)
			c.env.DefineTypeAlias(n.Name, iface)
			c.collected[n] = iface
		case *ast.TypeAliasDeclaration:
			alias := &types.TypeAlias{Name: n.Name, AliasedType: types.Any}
			c.env.DefineTypeAlias(n.Name, alias)
			c.collected[n] = alias
		case *ast.ClassDeclaration:
			if n.Name != "" {
				c.env.DefineValue(n.Name, types.NewClassBuilder(n.Name))
			}
		case *ast.EnumDeclaration:
			stub := &types.EnumType{Name: n.Name, Const: n.Const}
			c.env.DefineValue(n.Name, stub)
			c.env.DefineTypeAlias(n.Name, stub)
			c.collected[n] = stub
		}
	}

	for _, d := range decls {
		switch n := d.stmt.(type) {
		case *ast.InterfaceDeclaration:
			iface := c.buildInterfaceType(n)
			c.env.Redefine(n.Name, iface)
			c.collected[n] = iface
			if d.exported {
				record.AddTypeExport(n.Name, iface)
			}
		case *ast.TypeAliasDeclaration:
			alias := c.buildTypeAlias(n)
			c.env.Redefine(n.Name, alias)
			c.collected[n] = alias
			if d.exported {
				record.AddTypeExport(n.Name, alias)
			}
		case *ast.ClassDeclaration:
			cls := c.buildClassType(n)
			if n.Name != "" {
				c.env.Redefine(n.Name, cls)
			}
			c.collected[n] = cls
			if d.exported && n.Name != "" {
				record.AddValueExport(n.Name, cls)
			}
		case *ast.EnumDeclaration:
			enum := c.buildEnumType(n)
			c.env.Redefine(n.Name, enum)
			c.collected[n] = enum
			if d.exported {
				record.AddValueExport(n.Name, enum)
				record.AddTypeExport(n.Name, enum)
			}
		case *ast.FunctionDeclaration:
			c.collectFunctionSignature(n)
			if d.exported && n.Name != "" {
				if sig, ok := c.env.LookupValue(n.Name); ok {
					record.AddValueExport(n.Name, sig)
				}
			}
		case *ast.NamespaceDeclaration:
			ns := c.namespaceFor(n)
			c.env.DefineValue(n.Name, ns)
			if d.exported {
				record.AddValueExport(n.Name, ns)
			}
		case *ast.VariableDeclaration:
			if !d.exported {
				continue
			}
			for _, decl := range n.Declarations {
				if decl.Name == "" {
					continue
				}
				var t types.TypeInfo = types.Any
				if decl.TypeAnn != nil {
					t = c.resolveType(decl.TypeAnn)
				}
				record.AddValueExport(decl.Name, t)
			}
		case *ast.ImportDeclaration:
			c.bindImport(n)
		}

		if exp, ok := d.stmt.(*ast.ExportDeclaration); ok {
			c.collectExportForm(exp, record)
		}
	}
}

// collectExportForm handles the export forms that don't wrap a nested
// declaration: `export { a, b as c }`, `export { a } from "m"`,
// `export * from "m"`, `export * as ns from "m"`, `export default
// expr`, and `export = expr`.
func (c *Checker) collectExportForm(exp *ast.ExportDeclaration, record *ModuleRecord) {
	switch {
	case exp.IsExportEquals:
		t := c.checkExpr(exp.ExportEqualsVal)
		if !record.SetExportEquals(t) {
			c.addError(diag.ExportAssignmentConflictDiag(c.pos(exp), c.file))
		}
	case exp.Default != nil:
		t := c.checkExpr(exp.Default)
		if !record.SetDefault(t) {
			c.addError(diag.ExportAssignmentConflictDiag(c.pos(exp), c.file))
		}
	case exp.Star:
		c.applyStarExport(exp, record)
	case exp.Source != "":
		src, ok := c.resolveModuleRecord(c.pos(exp), exp.Source)
		if !ok {
			return
		}
		for _, spec := range exp.Named {
			if t, ok := src.LookupValue(spec.Local); ok {
				record.AddValueExport(spec.Exported, t)
				continue
			}
			if t, ok := src.LookupType(spec.Local); ok {
				record.AddTypeExport(spec.Exported, t)
			}
		}
	case len(exp.Named) > 0:
		for _, spec := range exp.Named {
			if t, ok := c.env.LookupValue(spec.Local); ok {
				record.AddValueExport(spec.Exported, t)
				continue
			}
			if t, ok := c.env.LookupTypeAlias(spec.Local); ok {
				record.AddTypeExport(spec.Exported, t)
			}
		}
	}
}

// buildTypeAlias resolves `type Name<T> = ...` once its own type
// parameters are in scope, so the aliased expression can refer to
// them.
func (c *Checker) buildTypeAlias(decl *ast.TypeAliasDeclaration) *types.TypeAlias {
	popScope := c.pushScope(typeenv.Block)
	defer popScope()
	typeParams := c.resolveTypeParams(decl.TypeParams)
	for _, tp := range typeParams {
		c.env.DefineTypeParameter(tp)
	}
	return &types.TypeAlias{Name: decl.Name, TypeParams: typeParams, AliasedType: c.resolveType(decl.Value)}
}
