package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// applyAugmentations runs after a module's own two-phase pass
// (checkProgram) has finished, handling the three ambient forms that
// reach outside this module's own scope (spec.md §4.6 steps 4-5):
// `declare module "path" { ... }` augments another module's export
// surface (or defines an ambient one that was never actually parsed
// from a file), `declare module Name { ... }` / `declare namespace
// Name { ... }` declares an ambient namespace, `declare global { ...
// }` merges new bindings into the shared builtin catalog's globals so
// every later-checked module in the Session sees them, and a bare
// `declare const/function/class/...` ambient statement is bound at
// global scope as a last-resort fallback for a module-scoped ambient
// that has no narrower home to merge into.
func (c *Checker) applyAugmentations(prog *ast.Program) {
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.DeclareModuleStatement:
			c.applyModuleAugmentation(s)
		case *ast.DeclareGlobalStatement:
			c.applyGlobalAugmentation(s)
		case *ast.AmbientDeclaration:
			c.applyAmbientDeclaration(s)
		}
	}
}

func (c *Checker) applyModuleAugmentation(s *ast.DeclareModuleStatement) {
	if s.StringNamed {
		record, ok := c.modules[s.Name]
		if !ok {
			record = NewModuleRecord(s.Name)
			c.modules[s.Name] = record
		}
		pop := c.pushScope(typeenv.Module)
		scope := c.env
		c.collectDeclarations(s.Body, record)
		for _, stmt := range s.Body {
			c.checkStatement(stmt)
		}
		mergeOwnBindings(scope, record)
		pop()
		return
	}

	// `declare module Name { ... }` — an ambient namespace, merged the
	// same way a plain namespace declaration folds its exports.
	pop := c.pushScope(typeenv.Module)
	scope := c.env
	record := NewModuleRecord(s.Name)
	c.collectDeclarations(s.Body, record)
	for _, stmt := range s.Body {
		c.checkStatement(stmt)
	}
	mergeOwnBindings(scope, record)
	pop()

	ns := &types.Namespace{Name: s.Name, Members: map[string]types.TypeInfo{}}
	for k, v := range record.Values {
		ns.Members[k] = v
	}
	for k, v := range record.Types {
		if _, exists := ns.Members[k]; !exists {
			ns.Members[k] = v
		}
	}
	c.env.DefineValue(s.Name, ns)
}

func (c *Checker) applyGlobalAugmentation(s *ast.DeclareGlobalStatement) {
	pop := c.pushScope(typeenv.Global)
	scope := c.env
	record := NewModuleRecord("<global>")
	c.collectDeclarations(s.Body, record)
	for _, stmt := range s.Body {
		c.checkStatement(stmt)
	}
	mergeOwnBindings(scope, record)
	pop()

	if c.Catalog == nil {
		return
	}
	if c.Catalog.Globals == nil {
		c.Catalog.Globals = map[string]types.TypeInfo{}
	}
	for k, v := range record.Values {
		c.Catalog.Globals[k] = v
	}
}

// mergeOwnBindings folds every value/type binding an ambient block's
// pushed scope accumulated into record, so a declaration that was
// never wrapped in an explicit `export` (the common case inside
// `declare global`/`declare module`, where every member is implicitly
// visible outside the block) still ends up in the augmented surface —
// collectDeclarations's own export bookkeeping only catches the
// explicitly exported subset.
func mergeOwnBindings(scope *typeenv.Scope, record *ModuleRecord) {
	for name, t := range scope.OwnValues() {
		if _, exists := record.Values[name]; !exists {
			record.AddValueExport(name, t)
		}
	}
	for name, t := range scope.OwnTypeAliases() {
		if _, exists := record.Types[name]; !exists {
			record.AddTypeExport(name, t)
		}
	}
}

func (c *Checker) applyAmbientDeclaration(s *ast.AmbientDeclaration) {
	switch d := s.Declaration.(type) {
	case *ast.FunctionDeclaration:
		c.collectFunctionSignature(d)
	case *ast.ClassDeclaration:
		cls := c.buildClassType(d)
		if d.Name != "" {
			c.env.DefineValue(d.Name, cls)
		}
	case *ast.InterfaceDeclaration:
		iface := c.buildInterfaceType(d)
		c.env.DefineTypeAlias(d.Name, iface)
	case *ast.EnumDeclaration:
		enum := c.buildEnumType(d)
		c.env.DefineValue(d.Name, enum)
		c.env.DefineTypeAlias(d.Name, enum)
	case *ast.TypeAliasDeclaration:
		alias := c.buildTypeAlias(d)
		c.env.DefineTypeAlias(d.Name, alias)
	case *ast.VariableDeclaration:
		for _, decl := range d.Declarations {
			if decl.Name == "" {
				continue
			}
			var t types.TypeInfo = types.Any
			if decl.TypeAnn != nil {
				t = c.resolveType(decl.TypeAnn)
			}
			c.env.DefineValue(decl.Name, t)
		}
	}
}
