package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// buildNamespace runs the declaration pass over a namespace's own body
// in a fresh Module-kind scope and folds whatever it exported into a
// types.Namespace value, the way `namespace NS { export const x = 1 }`
// makes `NS.x` resolve from outside (spec.md §4.5, §4.6).
func (c *Checker) buildNamespace(decl *ast.NamespaceDeclaration) *types.Namespace {
	pop := c.pushScope(typeenv.Module)
	defer pop()

	record := NewModuleRecord(decl.Name)
	c.collectDeclarations(decl.Body, record)

	ns := &types.Namespace{Name: decl.Name, Members: map[string]types.TypeInfo{}}
	for k, v := range record.Values {
		ns.Members[k] = v
	}
	for k, v := range record.Types {
		if _, exists := ns.Members[k]; !exists {
			ns.Members[k] = v
		}
	}
	return ns
}

func (c *Checker) namespaceFor(decl *ast.NamespaceDeclaration) *types.Namespace {
	if t, ok := c.collected[decl]; ok {
		if ns, ok := t.(*types.Namespace); ok {
			return ns
		}
	}
	ns := c.buildNamespace(decl)
	c.collected[decl] = ns
	return ns
}

// checkNamespaceDeclarationBody re-collects and checks a namespace's
// own statements in their own nested scope, so a member's body sees
// its sibling declarations the same way the module-level body pass
// does (spec.md §4.4/§4.5 applied recursively to a namespace).
func (c *Checker) checkNamespaceDeclarationBody(decl *ast.NamespaceDeclaration) {
	ns := c.namespaceFor(decl)
	c.env.DefineValue(decl.Name, ns)

	pop := c.pushScope(typeenv.Module)
	defer pop()

	record := NewModuleRecord(decl.Name)
	c.collectDeclarations(decl.Body, record)
	for _, stmt := range decl.Body {
		c.checkStatement(stmt)
	}
}
