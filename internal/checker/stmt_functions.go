package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkFunctionDeclaration checks a `function name(...) { ... }`
// statement's body. A module-level declaration was already bound to
// its signature by the declaration pass (decl_collect.go) before the
// body pass ever reaches it; a nested declaration (one written inside
// another function's block) is bound here instead, on first
// encounter, since nothing else will have seen it. Either way the
// body is (re)checked here and, for a plain (non-overloaded) binding,
// the freshly-computed signature replaces whatever placeholder the
// declaration pass may have installed so forward references inside
// the body see the same accurate type callers do.
func (c *Checker) checkFunctionDeclaration(s *ast.FunctionDeclaration) {
	if s.Body == nil {
		return // an overload signature stub; nothing to check
	}
	fn := c.checkFunctionLike(s.TypeParams, s.Params, s.ReturnType, s.Body, s.Async, s.Generator, false, s.Name, nil)
	if s.Name == "" {
		return
	}
	if existing, ok := c.env.LookupValue(s.Name); ok && existing.Kind() == types.KindOverloadedFunction {
		return // the overload group's binding stays; only its implementation's body is checked here
	}
	c.env.Redefine(s.Name, fn)
}

// checkExportDeclaration checks the nested declaration an `export`
// statement wraps (`export function f() {}`). Every other export form
// — a default export expression, a bare named/re-export list, `export
// *`, `export =` — was already fully evaluated by the declaration
// pass (decl_collect.go's collectExportForm) before the body pass ever
// reached this statement, so there is nothing left to check here.
func (c *Checker) checkExportDeclaration(s *ast.ExportDeclaration) {
	if s.Declaration != nil {
		c.checkStatement(s.Declaration)
	}
}
