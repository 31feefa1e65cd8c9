package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
)

// checkProgram drives one module's Program through both passes of
// spec.md §4.5: the Declarations pass populates record (and the
// module's own lexical scope) from its top-level declarations, import
// bindings, and star re-exports; the body pass then re-walks the same
// statements, checking every executable form (spec.md §4.4) with the
// declaration pass's bindings already visible regardless of source
// order.
func (c *Checker) checkProgram(prog *ast.Program, record *ModuleRecord) {
	pop := c.pushScope(typeenv.Module)
	defer pop()

	c.currentModuleRecord = record
	c.collectDeclarations(prog.Statements, record)

	for _, stmt := range prog.Statements {
		c.checkStatement(stmt)
	}
}
