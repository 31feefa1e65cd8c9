package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkStatement is the Statement Checker's single entry point
// (spec.md §4.4), driving every statement kind the grammar defines.
// Declarations that the two-phase Declarations pass (decl_collect.go,
// passes.go) already bound at module scope are, when reached here at
// their own statement position, only re-checked for their body
// (function/class/namespace); the declaration node itself contributes
// nothing further to the environment a second time unless it is a
// nested declaration the pass never saw (a function declared inside
// another function's block, say), which is bound here on first
// encounter instead.
func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		c.checkBlockStatement(s)
	case *ast.ExpressionStatement:
		c.checkExpr(s.Expression)
	case *ast.EmptyStatement, *ast.DirectiveStatement:
	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(s)
	case *ast.IfStatement:
		c.checkIfStatement(s)
	case *ast.WhileStatement:
		c.checkWhileStatement(s)
	case *ast.DoWhileStatement:
		c.checkDoWhileStatement(s)
	case *ast.ForStatement:
		c.checkForStatement(s)
	case *ast.ForOfStatement:
		c.checkForOfStatement(s)
	case *ast.ForInStatement:
		c.checkForInStatement(s)
	case *ast.SwitchStatement:
		c.checkSwitchStatement(s)
	case *ast.LabeledStatement:
		c.checkLabeledStatement(s)
	case *ast.ReturnStatement:
		c.checkReturnStatement(s)
	case *ast.BreakStatement:
		c.checkBreakStatement(s)
	case *ast.ContinueStatement:
		c.checkContinueStatement(s)
	case *ast.ThrowStatement:
		c.checkExpr(s.Argument)
	case *ast.TryStatement:
		c.checkTryStatement(s)
	case *ast.UsingStatement:
		c.checkUsingStatement(s)
	case *ast.FunctionDeclaration:
		c.checkFunctionDeclaration(s)
	case *ast.ClassDeclaration:
		c.checkClassDeclarationBody(s)
	case *ast.InterfaceDeclaration, *ast.TypeAliasDeclaration, *ast.EnumDeclaration:
		// fully resolved during the declaration pass; nothing left to
		// check once its type has been bound.
	case *ast.NamespaceDeclaration:
		c.checkNamespaceDeclarationBody(s)
	case *ast.ImportDeclaration:
		// bound during the module layer (module.go) before the body
		// pass ever walks statements.
	case *ast.ExportDeclaration:
		c.checkExportDeclaration(s)
	case *ast.DeclareModuleStatement, *ast.DeclareGlobalStatement, *ast.AmbientDeclaration:
		// augmentation is applied by augment.go after the module's body
		// pass (Session.Check calls applyAugmentations after checkProgram).
	case ast.Pattern:
		// an ArrayPattern/ObjectPattern only reaches statement position
		// as a malformed bare destructuring expression statement's own
		// node; its members were already checked as an expression.
	default:
		c.addError(diag.New(diag.InvalidOperation, c.pos(stmt), c.file, "Unsupported statement form."))
	}
}

func (c *Checker) checkBlockStatement(s *ast.BlockStatement) {
	pop := c.pushScope(typeenv.Block)
	defer pop()
	for _, stmt := range s.Statements {
		c.checkStatement(stmt)
	}
}

// checkVariableDeclaration types `var/let/const a = ..., [b, c] = ...`.
// A declared type annotation contextually types the initializer and
// is checked for assignability; otherwise the initializer's (widened)
// type becomes the binding's type. const bindings are recorded in
// c.readonlyValues so a later assignment reports ReadonlyAssignment.
func (c *Checker) checkVariableDeclaration(s *ast.VariableDeclaration) {
	for _, d := range s.Declarations {
		var declared types.TypeInfo
		if d.TypeAnn != nil {
			declared = c.resolveType(d.TypeAnn)
		}

		var initType types.TypeInfo
		if d.Initializer != nil {
			if declared != nil {
				initType = c.checkExprContextual(d.Initializer, declared)
				if !c.Assignable(declared, initType) {
					c.addError(diag.TypeMismatchDiag(c.pos(d.Initializer), c.file, declared, initType, d.Name))
				}
			} else {
				initType = widenIfUntyped(c.checkExpr(d.Initializer))
			}
		}

		final := declared
		if final == nil {
			if initType != nil {
				final = initType
			} else {
				final = types.Any
			}
		}

		if d.Pattern != nil {
			c.bindPattern(d.Pattern, final)
			continue
		}
		if !c.env.DefineValue(d.Name, final) {
			c.addError(diag.RedeclarationDiag(c.pos(s), c.file, d.Name))
		}
		if s.Kind == "const" {
			c.readonlyValues[d.Name] = true
		}
	}
}

// bindPattern destructures t across pat's elements, recursing into
// any nested pattern and binding every leaf identifier it reaches.
func (c *Checker) bindPattern(pat ast.Pattern, t types.TypeInfo) {
	switch p := pat.(type) {
	case *ast.ArrayPattern:
		for i, el := range p.Elements {
			if el == nil {
				continue
			}
			var elemType types.TypeInfo
			switch {
			case el.Rest:
				elemType = &types.Array{Element: arrayElementOrAny(t)}
			default:
				if tup, ok := types.Resolve(t).(*types.Tuple); ok && i < len(tup.Elements) {
					elemType = tup.Elements[i].Type
				} else {
					elemType = arrayElementOrAny(t)
				}
			}
			if el.Default != nil {
				c.checkExprContextual(el.Default, elemType)
			}
			c.bindPatternTarget(el.Target, elemType)
		}
	case *ast.ObjectPattern:
		for _, el := range p.Elements {
			propType, ok := propertyTypeOf(t, el.Key)
			if !ok {
				propType = types.Any
			}
			if el.Default != nil {
				c.checkExprContextual(el.Default, propType)
			}
			c.bindPatternTarget(el.Target, propType)
		}
	}
}

func arrayElementOrAny(t types.TypeInfo) types.TypeInfo {
	if arr, ok := types.Resolve(t).(*types.Array); ok {
		return arr.Element
	}
	return types.Any
}

func (c *Checker) bindPatternTarget(target ast.Node, t types.TypeInfo) {
	switch v := target.(type) {
	case *ast.Identifier:
		c.env.DefineValue(v.Name, t)
	case *ast.ArrayPattern:
		c.bindPattern(v, t)
	case *ast.ObjectPattern:
		c.bindPattern(v, t)
	}
}
