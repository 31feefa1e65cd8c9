package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkIfStatement narrows the consequent under the test's truthy
// guards and the alternate under its falsy ones, the same narrowing
// spine checkConditionalExpression uses for `?:` (spec.md §4.2).
func (c *Checker) checkIfStatement(s *ast.IfStatement) {
	c.checkExpr(s.Test)

	restore := c.narrowing.Apply(c.narrowCondition(s.Test, true), c.pathBaseType)
	c.checkStatement(s.Consequent)
	restore()

	if s.Alternate != nil {
		restoreAlt := c.narrowing.Apply(c.narrowCondition(s.Test, false), c.pathBaseType)
		c.checkStatement(s.Alternate)
		restoreAlt()
	}
}

func (c *Checker) checkWhileStatement(s *ast.WhileStatement) {
	c.checkExpr(s.Test)
	popLoop := c.pushLoop(&loopContext{isLoop: true, label: s.Label})
	restore := c.narrowing.Apply(c.narrowCondition(s.Test, true), c.pathBaseType)
	c.checkStatement(s.Body)
	restore()
	popLoop()
}

func (c *Checker) checkDoWhileStatement(s *ast.DoWhileStatement) {
	popLoop := c.pushLoop(&loopContext{isLoop: true, label: s.Label})
	c.checkStatement(s.Body)
	popLoop()
	c.checkExpr(s.Test)
}

func (c *Checker) checkForStatement(s *ast.ForStatement) {
	popScope := c.pushScope(typeenv.Block)
	defer popScope()

	switch init := s.Init.(type) {
	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(init)
	case ast.Expression:
		c.checkExpr(init)
	}
	if s.Test != nil {
		c.checkExpr(s.Test)
	}
	if s.Update != nil {
		c.checkExpr(s.Update)
	}

	popLoop := c.pushLoop(&loopContext{isLoop: true, label: s.Label})
	c.checkStatement(s.Body)
	popLoop()
}

func (c *Checker) checkForOfStatement(s *ast.ForOfStatement) {
	rightType := c.checkExpr(s.Right)
	elemType := iterationElementType(rightType)

	popScope := c.pushScope(typeenv.Block)
	defer popScope()
	c.bindForTarget(s.Left, elemType)

	popLoop := c.pushLoop(&loopContext{isLoop: true, label: s.Label})
	c.checkStatement(s.Body)
	popLoop()
}

func (c *Checker) checkForInStatement(s *ast.ForInStatement) {
	c.checkExpr(s.Right)

	popScope := c.pushScope(typeenv.Block)
	defer popScope()
	c.bindForTarget(s.Left, types.String)

	popLoop := c.pushLoop(&loopContext{isLoop: true, label: s.Label})
	c.checkStatement(s.Body)
	popLoop()
}

// iterationElementType derives the per-iteration value type of a
// `for...of` target's own type: an array's element, a tuple's member
// union, a Set/Iterator/Generator's own argument, a Map's [K, V] pair,
// or a plain string's characters; anything else degrades to any.
func iterationElementType(t types.TypeInfo) types.TypeInfo {
	switch v := types.Resolve(t).(type) {
	case *types.Array:
		return v.Element
	case *types.Tuple:
		members := make([]types.TypeInfo, len(v.Elements))
		for i, el := range v.Elements {
			members[i] = el.Type
		}
		return types.NewUnion(members...)
	case *types.BuiltinContainer:
		switch v.Name {
		case "Set", "Iterator", "Generator", "AsyncGenerator":
			if len(v.Args) > 0 {
				return v.Args[0]
			}
		case "Map":
			if len(v.Args) == 2 {
				return &types.Tuple{Elements: []types.TupleElementInfo{{Type: v.Args[0]}, {Type: v.Args[1]}}}
			}
		}
	case *types.Primitive:
		if v.K == types.KindString {
			return types.String
		}
	}
	return types.Any
}

// bindForTarget binds a for-of/for-in loop's left-hand side, which is
// either a fresh single-declarator VariableDeclaration or an existing
// assignment target (identifier, array pattern, or object pattern).
func (c *Checker) bindForTarget(left ast.Node, t types.TypeInfo) {
	switch v := left.(type) {
	case *ast.VariableDeclaration:
		if len(v.Declarations) == 0 {
			return
		}
		d := v.Declarations[0]
		if d.Pattern != nil {
			c.bindPattern(d.Pattern, t)
			return
		}
		c.env.DefineValue(d.Name, t)
		if v.Kind == "const" {
			c.readonlyValues[d.Name] = true
		}
	case *ast.Identifier:
		c.checkExpr(v)
		if path, ok := pathOf(v); ok {
			c.narrowing.Set(path, t)
		}
	case *ast.ArrayPattern:
		c.bindPattern(v, t)
	case *ast.ObjectPattern:
		c.bindPattern(v, t)
	}
}

func (c *Checker) checkSwitchStatement(s *ast.SwitchStatement) {
	discType := c.checkExpr(s.Discriminant)
	popLoop := c.pushLoop(&loopContext{isLoop: false, label: s.Label})
	for _, cs := range s.Cases {
		if cs.Test != nil {
			c.checkExprContextual(cs.Test, discType)
		}
		for _, stmt := range cs.Consequent {
			c.checkStatement(stmt)
		}
	}
	popLoop()
}

func (c *Checker) checkLabeledStatement(s *ast.LabeledStatement) {
	if c.labels[s.Label] {
		c.addError(diag.RedeclarationDiag(c.pos(s), c.file, s.Label))
	} else {
		c.labels[s.Label] = true
		defer delete(c.labels, s.Label)
	}
	c.checkStatement(s.Body)
}

// checkReturnStatement types a `return expr;` against the enclosing
// function's declared return type (unwrapped through Awaited for an
// async function, since the declared type is the function's Promise<T>
// while a return statement's value is T), or otherwise records it for
// end-of-body return-type inference (spec.md §4.4, recordReturn).
func (c *Checker) checkReturnStatement(s *ast.ReturnStatement) {
	fc := c.currentFunction()
	if fc == nil {
		c.addError(diag.New(diag.InvalidReturn, c.pos(s), c.file, "A 'return' statement can only be used within a function body."))
		if s.Argument != nil {
			c.checkExpr(s.Argument)
		}
		return
	}

	var argType types.TypeInfo = types.Undefined
	expected := fc.returnType
	if expected != nil && fc.isAsync {
		expected = types.Awaited(expected)
	}
	if s.Argument != nil {
		argType = c.checkExprContextual(s.Argument, expected)
	}

	if fc.returnType == nil {
		c.recordReturn(argType)
		return
	}
	if !c.Assignable(expected, argType) {
		c.addError(diag.TypeMismatchDiag(c.pos(s), c.file, expected, argType, "return"))
	}
}

func (c *Checker) checkBreakStatement(s *ast.BreakStatement) {
	if s.Label == "" {
		if !c.inLoopOrSwitch() {
			c.addError(diag.BreakOutsideLoopDiag(c.pos(s), c.file, "break"))
		}
		return
	}
	if _, ok := c.findLabel(s.Label); !ok {
		c.addError(diag.LabelNotFoundDiag(c.pos(s), c.file, s.Label))
	}
}

func (c *Checker) checkContinueStatement(s *ast.ContinueStatement) {
	if s.Label == "" {
		for i := len(c.loopStack) - 1; i >= 0; i-- {
			if c.loopStack[i].isLoop {
				return
			}
		}
		c.addError(diag.BreakOutsideLoopDiag(c.pos(s), c.file, "continue"))
		return
	}
	lc, ok := c.findLabel(s.Label)
	if !ok {
		c.addError(diag.LabelNotFoundDiag(c.pos(s), c.file, s.Label))
		return
	}
	if !lc.isLoop {
		c.addError(diag.New(diag.InvalidContinue, c.pos(s), c.file,
			"A 'continue' statement can only jump to a label of an enclosing iteration statement."))
	}
}

// checkTryStatement checks the try block, an optional catch clause
// (whose binding is typed unknown unless annotated — only unknown/any
// is legal there, matched structurally rather than diagnosed here),
// and an optional finally block.
func (c *Checker) checkTryStatement(s *ast.TryStatement) {
	c.checkStatement(s.Block)
	if s.Handler != nil {
		pop := c.pushScope(typeenv.Block)
		if s.Handler.Param != "" {
			var t types.TypeInfo = types.Unknown
			if s.Handler.TypeAnn != nil {
				t = c.resolveType(s.Handler.TypeAnn)
			}
			c.env.DefineValue(s.Handler.Param, t)
		}
		c.checkStatement(s.Handler.Body)
		pop()
	}
	if s.Finalizer != nil {
		c.checkStatement(s.Finalizer)
	}
}

func (c *Checker) checkUsingStatement(s *ast.UsingStatement) {
	t := c.checkExpr(s.Initializer)
	c.env.DefineValue(s.Name, t)
}
