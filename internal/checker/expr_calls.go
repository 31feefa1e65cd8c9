package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// checkCallExpression types `callee(args)`, including optional calls
// (`callee?.(args)`). An OverloadedFunction callee picks the first
// signature whose arity the call site satisfies; anything not
// callable reports NotCallableDiag, with any and unknown tolerated
// silently since nothing can be said about their shape.
func (c *Checker) checkCallExpression(e *ast.CallExpression) types.TypeInfo {
	calleeType := c.checkExpr(e.Callee)
	effective := calleeType
	nullable := false
	if e.Optional {
		nullable = hasNullishMember(calleeType)
		effective = filterByKeep(false, isNullishMember)(calleeType)
	}

	var result types.TypeInfo
	switch fn := types.Resolve(effective).(type) {
	case *types.Function:
		result = c.checkArgumentsAgainst(c.pos(e), e.Arguments, e.TypeArguments, fn).ReturnType
	case *types.OverloadedFunction:
		sig := c.selectSignature(fn.Signatures, fn.Implementation, len(e.Arguments))
		result = c.checkArgumentsAgainst(c.pos(e), e.Arguments, e.TypeArguments, sig).ReturnType
	case *types.GenericFunction:
		args := c.resolveTypeArgs(e.TypeArguments)
		inst := types.InstantiateFunction(fn, args)
		sig := inst.Result.(*types.Function)
		result = c.checkArgumentsAgainst(c.pos(e), e.Arguments, nil, sig).ReturnType
	default:
		for _, a := range e.Arguments {
			c.checkExpr(a)
		}
		if !isAny(effective) && !isUnknown(effective) {
			c.addError(diag.NotCallableDiag(c.pos(e), c.file, effective.String()))
		}
		result = types.Any
	}

	if nullable {
		return types.NewUnion(result, types.Undefined)
	}
	return result
}

// checkNewExpression types `new Callee(args)`. A plain (non-generic)
// class checks its constructor's arguments (selecting among
// ConstructorOverloads by arity when the class declares more than
// one) and yields an Instance of that class; a GenericClass is
// instantiated first via types.InstantiateClass.
func (c *Checker) checkNewExpression(e *ast.NewExpression) types.TypeInfo {
	calleeType := c.checkExpr(e.Callee)

	switch v := types.Resolve(calleeType).(type) {
	case *types.ClassType:
		if v.Abstract {
			c.addError(diag.AbstractInstantiationDiag(c.pos(e), c.file, v.Name))
		}
		ctor := v.Constructor
		if ctor == nil && len(v.ConstructorOverloads) > 0 {
			ctor = c.selectSignature(v.ConstructorOverloads, nil, len(e.Arguments))
		}
		if ctor != nil {
			c.checkArgumentsAgainst(c.pos(e), e.Arguments, e.TypeArguments, ctor)
		} else {
			for _, a := range e.Arguments {
				c.checkExpr(a)
			}
		}
		return &types.Instance{Class: v, Args: c.resolveTypeArgs(e.TypeArguments)}
	case *types.GenericClass:
		args := c.resolveTypeArgs(e.TypeArguments)
		inst := types.InstantiateClass(v, args)
		ic := inst.Result.(*types.Instance)
		ctor := ic.Class.Constructor
		if ctor == nil && len(ic.Class.ConstructorOverloads) > 0 {
			ctor = c.selectSignature(ic.Class.ConstructorOverloads, nil, len(e.Arguments))
		}
		if ctor != nil {
			c.checkArgumentsAgainst(c.pos(e), e.Arguments, nil, ctor)
		} else {
			for _, a := range e.Arguments {
				c.checkExpr(a)
			}
		}
		return ic
	default:
		for _, a := range e.Arguments {
			c.checkExpr(a)
		}
		if !isAny(calleeType) && !isUnknown(calleeType) {
			c.addError(diag.NotCallableDiag(c.pos(e), c.file, calleeType.String()))
		}
		return types.Any
	}
}

func (c *Checker) resolveTypeArgs(nodes []ast.TypeExpression) []types.TypeInfo {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]types.TypeInfo, len(nodes))
	for i, n := range nodes {
		out[i] = c.resolveType(n)
	}
	return out
}

// selectSignature picks the first of sigs whose arity (required
// count through a rest/optional tail) the call site's argument count
// satisfies, falling back to impl (an overload group's catch-all
// implementation signature, when present) and finally the first
// declared signature, so a call against a badly-arranged overload
// group still gets *a* signature to check arguments against rather
// than silently skipping the check.
func (c *Checker) selectSignature(sigs []*types.Function, impl *types.Function, argCount int) *types.Function {
	for _, sig := range sigs {
		hasRest := len(sig.Params) > 0 && sig.Params[len(sig.Params)-1].Rest
		if argCount >= sig.RequiredParamCount() && (hasRest || argCount <= len(sig.Params)) {
			return sig
		}
	}
	if impl != nil {
		return impl
	}
	if len(sigs) > 0 {
		return sigs[0]
	}
	return &types.Function{ReturnType: types.Any}
}

// instantiateCallSignature substitutes fn's own type parameters
// (distinct from any enclosing generic class/interface's, already
// substituted by the time fn reaches here) with typeArgs, explicit
// arguments taking priority over a type parameter's default, which in
// turn takes priority over its constraint, which in turn falls back
// to any.
func (c *Checker) instantiateCallSignature(fn *types.Function, typeArgNodes []ast.TypeExpression) *types.Function {
	if len(fn.TypeParams) == 0 {
		return fn
	}
	bindings := make(map[*types.TypeParameter]types.TypeInfo, len(fn.TypeParams))
	for i, tp := range fn.TypeParams {
		switch {
		case i < len(typeArgNodes):
			bindings[tp] = c.resolveType(typeArgNodes[i])
		case tp.Default != nil:
			bindings[tp] = tp.Default
		case tp.Constraint != nil:
			bindings[tp] = tp.Constraint
		default:
			bindings[tp] = types.Any
		}
	}
	return types.Substitute(fn, bindings).(*types.Function)
}

// checkArgumentsAgainst instantiates fn against any explicit type
// arguments, reports an arity mismatch, and checks each argument
// contextually against its matching parameter (a rest parameter's
// element type for every argument past the fixed ones).
func (c *Checker) checkArgumentsAgainst(pos diag.Position, argExprs []ast.Expression, typeArgNodes []ast.TypeExpression, fn *types.Function) *types.Function {
	inst := c.instantiateCallSignature(fn, typeArgNodes)

	hasRest := len(inst.Params) > 0 && inst.Params[len(inst.Params)-1].Rest
	if len(argExprs) < inst.RequiredParamCount() || (!hasRest && len(argExprs) > len(inst.Params)) {
		c.addError(diag.ArgumentCountDiag(pos, c.file, len(inst.Params), len(argExprs)))
	}

	for i, arg := range argExprs {
		if sp, ok := arg.(*ast.SpreadElement); ok {
			c.checkExpr(sp.Argument)
			continue
		}
		paramType := c.paramTypeAt(inst, i, hasRest)
		got := c.checkExprContextual(arg, paramType)
		if !isAny(paramType) && !c.Assignable(paramType, got) {
			c.addError(diag.TypeMismatchDiag(c.pos(arg), c.file, paramType, got, ""))
		}
	}
	return inst
}

func (c *Checker) paramTypeAt(fn *types.Function, i int, hasRest bool) types.TypeInfo {
	if i < len(fn.Params) {
		p := fn.Params[i]
		if p.Rest {
			if arr, ok := types.Resolve(p.Type).(*types.Array); ok {
				return arr.Element
			}
			return p.Type
		}
		return p.Type
	}
	if hasRest {
		last := fn.Params[len(fn.Params)-1]
		if arr, ok := types.Resolve(last.Type).(*types.Array); ok {
			return arr.Element
		}
		return last.Type
	}
	return types.Any
}

// checkFunctionLike drives both an arrow function and a function
// expression through the same param/body/return-inference pipeline,
// the one difference being whether `this` is inherited from the
// enclosing context (an arrow) or reset to any (a plain function,
// spec.md's simplification of TypeScript's call-site `this` binding).
// selfName, when non-empty, binds fn into its own body scope before
// checking the body so a named function expression can recurse.
func (c *Checker) checkFunctionLike(
	typeParamNodes []*ast.TypeParameterNode,
	params []*ast.Parameter,
	returnTypeNode ast.TypeExpression,
	body ast.Node,
	isAsync, isGenerator, inheritThis bool,
	selfName string,
	expectedFn *types.Function,
) *types.Function {
	popScope := c.pushScope(typeenv.Function)
	defer popScope()

	typeParams := c.resolveTypeParams(typeParamNodes)

	paramInfos := make([]types.ParameterInfo, len(params))
	for i, p := range params {
		var pt types.TypeInfo
		switch {
		case p.TypeAnn != nil:
			pt = c.resolveType(p.TypeAnn)
		case expectedFn != nil && i < len(expectedFn.Params):
			pt = expectedFn.Params[i].Type
		default:
			pt = types.Any
		}
		paramInfos[i] = types.ParameterInfo{Name: p.Name, Type: pt, Optional: p.Optional, Rest: p.Rest, Default: p.Default != nil}
	}

	var declaredRet types.TypeInfo
	if returnTypeNode != nil {
		declaredRet = c.resolveType(returnTypeNode)
	}

	fn := &types.Function{TypeParams: typeParams, Params: paramInfos, ReturnType: types.Any}
	if declaredRet != nil {
		fn.ReturnType = declaredRet
	}
	if selfName != "" {
		c.env.DefineValue(selfName, fn)
	}

	fc := &functionContext{isAsync: isAsync, isGenerator: isGenerator, returnType: declaredRet, name: selfName}
	if inheritThis {
		if prev := c.currentFunction(); prev != nil {
			fc.thisType = prev.thisType
		} else if cls := c.currentClass(); cls != nil {
			fc.thisType = &types.Instance{Class: cls}
		}
	} else {
		fc.thisType = types.Any
	}
	popFn := c.pushFunction(fc)
	defer popFn()

	for i, p := range params {
		c.env.DefineValue(p.Name, paramInfos[i].Type)
		if p.Default != nil {
			c.checkExprContextual(p.Default, paramInfos[i].Type)
		}
	}

	var inferredBody types.TypeInfo
	switch b := body.(type) {
	case *ast.BlockStatement:
		c.checkStatement(b)
		if declaredRet == nil && len(fc.inferredReturns) > 0 {
			inferredBody = types.NewUnion(fc.inferredReturns...)
		}
	case ast.Expression:
		bt := c.checkExprContextual(b, declaredRet)
		c.recordReturn(bt)
		if declaredRet == nil {
			inferredBody = bt
		}
	}

	ret := declaredRet
	if ret == nil {
		if inferredBody != nil {
			ret = inferredBody
		} else {
			ret = types.Void
		}
	}
	if isAsync {
		if bc, ok := types.Resolve(ret).(*types.BuiltinContainer); !ok || bc.Name != "Promise" {
			ret = types.NewPromise(ret)
		}
	}
	if isGenerator {
		ret = types.NewGenerator(ret, types.Void, types.Any)
	}
	fn.ReturnType = ret
	return fn
}

// checkArrowFunction types an arrow function expression, threading
// expected (an expected Function type, e.g. a callback parameter's
// declared type) into any untyped parameter.
func (c *Checker) checkArrowFunction(e *ast.ArrowFunctionExpression, expected types.TypeInfo) types.TypeInfo {
	expectedFn, _ := types.Resolve(expected).(*types.Function)
	return c.checkFunctionLike(e.TypeParams, e.Params, e.ReturnType, e.Body, e.Async, false, true, "", expectedFn)
}

// checkFunctionExpression types a (possibly named) function
// expression; Body is nil only for the malformed case of an ambient
// overload signature reaching expression position, in which case no
// body is checked.
func (c *Checker) checkFunctionExpression(e *ast.FunctionExpression, expected types.TypeInfo) types.TypeInfo {
	expectedFn, _ := types.Resolve(expected).(*types.Function)
	var body ast.Node
	if e.Body != nil {
		body = e.Body
	}
	return c.checkFunctionLike(e.TypeParams, e.Params, e.ReturnType, body, e.Async, e.Generator, false, e.Name, expectedFn)
}
