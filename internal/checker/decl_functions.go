package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// resolveFunctionSignatureOnly resolves a function declaration's shape
// — type parameters, parameter types, return type — without checking
// its body or binding its parameters permanently. Used by the
// declaration pass so a sibling declaration can see this function's
// signature before checkFunctionDeclaration ever walks its body.
func (c *Checker) resolveFunctionSignatureOnly(decl *ast.FunctionDeclaration) *types.Function {
	pop := c.pushScope(typeenv.Function)
	defer pop()

	typeParams := c.resolveTypeParams(decl.TypeParams)
	params := c.resolveParamSignature(decl.Params)
	var ret types.TypeInfo = types.Any
	if decl.ReturnType != nil {
		ret = c.resolveType(decl.ReturnType)
	}
	return &types.Function{TypeParams: typeParams, Params: params, ReturnType: ret}
}

// collectFunctionSignature binds a top-level function declaration's
// signature into the module scope, merging repeated declarations of
// the same name into an OverloadedFunction the way `function f(a:
// string): void; function f(a: number): void; function f(a: any) {
// ... }` collapses into one callable binding with two visible
// signatures and a hidden implementation (spec.md §4.5).
func (c *Checker) collectFunctionSignature(decl *ast.FunctionDeclaration) {
	sig := c.resolveFunctionSignatureOnly(decl)

	existing, ok := c.env.LookupValue(decl.Name)
	if !ok {
		if decl.Body == nil {
			c.env.DefineValue(decl.Name, &types.OverloadedFunction{Name: decl.Name, Signatures: []*types.Function{sig}})
			return
		}
		c.env.DefineValue(decl.Name, sig)
		return
	}

	switch e := existing.(type) {
	case *types.OverloadedFunction:
		if decl.Body != nil {
			e.Implementation = sig
		} else {
			e.Signatures = append(e.Signatures, sig)
		}
	case *types.Function:
		merged := &types.OverloadedFunction{Name: decl.Name, Signatures: []*types.Function{e}}
		if decl.Body != nil {
			merged.Implementation = sig
		} else {
			merged.Signatures = append(merged.Signatures, sig)
		}
		c.env.Redefine(decl.Name, merged)
	default:
		c.addError(diag.RedeclarationDiag(c.pos(decl), c.file, decl.Name))
	}
}
