package checker

import (
	"strings"

	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/diag"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// buildClassType resolves a class declaration's own shape — its
// parent, implemented interfaces, fields, methods, accessors, and
// constructor overloads — into a frozen types.ClassType, grounded on
// the teacher's registerBuiltinExceptionTypes class-table
// construction (class.go's ClassType doc comment). Method and
// accessor bodies are not checked here; only their signatures are
// resolved, so one member's signature can reference another's (or the
// class's own Instance type) regardless of declaration order. Body
// checking happens later, in checkClassDeclarationBody, once the class
// has a stable frozen shape to check `this` accesses against.
func (c *Checker) buildClassType(decl *ast.ClassDeclaration) *types.ClassType {
	popScope := c.pushScope(typeenv.ClassBody)
	defer popScope()

	cls := types.NewClassBuilder(decl.Name)
	cls.Abstract = decl.Abstract
	cls.TypeParams = c.resolveTypeParams(decl.TypeParams)

	if decl.Extends != nil {
		for _, a := range decl.Extends.TypeArgs {
			c.resolveType(a)
		}
		cls.Parent = c.resolveClassReference(decl.Extends)
	}
	for _, impl := range decl.Implements {
		if iface := c.resolveInterfaceReference(impl); iface != nil {
			cls.Interfaces = append(cls.Interfaces, iface)
		}
	}

	// Bind the class's own name (and push it as the current class) so a
	// field initializer or method signature can refer to `this`/`C`
	// before the type is handed back to the caller.
	if decl.Name != "" {
		c.env.DefineValue(decl.Name, cls)
	}
	popClass := c.pushClass(cls)
	defer popClass()

	for _, member := range decl.Members {
		switch m := member.(type) {
		case *ast.FieldDeclaration:
			c.declareClassField(cls, m)
		case *ast.MethodDeclaration:
			c.declareClassMethod(cls, m)
		case *ast.AccessorDeclaration:
			c.declareClassAccessor(cls, m)
		case *ast.AutoAccessorDeclaration:
			c.declareClassAutoAccessor(cls, m)
		}
	}
	return cls.Freeze()
}

// checkClassDeclarationBody checks every method/constructor/accessor
// body and static block of a class reached at statement position,
// reusing the ClassType the declaration pass (or, for a nested class,
// this call's own first encounter) already built via buildClassType.
func (c *Checker) checkClassDeclarationBody(decl *ast.ClassDeclaration) {
	cls := c.classTypeFor(decl)
	if decl.Name != "" {
		c.env.DefineValue(decl.Name, cls)
	}

	popScope := c.pushScope(typeenv.ClassBody)
	defer popScope()
	for _, tp := range cls.TypeParams {
		c.env.DefineTypeParameter(tp)
	}
	if decl.Name != "" {
		c.env.DefineValue(decl.Name, cls)
	}
	popClass := c.pushClass(cls)
	defer popClass()

	for _, member := range decl.Members {
		switch m := member.(type) {
		case *ast.MethodDeclaration:
			if m.Body == nil {
				continue
			}
			c.checkFunctionLike(m.TypeParams, m.Params, m.ReturnType, m.Body, m.Async, m.Generator, true, "", nil)
		case *ast.AccessorDeclaration:
			if m.Body == nil {
				continue
			}
			c.checkFunctionLike(nil, m.Params, m.ReturnType, m.Body, false, false, true, "", nil)
		case *ast.StaticBlock:
			c.checkStatement(m.Body)
		}
	}
}

func (c *Checker) classTypeFor(decl *ast.ClassDeclaration) *types.ClassType {
	if t, ok := c.collected[decl]; ok {
		if cls, ok := t.(*types.ClassType); ok {
			return cls
		}
	}
	cls := c.buildClassType(decl)
	c.collected[decl] = cls
	return cls
}

func (c *Checker) resolveClassReference(ref *ast.TypeReference) *types.ClassType {
	v, ok := c.env.LookupValue(ref.Name)
	if !ok {
		c.addError(diag.UndefinedTypeDiag(c.pos(ref), c.file, ref.Name))
		return nil
	}
	cls, ok := types.Resolve(v).(*types.ClassType)
	if !ok {
		c.addError(diag.New(diag.InheritanceError, c.pos(ref), c.file, "'"+ref.Name+"' is not a class."))
		return nil
	}
	return cls
}

func (c *Checker) resolveInterfaceReference(ref *ast.TypeReference) *types.InterfaceType {
	base, ok := c.env.LookupTypeAlias(ref.Name)
	if !ok {
		c.addError(diag.UndefinedTypeDiag(c.pos(ref), c.file, ref.Name))
		return nil
	}
	switch b := base.(type) {
	case *types.InterfaceType:
		return b
	case *types.GenericInterface:
		return b.Body
	default:
		return nil
	}
}

func visibilityOf(modifier string) types.Visibility {
	switch {
	case strings.Contains(modifier, "private"):
		return types.Private
	case strings.Contains(modifier, "protected"):
		return types.Protected
	default:
		return types.Public
	}
}

func modifierReadonly(modifier string) bool {
	return strings.Contains(modifier, "readonly")
}

func (c *Checker) declareClassField(cls *types.ClassType, m *ast.FieldDeclaration) {
	var t types.TypeInfo
	switch {
	case m.TypeAnn != nil:
		t = c.resolveType(m.TypeAnn)
		if m.Initializer != nil {
			init := c.checkExprContextual(m.Initializer, t)
			if !c.Assignable(t, init) {
				c.addError(diag.TypeMismatchDiag(c.pos(m.Initializer), c.file, t, init, m.Name))
			}
		}
	case m.Initializer != nil:
		t = widenIfUntyped(c.checkExpr(m.Initializer))
	default:
		t = types.Any
	}
	if m.Optional {
		t = types.NewUnion(t, types.Undefined)
	}
	cls.AddField(&types.FieldInfo{
		Name:       m.Name,
		Type:       t,
		Visibility: visibilityOf(m.Modifier),
		Static:     m.Static,
		Readonly:   m.Readonly || modifierReadonly(m.Modifier),
		Optional:   m.Optional,
	})
}

// declareClassMethod resolves a method (or constructor) signature. A
// constructor parameter declared with an access modifier (`private x:
// T`) is additionally registered as a class field — TypeScript's
// parameter-property shorthand for assigning `this.x = x` implicitly.
func (c *Checker) declareClassMethod(cls *types.ClassType, m *ast.MethodDeclaration) {
	pop := c.pushScope(typeenv.Function)
	typeParams := c.resolveTypeParams(m.TypeParams)
	params := c.resolveParamSignature(m.Params)
	var ret types.TypeInfo = types.Any
	if m.ReturnType != nil {
		ret = c.resolveType(m.ReturnType)
	}
	pop()

	sig := &types.Function{TypeParams: typeParams, Params: params, ReturnType: ret}

	if m.Name == "constructor" {
		for _, p := range m.Params {
			if p.Modifier == "" {
				continue
			}
			var ft types.TypeInfo = types.Any
			if p.TypeAnn != nil {
				ft = c.resolveType(p.TypeAnn)
			}
			cls.AddField(&types.FieldInfo{
				Name:       p.Name,
				Type:       ft,
				Visibility: visibilityOf(p.Modifier),
				Readonly:   modifierReadonly(p.Modifier),
			})
		}
		cls.AddConstructorOverload(sig)
		return
	}

	cls.AddMethod(&types.MethodInfo{
		Name:       m.Name,
		Signature:  sig,
		Visibility: visibilityOf(m.Modifier),
		Static:     m.Static,
		Abstract:   m.Abstract,
		Override:   m.Override,
		Virtual:    !strings.Contains(m.Modifier, "private"),
	})
}

func (c *Checker) declareClassAccessor(cls *types.ClassType, m *ast.AccessorDeclaration) {
	pop := c.pushScope(typeenv.Function)
	params := c.resolveParamSignature(m.Params)
	var t types.TypeInfo
	if m.Kind == "get" && m.ReturnType != nil {
		t = c.resolveType(m.ReturnType)
	} else if m.Kind == "set" && len(m.Params) > 0 && m.Params[0].TypeAnn != nil {
		t = c.resolveType(m.Params[0].TypeAnn)
	}
	pop()
	if t == nil {
		t = types.Any
	}

	existing, ok := cls.Accessors[m.Name]
	if !ok {
		existing = &types.AccessorInfo{
			Name:       m.Name,
			Type:       t,
			Visibility: visibilityOf(m.Modifier),
			Static:     m.Static,
			Abstract:   m.Abstract,
		}
	}
	sig := &types.Function{Params: params, ReturnType: t}
	if m.Kind == "get" {
		existing.Getter = sig
		existing.Type = t
	} else {
		existing.Setter = sig
		if existing.Getter == nil {
			existing.Type = t
		}
	}
	cls.AddAccessor(existing)
}

func (c *Checker) declareClassAutoAccessor(cls *types.ClassType, m *ast.AutoAccessorDeclaration) {
	var t types.TypeInfo
	if m.TypeAnn != nil {
		t = c.resolveType(m.TypeAnn)
	}
	if m.Initializer != nil {
		if t != nil {
			init := c.checkExprContextual(m.Initializer, t)
			if !c.Assignable(t, init) {
				c.addError(diag.TypeMismatchDiag(c.pos(m.Initializer), c.file, t, init, m.Name))
			}
		} else {
			t = widenIfUntyped(c.checkExpr(m.Initializer))
		}
	}
	if t == nil {
		t = types.Any
	}
	cls.AddAccessor(&types.AccessorInfo{
		Name:       m.Name,
		Type:       t,
		Getter:     &types.Function{ReturnType: t},
		Setter:     &types.Function{Params: []types.ParameterInfo{{Name: "value", Type: t}}, ReturnType: types.Void},
		Visibility: visibilityOf(m.Modifier),
		Static:     m.Static,
	})
}

// resolveParamSignature resolves a parameter list's declared types
// only, with no scope side effects beyond type annotation lookups —
// used for signature-only passes (declareClassMethod,
// declareClassAccessor) that must not bind the parameters themselves,
// since the body pass binds them again once it actually checks a body.
func (c *Checker) resolveParamSignature(params []*ast.Parameter) []types.ParameterInfo {
	out := make([]types.ParameterInfo, len(params))
	for i, p := range params {
		var t types.TypeInfo = types.Any
		if p.TypeAnn != nil {
			t = c.resolveType(p.TypeAnn)
		}
		out[i] = types.ParameterInfo{Name: p.Name, Type: t, Optional: p.Optional, Rest: p.Rest, Default: p.Default != nil}
	}
	return out
}
