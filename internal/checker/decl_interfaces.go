package checker

import (
	"github.com/cwbudde/go-tscheck/internal/ast"
	"github.com/cwbudde/go-tscheck/internal/typeenv"
	"github.com/cwbudde/go-tscheck/internal/types"
)

// buildInterfaceType resolves an interface declaration's own members
// into a frozen types.InterfaceType, grounded on the teacher's
// registerBuiltinExceptionTypes-style builder usage (class.go's
// NewInterfaceBuilder). Named properties and methods are carried onto
// the frozen type; a call signature is stored as a method named "" and
// a construct signature as a method named "new". An index signature
// member contributes nothing to the interface type.
func (c *Checker) buildInterfaceType(decl *ast.InterfaceDeclaration) *types.InterfaceType {
	pop := c.pushScope(typeenv.ClassBody)
	defer pop()

	iface := types.NewInterfaceBuilder(decl.Name)
	iface.TypeParams = c.resolveTypeParams(decl.TypeParams)

	for _, ext := range decl.Extends {
		if parent := c.resolveInterfaceReference(ext); parent != nil {
			iface.Extends = append(iface.Extends, parent)
		}
	}

	for _, m := range decl.Members {
		switch {
		case m.Property != nil:
			p := m.Property
			var t types.TypeInfo = types.Any
			if p.Type != nil {
				t = c.resolveType(p.Type)
			}
			iface.AddProperty(types.PropertyInfo{Name: p.Name, Type: t, Optional: p.Optional, Readonly: p.Readonly})
		case m.Method != nil:
			iface.AddMethod(m.Method.Name, c.resolveMethodSignature(*m.Method))
		case m.Call != nil:
			iface.AddMethod("", c.resolveCallSignature(*m.Call))
		case m.Construct != nil:
			sig := c.resolveCallSignature(ast.CallSignature{TypeParams: m.Construct.TypeParams, Params: m.Construct.Params, ReturnType: m.Construct.ReturnType})
			iface.AddMethod("new", sig)
		}
	}
	return iface.Freeze()
}

func (c *Checker) interfaceTypeFor(decl *ast.InterfaceDeclaration) *types.InterfaceType {
	if t, ok := c.collected[decl]; ok {
		if iface, ok := t.(*types.InterfaceType); ok {
			return iface
		}
	}
	iface := c.buildInterfaceType(decl)
	c.collected[decl] = iface
	return iface
}
