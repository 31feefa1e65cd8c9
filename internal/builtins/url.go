package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func urlModule() *Module {
	urlShape := types.NewClassBuilder("URL")
	for _, field := range []string{"href", "protocol", "host", "hostname", "port", "pathname", "search", "hash", "origin"} {
		urlShape.AddField(&types.FieldInfo{Name: field, Type: types.String})
	}
	urlShape.AddMethod(&types.MethodInfo{Name: "toString", Signature: fn(nil, types.String)})
	urlShape.AddConstructorOverload(fn([]types.ParameterInfo{param("input", types.String), optParam("base", types.String)}, &types.Instance{Class: urlShape}))
	urlShape.Freeze()

	searchParams := types.NewClassBuilder("URLSearchParams")
	searchParams.AddMethod(&types.MethodInfo{Name: "get", Signature: fn([]types.ParameterInfo{param("name", types.String)}, types.NewUnion(types.String, types.Null))})
	searchParams.AddMethod(&types.MethodInfo{Name: "set", Signature: fn([]types.ParameterInfo{param("name", types.String), param("value", types.String)}, types.Void)})
	searchParams.AddMethod(&types.MethodInfo{Name: "toString", Signature: fn(nil, types.String)})
	searchParams.Freeze()

	return &Module{
		Specifier: "url",
		Exports: map[string]types.TypeInfo{
			"URL":             urlShape,
			"URLSearchParams": searchParams,
		},
	}
}
