package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func utilModule() *Module {
	return &Module{
		Specifier: "util",
		Exports: map[string]types.TypeInfo{
			"inspect":     fn([]types.ParameterInfo{param("value", types.Any), optParam("options", types.Object)}, types.String),
			"format":      fn([]types.ParameterInfo{param("fmt", types.String), {Name: "args", Type: types.Any, Rest: true}}, types.String),
			"promisify":   fn([]types.ParameterInfo{param("fn", types.Any)}, types.Any),
			"deprecate":   fn([]types.ParameterInfo{param("fn", types.Any), param("msg", types.String)}, types.Any),
			"isDeepStrictEqual": fn([]types.ParameterInfo{param("a", types.Any), param("b", types.Any)}, types.Boolean),
			"types": &types.Record{Properties: []types.PropertyInfo{
				{Name: "isPromise", Type: fn([]types.ParameterInfo{param("v", types.Any)}, types.Boolean)},
				{Name: "isRegExp", Type: fn([]types.ParameterInfo{param("v", types.Any)}, types.Boolean)},
			}},
		},
	}
}
