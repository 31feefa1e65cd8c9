package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func pathModule() *Module {
	strFn := func(params ...string) *types.Function {
		infos := make([]types.ParameterInfo, len(params))
		for i, p := range params {
			infos[i] = param(p, types.String)
		}
		return fn(infos, types.String)
	}
	parsed := &types.Record{Properties: []types.PropertyInfo{
		{Name: "root", Type: types.String},
		{Name: "dir", Type: types.String},
		{Name: "base", Type: types.String},
		{Name: "ext", Type: types.String},
		{Name: "name", Type: types.String},
	}}
	return &Module{
		Specifier: "path",
		Exports: map[string]types.TypeInfo{
			"join":     fn([]types.ParameterInfo{{Name: "segments", Type: types.String, Rest: true}}, types.String),
			"resolve":  fn([]types.ParameterInfo{{Name: "segments", Type: types.String, Rest: true}}, types.String),
			"relative": strFn("from", "to"),
			"dirname":  strFn("p"),
			"basename": fn([]types.ParameterInfo{param("p", types.String), optParam("ext", types.String)}, types.String),
			"extname":  strFn("p"),
			"normalize": strFn("p"),
			"isAbsolute": fn([]types.ParameterInfo{param("p", types.String)}, types.Boolean),
			"parse":     fn([]types.ParameterInfo{param("p", types.String)}, parsed),
			"sep":       &types.LiteralString{Value: "/"},
			"delimiter": &types.LiteralString{Value: ":"},
		},
	}
}
