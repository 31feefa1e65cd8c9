package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func querystringModule() *Module {
	parsed := &types.Record{IndexSignatures: []types.IndexSignatureInfo{{KeyKind: types.KindString, Value: types.NewUnion(types.String, &types.Array{Element: types.String})}}}
	return &Module{
		Specifier: "querystring",
		Exports: map[string]types.TypeInfo{
			"parse":    fn([]types.ParameterInfo{param("str", types.String)}, parsed),
			"stringify": fn([]types.ParameterInfo{param("obj", types.Object)}, types.String),
			"escape":   fn([]types.ParameterInfo{param("str", types.String)}, types.String),
			"unescape": fn([]types.ParameterInfo{param("str", types.String)}, types.String),
		},
	}
}
