package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func processModule() *Module {
	env := &types.Record{IndexSignatures: []types.IndexSignatureInfo{{KeyKind: types.KindString, Value: types.NewUnion(types.String, types.Undefined)}}}
	processShape := &types.Record{Properties: []types.PropertyInfo{
		{Name: "argv", Type: &types.Array{Element: types.String}},
		{Name: "env", Type: env},
		{Name: "platform", Type: types.String},
		{Name: "version", Type: types.String},
		{Name: "exitCode", Type: types.Number, Optional: true},
		{Name: "exit", Type: fn([]types.ParameterInfo{optParam("code", types.Number)}, types.Never)},
		{Name: "cwd", Type: fn(nil, types.String)},
		{Name: "nextTick", Type: fn([]types.ParameterInfo{param("callback", fn(nil, types.Void)), {Name: "args", Type: types.Any, Rest: true}}, types.Void)},
		{Name: "on", Type: fn([]types.ParameterInfo{param("event", types.String), param("listener", fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void))}, types.Void)},
	}}
	return &Module{Specifier: "process", Exports: map[string]types.TypeInfo{"default": processShape}}
}
