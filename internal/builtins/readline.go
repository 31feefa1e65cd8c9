package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func readlineModule() *Module {
	iface := types.NewClassBuilder("Interface")
	iface.AddMethod(&types.MethodInfo{Name: "question", Signature: fn([]types.ParameterInfo{param("query", types.String), param("callback", fn([]types.ParameterInfo{param("answer", types.String)}, types.Void))}, types.Void)})
	iface.AddMethod(&types.MethodInfo{Name: "close", Signature: fn(nil, types.Void)})
	iface.AddMethod(&types.MethodInfo{Name: "on", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void))}, &types.Instance{Class: iface})})
	iface.Freeze()

	options := &types.Record{Properties: []types.PropertyInfo{
		{Name: "input", Type: types.Any},
		{Name: "output", Type: types.Any, Optional: true},
		{Name: "terminal", Type: types.Boolean, Optional: true},
	}}

	return &Module{
		Specifier: "readline",
		Exports: map[string]types.TypeInfo{
			"createInterface": fn([]types.ParameterInfo{param("options", options)}, &types.Instance{Class: iface}),
			"Interface":       iface,
		},
	}
}
