package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func dnsModule() *Module {
	lookupResult := &types.Record{Properties: []types.PropertyInfo{
		{Name: "address", Type: types.String},
		{Name: "family", Type: types.Number},
	}}
	lookupCallback := fn([]types.ParameterInfo{
		param("err", types.NewUnion(types.ErrorType, types.Null)),
		param("address", types.String),
		param("family", types.Number),
	}, types.Void)

	return &Module{
		Specifier: "dns",
		Exports: map[string]types.TypeInfo{
			"lookup":   fn([]types.ParameterInfo{param("hostname", types.String), optParam("options", types.Object), param("callback", lookupCallback)}, types.Void),
			"resolve":  fn([]types.ParameterInfo{param("hostname", types.String), param("callback", fn([]types.ParameterInfo{param("err", types.NewUnion(types.ErrorType, types.Null)), param("addresses", &types.Array{Element: types.String})}, types.Void))}, types.Void),
			"resolve4": fn([]types.ParameterInfo{param("hostname", types.String), param("callback", fn([]types.ParameterInfo{param("err", types.NewUnion(types.ErrorType, types.Null)), param("addresses", &types.Array{Element: types.String})}, types.Void))}, types.Void),
			"reverse":  fn([]types.ParameterInfo{param("ip", types.String), param("callback", fn([]types.ParameterInfo{param("err", types.NewUnion(types.ErrorType, types.Null)), param("hostnames", &types.Array{Element: types.String})}, types.Void))}, types.Void),
			"promises": &types.Record{Properties: []types.PropertyInfo{
				{Name: "lookup", Type: fn([]types.ParameterInfo{param("hostname", types.String)}, types.NewPromise(lookupResult))},
				{Name: "resolve", Type: fn([]types.ParameterInfo{param("hostname", types.String)}, types.NewPromise(&types.Array{Element: types.String}))},
			}},
		},
	}
}
