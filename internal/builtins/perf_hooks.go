package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func perfHooksModule() *Module {
	entry := &types.Record{Properties: []types.PropertyInfo{
		{Name: "name", Type: types.String},
		{Name: "entryType", Type: types.String},
		{Name: "startTime", Type: types.Number},
		{Name: "duration", Type: types.Number},
	}}

	observer := types.NewClassBuilder("PerformanceObserver")
	observer.AddMethod(&types.MethodInfo{Name: "observe", Signature: fn([]types.ParameterInfo{param("options", types.Object)}, types.Void)})
	observer.AddMethod(&types.MethodInfo{Name: "disconnect", Signature: fn(nil, types.Void)})
	observer.AddConstructorOverload(fn([]types.ParameterInfo{param("callback", fn([]types.ParameterInfo{param("list", types.Any)}, types.Void))}, &types.Instance{Class: observer}))
	observer.Freeze()

	performance := &types.Record{Properties: []types.PropertyInfo{
		{Name: "now", Type: fn(nil, types.Number)},
		{Name: "mark", Type: fn([]types.ParameterInfo{param("name", types.String)}, types.Void)},
		{Name: "measure", Type: fn([]types.ParameterInfo{param("name", types.String), optParam("start", types.String), optParam("end", types.String)}, entry)},
	}}

	return &Module{
		Specifier: "perf_hooks",
		Exports: map[string]types.TypeInfo{
			"performance":         performance,
			"PerformanceObserver": observer,
		},
	}
}
