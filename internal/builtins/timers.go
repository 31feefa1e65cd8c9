package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func timersModule() *Module {
	callback := fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void)
	return &Module{
		Specifier: "timers",
		Exports: map[string]types.TypeInfo{
			"setTimeout":     fn([]types.ParameterInfo{param("callback", callback), optParam("ms", types.Number), {Name: "args", Type: types.Any, Rest: true}}, types.TimeoutType),
			"clearTimeout":   fn([]types.ParameterInfo{param("handle", types.TimeoutType)}, types.Void),
			"setInterval":    fn([]types.ParameterInfo{param("callback", callback), optParam("ms", types.Number), {Name: "args", Type: types.Any, Rest: true}}, types.TimeoutType),
			"clearInterval":  fn([]types.ParameterInfo{param("handle", types.TimeoutType)}, types.Void),
			"setImmediate":   fn([]types.ParameterInfo{param("callback", callback), {Name: "args", Type: types.Any, Rest: true}}, types.TimeoutType),
			"clearImmediate": fn([]types.ParameterInfo{param("handle", types.TimeoutType)}, types.Void),
			"promises": &types.Record{Properties: []types.PropertyInfo{
				{Name: "setTimeout", Type: fn([]types.ParameterInfo{optParam("ms", types.Number), optParam("value", types.Any)}, types.NewPromise(types.Any))},
			}},
		},
	}
}
