package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func osModule() *Module {
	cpuInfo := &types.Record{Properties: []types.PropertyInfo{
		{Name: "model", Type: types.String},
		{Name: "speed", Type: types.Number},
	}}
	return &Module{
		Specifier: "os",
		Exports: map[string]types.TypeInfo{
			"platform":  fn(nil, types.String),
			"arch":      fn(nil, types.String),
			"hostname":  fn(nil, types.String),
			"tmpdir":    fn(nil, types.String),
			"homedir":   fn(nil, types.String),
			"totalmem":  fn(nil, types.Number),
			"freemem":   fn(nil, types.Number),
			"cpus":      fn(nil, &types.Array{Element: cpuInfo}),
			"EOL":       &types.LiteralString{Value: "\n"},
			"userInfo":  fn(nil, &types.Record{Properties: []types.PropertyInfo{{Name: "username", Type: types.String}, {Name: "homedir", Type: types.String}}}),
		},
	}
}
