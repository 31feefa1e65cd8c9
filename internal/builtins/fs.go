package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func fsModule() *Module {
	// Ambient built-in shapes are purely structural (no class identity
	// to preserve across calls), so Record — not Instance/ClassType —
	// models their return values here, matching how a .d.ts ambient
	// module declares plain object-literal interfaces.
	stats := &types.Record{Properties: []types.PropertyInfo{
		{Name: "size", Type: types.Number},
		{Name: "mtimeMs", Type: types.Number},
	}}

	encodingParam := optParam("encoding", types.String)
	pathOrBuffer := types.NewUnion(types.String, types.BufferType)

	return &Module{
		Specifier: "fs",
		Exports: map[string]types.TypeInfo{
			"readFileSync": fn([]types.ParameterInfo{
				param("path", pathOrBuffer), encodingParam,
			}, types.NewUnion(types.String, types.BufferType)),
			"writeFileSync": fn([]types.ParameterInfo{
				param("path", pathOrBuffer), param("data", types.NewUnion(types.String, types.BufferType)),
			}, types.Void),
			"existsSync":  fn([]types.ParameterInfo{param("path", types.String)}, types.Boolean),
			"mkdirSync":   fn([]types.ParameterInfo{param("path", types.String)}, types.Void),
			"rmSync":      fn([]types.ParameterInfo{param("path", types.String)}, types.Void),
			"unlinkSync":  fn([]types.ParameterInfo{param("path", types.String)}, types.Void),
			"statSync":    fn([]types.ParameterInfo{param("path", types.String)}, stats),
			"readdirSync": fn([]types.ParameterInfo{param("path", types.String)}, &types.Array{Element: types.String}),
			"readFile": fn([]types.ParameterInfo{
				param("path", pathOrBuffer),
				param("callback", fn([]types.ParameterInfo{param("err", types.NewUnion(types.ErrorType, types.Null)), param("data", types.BufferType)}, types.Void)),
			}, types.Void),
			"writeFile": fn([]types.ParameterInfo{
				param("path", pathOrBuffer), param("data", types.String),
				param("callback", fn([]types.ParameterInfo{param("err", types.NewUnion(types.ErrorType, types.Null))}, types.Void)),
			}, types.Void),
			"promises": &types.Record{Properties: []types.PropertyInfo{
				{Name: "readFile", Type: fn([]types.ParameterInfo{param("path", types.String)}, types.NewPromise(types.BufferType))},
				{Name: "writeFile", Type: fn([]types.ParameterInfo{param("path", types.String), param("data", types.String)}, types.NewPromise(types.Void))},
				{Name: "mkdir", Type: fn([]types.ParameterInfo{param("path", types.String)}, types.NewPromise(types.Void))},
			}},
		},
	}
}
