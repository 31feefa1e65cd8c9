package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func childProcessModule() *Module {
	childProcess := types.NewClassBuilder("ChildProcess")
	childProcess.AddField(&types.FieldInfo{Name: "pid", Type: types.Number, Optional: true})
	childProcess.AddField(&types.FieldInfo{Name: "exitCode", Type: types.NewUnion(types.Number, types.Null)})
	childProcess.AddMethod(&types.MethodInfo{Name: "on", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void))}, &types.Instance{Class: childProcess})})
	childProcess.AddMethod(&types.MethodInfo{Name: "kill", Signature: fn([]types.ParameterInfo{optParam("signal", types.String)}, types.Boolean)})
	childProcess.Freeze()

	execResult := &types.Record{Properties: []types.PropertyInfo{
		{Name: "stdout", Type: types.String},
		{Name: "stderr", Type: types.String},
	}}

	return &Module{
		Specifier: "child_process",
		Exports: map[string]types.TypeInfo{
			"spawn": fn([]types.ParameterInfo{param("command", types.String), optParam("args", &types.Array{Element: types.String}), optParam("options", types.Object)}, &types.Instance{Class: childProcess}),
			"exec":  fn([]types.ParameterInfo{param("command", types.String), optParam("options", types.Object), optParam("callback", fn([]types.ParameterInfo{param("error", types.NewUnion(types.ErrorType, types.Null)), param("stdout", types.String), param("stderr", types.String)}, types.Void))}, &types.Instance{Class: childProcess}),
			"execSync": fn([]types.ParameterInfo{param("command", types.String), optParam("options", types.Object)}, types.BufferType),
			"execFile": fn([]types.ParameterInfo{param("file", types.String), optParam("args", &types.Array{Element: types.String}), optParam("callback", fn([]types.ParameterInfo{param("error", types.NewUnion(types.ErrorType, types.Null)), param("stdout", types.String), param("stderr", types.String)}, types.Void))}, &types.Instance{Class: childProcess}),
			"promises": &types.Record{Properties: []types.PropertyInfo{
				{Name: "exec", Type: fn([]types.ParameterInfo{param("command", types.String)}, types.NewPromise(execResult))},
			}},
			"ChildProcess": childProcess,
		},
	}
}
