package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func streamModule() *Module {
	readable := types.NewClassBuilder("Readable")
	readable.AddMethod(&types.MethodInfo{Name: "read", Signature: fn([]types.ParameterInfo{optParam("size", types.Number)}, types.NewUnion(types.BufferType, types.Null))})
	readable.AddMethod(&types.MethodInfo{Name: "pipe", Signature: fn([]types.ParameterInfo{param("dest", types.Any)}, types.Any)})
	readable.AddMethod(&types.MethodInfo{Name: "on", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void))}, &types.Instance{Class: readable})})
	readable.Freeze()

	writable := types.NewClassBuilder("Writable")
	writable.AddMethod(&types.MethodInfo{Name: "write", Signature: fn([]types.ParameterInfo{param("chunk", types.NewUnion(types.String, types.BufferType))}, types.Boolean)})
	writable.AddMethod(&types.MethodInfo{Name: "end", Signature: fn([]types.ParameterInfo{optParam("chunk", types.NewUnion(types.String, types.BufferType))}, types.Void)})
	writable.Freeze()

	duplex := types.NewClassBuilder("Duplex")
	duplex.Parent = readable
	duplex.Freeze()

	return &Module{
		Specifier: "stream",
		Exports: map[string]types.TypeInfo{
			"Readable": readable,
			"Writable": writable,
			"Duplex":   duplex,
		},
	}
}
