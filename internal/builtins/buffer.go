package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func bufferModule() *Module {
	bufferCtor := types.NewClassBuilder("Buffer")
	bufferCtor.AddField(&types.FieldInfo{Name: "length", Type: types.Number, Readonly: true})
	bufferCtor.AddMethod(&types.MethodInfo{Name: "toString", Signature: fn([]types.ParameterInfo{optParam("encoding", types.String)}, types.String)})
	bufferCtor.AddMethod(&types.MethodInfo{Name: "slice", Signature: fn([]types.ParameterInfo{optParam("start", types.Number), optParam("end", types.Number)}, types.BufferType)})
	bufferCtor.Freeze()

	return &Module{
		Specifier: "buffer",
		Exports: map[string]types.TypeInfo{
			"Buffer": bufferCtor,
		},
	}
}
