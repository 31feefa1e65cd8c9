package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func stringDecoderModule() *Module {
	decoder := types.NewClassBuilder("StringDecoder")
	decoder.AddMethod(&types.MethodInfo{Name: "write", Signature: fn([]types.ParameterInfo{param("buffer", types.BufferType)}, types.String)})
	decoder.AddMethod(&types.MethodInfo{Name: "end", Signature: fn([]types.ParameterInfo{optParam("buffer", types.BufferType)}, types.String)})
	decoder.AddConstructorOverload(fn([]types.ParameterInfo{optParam("encoding", types.String)}, &types.Instance{Class: decoder}))
	decoder.Freeze()

	return &Module{
		Specifier: "string_decoder",
		Exports: map[string]types.TypeInfo{
			"StringDecoder": decoder,
		},
	}
}
