package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func zlibModule() *Module {
	callback := fn([]types.ParameterInfo{param("err", types.NewUnion(types.ErrorType, types.Null)), param("result", types.BufferType)}, types.Void)
	transform := fn([]types.ParameterInfo{param("buffer", types.NewUnion(types.BufferType, types.String)), param("callback", callback)}, types.Void)
	syncTransform := fn([]types.ParameterInfo{param("buffer", types.NewUnion(types.BufferType, types.String))}, types.BufferType)

	return &Module{
		Specifier: "zlib",
		Exports: map[string]types.TypeInfo{
			"gzip":         transform,
			"gzipSync":     syncTransform,
			"gunzip":       transform,
			"gunzipSync":   syncTransform,
			"deflate":      transform,
			"deflateSync":  syncTransform,
			"inflate":      transform,
			"inflateSync":  syncTransform,
			"brotliCompress":   transform,
			"brotliDecompress": transform,
		},
	}
}
