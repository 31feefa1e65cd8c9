package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func cryptoModule() *Module {
	hash := &types.Record{Properties: []types.PropertyInfo{
		{Name: "update", Type: fn([]types.ParameterInfo{param("data", types.String)}, types.Object)},
		{Name: "digest", Type: fn([]types.ParameterInfo{optParam("encoding", types.String)}, types.NewUnion(types.String, types.BufferType))},
	}}
	return &Module{
		Specifier: "crypto",
		Exports: map[string]types.TypeInfo{
			"randomBytes":  fn([]types.ParameterInfo{param("size", types.Number)}, types.BufferType),
			"randomUUID":   fn(nil, types.String),
			"createHash":   fn([]types.ParameterInfo{param("algorithm", types.String)}, hash),
			"createHmac":   fn([]types.ParameterInfo{param("algorithm", types.String), param("key", types.String)}, hash),
			"timingSafeEqual": fn([]types.ParameterInfo{param("a", types.BufferType), param("b", types.BufferType)}, types.Boolean),
		},
	}
}
