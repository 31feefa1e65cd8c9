package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func httpModule() *Module {
	headers := &types.Record{IndexSignatures: []types.IndexSignatureInfo{{KeyKind: types.KindString, Value: types.NewUnion(types.String, &types.Array{Element: types.String})}}}

	incoming := types.NewClassBuilder("IncomingMessage")
	incoming.AddField(&types.FieldInfo{Name: "url", Type: types.String})
	incoming.AddField(&types.FieldInfo{Name: "method", Type: types.String})
	incoming.AddField(&types.FieldInfo{Name: "statusCode", Type: types.Number, Optional: true})
	incoming.AddField(&types.FieldInfo{Name: "headers", Type: headers})
	incoming.AddMethod(&types.MethodInfo{Name: "on", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void))}, &types.Instance{Class: incoming})})
	incoming.Freeze()

	response := types.NewClassBuilder("ServerResponse")
	response.AddField(&types.FieldInfo{Name: "statusCode", Type: types.Number})
	response.AddMethod(&types.MethodInfo{Name: "writeHead", Signature: fn([]types.ParameterInfo{param("statusCode", types.Number), optParam("headers", headers)}, &types.Instance{Class: response})})
	response.AddMethod(&types.MethodInfo{Name: "write", Signature: fn([]types.ParameterInfo{param("chunk", types.NewUnion(types.String, types.BufferType))}, types.Boolean)})
	response.AddMethod(&types.MethodInfo{Name: "end", Signature: fn([]types.ParameterInfo{optParam("chunk", types.NewUnion(types.String, types.BufferType))}, types.Void)})
	response.AddMethod(&types.MethodInfo{Name: "setHeader", Signature: fn([]types.ParameterInfo{param("name", types.String), param("value", types.String)}, types.Void)})
	response.Freeze()

	requestListener := fn([]types.ParameterInfo{
		param("req", &types.Instance{Class: incoming}),
		param("res", &types.Instance{Class: response}),
	}, types.Void)

	server := types.NewClassBuilder("Server")
	server.AddMethod(&types.MethodInfo{Name: "listen", Signature: fn([]types.ParameterInfo{param("port", types.Number), optParam("hostname", types.String), optParam("callback", fn(nil, types.Void))}, &types.Instance{Class: server})})
	server.AddMethod(&types.MethodInfo{Name: "close", Signature: fn([]types.ParameterInfo{optParam("callback", fn(nil, types.Void))}, &types.Instance{Class: server})})
	server.AddMethod(&types.MethodInfo{Name: "on", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void))}, &types.Instance{Class: server})})
	server.Freeze()

	return &Module{
		Specifier: "http",
		Exports: map[string]types.TypeInfo{
			"createServer":    fn([]types.ParameterInfo{optParam("requestListener", requestListener)}, &types.Instance{Class: server}),
			"request":         fn([]types.ParameterInfo{param("url", types.String), optParam("options", types.Object), optParam("callback", fn([]types.ParameterInfo{param("res", &types.Instance{Class: incoming})}, types.Void))}, &types.Instance{Class: incoming}),
			"get":             fn([]types.ParameterInfo{param("url", types.String), optParam("callback", fn([]types.ParameterInfo{param("res", &types.Instance{Class: incoming})}, types.Void))}, &types.Instance{Class: incoming}),
			"IncomingMessage": incoming,
			"ServerResponse":  response,
			"Server":          server,
		},
	}
}
