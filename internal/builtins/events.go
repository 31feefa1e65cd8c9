package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func eventsModule() *Module {
	listener := fn([]types.ParameterInfo{{Name: "args", Type: types.Any, Rest: true}}, types.Void)
	emitter := types.NewClassBuilder("EventEmitter")
	emitter.AddMethod(&types.MethodInfo{Name: "on", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", listener)}, nil)})
	emitter.AddMethod(&types.MethodInfo{Name: "once", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", listener)}, nil)})
	emitter.AddMethod(&types.MethodInfo{Name: "off", Signature: fn([]types.ParameterInfo{param("event", types.String), param("listener", listener)}, nil)})
	emitter.AddMethod(&types.MethodInfo{Name: "emit", Signature: fn([]types.ParameterInfo{param("event", types.String), {Name: "args", Type: types.Any, Rest: true}}, types.Boolean)})
	emitter.AddMethod(&types.MethodInfo{Name: "removeAllListeners", Signature: fn([]types.ParameterInfo{optParam("event", types.String)}, nil)})
	emitterInstance := &types.Instance{Class: emitter}
	// `on`/`once`/`off` return `this` for chaining; tie the return type
	// back to the instance now that it exists.
	for _, name := range []string{"on", "once", "off"} {
		emitter.Methods[name].Signature.ReturnType = emitterInstance
	}
	emitter.AddConstructorOverload(fn(nil, emitterInstance))
	emitter.Freeze()

	return &Module{
		Specifier: "events",
		Exports: map[string]types.TypeInfo{
			"EventEmitter": emitter,
			"default":      emitter,
		},
	}
}
