package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

// registerGlobals populates the ambient global scope — names visible
// to every checked program without an import, grounded on the
// teacher's tobject/Exception root-class registration in
// registerBuiltinExceptionTypes, generalized here from "one root class
// every value descends from" to "a handful of free-standing global
// bindings" since this language has no universal object root (its
// Non-goals exclude modeling the full DOM/BOM global surface).
func (c *Catalog) registerGlobals() {
	rest := types.ParameterInfo{Name: "args", Type: types.Any, Rest: true}

	console := types.NewInterfaceBuilder("Console")
	for _, method := range []string{"log", "info", "warn", "error", "debug", "trace"} {
		console.AddMethod(method, fn([]types.ParameterInfo{rest}, types.Void))
	}
	console.Freeze()
	c.Globals["console"] = console

	c.Globals["setTimeout"] = fn([]types.ParameterInfo{
		param("callback", fn(nil, types.Void)),
		optParam("ms", types.Number),
		rest,
	}, types.TimeoutType)
	c.Globals["clearTimeout"] = fn([]types.ParameterInfo{param("handle", types.TimeoutType)}, types.Void)
	c.Globals["setInterval"] = c.Globals["setTimeout"]
	c.Globals["clearInterval"] = c.Globals["clearTimeout"]
	c.Globals["setImmediate"] = fn([]types.ParameterInfo{param("callback", fn(nil, types.Void)), rest}, types.TimeoutType)
	c.Globals["queueMicrotask"] = fn([]types.ParameterInfo{param("callback", fn(nil, types.Void))}, types.Void)

	c.Globals["globalThis"] = types.Object
	c.Globals["NaN"] = types.Number
	c.Globals["Infinity"] = types.Number
	c.Globals["undefined"] = types.Undefined

	c.Globals["parseInt"] = fn([]types.ParameterInfo{param("s", types.String), optParam("radix", types.Number)}, types.Number)
	c.Globals["parseFloat"] = fn([]types.ParameterInfo{param("s", types.String)}, types.Number)
	c.Globals["isNaN"] = fn([]types.ParameterInfo{param("n", types.Number)}, types.Boolean)
	c.Globals["isFinite"] = fn([]types.ParameterInfo{param("n", types.Number)}, types.Boolean)
	c.Globals["encodeURIComponent"] = fn([]types.ParameterInfo{param("s", types.String)}, types.String)
	c.Globals["decodeURIComponent"] = fn([]types.ParameterInfo{param("s", types.String)}, types.String)

	c.Globals["Symbol"] = types.NewClassBuilder("SymbolConstructor").Freeze()
	c.Globals["Promise"] = types.NewClassBuilder("PromiseConstructor").Freeze()
}
