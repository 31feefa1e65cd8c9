package builtins

import "github.com/cwbudde/go-tscheck/internal/types"

func assertModule() *Module {
	// assert(value) is declared here as a plain function returning void;
	// the checker applies no narrowing at its call sites, so `value`
	// keeps its declared type after the call.
	assertFn := fn([]types.ParameterInfo{param("value", types.Any), optParam("message", types.NewUnion(types.String, types.ErrorType))}, types.Void)
	binaryAssert := fn([]types.ParameterInfo{param("actual", types.Any), param("expected", types.Any), optParam("message", types.String)}, types.Void)

	return &Module{
		Specifier: "assert",
		Exports: map[string]types.TypeInfo{
			"default":     assertFn,
			"ok":          assertFn,
			"strictEqual": binaryAssert,
			"deepStrictEqual": binaryAssert,
			"notStrictEqual":  binaryAssert,
			"throws":      fn([]types.ParameterInfo{param("fn", fn(nil, types.Any)), optParam("error", types.Any)}, types.Void),
		},
	}
}
