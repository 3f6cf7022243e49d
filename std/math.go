/*
File    : pith/std/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std provides the host-supplied standard modules (math, io,
// sys) and the string/list native method registries. These are
// host-provided, not part of the interpreter's core.
package std

import (
	"fmt"
	"math"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
)

func oneFloatArg(name string, fn func(float64) float64) heap.NativeFunc {
	return func(args []heap.Value) (heap.Value, error) {
		if len(args) != 1 || !args[0].IsNumber() {
			return heap.Void, fmt.Errorf("%s expects 1 numeric argument", name)
		}
		return heap.Float(fn(args[0].AsFloat())), nil
	}
}

// mathModule returns math's native bindings: sqrt/sin/cos/tan/floor/ceil/log.
func mathModule(it *eval.Interp) map[string]heap.Value {
	fns := map[string]func(float64) float64{
		"sqrt": math.Sqrt, "sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
		"floor": math.Floor, "ceil": math.Ceil, "log": math.Log,
	}
	out := make(map[string]heap.Value, len(fns))
	for name, fn := range fns {
		obj := it.Heap.NewNative(name, oneFloatArg(name, fn))
		out[name] = heap.Value{Kind: heap.KNative, Obj: obj}
	}
	return out
}
