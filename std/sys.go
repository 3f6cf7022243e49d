/*
File    : pith/std/sys.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
)

// sysModule returns sys's native bindings: exit(code) terminates the
// process immediately.
func sysModule(it *eval.Interp) map[string]heap.Value {
	exitFn := it.Heap.NewNative("exit", func(args []heap.Value) (heap.Value, error) {
		code := 0
		if len(args) == 1 && args[0].Kind == heap.KInt {
			code = int(args[0].Int)
		} else if len(args) > 1 {
			return heap.Void, fmt.Errorf("exit expects 0 or 1 int argument")
		}
		os.Exit(code)
		return heap.Void, nil
	})
	return map[string]heap.Value{"exit": {Kind: heap.KNative, Obj: exitFn}}
}
