/*
File    : pith/std/io.go
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

// ioModule returns io's native bindings: read_file returns the file's
// content as a string, or void if it could not be read; write_file
// returns whether the write succeeded.
func ioModule(it *eval.Interp) map[string]heap.Value {
	readFile := it.Heap.NewNative("read_file", func(args []heap.Value) (heap.Value, error) {
		if len(args) != 1 || args[0].Kind != heap.KString {
			return heap.Void, fmt.Errorf("read_file expects 1 string argument")
		}
		data, err := os.ReadFile(args[0].Str)
		if err != nil {
			return heap.Void, nil
		}
		return heap.Str(string(data)), nil
	})
	writeFile := it.Heap.NewNative("write_file", func(args []heap.Value) (heap.Value, error) {
		if len(args) != 2 || args[0].Kind != heap.KString || args[1].Kind != heap.KString {
			return heap.Void, fmt.Errorf("write_file expects (path, content) strings")
		}
		err := os.WriteFile(args[0].Str, []byte(args[1].Str), 0o644)
		return heap.Bool(err == nil), nil
	})
	return map[string]heap.Value{
		"read_file":  {Kind: heap.KNative, Obj: readFile},
		"write_file": {Kind: heap.KNative, Obj: writeFile},
	}
}
