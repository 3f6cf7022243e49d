/*
File    : pith/std/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
)

// registerStringMethods populates it.StringMethods with the native
// methods field access on a string Value yields a BoundMethod over, per
// trim, split, len, upper, lower.
func registerStringMethods(it *eval.Interp) {
	add := func(name string, fn heap.NativeFunc) {
		obj := it.Heap.NewNative(name, fn)
		it.StringMethods.Map.Set(name, heap.Value{Kind: heap.KNative, Obj: obj})
	}

	add("trim", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverString("trim", args)
		if err != nil {
			return heap.Void, err
		}
		return heap.Str(strings.TrimSpace(recv)), nil
	})
	add("upper", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverString("upper", args)
		if err != nil {
			return heap.Void, err
		}
		return heap.Str(strings.ToUpper(recv)), nil
	})
	add("lower", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverString("lower", args)
		if err != nil {
			return heap.Void, err
		}
		return heap.Str(strings.ToLower(recv)), nil
	})
	add("len", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverString("len", args)
		if err != nil {
			return heap.Void, err
		}
		return heap.Int(int64(len(recv))), nil
	})
	add("split", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverString("split", args)
		if err != nil {
			return heap.Void, err
		}
		if len(args) != 2 || args[1].Kind != heap.KString {
			return heap.Void, fmt.Errorf("split expects 1 string separator argument")
		}
		parts := strings.Split(recv, args[1].Str)
		items := make([]heap.Value, len(parts))
		for i, p := range parts {
			items[i] = heap.Str(p)
		}
		obj := it.Heap.NewList(items, 0)
		return heap.Value{Kind: heap.KList, Obj: obj}, nil
	})
}

func receiverString(method string, args []heap.Value) (string, error) {
	if len(args) == 0 || args[0].Kind != heap.KString {
		return "", fmt.Errorf("%s called on a non-string receiver", method)
	}
	return args[0].Str, nil
}
