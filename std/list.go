/*
File    : pith/std/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
)

// registerListMethods populates it.ListMethods with the native methods
// field access on a list Value yields a BoundMethod over: len, push,
// pop, get.
func registerListMethods(it *eval.Interp) {
	add := func(name string, fn heap.NativeFunc) {
		obj := it.Heap.NewNative(name, fn)
		it.ListMethods.Map.Set(name, heap.Value{Kind: heap.KNative, Obj: obj})
	}

	add("len", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverList("len", args)
		if err != nil {
			return heap.Void, err
		}
		return heap.Int(int64(len(recv.Items))), nil
	})
	add("push", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverList("push", args)
		if err != nil {
			return heap.Void, err
		}
		if len(args) != 2 {
			return heap.Void, fmt.Errorf("push expects 1 argument")
		}
		if err := recv.Push(args[1]); err != nil {
			return heap.Void, err
		}
		return heap.Void, nil
	})
	add("pop", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverList("pop", args)
		if err != nil {
			return heap.Void, err
		}
		return recv.Pop()
	})
	add("get", func(args []heap.Value) (heap.Value, error) {
		recv, err := receiverList("get", args)
		if err != nil {
			return heap.Void, err
		}
		if len(args) != 2 || args[1].Kind != heap.KInt {
			return heap.Void, fmt.Errorf("get expects 1 int index argument")
		}
		v, ok := recv.Get(int(args[1].Int))
		if !ok {
			return heap.Void, fmt.Errorf("index out of bounds")
		}
		return v, nil
	})
}

func receiverList(method string, args []heap.Value) (*heap.ListObj, error) {
	if len(args) == 0 || args[0].Kind != heap.KList {
		return nil, fmt.Errorf("%s called on a non-list receiver", method)
	}
	return args[0].Obj.List, nil
}
