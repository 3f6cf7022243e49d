/*
File    : pith/std/std_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
	"github.com/stretchr/testify/assert"
)

func TestMathModuleSqrt(t *testing.T) {
	it := eval.New()
	fns := mathModule(it)
	sqrt, ok := fns["sqrt"]
	assert.True(t, ok)
	v, err := sqrt.Obj.Native.Fn([]heap.Value{heap.Int(9)})
	assert.NoError(t, err)
	assert.Equal(t, heap.KFloat, v.Kind)
	assert.Equal(t, 3.0, v.Float)
}

func TestMathModuleRejectsNonNumericArg(t *testing.T) {
	it := eval.New()
	fns := mathModule(it)
	_, err := fns["floor"].Obj.Native.Fn([]heap.Value{heap.Str("nope")})
	assert.Error(t, err)
}

func TestIoModuleReadWriteRoundTrip(t *testing.T) {
	it := eval.New()
	fns := ioModule(it)
	path := filepath.Join(t.TempDir(), "greeting.txt")

	write := fns["write_file"]
	ok, err := write.Obj.Native.Fn([]heap.Value{heap.Str(path), heap.Str("hello")})
	assert.NoError(t, err)
	assert.Equal(t, heap.Bool(true), ok)

	read := fns["read_file"]
	content, err := read.Obj.Native.Fn([]heap.Value{heap.Str(path)})
	assert.NoError(t, err)
	assert.Equal(t, "hello", content.Str)
}

func TestIoModuleReadMissingFileReturnsVoid(t *testing.T) {
	it := eval.New()
	fns := ioModule(it)
	v, err := fns["read_file"].Obj.Native.Fn([]heap.Value{heap.Str(filepath.Join(os.TempDir(), "pith-does-not-exist.txt"))})
	assert.NoError(t, err)
	assert.Equal(t, heap.KVoid, v.Kind)
}

func TestStringMethodsTrimSplitLen(t *testing.T) {
	it := eval.New()
	registerStringMethods(it)

	trim, _ := it.StringMethods.Map.Get("trim")
	trimmed, err := trim.Obj.Native.Fn([]heap.Value{heap.Str("  hi ")})
	assert.NoError(t, err)
	assert.Equal(t, "hi", trimmed.Str)

	split, _ := it.StringMethods.Map.Get("split")
	list, err := split.Obj.Native.Fn([]heap.Value{heap.Str("hi"), heap.Str(" ")})
	assert.NoError(t, err)
	assert.Equal(t, heap.KList, list.Kind)
	assert.Len(t, list.Obj.List.Items, 1)

	length, _ := it.StringMethods.Map.Get("len")
	n, err := length.Obj.Native.Fn([]heap.Value{heap.Str("hi")})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n.Int)
}

func TestListMethodsPushPopLen(t *testing.T) {
	it := eval.New()
	registerListMethods(it)

	listObj := it.Heap.NewList([]heap.Value{heap.Int(1), heap.Int(2)}, 0)
	listVal := heap.Value{Kind: heap.KList, Obj: listObj}

	push, _ := it.ListMethods.Map.Get("push")
	_, err := push.Obj.Native.Fn([]heap.Value{listVal, heap.Int(3)})
	assert.NoError(t, err)

	length, _ := it.ListMethods.Map.Get("len")
	n, err := length.Obj.Native.Fn([]heap.Value{listVal})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n.Int)

	pop, _ := it.ListMethods.Map.Get("pop")
	last, err := pop.Obj.Native.Fn([]heap.Value{listVal})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), last.Int)
}
