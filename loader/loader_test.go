/*
File    : pith/loader/loader_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package loader

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
)

func newInterp(l *Loader) (*eval.Interp, *bytes.Buffer) {
	it := eval.New()
	it.Loader = l
	var out bytes.Buffer
	it.Stdout = &out
	return it, &out
}

func TestNativeModuleResolvesBeforeSource(t *testing.T) {
	called := false
	natives := map[string]NativeModule{
		"greet": func(it *eval.Interp) map[string]heap.Value {
			called = true
			fn := it.Heap.NewNative("hello", func(args []heap.Value) (heap.Value, error) {
				return heap.Str("hi"), nil
			})
			return map[string]heap.Value{"hello": {Kind: heap.KNative, Obj: fn}}
		},
	}
	l := New(natives)
	it, out := newInterp(l)

	p := parser.New("import greet\nprint(greet.hello())\n")
	program := p.Parse()
	assert.Empty(t, p.Errors())
	assert.NoError(t, it.Run(program))
	assert.True(t, called)
	assert.Equal(t, "hi\n", out.String())
}

func TestUnknownModuleIsAnError(t *testing.T) {
	l := New(nil)
	it, _ := newInterp(l)
	p := parser.New("import nosuchmodule\n")
	program := p.Parse()
	assert.Empty(t, p.Errors())
	assert.Error(t, it.Run(program))
}

func TestImportCycleIsToleratedNotRefused(t *testing.T) {
	// A module importing its own name must not recurse forever: the
	// loader's cache already holds a (possibly still-filling) module
	// object for "self" by the time its own `import self` runs. The
	// native constructor below performs that self-import mid-load.
	var l *Loader
	var inner heap.Value
	natives := map[string]NativeModule{
		"self": func(it *eval.Interp) map[string]heap.Value {
			v, err := l.Load(it, "self", 1)
			assert.NoError(t, err)
			inner = v
			return nil
		},
	}
	l = New(natives)
	it, _ := newInterp(l)

	modVal, err := l.Load(it, "self", 1)
	assert.NoError(t, err)
	assert.Equal(t, heap.KModule, modVal.Kind)
	assert.Equal(t, modVal.Obj, inner.Obj, "the self-import mid-load sees the module being built")

	again, err := l.Load(it, "self", 2)
	assert.NoError(t, err)
	assert.Equal(t, modVal.Obj, again.Obj, "a second load of the same name returns the cached module")
}
