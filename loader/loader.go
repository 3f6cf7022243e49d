/*
File    : pith/loader/loader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loader implements Pith's module loader: resolving `import
// name` against a native-module registry and then against
// stdlib/<name>.pith or <name>.pith source on disk, whose program runs
// atop any native bindings for the same name.
package loader

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/heap"
	"github.com/akashmaji946/go-mix/parser"
)

// NativeModule builds the native bindings for a module name (e.g.
// "math" or "io"), returned as name -> Value pairs to seed the module's
// environment before any source file for the same name is executed atop
// it.
type NativeModule func(it *eval.Interp) map[string]heap.Value

// Loader resolves imports, memoising already-loaded modules by their
// resolved name so that import cycles are tolerated rather than
// refused or re-entered (see DESIGN.md for the policy rationale).
type Loader struct {
	natives map[string]NativeModule
	cache   map[string]heap.Value
}

// New creates a Loader with the given native-module registry.
func New(natives map[string]NativeModule) *Loader {
	return &Loader{natives: natives, cache: map[string]heap.Value{}}
}

// Load implements eval.ModuleLoader.
func (l *Loader) Load(it *eval.Interp, name string, line int) (heap.Value, error) {
	if cached, ok := l.cache[name]; ok {
		return cached, nil
	}

	members := it.Heap.NewHashMap(heap.KVoid, heap.KVoid)
	it.Heap.PushRoot(members)
	defer it.Heap.PopRoot()

	modVal := heap.Value{Kind: heap.KModule, Obj: it.Heap.NewModule(&heap.ModuleObj{Name: name, Members: members})}
	// Bind the module into the cache before executing its source, so a
	// script that imports itself (directly or transitively) observes a
	// module object whose members may still be filling in, rather than
	// recursing forever.
	l.cache[name] = modVal
	loaded := false
	defer func() {
		if !loaded {
			delete(l.cache, name)
		}
	}()

	env := &eval.Env{}
	if ctor, ok := l.natives[name]; ok {
		for n, v := range ctor(it) {
			env.Bind(it, n, v)
			members.Map.Set(n, v)
		}
	}

	src, found, err := readModuleSource(name)
	if err != nil {
		return heap.Void, fmt.Errorf("line %d: failed reading module '%s': %w", line, name, err)
	}
	if found {
		p := parser.New(src)
		program := p.Parse()
		if errs := p.Errors(); len(errs) > 0 {
			return heap.Void, fmt.Errorf("line %d: module '%s' failed to parse: %v", line, name, errs)
		}
		resultEnv, err := it.RunInEnv(program, env)
		if err != nil {
			return heap.Void, err
		}
		for e := resultEnv.Head; e != nil; e = e.Env.Next {
			members.Map.Set(e.Env.Name, e.Env.Value)
		}
	} else if _, ok := l.natives[name]; !ok {
		return heap.Void, fmt.Errorf("line %d: unknown module '%s'", line, name)
	}

	loaded = true
	return modVal, nil
}

// readModuleSource tries stdlib/<name>.pith then <name>.pith.
func readModuleSource(name string) (string, bool, error) {
	for _, path := range []string{"stdlib/" + name + ".pith", name + ".pith"} {
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), true, nil
		}
		if !os.IsNotExist(err) {
			return "", false, err
		}
	}
	return "", false, nil
}
