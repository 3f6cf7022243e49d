/*
File    : pith/eval/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/heap"
)

// Env is a mutable handle onto one point in the environment chain. A
// declaration binds a new name by advancing Head to a freshly allocated
// EnvObj whose Next is the old Head — callers that hold the same *Env
// see the new binding immediately, matching "variable declaration
// creates a new binding at the head of the current environment chain".
// A child scope (loop body, call frame) gets its own *Env seeded from
// the parent's current Head, so bindings made inside it never leak out.
type Env struct {
	Head *heap.Object
}

// Child returns a new Env starting at the same chain position as e, for
// entering a nested scope without letting its declarations escape.
func (e *Env) Child() *Env { return &Env{Head: e.Head} }

// Bind declares name at the head of e's chain.
func (e *Env) Bind(it *Interp, name string, val heap.Value) {
	e.Head = it.Heap.Bind(e.Head, name, val)
	if e == it.Global {
		it.Heap.GlobalEnv = e.Head
	}
}

// ModuleLoader resolves `import name` to a bound module Value. It is an
// interface (rather than a direct dependency on package loader) so that
// loader can depend on eval to execute a module's source without
// creating an import cycle back here.
type ModuleLoader interface {
	Load(interp *Interp, name string, line int) (heap.Value, error)
}

// Interp is one running Pith program: its heap, global environment, the
// three native registries that double as GC roots, and the module
// loader wired in at start-up.
type Interp struct {
	Heap   *heap.Heap
	Global *Env

	StringMethods *heap.Object // *HashMapObj of native string methods
	ListMethods   *heap.Object // *HashMapObj of native list methods
	ModuleFuncs   *heap.Object // *HashMapObj of native module constructors

	Loader ModuleLoader
	Stdout io.Writer

	// Source is the text currently being run, kept around only so a
	// RuntimeError can be reported alongside its offending line (see
	// FormatError). Callers set it before Run/RunInEnv.
	Source string
}

// New builds a fresh interpreter with empty registries and an empty
// global scope. Callers wire in stdlib registries and a module loader
// before running a program.
func New() *Interp {
	h := heap.New()
	it := &Interp{
		Heap:          h,
		Global:        &Env{},
		StringMethods: h.NewHashMap(heap.KVoid, heap.KVoid),
		ListMethods:   h.NewHashMap(heap.KVoid, heap.KVoid),
		ModuleFuncs:   h.NewHashMap(heap.KVoid, heap.KVoid),
		Stdout:        os.Stdout,
	}
	h.GlobalEnv = it.Global.Head
	h.StringMethods = it.StringMethods
	h.ListMethods = it.ListMethods
	h.ModuleFuncs = it.ModuleFuncs
	return it
}

// Run executes a Program node's top-level statements against the
// interpreter's global environment.
func (it *Interp) Run(program *ast.Node) error {
	_, err := it.RunInEnv(program, it.Global)
	it.Heap.GlobalEnv = it.Global.Head
	return err
}

// RunInEnv executes a program's statements against a caller-supplied
// environment, returning it (used by the module loader to execute an
// imported script in a fresh scope, and by the REPL to keep state
// across lines).
func (it *Interp) RunInEnv(program *ast.Node, env *Env) (*Env, error) {
	for _, stmt := range program.Children {
		if _, err := it.Exec(stmt, env); err != nil {
			return env, err
		}
	}
	return env, nil
}
