/*
File    : pith/eval/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/heap"
)

// execClassDef allocates a PithClass, binds it in env, then — for each
// `define` child — allocates a Func closing over env and installs it in
// the class's method map. FieldDecl children contribute their names to
// the class's field list. The `extends` name, if any, is resolved in env.
func (it *Interp) execClassDef(node *ast.Node, env *Env) error {
	var parent *heap.Object
	if node.ParentClass != "" {
		pv, ok := heap.Lookup(env.Head, it.Global.Head, node.ParentClass)
		if !ok || pv.Kind != heap.KClass {
			return runtimeErrorf(node.Line, "undefined parent class '%s'", node.ParentClass)
		}
		parent = pv.Obj
	}

	methods := it.Heap.NewHashMap(heap.KVoid, heap.KVoid)
	it.Heap.PushRoot(methods)

	cls := it.Heap.NewClass(&heap.ClassObj{Name: node.Value, Methods: methods, Parent: parent})
	it.Heap.PushRoot(cls)

	var fields []string
	for _, member := range node.Children {
		switch member.Kind {
		case ast.FuncDef:
			fnObj := it.Heap.NewFunction(&heap.FuncObj{
				Name: member.Value, Params: member.Params, Body: member.Children[0], Env: env.Head, Owner: cls,
			})
			methods.Map.Set(member.Value, heap.Value{Kind: heap.KFunction, Obj: fnObj})
		case ast.FieldDecl:
			fields = append(fields, member.Value)
		}
	}
	cls.Class.Fields = fields

	it.Heap.PopRoot() // cls
	it.Heap.PopRoot() // methods

	env.Bind(it, node.Value, heap.Value{Kind: heap.KClass, Obj: cls})
	return nil
}

// evalNew implements `new C(args)`: allocate an instance pre-populated
// with void for every declared field, then — if an `init` method exists
// directly on the instance's own class, no parent-chain walk — call it
// with `this` bound to the new instance.
func (it *Interp) evalNew(node *ast.Node, env *Env) (heap.Value, error) {
	classVal, ok := heap.Lookup(env.Head, it.Global.Head, node.Value)
	if !ok || classVal.Kind != heap.KClass {
		return heap.Void, runtimeErrorf(node.Line, "undefined class '%s'", node.Value)
	}
	cls := classVal.Obj

	fields := it.Heap.NewHashMap(heap.KVoid, heap.KVoid)
	it.Heap.PushRoot(fields)
	for _, name := range cls.Class.Fields {
		fields.Map.Set(name, heap.Void)
	}

	inst := it.Heap.NewInstance(&heap.InstanceObj{Class: cls, Fields: fields})
	it.Heap.PopRoot() // fields
	it.Heap.PushRoot(inst)
	defer it.Heap.PopRoot()

	instVal := heap.Value{Kind: heap.KInstance, Obj: inst}

	if initFn, ok := lookupMethod(cls, "init"); ok {
		args := make([]heap.Value, 0, len(node.Children))
		for _, a := range node.Children {
			v, err := it.Eval(a, env)
			if err != nil {
				return heap.Void, err
			}
			args = append(args, v)
		}
		if _, err := it.callFunction(initFn.Obj, &instVal, args, node.Line); err != nil {
			return heap.Void, err
		}
	}
	return instVal, nil
}
