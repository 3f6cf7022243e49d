/*
File    : pith/eval/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/heap"
)

// evalFieldAccess implements field-access resolution: an instance
// field if present, else a bound method; a string/list yields a bound
// method over the type's native registry; a module yields the named
// member.
func (it *Interp) evalFieldAccess(node *ast.Node, env *Env) (heap.Value, error) {
	base, err := it.Eval(node.Children[0], env)
	if err != nil {
		return heap.Void, err
	}
	name := node.Value

	switch base.Kind {
	case heap.KInstance:
		if v, ok := base.Obj.Inst.Fields.Map.Get(name); ok {
			return v, nil
		}
		method, ok := lookupMethod(base.Obj.Inst.Class, name)
		if !ok {
			return heap.Void, runtimeErrorf(node.Line, "'%s' has no field or method '%s'", base.Obj.Inst.Class.Class.Name, name)
		}
		bm := it.Heap.NewBoundMethod(base, method)
		return heap.Value{Kind: heap.KBoundMethod, Obj: bm}, nil
	case heap.KString:
		fn, ok := it.StringMethods.Map.Get(name)
		if !ok {
			return heap.Void, runtimeErrorf(node.Line, "strings have no method '%s'", name)
		}
		bm := it.Heap.NewBoundMethod(base, fn)
		return heap.Value{Kind: heap.KBoundMethod, Obj: bm}, nil
	case heap.KList:
		fn, ok := it.ListMethods.Map.Get(name)
		if !ok {
			return heap.Void, runtimeErrorf(node.Line, "lists have no method '%s'", name)
		}
		bm := it.Heap.NewBoundMethod(base, fn)
		return heap.Value{Kind: heap.KBoundMethod, Obj: bm}, nil
	case heap.KModule:
		v, ok := base.Obj.Mod.Members.Map.Get(name)
		if !ok {
			return heap.Void, runtimeErrorf(node.Line, "module '%s' has no member '%s'", base.Obj.Mod.Name, name)
		}
		return v, nil
	}
	return heap.Void, runtimeErrorf(node.Line, "cannot access field '%s' on a %s", name, base.Kind)
}

// lookupMethod finds name in cls's own method table; it does not walk
// the parent chain.
func lookupMethod(cls *heap.Object, name string) (heap.Value, bool) {
	return cls.Class.Methods.Map.Get(name)
}

func (it *Interp) evalCall(node *ast.Node, env *Env) (heap.Value, error) {
	callee, err := it.Eval(node.Children[0], env)
	if err != nil {
		return heap.Void, err
	}
	args := make([]heap.Value, 0, len(node.Children)-1)
	for _, a := range node.Children[1:] {
		v, err := it.Eval(a, env)
		if err != nil {
			return heap.Void, err
		}
		args = append(args, v)
	}
	return it.callValue(callee, args, node.Line)
}

// callValue dispatches on the callee's kind: native function, plain user
// function, or bound method (receiver prepended as `this`).
func (it *Interp) callValue(callee heap.Value, args []heap.Value, line int) (heap.Value, error) {
	switch callee.Kind {
	case heap.KNative:
		v, err := callee.Obj.Native.Fn(args)
		if err != nil {
			return heap.Void, runtimeErrorf(line, "%s", err)
		}
		return v, nil
	case heap.KFunction:
		return it.callFunction(callee.Obj, nil, args, line)
	case heap.KBoundMethod:
		bm := callee.Obj.Bound
		if bm.Method.Kind == heap.KNative {
			// Native string/list methods take the receiver as their own
			// first argument rather than via the `this` binding scheme
			// used for user-defined methods.
			nativeArgs := append([]heap.Value{bm.Receiver}, args...)
			v, err := bm.Method.Obj.Native.Fn(nativeArgs)
			if err != nil {
				return heap.Void, runtimeErrorf(line, "%s", err)
			}
			return v, nil
		}
		return it.callFunction(bm.Method.Obj, &bm.Receiver, args, line)
	}
	return heap.Void, runtimeErrorf(line, "value of kind %s is not callable", callee.Kind)
}

// callFunction binds params (with `this` prepended for a bound method)
// atop the function's captured environment, then executes its body.
func (it *Interp) callFunction(fn *heap.Object, receiver *heap.Value, args []heap.Value, line int) (heap.Value, error) {
	callEnv := &Env{Head: fn.Func.Env}

	params := fn.Func.Params
	if receiver != nil {
		callEnv.Bind(it, "this", *receiver)
	}
	for i, p := range params {
		var v heap.Value
		if i < len(args) {
			v = args[i]
		}
		callEnv.Bind(it, p, v)
	}

	outcome, err := it.execBlock(fn.Func.Body, callEnv)
	if err != nil {
		return heap.Void, err
	}
	if outcome.Kind == Returning {
		return outcome.Value, nil
	}
	return heap.Void, nil
}

// execBlock runs a Block node's statements in sequence, stopping early on
// the first non-Normal Outcome (a loop signal or a return propagating up
// through nested constructs).
func (it *Interp) execBlock(block *ast.Node, env *Env) (Outcome, error) {
	for _, stmt := range block.Children {
		outcome, err := it.Exec(stmt, env)
		if err != nil {
			return normal, err
		}
		if isSignal(outcome) {
			return outcome, nil
		}
	}
	return normal, nil
}
