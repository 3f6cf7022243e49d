/*
File    : pith/heap/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package heap

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-mix/ast"
)

// ObjKind discriminates the payload carried by an Object.
type ObjKind int

const (
	ObjList ObjKind = iota
	ObjHashMap
	ObjFunction
	ObjModule
	ObjClass
	ObjInstance
	ObjBoundMethod
	ObjEnv
	ObjNative
)

// NativeFunc is a host-provided callable, invoked with already-evaluated
// arguments and returning a single Value.
type NativeFunc func(args []Value) (Value, error)

// Object is a single heap-tracked allocation. Every Object carries the
// three-field header the collector walks (Kind/marked/next forming the
// intrusive list of every live object) plus exactly one populated
// payload selected by Kind, one tagged union of heap-object structs.
type Object struct {
	Kind   ObjKind
	marked bool
	next   *Object

	List   *ListObj
	Map    *HashMapObj
	Func   *FuncObj
	Mod    *ModuleObj
	Class  *ClassObj
	Inst   *InstanceObj
	Bound  *BoundMethodObj
	Env    *EnvObj
	Native *NativeObj
}

// ListObj is a dynamic or fixed-capacity vector of values.
type ListObj struct {
	Items   []Value
	IsFixed bool
	Cap     int
}

// HashMapEntry is one bucket-chain link in a HashMapObj.
type HashMapEntry struct {
	Key  string
	Val  Value
	Next *HashMapEntry
}

// HashMapObj is a bucketed chaining table keyed by strings, with an
// optional declared key/value type constraint (KVoid meaning
// unconstrained (either may be void).
type HashMapObj struct {
	Buckets   []*HashMapEntry
	Count     int
	KeyType   Kind
	ValueType Kind
}

// FuncObj is a user-defined function: its AST body, the parameter names,
// the environment chain captured at its definition site, and — for a
// method — the class that owns it.
type FuncObj struct {
	Name    string
	Params  []string
	Body    *ast.Node
	Env     *Object // *EnvObj wrapper
	Owner   *Object // *ClassObj wrapper, nil for a free function
}

// ModuleObj is an imported module's exported bindings.
type ModuleObj struct {
	Name    string
	Members *Object // *HashMapObj wrapper keyed by member name
}

// ClassObj is a class definition: its method table, declared field
// names, and an optional parent class.
type ClassObj struct {
	Name    string
	Methods *Object // *HashMapObj wrapper keyed by method name
	Fields  []string
	Parent  *Object // *ClassObj wrapper, nil at the root
}

// InstanceObj is a live object of some class, holding its own field
// table separate from the class's shared method table.
type InstanceObj struct {
	Class  *Object // *ClassObj wrapper
	Fields *Object // *HashMapObj wrapper keyed by field name
}

// BoundMethodObj pairs a receiver with the method Value to call on it;
// calling it prepends the receiver as the first argument.
type BoundMethodObj struct {
	Receiver Value
	Method   Value
}

// EnvObj is one binding in the environment chain: a name, its value, and
// a link to the next (outer) binding.
type EnvObj struct {
	Name  string
	Value Value
	Next  *Object // *EnvObj wrapper, nil at the chain's end
}

// NativeObj wraps a host-provided function so it can be carried inside a
// Value/Object just like any user-defined callable.
type NativeObj struct {
	Name string
	Fn   NativeFunc
}

func (o *Object) String() string {
	if o == nil {
		return "void"
	}
	switch o.Kind {
	case ObjList:
		parts := make([]string, len(o.List.Items))
		for i, it := range o.List.Items {
			parts[i] = it.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ObjHashMap:
		return "map"
	case ObjFunction:
		return fmt.Sprintf("<function %s>", o.Func.Name)
	case ObjModule:
		return fmt.Sprintf("<module %s>", o.Mod.Name)
	case ObjClass:
		return fmt.Sprintf("<class %s>", o.Class.Name)
	case ObjInstance:
		return fmt.Sprintf("<instance %s>", o.Inst.Class.Class.Name)
	case ObjBoundMethod:
		return "<bound-method>"
	case ObjEnv:
		return "<env>"
	case ObjNative:
		return fmt.Sprintf("<native %s>", o.Native.Name)
	}
	return "<object>"
}
