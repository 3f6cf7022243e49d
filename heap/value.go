/*
File    : pith/heap/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package heap holds Pith's runtime value representation together with
// every heap-allocated object kind and the mark-and-sweep collector that
// owns their lifetime. Values are a tagged union rather than a family
// of Go interface implementations — a Value is a small fixed-size
// struct that either carries a primitive directly or holds a pointer
// to a heap Object.
package heap

import "fmt"

// Kind discriminates the variant carried by a Value.
type Kind int

const (
	KInt Kind = iota
	KFloat
	KString
	KBool
	KVoid
	KNative
	KFunction
	KModule
	KList
	KHashMap
	KClass
	KInstance
	KBoundMethod
)

func (k Kind) String() string {
	switch k {
	case KInt:
		return "int"
	case KFloat:
		return "float"
	case KString:
		return "string"
	case KBool:
		return "bool"
	case KVoid:
		return "void"
	case KNative:
		return "native"
	case KFunction:
		return "function"
	case KModule:
		return "module"
	case KList:
		return "list"
	case KHashMap:
		return "map"
	case KClass:
		return "class"
	case KInstance:
		return "instance"
	case KBoundMethod:
		return "bound-method"
	}
	return "unknown"
}

// Value is Pith's tagged runtime value. Primitives (Int, Float, Bool) are
// stored inline; Str holds a Go string owned exclusively by this Value
// (copying a Value deep-copies the string); Obj points at a
// heap-tracked, GC-managed object for every other kind.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	Obj   *Object
}

// Void is the shared representation of "no value" — returned by
// statements, uninitialised fields, and absent map lookups.
var Void = Value{Kind: KVoid}

func Int(n int64) Value       { return Value{Kind: KInt, Int: n} }
func Float(f float64) Value   { return Value{Kind: KFloat, Float: f} }
func Bool(b bool) Value       { return Value{Kind: KBool, Bool: b} }
func Str(s string) Value      { return Value{Kind: KString, Str: s} }

// IsNumber reports whether v is an int or a float.
func (v Value) IsNumber() bool { return v.Kind == KInt || v.Kind == KFloat }

// AsFloat widens an int or float value to float64. For any other kind
// it returns the Value's Float field (0), so callers check IsNumber first.
func (v Value) AsFloat() float64 {
	if v.Kind == KInt {
		return float64(v.Int)
	}
	return v.Float
}

// Truthy implements the language's notion of a condition value: bools by
// their own value, ints/floats by non-zero, strings by non-empty, void
// is always false.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KBool:
		return v.Bool
	case KInt:
		return v.Int != 0
	case KFloat:
		return v.Float != 0
	case KString:
		return v.Str != ""
	case KVoid:
		return false
	default:
		return true
	}
}

// Equal implements the value comparison used by `==`/`!=` and by
// switch-case matching. Ints and floats compare numerically across the
// two kinds; any other pair must be the same kind with an equal value.
// Switch-case matching additionally requires the same kind.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		return a.AsFloat() == b.AsFloat()
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KString:
		return a.Str == b.Str
	case KBool:
		return a.Bool == b.Bool
	case KVoid:
		return true
	default:
		return a.Obj == b.Obj
	}
}

// String renders a Value the way `print` does.
func (v Value) String() string {
	switch v.Kind {
	case KInt:
		return fmt.Sprintf("%d", v.Int)
	case KFloat:
		return fmt.Sprintf("%g", v.Float)
	case KString:
		return v.Str
	case KBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KVoid:
		return "void"
	default:
		if v.Obj == nil {
			return v.Kind.String()
		}
		return v.Obj.String()
	}
}
