/*
File    : pith/eval/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"
	"strconv"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/heap"
)

// Eval evaluates an expression node against env, returning the resulting
// Value or the first runtime error encountered.
func (it *Interp) Eval(node *ast.Node, env *Env) (heap.Value, error) {
	switch node.Kind {
	case ast.IntLiteral:
		n, _ := strconv.ParseInt(node.Value, 10, 64)
		return heap.Int(n), nil
	case ast.FloatLiteral:
		f, _ := strconv.ParseFloat(node.Value, 64)
		return heap.Float(f), nil
	case ast.StringLiteral:
		return heap.Str(node.Value), nil
	case ast.BoolLiteral:
		return heap.Bool(node.Value == "true"), nil
	case ast.VarRef:
		val, ok := heap.Lookup(env.Head, it.Global.Head, node.Value)
		if !ok {
			return heap.Void, runtimeErrorf(node.Line, "undefined variable '%s'", node.Value)
		}
		return val, nil
	case ast.BinaryOp:
		return it.evalBinary(node, env)
	case ast.UnaryOp:
		return it.evalUnary(node, env)
	case ast.ListLiteral:
		return it.evalListLiteral(node, env)
	case ast.MapLiteral:
		return it.evalMapLiteral(node, env)
	case ast.FuncCall:
		return it.evalCall(node, env)
	case ast.NewExpr:
		return it.evalNew(node, env)
	case ast.FieldAccess:
		return it.evalFieldAccess(node, env)
	case ast.IndexAccess:
		return it.evalIndexAccess(node, env)
	}
	return heap.Void, runtimeErrorf(node.Line, "cannot evaluate node of kind %s as an expression", node.Kind)
}

func (it *Interp) evalBinary(node *ast.Node, env *Env) (heap.Value, error) {
	left, err := it.Eval(node.Children[0], env)
	if err != nil {
		return heap.Void, err
	}
	right, err := it.Eval(node.Children[1], env)
	if err != nil {
		return heap.Void, err
	}
	line := node.Line

	switch node.Value {
	case "and":
		if left.Kind != heap.KBool || right.Kind != heap.KBool {
			return heap.Void, runtimeErrorf(line, "'and' requires boolean operands")
		}
		return heap.Bool(left.Bool && right.Bool), nil
	case "or":
		if left.Kind != heap.KBool || right.Kind != heap.KBool {
			return heap.Void, runtimeErrorf(line, "'or' requires boolean operands")
		}
		return heap.Bool(left.Bool || right.Bool), nil
	case "==":
		return heap.Bool(heap.Equal(left, right)), nil
	case "!=":
		return heap.Bool(!heap.Equal(left, right)), nil
	case "+":
		if left.Kind == heap.KString || right.Kind == heap.KString {
			return heap.Str(left.String() + right.String()), nil
		}
		return numericBinary(line, left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	case "-":
		return numericBinary(line, left, right, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case "*":
		return numericBinary(line, left, right, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case "/":
		if !left.IsNumber() || !right.IsNumber() {
			return heap.Void, runtimeErrorf(line, "'/' requires numeric operands")
		}
		if left.Kind == heap.KInt && right.Kind == heap.KInt {
			if right.Int == 0 {
				return heap.Void, runtimeErrorf(line, "division by zero")
			}
			return heap.Int(left.Int / right.Int), nil
		}
		if right.AsFloat() == 0 {
			return heap.Void, runtimeErrorf(line, "division by zero")
		}
		return heap.Float(left.AsFloat() / right.AsFloat()), nil
	case "%":
		if left.Kind != heap.KInt || right.Kind != heap.KInt {
			return heap.Void, runtimeErrorf(line, "'%%' is only defined for ints")
		}
		if right.Int == 0 {
			return heap.Void, runtimeErrorf(line, "modulo by zero")
		}
		return heap.Int(left.Int % right.Int), nil
	case "^":
		if !left.IsNumber() || !right.IsNumber() {
			return heap.Void, runtimeErrorf(line, "'^' requires numeric operands")
		}
		result := math.Pow(left.AsFloat(), right.AsFloat())
		if left.Kind == heap.KInt && right.Kind == heap.KInt {
			return heap.Int(int64(result)), nil
		}
		return heap.Float(result), nil
	case ">", "<", ">=", "<=":
		if !left.IsNumber() || !right.IsNumber() {
			return heap.Void, runtimeErrorf(line, "comparison requires numeric operands")
		}
		a, b := left.AsFloat(), right.AsFloat()
		switch node.Value {
		case ">":
			return heap.Bool(a > b), nil
		case "<":
			return heap.Bool(a < b), nil
		case ">=":
			return heap.Bool(a >= b), nil
		default:
			return heap.Bool(a <= b), nil
		}
	}
	return heap.Void, runtimeErrorf(line, "unknown operator '%s'", node.Value)
}

func numericBinary(line int, left, right heap.Value, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (heap.Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return heap.Void, runtimeErrorf(line, "arithmetic requires numeric operands")
	}
	if left.Kind == heap.KInt && right.Kind == heap.KInt {
		return heap.Int(intOp(left.Int, right.Int)), nil
	}
	return heap.Float(floatOp(left.AsFloat(), right.AsFloat())), nil
}

func (it *Interp) evalUnary(node *ast.Node, env *Env) (heap.Value, error) {
	operand, err := it.Eval(node.Children[0], env)
	if err != nil {
		return heap.Void, err
	}
	switch node.Value {
	case "-":
		if !operand.IsNumber() {
			return heap.Void, runtimeErrorf(node.Line, "unary '-' requires a number")
		}
		if operand.Kind == heap.KInt {
			return heap.Int(-operand.Int), nil
		}
		return heap.Float(-operand.Float), nil
	case "!":
		if operand.Kind != heap.KBool {
			return heap.Void, runtimeErrorf(node.Line, "unary '!' requires a bool")
		}
		return heap.Bool(!operand.Bool), nil
	}
	return heap.Void, runtimeErrorf(node.Line, "unknown unary operator '%s'", node.Value)
}

func (it *Interp) evalListLiteral(node *ast.Node, env *Env) (heap.Value, error) {
	return it.evalListLiteralTyped(node, env, 0)
}

// evalListLiteralTyped evaluates a `[...]` literal into a ListObj with the
// given fixed capacity (0 for an ordinary growable list). fixedCap comes
// from a declaration's array specifier, so a literal with more elements
// than the declared capacity is a type error at the declaration line
// rather than a silently-truncated list.
func (it *Interp) evalListLiteralTyped(node *ast.Node, env *Env, fixedCap int) (heap.Value, error) {
	items := make([]heap.Value, 0, len(node.Children))
	for _, c := range node.Children {
		v, err := it.Eval(c, env)
		if err != nil {
			return heap.Void, err
		}
		items = append(items, v)
	}
	if fixedCap > 0 && len(items) > fixedCap {
		return heap.Void, runtimeErrorf(node.Line, "list literal has %d elements, exceeds declared capacity %d", len(items), fixedCap)
	}
	obj := it.Heap.NewList(items, fixedCap)
	return heap.Value{Kind: heap.KList, Obj: obj}, nil
}

func (it *Interp) evalMapLiteral(node *ast.Node, env *Env) (heap.Value, error) {
	return it.evalMapLiteralTyped(node, env, heap.KVoid, heap.KVoid)
}

// evalMapLiteralTyped evaluates a `{...}` literal into a HashMapObj
// carrying the given key/value type constraints, so every entry is
// routed through Set's type guard as it is inserted rather than tagged
// onto an already-built, unconstrained map.
func (it *Interp) evalMapLiteralTyped(node *ast.Node, env *Env, keyType, valueType heap.Kind) (heap.Value, error) {
	obj := it.Heap.NewHashMap(keyType, valueType)
	it.Heap.PushRoot(obj)
	defer it.Heap.PopRoot()

	for i := 0; i+1 < len(node.Children); i += 2 {
		k, err := it.Eval(node.Children[i], env)
		if err != nil {
			return heap.Void, err
		}
		v, err := it.Eval(node.Children[i+1], env)
		if err != nil {
			return heap.Void, err
		}
		if k.Kind != heap.KString {
			return heap.Void, runtimeErrorf(node.Line, "map keys must be strings")
		}
		if err := obj.Map.Set(k.Str, v); err != nil {
			return heap.Void, runtimeErrorf(node.Line, "%s", err)
		}
	}
	return heap.Value{Kind: heap.KHashMap, Obj: obj}, nil
}

func (it *Interp) evalIndexAccess(node *ast.Node, env *Env) (heap.Value, error) {
	target, err := it.Eval(node.Children[0], env)
	if err != nil {
		return heap.Void, err
	}
	idx, err := it.Eval(node.Children[1], env)
	if err != nil {
		return heap.Void, err
	}
	switch target.Kind {
	case heap.KList:
		if idx.Kind != heap.KInt {
			return heap.Void, runtimeErrorf(node.Line, "list index must be an int")
		}
		v, ok := target.Obj.List.Get(int(idx.Int))
		if !ok {
			return heap.Void, runtimeErrorf(node.Line, "list index out of bounds")
		}
		return v, nil
	case heap.KHashMap:
		if idx.Kind != heap.KString {
			return heap.Void, runtimeErrorf(node.Line, "map key must be a string")
		}
		v, _ := target.Obj.Map.Get(idx.Str)
		return v, nil
	}
	return heap.Void, runtimeErrorf(node.Line, "cannot index a %s", target.Kind)
}
