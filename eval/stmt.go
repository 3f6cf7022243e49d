/*
File    : pith/eval/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/heap"
)

// Exec executes a statement node against env, returning the signalling
// Outcome it produced (Normal unless it was, or propagated, a break,
// continue or return).
func (it *Interp) Exec(node *ast.Node, env *Env) (Outcome, error) {
	switch node.Kind {
	case ast.Block:
		return it.execBlock(node, env)
	case ast.Print:
		return it.execPrint(node, env)
	case ast.VarDecl:
		return normal, it.execVarDecl(node, env)
	case ast.Assignment:
		return normal, it.execAssignment(node, env)
	case ast.If:
		return it.execIf(node, env)
	case ast.While:
		return it.execWhile(node, env)
	case ast.DoWhile:
		return it.execDoWhile(node, env)
	case ast.For:
		return it.execFor(node, env)
	case ast.Foreach:
		return it.execForeach(node, env)
	case ast.Switch:
		return it.execSwitch(node, env)
	case ast.FuncDef:
		return normal, it.execFuncDef(node, env)
	case ast.ClassDef:
		return normal, it.execClassDef(node, env)
	case ast.Import:
		return normal, it.execImport(node, env)
	case ast.Return:
		return it.execReturn(node, env)
	case ast.Break:
		return Outcome{Kind: Break}, nil
	case ast.Continue:
		return Outcome{Kind: Continue}, nil
	}

	// Anything else at statement position is a bare expression statement
	// (a call, a literal, ...); evaluate it for side effects and discard
	// the result.
	_, err := it.Eval(node, env)
	return normal, err
}

func (it *Interp) execPrint(node *ast.Node, env *Env) (Outcome, error) {
	parts := make([]string, len(node.Children))
	for i, c := range node.Children {
		v, err := it.Eval(c, env)
		if err != nil {
			return normal, err
		}
		parts[i] = v.String()
	}
	for i, p := range parts {
		if i > 0 {
			fmt.Fprint(it.Stdout, " ")
		}
		fmt.Fprint(it.Stdout, p)
	}
	fmt.Fprintln(it.Stdout)
	return normal, nil
}

// execVarDecl binds node.Value to its initializer, stamping any declared
// map key/value types or fixed list capacity onto the constructed heap
// object so HashMapObj.Set's and ListObj.Push's type/capacity guards are
// reachable the moment the value is built, not just on later inserts.
func (it *Interp) execVarDecl(node *ast.Node, env *Env) error {
	var initExpr, spec *ast.Node
	for _, c := range node.Children {
		if c.Kind == ast.ArraySpecifier {
			spec = c
		} else {
			initExpr = c
		}
	}

	keyType, valueType, isTypedMap := mapTypeArgs(node.TypeName)
	fixedCap := 0
	if spec != nil && spec.Value != "" {
		n, err := strconv.Atoi(spec.Value)
		if err != nil {
			return runtimeErrorf(node.Line, "invalid array size '%s'", spec.Value)
		}
		fixedCap = n
	}

	val := heap.Void
	switch {
	case initExpr == nil:
		// no initializer; nothing to construct or type-check
	case isTypedMap && initExpr.Kind == ast.MapLiteral:
		v, err := it.evalMapLiteralTyped(initExpr, env, keyType, valueType)
		if err != nil {
			return err
		}
		val = v
	case fixedCap > 0 && initExpr.Kind == ast.ListLiteral:
		v, err := it.evalListLiteralTyped(initExpr, env, fixedCap)
		if err != nil {
			return err
		}
		val = v
	default:
		v, err := it.Eval(initExpr, env)
		if err != nil {
			return err
		}
		val = v
	}

	// A declared type whose initializer wasn't a literal (a call, a
	// variable, ...) still constrains the binding going forward: stamp
	// the declared type onto whatever heap object came out, so every
	// later insert through this name is checked even though this
	// particular value's own construction wasn't.
	if isTypedMap && val.Kind == heap.KHashMap {
		val.Obj.Map.KeyType = keyType
		val.Obj.Map.ValueType = valueType
	}
	if fixedCap > 0 && val.Kind == heap.KList {
		val.Obj.List.IsFixed = true
		val.Obj.List.Cap = fixedCap
	}

	env.Bind(it, node.Value, val)
	return nil
}

// mapTypeArgs parses a rendered type annotation such as "map<string,int>"
// into its key/value Kinds. ok is false for anything that isn't a map
// type (including a bare "map" with no generic arguments, which stays
// unconstrained).
func mapTypeArgs(typeName string) (keyType, valueType heap.Kind, ok bool) {
	const prefix = "map<"
	if !strings.HasPrefix(typeName, prefix) {
		return heap.KVoid, heap.KVoid, false
	}
	rest := typeName[len(prefix):]
	depth := 0
	for i, ch := range rest {
		switch ch {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
				continue
			}
			args := splitTopLevelComma(rest[:i])
			if len(args) != 2 {
				return heap.KVoid, heap.KVoid, false
			}
			return kindFromTypeName(args[0]), kindFromTypeName(args[1]), true
		}
	}
	return heap.KVoid, heap.KVoid, false
}

// splitTopLevelComma splits s on commas that aren't nested inside a
// `<...>` generic argument list.
func splitTopLevelComma(s string) []string {
	depth := 0
	start := 0
	var parts []string
	for i, ch := range s {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// kindFromTypeName maps a primitive or collection keyword (as rendered
// into a TypeName string) to its runtime Kind. An unrecognised name
// (a user class, or a further-nested generic) returns KVoid, i.e.
// unconstrained, since only primitive and collection value types are
// enforced by the hash-map type guard.
func kindFromTypeName(name string) heap.Kind {
	switch name {
	case "int":
		return heap.KInt
	case "float":
		return heap.KFloat
	case "string":
		return heap.KString
	case "bool":
		return heap.KBool
	case "list":
		return heap.KList
	case "map":
		return heap.KHashMap
	}
	return heap.KVoid
}

// execAssignment dispatches on the lvalue's node kind: a bare name walks
// the environment chain, a field access sets an instance field, an index
// access sets a list element or a map entry.
func (it *Interp) execAssignment(node *ast.Node, env *Env) error {
	lhs, rhs := node.Children[0], node.Children[1]
	val, err := it.Eval(rhs, env)
	if err != nil {
		return err
	}

	switch lhs.Kind {
	case ast.VarRef:
		if !heap.Assign(env.Head, it.Global.Head, lhs.Value, val) {
			return runtimeErrorf(node.Line, "assignment to undefined variable '%s'", lhs.Value)
		}
		return nil
	case ast.FieldAccess:
		base, err := it.Eval(lhs.Children[0], env)
		if err != nil {
			return err
		}
		if base.Kind != heap.KInstance {
			return runtimeErrorf(node.Line, "cannot assign a field on a %s", base.Kind)
		}
		if err := base.Obj.Inst.Fields.Map.Set(lhs.Value, val); err != nil {
			return runtimeErrorf(node.Line, "%s", err)
		}
		return nil
	case ast.IndexAccess:
		target, err := it.Eval(lhs.Children[0], env)
		if err != nil {
			return err
		}
		idx, err := it.Eval(lhs.Children[1], env)
		if err != nil {
			return err
		}
		switch target.Kind {
		case heap.KList:
			if idx.Kind != heap.KInt {
				return runtimeErrorf(node.Line, "list index must be an int")
			}
			if err := target.Obj.List.Set(int(idx.Int), val); err != nil {
				return runtimeErrorf(node.Line, "%s", err)
			}
			return nil
		case heap.KHashMap:
			if idx.Kind != heap.KString {
				return runtimeErrorf(node.Line, "map key must be a string")
			}
			if err := target.Obj.Map.Set(idx.Str, val); err != nil {
				return runtimeErrorf(node.Line, "%s", err)
			}
			return nil
		}
		return runtimeErrorf(node.Line, "cannot index-assign a %s", target.Kind)
	}
	return runtimeErrorf(node.Line, "invalid assignment target")
}

func (it *Interp) execIf(node *ast.Node, env *Env) (Outcome, error) {
	cond, err := it.Eval(node.Children[0], env)
	if err != nil {
		return normal, err
	}
	if cond.Truthy() {
		return it.execBlock(node.Children[1], env.Child())
	}
	if len(node.Children) > 2 {
		branch := node.Children[2]
		if branch.Kind == ast.If {
			return it.Exec(branch, env)
		}
		return it.execBlock(branch, env.Child())
	}
	return normal, nil
}

func (it *Interp) execWhile(node *ast.Node, env *Env) (Outcome, error) {
	for {
		cond, err := it.Eval(node.Children[0], env)
		if err != nil {
			return normal, err
		}
		if !cond.Truthy() {
			return normal, nil
		}
		outcome, err := it.execBlock(node.Children[1], env.Child())
		if err != nil {
			return normal, err
		}
		switch outcome.Kind {
		case Break:
			return normal, nil
		case Continue:
			continue
		case Returning:
			return outcome, nil
		}
	}
}

func (it *Interp) execDoWhile(node *ast.Node, env *Env) (Outcome, error) {
	for {
		outcome, err := it.execBlock(node.Children[0], env.Child())
		if err != nil {
			return normal, err
		}
		switch outcome.Kind {
		case Break:
			return normal, nil
		case Returning:
			return outcome, nil
		}
		cond, err := it.Eval(node.Children[1], env)
		if err != nil {
			return normal, err
		}
		if !cond.Truthy() {
			return normal, nil
		}
	}
}

func (it *Interp) execFor(node *ast.Node, env *Env) (Outcome, error) {
	loopEnv := env.Child()
	if _, err := it.Exec(node.Children[0], loopEnv); err != nil {
		return normal, err
	}
	for {
		// An omitted condition clause was parsed as an empty placeholder
		// Block (condition expressions are never Block nodes themselves);
		// treat it as always-true.
		if node.Children[1].Kind != ast.Block {
			cond, err := it.Eval(node.Children[1], loopEnv)
			if err != nil {
				return normal, err
			}
			if !cond.Truthy() {
				return normal, nil
			}
		}
		outcome, err := it.execBlock(node.Children[2], loopEnv.Child())
		if err != nil {
			return normal, err
		}
		switch outcome.Kind {
		case Break:
			return normal, nil
		case Returning:
			return outcome, nil
		}
		if _, err := it.Exec(node.Children[3], loopEnv); err != nil {
			return normal, err
		}
	}
}

func (it *Interp) execForeach(node *ast.Node, env *Env) (Outcome, error) {
	iterable, err := it.Eval(node.Children[0], env)
	if err != nil {
		return normal, err
	}
	if iterable.Kind != heap.KList {
		return normal, runtimeErrorf(node.Line, "foreach requires a list")
	}
	for _, item := range iterable.Obj.List.Items {
		iterEnv := env.Child()
		iterEnv.Bind(it, node.Value, item)
		outcome, err := it.execBlock(node.Children[1], iterEnv)
		if err != nil {
			return normal, err
		}
		switch outcome.Kind {
		case Break:
			return normal, nil
		case Continue:
			continue
		case Returning:
			return outcome, nil
		}
	}
	return normal, nil
}

func (it *Interp) execFuncDef(node *ast.Node, env *Env) error {
	fnObj := it.Heap.NewFunction(&heap.FuncObj{
		Name: node.Value, Params: node.Params, Body: node.Children[0], Env: env.Head,
	})
	env.Bind(it, node.Value, heap.Value{Kind: heap.KFunction, Obj: fnObj})
	return nil
}

func (it *Interp) execReturn(node *ast.Node, env *Env) (Outcome, error) {
	if len(node.Children) == 0 {
		return Outcome{Kind: Returning, Value: heap.Void}, nil
	}
	v, err := it.Eval(node.Children[0], env)
	if err != nil {
		return normal, err
	}
	return Outcome{Kind: Returning, Value: v}, nil
}

func (it *Interp) execImport(node *ast.Node, env *Env) error {
	if it.Loader == nil {
		return runtimeErrorf(node.Line, "no module loader configured")
	}
	mod, err := it.Loader.Load(it, node.Value, node.Line)
	if err != nil {
		return err
	}
	env.Bind(it, node.Value, mod)
	return nil
}
