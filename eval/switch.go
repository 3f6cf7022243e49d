/*
File    : pith/eval/switch.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/heap"
)

// execSwitch evaluates the scrutinee once and walks the clauses in
// order. On the first structural match (same kind and equal value),
// execution falls through
// subsequent cases (and any default) until a Break — including a Break
// written as a direct sibling of the case clauses, which the parser
// produces when an entire clause was written inline with no room left
// for `break` inside its own one-statement body (see parser/switch.go).
// `default` runs once matched is set (fallthrough into it) or, if
// nothing ever matched, on a second pass.
func (it *Interp) execSwitch(node *ast.Node, env *Env) (Outcome, error) {
	scrutinee, err := it.Eval(node.Children[0], env)
	if err != nil {
		return normal, err
	}

	matched := false
	for _, clause := range node.Children[1:] {
		switch clause.Kind {
		case ast.Break:
			if matched {
				return normal, nil
			}
		case ast.Case:
			caseVal, err := it.Eval(clause.Children[0], env)
			if err != nil {
				return normal, err
			}
			if !matched && (scrutinee.Kind != caseVal.Kind || !heap.Equal(scrutinee, caseVal)) {
				continue
			}
			matched = true
			outcome, err := it.execBlock(clause.Children[1], env.Child())
			if err != nil {
				return normal, err
			}
			if outcome.Kind == Break {
				return normal, nil
			}
			if isSignal(outcome) {
				return outcome, nil
			}
		case ast.Default:
			if !matched {
				continue
			}
			outcome, err := it.execBlock(clause.Children[0], env.Child())
			if err != nil {
				return normal, err
			}
			if outcome.Kind == Break {
				return normal, nil
			}
			if isSignal(outcome) {
				return outcome, nil
			}
		}
	}

	if matched {
		return normal, nil
	}

	for _, clause := range node.Children[1:] {
		if clause.Kind != ast.Default {
			continue
		}
		outcome, err := it.execBlock(clause.Children[0], env.Child())
		if err != nil {
			return normal, err
		}
		if outcome.Kind == Break {
			return normal, nil
		}
		if isSignal(outcome) {
			return outcome, nil
		}
		break
	}
	return normal, nil
}
