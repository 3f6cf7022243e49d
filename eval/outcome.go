/*
File    : pith/eval/outcome.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements Pith's evaluator: the mutually-recursive
// Eval/Exec pair that walks an ast.Node tree against a heap-backed
// environment chain.
package eval

import "github.com/akashmaji946/go-mix/heap"

// OutcomeKind discriminates what a statement's execution produced,
// replacing Break/Continue-as-Values with an explicit three-arm
// signalling type, so loop/return propagation never reuses a Value kind for it.
type OutcomeKind int

const (
	Normal OutcomeKind = iota
	Break
	Continue
	Returning
)

// Outcome is what Exec returns: either nothing notable (Normal), a loop
// signal (Break/Continue), or a function return carrying its Value.
type Outcome struct {
	Kind  OutcomeKind
	Value heap.Value
}

var normal = Outcome{Kind: Normal}

func isSignal(o Outcome) bool { return o.Kind != Normal }
