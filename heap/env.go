/*
File    : pith/heap/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package heap

// Lookup walks the environment chain from head (innermost scope) to tail
// looking for name, then falls back to the global chain if unresolved.
// It returns the bound Value and whether it was found.
func Lookup(head, global *Object, name string) (Value, bool) {
	for e := head; e != nil; e = e.Env.Next {
		if e.Env.Name == name {
			return e.Env.Value, true
		}
	}
	if global != nil && global != head {
		for e := global; e != nil; e = e.Env.Next {
			if e.Env.Name == name {
				return e.Env.Value, true
			}
		}
	}
	return Void, false
}

// Assign walks the chain for an existing binding of name and overwrites
// it in place, falling back to the global chain. It reports whether a
// binding was found.
func Assign(head, global *Object, name string, val Value) bool {
	for e := head; e != nil; e = e.Env.Next {
		if e.Env.Name == name {
			e.Env.Value = val
			return true
		}
	}
	if global != nil && global != head {
		for e := global; e != nil; e = e.Env.Next {
			if e.Env.Name == name {
				e.Env.Value = val
				return true
			}
		}
	}
	return false
}

// Bind creates a new binding at the head of the chain rooted at head
// (variable declarations always shadow rather than overwrite an outer
// binding of the same name).
func (h *Heap) Bind(head *Object, name string, val Value) *Object {
	return h.NewEnv(name, val, head)
}
