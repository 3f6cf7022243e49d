/*
File    : pith/heap/gc.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package heap

import "fmt"

const (
	startThreshold = 1 << 20 // 1 MiB
	maxTempRoots   = 256
)

// objSize is a coarse per-kind byte estimate charged against the
// allocation counter. The exact numbers don't matter; what matters is
// that every allocation debits this counter and every sweep credits it
// back, so the collection threshold crosses at a realistic rhythm.
var objSize = map[ObjKind]int{
	ObjList: 48, ObjHashMap: 64, ObjFunction: 56, ObjModule: 32,
	ObjClass: 56, ObjInstance: 32, ObjBoundMethod: 32, ObjEnv: 40, ObjNative: 24,
}

// Heap owns the intrusive list of every live Object, the temporary-root
// stack, and the allocation-threshold bookkeeping that drives
// mark-and-sweep collection.
type Heap struct {
	head      *Object
	allocated int
	threshold int

	tempRoots []*Object

	// Roots outside the heap's own list: the global environment (kept at
	// the global chain's current head as bindings are added) and the
	// three native registries, set once at interpreter start-up.
	GlobalEnv     *Object
	StringMethods *Object
	ListMethods   *Object
	ModuleFuncs   *Object
}

// New creates an empty Heap with the collector's starting threshold.
func New() *Heap {
	return &Heap{threshold: startThreshold}
}

// PushRoot protects obj from collection while it is under construction
// on the Go call stack but not yet linked into the object graph (e.g.
// building an instance before init has run, or a module's member table
// before the module object itself exists).
func (h *Heap) PushRoot(obj *Object) {
	if len(h.tempRoots) >= maxTempRoots {
		panic("pith: gc temporary root stack overflow")
	}
	h.tempRoots = append(h.tempRoots, obj)
}

// PopRoot releases the most recently pushed temporary root.
func (h *Heap) PopRoot() {
	if len(h.tempRoots) == 0 {
		panic("pith: gc temporary root stack underflow")
	}
	h.tempRoots = h.tempRoots[:len(h.tempRoots)-1]
}

// alloc threads a freshly built Object onto the heap's intrusive list,
// running a collection first if the allocation threshold has been
// crossed.
func (h *Heap) alloc(obj *Object) *Object {
	if h.allocated > h.threshold {
		h.Collect()
	}
	obj.next = h.head
	h.head = obj
	h.allocated += objSize[obj.Kind]
	return obj
}

func (h *Heap) NewList(items []Value, fixedCap int) *Object {
	return h.alloc(&Object{Kind: ObjList, List: &ListObj{Items: items, IsFixed: fixedCap > 0, Cap: fixedCap}})
}

func (h *Heap) NewHashMap(keyType, valueType Kind) *Object {
	return h.alloc(&Object{Kind: ObjHashMap, Map: &HashMapObj{KeyType: keyType, ValueType: valueType}})
}

func (h *Heap) NewFunction(f *FuncObj) *Object {
	return h.alloc(&Object{Kind: ObjFunction, Func: f})
}

func (h *Heap) NewModule(m *ModuleObj) *Object {
	return h.alloc(&Object{Kind: ObjModule, Mod: m})
}

func (h *Heap) NewClass(c *ClassObj) *Object {
	return h.alloc(&Object{Kind: ObjClass, Class: c})
}

func (h *Heap) NewInstance(i *InstanceObj) *Object {
	return h.alloc(&Object{Kind: ObjInstance, Inst: i})
}

func (h *Heap) NewBoundMethod(receiver, method Value) *Object {
	return h.alloc(&Object{Kind: ObjBoundMethod, Bound: &BoundMethodObj{Receiver: receiver, Method: method}})
}

func (h *Heap) NewEnv(name string, val Value, next *Object) *Object {
	return h.alloc(&Object{Kind: ObjEnv, Env: &EnvObj{Name: name, Value: val, Next: next}})
}

func (h *Heap) NewNative(name string, fn NativeFunc) *Object {
	return h.alloc(&Object{Kind: ObjNative, Native: &NativeObj{Name: name, Fn: fn}})
}

// markValue marks the Object a Value refers to, if any.
func markValue(v Value) {
	if v.Obj != nil {
		markObject(v.Obj)
	}
}

// markObject recursively marks obj and everything it owns, tracing
// each object kind's outgoing references.
func markObject(obj *Object) {
	if obj == nil || obj.marked {
		return
	}
	obj.marked = true

	switch obj.Kind {
	case ObjList:
		for _, it := range obj.List.Items {
			markValue(it)
		}
	case ObjHashMap:
		for _, bucket := range obj.Map.Buckets {
			for e := bucket; e != nil; e = e.Next {
				markValue(e.Val)
			}
		}
	case ObjFunction:
		markObject(obj.Func.Env)
		markObject(obj.Func.Owner)
	case ObjModule:
		markObject(obj.Mod.Members)
	case ObjClass:
		markObject(obj.Class.Methods)
		markObject(obj.Class.Parent)
	case ObjInstance:
		markObject(obj.Inst.Class)
		markObject(obj.Inst.Fields)
	case ObjBoundMethod:
		markValue(obj.Bound.Receiver)
		markValue(obj.Bound.Method)
	case ObjEnv:
		markValue(obj.Env.Value)
		markObject(obj.Env.Next)
	case ObjNative:
		// No owned references.
	}
}

// markRoots marks every root: the global environment, the three native
// registries, and the temporary-root stack.
func (h *Heap) markRoots() {
	markObject(h.GlobalEnv)
	markObject(h.StringMethods)
	markObject(h.ListMethods)
	markObject(h.ModuleFuncs)
	for _, r := range h.tempRoots {
		markObject(r)
	}
}

// sweep walks the intrusive list, freeing (dropping the Go reference to)
// every unmarked object and clearing the mark bit on survivors. Go's own
// GC reclaims the memory once nothing else in this package's structures
// points at it; this pass is what enforces Pith's *language-level*
// object lifetime, independent of the host runtime's memory management.
func (h *Heap) sweep() {
	slot := &h.head
	for *slot != nil {
		obj := *slot
		if !obj.marked {
			*slot = obj.next
			h.allocated -= objSize[obj.Kind]
			continue
		}
		obj.marked = false
		slot = &obj.next
	}
}

// Collect runs one full mark-and-sweep cycle and recomputes the
// threshold for the next one: 2x the bytes still allocated, floored at
// the starting 1 MiB.
func (h *Heap) Collect() {
	h.markRoots()
	h.sweep()
	h.threshold = h.allocated * 2
	if h.threshold < startThreshold {
		h.threshold = startThreshold
	}
}

// Shutdown performs the "mark nothing, sweep all" pass run at process
// termination: every object's mark bit is cleared without consulting
// roots, so the subsequent sweep frees everything unconditionally.
func (h *Heap) Shutdown() {
	for obj := h.head; obj != nil; obj = obj.next {
		obj.marked = false
	}
	h.sweep()
}

// Stats reports the collector's current bookkeeping.
func (h *Heap) Stats() string {
	return fmt.Sprintf("GC Stats: %d bytes allocated, threshold %d", h.allocated, h.threshold)
}
