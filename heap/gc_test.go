/*
File    : pith/heap/gc_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReachableObjectsSurviveCollection(t *testing.T) {
	h := New()
	list := h.NewList(nil, 0)
	h.GlobalEnv = h.NewEnv("kept", Value{Kind: KList, Obj: list}, nil)

	orphan := h.NewList(nil, 0)
	_ = orphan

	h.Collect()

	v, ok := Lookup(h.GlobalEnv, h.GlobalEnv, "kept")
	assert.True(t, ok)
	assert.Equal(t, list, v.Obj)
	assert.True(t, !v.Obj.marked, "mark bit must be cleared on survivors")
}

func TestUnreachableObjectsAreSwept(t *testing.T) {
	h := New()
	h.NewList(nil, 0) // unreachable from any root
	before := h.allocated
	assert.Greater(t, before, 0)

	h.Collect()
	assert.Equal(t, 0, h.allocated)
	assert.Nil(t, h.head)
}

func TestTemporaryRootProtectsDuringConstruction(t *testing.T) {
	h := New()
	underConstruction := h.NewList(nil, 0)
	h.PushRoot(underConstruction)
	h.Collect()
	h.PopRoot()

	// Survived the collection despite not being linked from any
	// environment, because it was a pushed temporary root.
	assert.NotNil(t, h.head)
}

func TestRootStackOverflowPanics(t *testing.T) {
	h := New()
	obj := h.NewList(nil, 0)
	assert.Panics(t, func() {
		for i := 0; i < maxTempRoots+1; i++ {
			h.PushRoot(obj)
		}
	})
}

func TestIdempotentSweep(t *testing.T) {
	h := New()
	list := h.NewList(nil, 0)
	h.GlobalEnv = h.NewEnv("kept", Value{Kind: KList, Obj: list}, nil)

	h.Collect()
	allocatedAfterFirst := h.allocated

	h.Collect()
	assert.Equal(t, allocatedAfterFirst, h.allocated, "a second immediate collect must free nothing further")
}

func TestTypedMapRejectsMismatchedValue(t *testing.T) {
	h := New()
	m := h.NewHashMap(KString, KInt)
	assert.NoError(t, m.Map.Set("a", Int(1)))
	err := m.Map.Set("b", Str("not an int"))
	assert.Error(t, err)
}

func TestFixedListRejectsGrowthPastCapacity(t *testing.T) {
	h := New()
	l := h.NewList([]Value{Int(1), Int(2)}, 2)
	err := l.List.Push(Int(3))
	assert.Error(t, err)
}

func TestShutdownFreesEverythingRegardlessOfRoots(t *testing.T) {
	h := New()
	list := h.NewList(nil, 0)
	h.GlobalEnv = h.NewEnv("kept", Value{Kind: KList, Obj: list}, nil)

	h.Shutdown()
	assert.Nil(t, h.head)
}
