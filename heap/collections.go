/*
File    : pith/heap/collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package heap

import "fmt"

const bucketCount = 16

func hashKey(s string) int {
	h := 2166136261
	for i := 0; i < len(s); i++ {
		h = (h ^ int(s[i])) * 16777619
	}
	if h < 0 {
		h = -h
	}
	return h % bucketCount
}

// Get returns the value bound to key, and whether it was present.
func (m *HashMapObj) Get(key string) (Value, bool) {
	if len(m.Buckets) == 0 {
		return Void, false
	}
	for e := m.Buckets[hashKey(key)]; e != nil; e = e.Next {
		if e.Key == key {
			return e.Val, true
		}
	}
	return Void, false
}

// Set inserts or overwrites key, enforcing the map's declared value type
// (KVoid means unconstrained) and reporting a type-mismatch error
// otherwise, enforcing the map's declared value type.
func (m *HashMapObj) Set(key string, val Value) error {
	if m.ValueType != KVoid && val.Kind != KVoid && val.Kind != m.ValueType {
		return fmt.Errorf("type error: map declared for %s values, got %s", m.ValueType, val.Kind)
	}
	if len(m.Buckets) == 0 {
		m.Buckets = make([]*HashMapEntry, bucketCount)
	}
	idx := hashKey(key)
	for e := m.Buckets[idx]; e != nil; e = e.Next {
		if e.Key == key {
			e.Val = val
			return nil
		}
	}
	m.Buckets[idx] = &HashMapEntry{Key: key, Val: val, Next: m.Buckets[idx]}
	m.Count++
	return nil
}

// Keys returns the map's keys in their (unspecified) bucket-chain order.
func (m *HashMapObj) Keys() []string {
	var out []string
	for _, bucket := range m.Buckets {
		for e := bucket; e != nil; e = e.Next {
			out = append(out, e.Key)
		}
	}
	return out
}

// Get returns the element at idx, and whether idx was in bounds.
func (l *ListObj) Get(idx int) (Value, bool) {
	if idx < 0 || idx >= len(l.Items) {
		return Void, false
	}
	return l.Items[idx], true
}

// Set overwrites the element at idx, reporting out-of-bounds as an error.
func (l *ListObj) Set(idx int, val Value) error {
	if idx < 0 || idx >= len(l.Items) {
		return fmt.Errorf("index %d out of bounds (len %d)", idx, len(l.Items))
	}
	l.Items[idx] = val
	return nil
}

// Push appends val, rejecting growth past a fixed list's declared
// capacity.
func (l *ListObj) Push(val Value) error {
	if l.IsFixed && len(l.Items) >= l.Cap {
		return fmt.Errorf("cannot grow fixed-capacity list beyond %d", l.Cap)
	}
	l.Items = append(l.Items, val)
	return nil
}

// Pop removes and returns the last element.
func (l *ListObj) Pop() (Value, error) {
	if len(l.Items) == 0 {
		return Void, fmt.Errorf("pop from empty list")
	}
	last := l.Items[len(l.Items)-1]
	l.Items = l.Items[:len(l.Items)-1]
	return last, nil
}
