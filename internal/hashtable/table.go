// Package hashtable provides the cache's lookup index: an open-addressing
// hash table using robin hood displacement, keyed by a comparable K and
// storing an arbitrary value V (the cache stores *list.Node pointers here,
// so V itself never needs to move for an entry to keep a stable identity
// across a resize -- only the bucket array is reallocated).
package hashtable

import "math"

const emptyPSL = -1

type bucket[K comparable, V any] struct {
	key K
	val V
	// psl is the probe sequence length: how far this entry sits from its
	// ideal bucket. emptyPSL marks a free slot.
	psl int8
}

// Table is a robin-hood hash table mapping K to V.
type Table[K comparable, V any] struct {
	buckets []bucket[K, V]
	hasher  HashFn[K]
	length  uint64
	mask    uint64 // capacity - 1; capacity is always a power of two
}

// New constructs a table with at least 'capacity' buckets (rounded up to a
// power of two) using the given hasher. Because the table grows once it is
// more than three quarters full, it holds fewer than 'capacity' entries
// before its first resize.
func New[K comparable, V any](capacity uint64, hasher HashFn[K]) *Table[K, V] {
	cap := clampCapacity(capacity)
	return &Table[K, V]{
		buckets: newBuckets[K, V](cap),
		hasher:  hasher,
		mask:    cap - 1,
	}
}

func newBuckets[K comparable, V any](n uint64) []bucket[K, V] {
	b := make([]bucket[K, V], n)
	for i := range b {
		b[i].psl = emptyPSL
	}
	return b
}

// Len returns the number of entries stored in the table.
func (t *Table[K, V]) Len() int {
	return int(t.length)
}

// Capacity returns the number of buckets in the table. The table grows on
// an insertion that would leave it more than three quarters full, so at most
// 3/4 of Capacity() entries fit before a resize.
func (t *Table[K, V]) Capacity() int {
	return int(t.mask + 1)
}

// Hasher returns the hash function the table was constructed with, so
// callers that only hold a *Table (e.g. a cache cloning itself) can reuse
// it instead of being required to supply one of their own.
func (t *Table[K, V]) Hasher() HashFn[K] {
	return t.hasher
}

func (t *Table[K, V]) find(key K) (idx uint64, found bool) {
	idx = t.hasher(key) & t.mask
	for psl := int8(0); psl <= t.buckets[idx].psl; psl++ {
		if t.buckets[idx].key == key {
			return idx, true
		}
		idx = (idx + 1) & t.mask
	}
	return idx, false
}

// Get returns the value stored for key, if any.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if idx, ok := t.find(key); ok {
		return t.buckets[idx].val, true
	}
	var zero V
	return zero, false
}

// Put inserts or overwrites the value for key, returning the previous
// value if the key already existed.
func (t *Table[K, V]) Put(key K, val V) (prev V, replaced bool) {
	if idx, ok := t.find(key); ok {
		prev = t.buckets[idx].val
		t.buckets[idx].val = val
		return prev, true
	}
	t.insertNew(key, val)
	var zero V
	return zero, false
}

func (t *Table[K, V]) insertNew(key K, val V) {
	if (t.length+1)*4 > (t.mask+1)*3 { // load factor > 0.75
		t.grow()
	}

	idx := t.hasher(key) & t.mask
	incoming := bucket[K, V]{key: key, val: val, psl: 0}

	for {
		slot := &t.buckets[idx]
		if slot.psl == emptyPSL {
			*slot = incoming
			t.length++
			return
		}
		if incoming.psl > slot.psl {
			incoming, *slot = *slot, incoming
		}
		incoming.psl++
		idx = (idx + 1) & t.mask

		// Guard against an unbounded probe sequence; in practice the load
		// factor check above keeps this from firing.
		if int(incoming.psl) > int(t.mask)+1 || incoming.psl == math.MaxInt8 {
			t.grow()
			t.insertNew(incoming.key, incoming.val)
			return
		}
	}
}

// Remove deletes the entry for key, returning its value if present.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	idx, ok := t.find(key)
	if !ok {
		var zero V
		return zero, false
	}

	val := t.buckets[idx].val
	t.length--

	// Backward-shift deletion: slide the following cluster back by one so
	// every remaining entry's PSL stays correct.
	next := (idx + 1) & t.mask
	for t.buckets[next].psl > 0 {
		t.buckets[next].psl--
		t.buckets[idx] = t.buckets[next]
		idx = next
		next = (next + 1) & t.mask
	}
	t.buckets[idx] = bucket[K, V]{psl: emptyPSL}

	return val, true
}

// Clear removes every entry without shrinking the backing array.
func (t *Table[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket[K, V]{psl: emptyPSL}
	}
	t.length = 0
}

// Each calls fn on every (key, value) pair in unspecified order.
func (t *Table[K, V]) Each(fn func(key K, val V)) {
	for _, b := range t.buckets {
		if b.psl != emptyPSL {
			fn(b.key, b.val)
		}
	}
}

func (t *Table[K, V]) grow() {
	t.resize((t.mask + 1) * 2)
}

// resize rebuilds the bucket array at the given power-of-two capacity and
// reinserts every live entry. This is the table's half of the rehash
// protocol: because buckets hold V by value and the cache always supplies
// V as a pointer into its recency list, relocating buckets here never
// moves the pointee, so the list (and every index or reference a caller
// holds into it) is completely undisturbed by a resize.
func (t *Table[K, V]) resize(newCap uint64) {
	old := t.buckets
	t.buckets = newBuckets[K, V](newCap)
	t.mask = newCap - 1
	t.length = 0

	for _, b := range old {
		if b.psl != emptyPSL {
			t.insertNew(b.key, b.val)
		}
	}
}

// Reserve grows the table, if needed, so it has at least 'want' buckets
// (rounded up to a power of two). Inserting 'want' entries can still
// trigger a further resize, since the table grows past three quarters full.
func (t *Table[K, V]) Reserve(want uint64) {
	needed := clampCapacity(want)
	if t.mask+1 < needed {
		t.resize(needed)
	}
}

// SafeCapacity reports the power-of-two capacity that Reserve(want) would
// grow to, along with whether that capacity can be represented without
// overflowing a table index (the fallible counterpart consumed by
// TryReserve). It performs no allocation.
func SafeCapacity(want uint64) (capacity uint64, ok bool) {
	if want > 1<<62 {
		return 0, false
	}
	return clampCapacity(want), true
}

// ShrinkTo shrinks the table's capacity to the smallest power of two that
// is still at least max(Len(), minCapacity). It is a no-op if the table is
// already that small or smaller. If Len() is more than three quarters of
// that target, reinserting the entries grows the table again, so the
// resulting capacity can be larger than the target.
func (t *Table[K, V]) ShrinkTo(minCapacity uint64) {
	target := clampCapacity(max(uint64(t.length), minCapacity))
	if t.mask+1 > target {
		t.resize(target)
	}
}
