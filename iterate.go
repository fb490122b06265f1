package lru

import (
	"github.com/zyedidia/lru-mem/internal/iter"
	"github.com/zyedidia/lru-mem/internal/list"
)

// KV is a key-value pair yielded by the cache's iterators.
type KV[K comparable, V any] struct {
	Key K
	Val V
}

// cursor walks the recency list from both ends at once, fusing once the
// two ends meet or cross. front starts at the LRU end (list.Back) and
// advances toward MRU; back starts at the MRU end (list.Front) and
// advances toward LRU. Every iterator type in this file is a thin
// projection over a cursor.
type cursor[K comparable, V any] struct {
	front, back *list.Node[entry[K, V]]
	done        bool
}

func newCursor[K comparable, V any](l *list.List[entry[K, V]]) cursor[K, V] {
	return cursor[K, V]{front: l.Back, back: l.Front}
}

func (c *cursor[K, V]) next() (entry[K, V], bool) {
	if c.done || c.front == nil {
		var zero entry[K, V]
		return zero, false
	}
	val := c.front.Value
	if c.front == c.back {
		c.done = true
	} else {
		c.front = c.front.Prev
	}
	return val, true
}

func (c *cursor[K, V]) nextBack() (entry[K, V], bool) {
	if c.done || c.back == nil {
		var zero entry[K, V]
		return zero, false
	}
	val := c.back.Value
	if c.back == c.front {
		c.done = true
	} else {
		c.back = c.back.Next
	}
	return val, true
}

// Iter reads (key, value) pairs from least- to most-recently-used without
// disturbing recency (the same non-disturbing semantics as Peek).
type Iter[K comparable, V any] struct {
	cur cursor[K, V]
}

// Iter returns a double-ended iterator over the cache's entries, ordered
// from least- to most-recently-used.
func (c *Cache[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{cur: newCursor(&c.lru)}
}

// Next returns the next (key, value) pair from the LRU end.
func (it *Iter[K, V]) Next() (KV[K, V], bool) {
	e, ok := it.cur.next()
	return KV[K, V]{Key: e.key, Val: e.val}, ok
}

// NextBack returns the next (key, value) pair from the MRU end.
func (it *Iter[K, V]) NextBack() (KV[K, V], bool) {
	e, ok := it.cur.nextBack()
	return KV[K, V]{Key: e.key, Val: e.val}, ok
}

// Forward adapts this iterator to the single-direction closure form,
// draining from the LRU end.
func (it *Iter[K, V]) Forward() iter.Iter[KV[K, V]] {
	return it.Next
}

// Keys reads keys from least- to most-recently-used without disturbing
// recency.
type Keys[K comparable, V any] struct {
	cur cursor[K, V]
}

// Keys returns a double-ended iterator over the cache's keys, ordered from
// least- to most-recently-used.
func (c *Cache[K, V]) Keys() *Keys[K, V] {
	return &Keys[K, V]{cur: newCursor(&c.lru)}
}

func (it *Keys[K, V]) Next() (K, bool) {
	e, ok := it.cur.next()
	return e.key, ok
}

func (it *Keys[K, V]) NextBack() (K, bool) {
	e, ok := it.cur.nextBack()
	return e.key, ok
}

func (it *Keys[K, V]) Forward() iter.Iter[K] {
	return it.Next
}

// Values reads values from least- to most-recently-used without
// disturbing recency.
type Values[K comparable, V any] struct {
	cur cursor[K, V]
}

// Values returns a double-ended iterator over the cache's values, ordered
// from least- to most-recently-used.
func (c *Cache[K, V]) Values() *Values[K, V] {
	return &Values[K, V]{cur: newCursor(&c.lru)}
}

func (it *Values[K, V]) Next() (V, bool) {
	e, ok := it.cur.next()
	return e.val, ok
}

func (it *Values[K, V]) NextBack() (V, bool) {
	e, ok := it.cur.nextBack()
	return e.val, ok
}

func (it *Values[K, V]) Forward() iter.Iter[V] {
	return it.Next
}

// Drain yields every (key, value) pair, ordered from least- to
// most-recently-used, while emptying the cache. The cache becomes empty
// (ledger at zero, table cleared, list sentinels cleared) as soon as Drain
// is called: since Go has no deterministic destructors, there is no later
// point at which "on drop" cleanup could safely happen, so emptying
// happens up front rather than lazily as values are yielded. Abandoning a
// Drain after only partially consuming it is therefore always safe --
// the unyielded entries are simply left for the garbage collector, and the
// cache itself is already back in a consistent, empty state.
type Drain[K comparable, V any] struct {
	cur cursor[K, V]
}

// Drain detaches every entry from the cache and returns an iterator over
// them. After this call the cache is empty.
func (c *Cache[K, V]) Drain() *Drain[K, V] {
	d := &Drain[K, V]{cur: newCursor(&c.lru)}
	c.table.Clear()
	c.lru.Init()
	c.currentSize = 0
	return d
}

func (it *Drain[K, V]) Next() (KV[K, V], bool) {
	e, ok := it.cur.next()
	return KV[K, V]{Key: e.key, Val: e.val}, ok
}

func (it *Drain[K, V]) NextBack() (KV[K, V], bool) {
	e, ok := it.cur.nextBack()
	return KV[K, V]{Key: e.key, Val: e.val}, ok
}

func (it *Drain[K, V]) Forward() iter.Iter[KV[K, V]] {
	return it.Next
}

// IntoIter yields every (key, value) pair, ordered from least- to
// most-recently-used, consuming the cache: the Cache value that produced
// it must not be used afterward. Implemented identically to Drain, since
// both detach the entries up front; the two are kept as distinct types
// because they document different caller contracts (Drain's cache stays
// alive and empty, IntoIter's is meant to be discarded).
type IntoIter[K comparable, V any] struct {
	cur cursor[K, V]
}

// IntoIter detaches every entry from the cache and returns an iterator
// over them, consuming the cache.
func (c *Cache[K, V]) IntoIter() *IntoIter[K, V] {
	it := &IntoIter[K, V]{cur: newCursor(&c.lru)}
	c.table.Clear()
	c.lru.Init()
	c.currentSize = 0
	return it
}

func (it *IntoIter[K, V]) Next() (KV[K, V], bool) {
	e, ok := it.cur.next()
	return KV[K, V]{Key: e.key, Val: e.val}, ok
}

func (it *IntoIter[K, V]) NextBack() (KV[K, V], bool) {
	e, ok := it.cur.nextBack()
	return KV[K, V]{Key: e.key, Val: e.val}, ok
}

func (it *IntoIter[K, V]) Forward() iter.Iter[KV[K, V]] {
	return it.Next
}
