package lru

// Clone returns an independent copy of the cache with the same MaxSize,
// CurrentSize, table capacity, hasher, and entries in the same recency
// order. The clone reuses the original's own hasher (read from the lookup
// table), so there is no way for a clone to end up with a hasher that
// disagrees with the original's. Because Go assigns K and V by value, this
// already produces deep copies for the common case of value-shaped keys
// and values (numbers, strings, plain structs); if V holds its own
// pointers or slices and needs true deep copies of what they point to, use
// CloneWith instead.
func (c *Cache[K, V]) Clone() *Cache[K, V] {
	return CloneWith(c, func(v V) V { return v })
}

// CloneWith is like Clone but applies cloneValue to every value as it is
// copied, letting the caller deep-copy values that hold their own
// indirection (slices, maps, pointers).
func CloneWith[K comparable, V any](c *Cache[K, V], cloneValue func(V) V) *Cache[K, V] {
	clone := WithCapacityAndHasher[K, V](c.maxSize, c.Capacity(), c.table.Hasher(), c.keySize, c.valSize)
	clone.currentSize = c.currentSize

	// Walk from the LRU end and push-front each salvaged entry in turn:
	// since pushing to the front of an initially empty list reverses the
	// visitation order, walking tail-to-head and prepending reproduces the
	// original head-to-tail order exactly.
	for n := c.lru.Back; n != nil; n = n.Prev {
		e := n.Value
		e.val = cloneValue(e.val)
		newNode := clone.lru.PushFront(e)
		clone.table.Put(e.key, newNode)
	}

	return clone
}
