package lru

// Insert adds a key-value pair to the cache. If the key already exists its
// old value is replaced, and the prior value is returned. If the entry's
// own estimated size exceeds MaxSize, the cache is left untouched and an
// *EntryTooLarge error carrying the given key and value is returned.
//
// Otherwise, entries are evicted from the tail (least-recently-used end)
// until the new entry fits, then the entry is placed at the head.
func (c *Cache[K, V]) Insert(key K, value V) (old V, err error) {
	size := entrySize(c.keySize(key), c.valSize(value))
	if size > c.maxSize {
		return old, &EntryTooLarge[K, V]{
			Key:       key,
			Value:     value,
			EntrySize: size,
			MaxSize:   c.maxSize,
		}
	}

	if prev, ok := c.removeNode(key); ok {
		old = prev.val
	}

	c.evictToTarget(c.maxSize - size)

	n := c.lru.PushFront(entry[K, V]{key: key, val: value, size: size})
	c.table.Put(key, n)
	c.currentSize += size

	return old, nil
}

// Remove deletes the entry for key, if present, and returns its value.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	e, ok := c.removeNode(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// RemoveEntry is like Remove but returns both the key and the value.
func (c *Cache[K, V]) RemoveEntry(key K) (K, V, bool) {
	e, ok := c.removeNode(key)
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return e.key, e.val, true
}

// RemoveLRU removes and returns the key and value of the current
// least-recently-used entry.
func (c *Cache[K, V]) RemoveLRU() (K, V, bool) {
	if c.lru.Back == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return c.RemoveEntry(c.lru.Back.Value.key)
}

// RemoveMRU removes and returns the key and value of the current
// most-recently-used entry.
func (c *Cache[K, V]) RemoveMRU() (K, V, bool) {
	if c.lru.Front == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return c.RemoveEntry(c.lru.Front.Value.key)
}

// Touch marks the entry for key as most-recently-used, without otherwise
// changing it. It is a no-op if the key is absent, and a no-op on list
// state if the key is already most-recently-used.
func (c *Cache[K, V]) Touch(key K) {
	if n, ok := c.table.Get(key); ok {
		c.lru.MoveToFront(n)
	}
}

// Clear removes every entry from the cache, resetting its size ledger.
func (c *Cache[K, V]) Clear() {
	c.table.Clear()
	c.lru.Init()
	c.currentSize = 0
}

// SetMaxSize changes the cache's size ceiling. If the new ceiling is below
// the current size, least-recently-used entries are evicted until the
// cache fits within it. SetMaxSize never changes the lookup table's
// capacity; use ShrinkTo or ShrinkToFit for that.
func (c *Cache[K, V]) SetMaxSize(maxSize int) {
	if c.currentSize > maxSize {
		c.evictToTarget(maxSize)
	}
	c.maxSize = maxSize
}

// removeNode unlinks and deletes the entry for key from both indexes and
// debits the ledger, returning the removed entry.
func (c *Cache[K, V]) removeNode(key K) (entry[K, V], bool) {
	n, ok := c.table.Remove(key)
	if !ok {
		var zero entry[K, V]
		return zero, false
	}
	c.lru.Remove(n)
	c.currentSize -= n.Value.size
	return n.Value, true
}

// evictToTarget repeatedly drops the tail (least-recently-used) entry
// until the ledger is at or below target. Eviction is the designed
// behavior for making room, never an error.
func (c *Cache[K, V]) evictToTarget(target int) {
	for c.currentSize > target && c.lru.Back != nil {
		c.removeNode(c.lru.Back.Value.key)
	}
}
