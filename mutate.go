package lru

// Mutate applies op to the value stored for key, if present, and returns
// its result. op is called exactly once on a hit and never on a miss; on a
// miss ok is false and result is the zero value of R, so a legitimate
// zero-valued result from op is never confused with an absent key -- the
// same value-plus-ok idiom as Peek, Get, and the rest of this package's
// readers.
//
// Go does not allow a method to introduce type parameters beyond its
// receiver's, so Mutate is a package-level function rather than a method
// on Cache; call it as lru.Mutate(c, key, op).
//
// The entry's size is re-measured before and after op runs. A mutation
// that does not grow the value simply debits the difference from the
// ledger and marks the entry most-recently-used. A mutation that grows the
// value beyond what fits in MaxSize removes the entry and returns an
// *EntryTooLarge error carrying the projected size; otherwise the ledger
// is credited and entries are evicted from the tail (never the mutated
// entry itself, since it is now the head) until the cache fits again.
func Mutate[K comparable, V any, R any](c *Cache[K, V], key K, op func(v *V) R) (result R, ok bool, err error) {
	n, found := c.table.Get(key)
	if !found {
		return result, false, nil
	}

	oldValSize := c.valSize(n.Value.val)
	result = op(&n.Value.val)
	newValSize := c.valSize(n.Value.val)

	if newValSize > oldValSize {
		diff := newValSize - oldValSize
		newEntrySize := n.Value.size + diff

		if newEntrySize > c.maxSize {
			key, value, _ := c.RemoveEntry(key)
			return result, true, &EntryTooLarge[K, V]{
				Key:       key,
				Value:     value,
				EntrySize: newEntrySize,
				MaxSize:   c.maxSize,
			}
		}

		n.Value.size = newEntrySize
		c.currentSize += diff
		c.lru.MoveToFront(n)
		c.evictToTarget(c.maxSize)
	} else {
		diff := oldValSize - newValSize
		n.Value.size -= diff
		c.currentSize -= diff
		c.lru.MoveToFront(n)
	}

	return result, true, nil
}
