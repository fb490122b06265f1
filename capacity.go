package lru

import "github.com/zyedidia/lru-mem/internal/hashtable"

// Reserve grows the lookup table, if needed, so it has at least
// Len()+additional buckets. Inserting that many entries can still trigger a
// further resize, since the table grows past three quarters full. Because
// entries are only ever referenced through pointers stored in the table,
// growing it
// never disturbs the recency list, the ledger, or any reference a caller
// currently holds into the cache.
func (c *Cache[K, V]) Reserve(additional int) {
	c.table.Reserve(uint64(c.Len() + additional))
}

// TryReserve is like Reserve but surfaces a *ReserveError instead of
// panicking if the requested capacity cannot be represented. Go's runtime
// does not expose recoverable allocation failure, so in practice only
// CapacityOverflow can occur here.
func (c *Cache[K, V]) TryReserve(additional int) error {
	want := uint64(c.Len() + additional)
	if _, ok := hashtable.SafeCapacity(want); !ok {
		return &ReserveError{Kind: CapacityOverflow}
	}
	c.table.Reserve(want)
	return nil
}

// ShrinkTo shrinks the lookup table's capacity to the smallest value that
// is still at least max(Len(), minCapacity). It is a no-op if the table is
// already at or below that size. If Len() is more than three quarters of
// that size, the table grows again while its entries are reinserted.
func (c *Cache[K, V]) ShrinkTo(minCapacity int) {
	c.table.ShrinkTo(uint64(minCapacity))
}

// ShrinkToFit shrinks the lookup table's capacity as much as possible
// while still holding every current entry.
func (c *Cache[K, V]) ShrinkToFit() {
	c.ShrinkTo(0)
}
