// Package lru implements an LRU (least-recently-used) cache whose eviction
// policy is driven by the estimated byte size of its entries rather than by
// a fixed entry count. Insertions that would push the total estimated size
// past a configured ceiling evict least-recently-used entries until the new
// entry fits.
//
// The cache is built from two cooperating indexes over the same set of
// entries: an internal/list doubly-linked list that tracks recency order,
// and an internal/hashtable lookup table keyed by K. Both indexes store
// pointers to the same entry, so a recency update (move-to-front) and a
// key lookup both run in O(1) without duplicating any value.
//
// The cache is not safe for concurrent use; wrap it in a sync.Mutex if
// multiple goroutines need access.
package lru
