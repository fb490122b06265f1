package lru

import (
	"github.com/zyedidia/lru-mem/internal/hashtable"
	"github.com/zyedidia/lru-mem/internal/list"
	"github.com/zyedidia/lru-mem/memsize"
)

const defaultCapacity = 8

// Cache is an LRU cache mapping keys of type K to values of type V, bounded
// by the total estimated byte size of its entries rather than by a count.
// All primary operations run in average O(1).
//
// A Cache must be constructed with New or one of its With* variants; the
// zero value is not usable.
type Cache[K comparable, V any] struct {
	lru   list.List[entry[K, V]]
	table *hashtable.Table[K, *list.Node[entry[K, V]]]

	currentSize int
	maxSize     int

	keySize memsize.Func[K]
	valSize memsize.Func[V]
}

// New returns an empty cache with the given maximum estimated size, using
// a default hasher derived from K's kind (see WithHasher if K's kind is
// not one of the supported scalar/string kinds).
func New[K comparable, V any](maxSize int, keySize memsize.Func[K], valSize memsize.Func[V]) *Cache[K, V] {
	return WithCapacityAndHasher[K, V](maxSize, defaultCapacity, hashtable.DefaultHasher[K](), keySize, valSize)
}

// WithCapacity is like New but sizes the lookup table to at least
// 'capacity' buckets. The table grows once it is more than three quarters
// full, so inserting 'capacity' entries can still trigger a resize.
func WithCapacity[K comparable, V any](maxSize, capacity int, keySize memsize.Func[K], valSize memsize.Func[V]) *Cache[K, V] {
	return WithCapacityAndHasher[K, V](maxSize, capacity, hashtable.DefaultHasher[K](), keySize, valSize)
}

// WithHasher is like New but uses the given hasher to hash keys instead of
// the default one.
func WithHasher[K comparable, V any](maxSize int, hasher hashtable.HashFn[K], keySize memsize.Func[K], valSize memsize.Func[V]) *Cache[K, V] {
	return WithCapacityAndHasher[K, V](maxSize, defaultCapacity, hasher, keySize, valSize)
}

// WithCapacityAndHasher is like New but accepts both an initial capacity
// hint and a custom hasher.
func WithCapacityAndHasher[K comparable, V any](maxSize, capacity int, hasher hashtable.HashFn[K], keySize memsize.Func[K], valSize memsize.Func[V]) *Cache[K, V] {
	return &Cache[K, V]{
		table:   hashtable.New[K, *list.Node[entry[K, V]]](uint64(capacity), hasher),
		maxSize: maxSize,
		keySize: keySize,
		valSize: valSize,
	}
}

// MaxSize returns the maximum number of estimated bytes the sum of all
// entries may occupy.
func (c *Cache[K, V]) MaxSize() int {
	return c.maxSize
}

// CurrentSize returns the current estimated total size, in bytes, of every
// entry contained in the cache.
func (c *Cache[K, V]) CurrentSize() int {
	return c.currentSize
}

// Len returns the number of entries contained in the cache.
func (c *Cache[K, V]) Len() int {
	return c.table.Len()
}

// IsEmpty reports whether the cache contains no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// Capacity returns the number of buckets in the lookup table. The table
// grows once it would be more than three quarters full, so at most 3/4 of
// Capacity() entries fit before a resize.
func (c *Cache[K, V]) Capacity() int {
	return c.table.Capacity()
}
