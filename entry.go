package lru

import (
	"unsafe"

	"github.com/zyedidia/lru-mem/internal/list"
)

// entry is the payload stored in each recency-list node. size is the
// cached estimate for the whole entry (key + value + overhead); it is
// recomputed whenever the key/value pair is created or mutated, never
// re-derived on every access.
type entry[K comparable, V any] struct {
	key  K
	val  V
	size int
}

// entryOverhead is the fixed per-entry bookkeeping cost: the recency
// list's two neighbor pointers plus the cached size field. It is derived
// from this package's own representation rather than hard-coded, so it
// tracks reality if the node layout ever changes.
var entryOverhead = func() int {
	var n list.Node[entry[struct{}, struct{}]]
	return int(unsafe.Sizeof(n.Prev)) + int(unsafe.Sizeof(n.Next)) + int(unsafe.Sizeof(n.Value.size))
}()

// entrySize computes the total estimated footprint of an entry from its
// key and value sizes.
func entrySize(keySize, valSize int) int {
	return keySize + valSize + entryOverhead
}
