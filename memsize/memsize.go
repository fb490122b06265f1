// Package memsize provides the size-estimation contract consumed by the
// cache, along with estimators for common primitive and string-like types.
// The cache itself never inspects a key or value; it only calls the
// estimator functions supplied at construction and trusts the result.
package memsize

import "unsafe"

// Sizer is implemented by types that know their own estimated memory
// footprint in bytes. It is the idiomatic Go analogue of a size-estimation
// trait: a cache whose K or V implements Sizer can use Of as its
// estimator without writing one by hand.
type Sizer interface {
	MemSize() int
}

// Func is an estimator for a single type, as consumed by the cache's
// constructors: given a key or value, it returns the estimated number of
// bytes that value occupies. Implementations must be stable -- calling it
// twice on an unchanged value must return the same number.
type Func[T any] func(v T) int

// Of returns the estimated size of v. If v implements Sizer that method is
// used directly; otherwise Of falls back to unsafe.Sizeof, which is exact
// for fixed-width scalars but does not follow pointers, slice backing
// arrays, or map buckets. Types with indirection should implement Sizer
// (see String and Bytes below for the common case of strings).
func Of[T any](v T) int {
	if s, ok := any(v).(Sizer); ok {
		return s.MemSize()
	}
	return int(unsafe.Sizeof(v))
}

// String estimates the memory footprint of a string: its header plus the
// bytes of its backing array. Use as a Func[string] directly.
func String(s string) int {
	return int(unsafe.Sizeof(s)) + len(s)
}

// Bytes estimates the memory footprint of a byte slice: its header plus
// its length. Spare capacity beyond the length is not counted. Use as a
// Func[[]byte] directly.
func Bytes(b []byte) int {
	return int(unsafe.Sizeof(b)) + len(b)
}

// Scalar estimates the memory footprint of any fixed-width value (ints,
// floats, bools, and similar) as its in-memory size, with no extra
// indirection to account for. Use as Func[T] for such a T directly.
func Scalar[T any](v T) int {
	return int(unsafe.Sizeof(v))
}
