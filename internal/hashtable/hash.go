package hashtable

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/segmentio/fasthash/fnv1a"
	"golang.org/x/exp/constraints"
)

// HashFn computes the hash of a key. It is the injectable "hash-builder
// capability" the cache threads through to its lookup table; DefaultHasher
// builds one automatically for common key kinds.
type HashFn[K comparable] func(k K) uint64

// mix is a 64-bit finalizer (murmur3's fmix64 mixing step) applied to every
// fixed-width key kind below.
func mix(u uint64) uint64 {
	u ^= u >> 33
	u *= 0xff51afd7ed558ccd
	u ^= u >> 33
	u *= 0xc4ceb9fe1a85ec53
	u ^= u >> 33
	return u
}

func hashString(s string) uint64 {
	return fnv1a.HashString64(s)
}

// DefaultHasher builds a hash function for K by reflecting on its
// underlying kind. It supports the scalar kinds that are common as map
// keys (integers, floats, strings, bools) and panics for anything else,
// in which case the caller should supply its own hasher via WithHasher.
func DefaultHasher[K comparable]() HashFn[K] {
	var zero K
	kind := reflect.TypeOf(&zero).Elem().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr,
		reflect.Int64, reflect.Uint64:
		return func(k K) uint64 {
			return mix(*(*uint64)(unsafe.Pointer(&k)))
		}
	case reflect.Int32, reflect.Uint32:
		return func(k K) uint64 {
			return mix(uint64(*(*uint32)(unsafe.Pointer(&k))))
		}
	case reflect.Int16, reflect.Uint16:
		return func(k K) uint64 {
			return mix(uint64(*(*uint16)(unsafe.Pointer(&k))))
		}
	case reflect.Int8, reflect.Uint8, reflect.Bool:
		return func(k K) uint64 {
			return mix(uint64(*(*uint8)(unsafe.Pointer(&k))))
		}
	case reflect.Float32:
		return func(k K) uint64 {
			return mix(uint64(*(*uint32)(unsafe.Pointer(&k))))
		}
	case reflect.Float64:
		return func(k K) uint64 {
			return mix(*(*uint64)(unsafe.Pointer(&k)))
		}
	case reflect.String:
		return func(k K) uint64 {
			return hashString(*(*string)(unsafe.Pointer(&k)))
		}
	default:
		panic(fmt.Errorf("hashtable: no default hasher for key kind %v; supply one with WithHasher", kind))
	}
}

// nextPow2 rounds u up to the next power of two (u itself if already one).
func nextPow2(u uint64) uint64 {
	if u <= 1 {
		return 1
	}
	u--
	u |= u >> 1
	u |= u >> 2
	u |= u >> 4
	u |= u >> 8
	u |= u >> 16
	u |= u >> 32
	return u + 1
}

// clampCapacity returns the smallest power-of-two capacity that can hold
// at least 'want' entries, never below 1.
func clampCapacity[T constraints.Unsigned](want T) uint64 {
	return nextPow2(uint64(max(want, 1)))
}
