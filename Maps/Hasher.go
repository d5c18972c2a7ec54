package Maps

import (
	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
	"unsafe"
)

// HashInt hashes the memory contents of v. Works for integers of any width.
func HashInt[I constraints.Integer](v I) uint {
	return uint(xxhash.Sum64(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))))
}

// HashString directly hashes a string, it's faster than converting it to bytes for HashBytes.
func HashString(s string) uint {
	return uint(xxhash.Sum64String(s))
}

// HashBytes hashes the given byte slice.
func HashBytes(b []byte) uint {
	return uint(xxhash.Sum64(b))
}

// Eq reports a == b, the default equality policy for comparable key types.
func Eq[K comparable](a, b K) bool {
	return a == b
}
