/*
Package Maps offers associative containers keyed by arbitrary types through pluggable hash and equality policies, together with default policies for common key types.

# Policies
Every table takes a hash function mapping a key to a uint and an equality function testing two keys for equivalence. Keys that are equal under the equality policy must hash to the same value. HashInt, HashString, HashBytes and Eq cover the usual cases; supply your own when the key type carries irrelevant fields or a cheaper hash exists.

# Usage
The containers are single-threaded. Callers needing concurrent access must wrap every operation in one exclusive lock guarding the whole table; simultaneous unsynchronized mutation corrupts chains and counters.
*/
package Maps

// Map is the contract shared by the table implementations in the subdirectories.
// Absence of a key is an expected outcome, so lookups and removals report it
// through booleans rather than errors.
type Map[K, V any] interface {
	Insert(K, V) bool
	Retrieve(K) (V, bool)
	Erase(K) bool
	Clear()
	Empty() bool
	Size() uint
}
