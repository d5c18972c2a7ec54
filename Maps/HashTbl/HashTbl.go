// Package HashTbl implements a separate-chaining hash table with a prime bucket
// count and automatic load-factor growth, following the contract of the standard
// unordered associative containers: unique keys, amortized O(1) operations,
// caller-supplied hash and equality policies.
package HashTbl

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSize is the bucket count hint used by From when no size is given.
const DefaultSize uint = 10

// ErrNotFound is reported by At for keys absent from the table.
var ErrNotFound = errors.New("HashTbl: key not found")

// HashTbl is an array of buckets, each holding a singly-linked chain of entries
// whose keys hash to it. The bucket count is always prime; once
// Size()/BucketCount() exceeds the max load factor after an insert, every entry
// is redistributed into an array of the next prime at least twice as large.
//
// Not safe for concurrent use. Pointers handed out by At and Ref alias internal
// storage and are invalidated by any later mutating call.
type HashTbl[K, V any] struct {
	buckets []*node[K, V]
	count   uint
	maxLoad float32
	hashF   func(K) uint
	eqF     func(K, K) bool
}

// New empty table whose bucket count is the smallest prime >= size, with a max
// load factor of 1. Keys equal under eq must hash equally under hash.
func New[K, V any](size uint, hash func(K) uint, eq func(K, K) bool) *HashTbl[K, V] {
	return &HashTbl[K, V]{
		buckets: make([]*node[K, V], nextPrime(size)),
		maxLoad: 1,
		hashF:   hash,
		eqF:     eq,
	}
}

// From builds a default-sized table and inserts entries in sequence order, so a
// later duplicate key overwrites the earlier value.
func From[K, V any](entries []Entry[K, V], hash func(K) uint, eq func(K, K) bool) *HashTbl[K, V] {
	u := New[K, V](DefaultSize, hash, eq)
	for _, e := range entries {
		u.Insert(e.Key, e.Val)
	}
	return u
}

func (u *HashTbl[K, V]) index(k K) uint {
	return u.hashF(k) % uint(len(u.buckets))
}

// Insert stores val under key. It returns true when key was absent and a new
// entry was created, false when an existing entry's value was overwritten in
// place. Either way the load factor is checked afterwards, so a successful
// Insert may grow the table and invalidate previously returned pointers.
func (u *HashTbl[K, V]) Insert(key K, val V) bool {
	i := u.index(key)
	if cur := u.buckets[i].search(key, u.eqF); cur != nil {
		cur.v = val
		if float32(u.count)/float32(len(u.buckets)) > u.maxLoad {
			u.rehash()
		}
		return false
	}
	u.buckets[i] = &node[K, V]{k: key, v: val, nx: u.buckets[i]}
	u.count++
	if float32(u.count)/float32(len(u.buckets)) > u.maxLoad {
		u.rehash()
	}
	return true
}

// rehash moves every entry into a fresh bucket array sized to the smallest
// prime >= twice the current count. Entries go through the normal insert path
// so their placement is recomputed for the new size. The max load factor is
// untouched.
func (u *HashTbl[K, V]) rehash() {
	old := u.buckets
	u.buckets = make([]*node[K, V], nextPrime(2*uint(len(old))))
	u.count = 0
	for _, head := range old {
		for cur := head; cur != nil; cur = cur.nx {
			u.Insert(cur.k, cur.v)
		}
	}
}

// Retrieve copies out the value stored under key; the boolean reports whether
// key was found. The table is not mutated.
func (u *HashTbl[K, V]) Retrieve(key K) (val V, found bool) {
	if cur := u.buckets[u.index(key)].search(key, u.eqF); cur != nil {
		return cur.v, true
	}
	return
}

// Erase removes key's entry and reports whether one was removed. The bucket
// array never shrinks on erase.
func (u *HashTbl[K, V]) Erase(key K) bool {
	for cur := &u.buckets[u.index(key)]; *cur != nil; cur = &(*cur).nx {
		if u.eqF(key, (*cur).k) {
			*cur = (*cur).nx
			u.count--
			return true
		}
	}
	return false
}

// Clear drops every chain; the bucket array keeps its size.
func (u *HashTbl[K, V]) Clear() {
	for i := range u.buckets {
		u.buckets[i] = nil
	}
	u.count = 0
}

// Empty reports whether the table holds no entries.
func (u *HashTbl[K, V]) Empty() bool {
	return u.count == 0
}

// Size returns the number of entries.
func (u *HashTbl[K, V]) Size() uint {
	return u.count
}

// BucketCount returns the current number of buckets, always a prime.
func (u *HashTbl[K, V]) BucketCount() uint {
	return uint(len(u.buckets))
}

// At returns a pointer to the value stored under key, or ErrNotFound when key
// is absent; nothing is inserted either way. The pointer aliases table storage,
// so any later mutating call may invalidate it.
func (u *HashTbl[K, V]) At(key K) (*V, error) {
	if cur := u.buckets[u.index(key)].search(key, u.eqF); cur != nil {
		return &cur.v, nil
	}
	return nil, ErrNotFound
}

// Ref returns a pointer to the value stored under key, first inserting a zero
// value when key is absent; it never fails. The lookup is redone after such an
// insert because the insert may have rehashed the whole table.
func (u *HashTbl[K, V]) Ref(key K) *V {
	if cur := u.buckets[u.index(key)].search(key, u.eqF); cur != nil {
		return &cur.v
	}
	u.Insert(key, *new(V))
	return u.Ref(key)
}

// Count returns 1 when key is present and 0 otherwise. Use BucketLen for the
// length of key's collision chain.
func (u *HashTbl[K, V]) Count(key K) uint {
	if u.buckets[u.index(key)].search(key, u.eqF) != nil {
		return 1
	}
	return 0
}

// BucketLen returns the chain length of the bucket key hashes to, counting
// every entry colliding there rather than just key's. Useful for judging hash
// quality.
func (u *HashTbl[K, V]) BucketLen(key K) uint {
	return u.buckets[u.index(key)].length()
}

// MaxLoadFactor returns the growth threshold.
func (u *HashTbl[K, V]) MaxLoadFactor() float32 {
	return u.maxLoad
}

// SetMaxLoadFactor replaces the growth threshold. It never grows the table by
// itself even when the new threshold is already exceeded; the check on the next
// Insert does.
func (u *HashTbl[K, V]) SetMaxLoadFactor(mlf float32) {
	u.maxLoad = mlf
}

// Clone returns a deep copy with the same bucket count, policies and max load
// factor, rebuilt entry by entry through the insert path.
func (u *HashTbl[K, V]) Clone() *HashTbl[K, V] {
	c := New[K, V](uint(len(u.buckets)), u.hashF, u.eqF)
	c.maxLoad = u.maxLoad
	for next := u.Pairs(); ; {
		k, v, ok := next()
		if !ok {
			return c
		}
		c.Insert(k, v)
	}
}

// Assign replaces u's contents, policies and max load factor with copies of
// src's. Assigning a table to itself is a no-op.
func (u *HashTbl[K, V]) Assign(src *HashTbl[K, V]) {
	if u == src {
		return
	}
	u.buckets = make([]*node[K, V], len(src.buckets))
	u.count = 0
	u.maxLoad = src.maxLoad
	u.hashF, u.eqF = src.hashF, src.eqF
	for next := src.Pairs(); ; {
		k, v, ok := next()
		if !ok {
			return
		}
		u.Insert(k, v)
	}
}

// AssignEntries replaces u's contents with entries inserted in sequence order,
// later duplicates winning. The bucket array is resized to the smallest prime
// >= len(entries) and the max load factor resets to 1.
func (u *HashTbl[K, V]) AssignEntries(entries []Entry[K, V]) {
	u.buckets = make([]*node[K, V], nextPrime(uint(len(entries))))
	u.count = 0
	u.maxLoad = 1
	for _, e := range entries {
		u.Insert(e.Key, e.Val)
	}
}

// Pairs returns a single-use iterator yielding every entry in bucket order then
// chain order. Any mutation of the table invalidates the iterator.
func (u *HashTbl[K, V]) Pairs() func() (K, V, bool) {
	i, cur := 0, (*node[K, V])(nil)
	return func() (k K, v V, ok bool) {
		for cur == nil {
			if i == len(u.buckets) {
				return
			}
			cur = u.buckets[i]
			i++
		}
		k, v, ok = cur.k, cur.v, true
		cur = cur.nx
		return
	}
}

// String renders every stored value in bucket order then chain order, a
// debugging aid rather than a parseable format.
func (u *HashTbl[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for next := u.Pairs(); ; {
		k, v, ok := next()
		if !ok {
			break
		}
		fmt.Fprintf(&b, "%v, ", Entry[K, V]{k, v})
	}
	b.WriteByte('}')
	return b.String()
}
