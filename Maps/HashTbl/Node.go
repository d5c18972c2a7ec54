package HashTbl

import "fmt"

// Entry is one (key, value) pair as supplied to From and AssignEntries.
type Entry[K, V any] struct {
	Key K
	Val V
}

// String renders only the value, the same way the table renders itself.
func (e Entry[K, V]) String() string {
	return fmt.Sprint(e.Val)
}

// node is one link of a bucket's collision chain. The key never changes after
// construction; the value may be overwritten in place.
type node[K, V any] struct {
	k  K
	v  V
	nx *node[K, V]
}

// search walks the chain from u and returns the node whose key equals k under
// eq, nil when absent. Calling it on a nil head is fine.
func (u *node[K, V]) search(k K, eq func(K, K) bool) *node[K, V] {
	for cur := u; cur != nil; cur = cur.nx {
		if eq(k, cur.k) {
			return cur
		}
	}
	return nil
}

// length of the chain starting at u.
func (u *node[K, V]) length() (n uint) {
	for cur := u; cur != nil; cur = cur.nx {
		n++
	}
	return
}
