// Package hashtable implements chained hashing over intrusive lists. See
// doc.go for the contract.
package hashtable

import (
	"errors"

	"github.com/varlogue/strukt/ilist"
)

// Sentinel errors; construction panics with the corresponding message.
var (
	// ErrBadBucketCount indicates a non-positive bucket count.
	ErrBadBucketCount = errors.New("hashtable: bucket count must be positive")

	// ErrNilHash indicates that New was called without a hash function.
	ErrNilHash = errors.New("hashtable: hash function is nil")

	// ErrNilMatch indicates that New was called without a match predicate.
	ErrNilMatch = errors.New("hashtable: match predicate is nil")
)

// HashFunc maps a key to a bucket; the table reduces the result modulo the
// bucket count, so any distribution of uints works.
type HashFunc[K any] func(key K) uint

// MatchFunc reports whether a stored entry corresponds to the given key.
// It is consulted during Search while walking a bucket's chain.
type MatchFunc[T, K any] func(entry *T, key K) bool

// Table is a fixed-size, separately-chained hash table. Entries embed an
// ilist.Link and are owned by the caller; the table only threads them onto
// bucket chains.
type Table[T, K any] struct {
	buckets []ilist.List[T]
	hash    HashFunc[K]
	match   MatchFunc[T, K]
	n       int
}

// New returns a table with the given number of buckets. Panics with the
// matching sentinel's message when buckets is non-positive or either
// function is nil.
func New[T, K any](buckets int, hash HashFunc[K], match MatchFunc[T, K]) *Table[T, K] {
	switch {
	case buckets <= 0:
		panic(ErrBadBucketCount.Error())
	case hash == nil:
		panic(ErrNilHash.Error())
	case match == nil:
		panic(ErrNilMatch.Error())
	}

	t := &Table[T, K]{
		buckets: make([]ilist.List[T], buckets),
		hash:    hash,
		match:   match,
	}
	for i := range t.buckets {
		t.buckets[i].Init()
	}

	return t
}

// Len returns the number of entries currently in the table. O(1).
func (t *Table[T, K]) Len() int { return t.n }

// Insert threads lnk onto the head of key's bucket chain. The entry's link
// must be attached (ilist.Link.Attach) and must not currently be in any
// list. Duplicate keys are permitted; Search returns the most recently
// inserted match first. O(1).
func (t *Table[T, K]) Insert(lnk *ilist.Link[T], key K) {
	t.bucket(key).PushFront(lnk)
	t.n++
}

// Search walks key's bucket chain and returns the first entry the match
// predicate accepts, or nil when the chain holds none. O(1 + chain length).
func (t *Table[T, K]) Search(key K) *T {
	b := t.bucket(key)
	for lnk := b.FrontLink(); lnk != nil; lnk = b.Next(lnk) {
		if t.match(lnk.Owner(), key) {
			return lnk.Owner()
		}
	}

	return nil
}

// Remove detaches an entry previously inserted into this table. Only the
// entry's own link is needed — no key, no rehash. O(1).
func (t *Table[T, K]) Remove(lnk *ilist.Link[T]) {
	ilist.Remove(lnk)
	t.n--
}

// bucket selects the chain for key.
func (t *Table[T, K]) bucket(key K) *ilist.List[T] {
	return &t.buckets[t.hash(key)%uint(len(t.buckets))]
}
