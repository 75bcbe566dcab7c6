// Package strukt is a compact collection of the classic in-memory data
// structures — built around a mergeable Fibonacci heap.
//
// 🚀 What is strukt?
//
//	A pure-Go library bringing together, in dependency order:
//		• ilist:     intrusive circular doubly-linked lists (the substrate)
//		• fibheap:   Fibonacci heaps — insert, minimum, extract-min, union,
//		             decrease and delete with the textbook amortized bounds
//		• rbtree:    red-black trees for ordered keyed lookup
//		• hashtable: separately-chained hash tables over intrusive lists
//		• strmatch:  Rabin–Karp substring counting
//
// ✨ Why choose strukt?
//
//   - Caller-owned values – structures store opaque values; comparison,
//     hashing and matching are supplied by you
//   - Honest contracts – preconditions are documented rather than silently
//     checked, so the O(1)/O(log n) bounds actually hold
//   - Pure Go – no cgo, generics throughout
//   - Single-threaded by design – synchronize externally if you must share
//
// The Fibonacci heap is the centerpiece: a mergeable priority queue whose
// O(1) amortized decrease-key makes it the textbook companion for Dijkstra
// and Prim style algorithms that decrease keys far more often than they
// extract. The other packages are independent collaborators sharing only
// the ilist primitive.
//
// Quick ASCII sketch of a three-tree heap, minimum at the root-list front:
//
//	(1)───(4)───(6)
//	 │     │
//	(3)   (5)
//	 │
//	(7)
//
// Dive into each package's doc.go for contracts, complexity tables, and
// runnable examples.
//
//	go get github.com/varlogue/strukt
package strukt
