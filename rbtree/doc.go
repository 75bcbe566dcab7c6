// Package rbtree provides a generic red-black tree: a self-balancing
// binary search tree whose basic operations are guaranteed O(log n) in the
// worst case.
//
// Overview:
//
//   - Nodes are allocated by the caller with NewNode and inserted into at
//     most one tree at a time, mirroring the caller-owned-node contract of
//     the fibheap package: the tree stores opaque values and orders them
//     solely through the caller-supplied three-way comparison.
//   - A single black sentinel stands in for every absent child and for the
//     root's parent, so rotations and fixups never branch on nil.
//   - Equal keys are allowed; an equal insert lands in the right subtree,
//     so iteration order among equals follows insertion order.
//
// Operations:
//
//	Insert, Delete                    O(log n), with rebalancing fixups
//	Search, Minimum, Maximum          O(log n)
//	Predecessor, Successor            O(log n)
//	InorderWalk (and pre/post order)  O(n)
//	Len, Empty                        O(1)
//
// Search, Minimum, Maximum, Predecessor and Successor return nil when no
// matching node exists; that is the package's only "failure" mode.
//
// Thread safety:
//
//	None. Synchronize externally.
package rbtree
