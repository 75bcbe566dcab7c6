// Package fibheap provides a mergeable min-priority queue — a Fibonacci
// heap — with the amortized bounds that make it the textbook choice for
// algorithms performing many decrease-key operations per extraction
// (Dijkstra shortest paths, Prim spanning trees, and friends).
//
// Overview:
//
//   - A heap is a forest of heap-ordered trees whose roots sit in a
//     circular intrusive list (package ilist); each node carries its own
//     circular child list, a degree counter, and a mark bit.
//   - The first element of the root list is always the global minimum, so
//     Minimum is a single O(1) lookup.
//   - Insert and Union do no rebalancing at all: they only grow the root
//     list. ExtractMin pays the accumulated debt in one consolidation pass
//     that merges equal-degree roots until all root degrees are distinct.
//   - Decrease cuts a violating node to the root list; repeated child loss
//     is throttled by the mark bit — the first loss marks a node, the
//     second cuts it too (the "cascading cut"). That one-free-loss rule is
//     the crux of the O(1) amortized decrease-key bound.
//
// Complexity (amortized over any operation sequence, via the standard
// potential function Φ = #trees + 2·#marked):
//
//	New, Empty, Len, Insert, Minimum, Union, Decrease   O(1)
//	ExtractMin, Delete                                  O(log n)
//
// Per-call costs can be larger (one ExtractMin may touch every root); the
// bounds hold across sequences, not in isolation.
//
// Ownership and preconditions:
//
//   - Nodes are allocated by the caller with NewNode and handed to exactly
//     one heap at a time via Insert. After ExtractMin or Delete returns a
//     node, it belongs to the caller again.
//   - Minimum and ExtractMin return nil on an empty heap — the only
//     checked condition in the package.
//   - Decrease and Delete require the node to be a member of the given
//     heap, and Decrease requires the value to actually have been lowered.
//     Neither is validated: checking membership would cost more than the
//     operations themselves and would void the stated bounds.
//   - After h.Union(other), other is structurally empty; its former nodes
//     belong to h.
//
// Comparison contract:
//
//	New takes a Compare[T]: negative result means the first argument
//	outranks the second (is closer to the minimum). It must be a strict
//	weak ordering. For a max-heap, flip the sign in your comparator.
//
// Thread safety:
//
//	None. Every operation is a bounded, synchronous sequence of pointer
//	updates; wrap the heap in your own lock to share it.
//
// Example:
//
//	h := fibheap.New[int](func(a, b int) int { return a - b })
//	for _, v := range []int{5, 3, 8, 1, 4} {
//	    h.Insert(fibheap.NewNode(v))
//	}
//	for !h.Empty() {
//	    fmt.Print(h.ExtractMin().Value(), " ") // 1 3 4 5 8
//	}
package fibheap
