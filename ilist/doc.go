// Package ilist provides an intrusive, circular, doubly-linked list — the
// substrate every other structure in strukt builds on.
//
// Overview:
//
//   - The list does not allocate elements. Instead, client structs embed a
//     Link[T] and bind it to themselves once via Attach. This is the
//     Linux-kernel "list_head" pattern; the owner pointer carried by each
//     Link plays the role the container_of macro plays in C.
//   - A List[T] owns a sentinel Link, so the list is circular even when
//     empty and no operation ever branches on "first"/"last" special cases.
//   - Because links know their own neighbors, Remove detaches an element
//     without a handle to the list that holds it. This is what lets a heap
//     node migrate between a root list and a child list in O(1).
//
// Operations (all O(1) unless noted):
//
//   - New / Init:        create or reset an empty list.
//   - PushFront/PushBack: insert at head or tail.
//   - Remove:            detach a link from whatever list holds it.
//   - MoveToFront:       remove, then insert at the head of a target list.
//   - SpliceBack:        move a whole list's contents to the tail of
//     another, leaving the source empty.
//   - Empty:             emptiness test.
//   - Front/Back/Next/Prev: iteration; nil marks the sentinel boundary.
//   - Len:               O(n) count, intended for tests and debugging.
//
// Ordering:
//
//	The list guarantees nothing beyond FIFO relative to the insertion
//	point. Clients (the Fibonacci heap in particular) supply all ordering
//	semantics themselves.
//
// Thread safety:
//
//	None. Synchronize externally if a list is shared across goroutines.
package ilist
