// Package fibheap defines the node type and comparison contract for the
// Fibonacci heap. See doc.go for the package-level overview and fibheap.go
// for the heap engine itself.
package fibheap

import (
	"errors"

	"github.com/varlogue/strukt/ilist"
)

// ErrNilCompare indicates that New was called without a comparison function.
// The heap has no ordering of its own, so construction panics with this
// sentinel's message rather than producing an unusable heap.
var ErrNilCompare = errors.New("fibheap: comparison function is nil")

// Compare is the caller-supplied strict ordering over stored values.
// It must return a negative number when a outranks b (a is closer to the
// heap's notion of "minimum"), and a non-negative number otherwise.
//
// The function must implement a strict weak ordering for results to be
// well-defined; the heap performs no validation. Comparison is the heap's
// sole polymorphism mechanism — values are otherwise fully opaque.
type Compare[T any] func(a, b T) int

// Node is one stored value plus the structural bookkeeping that places it
// in a heap: an optional parent (nil ⇔ the node sits in a root list), a
// circular list of children, the sibling link threading it into whichever
// list currently holds it, the child count, and the mark bit driving
// cascading cuts.
//
// A Node is created independently of any heap via NewNode, belongs to at
// most one heap at a time, and returns to caller ownership once extracted
// or deleted. Nodes are never copied or silently dropped by the heap.
type Node[T any] struct {
	value  T
	parent *Node[T]
	child  ilist.List[Node[T]]
	link   ilist.Link[Node[T]]
	degree int
	marked bool
}

// NewNode allocates a detached node holding value. The node carries no heap
// state until it is passed to (*Heap).Insert.
func NewNode[T any](value T) *Node[T] {
	n := &Node[T]{value: value}
	n.link.Attach(n)
	n.child.Init()

	return n
}

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the stored value without touching heap structure.
// To lower a key of a node that is inside a heap, call SetValue first and
// then (*Heap).Decrease to restore heap order; raising a key of an
// in-heap node this way violates the heap invariant.
func (n *Node[T]) SetValue(value T) { n.value = value }

// Parent returns the node's parent, or nil when the node is a root (or
// detached). Useful for asserting that a decrease actually cut the node.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Degree returns the number of children. It always equals the length of
// the node's child list.
func (n *Node[T]) Degree() int { return n.degree }

// Marked reports whether the node has lost a child since it last became a
// child of another node (roots are never marked).
func (n *Node[T]) Marked() bool { return n.marked }
