package fibheap

import (
	"math"

	"github.com/varlogue/strukt/ilist"
)

// Heap is a mergeable min-priority queue: a forest of heap-ordered trees
// whose roots form a circular list. The designated first element of the
// root list is always the node holding the globally minimal value — every
// operation maintains that invariant, so Minimum is a single list lookup.
//
// All rebalancing is deferred: Insert and Union only touch the root list,
// and ExtractMin pays the accumulated debt in one consolidation pass. That
// laziness is precisely what yields the amortized bounds:
//
//	Insert    O(1)        Minimum    O(1)
//	Union     O(1)        ExtractMin O(log n) amortized
//	Decrease  O(1) amort. Delete     O(log n) amortized
//
// A Heap is not safe for concurrent use.
type Heap[T any] struct {
	roots ilist.List[Node[T]] // circular root list; front is the minimum
	cmp   Compare[T]
	n     int // nodes currently reachable from the root list
}

// New returns an empty heap ordered by cmp. It panics with ErrNilCompare's
// message when cmp is nil, since a heap without an ordering is unusable.
func New[T any](cmp Compare[T]) *Heap[T] {
	if cmp == nil {
		panic(ErrNilCompare.Error())
	}

	h := &Heap[T]{cmp: cmp}
	h.roots.Init()

	return h
}

// Empty reports whether the heap holds no nodes. O(1).
func (h *Heap[T]) Empty() bool { return h.roots.Empty() }

// Len returns the number of nodes currently in the heap. O(1).
func (h *Heap[T]) Len() int { return h.n }

// Insert places x into the heap. The node's structural fields are reset, so
// a node extracted from one heap may be reused here. No restructuring
// happens — the root list simply grows by one tree, and x is promoted to
// the front iff it strictly outranks the current minimum. O(1).
//
// x must not currently be a member of any heap.
func (h *Heap[T]) Insert(x *Node[T]) {
	x.parent = nil
	x.child.Init()
	x.degree = 0
	x.marked = false

	if h.roots.Empty() {
		h.roots.PushFront(&x.link)
	} else {
		h.roots.PushBack(&x.link)
		if h.cmp(x.value, h.roots.Front().value) < 0 {
			h.roots.MoveToFront(&x.link)
		}
	}
	h.n++
}

// Minimum returns the node holding the minimal value, or nil when the heap
// is empty. The node stays in the heap. O(1).
func (h *Heap[T]) Minimum() *Node[T] { return h.roots.Front() }

// ExtractMin removes and returns the minimum node, or nil when the heap is
// empty. The extracted node's children are promoted to roots (their parent
// pointers cleared), and a consolidation pass then merges equal-degree
// roots and leaves the new minimum at the front of the root list.
//
// Ownership of the returned node transfers to the caller. O(log n)
// amortized; the actual cost of one call is O(deg(min) + #roots).
func (h *Heap[T]) ExtractMin() *Node[T] {
	z := h.roots.Front()
	if z == nil {
		return nil
	}

	// Children of a removed root always become roots themselves; that keeps
	// the structure a forest with no re-parenting. Roots are never marked,
	// so promotion clears the bit.
	for !z.child.Empty() {
		c := z.child.Front()
		ilist.Remove(&c.link)
		h.roots.PushBack(&c.link)
		c.parent = nil
		c.marked = false
	}
	z.degree = 0

	ilist.Remove(&z.link)

	if !h.roots.Empty() {
		h.consolidate()
	}
	h.n--

	return z
}

// Union absorbs other into h: other's root list is spliced onto h's in
// O(1), the minimum is re-designated, and the node counts are summed.
// An empty (or nil) other is a no-op; when h itself is empty it simply
// takes over other's contents.
//
// other must order its values the same way h does. Afterward other is
// reset to a structurally empty heap — its former nodes belong to h, and
// mutating them through other is no longer possible.
func (h *Heap[T]) Union(other *Heap[T]) {
	if other == nil || other.Empty() {
		return
	}

	if h.Empty() {
		h.roots.SpliceBack(&other.roots)
		h.n = other.n
		other.n = 0

		return
	}

	min1 := h.roots.Front()
	min2 := other.roots.Front()

	h.roots.SpliceBack(&other.roots)

	if h.cmp(min2.value, min1.value) < 0 {
		h.roots.MoveToFront(&min2.link)
	}

	h.n += other.n
	other.n = 0
}

// Decrease restores heap order around x after the caller has lowered the
// value x holds (via SetValue or by mutating what the value references).
// If x now outranks its parent it is cut to the root list and the former
// parent undergoes a cascading cut; if x now outranks the minimum it takes
// the front of the root list. O(1) amortized.
//
// Preconditions, documented rather than checked: x must be a member of h,
// and its value must not have been raised. Violating either leaves the
// heap in an undefined state.
func (h *Heap[T]) Decrease(x *Node[T]) {
	if y := x.parent; y != nil && h.cmp(x.value, y.value) < 0 {
		h.cut(x, y)
		h.cascadingCut(y)
	}

	if h.cmp(x.value, h.roots.Front().value) < 0 {
		h.roots.MoveToFront(&x.link)
	}
}

// Delete removes x from the heap regardless of its value, as if its value
// had been decreased below every other: x is cut from its parent (with the
// usual cascading cut), forced to the front of the root list, and then
// extracted through ExtractMin so the restructuring logic is not
// duplicated. O(log n) amortized.
//
// x must be a member of h; afterward the caller owns x and must not reuse
// it in h except via a fresh Insert.
func (h *Heap[T]) Delete(x *Node[T]) {
	if y := x.parent; y != nil {
		h.cut(x, y)
		h.cascadingCut(y)
	}

	// Force x to be recognized as the minimum, then reuse the extraction
	// machinery (child promotion + consolidation).
	h.roots.MoveToFront(&x.link)
	h.ExtractMin()
}

// link makes y a child of x during consolidation: y leaves the root list,
// joins x's child list, and loses its mark. Degrees stay consistent with
// child-list lengths.
func (h *Heap[T]) link(y, x *Node[T]) {
	ilist.Remove(&y.link)
	x.child.PushFront(&y.link)
	y.parent = x
	x.degree++
	y.marked = false
}

// cut detaches x from its parent y and makes it a root: x leaves y's child
// list (decrementing y's degree), joins the root-list tail, and is
// unmarked — a node that just became a root has, by definition, lost no
// children since.
func (h *Heap[T]) cut(x, y *Node[T]) {
	ilist.Remove(&x.link)
	y.degree--

	h.roots.PushBack(&x.link)
	x.parent = nil
	x.marked = false
}

// cascadingCut walks from y toward the root. An unmarked non-root is
// marked and the walk stops: the first lost child is tolerated. A marked
// node is cut to the root list (clearing its mark) and the walk continues
// with its former parent. Iterative on purpose — the chain is bounded by
// the tree height, but a loop keeps stack depth flat.
func (h *Heap[T]) cascadingCut(y *Node[T]) {
	z := y.parent
	for z != nil {
		if !y.marked {
			y.marked = true

			return
		}

		h.cut(y, z)
		y = z
		z = y.parent
	}
}

// consolidate merges equal-degree roots until all root degrees are
// distinct, bounding the number of trees by D(n) = ⌊log_φ(n)⌋, and leaves
// the new minimum at the front of the rebuilt root list. Run after every
// extraction that leaves the heap non-empty.
func (h *Heap[T]) consolidate() {
	// Scratch array A[0..D(n)]; h.n still counts the node being extracted,
	// which only widens the bound.
	slots := make([]*Node[T], maxDegree(h.n)+1)

	// Snapshot the root list before linking starts mutating it. The walk
	// must be over a fixed sequence: link moves nodes mid-pass.
	order := make([]*Node[T], 0, h.n)
	for lnk := h.roots.FrontLink(); lnk != nil; lnk = h.roots.Next(lnk) {
		order = append(order, lnk.Owner())
	}

	for _, x := range order {
		d := x.degree
		for slots[d] != nil {
			y := slots[d] // another root with the same degree as x

			// The cmp-winner keeps its position and absorbs the other;
			// with a strict order this is deterministic.
			if h.cmp(y.value, x.value) < 0 {
				x, y = y, x
			}
			h.link(y, x)
			slots[d] = nil
			d++
		}
		slots[d] = x
	}

	// Rebuild the root list from the surviving trees, minimum at the front.
	h.roots.Init()
	for _, x := range slots {
		if x == nil {
			continue
		}
		x.parent = nil

		if h.roots.Empty() {
			h.roots.PushFront(&x.link)
			continue
		}

		h.roots.PushBack(&x.link)
		if h.cmp(x.value, h.roots.Front().value) < 0 {
			h.roots.MoveToFront(&x.link)
		}
	}
}

// logPhi is ln φ, φ = (1+√5)/2.
var logPhi = math.Log((1 + math.Sqrt(5)) / 2)

// maxDegree returns D(n) = ⌊log_φ(n)⌋, the upper bound on any node's
// degree in an n-node Fibonacci heap.
func maxDegree(n int) int {
	return int(math.Floor(math.Log(float64(n)) / logPhi))
}
