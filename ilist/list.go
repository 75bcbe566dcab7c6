// Package ilist implements the intrusive circular doubly-linked list used
// throughout strukt. See doc.go for the full contract.
package ilist

// Link is the handle embedded inside a client struct to make it linkable.
// A Link must be bound to its embedding struct with Attach before it is
// inserted anywhere. A detached Link points to itself, so Remove on an
// already-detached Link is harmless.
type Link[T any] struct {
	prev, next *Link[T] // circular neighbors; self-referential when detached
	owner      *T       // the struct this Link is embedded in; nil for sentinels
}

// Attach binds l to the struct that embeds it and puts l into the detached
// (self-linked) state. Call it exactly once, right after allocating the
// owner; re-attaching a Link that is currently in a list corrupts that list.
func (l *Link[T]) Attach(owner *T) {
	l.owner = owner
	l.prev = l
	l.next = l
}

// Owner returns the struct this Link was attached to, or nil for a list
// sentinel.
func (l *Link[T]) Owner() *T { return l.owner }

// List is a circular doubly-linked list of Links. The sentinel head makes
// the empty list circular too, so insertions and removals are branch-free.
// The zero value is NOT ready to use: call Init (or build with New) first.
type List[T any] struct {
	head Link[T] // sentinel; head.owner stays nil
}

// New allocates and initializes an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.Init()

	return l
}

// Init (re)initializes l to the empty state. Any elements previously linked
// into l are abandoned where they stand; they still reference each other but
// no longer reach the sentinel.
func (l *List[T]) Init() {
	l.head.prev = &l.head
	l.head.next = &l.head
}

// Empty reports whether l holds no elements. O(1).
func (l *List[T]) Empty() bool { return l.head.next == &l.head }

// insert places lnk between prev and next. The three-pointer dance mirrors
// the kernel's __list_add.
func insert[T any](lnk, prev, next *Link[T]) {
	next.prev = lnk
	lnk.next = next
	lnk.prev = prev
	prev.next = lnk
}

// PushFront inserts lnk at the head of l. O(1).
func (l *List[T]) PushFront(lnk *Link[T]) {
	insert(lnk, &l.head, l.head.next)
}

// PushBack inserts lnk at the tail of l. O(1).
func (l *List[T]) PushBack(lnk *Link[T]) {
	insert(lnk, l.head.prev, &l.head)
}

// Remove detaches lnk from whatever list currently holds it, using only
// lnk's own neighbor pointers — no list handle is needed. The link is left
// self-linked (detached), so a second Remove is a no-op. O(1).
func Remove[T any](lnk *Link[T]) {
	lnk.prev.next = lnk.next
	lnk.next.prev = lnk.prev
	lnk.prev = lnk
	lnk.next = lnk
}

// MoveToFront removes lnk from its current list and inserts it at the head
// of l. The source and destination lists may be the same. O(1).
func (l *List[T]) MoveToFront(lnk *Link[T]) {
	Remove(lnk)
	l.PushFront(lnk)
}

// SpliceBack moves the entire contents of src to the tail of l and leaves
// src empty. A no-op when src is empty; src must not be l itself. O(1).
func (l *List[T]) SpliceBack(src *List[T]) {
	if src.Empty() {
		return
	}

	first := src.head.next
	last := src.head.prev

	// Stitch [first..last] between l's current tail and l's sentinel.
	first.prev = l.head.prev
	l.head.prev.next = first
	last.next = &l.head
	l.head.prev = last

	src.Init()
}

// Front returns the first element of l, or nil when l is empty.
func (l *List[T]) Front() *T {
	if l.Empty() {
		return nil
	}

	return l.head.next.owner
}

// Back returns the last element of l, or nil when l is empty.
func (l *List[T]) Back() *T {
	if l.Empty() {
		return nil
	}

	return l.head.prev.owner
}

// FrontLink returns the first Link of l, or nil when l is empty.
func (l *List[T]) FrontLink() *Link[T] {
	if l.Empty() {
		return nil
	}

	return l.head.next
}

// Next returns the Link following lnk within l, or nil once the walk is back
// at the sentinel. lnk must currently be linked into l.
func (l *List[T]) Next(lnk *Link[T]) *Link[T] {
	if lnk.next == &l.head {
		return nil
	}

	return lnk.next
}

// Prev returns the Link preceding lnk within l, or nil once the walk is back
// at the sentinel. lnk must currently be linked into l.
func (l *List[T]) Prev(lnk *Link[T]) *Link[T] {
	if lnk.prev == &l.head {
		return nil
	}

	return lnk.prev
}

// Len walks the list and counts its elements. O(n); meant for tests,
// assertions and debugging, not hot paths.
func (l *List[T]) Len() int {
	n := 0
	for lnk := l.FrontLink(); lnk != nil; lnk = l.Next(lnk) {
		n++
	}

	return n
}
