// Package rbtree implements the red-black tree. See doc.go for the
// contract.
package rbtree

import "errors"

// ErrNilCompare indicates that New was called without a comparison
// function; construction panics with this sentinel's message.
var ErrNilCompare = errors.New("rbtree: comparison function is nil")

// Compare is the caller-supplied three-way ordering: negative when a sorts
// before b, positive when after, zero when the keys are equal.
type Compare[T any] func(a, b T) int

type color uint8

const (
	red color = iota
	black
)

// Node is one stored value plus its position in the tree. Nodes are
// created with NewNode, belong to at most one tree at a time, and return
// to caller ownership after Delete.
type Node[T any] struct {
	value               T
	parent, left, right *Node[T]
	color               color
}

// NewNode allocates a detached node holding value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value, color: red}
}

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// Tree is a red-black tree ordered by a caller-supplied comparison.
// The zero value is not usable; construct with New.
type Tree[T any] struct {
	root *Node[T]
	sentinel *Node[T] // shared black sentinel: every leaf and the root's parent
	cmp  Compare[T]
	n    int
}

// New returns an empty tree ordered by cmp. Panics with ErrNilCompare's
// message when cmp is nil.
func New[T any](cmp Compare[T]) *Tree[T] {
	if cmp == nil {
		panic(ErrNilCompare.Error())
	}

	sentinel := &Node[T]{color: black}
	return &Tree[T]{root: sentinel, sentinel: sentinel, cmp: cmp}
}

// Len returns the number of nodes in the tree. O(1).
func (t *Tree[T]) Len() int { return t.n }

// Empty reports whether the tree holds no nodes. O(1).
func (t *Tree[T]) Empty() bool { return t.root == t.sentinel }

// Search returns a node whose value compares equal to value, or nil when
// none exists. With duplicate keys, which equal node is returned is
// unspecified. O(log n).
func (t *Tree[T]) Search(value T) *Node[T] {
	x := t.root
	for x != t.sentinel {
		c := t.cmp(value, x.value)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}

	return nil
}

// Minimum returns the node with the smallest key, or nil when the tree is
// empty. O(log n).
func (t *Tree[T]) Minimum() *Node[T] {
	if t.Empty() {
		return nil
	}

	return t.minimum(t.root)
}

// Maximum returns the node with the largest key, or nil when the tree is
// empty. O(log n).
func (t *Tree[T]) Maximum() *Node[T] {
	if t.Empty() {
		return nil
	}

	return t.maximum(t.root)
}

// Successor returns the node with the next-larger key after x, or nil when
// x holds the maximum. x must be a member of t. O(log n).
func (t *Tree[T]) Successor(x *Node[T]) *Node[T] {
	if x.right != t.sentinel {
		return t.minimum(x.right)
	}

	y := x.parent
	for y != t.sentinel && x == y.right {
		x = y
		y = y.parent
	}
	if y == t.sentinel {
		return nil
	}

	return y
}

// Predecessor returns the node with the next-smaller key before x, or nil
// when x holds the minimum. x must be a member of t. O(log n).
func (t *Tree[T]) Predecessor(x *Node[T]) *Node[T] {
	if x.left != t.sentinel {
		return t.maximum(x.left)
	}

	y := x.parent
	for y != t.sentinel && x == y.left {
		x = y
		y = y.parent
	}
	if y == t.sentinel {
		return nil
	}

	return y
}

// InorderWalk visits every node in ascending key order.
func (t *Tree[T]) InorderWalk(visit func(*Node[T])) {
	var walk func(x *Node[T])
	walk = func(x *Node[T]) {
		if x == t.sentinel {
			return
		}
		walk(x.left)
		visit(x)
		walk(x.right)
	}
	walk(t.root)
}

// PreorderWalk visits the root of each subtree before its children.
func (t *Tree[T]) PreorderWalk(visit func(*Node[T])) {
	var walk func(x *Node[T])
	walk = func(x *Node[T]) {
		if x == t.sentinel {
			return
		}
		visit(x)
		walk(x.left)
		walk(x.right)
	}
	walk(t.root)
}

// PostorderWalk visits the children of each subtree before its root.
func (t *Tree[T]) PostorderWalk(visit func(*Node[T])) {
	var walk func(x *Node[T])
	walk = func(x *Node[T]) {
		if x == t.sentinel {
			return
		}
		walk(x.left)
		walk(x.right)
		visit(x)
	}
	walk(t.root)
}

// Insert places z into the tree and rebalances. Equal keys go right, so
// duplicates are kept in insertion order under an inorder walk. z must not
// currently be a member of any tree. O(log n).
func (t *Tree[T]) Insert(z *Node[T]) {
	y := t.sentinel
	x := t.root

	for x != t.sentinel {
		y = x
		if t.cmp(z.value, x.value) < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}

	z.parent = y
	switch {
	case y == t.sentinel:
		t.root = z
	case t.cmp(z.value, y.value) < 0:
		y.left = z
	default:
		y.right = z
	}

	z.left = t.sentinel
	z.right = t.sentinel
	z.color = red

	t.insertFixup(z)
	t.n++
}

// Delete removes z from the tree and rebalances. z must be a member of t;
// afterward the caller owns z again. O(log n).
func (t *Tree[T]) Delete(z *Node[T]) {
	y := z
	yColor := y.color
	var x *Node[T]

	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		// Two children: splice in z's successor, keeping z's color at
		// that position.
		y = t.minimum(z.right)
		yColor = y.color
		x = y.right

		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yColor == black {
		t.deleteFixup(x)
	}
	t.n--
}

func (t *Tree[T]) minimum(x *Node[T]) *Node[T] {
	for x.left != t.sentinel {
		x = x.left
	}

	return x
}

func (t *Tree[T]) maximum(x *Node[T]) *Node[T] {
	for x.right != t.sentinel {
		x = x.right
	}

	return x
}

// rotateLeft pivots the subtree rooted at x around its right child.
func (t *Tree[T]) rotateLeft(x *Node[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[T]) rotateRight(x *Node[T]) {
	y := x.left
	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}

	y.right = x
	x.parent = y
}

// insertFixup restores the red-black properties after an insertion: a red
// node may have gained a red parent. The uncle's color decides between
// recoloring (and walking up) and one or two rotations.
func (t *Tree[T]) insertFixup(z *Node[T]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left // uncle
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

// deleteFixup restores the red-black properties after a deletion removed a
// black node: x carries an "extra black" that is pushed up or resolved
// against its sibling w.
func (t *Tree[T]) deleteFixup(x *Node[T]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// transplant replaces the subtree rooted at u with the one rooted at v.
func (t *Tree[T]) transplant(u, v *Node[T]) {
	switch {
	case u.parent == t.sentinel:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}
