// Package rbtree_test provides runnable examples for the red-black tree.
package rbtree_test

import (
	"fmt"

	"github.com/varlogue/strukt/rbtree"
)

// ExampleTree demonstrates keyed insertion and the sorted inorder walk.
func ExampleTree() {
	// 1) Order words by an integer key.
	type word struct {
		key int
		str string
	}
	tr := rbtree.New(func(a, b word) int { return a.key - b.key })

	// 2) Insert out of order.
	for _, w := range []word{{3, "makes"}, {1, "balance"}, {4, "fast"}, {2, "lookup"}} {
		tr.Insert(rbtree.NewNode(w))
	}

	// 3) The inorder walk recovers key order.
	tr.InorderWalk(func(n *rbtree.Node[word]) {
		fmt.Print(n.Value().str, " ")
	})
	fmt.Println()
	// Output: balance lookup makes fast
}

// ExampleTree_Delete shows inserting a stray node and removing it again.
func ExampleTree_Delete() {
	tr := rbtree.New(func(a, b int) int { return a - b })
	for _, v := range []int{5, 1, 9} {
		tr.Insert(rbtree.NewNode(v))
	}

	stray := rbtree.NewNode(7)
	tr.Insert(stray)
	tr.Delete(stray)

	for n := tr.Minimum(); n != nil; n = tr.Successor(n) {
		fmt.Print(n.Value(), " ")
	}
	fmt.Println()
	// Output: 1 5 9
}
