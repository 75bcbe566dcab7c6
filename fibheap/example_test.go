// Package fibheap_test provides runnable examples for the Fibonacci heap.
// Each example is runnable via "go test -run Example", showing both code
// and expected output.
package fibheap_test

import (
	"fmt"

	"github.com/varlogue/strukt/fibheap"
)

// ExampleHeap demonstrates the lazy insert / eager extract rhythm: five
// inserts cost O(1) each, and the extractions drain the values in order.
func ExampleHeap() {
	// 1) Construct a min-heap over ints; negative means "outranks".
	h := fibheap.New(func(a, b int) int { return a - b })

	// 2) Insert a scrambled batch — no rebalancing happens here.
	for _, v := range []int{5, 3, 8, 1, 4} {
		h.Insert(fibheap.NewNode(v))
	}

	// 3) Extraction consolidates and always yields the current minimum.
	for !h.Empty() {
		fmt.Print(h.ExtractMin().Value(), " ")
	}
	fmt.Println()
	// Output: 1 3 4 5 8
}

// ExampleHeap_Union merges two heaps in O(1) and drains the result.
func ExampleHeap_Union() {
	cmp := func(a, b int) int { return a - b }

	a := fibheap.New(cmp)
	for _, v := range []int{10, 2, 7} {
		a.Insert(fibheap.NewNode(v))
	}

	b := fibheap.New(cmp)
	for _, v := range []int{3, 9, 1} {
		b.Insert(fibheap.NewNode(v))
	}

	// a absorbs b; b is left structurally empty.
	a.Union(b)
	fmt.Println("b empty:", b.Empty())

	for !a.Empty() {
		fmt.Print(a.ExtractMin().Value(), " ")
	}
	fmt.Println()
	// Output:
	// b empty: true
	// 1 2 3 7 9 10
}

// ExampleHeap_Decrease shows the decrease-key protocol: lower the value
// first, then let the heap restore order.
func ExampleHeap_Decrease() {
	h := fibheap.New(func(a, b int) int { return a - b })

	n := fibheap.NewNode(40)
	h.Insert(n)
	h.Insert(fibheap.NewNode(10))
	h.Insert(fibheap.NewNode(20))

	// 1) The caller lowers the stored value...
	n.SetValue(5)
	// 2) ...and Decrease restores the heap-order invariant.
	h.Decrease(n)

	fmt.Println("min:", h.Minimum().Value())
	// Output: min: 5
}
