// White-box structural checks for the heap: every mutating operation must
// preserve heap order, degree counters, the root-min designation, and the
// reachable-node count. Randomized operation scripts are driven by gopter.
package fibheap

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/varlogue/strukt/ilist"
)

// checkHeap walks every node reachable from the root list and verifies the
// structural invariants. Returns nil when the heap is sound.
func checkHeap(h *Heap[int]) error {
	count := 0
	var firstErr error

	fail := func(format string, args ...any) {
		if firstErr == nil {
			firstErr = fmt.Errorf(format, args...)
		}
	}

	var walk func(l *ilist.List[Node[int]], parent *Node[int])
	walk = func(l *ilist.List[Node[int]], parent *Node[int]) {
		for lnk := l.FrontLink(); lnk != nil; lnk = l.Next(lnk) {
			n := lnk.Owner()
			count++

			if n.parent != parent {
				fail("node %d: stale parent pointer", n.value)
			}
			if parent == nil && n.marked {
				fail("root %d is marked", n.value)
			}
			if parent != nil && h.cmp(n.value, parent.value) < 0 {
				fail("heap order violated: child %d outranks parent %d", n.value, parent.value)
			}
			if got := n.child.Len(); n.degree != got {
				fail("node %d: degree %d but %d children", n.value, n.degree, got)
			}

			walk(&n.child, n)
		}
	}
	walk(&h.roots, nil)

	if count != h.n {
		fail("count invariant: %d reachable nodes, Len reports %d", count, h.n)
	}

	// Min-pointer correctness: the designated front must outrank (or tie)
	// every reachable node.
	if min := h.roots.Front(); min != nil {
		var scan func(l *ilist.List[Node[int]])
		scan = func(l *ilist.List[Node[int]]) {
			for lnk := l.FrontLink(); lnk != nil; lnk = l.Next(lnk) {
				n := lnk.Owner()
				if h.cmp(n.value, min.value) < 0 {
					fail("min-pointer: %d outranks designated minimum %d", n.value, min.value)
				}
				scan(&n.child)
			}
		}
		scan(&h.roots)
	}

	return firstErr
}

// liveValues returns the sorted multiset of values held by nodes.
func liveValues(nodes []*Node[int]) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.value
	}
	sort.Ints(out)

	return out
}

func TestInvariants_AfterEveryInsert(t *testing.T) {
	h := New(func(a, b int) int { return a - b })
	for i, v := range []int{9, 4, 7, 1, 8, 3, 2, 6, 5} {
		h.Insert(NewNode(v))
		if err := checkHeap(h); err != nil {
			t.Fatalf("after insert #%d: %v", i, err)
		}
	}
}

func TestInvariants_AfterEveryExtract(t *testing.T) {
	h := New(func(a, b int) int { return a - b })
	for _, v := range []int{9, 4, 7, 1, 8, 3, 2, 6, 5} {
		h.Insert(NewNode(v))
	}

	for !h.Empty() {
		h.ExtractMin()
		if err := checkHeap(h); err != nil {
			t.Fatalf("after extract at size %d: %v", h.n, err)
		}
	}
}

func TestConsolidation_DistinctRootDegrees(t *testing.T) {
	h := New(func(a, b int) int { return a - b })
	for v := 1; v <= 32; v++ {
		h.Insert(NewNode(v))
	}
	h.ExtractMin()

	// After consolidation every surviving root must have a unique degree.
	seen := map[int]bool{}
	for lnk := h.roots.FrontLink(); lnk != nil; lnk = h.roots.Next(lnk) {
		d := lnk.Owner().degree
		if seen[d] {
			t.Fatalf("two roots share degree %d", d)
		}
		seen[d] = true
	}
}

func TestMaxDegree(t *testing.T) {
	// Spot-check D(n) = ⌊log_φ(n)⌋ against hand-computed values.
	for _, tc := range []struct{ n, want int }{
		{1, 0}, {2, 1}, {3, 2}, {5, 3}, {10, 4}, {100, 9}, {1000, 14},
	} {
		if got := maxDegree(tc.n); got != tc.want {
			t.Errorf("maxDegree(%d) = %d; want %d", tc.n, got, tc.want)
		}
	}
}

func TestProperties_Heap(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng = rand.New(rand.NewSource(1))

	properties := gopter.NewProperties(parameters)

	properties.Property("draining any multiset yields it sorted", prop.ForAll(
		func(vs []int) bool {
			h := New(func(a, b int) int { return a - b })
			for _, v := range vs {
				h.Insert(NewNode(v))
			}

			var got []int
			for !h.Empty() {
				got = append(got, h.ExtractMin().value)
			}

			want := append([]int(nil), vs...)
			sort.Ints(want)

			return len(got) == len(want) && sort.IntsAreSorted(got) &&
				fmt.Sprint(got) == fmt.Sprint(want)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.Property("union preserves both multisets and all invariants", prop.ForAll(
		func(as, bs []int) bool {
			cmp := func(a, b int) int { return a - b }
			ha, hb := New(cmp), New(cmp)
			for _, v := range as {
				ha.Insert(NewNode(v))
			}
			for _, v := range bs {
				hb.Insert(NewNode(v))
			}

			ha.Union(hb)
			if !hb.Empty() || hb.n != 0 {
				return false
			}
			if err := checkHeap(ha); err != nil {
				return false
			}

			var got []int
			for !ha.Empty() {
				got = append(got, ha.ExtractMin().value)
			}
			want := append(append([]int(nil), as...), bs...)
			sort.Ints(want)

			return fmt.Sprint(got) == fmt.Sprint(want)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.Property("random op scripts preserve every invariant", prop.ForAll(
		runScript,
		gen.SliceOfN(24, gen.IntRange(0, 500)),
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// runScript replays a randomized insert/extract/decrease/delete script over
// a heap while mirroring the surviving nodes in a plain slice, checking the
// structural invariants after every step. Returns true when the heap agreed
// with the mirror throughout and drained in sorted order.
func runScript(vs []int, seed int64) bool {
	h := New(func(a, b int) int { return a - b })
	rng := rand.New(rand.NewSource(seed))

	var live []*Node[int]
	step := func() bool {
		if err := checkHeap(h); err != nil {
			return false
		}
		// Min must agree with a linear scan of the mirror.
		if len(live) == 0 {
			return h.Minimum() == nil
		}

		return h.Minimum().value == liveValues(live)[0]
	}

	for _, v := range vs {
		switch op := rng.Intn(4); {
		case op == 0 || len(live) == 0: // insert
			n := NewNode(v)
			h.Insert(n)
			live = append(live, n)

		case op == 1: // extract-min
			n := h.ExtractMin()
			if n == nil || n.value != liveValues(live)[0] {
				return false
			}
			for i, m := range live {
				if m == n {
					live = append(live[:i], live[i+1:]...)
					break
				}
			}

		case op == 2: // decrease a random node
			n := live[rng.Intn(len(live))]
			n.SetValue(n.value - rng.Intn(200))
			h.Decrease(n)

		default: // delete a random node
			i := rng.Intn(len(live))
			h.Delete(live[i])
			live = append(live[:i], live[i+1:]...)
		}

		if !step() {
			return false
		}
	}

	// Drain and compare against the mirror.
	want := liveValues(live)
	var got []int
	for !h.Empty() {
		got = append(got, h.ExtractMin().value)
	}

	return fmt.Sprint(got) == fmt.Sprint(want)
}
