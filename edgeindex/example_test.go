package edgeindex_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphaug/edgeindex"
)

// ExampleEdgeIndex_SortBySource shows canonical ordering: columns sorted by
// source node, ties by target, input untouched.
func ExampleEdgeIndex_SortBySource() {
	ei, _ := edgeindex.New([]int64{2, 0, 1, 0}, []int64{0, 2, 2, 1})
	fmt.Println(ei.SortBySource())
	fmt.Println(ei)
	// Output:
	// [(0→1) (0→2) (1→2) (2→0)]
	// [(2→0) (0→2) (1→2) (0→1)]
}

// ExampleEdgeIndex_ToUndirected closes a directed chain under reversal.
func ExampleEdgeIndex_ToUndirected() {
	ei, _ := edgeindex.New([]int64{0, 1}, []int64{1, 2})
	fmt.Println(ei.ToUndirected())
	// Output:
	// [(0→1) (1→0) (1→2) (2→1)]
}

// ExampleCSR_RandomWalk walks a directed 3-cycle. Each node has a single
// out-edge, so the trajectory is independent of the RNG draws.
func ExampleCSR_RandomWalk() {
	ei, _ := edgeindex.New([]int64{0, 1, 2}, []int64{1, 2, 0})
	csr, _ := edgeindex.NewCSR(ei, 3)

	nodes, edges, _ := csr.RandomWalk(0, 4, rand.New(rand.NewSource(1)))
	fmt.Println(nodes)
	fmt.Println(edges)
	// Output:
	// [0 1 2 0 1]
	// [0 1 2 0]
}
