// SPDX-License-Identifier: MIT
// Package: graphaug/edgeindex
//
// csr.go - CSR adjacency and uniform random walks.
//
// Canonical model:
//   - CSR stores out-adjacency as two flat arrays: offsets (length N+1,
//     monotone non-decreasing, offsets[N] == E) and targets (the Dst column
//     of a source-sorted EdgeIndex). The out-edges of node u occupy the
//     contiguous slice targets[offsets[u]:offsets[u+1]], and the edge id of
//     the k-th such edge is offsets[u]+k, i.e. its column position in the
//     sorted index.
//   - A random walk picks a uniform out-edge at every step and terminates
//     early at a node with zero out-degree. Early termination is normal
//     control flow, never an error.
//
// Contract:
//   - NewCSR requires a source-sorted index (ErrUnsorted otherwise) and a
//     node count covering every referenced id (ErrNodeCountTooSmall).
//   - The CSR is immutable after construction; walks never mutate it, so a
//     single CSR may serve many walks, including concurrently, as long as
//     each goroutine owns its *rand.Rand.
//
// Complexity:
//   - NewCSR: O(N + E) time and space.
//   - Neighbors/OutDegree/EdgeID: O(1).
//   - RandomWalk: O(L) time, O(L) space for the returned trace.

package edgeindex

import (
	"fmt"
	"math/rand"
)

// CSR is an immutable compressed-sparse-row view of a source-sorted
// EdgeIndex.
type CSR struct {
	offsets []int64 // length numNodes+1; cumulative out-degree
	targets []int64 // Dst column of the sorted index, length == E
}

// NewCSR builds the CSR adjacency of ei over numNodes nodes.
// Stage 1 (Validate): nil index, sortedness, node-count coverage.
// Stage 2 (Prepare): out-degree histogram, prefix sums.
// Stage 3 (Finalize): copy targets and wrap.
// Complexity: O(N + E) time and space.
func NewCSR(ei *EdgeIndex, numNodes int) (*CSR, error) {
	if ei == nil {
		return nil, fmt.Errorf("NewCSR: %w", ErrNilEdgeIndex)
	}
	if !ei.Sorted() {
		return nil, fmt.Errorf("NewCSR: %w", ErrUnsorted)
	}
	if numNodes < 0 {
		return nil, fmt.Errorf("NewCSR: numNodes=%d: %w", numNodes, ErrNodeCountTooSmall)
	}

	// Out-degree histogram; Degree also validates id coverage for sources.
	deg, err := ei.Degree(numNodes)
	if err != nil {
		return nil, fmt.Errorf("NewCSR: %w", err)
	}
	// Targets must be in range as well (sinks never appear in Src).
	for i, v := range ei.Dst {
		if v >= int64(numNodes) {
			return nil, fmt.Errorf("NewCSR: column %d has target %d >= numNodes %d: %w",
				i, v, numNodes, ErrNodeCountTooSmall)
		}
	}

	// Prefix sums: offsets[u+1] = offsets[u] + deg[u].
	offsets := make([]int64, numNodes+1)
	for u := 0; u < numNodes; u++ {
		offsets[u+1] = offsets[u] + deg[u]
	}

	targets := make([]int64, len(ei.Dst))
	copy(targets, ei.Dst)

	return &CSR{offsets: offsets, targets: targets}, nil
}

// NumNodes returns N.
// Complexity: O(1).
func (c *CSR) NumNodes() int {
	return len(c.offsets) - 1
}

// NumEdges returns E (== offsets[N]).
// Complexity: O(1).
func (c *CSR) NumEdges() int {
	return len(c.targets)
}

// OutDegree returns the number of out-edges of u, or 0 for out-of-range u.
// Complexity: O(1).
func (c *CSR) OutDegree(u int64) int {
	if u < 0 || int(u) >= c.NumNodes() {
		return 0
	}

	return int(c.offsets[u+1] - c.offsets[u])
}

// Neighbors returns the contiguous slice of u's out-edge targets. The slice
// aliases internal storage and must not be modified. Out-of-range u yields
// nil.
// Complexity: O(1).
func (c *CSR) Neighbors(u int64) []int64 {
	if u < 0 || int(u) >= c.NumNodes() {
		return nil
	}

	return c.targets[c.offsets[u]:c.offsets[u+1]]
}

// EdgeID returns the column position (in the sorted index the CSR was built
// from) of the k-th out-edge of u. k must be in [0, OutDegree(u)).
// Complexity: O(1).
func (c *CSR) EdgeID(u int64, k int) int64 {
	return c.offsets[u] + int64(k)
}

// RandomWalk runs one uniform random walk of at most length steps starting
// at start. It returns the visited nodes (starting with start, so at most
// length+1 entries) and the ids of the traversed edges (at most length
// entries). The walk ends early, without error, when the current node has
// no out-edges.
//
// Determinism: the walk is a pure function of (c, start, length, rng state).
// Complexity: O(length) time and space.
func (c *CSR) RandomWalk(start int64, length int, rng *rand.Rand) (nodes, edges []int64, err error) {
	// Validate inputs; sampling begins only after all checks pass.
	if rng == nil {
		return nil, nil, fmt.Errorf("RandomWalk: %w", ErrNilRand)
	}
	if length < 0 {
		return nil, nil, fmt.Errorf("RandomWalk: length=%d: %w", length, ErrBadWalkLength)
	}
	if start < 0 || int(start) >= c.NumNodes() {
		return nil, nil, fmt.Errorf("RandomWalk: start=%d, numNodes=%d: %w",
			start, c.NumNodes(), ErrStartOutOfRange)
	}

	nodes = make([]int64, 1, length+1)
	nodes[0] = start
	edges = make([]int64, 0, length)

	cur := start
	for step := 0; step < length; step++ {
		nbrs := c.Neighbors(cur)
		if len(nbrs) == 0 {
			// Dead end (sink or isolated node): the walk simply ends short.
			break
		}
		k := rng.Intn(len(nbrs)) // uniform out-edge choice
		edges = append(edges, c.EdgeID(cur, k))
		cur = nbrs[k] // advance to the chosen neighbor
		nodes = append(nodes, cur)
	}

	return nodes, edges, nil
}
