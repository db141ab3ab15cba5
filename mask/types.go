// SPDX-License-Identifier: MIT
// Package: graphaug/mask
//
// types.go — StartMode enumeration and the EdgeSplit result.

package mask

import (
	"fmt"

	"github.com/katalvlaran/graphaug/edgeindex"
)

// StartMode selects how Path chooses walk start points.
type StartMode int

const (
	// StartNode selects round(p·N) distinct nodes uniformly at random
	// without replacement, then replicates that set walksPerNode times.
	StartNode StartMode = iota

	// StartEdge samples each edge independently with probability p and uses
	// the source node of every sampled edge as a start point, replicated
	// walksPerNode times. Unlike StartNode this draws a Bernoulli count,
	// not an exact count.
	StartEdge
)

// String renders the mode for logs and adapter configs.
func (m StartMode) String() string {
	switch m {
	case StartNode:
		return "node"
	case StartEdge:
		return "edge"
	default:
		return fmt.Sprintf("StartMode(%d)", int(m))
	}
}

// valid reports whether m is a recognized mode.
func (m StartMode) valid() bool {
	return m == StartNode || m == StartEdge
}

// EdgeSplit is the complementary partition produced by Edges and Path.
//
// Remaining and Masked are column-disjoint and together hold exactly the
// columns of the transformed input (for Path, the source-sorted input).
// Keep is the boolean edge mask over those columns: Keep[i] == true means
// column i stayed in Remaining. Adapters that symmetrize Remaining leave
// Keep and Masked untouched, so Keep always refers to the pre-closure
// partition.
type EdgeSplit struct {
	Remaining *edgeindex.EdgeIndex
	Masked    *edgeindex.EdgeIndex
	Keep      []bool
}

// MaskedCount returns the number of columns routed to the Masked set.
// Complexity: O(E).
func (s *EdgeSplit) MaskedCount() int {
	n := 0
	for _, k := range s.Keep {
		if !k {
			n++
		}
	}

	return n
}
