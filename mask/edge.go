// SPDX-License-Identifier: MIT
// Package: graphaug/mask
//
// edge.go - independent edge masking.
//
// Canonical model:
//   - One Bernoulli(p) trial per column, independent across columns; firing
//     columns move to the Masked set. No adjacency structure is needed.
//
// Contract:
//   - p must lie in [0,1] (ErrInvalidProbability). p == 0 keeps every
//     column, p == 1 masks every column; both without consuming the RNG.
//   - The partition is stable: Remaining preserves the input column order,
//     and so does Masked.
//   - Trial order is column-ascending; a fixed seed reproduces the split.
//
// Complexity: O(E) time and space.

package mask

import (
	"fmt"

	"github.com/katalvlaran/graphaug/edgeindex"
)

const methodEdges = "Edges"

// Edges partitions the columns of ei into Remaining and Masked via
// independent Bernoulli(p) trials.
func Edges(ei *edgeindex.EdgeIndex, p float64, opts ...Option) (*EdgeSplit, error) {
	// 1) Validate before any sampling.
	if ei == nil {
		return nil, fmt.Errorf("%s: %w", methodEdges, ErrNilEdgeIndex)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodEdges, p, ErrInvalidProbability)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdges, err)
	}

	// 2) Per-column trials; degenerate probabilities draw nothing.
	numEdges := ei.NumEdges()
	keep := make([]bool, numEdges)
	switch {
	case p == 0:
		for i := range keep {
			keep[i] = true
		}
	case p == 1:
		// keep stays all-false
	default:
		for i := range keep {
			keep[i] = o.rng.Float64() > p
		}
	}

	// 3) Stable partition of the original column order.
	remaining, err := ei.Select(keep, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdges, err)
	}
	masked, err := ei.Select(keep, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEdges, err)
	}

	return &EdgeSplit{Remaining: remaining, Masked: masked, Keep: keep}, nil
}
