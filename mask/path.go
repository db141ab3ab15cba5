// SPDX-License-Identifier: MIT
// Package: graphaug/mask
//
// path.go - path-based (correlated) edge masking.
//
// Canonical model:
//   - Select start nodes, launch uniform random walks over the CSR
//     adjacency of the source-sorted index, and route every traversed
//     column to the Masked set. Edges removed together lie on common walks,
//     so the removed set is correlated, unlike Edges' independent trials.
//
// Pipeline (in order, validation before any sampling):
//   1. Validate p ∈ [0,1] and the start mode.
//   2. Evaluation bypass: if not training or p == 0, return the input
//      unchanged under an all-true mask.
//   3. Canonicalize: sort columns by source unless WithSorted(true).
//   4. Select starts. StartNode: round(p·N) distinct nodes drawn without
//      replacement. StartEdge: one Bernoulli(p) trial per column, taking
//      each firing column's source. Either start list is then replicated
//      walksPerNode times, so the same start set is walked W independent
//      times rather than W sets being drawn.
//   5. Build the CSR adjacency (offsets + sorted targets).
//   6. Walk each start for up to walkLength steps, recording traversed
//      column ids; a node without out-edges ends its walk early (normal
//      termination, not an error). Every walk's trace ends with an
//      end-of-walk marker.
//   7. Drop the markers and clear the mask at every recorded column.
//      Re-traversed columns are absorbed by the boolean mask.
//   8. Partition the sorted index by the mask.
//
// The StartNode/StartEdge asymmetry (exact count vs Bernoulli count) is
// intentional and preserved.
//
// Complexity: O(E log E) sort + O(N + E) CSR + O(S·W·L) walking for S
// selected starts.

package mask

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphaug/edgeindex"
)

const methodPath = "Path"

// endOfWalk terminates each walk's trace; it is never a valid column id.
const endOfWalk int64 = -1

// Path partitions the columns of ei into Remaining and Masked by masking
// every edge traversed by random walks anchored at sampled start nodes.
// The returned split refers to the source-sorted column order (Keep[i]
// describes sorted column i), except under the evaluation bypass, which
// returns the input as-is.
func Path(ei *edgeindex.EdgeIndex, p float64, opts ...Option) (*EdgeSplit, error) {
	// 1) Validate before any sampling.
	if ei == nil {
		return nil, fmt.Errorf("%s: %w", methodPath, ErrNilEdgeIndex)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodPath, p, ErrInvalidProbability)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	if !o.start.valid() {
		return nil, fmt.Errorf("%s: start=%v: %w", methodPath, o.start, ErrUnknownStartMode)
	}

	numEdges := ei.NumEdges()
	keep := make([]bool, numEdges)
	for i := range keep {
		keep[i] = true
	}

	// 2) Evaluation bypass: identity split over the untouched input.
	if !o.training || p == 0 {
		return &EdgeSplit{
			Remaining: ei.Clone(),
			Masked:    &edgeindex.EdgeIndex{Src: []int64{}, Dst: []int64{}},
			Keep:      keep,
		}, nil
	}

	numNodes := ei.NumNodes(o.numNodes)

	// 3) Canonicalize: CSR slicing requires source-sorted columns.
	sorted := ei
	if !o.sorted {
		sorted = ei.SortBySource()
	}

	// 4) Start selection (see the asymmetry note in the file header).
	var starts []int64
	if o.start == StartEdge {
		for _, u := range sorted.Src {
			if o.rng.Float64() <= p {
				starts = append(starts, u)
			}
		}
	} else {
		count := int(math.Round(p * float64(numNodes)))
		perm := o.rng.Perm(numNodes)
		starts = make([]int64, 0, count)
		for _, u := range perm[:count] {
			starts = append(starts, int64(u))
		}
	}
	// Replicate the start list W times: the same starts, walked W
	// independent times.
	if o.walksPerNode > 1 {
		base := starts
		starts = make([]int64, 0, len(base)*o.walksPerNode)
		for r := 0; r < o.walksPerNode; r++ {
			starts = append(starts, base...)
		}
	}

	// 5) Adjacency over the sorted columns.
	csr, err := edgeindex.NewCSR(sorted, numNodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	// 6) Walk every start, collecting traversed column ids. Each trace is
	// closed with an end-of-walk marker regardless of early termination.
	trail := make([]int64, 0, len(starts)*(o.walkLength+1))
	for _, start := range starts {
		_, edges, werr := csr.RandomWalk(start, o.walkLength, o.rng)
		if werr != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, werr)
		}
		trail = append(trail, edges...)
		trail = append(trail, endOfWalk)
	}

	// 7) Discard markers, route traversed columns to the Masked set.
	// Marking a column twice has no extra effect.
	for _, id := range trail {
		if id == endOfWalk {
			continue
		}
		keep[id] = false
	}

	// 8) Partition the sorted index by the final mask.
	remaining, err := sorted.Select(keep, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	masked, err := sorted.Select(keep, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}

	return &EdgeSplit{Remaining: remaining, Masked: masked, Keep: keep}, nil
}
