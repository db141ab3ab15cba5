// SPDX-License-Identifier: MIT
// Package: graphaug/edgeindex
//
// gonum.go - conversions between EdgeIndex and gonum directed graphs.
//
// Training pipelines frequently hold graphs as gonum structures; these
// adapters bridge them to the flat column form the maskers consume.
//
// Contract:
//   - FromGonum walks nodes and their out-neighbors in ascending id order,
//     so the resulting column order is deterministic (and source-sorted).
//   - Node ids are used as-is; negative ids are rejected (ErrNegativeNodeID)
//     since EdgeIndex requires ids in [0, N).
//   - Gonum rejects self-loop columns (ErrSelfLoop): gonum's simple graphs
//     cannot represent them.

package edgeindex

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// FromGonum extracts the edge set of g as a source-sorted EdgeIndex.
// Complexity: O(N log N + E log E) time, O(N + E) space.
func FromGonum(g graph.Directed) (*EdgeIndex, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: nil graph: %w", ErrNilEdgeIndex)
	}

	// Stable node order: ascending id.
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID() < nodes[b].ID() })

	var src, dst []int64
	for _, u := range nodes {
		// Stable neighbor order: ascending id, so columns come out sorted
		// by (source, target) with no extra pass.
		tos := graph.NodesOf(g.From(u.ID()))
		sort.Slice(tos, func(a, b int) bool { return tos[a].ID() < tos[b].ID() })
		for _, v := range tos {
			src = append(src, u.ID())
			dst = append(dst, v.ID())
		}
	}

	// New re-validates id domain (negative gonum ids are not representable).
	ei, err := New(src, dst)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return ei, nil
}

// Gonum materializes the index as a *simple.DirectedGraph. Only nodes
// incident to at least one column are added; isolated nodes are not
// representable in an edge list.
// Returns ErrSelfLoop if any column is (u,u).
// Complexity: O(N + E) time and space.
func (ei *EdgeIndex) Gonum() (*simple.DirectedGraph, error) {
	dg := simple.NewDirectedGraph()
	for i := range ei.Src {
		u, v := ei.Src[i], ei.Dst[i]
		if u == v {
			return nil, fmt.Errorf("Gonum: column %d = (%d,%d): %w", i, u, v, ErrSelfLoop)
		}
		// SetEdge inserts missing endpoints; duplicate columns collapse.
		dg.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}

	return dg, nil
}
