// SPDX-License-Identifier: MIT
// Package: graphaug/edgeindex
//
// edge_index.go - the EdgeIndex type and edge-list primitives.
//
// Canonical model:
//   - An EdgeIndex is a 2×E column list: column i is the directed edge
//     Src[i]→Dst[i]. An undirected graph is represented by symmetric
//     duplication (both (u,v) and (v,u) present).
//   - All methods are non-mutating: they return fresh slices/values and
//     leave the receiver untouched.
//
// Contract:
//   - Node ids are non-negative; New rejects negatives and ragged slices.
//   - SortBySource orders columns by (source, target) ascending; this is the
//     precondition for CSR slicing and makes edge ids deterministic.
//   - Select is a stable column filter: surviving columns keep their
//     relative order.
//
// Complexity:
//   - New/Clone/Select/Degree/MaxNodeID: O(E).
//   - SortBySource: O(E log E). ToUndirected: O(E log E) (sort + dedup).

package edgeindex

import (
	"fmt"
	"sort"
	"strings"
)

// EdgeIndex is a directed edge list stored column-wise as two parallel
// slices. Invariant: len(Src) == len(Dst); all ids are >= 0.
type EdgeIndex struct {
	// Src holds the source endpoint of each column.
	Src []int64

	// Dst holds the target endpoint of each column.
	Dst []int64
}

// New validates src/dst and returns an EdgeIndex wrapping copies of them.
// Returns ErrLengthMismatch for ragged input and ErrNegativeNodeID if any
// endpoint is negative.
// Complexity: O(E) time and space.
func New(src, dst []int64) (*EdgeIndex, error) {
	// Validate shape first: both columns rows must align.
	if len(src) != len(dst) {
		return nil, fmt.Errorf("New: len(src)=%d len(dst)=%d: %w",
			len(src), len(dst), ErrLengthMismatch)
	}
	// Validate domain: ids are non-negative.
	for i := range src {
		if src[i] < 0 || dst[i] < 0 {
			return nil, fmt.Errorf("New: column %d = (%d,%d): %w",
				i, src[i], dst[i], ErrNegativeNodeID)
		}
	}
	// Copy to decouple the index from caller-owned storage.
	s := make([]int64, len(src))
	d := make([]int64, len(dst))
	copy(s, src)
	copy(d, dst)

	return &EdgeIndex{Src: s, Dst: d}, nil
}

// FromPairs builds an EdgeIndex from (src,dst) pairs. It never fails for
// non-negative ids; negative ids are rejected as in New.
// Complexity: O(E).
func FromPairs(pairs [][2]int64) (*EdgeIndex, error) {
	src := make([]int64, len(pairs))
	dst := make([]int64, len(pairs))
	for i, p := range pairs {
		src[i], dst[i] = p[0], p[1]
	}

	return New(src, dst)
}

// NumEdges returns E, the number of columns.
// Complexity: O(1).
func (ei *EdgeIndex) NumEdges() int {
	return len(ei.Src)
}

// Clone returns a deep copy of the index.
// Complexity: O(E).
func (ei *EdgeIndex) Clone() *EdgeIndex {
	src := make([]int64, len(ei.Src))
	dst := make([]int64, len(ei.Dst))
	copy(src, ei.Src)
	copy(dst, ei.Dst)

	return &EdgeIndex{Src: src, Dst: dst}
}

// MaxNodeID returns the largest id referenced by any column, or -1 for an
// empty index.
// Complexity: O(E).
func (ei *EdgeIndex) MaxNodeID() int64 {
	maxID := int64(-1)
	for i := range ei.Src {
		if ei.Src[i] > maxID {
			maxID = ei.Src[i]
		}
		if ei.Dst[i] > maxID {
			maxID = ei.Dst[i]
		}
	}

	return maxID
}

// NumNodes resolves a node count: hint if hint > 0, else 1 + MaxNodeID.
// An empty index with no hint resolves to 0.
// Complexity: O(E) without hint, O(1) with.
func (ei *EdgeIndex) NumNodes(hint int) int {
	if hint > 0 {
		return hint
	}

	return int(ei.MaxNodeID()) + 1
}

// Sorted reports whether columns are ordered by non-decreasing source node,
// the precondition for CSR construction.
// Complexity: O(E).
func (ei *EdgeIndex) Sorted() bool {
	for i := 1; i < len(ei.Src); i++ {
		if ei.Src[i] < ei.Src[i-1] {
			return false
		}
	}

	return true
}

// SortBySource returns a new EdgeIndex with columns ordered by
// (source, target) ascending. The receiver is unchanged. The secondary
// target key makes the layout, and therefore CSR edge ids, a pure function
// of the edge set.
// Complexity: O(E log E) time, O(E) space.
func (ei *EdgeIndex) SortBySource() *EdgeIndex {
	out := ei.Clone()
	// Sort column positions, then both slices move together.
	idx := make([]int, len(out.Src))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if ei.Src[ia] != ei.Src[ib] {
			return ei.Src[ia] < ei.Src[ib]
		}

		return ei.Dst[ia] < ei.Dst[ib]
	})
	for i, j := range idx {
		out.Src[i], out.Dst[i] = ei.Src[j], ei.Dst[j]
	}

	return out
}

// Degree returns the out-degree of every node in [0, numNodes).
// Returns ErrNodeCountTooSmall if some source id is >= numNodes.
// Complexity: O(N + E).
func (ei *EdgeIndex) Degree(numNodes int) ([]int64, error) {
	deg := make([]int64, numNodes)
	for i, u := range ei.Src {
		if u >= int64(numNodes) {
			return nil, fmt.Errorf("Degree: column %d has source %d >= numNodes %d: %w",
				i, u, numNodes, ErrNodeCountTooSmall)
		}
		deg[u]++
	}

	return deg, nil
}

// Select returns the columns i for which keep[i] == want, preserving their
// relative order (stable filter). keep must cover every column.
// Complexity: O(E).
func (ei *EdgeIndex) Select(keep []bool, want bool) (*EdgeIndex, error) {
	if len(keep) != len(ei.Src) {
		return nil, fmt.Errorf("Select: len(keep)=%d, E=%d: %w",
			len(keep), len(ei.Src), ErrLengthMismatch)
	}
	src := make([]int64, 0, len(ei.Src))
	dst := make([]int64, 0, len(ei.Dst))
	for i := range keep {
		if keep[i] == want {
			src = append(src, ei.Src[i])
			dst = append(dst, ei.Dst[i])
		}
	}

	return &EdgeIndex{Src: src, Dst: dst}, nil
}

// ToUndirected returns the symmetric closure of the index: for every column
// (u,v) the result contains both (u,v) and (v,u), duplicates removed. The
// output is in (source, target) sorted order.
// Complexity: O(E log E) time, O(E) space.
func (ei *EdgeIndex) ToUndirected() *EdgeIndex {
	// Collect both directions, deduplicating by column value.
	seen := make(map[[2]int64]struct{}, 2*len(ei.Src))
	cols := make([][2]int64, 0, 2*len(ei.Src))
	add := func(u, v int64) {
		key := [2]int64{u, v}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		cols = append(cols, key)
	}
	for i := range ei.Src {
		add(ei.Src[i], ei.Dst[i])
		add(ei.Dst[i], ei.Src[i])
	}
	// Canonical order: (source, target) ascending.
	sort.Slice(cols, func(a, b int) bool {
		if cols[a][0] != cols[b][0] {
			return cols[a][0] < cols[b][0]
		}

		return cols[a][1] < cols[b][1]
	})
	src := make([]int64, len(cols))
	dst := make([]int64, len(cols))
	for i, c := range cols {
		src[i], dst[i] = c[0], c[1]
	}

	return &EdgeIndex{Src: src, Dst: dst}
}

// Contains reports whether the column (u,v) appears in the index.
// Complexity: O(E).
func (ei *EdgeIndex) Contains(u, v int64) bool {
	for i := range ei.Src {
		if ei.Src[i] == u && ei.Dst[i] == v {
			return true
		}
	}

	return false
}

// Equal reports whether both indices hold the same columns in the same
// order.
// Complexity: O(E).
func (ei *EdgeIndex) Equal(other *EdgeIndex) bool {
	if other == nil || len(ei.Src) != len(other.Src) {
		return false
	}
	for i := range ei.Src {
		if ei.Src[i] != other.Src[i] || ei.Dst[i] != other.Dst[i] {
			return false
		}
	}

	return true
}

// String renders the index as "[(u→v) ...]" for logs and test failures.
func (ei *EdgeIndex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range ei.Src {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d→%d)", ei.Src[i], ei.Dst[i])
	}
	b.WriteByte(']')

	return b.String()
}
