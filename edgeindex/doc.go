// Package edgeindex provides the flat-array edge-list primitives that the
// masking transforms in graphaug/mask are built on: the EdgeIndex type,
// source-sorting, out-degree computation, undirected symmetrization, CSR
// adjacency construction, and uniform random walks.
//
// What
//
//   - EdgeIndex: a 2×E directed edge list stored as two parallel []int64
//     slices (Src, Dst). Column i is the edge Src[i]→Dst[i].
//   - SortBySource: a new EdgeIndex with columns ordered by source node
//     (ties ordered by target), the precondition for CSR slicing.
//   - Degree: out-degree counts per node.
//   - ToUndirected: symmetric closure with duplicates removed.
//   - NumNodes: node-count resolution (explicit hint, else 1+max id).
//   - CSR: offsets (length N+1) + targets built from a source-sorted
//     EdgeIndex, giving O(1) access to any node's contiguous neighbor slice.
//   - (*CSR).RandomWalk: one uniform random walk of bounded length,
//     returning visited nodes and traversed edge ids (column positions).
//   - FromGonum / (*EdgeIndex).Gonum: conversions to and from
//     gonum.org/v1/gonum/graph directed graphs.
//
// Why
//
//   - Masking a graph means filtering columns of its edge index; all
//     structures here are ephemeral, rebuilt per call, and never mutate
//     their inputs.
//   - CSR keeps neighbor lookup allocation-free inside walk loops.
//
// Determinism
//
//	SortBySource orders columns by (source, target), so CSR layout and edge
//	ids are a pure function of the edge set. RandomWalk consumes the caller's
//	*rand.Rand only; a fixed seed reproduces walks exactly.
//
// Complexity (N = nodes, E = edges, L = walk length)
//
//   - SortBySource: O(E log E) time, O(E) space.
//   - Degree / ToUndirected / NewCSR: O(E) after sorting.
//   - Neighbors: O(1). RandomWalk: O(L).
//
// Errors
//
//   - ErrNilEdgeIndex      if an EdgeIndex pointer is nil.
//   - ErrLengthMismatch    if Src and Dst differ in length.
//   - ErrNegativeNodeID    if any endpoint id is negative.
//   - ErrNodeCountTooSmall if a node count does not cover the max id.
//   - ErrUnsorted          if CSR construction sees an unsorted index.
//   - ErrStartOutOfRange   if a walk starts outside [0, N).
//   - ErrBadWalkLength     if a walk length is negative.
//   - ErrNilRand           if a stochastic routine receives a nil RNG.
//   - ErrSelfLoop          if gonum export meets a self-loop.
package edgeindex
