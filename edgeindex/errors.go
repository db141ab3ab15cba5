// SPDX-License-Identifier: MIT
// Package: graphaug/edgeindex
//
// errors.go — sentinel errors for the edgeindex package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context with `%w` at the failure site.
//   • No panics at runtime; every invalid input surfaces as an error.

package edgeindex

import "errors"

// ErrNilEdgeIndex indicates that a nil *EdgeIndex was passed where a value
// is required.
// Usage: if errors.Is(err, ErrNilEdgeIndex) { /* supply an edge index */ }.
var ErrNilEdgeIndex = errors.New("edgeindex: edge index is nil")

// ErrLengthMismatch indicates that the Src and Dst slices of an EdgeIndex
// differ in length, so the structure is not a valid 2×E column list.
// Usage: if errors.Is(err, ErrLengthMismatch) { /* rebuild the index */ }.
var ErrLengthMismatch = errors.New("edgeindex: src/dst length mismatch")

// ErrNegativeNodeID indicates that an endpoint id is negative. Node ids are
// contiguous non-negative integers in [0, N).
var ErrNegativeNodeID = errors.New("edgeindex: negative node id")

// ErrNodeCountTooSmall indicates that a supplied node count does not cover
// every id referenced by the edge index (numNodes <= max id).
var ErrNodeCountTooSmall = errors.New("edgeindex: node count too small")

// ErrUnsorted indicates that CSR construction received an edge index whose
// columns are not ordered by source node. Sort with SortBySource first.
var ErrUnsorted = errors.New("edgeindex: edge index not sorted by source")

// ErrStartOutOfRange indicates that a random walk was asked to start at a
// node id outside [0, NumNodes).
var ErrStartOutOfRange = errors.New("edgeindex: walk start out of range")

// ErrBadWalkLength indicates a negative walk length. Zero is legal and
// yields an empty walk.
var ErrBadWalkLength = errors.New("edgeindex: negative walk length")

// ErrNilRand indicates that a stochastic routine requires a non-nil
// *rand.Rand. Seed one with rand.New(rand.NewSource(seed)).
var ErrNilRand = errors.New("edgeindex: rng is required")

// ErrSelfLoop indicates that Gonum export met an edge (u,u); gonum's simple
// graphs reject self-loops.
var ErrSelfLoop = errors.New("edgeindex: self-loop not representable")
