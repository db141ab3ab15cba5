// SPDX-License-Identifier: MIT
// Package: graphaug/mask
//
// adapters.go - stateful masker adapters.
//
// Canonical model:
//   - Each adapter stores its configuration once at construction and
//     forwards it to the corresponding transform on every Apply, so a
//     training loop holds one value and calls it per batch.
//   - EdgeMasker and PathMasker optionally symmetrize the Remaining set
//     (undirected closure) AFTER masking: start selection and walking run
//     on the edge index as given, and only the kept edges are closed under
//     reversal for downstream consumption. The Masked set is never
//     symmetrized; it is the reconstruction target and stays in the
//     as-given representation.
//
// Determinism note: options are re-applied per call, so a WithSeed passed
// at construction re-seeds on every Apply and each Apply reproduces the
// same draw. Pass WithRand to advance one RNG across calls instead.

package mask

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphaug/edgeindex"
)

// NodeMasker zeroes a random subset of node feature rows with a stored
// probability.
type NodeMasker struct {
	q    float64
	opts []Option
}

// NewNodeMasker stores q and any baseline options (seed, RNG).
// Probability validation happens at Apply, never here, so construction is
// infallible.
func NewNodeMasker(q float64, opts ...Option) *NodeMasker {
	return &NodeMasker{q: q, opts: opts}
}

// Apply masks x with the stored configuration; extra options override the
// stored ones for this call.
func (m *NodeMasker) Apply(x *mat.Dense, extra ...Option) (*mat.Dense, error) {
	return Features(x, m.q, combine(m.opts, extra)...)
}

// String mirrors the adapter's stored configuration.
func (m *NodeMasker) String() string {
	return fmt.Sprintf("NodeMasker(q=%v)", m.q)
}

// EdgeMasker removes an independently sampled edge subset with a stored
// probability, optionally symmetrizing what remains.
type EdgeMasker struct {
	p          float64
	undirected bool
	opts       []Option
}

// NewEdgeMasker stores p, the undirected flag, and baseline options.
func NewEdgeMasker(p float64, undirected bool, opts ...Option) *EdgeMasker {
	return &EdgeMasker{p: p, undirected: undirected, opts: opts}
}

// Apply splits ei with the stored configuration. With the undirected flag
// set, Remaining is replaced by its symmetric closure; Masked and Keep are
// returned exactly as the transform produced them.
func (m *EdgeMasker) Apply(ei *edgeindex.EdgeIndex, extra ...Option) (*EdgeSplit, error) {
	split, err := Edges(ei, m.p, combine(m.opts, extra)...)
	if err != nil {
		return nil, err
	}
	if m.undirected {
		split.Remaining = split.Remaining.ToUndirected()
	}

	return split, nil
}

// String mirrors the adapter's stored configuration.
func (m *EdgeMasker) String() string {
	return fmt.Sprintf("EdgeMasker(p=%v, undirected=%t)", m.p, m.undirected)
}

// PathMasker removes the edges traversed by random walks, with walk
// parameters fixed at construction.
type PathMasker struct {
	p          float64
	undirected bool
	opts       []Option
	cfg        maskOptions // resolved copy of opts for introspection only
}

// NewPathMasker stores p, the undirected flag, and baseline options
// (walks per node, walk length, start mode, node count, seed). Options are
// validated at Apply; String reflects whatever values resolved cleanly.
func NewPathMasker(p float64, undirected bool, opts ...Option) *PathMasker {
	cfg, _ := gatherOptions(opts)

	return &PathMasker{p: p, undirected: undirected, opts: opts, cfg: cfg}
}

// Apply splits ei with the stored configuration. Symmetrization follows the
// same post-masking, Remaining-only rule as EdgeMasker.
func (m *PathMasker) Apply(ei *edgeindex.EdgeIndex, extra ...Option) (*EdgeSplit, error) {
	split, err := Path(ei, m.p, combine(m.opts, extra)...)
	if err != nil {
		return nil, err
	}
	if m.undirected {
		split.Remaining = split.Remaining.ToUndirected()
	}

	return split, nil
}

// String mirrors the adapter's stored configuration.
func (m *PathMasker) String() string {
	return fmt.Sprintf("PathMasker(p=%v, walksPerNode=%d, walkLength=%d, start=%s, undirected=%t)",
		m.p, m.cfg.walksPerNode, m.cfg.walkLength, m.cfg.start, m.undirected)
}

// combine layers per-call options over stored ones; later options win.
func combine(stored, extra []Option) []Option {
	if len(extra) == 0 {
		return stored
	}
	out := make([]Option, 0, len(stored)+len(extra))
	out = append(out, stored...)
	out = append(out, extra...)

	return out
}
