// SPDX-License-Identifier: MIT
// Package: graphaug/mask
//
// options.go — functional options shared by the masking transforms.
//
// Contract (strict):
//   • Options are functional (type Option func(*maskOptions)).
//   • Invalid values are recorded inside the options struct and surfaced as
//     ErrOptionViolation when the transform is invoked; transforms never
//     panic.
//   • Determinism is explicit: seed via WithSeed or WithRand. When neither
//     is given, each call creates its own time-seeded source, matching the
//     fresh-draw behavior of a process-global RNG while keeping the
//     dependency visible in the API.
//   • No hidden globals; everything flows through maskOptions.

package mask

import (
	"fmt"
	"math/rand"
	"time"
)

// Defaults for walk-based masking. These mirror the conventional masked
// autoencoder setup: one walk per start, three steps, node-anchored starts.
const (
	// DefaultWalksPerNode is the number of times the start set is walked.
	DefaultWalksPerNode = 1

	// DefaultWalkLength is the maximum number of steps per walk.
	DefaultWalkLength = 3

	// DefaultStartMode anchors walks at sampled nodes.
	DefaultStartMode = StartNode
)

// Option configures a masking transform via functional arguments.
type Option func(*maskOptions)

// maskOptions carries the resolved configuration of one transform call.
type maskOptions struct {
	rng          *rand.Rand // sampling source; lazily time-seeded when nil
	numNodes     int        // node-count hint; 0 means derive from the index
	walksPerNode int        // W: replications of the start set
	walkLength   int        // L: maximum steps per walk
	start        StartMode  // walk start selection
	sorted       bool       // caller guarantees source-sorted input
	training     bool       // false bypasses Path entirely

	// first violation recorded during option application
	err error
}

// defaultOptions returns the baseline configuration.
func defaultOptions() maskOptions {
	return maskOptions{
		rng:          nil,
		numNodes:     0,
		walksPerNode: DefaultWalksPerNode,
		walkLength:   DefaultWalkLength,
		start:        DefaultStartMode,
		sorted:       false,
		training:     true,
		err:          nil,
	}
}

// gatherOptions applies opts over the defaults and enforces invariants.
// It also materializes the RNG so every transform samples from a concrete
// source.
func gatherOptions(opts []Option) (maskOptions, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.rng == nil {
		// No seed requested: fresh draws per call.
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o, nil
}

// WithRand provides an explicit RNG. A nil RNG is a violation.
func WithRand(r *rand.Rand) Option {
	return func(o *maskOptions) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.rng = r
	}
}

// WithSeed seeds a fresh deterministic RNG. Use this in tests and examples
// to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *maskOptions) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNumNodes overrides node-count derivation (1 + max id) with a known
// count; useful when the graph has trailing isolated nodes that no edge
// references.
//
//	n > 0:  use n
//	n == 0: derive from the edge index
//	n < 0:  violation
func WithNumNodes(n int) Option {
	return func(o *maskOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: WithNumNodes(%d)", ErrOptionViolation, n)
			return
		}
		o.numNodes = n
	}
}

// WithWalksPerNode sets W, the number of times the selected start set is
// walked. Must be >= 1.
func WithWalksPerNode(w int) Option {
	return func(o *maskOptions) {
		if w < 1 {
			o.err = fmt.Errorf("%w: WithWalksPerNode(%d)", ErrOptionViolation, w)
			return
		}
		o.walksPerNode = w
	}
}

// WithWalkLength sets L, the maximum steps per walk. Zero is legal and
// makes Path a no-op beyond sorting; negative lengths are a violation.
func WithWalkLength(l int) Option {
	return func(o *maskOptions) {
		if l < 0 {
			o.err = fmt.Errorf("%w: WithWalkLength(%d)", ErrOptionViolation, l)
			return
		}
		o.walkLength = l
	}
}

// WithStart selects the walk start-selection mode. Unknown modes are
// rejected by Path with ErrUnknownStartMode.
func WithStart(m StartMode) Option {
	return func(o *maskOptions) {
		o.start = m
	}
}

// WithSorted declares that the edge index is already source-sorted, letting
// Path skip its canonicalization pass. Declaring this for an unsorted index
// yields an ErrUnsorted from CSR construction.
func WithSorted(sorted bool) Option {
	return func(o *maskOptions) {
		o.sorted = sorted
	}
}

// WithTraining toggles training mode. With training == false, Path returns
// its input unchanged under an all-true mask (the evaluation bypass).
func WithTraining(training bool) Option {
	return func(o *maskOptions) {
		o.training = training
	}
}
