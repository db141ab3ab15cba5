// SPDX-License-Identifier: MIT
// Package: graphaug/mask
//
// errors.go — sentinel errors for the mask package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Failure sites attach method context with `%w`.
//   • Validation happens before any sampling; a failed call has no
//     observable side effect.

package mask

import "errors"

// ErrInvalidProbability indicates that a masking probability (p or q) lies
// outside the closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* fix p */ }.
var ErrInvalidProbability = errors.New("mask: probability out of range")

// ErrUnknownStartMode indicates a walk start-selection mode other than
// StartNode or StartEdge.
var ErrUnknownStartMode = errors.New("mask: unknown start mode")

// ErrOptionViolation indicates a WithX option received a meaningless value
// (nil RNG, walks per node < 1, negative walk length or node count). The
// violation is recorded when the option is applied and surfaced when the
// transform is invoked.
var ErrOptionViolation = errors.New("mask: invalid option value")

// ErrNilFeatures indicates a nil feature matrix.
var ErrNilFeatures = errors.New("mask: feature matrix is nil")

// ErrNilEdgeIndex indicates a nil edge index.
var ErrNilEdgeIndex = errors.New("mask: edge index is nil")
