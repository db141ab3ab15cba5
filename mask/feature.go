// SPDX-License-Identifier: MIT
// Package: graphaug/mask
//
// feature.go - node-feature masking.
//
// Canonical model:
//   - One Bernoulli(q) trial per node (row), independent across nodes. A
//     firing trial zeroes the whole row; feature dimensions are never
//     masked individually.
//
// Contract:
//   - x is never mutated; the result is a fresh matrix.
//   - q must lie in [0,1] (ErrInvalidProbability). q == 0 returns an
//     unmodified copy and draws nothing; q == 1 zeroes every row and draws
//     nothing, so both degenerate cases are RNG-independent.
//   - Trial order is row-ascending, so a fixed seed reproduces the mask.
//
// Complexity: O(N·D) time and space for the copy, O(N) trials.

package mask

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodFeatures = "Features"

// Features returns a copy of the N×D feature matrix x in which each row is
// independently zeroed with probability q.
func Features(x *mat.Dense, q float64, opts ...Option) (*mat.Dense, error) {
	// 1) Validate before any sampling.
	if x == nil {
		return nil, fmt.Errorf("%s: %w", methodFeatures, ErrNilFeatures)
	}
	if q < 0 || q > 1 {
		return nil, fmt.Errorf("%s: q=%.6f not in [0,1]: %w", methodFeatures, q, ErrInvalidProbability)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFeatures, err)
	}

	// 2) Copy; the input stays untouched no matter what the trials decide.
	masked := mat.DenseCopyOf(x)
	rows, cols := masked.Dims()

	// 3) Degenerate probabilities need no draws.
	if q == 0 {
		return masked, nil
	}
	zero := make([]float64, cols) // shared source row; SetRow copies it
	if q == 1 {
		for i := 0; i < rows; i++ {
			masked.SetRow(i, zero)
		}

		return masked, nil
	}

	// 4) Bernoulli trial per row, row-ascending order.
	for i := 0; i < rows; i++ {
		if o.rng.Float64() <= q {
			masked.SetRow(i, zero)
		}
	}

	return masked, nil
}
