package mask_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphaug/edgeindex"
	"github.com/katalvlaran/graphaug/mask"
)

// benchGraph builds a source-sorted random-ish graph with n nodes and
// roughly n*deg edges (ring plus deterministic chords).
func benchGraph(n, deg int) *edgeindex.EdgeIndex {
	src := make([]int64, 0, n*deg)
	dst := make([]int64, 0, n*deg)
	for u := 0; u < n; u++ {
		for k := 0; k < deg; k++ {
			src = append(src, int64(u))
			dst = append(dst, int64((u+1+k*13)%n))
		}
	}
	ei, _ := edgeindex.New(src, dst)
	return ei.SortBySource()
}

// BenchmarkFeatures measures row masking of a 10k×64 feature matrix.
func BenchmarkFeatures(b *testing.B) {
	x := mat.NewDense(10000, 64, nil)
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = mask.Features(x, 0.7, mask.WithRand(rng))
	}
}

// BenchmarkEdges measures independent masking of a 40k-edge graph.
func BenchmarkEdges(b *testing.B) {
	ei := benchGraph(10000, 4)
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.SetBytes(int64(ei.NumEdges()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = mask.Edges(ei, 0.7, mask.WithRand(rng))
	}
}

// BenchmarkPath measures walk-based masking of a 40k-edge graph with the
// default walk parameters; the input is pre-sorted so the bench isolates
// CSR construction plus walking.
func BenchmarkPath(b *testing.B) {
	ei := benchGraph(10000, 4)
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.SetBytes(int64(ei.NumEdges()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = mask.Path(ei, 0.3,
			mask.WithRand(rng),
			mask.WithSorted(true),
		)
	}
}
