package mask_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphaug/mask"
)

// features4x3 returns a 4×3 matrix with distinct entries per row.
func features4x3() *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	})
}

func TestFeatures_Errors(t *testing.T) {
	x := features4x3()

	_, err := mask.Features(nil, 0.5)
	require.ErrorIs(t, err, mask.ErrNilFeatures)

	for _, q := range []float64{-0.1, 1.1, 2} {
		_, err = mask.Features(x, q)
		require.ErrorIs(t, err, mask.ErrInvalidProbability, "q=%v", q)
	}

	_, err = mask.Features(x, 0.5, mask.WithRand(nil))
	require.ErrorIs(t, err, mask.ErrOptionViolation)
}

func TestFeatures_DegenerateProbabilities(t *testing.T) {
	x := features4x3()

	// q=0: exact copy of the input.
	out, err := mask.Features(x, 0)
	require.NoError(t, err)
	require.True(t, mat.Equal(x, out))

	// q=1: every row zeroed.
	out, err = mask.Features(x, 1)
	require.NoError(t, err)
	rows, cols := out.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.Zero(t, out.At(i, j), "row %d col %d", i, j)
		}
	}
}

func TestFeatures_InputNotMutated(t *testing.T) {
	x := features4x3()
	before := mat.DenseCopyOf(x)

	_, err := mask.Features(x, 1)
	require.NoError(t, err)
	require.True(t, mat.Equal(before, x), "q=1 mutated the input")

	_, err = mask.Features(x, 0.5, mask.WithSeed(11))
	require.NoError(t, err)
	require.True(t, mat.Equal(before, x), "q=0.5 mutated the input")
}

func TestFeatures_RowGranularity(t *testing.T) {
	// Every row must be either untouched or all-zero: dimensions are never
	// masked individually.
	x := features4x3()
	out, err := mask.Features(x, 0.5, mask.WithSeed(5))
	require.NoError(t, err)

	rows, cols := out.Dims()
	for i := 0; i < rows; i++ {
		zeroed := out.At(i, 0) == 0
		for j := 0; j < cols; j++ {
			if zeroed {
				require.Zero(t, out.At(i, j), "row %d partially zeroed", i)
			} else {
				require.Equal(t, x.At(i, j), out.At(i, j), "row %d partially kept", i)
			}
		}
	}
}

func TestFeatures_Deterministic(t *testing.T) {
	x := features4x3()
	a, err := mask.Features(x, 0.5, mask.WithSeed(123))
	require.NoError(t, err)
	b, err := mask.Features(x, 0.5, mask.WithSeed(123))
	require.NoError(t, err)
	require.True(t, mat.Equal(a, b), "same seed produced different masks")
}
