package measures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signalkit/complexity/measures"
)

// TestSVDEntropyReference reproduces the fixed reference values for
// x = [4, 7, 9, 10, 6, 11, 3].
func TestSVDEntropyReference(t *testing.T) {
	x := []float64{4, 7, 9, 10, 6, 11, 3}

	se, err := measures.SVDEntropy(x, 2, 1, false)
	require.NoError(t, err)
	require.InDelta(t, 0.7618909465130066, se, 1e-9)

	se, err = measures.SVDEntropy(x, 3, 1, true)
	require.NoError(t, err)
	require.InDelta(t, 0.6870083043946692, se, 1e-9)
}

// TestSVDEntropyNormalizedBounds verifies the [0, 1] range of the normalized
// measure.
func TestSVDEntropyNormalizedBounds(t *testing.T) {
	x := []float64{0.3, -1.2, 2.4, 0.7, -0.9, 1.1, -2.0, 0.5, 1.7, -0.4, 0.8, -1.5}

	for order := 2; order <= 4; order++ {
		se, err := measures.SVDEntropy(x, order, 1, true)
		require.NoError(t, err)
		require.GreaterOrEqual(t, se, 0.0)
		require.LessOrEqual(t, se, 1.0)
	}
}

// TestSVDEntropyPurity verifies bit-identical results across repeated calls.
func TestSVDEntropyPurity(t *testing.T) {
	x := []float64{4, 7, 9, 10, 6, 11, 3}

	first, err := measures.SVDEntropy(x, 3, 1, false)
	require.NoError(t, err)
	second, err := measures.SVDEntropy(x, 3, 1, false)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// TestSVDEntropyErrors verifies the configuration checks, including the
// all-zero degenerate input.
func TestSVDEntropyErrors(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	_, err := measures.SVDEntropy(x, 1, 1, false)
	require.Error(t, err)

	_, err = measures.SVDEntropy(x, 2, 0, false)
	require.Error(t, err)

	_, err = measures.SVDEntropy([]float64{1, 2}, 3, 1, false)
	require.Error(t, err)

	_, err = measures.SVDEntropy([]float64{0, 0, 0, 0, 0}, 2, 1, false)
	require.Error(t, err)
}
