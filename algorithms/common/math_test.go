package common_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signalkit/complexity/algorithms/common"
)

// TestMean verifies the arithmetic mean and the empty-input fallback.
func TestMean(t *testing.T) {
	require.Equal(t, 2.5, common.Mean([]float64{1, 2, 3, 4}))
	require.Equal(t, 0.0, common.Mean(nil))
}

// TestSampleStdDev verifies the ddof=1 convention: var([1,2,3,4]) = 5/3.
func TestSampleStdDev(t *testing.T) {
	require.InDelta(t, math.Sqrt(5.0/3.0), common.SampleStdDev([]float64{1, 2, 3, 4}), 1e-12)
	require.Equal(t, 0.0, common.SampleStdDev([]float64{7}))
	require.Equal(t, 0.0, common.SampleStdDev([]float64{3, 3, 3, 3}))
}

// TestNormalizeSum verifies rescaling to a distribution and the degenerate
// zero-sum case.
func TestNormalizeSum(t *testing.T) {
	p := common.NormalizeSum([]float64{1, 3})
	require.Equal(t, []float64{0.25, 0.75}, p)

	require.Nil(t, common.NormalizeSum([]float64{0, 0, 0}))
	require.Nil(t, common.NormalizeSum(nil))
}

// TestShannonBits verifies the uniform maximum and that zero-probability
// entries contribute nothing instead of NaN.
func TestShannonBits(t *testing.T) {
	uniform := []float64{0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125}
	require.InDelta(t, 3.0, common.ShannonBits(uniform), 1e-12)

	withZeros := []float64{0.5, 0, 0.5, 0}
	require.InDelta(t, 1.0, common.ShannonBits(withZeros), 1e-12)
	require.False(t, math.IsNaN(common.ShannonBits(withZeros)))

	require.InDelta(t, 0.0, common.ShannonBits([]float64{1}), 1e-12)
}

// TestLog2Factorial checks small factorials against direct evaluation.
func TestLog2Factorial(t *testing.T) {
	require.InDelta(t, 0.0, common.Log2Factorial(1), 1e-12)
	require.InDelta(t, 1.0, common.Log2Factorial(2), 1e-12)
	require.InDelta(t, math.Log2(120), common.Log2Factorial(5), 1e-12)
	require.InDelta(t, math.Log2(3628800), common.Log2Factorial(10), 1e-12)
}
