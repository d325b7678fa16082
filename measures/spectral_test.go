package measures_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signalkit/complexity/measures"
)

// TestSpectralEntropySine verifies that a pure tone sampled over an integer
// number of periods has (near) zero spectral entropy: all power sits in one
// frequency bin.
func TestSpectralEntropySine(t *testing.T) {
	const (
		sf = 100.0
		f  = 1.0
		n  = 400
	)

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * f * float64(i) / sf)
	}

	se, err := measures.SpectralEntropy(x, sf, "fft", 0, false)
	require.NoError(t, err)
	require.InDelta(t, 0.0, se, 1e-6)

	se, err = measures.SpectralEntropy(x, sf, "fft", 0, true)
	require.NoError(t, err)
	require.InDelta(t, 0.0, se, 1e-6)
}

// TestSpectralEntropyWhiteNoise verifies that broadband noise drives the
// normalized entropy toward 1.
func TestSpectralEntropyWhiteNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x := make([]float64, 3000)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	se, err := measures.SpectralEntropy(x, 100, "welch", 0, true)
	require.NoError(t, err)
	require.Greater(t, se, 0.85)
	require.LessOrEqual(t, se, 1.0)

	se, err = measures.SpectralEntropy(x, 100, "fft", 0, true)
	require.NoError(t, err)
	require.Greater(t, se, 0.85)
	require.LessOrEqual(t, se, 1.0)
}

// TestSpectralEntropyWelchNperseg verifies that an explicit segment length is
// accepted, including one longer than the sequence (clamped).
func TestSpectralEntropyWelchNperseg(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	x := make([]float64, 300)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	_, err := measures.SpectralEntropy(x, 100, "welch", 128, false)
	require.NoError(t, err)

	_, err = measures.SpectralEntropy(x, 100, "welch", 1024, false)
	require.NoError(t, err)
}

// TestSpectralEntropyPurity verifies bit-identical results across repeated
// calls.
func TestSpectralEntropyPurity(t *testing.T) {
	x := []float64{0.3, -1.2, 2.4, 0.7, -0.9, 1.1, -2.0, 0.5, 1.7, -0.4}

	first, err := measures.SpectralEntropy(x, 10, "fft", 0, true)
	require.NoError(t, err)
	second, err := measures.SpectralEntropy(x, 10, "fft", 0, true)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// TestSpectralEntropyErrors verifies method and sampling-rate validation and
// the zero-power degenerate case.
func TestSpectralEntropyErrors(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	_, err := measures.SpectralEntropy(x, 100, "multitaper", 0, false)
	require.Error(t, err)
	require.True(t, errors.Is(err, measures.ErrUnknownMethod))

	_, err = measures.SpectralEntropy(x, 0, "fft", 0, false)
	require.Error(t, err)

	_, err = measures.SpectralEntropy(x, -5, "welch", 0, false)
	require.Error(t, err)

	_, err = measures.SpectralEntropy([]float64{0, 0, 0, 0}, 100, "fft", 0, false)
	require.Error(t, err)
}
