package measures

import (
	"errors"

	"github.com/signalkit/complexity/algorithms/spectral"
	"github.com/signalkit/complexity/algorithms/stats"
)

var (
	// ErrZeroVariance reports a constant input sequence. The neighbor radius
	// of approximate and sample entropy is proportional to the sample
	// standard deviation, so a zero-variance sequence has no meaningful
	// neighborhood structure and the result would otherwise be a silent
	// NaN or Inf.
	ErrZeroVariance = errors.New("zero-variance sequence: neighbor radius collapses to zero")

	// ErrUnknownMetric reports a distance metric name outside
	// {chebyshev, euclidean, manhattan}.
	ErrUnknownMetric = stats.ErrUnknownMetric

	// ErrUnknownMethod reports a spectral estimation method outside
	// {fft, welch}.
	ErrUnknownMethod = spectral.ErrUnknownMethod

	// ErrBadAlphabet reports a Lempel-Ziv input whose symbol set is not the
	// binary alphabet {'0','1'}.
	ErrBadAlphabet = errors.New("sequence alphabet is not binary")
)
