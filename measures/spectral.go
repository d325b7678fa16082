package measures

import (
	"fmt"
	"math"

	"github.com/signalkit/complexity/algorithms/common"
	"github.com/signalkit/complexity/algorithms/spectral"
	"github.com/signalkit/complexity/logging"
)

// SpectralEntropy computes the Shannon entropy of the normalized power
// spectral density of x, in bits.
//
// sf is the sampling frequency. method selects the PSD estimator: "fft"
// (full-length periodogram) or "welch" (averaged overlapping segments of
// length nperseg; 0 selects the estimator default of 256, and segments longer
// than the sequence are clamped to it). Spectral bins with zero power
// contribute nothing to the entropy. If normalize is true the result is
// divided by log2 of the number of frequency bins, yielding a value in [0, 1].
//
// References:
// - Inouye, T. et al. (1991). "Quantification of EEG irregularity by use of
//   the entropy of the power spectrum". Electroencephalography and Clinical
//   Neurophysiology 79(3).
func SpectralEntropy(x []float64, sf float64, method string, nperseg int, normalize bool) (float64, error) {
	psdMethod, err := spectral.ParseMethod(method)
	if err != nil {
		return 0, err
	}

	estimator, err := spectral.NewEstimator(sf, psdMethod, nperseg)
	if err != nil {
		return 0, err
	}

	logging.Debug("estimating power spectrum", logging.Fields{
		"measure": "spectral_entropy",
		"method":  psdMethod.String(),
		"nperseg": nperseg,
		"samples": len(x),
	})

	psd, err := estimator.PSD(x)
	if err != nil {
		return 0, err
	}

	probabilities := common.NormalizeSum(psd)
	if probabilities == nil {
		return 0, fmt.Errorf("power spectrum has zero total power; sequence carries no signal")
	}

	entropy := common.ShannonBits(probabilities)
	if normalize {
		entropy /= math.Log2(float64(len(psd)))
	}

	return entropy, nil
}
