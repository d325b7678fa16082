package measures

import (
	"fmt"
	"math"

	"github.com/signalkit/complexity/algorithms/common"
	"github.com/signalkit/complexity/algorithms/embedding"
	"github.com/signalkit/complexity/algorithms/stats"
	"github.com/signalkit/complexity/logging"
)

const (
	// RadiusFactor scales the sample standard deviation of the input to the
	// neighbor radius used by approximate and sample entropy.
	RadiusFactor = 0.2

	// FastPathMaxLength bounds the sequence length for which sample entropy
	// uses the O(n²) triangular Chebyshev scan. Beyond it the spatial-index
	// path wins despite its per-query overhead.
	FastPathMaxLength = 5000
)

// AppEntropy computes the approximate entropy of x with the given embedding
// dimension (order) and distance metric ("chebyshev", "euclidean" or
// "manhattan").
//
// The neighbor radius is RadiusFactor times the sample standard deviation of
// x. Smaller values indicate a more regular, predictable sequence. A constant
// sequence is rejected with ErrZeroVariance.
//
// References:
// - Richman, J.S., Moorman, J.R. (2000). "Physiological time-series analysis
//   using approximate entropy and sample entropy". American Journal of
//   Physiology-Heart and Circulatory Physiology 278(6).
func AppEntropy(x []float64, order int, metric string) (float64, error) {
	distMetric, err := stats.ParseMetric(metric)
	if err != nil {
		return 0, err
	}

	radius, err := neighborRadius(x, order)
	if err != nil {
		return 0, err
	}

	phi0, phi1, err := phi(x, order, radius, distMetric, true)
	if err != nil {
		return 0, err
	}

	return phi0 - phi1, nil
}

// SampleEntropy computes the sample entropy of x with the given embedding
// dimension (order) and distance metric ("chebyshev", "euclidean" or
// "manhattan").
//
// The neighbor radius is RadiusFactor times the sample standard deviation of
// x; a constant sequence is rejected with ErrZeroVariance. When no template
// matches exist at order+1 the result is +Inf: the sequence shows no
// self-similarity at that scale, which is a legitimate value rather than an
// error. For the Chebyshev metric on sequences shorter than
// FastPathMaxLength a single triangular pass produces the match counts for
// both embedding orders; other metrics and longer sequences use radius
// queries against a vantage-point tree. Both strategies compute the same
// quantity (natural logarithm).
//
// References:
// - Richman, J.S., Moorman, J.R. (2000). "Physiological time-series analysis
//   using approximate entropy and sample entropy". American Journal of
//   Physiology-Heart and Circulatory Physiology 278(6).
func SampleEntropy(x []float64, order int, metric string) (float64, error) {
	distMetric, err := stats.ParseMetric(metric)
	if err != nil {
		return 0, err
	}

	radius, err := neighborRadius(x, order)
	if err != nil {
		return 0, err
	}

	if distMetric == stats.Chebyshev && len(x) < FastPathMaxLength {
		logging.Debug("dispatching sample entropy to triangular Chebyshev scan", logging.Fields{
			"measure": "sample_entropy",
			"samples": len(x),
			"order":   order,
		})
		return sampleEntropyFast(x, order, radius), nil
	}

	logging.Debug("dispatching sample entropy to vantage-point tree path", logging.Fields{
		"measure": "sample_entropy",
		"metric":  distMetric.String(),
		"samples": len(x),
		"order":   order,
	})
	return sampleEntropyGeneric(x, order, radius, distMetric)
}

// neighborRadius validates the shared preconditions of approximate and sample
// entropy and derives the neighbor radius from the sample standard deviation.
func neighborRadius(x []float64, order int) (float64, error) {
	if order < 1 {
		return 0, fmt.Errorf("embedding order must be >= 1, got %d", order)
	}
	if len(x) < order+2 {
		return 0, fmt.Errorf("sequence of length %d is too short for embedding order %d; need at least %d samples",
			len(x), order, order+2)
	}

	std := common.SampleStdDev(x)
	if std == 0 {
		return 0, fmt.Errorf("cannot derive neighbor radius for order %d: %w", order, ErrZeroVariance)
	}

	return RadiusFactor * std, nil
}

// phi computes the average neighbor-count statistics at embedding orders
// order and order+1 (delay 1). With approximate semantics the counts include
// the self-match and enter through a logarithm; with sample semantics the
// self-match is excluded and the order-level embedding drops its final row so
// both levels compare the same number of templates.
func phi(x []float64, order int, radius float64, metric stats.DistanceMetric, approximate bool) (phi0, phi1 float64, err error) {
	lower, err := embedding.Matrix(x, order, 1)
	if err != nil {
		return 0, 0, err
	}
	if !approximate {
		lower = lower[:len(lower)-1]
	}

	upper, err := embedding.Matrix(x, order+1, 1)
	if err != nil {
		return 0, 0, err
	}

	lowerCounts, err := stats.RadiusCounts(lower, radius, metric)
	if err != nil {
		return 0, 0, err
	}
	upperCounts, err := stats.RadiusCounts(upper, radius, metric)
	if err != nil {
		return 0, 0, err
	}

	nLower := float64(len(lower))
	nUpper := float64(len(upper))

	if approximate {
		for _, c := range lowerCounts {
			phi0 += math.Log(float64(c) / nLower)
		}
		for _, c := range upperCounts {
			phi1 += math.Log(float64(c) / nUpper)
		}
	} else {
		for _, c := range lowerCounts {
			phi0 += (float64(c) - 1) / (nLower - 1)
		}
		for _, c := range upperCounts {
			phi1 += (float64(c) - 1) / (nUpper - 1)
		}
	}
	phi0 /= nLower
	phi1 /= nUpper

	return phi0, phi1, nil
}

// sampleEntropyGeneric is the spatial-index strategy: -log(phi1/phi0) over
// self-excluded neighbor averages.
func sampleEntropyGeneric(x []float64, order int, radius float64, metric stats.DistanceMetric) (float64, error) {
	phi0, phi1, err := phi(x, order, radius, metric, false)
	if err != nil {
		return 0, err
	}

	if phi1 == 0 || phi0 == 0 {
		// No template matches at the larger order: maximally irregular.
		return math.Inf(1), nil
	}

	return -math.Log(phi1 / phi0), nil
}

// sampleEntropyFast is the Chebyshev strategy: one triangular scan yields the
// template match totals for all orders up to order+1 at once.
func sampleEntropyFast(x []float64, order int, radius float64) float64 {
	n := len(x)
	maxOrder := order + 1

	a, b := stats.ChebyshevMatchCounts(x, maxOrder, radius)

	// Templates of length k pair off against matches one component shorter;
	// at the shortest length every ordered pair is a candidate template.
	for m := maxOrder - 1; m > 0; m-- {
		b[m] = b[m-1]
	}
	b[0] = float64(n) * float64(n-1) / 2

	if a[maxOrder-1] == 0 {
		return math.Inf(1)
	}

	return -math.Log(a[maxOrder-1] / b[maxOrder-1])
}
