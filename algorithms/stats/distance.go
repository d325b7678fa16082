package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownMetric reports a distance metric name with no registered function.
var ErrUnknownMetric = errors.New("unknown distance metric")

// DistanceMetric represents the metric used for neighbor queries
type DistanceMetric int

const (
	// Chebyshev (L∞) distance: maximum absolute component difference
	Chebyshev DistanceMetric = iota

	// Euclidean (L2) distance
	Euclidean

	// Manhattan (L1) distance
	Manhattan
)

func (m DistanceMetric) String() string {
	switch m {
	case Chebyshev:
		return "chebyshev"
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// ParseMetric maps a metric name to its DistanceMetric. Anything outside the
// supported set fails fast, before any computation starts.
func ParseMetric(name string) (DistanceMetric, error) {
	switch name {
	case "chebyshev":
		return Chebyshev, nil
	case "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid metrics: chebyshev, euclidean, manhattan)",
			ErrUnknownMetric, name)
	}
}

// DistanceFunction is a function type for computing distance between two vectors
type DistanceFunction func(a, b []float64) float64

// Func returns the distance function for the metric
func (m DistanceMetric) Func() DistanceFunction {
	switch m {
	case Euclidean:
		return EuclideanDistanceFunc
	case Manhattan:
		return ManhattanDistanceFunc
	default:
		return ChebyshevDistanceFunc
	}
}

// ChebyshevDistanceFunc calculates the Chebyshev (L∞) distance between two points
func ChebyshevDistanceFunc(a, b []float64) float64 {
	maxDiff := 0.0
	for i := range a {
		diff := math.Abs(a[i] - b[i])
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}

// EuclideanDistanceFunc calculates the Euclidean distance between two points
func EuclideanDistanceFunc(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// ManhattanDistanceFunc calculates the Manhattan (L1) distance between two points
func ManhattanDistanceFunc(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}
