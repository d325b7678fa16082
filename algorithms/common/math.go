package common

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Shared numeric helpers used across the complexity measures using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// SampleStdDev calculates the sample standard deviation (ddof=1) using gonum
func SampleStdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}
	return stat.StdDev(data, nil)
}

// NormalizeSum rescales non-negative values to a probability distribution by
// dividing by their sum. Returns nil if the sum is not strictly positive.
func NormalizeSum(values []float64) []float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}

	if total <= 0 {
		return nil
	}

	probabilities := make([]float64, len(values))
	for i, v := range values {
		probabilities[i] = v / total
	}

	return probabilities
}

// ShannonBits computes the Shannon entropy of a probability distribution in
// bits. Zero-probability entries contribute 0·log2(0) = 0 and are skipped.
func ShannonBits(probabilities []float64) float64 {
	entropy := 0.0
	for _, p := range probabilities {
		if p > 0 {
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// Log2Factorial returns log2(n!) without materializing the factorial, so it
// stays finite for orders where n! overflows.
func Log2Factorial(n int) float64 {
	sum := 0.0
	for i := 2; i <= n; i++ {
		sum += math.Log2(float64(i))
	}
	return sum
}
