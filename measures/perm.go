package measures

import (
	"fmt"
	"sort"

	"github.com/signalkit/complexity/algorithms/common"
	"github.com/signalkit/complexity/algorithms/embedding"
)

// PermEntropy computes the permutation entropy of x in bits.
//
// The sequence is delay-embedded with the given order and delay, each row is
// reduced to its rank pattern (the stable argsort of the row, so ties resolve
// to the earlier position reproducibly), and the Shannon entropy of the rank
// pattern distribution is returned. If normalize is true the result is
// divided by log2(order!), the entropy of the uniform distribution over all
// order! patterns, yielding a value in [0, 1].
//
// References:
// - Bandt, C., Pompe, B. (2002). "Permutation entropy: a natural complexity
//   measure for time series". Physical Review Letters 88.17.
func PermEntropy(x []float64, order, delay int, normalize bool) (float64, error) {
	if order < 2 {
		return 0, fmt.Errorf("permutation entropy requires order >= 2, got %d", order)
	}

	matrix, err := embedding.Matrix(x, order, delay)
	if err != nil {
		return 0, err
	}
	if len(matrix) < 2 {
		return 0, fmt.Errorf("sequence of length %d embeds to a single row with order %d and delay %d; entropy is undefined",
			len(x), order, delay)
	}

	// Collapse each rank pattern to a bijective integer: positional weights
	// order^k over the argsort indices.
	histogram := make(map[int]int)
	indices := make([]int, order)
	for _, row := range matrix {
		for k := range indices {
			indices[k] = k
		}
		sort.SliceStable(indices, func(a, b int) bool {
			return row[indices[a]] < row[indices[b]]
		})

		hash := 0
		weight := 1
		for k := 0; k < order; k++ {
			hash += indices[k] * weight
			weight *= order
		}
		histogram[hash]++
	}

	total := float64(len(matrix))
	probabilities := make([]float64, 0, len(histogram))
	for _, count := range histogram {
		probabilities = append(probabilities, float64(count)/total)
	}

	pe := common.ShannonBits(probabilities)
	if normalize {
		pe /= common.Log2Factorial(order)
	}

	return pe, nil
}
