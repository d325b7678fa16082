package measures

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/signalkit/complexity/algorithms/common"
	"github.com/signalkit/complexity/algorithms/embedding"
)

// SVDEntropy computes the singular value decomposition entropy of x in bits.
//
// The sequence is delay-embedded with the given order and delay, the singular
// values of the embedded matrix are normalized to a probability distribution,
// and their Shannon entropy is returned. The measure indicates how many
// orthogonal components an adequate description of the embedded trajectory
// needs. If normalize is true the result is divided by log2(order), yielding
// a value in [0, 1].
func SVDEntropy(x []float64, order, delay int, normalize bool) (float64, error) {
	if order < 2 {
		return 0, fmt.Errorf("SVD entropy requires order >= 2, got %d", order)
	}

	matrix, err := embedding.Matrix(x, order, delay)
	if err != nil {
		return 0, err
	}
	if len(matrix) < 2 {
		return 0, fmt.Errorf("sequence of length %d embeds to a single row with order %d and delay %d; entropy is undefined",
			len(x), order, delay)
	}

	flat := make([]float64, 0, len(matrix)*order)
	for _, row := range matrix {
		flat = append(flat, row...)
	}
	dense := mat.NewDense(len(matrix), order, flat)

	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDNone); !ok {
		return 0, fmt.Errorf("singular value decomposition did not converge")
	}

	probabilities := common.NormalizeSum(svd.Values(nil))
	if probabilities == nil {
		return 0, fmt.Errorf("singular values sum to zero; sequence carries no signal")
	}

	entropy := common.ShannonBits(probabilities)
	if normalize {
		entropy /= math.Log2(float64(order))
	}

	return entropy, nil
}
