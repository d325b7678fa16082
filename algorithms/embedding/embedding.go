// Package embedding implements time-delay embedding of scalar sequences.
package embedding

import "fmt"

// RowCount returns the number of rows the embedded matrix of a sequence of
// length n has for the given order and delay. The result may be zero or
// negative when the sequence is too short.
func RowCount(n, order, delay int) int {
	return n - (order-1)*delay
}

// Matrix builds the time-delay embedded matrix of x:
//
//	row i = [x[i], x[i+delay], ..., x[i+(order-1)*delay]]
//
// with RowCount(len(x), order, delay) rows. The input is not modified and the
// returned rows do not alias it.
func Matrix(x []float64, order, delay int) ([][]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("embedding order must be >= 1, got %d", order)
	}
	if delay < 1 {
		return nil, fmt.Errorf("embedding delay must be >= 1, got %d", delay)
	}

	rows := RowCount(len(x), order, delay)
	if rows < 1 {
		return nil, fmt.Errorf("sequence of length %d is too short to embed with order %d and delay %d",
			len(x), order, delay)
	}

	matrix := make([][]float64, rows)
	for i := range matrix {
		row := make([]float64, order)
		for k := 0; k < order; k++ {
			row[k] = x[i+k*delay]
		}
		matrix[i] = row
	}

	return matrix, nil
}
