package stats

import (
	"math"

	"gonum.org/v1/gonum/spatial/vptree"
)

// Neighbor counting for embedded time-series vectors. Two strategies compute
// the same quantity: a vantage-point tree for arbitrary metrics, and a
// specialized triangular scan for the Chebyshev metric that serves every
// embedding order in a single O(n²) pass.
//
// A vp-tree is used rather than a kd-tree because its pruning relies only on
// the triangle inequality, so Chebyshev and Manhattan metrics remain exact.

// vpPoint adapts an embedded row to the vptree element interface under a
// configurable metric.
type vpPoint struct {
	vec  []float64
	dist DistanceFunction
}

func (p vpPoint) Distance(c vptree.Comparable) float64 {
	q := c.(vpPoint)
	return p.dist(p.vec, q.vec)
}

// RadiusCounts returns, for each row of points, the number of rows whose
// distance to it under the metric is within radius. The count includes the
// query row itself; callers subtract the self-match where their semantics
// exclude it.
func RadiusCounts(points [][]float64, radius float64, metric DistanceMetric) ([]int, error) {
	dist := metric.Func()

	elems := make([]vptree.Comparable, len(points))
	for i, p := range points {
		elems[i] = vpPoint{vec: p, dist: dist}
	}

	tree, err := vptree.New(elems, 0, nil)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(points))
	for i, p := range points {
		keeper := vptree.NewDistKeeper(radius)
		tree.NearestSet(keeper, vpPoint{vec: p, dist: dist})

		n := 0
		for _, cd := range keeper.Heap {
			if cd.Comparable != nil {
				n++
			}
		}
		counts[i] = n
	}

	return counts, nil
}

// ChebyshevMatchCounts counts, over all ordered index pairs i < j of x, the
// template matches |x[i+t]-x[j+t]| < radius for t = 0..k simultaneously for
// every template length k+1 up to maxOrder. It tracks the running length of
// the match streak per pair diagonal, so one triangular pass yields the
// counts a spatial index would need one query sweep per order for.
//
// a[k] counts matching templates of length k+1; b[k] counts the same with the
// second template start restricted to the first len(x)-1 positions. Sample
// entropy derives its aligned template counts from b via an index shift.
func ChebyshevMatchCounts(x []float64, maxOrder int, radius float64) (a, b []float64) {
	n := len(x)
	n1 := n - 1

	run := make([]int, n)
	prevRun := make([]int, n)
	a = make([]float64, maxOrder)
	b = make([]float64, maxOrder)

	for i := 0; i < n1; i++ {
		nj := n1 - i

		for jj := 0; jj < nj; jj++ {
			j := jj + i + 1
			if math.Abs(x[j]-x[i]) < radius {
				// Streak extends: every template length up to the
				// streak length (capped at maxOrder) gains a match
				// ending at (i, j).
				run[jj] = prevRun[jj] + 1
				m1 := maxOrder
				if run[jj] < m1 {
					m1 = run[jj]
				}
				for m := 0; m < m1; m++ {
					a[m]++
					if j < n1 {
						b[m]++
					}
				}
			} else {
				run[jj] = 0
			}
		}

		copy(prevRun[:nj], run[:nj])
	}

	return a, b
}
