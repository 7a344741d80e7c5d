package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Correlation returns the Pearson correlation coefficient between the
// dataset and other. It is absent when the lengths differ, either side is
// empty, or either side has zero variance.
func (a *Analyzer) Correlation(other []float64) Value {
	n := len(a.data)
	if n == 0 || n != len(other) {
		return None()
	}
	if n == 1 {
		// a single pair has zero variance on both sides
		return None()
	}

	r := stat.Correlation(a.data, other, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return None()
	}
	return Some(r)
}
