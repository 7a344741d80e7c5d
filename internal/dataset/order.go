package dataset

import (
	"math"
	"sort"
)

// SortData returns an ascending copy of the dataset.
func (a *Analyzer) SortData() []float64 {
	sorted := a.Data()
	sort.Float64s(sorted)
	return sorted
}

// Percentile returns the p-th percentile, 0 <= p <= 100, interpolating
// linearly between the two closest ranks.
func (a *Analyzer) Percentile(p float64) Value {
	if math.IsNaN(p) || p < 0 || p > 100 || len(a.data) == 0 {
		return None()
	}
	return Some(percentileSorted(a.SortData(), p))
}

func percentileSorted(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Quartiles returns the 25th, 50th and 75th percentiles.
func (a *Analyzer) Quartiles() (q1, q2, q3 Value) {
	if len(a.data) == 0 {
		return None(), None(), None()
	}
	sorted := a.SortData()
	return Some(percentileSorted(sorted, 25)),
		Some(percentileSorted(sorted, 50)),
		Some(percentileSorted(sorted, 75))
}

// IQR returns Q3 - Q1.
func (a *Analyzer) IQR() Value {
	q1, _, q3 := a.Quartiles()
	lo, ok := q1.Get()
	if !ok {
		return None()
	}
	return Some(q3.Or(0) - lo)
}

// RemoveOutliers drops values outside [Q1 - factor*IQR, Q3 + factor*IQR],
// keeping the survivors in their original order. It returns the number of
// values removed.
func (a *Analyzer) RemoveOutliers(factor float64) int {
	if len(a.data) == 0 {
		return 0
	}

	q1, _, q3 := a.Quartiles()
	lo, hi := q1.Or(0), q3.Or(0)
	iqr := hi - lo
	lower := lo - factor*iqr
	upper := hi + factor*iqr

	kept := a.data[:0]
	for _, v := range a.data {
		if v >= lower && v <= upper {
			kept = append(kept, v)
		}
	}
	removed := len(a.data) - len(kept)
	a.data = kept
	return removed
}
