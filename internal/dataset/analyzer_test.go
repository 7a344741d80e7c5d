package dataset_test

import (
	"math"

	"github.com/containerd/errdefs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/datastat/internal/dataset"
)

// haveValue matches a present dataset.Value equal to want within 1e-9.
func haveValue(want float64) OmegaMatcher {
	return WithTransform(func(v dataset.Value) float64 {
		got, ok := v.Get()
		if !ok {
			return math.NaN()
		}
		return got
	}, BeNumerically("~", want, 1e-9))
}

func beAbsent() OmegaMatcher {
	return WithTransform(func(v dataset.Value) bool { return v.Valid() }, BeFalse())
}

var _ = Describe("Analyzer", func() {
	var a *dataset.Analyzer

	BeforeEach(func() {
		a = dataset.New(1, 2, 3, 4, 5)
	})

	Describe("construction and mutation", func() {
		It("keeps the initial values", func() {
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5}))
		})

		It("starts empty without initial values", func() {
			Expect(dataset.New().Data()).To(BeEmpty())
			Expect(dataset.New().Len()).To(Equal(0))
		})

		It("does not alias the caller's slice", func() {
			seed := []float64{3, 1, 2}
			b := dataset.New(seed...)
			seed[0] = 99
			Expect(b.Data()).To(Equal([]float64{3, 1, 2}))

			out := b.Data()
			out[1] = 42
			Expect(b.Data()).To(Equal([]float64{3, 1, 2}))
		})

		It("appends new items after existing ones", func() {
			a.AddData(6, 7)
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5, 6, 7}))
		})

		It("appends a dynamically typed sequence", func() {
			Expect(a.AddValues([]any{6, 7.5, int64(8)})).To(Succeed())
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5, 6, 7.5, 8}))

			Expect(a.AddValues([2]uint16{9, 10})).To(Succeed())
			Expect(a.Len()).To(Equal(10))
		})

		It("rejects a value that is not a sequence", func() {
			err := a.AddValues("invalid data")
			Expect(err).To(MatchError("data must be a sequence"))
			Expect(errdefs.IsInvalidArgument(err)).To(BeTrue())
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5}))
		})

		It("rejects scalars, maps and nil", func() {
			for _, in := range []any{42, 3.5, map[string]float64{"a": 1}, nil} {
				err := a.AddValues(in)
				Expect(err).To(MatchError(dataset.ErrNotSequence), "input %v", in)
			}
			Expect(a.Len()).To(Equal(5))
		})

		It("rejects bytes as text", func() {
			for _, in := range []any{[]byte("12"), [2]byte{'1', '2'}} {
				err := a.AddValues(in)
				Expect(err).To(MatchError(dataset.ErrNotSequence), "input %v", in)
				Expect(errdefs.IsInvalidArgument(err)).To(BeTrue())
			}
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5}))
		})

		It("rejects sequences with non-numeric or non-finite elements", func() {
			for _, in := range []any{
				[]any{1, "two", 3},
				[]float64{1, math.NaN()},
				[]float64{math.Inf(-1)},
				[]any{1, nil},
			} {
				err := a.AddValues(in)
				Expect(err).To(MatchError(dataset.ErrNotNumeric), "input %v", in)
				Expect(errdefs.IsInvalidArgument(err)).To(BeTrue())
			}
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5}))
		})

		It("removes all values on clear", func() {
			a.ClearData()
			Expect(a.Data()).To(BeEmpty())
		})

		It("returns a sorted copy", func() {
			a.AddData(0, -1)
			Expect(a.SortData()).To(Equal([]float64{-1, 0, 1, 2, 3, 4, 5}))
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5, 0, -1}))
		})

		It("sorts idempotently", func() {
			a.AddData(0, -1, 3)
			once := a.SortData()
			Expect(dataset.New(once...).SortData()).To(Equal(once))
		})
	})

	Describe("central tendency", func() {
		It("computes the mean", func() {
			Expect(a.Mean()).To(haveValue(3))
		})

		It("has no mean when empty", func() {
			a.ClearData()
			Expect(a.Mean()).To(beAbsent())
		})

		It("agrees with sum over count", func() {
			for _, seed := range [][]float64{{7}, {-3, 4, 10}, {2, 2, 2, 9}, {1, 100, -50, 3, 8, 0}} {
				b := dataset.New(seed...)
				Expect(b.Mean()).To(haveValue(b.Sum() / float64(b.Len())))
			}
		})

		It("takes the middle element for odd counts", func() {
			Expect(a.Median()).To(haveValue(3))
		})

		It("averages the middle pair for even counts", func() {
			a.AddData(6)
			Expect(a.Median()).To(haveValue(3.5))
		})

		It("sorts before taking the median", func() {
			Expect(dataset.New(9, 1, 5).Median()).To(haveValue(5))
		})

		It("has no median when empty", func() {
			Expect(dataset.New().Median()).To(beAbsent())
		})

		It("finds a single mode", func() {
			a.AddData(1, 1)
			Expect(a.Mode()).To(Equal([]float64{1}))
		})

		It("reports every tied mode in order of first appearance", func() {
			a.ClearData()
			a.AddData(1, 2, 2, 3, 3)
			Expect(a.Mode()).To(Equal([]float64{2, 3}))

			Expect(dataset.New(3, 1, 3, 1).Mode()).To(Equal([]float64{3, 1}))
		})

		It("returns an empty mode for an empty dataset", func() {
			m := dataset.New().Mode()
			Expect(m).NotTo(BeNil())
			Expect(m).To(BeEmpty())
		})
	})

	Describe("dispersion", func() {
		It("computes the variance", func() {
			Expect(a.Variance()).To(haveValue(2))
		})

		It("computes the population variance of uneven data", func() {
			Expect(dataset.New(-3, 4, 10).Variance()).To(haveValue(254.0 / 9))
			Expect(dataset.New(10, 10, 11, 12, 12, 13, 12, 100).Variance()).To(haveValue(859))
			Expect(dataset.New(10, 10, 11, 12, 12, 13, 12, 100).StandardDeviation()).To(haveValue(math.Sqrt(859)))
		})

		It("gives a single value zero variance", func() {
			Expect(dataset.New(42).Variance()).To(haveValue(0))
			Expect(dataset.New(42).StandardDeviation()).To(haveValue(0))
		})

		It("has no variance when empty", func() {
			Expect(dataset.New().Variance()).To(beAbsent())
		})

		It("takes the square root for the standard deviation", func() {
			Expect(a.StandardDeviation()).To(haveValue(math.Sqrt2))
		})

		It("has no standard deviation when empty", func() {
			a.ClearData()
			Expect(a.StandardDeviation()).To(beAbsent())
		})

		It("computes the coefficient of variation", func() {
			Expect(a.CoefficientOfVariation()).To(BeNumerically("~", math.Sqrt2/3*100, 1e-9))
		})

		It("yields NaN for the coefficient of variation when empty", func() {
			a.ClearData()
			Expect(math.IsNaN(a.CoefficientOfVariation())).To(BeTrue())
		})
	})

	Describe("extremes and normalization", func() {
		It("finds the minimum and maximum", func() {
			Expect(a.Min()).To(haveValue(1))
			Expect(a.Max()).To(haveValue(5))

			b := dataset.New(4, -7.5, 12, 0)
			Expect(b.Min()).To(haveValue(-7.5))
			Expect(b.Max()).To(haveValue(12))
			Expect(b.Sum()).To(Equal(8.5))
			Expect(b.Product()).To(BeZero())
		})

		It("has no extremes when empty", func() {
			a.ClearData()
			Expect(a.Min()).To(beAbsent())
			Expect(a.Max()).To(beAbsent())
		})

		It("scales into [0, 1]", func() {
			Expect(a.Normalize()).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
		})

		It("maps a constant dataset to zeros", func() {
			a.ClearData()
			a.AddData(5, 5, 5)
			Expect(a.Normalize()).To(Equal([]float64{0, 0, 0}))
		})

		It("normalizes an empty dataset to an empty slice", func() {
			a.ClearData()
			Expect(a.Normalize()).To(BeEmpty())
		})
	})

	Describe("percentiles and aggregates", func() {
		It("computes the first quartile", func() {
			Expect(a.Percentile(25)).To(haveValue(2))
		})

		It("returns the extremes at 0 and 100", func() {
			Expect(a.Percentile(0)).To(haveValue(1))
			Expect(a.Percentile(100)).To(haveValue(5))
		})

		It("interpolates between ranks", func() {
			Expect(dataset.New(10, 20).Percentile(30)).To(haveValue(13))
		})

		It("rejects percentiles outside [0, 100]", func() {
			Expect(a.Percentile(-5)).To(beAbsent())
			Expect(a.Percentile(105)).To(beAbsent())
			Expect(a.Percentile(math.NaN())).To(beAbsent())
		})

		It("has no percentile when empty", func() {
			a.ClearData()
			Expect(a.Percentile(50)).To(beAbsent())
		})

		It("exposes quartiles and the IQR", func() {
			q1, q2, q3 := a.Quartiles()
			Expect(q1).To(haveValue(2))
			Expect(q2).To(haveValue(3))
			Expect(q3).To(haveValue(4))
			Expect(a.IQR()).To(haveValue(2))
			Expect(dataset.New().IQR()).To(beAbsent())
		})

		It("sums and multiplies", func() {
			Expect(a.Sum()).To(Equal(15.0))
			Expect(a.Product()).To(Equal(120.0))
			Expect(a.Range()).To(Equal(4.0))
		})

		It("uses identities on an empty dataset", func() {
			a.ClearData()
			Expect(a.Sum()).To(Equal(0.0))
			Expect(a.Product()).To(Equal(1.0))
			Expect(a.Range()).To(Equal(0.0))
		})
	})

	Describe("outliers", func() {
		It("removes values outside the default fences", func() {
			a.AddData(100, -100)
			Expect(a.RemoveOutliers(dataset.DefaultOutlierFactor)).To(Equal(2))
			Expect(a.Data()).To(Equal([]float64{1, 2, 3, 4, 5}))
		})

		It("honors a custom factor", func() {
			b := dataset.New(10, 10, 11, 12, 12, 13, 12, 100)
			Expect(b.RemoveOutliers(1.0)).To(Equal(1))
			Expect(b.Data()).To(Equal([]float64{10, 10, 11, 12, 12, 13, 12}))
		})

		It("keeps values on the fence", func() {
			// Q1 = 2, Q3 = 4, IQR = 2; fences at 0 and 6 with factor 1.
			b := dataset.New(0, 2, 3, 4, 6, 2, 4)
			b.RemoveOutliers(1.0)
			Expect(b.Len()).To(Equal(7))
		})

		It("is a no-op when empty", func() {
			a.ClearData()
			Expect(func() { a.RemoveOutliers(dataset.DefaultOutlierFactor) }).NotTo(Panic())
			Expect(a.Data()).To(BeEmpty())
		})
	})

	Describe("correlation", func() {
		It("finds perfect positive correlation", func() {
			Expect(a.Correlation([]float64{2, 4, 6, 8, 10})).To(haveValue(1))
		})

		It("finds perfect negative correlation", func() {
			Expect(a.Correlation([]float64{5, 4, 3, 2, 1})).To(haveValue(-1))
		})

		It("finds partial correlation", func() {
			Expect(a.Correlation([]float64{1, 3, 2, 5, 4})).To(haveValue(0.8))
			Expect(a.Correlation([]float64{1, 4, 9, 16, 25})).To(haveValue(0.9811049102515929))
		})

		It("has no correlation for a single pair", func() {
			Expect(dataset.New(1).Correlation([]float64{2})).To(beAbsent())
		})

		It("has no correlation for different lengths", func() {
			Expect(a.Correlation([]float64{1, 2, 3})).To(beAbsent())
		})

		It("has no correlation for empty input", func() {
			a.ClearData()
			Expect(a.Correlation([]float64{})).To(beAbsent())
		})

		It("has no correlation without variation", func() {
			b := dataset.New(5, 5, 5, 5)
			Expect(b.Correlation([]float64{3, 3, 3, 3})).To(beAbsent())
			Expect(a.Correlation([]float64{3, 3, 3, 3, 3})).To(beAbsent())
		})
	})
})
