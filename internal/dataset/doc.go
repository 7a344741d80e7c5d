// Package dataset provides the descriptive-statistics engine over a single
// mutable sequence of real numbers.
//
// The package defines:
//
//   - [Analyzer]: owns the dataset and answers queries about it
//   - [Value]: optional numeric result; absent when a query is undefined
//
// # Results
//
// Queries that are well formed but undefined for the current data (mean of an
// empty dataset, a percentile outside [0, 100], correlation against a
// sequence of a different length) return [None] rather than an error:
//
//	a := dataset.New(1, 2, 3, 4, 5)
//	if m, ok := a.Mean().Get(); ok {
//	    fmt.Println(m)
//	}
//
// Only malformed input to [Analyzer.AddValues] is an error, and it satisfies
// errdefs.IsInvalidArgument.
//
// A few queries keep an identity value instead: Sum is 0, Product is 1 and
// Range is 0 on an empty dataset. CoefficientOfVariation is NaN there.
//
// # Thread Safety
//
// Analyzer instances are NOT thread-safe. Callers that share one across
// goroutines must serialize access themselves.
package dataset
