// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing univariate time
// series data, along with missing-value handling and basic transformations.
// Position in the series encodes time order; missing observations are marked
// with NaN.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, math.NaN(), 103, 108, 110}
//	series := timeseries.New(values)
//
// # Missing Values
//
// Locate and trim missing boundary runs:
//
//	first := series.FirstNotNaN() // Len() when all values are missing
//	last := series.LastNotNaN()   // -1 when all values are missing
//
//	lead := series.TrimLeading()   // starts at the first known value
//	trail := series.TrimTrailing() // the slice [0, LastNotNaN()) — the
//	                               // boundary element itself is excluded
//
// Impute interior missing values:
//
//	filled, err := series.Fill("linear")  // linear interpolation
//	filled, err = series.Fill("nearest")  // nearest known value
//
// The method names "next" and "previous" are declared but not implemented;
// they always fail with ErrFillNotImplemented. Unknown names fail with
// ErrUnsupportedFillMethod.
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// Statistics assume a clean series; run the trims and fills first when the
// data may contain missing values.
//
// # Transformations
//
// Transform the time series:
//
//	// Differencing
//	diff := series.Diff()    // First difference
//	diff2 := series.DiffN(2) // Second difference
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	// Get a slice
//	subset := series.Slice(10, 50)
//
//	// Create lagged version
//	lagged := series.Lag(1)
//
//	// Copy the series
//	copy := series.Copy()
//
// Every transform returns a new Series; inputs are never mutated, and a
// Series may be shared across goroutines as long as no caller mutates it.
package timeseries
