// Package stats provides autocorrelation estimators and residual diagnostics
// for univariate time series.
package stats

import (
	"math"

	"github.com/sartorproj/gotsprep/timeseries"
	"gonum.org/v1/gonum/stat"
)

// Autocorr computes the sample autocorrelation of the series at lags
// 1..numLags. For each lag k it returns the Pearson correlation between the
// shifted slice Values[k:] and the unshifted slice Values[:n-k], each slice
// centered on its own mean. This is not the textbook estimator: ACF centers
// every term on the whole-series mean and divides by the whole-series
// variance, so the two disagree on short series.
//
// The result always has length numLags. A zero-variance slice leaves the
// correlation undefined and the entry is NaN; so is every entry whose lag is
// at or beyond the series length. Callers that need finite output must keep
// numLags below the series length.
func Autocorr(series *timeseries.Series, numLags int) []float64 {
	if numLags < 0 {
		return nil
	}
	n := series.Len()
	out := make([]float64, numLags)
	for k := 1; k <= numLags; k++ {
		if k >= n {
			out[k-1] = math.NaN()
			continue
		}
		out[k-1] = stat.Correlation(series.Values[k:], series.Values[:n-k], nil)
	}
	return out
}

// ACF computes the textbook autocorrelation function for lags 0 to maxLag:
// every term is centered on the whole-series mean and the lag-0 sum of
// squares is the fixed denominator, so the result at lag 0 is exactly 1.
// maxLag is clamped to the series length minus one. Returns nil for a
// zero-variance series.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := series.Mean()
	variance := 0.0
	for _, v := range series.Values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}

// PACF computes the partial autocorrelation function for lags 0 to maxLag
// using the Durbin-Levinson recursion on the ACF. The value at lag 0 is
// always 1. Returns nil when maxLag < 1 or the series has zero variance.
func PACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil
	}

	acf := ACF(series, maxLag)
	if acf == nil {
		return nil
	}

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0

	phi := make([][]float64, maxLag+1)
	for i := range phi {
		phi[i] = make([]float64, maxLag+1)
	}

	phi[1][1] = acf[1]
	pacf[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num := acf[k]
		den := 1.0
		for j := 1; j < k; j++ {
			num -= phi[k-1][j] * acf[k-j]
			den -= phi[k-1][j] * acf[j]
		}

		if den == 0 {
			pacf[k] = 0
			continue
		}

		phi[k][k] = num / den
		pacf[k] = phi[k][k]

		for j := 1; j < k; j++ {
			phi[k][j] = phi[k-1][j] - phi[k][k]*phi[k-1][k-j]
		}
	}

	return pacf
}

// ACFResult holds an ACF estimate together with its confidence bounds.
type ACFResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64 // 95% confidence bounds (±1.96/sqrt(n))
}

// ACFWithConfidence computes the ACF along with white-noise confidence bounds.
func ACFWithConfidence(series *timeseries.Series, maxLag int) *ACFResult {
	acf := ACF(series, maxLag)
	if acf == nil {
		return nil
	}

	lags := make([]int, len(acf))
	for i := range lags {
		lags[i] = i
	}

	return &ACFResult{
		Lags:       lags,
		Values:     acf,
		ConfBounds: 1.96 / math.Sqrt(float64(series.Len())),
	}
}

// PACFResult holds a PACF estimate together with its confidence bounds.
type PACFResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64
}

// PACFWithConfidence computes the PACF along with white-noise confidence bounds.
func PACFWithConfidence(series *timeseries.Series, maxLag int) *PACFResult {
	pacf := PACF(series, maxLag)
	if pacf == nil {
		return nil
	}

	lags := make([]int, len(pacf))
	for i := range lags {
		lags[i] = i
	}

	return &PACFResult{
		Lags:       lags,
		Values:     pacf,
		ConfBounds: 1.96 / math.Sqrt(float64(series.Len())),
	}
}

// SignificantLags returns the lags (excluding lag 0) whose values exceed the
// confidence bound in absolute value.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}
