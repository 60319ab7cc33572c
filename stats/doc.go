// Package stats provides autocorrelation estimators and residual diagnostics
// for univariate time series.
//
// # Autocorrelation
//
// Two estimators are available, and they are not interchangeable:
//
//	// Lag-wise Pearson correlation: each lag correlates the shifted and
//	// unshifted slices, each centered on its own mean. One value per lag,
//	// lags 1..numLags.
//	r := stats.Autocorr(series, 10)
//
//	// Textbook ACF: whole-series mean, whole-series variance as the fixed
//	// denominator. Values for lags 0..maxLag, with acf[0] == 1.
//	acf := stats.ACF(series, 10)
//
// Autocorr propagates NaN silently for degenerate lags (constant slices, or
// lags at or beyond the series length) instead of failing.
//
// Partial autocorrelations and order diagnostics:
//
//	pacf := stats.PACF(series, 20)
//
//	acfResult := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(acfResult.Values, acfResult.ConfBounds)
//
// # Residual Diagnostics
//
// Test fitted-model residuals for leftover autocorrelation:
//
//	lb := stats.LjungBox(residuals, 10, p)
//	if lb.PValue > 0.05 {
//	    // Residuals look like white noise (good)
//	}
//
//	bp := stats.BoxPierce(residuals, 10, p)
//	dw := stats.DurbinWatson(residuals.Values)
//
// P-values come from the chi-squared distribution via gonum's distuv.
//
// # Model Comparison
//
// Information criteria from a Gaussian log-likelihood:
//
//	ic := stats.CalculateIC(logLik, nObs, nParams)
//	// ic.AIC, ic.AICc, ic.BIC
//
// All functions assume a series without missing values; run the timeseries
// package's trims and fills first.
package stats
