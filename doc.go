// Package gotsprep provides preprocessing primitives and autoregressive
// modeling for univariate time series.
//
// GoTSPrep cleans ordered sequences of float64 values in which NaN marks a
// missing observation: it trims boundary runs of missing values, imputes
// interior gaps, estimates lag autocorrelations, and fits AR(p) models to the
// cleaned result. Position in the sequence encodes time order; there are no
// explicit timestamps.
//
// # Features
//
//   - Boundary trimming of leading and trailing missing runs
//   - Missing-value imputation (linear interpolation, nearest known value)
//   - Lag-wise autocorrelation and textbook ACF/PACF estimators
//   - AR(p) fitting by Yule-Walker or conditional least squares
//   - Automatic order selection using information criteria
//   - Residual diagnostics (Ljung-Box, Box-Pierce, Durbin-Watson)
//
// # Quick Start
//
// Clean a series and fit a model:
//
//	series := timeseries.New(values) // NaN marks missing observations
//	cleaned, _ := preprocess.NewPipeline().Process(series)
//	model, _ := preprocess.AR(cleaned, 8)
//	forecasts, _ := model.Predict(10)
//
// Or compose the stages directly:
//
//	trimmed := series.TrimTrailing().TrimLeading()
//	filled, _ := trimmed.Fill("linear")
//	r := stats.Autocorr(filled, 10)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Series type, boundary trimming, imputation
//   - stats: autocorrelation estimators and residual diagnostics
//   - ar: autoregressive models and order selection
//   - preprocess: pipeline composition and the fitter handoff
//
// # References
//
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
//   - Brockwell, P. J., & Davis, R. A. (2016). Introduction to Time Series and Forecasting
package gotsprep
