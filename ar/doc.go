// Package ar implements autoregressive AR(p) models for univariate time
// series.
//
// An AR(p) model regresses each observation on its own p previous values in
// mean-adjusted form. The package estimates coefficients, produces iterated
// forecasts, and selects the order automatically by information criterion.
// Input series must be free of missing values; see the timeseries package
// for trimming and imputation, and the preprocess package for the composed
// handoff.
//
// # Basic Usage
//
// Fit a model of a fixed order:
//
//	model := ar.New(2)
//	if err := model.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("coefficients: %v\n", model.Coeffs)
//	forecasts, _ := model.Predict(10)
//
// # Estimation Methods
//
// Two estimation methods are available, selected by name on Model.Method:
//
//	model := ar.New(2)
//	model.Method = ar.MethodOLS // conditional least squares
//	err := model.Fit(series)
//
// "yule-walker" (the default) solves the Yule-Walker equations on the sample
// autocorrelations with the Levinson-Durbin recursion. "ols" regresses the
// mean-adjusted series on its lag design matrix by QR-based least squares.
// Both agree closely on well-behaved data. Unknown names fail with
// ErrUnsupportedMethod.
//
// # Order Selection
//
// Search orders 0..MaxLag and keep the best by information criterion:
//
//	result, err := ar.Select(series, ar.DefaultSelectConfig())
//	fmt.Printf("AR(%d), AICc=%.2f, %d models evaluated\n",
//	    result.Order, result.AICc, result.ModelsEvaluated)
//
// ar.Fit is the one-call form used by the preprocess package's handoff:
//
//	model, err := ar.Fit(series, 8) // best order in 0..8 by AICc
//
// # Diagnostics
//
// A fitted model exposes residuals and a summary embedding a Ljung-Box test:
//
//	summary := model.Summary()
//	if summary.LjungBox != nil && summary.LjungBox.PValue > 0.05 {
//	    // residuals look like white noise
//	}
package ar
