// Package preprocess composes the timeseries package's trimming and
// imputation stages into a configurable pipeline and provides the handoff
// from a cleaned series to the ar package's fitter.
//
// # Pipeline
//
// The default pipeline trims both boundaries and interpolates interior gaps:
//
//	p := preprocess.NewPipeline()
//	cleaned, err := p.Process(series)
//
// Stages run in fixed order: trailing trim, leading trim, fill. Each stage
// can be reconfigured or disabled:
//
//	p := preprocess.NewPipeline()
//	p.FillMethod = "nearest"
//	p.TrimTrailing = false
//
// With stages disabled the result may still contain missing values (a missing
// tail survives the linear fill, a missing index 0 survives the nearest
// fill); check HasMissing when that matters.
//
// # Model Fitting
//
// AR forwards a cleaned series and a maximum lag to the fitter, unchanged and
// unvalidated:
//
//	model, err := preprocess.AR(cleaned, 8)
//	forecasts, _ := model.Predict(10)
//
// The typical end-to-end flow is Process followed by AR.
package preprocess
