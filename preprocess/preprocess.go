// Package preprocess composes the preprocessing stages into a pipeline and
// hands cleaned series to the autoregression fitter.
package preprocess

import (
	"github.com/sartorproj/gotsprep/ar"
	"github.com/sartorproj/gotsprep/timeseries"
)

// Pipeline configures which preprocessing stages run and in what form.
// Stages apply in fixed order: trailing trim, leading trim, then the fill.
type Pipeline struct {
	TrimLeading  bool   // strip the leading missing run
	TrimTrailing bool   // strip from the last known value onward
	FillMethod   string // fill method name for the imputation stage; empty skips it
}

// NewPipeline returns a pipeline with both trims enabled and linear
// interpolation as the fill method.
func NewPipeline() *Pipeline {
	return &Pipeline{
		TrimLeading:  true,
		TrimTrailing: true,
		FillMethod:   "linear",
	}
}

// Process runs the enabled stages over the series and returns the result as a
// new series. A NaN-free result is not guaranteed for every configuration:
// with TrimLeading off, a missing index 0 survives the nearest fill, and with
// TrimTrailing off, a missing tail survives the linear fill. Callers needing
// a clean series keep the default configuration or check HasMissing on the
// result.
func (p *Pipeline) Process(series *timeseries.Series) (*timeseries.Series, error) {
	out := series.Copy()
	if p.TrimTrailing {
		out = out.TrimTrailing()
	}
	if p.TrimLeading {
		out = out.TrimLeading()
	}
	if p.FillMethod == "" {
		return out, nil
	}
	return out.Fill(p.FillMethod)
}

// AR hands the series and maximum lag to the autoregression fitter unchanged
// and returns the fitted model. No validation happens here: the series is
// expected to be free of missing values, and any precondition checking
// belongs to the fitter.
func AR(series *timeseries.Series, maxLag int) (*ar.Model, error) {
	return ar.Fit(series, maxLag)
}
