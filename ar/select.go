package ar

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gotsprep/timeseries"
)

// Criterion names accepted by SelectConfig.Criterion.
const (
	CriterionAIC  = "aic"
	CriterionAICc = "aicc"
	CriterionBIC  = "bic"
)

// ErrUnsupportedCriterion indicates an unrecognized information criterion name.
var ErrUnsupportedCriterion = errors.New("unsupported information criterion")

// SelectConfig holds configuration for automatic order selection.
type SelectConfig struct {
	MaxLag    int    // maximum AR order to consider (default: 5)
	Criterion string // information criterion: "aicc" (default), "aic", or "bic"
	Method    string // estimation method for every candidate (default: yule-walker)
}

// DefaultSelectConfig returns the default selection configuration.
func DefaultSelectConfig() *SelectConfig {
	return &SelectConfig{
		MaxLag:    5,
		Criterion: CriterionAICc,
		Method:    MethodYuleWalker,
	}
}

// Result represents the outcome of an order search.
type Result struct {
	Model *Model

	// Best order found
	Order int

	// Model metrics
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	Criterion float64

	// Search information
	ModelsEvaluated int
}

// Select fits AR(p) candidates for every order p in 0..cfg.MaxLag and keeps
// the one with the lowest information criterion. Candidates that fail to fit
// are skipped; an error is returned only when no candidate fits at all, or
// when the criterion name is not recognized.
func Select(series *timeseries.Series, cfg *SelectConfig) (*Result, error) {
	if cfg == nil {
		cfg = DefaultSelectConfig()
	}

	criterion := cfg.Criterion
	if criterion == "" {
		criterion = CriterionAICc
	}
	switch criterion {
	case CriterionAIC, CriterionAICc, CriterionBIC:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCriterion, cfg.Criterion)
	}

	best := &Result{Criterion: math.Inf(1)}
	evaluated := 0

	for p := 0; p <= cfg.MaxLag; p++ {
		model := New(p)
		model.Method = cfg.Method
		if err := model.Fit(series); err != nil {
			continue
		}
		evaluated++

		value := criterionValue(model, criterion)
		if value < best.Criterion {
			best = &Result{
				Model:     model,
				Order:     p,
				AIC:       model.AIC,
				AICc:      model.AICc,
				BIC:       model.BIC,
				LogLik:    model.LogLik,
				Criterion: value,
			}
		}
	}

	if best.Model == nil {
		return nil, errors.New("no candidate order could be fitted")
	}
	best.ModelsEvaluated = evaluated
	return best, nil
}

// Fit selects and fits an AR model considering orders up to maxLag, using
// the default criterion and estimation method. It is the entry point for
// callers handing off a preprocessed series; the series is used as given,
// without any missing-value inspection.
func Fit(series *timeseries.Series, maxLag int) (*Model, error) {
	cfg := DefaultSelectConfig()
	cfg.MaxLag = maxLag

	result, err := Select(series, cfg)
	if err != nil {
		return nil, err
	}
	return result.Model, nil
}

func criterionValue(model *Model, criterion string) float64 {
	switch criterion {
	case CriterionAIC:
		return model.AIC
	case CriterionBIC:
		return model.BIC
	default:
		return model.AICc
	}
}
