package stats

import "math"

// InformationCriteria bundles the criteria used to compare fitted models.
type InformationCriteria struct {
	AIC    float64
	AICc   float64
	BIC    float64
	LogLik float64
}

// CalculateIC computes AIC, AICc, and BIC from a model's log-likelihood.
// nObs is the number of observations and nParams the number of estimated
// parameters.
func CalculateIC(logLik float64, nObs, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	aic := -2*logLik + 2*k

	return &InformationCriteria{
		AIC:    aic,
		AICc:   AICc(aic, nObs, nParams),
		BIC:    -2*logLik + k*math.Log(n),
		LogLik: logLik,
	}
}

// AICc corrects AIC for small sample sizes:
// AICc = AIC + 2k(k+1)/(n-k-1). It is +Inf when n <= k+1, where the
// correction is undefined.
func AICc(aic float64, nObs, nParams int) float64 {
	k := float64(nParams)
	n := float64(nObs)

	if n-k-1 <= 0 {
		return math.Inf(1)
	}
	return aic + 2*k*(k+1)/(n-k-1)
}
