// Package ar implements autoregressive models for univariate time series.
package ar

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gotsprep/stats"
	"github.com/sartorproj/gotsprep/timeseries"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Estimation method names accepted by Model.Method.
const (
	MethodYuleWalker = "yule-walker"
	MethodOLS        = "ols"
)

// ErrUnsupportedMethod indicates an unrecognized estimation method name.
var ErrUnsupportedMethod = errors.New("unsupported estimation method")

// Model represents an AR(p) model in mean-adjusted form:
//
//	x_t - μ = φ₁(x_{t-1} - μ) + ... + φ_p(x_{t-p} - μ) + ε_t
//
// Coeffs[i] is the coefficient of the value i+1 steps back. The model makes
// no attempt to detect missing values in its input; callers hand it a series
// already cleaned by the timeseries package.
type Model struct {
	Order     int       // p, the number of autoregressive lags
	Method    string    // estimation method; empty selects MethodYuleWalker
	Coeffs    []float64 // AR coefficients φ₁..φ_p
	Mean      float64   // sample mean μ of the fitted series
	Intercept float64   // constant-form intercept c = μ(1 - Σφᵢ)
	Variance  float64   // innovation variance estimate
	AIC       float64
	AICc      float64 // corrected AIC for small sample sizes
	BIC       float64
	LogLik    float64

	fitted     bool
	data       *timeseries.Series
	residuals  []float64
	fittedVals []float64
}

// New creates an AR model of the given order using the default estimation
// method.
func New(p int) *Model {
	return &Model{
		Order:  p,
		Method: MethodYuleWalker,
		Coeffs: make([]float64, p),
	}
}

// Fit estimates the model parameters from the series using the configured
// method. The series must be long enough to identify the order: fewer than
// Order+10 observations fail.
func (m *Model) Fit(series *timeseries.Series) error {
	if m.Order < 0 {
		return errors.New("order must be non-negative")
	}
	if series.Len() < m.Order+10 {
		return errors.New("insufficient data points for the specified order")
	}

	m.data = series
	m.Mean = series.Mean()

	method := m.Method
	if method == "" {
		method = MethodYuleWalker
	}

	var err error
	switch method {
	case MethodYuleWalker:
		err = m.fitYuleWalker()
	case MethodOLS:
		err = m.fitOLS()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, m.Method)
	}
	if err != nil {
		return err
	}

	m.Intercept = m.Mean * (1 - floats.Sum(m.Coeffs))

	m.computeDiagnostics()
	m.fitted = true
	return nil
}

// fitYuleWalker solves the Yule-Walker equations on the sample
// autocorrelations with the Levinson-Durbin recursion.
func (m *Model) fitYuleWalker() error {
	if m.Order == 0 {
		m.Coeffs = []float64{}
		return nil
	}

	acf := stats.ACF(m.data, m.Order)
	if acf == nil {
		return errors.New("series has zero variance")
	}

	phi := levinsonDurbin(acf, m.Order)
	if phi == nil {
		return errors.New("could not solve yule-walker equations")
	}
	m.Coeffs = phi
	return nil
}

// fitOLS estimates the coefficients by conditional least squares: the
// mean-adjusted series regressed on its own p lags, solved through a QR
// factorization of the lag design matrix.
func (m *Model) fitOLS() error {
	p := m.Order
	if p == 0 {
		m.Coeffs = []float64{}
		return nil
	}

	x := m.data.Values
	n := len(x)
	rows := n - p

	design := mat.NewDense(rows, p, nil)
	response := mat.NewVecDense(rows, nil)
	for t := p; t < n; t++ {
		for i := 1; i <= p; i++ {
			design.Set(t-p, i-1, x[t-i]-m.Mean)
		}
		response.SetVec(t-p, x[t]-m.Mean)
	}

	var qr mat.QR
	qr.Factorize(design)

	coef := mat.NewVecDense(p, nil)
	if err := qr.SolveVecTo(coef, false, response); err != nil {
		return fmt.Errorf("least squares solve: %w", err)
	}

	m.Coeffs = make([]float64, p)
	for i := range m.Coeffs {
		m.Coeffs[i] = coef.AtVec(i)
	}
	return nil
}

// computeDiagnostics derives fitted values, residuals, the innovation
// variance, and the information criteria from the estimated coefficients.
// Positions before the first full lag window predict the mean.
func (m *Model) computeDiagnostics() {
	x := m.data.Values
	n := len(x)
	p := m.Order

	m.fittedVals = make([]float64, n)
	m.residuals = make([]float64, n)
	for t := 0; t < n; t++ {
		pred := m.Mean
		if t >= p {
			for i := 1; i <= p; i++ {
				pred += m.Coeffs[i-1] * (x[t-i] - m.Mean)
			}
		}
		m.fittedVals[t] = pred
		m.residuals[t] = x[t] - pred
	}

	conditional := m.residuals[p:]
	sse := floats.Dot(conditional, conditional)
	count := len(conditional)
	if count > p+1 {
		m.Variance = sse / float64(count-p-1)
	} else {
		m.Variance = sse / float64(count)
	}

	fullSSE := floats.Dot(m.residuals, m.residuals)
	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) -
			float64(n)/2*math.Log(m.Variance) -
			fullSSE/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}

	ic := stats.CalculateIC(m.LogLik, n, p+1)
	m.AIC = ic.AIC
	m.AICc = ic.AICc
	m.BIC = ic.BIC
}

// Predict generates forecasts for the specified number of steps ahead by
// iterating the fitted recursion, substituting earlier forecasts for unseen
// observations.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	if steps < 1 {
		return nil, errors.New("steps must be at least 1")
	}

	x := m.data.Values
	n := len(x)

	ext := make([]float64, n+steps)
	copy(ext, x)

	for h := 0; h < steps; h++ {
		t := n + h
		pred := m.Mean
		for i := 1; i <= m.Order; i++ {
			pred += m.Coeffs[i-1] * (ext[t-i] - m.Mean)
		}
		ext[t] = pred
	}

	return ext[n:], nil
}

// Residuals returns a copy of the model residuals.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// FittedValues returns a copy of the in-sample fitted values.
func (m *Model) FittedValues() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.fittedVals))
	copy(result, m.fittedVals)
	return result
}

// Summary describes a fitted model.
type Summary struct {
	Order     int
	Method    string
	Coeffs    []float64
	Mean      float64
	Intercept float64
	Variance  float64
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	NObs      int
	LjungBox  *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model, including a Ljung-Box test
// on the residuals. Returns nil before a successful Fit.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	residSeries := timeseries.New(m.residuals)
	lb := stats.LjungBox(residSeries, 10, m.Order)

	method := m.Method
	if method == "" {
		method = MethodYuleWalker
	}

	return &Summary{
		Order:     m.Order,
		Method:    method,
		Coeffs:    m.Coeffs,
		Mean:      m.Mean,
		Intercept: m.Intercept,
		Variance:  m.Variance,
		AIC:       m.AIC,
		AICc:      m.AICc,
		BIC:       m.BIC,
		LogLik:    m.LogLik,
		NObs:      m.data.Len(),
		LjungBox:  lb,
	}
}

// levinsonDurbin solves the Yule-Walker system for AR coefficients given
// autocorrelations acf[0..order], recursing on the prediction error of each
// successively larger order.
func levinsonDurbin(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	phi[0] = acf[1]
	if order == 1 {
		return phi
	}

	v := 1 - phi[0]*phi[0]
	for i := 1; i < order; i++ {
		lambda := acf[i+1]
		for j := 0; j < i; j++ {
			lambda -= phi[j] * acf[i-j]
		}
		lambda /= v

		next := make([]float64, i+1)
		for j := 0; j < i; j++ {
			next[j] = phi[j] - lambda*phi[i-1-j]
		}
		next[i] = lambda
		copy(phi, next)

		v *= 1 - lambda*lambda
		if v <= 0 {
			break
		}
	}

	return phi
}
