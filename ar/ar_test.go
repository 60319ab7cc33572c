package ar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sartorproj/gotsprep/timeseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simulateAR generates an AR process around a mean, driven by seeded
// Gaussian innovations so every run sees identical data.
func simulateAR(n int, mean float64, coeffs []float64, seed int64) *timeseries.Series {
	r := rand.New(rand.NewSource(seed))
	p := len(coeffs)

	values := make([]float64, n)
	for i := 0; i < p; i++ {
		values[i] = mean
	}
	for t := p; t < n; t++ {
		v := mean
		for i, phi := range coeffs {
			v += phi * (values[t-i-1] - mean)
		}
		values[t] = v + r.NormFloat64()*0.5
	}
	return timeseries.New(values)
}

func TestNew(t *testing.T) {
	model := New(3)

	assert.Equal(t, 3, model.Order)
	assert.Equal(t, MethodYuleWalker, model.Method)
	assert.Len(t, model.Coeffs, 3)
}

func TestFitYuleWalkerAR1(t *testing.T) {
	series := simulateAR(500, 100, []float64{0.7}, 1)

	model := New(1)
	require.NoError(t, model.Fit(series))

	assert.InDelta(t, 0.7, model.Coeffs[0], 0.2)
	assert.InDelta(t, 100, model.Mean, 0.5)
	assert.Greater(t, model.Variance, 0.0)
	assert.Len(t, model.Residuals(), 500)
}

func TestFitAR2Recovery(t *testing.T) {
	series := simulateAR(800, 50, []float64{0.6, -0.3}, 2)

	model := New(2)
	require.NoError(t, model.Fit(series))

	require.Len(t, model.Coeffs, 2)
	assert.InDelta(t, 0.6, model.Coeffs[0], 0.2)
	assert.InDelta(t, -0.3, model.Coeffs[1], 0.2)
}

func TestFitOLSAgreesWithYuleWalker(t *testing.T) {
	series := simulateAR(500, 100, []float64{0.7}, 1)

	yw := New(1)
	require.NoError(t, yw.Fit(series))

	ols := New(1)
	ols.Method = MethodOLS
	require.NoError(t, ols.Fit(series))

	assert.InDelta(t, yw.Coeffs[0], ols.Coeffs[0], 0.05)
	assert.Equal(t, yw.Mean, ols.Mean)
}

func TestFitUnsupportedMethod(t *testing.T) {
	model := New(1)
	model.Method = "mle"

	err := model.Fit(simulateAR(100, 0, []float64{0.5}, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
	assert.ErrorContains(t, err, `"mle"`)
}

func TestFitEmptyMethodDefaults(t *testing.T) {
	model := &Model{Order: 1}
	require.NoError(t, model.Fit(simulateAR(100, 0, []float64{0.5}, 3)))

	summary := model.Summary()
	require.NotNil(t, summary)
	assert.Equal(t, MethodYuleWalker, summary.Method)
}

func TestFitInsufficientData(t *testing.T) {
	model := New(5)
	err := model.Fit(timeseries.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}))
	assert.Error(t, err)
}

func TestFitNegativeOrder(t *testing.T) {
	model := &Model{Order: -1}
	assert.Error(t, model.Fit(simulateAR(100, 0, []float64{0.5}, 3)))
}

func TestFitConstantSeries(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 7
	}

	model := New(1)
	err := model.Fit(timeseries.New(values))
	require.Error(t, err)
	assert.ErrorContains(t, err, "zero variance")
}

func TestFitOrderZero(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 100 + float64(i%7-3)/3
	}
	series := timeseries.New(values)

	model := New(0)
	require.NoError(t, model.Fit(series))

	assert.Empty(t, model.Coeffs)
	assert.Equal(t, series.Mean(), model.Mean)
	assert.Equal(t, model.Mean, model.Intercept)
	assert.InDelta(t, series.Variance(), model.Variance, 1e-9)
}

func TestFitIntercept(t *testing.T) {
	series := simulateAR(500, 100, []float64{0.7}, 1)

	model := New(1)
	require.NoError(t, model.Fit(series))

	assert.InDelta(t, model.Mean*(1-model.Coeffs[0]), model.Intercept, 1e-12)
}

func TestFitInformationCriteria(t *testing.T) {
	series := simulateAR(500, 100, []float64{0.7}, 1)

	model := New(1)
	require.NoError(t, model.Fit(series))

	assert.False(t, math.IsInf(model.LogLik, 0))
	assert.Greater(t, model.BIC, model.AIC)
	assert.Greater(t, model.AICc, model.AIC)
}

func TestPredictBeforeFit(t *testing.T) {
	_, err := New(1).Predict(3)
	assert.Error(t, err)
}

func TestPredictInvalidSteps(t *testing.T) {
	model := New(1)
	require.NoError(t, model.Fit(simulateAR(100, 0, []float64{0.5}, 3)))

	_, err := model.Predict(0)
	assert.Error(t, err)
}

func TestPredictOrderZero(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = 100 + float64(i%7-3)/3
	}

	model := New(0)
	require.NoError(t, model.Fit(timeseries.New(values)))

	forecasts, err := model.Predict(5)
	require.NoError(t, err)
	require.Len(t, forecasts, 5)
	for _, f := range forecasts {
		assert.InDelta(t, model.Mean, f, 1e-12)
	}
}

func TestPredictMeanReversion(t *testing.T) {
	series := simulateAR(500, 100, []float64{0.7}, 4)
	series.Values[499] = 105 // end the sample well away from the mean

	model := New(1)
	require.NoError(t, model.Fit(series))
	require.Greater(t, model.Coeffs[0], 0.3)

	forecasts, err := model.Predict(10)
	require.NoError(t, err)
	require.Len(t, forecasts, 10)

	assert.Less(t, math.Abs(forecasts[9]-model.Mean), math.Abs(forecasts[0]-model.Mean))
	assert.InDelta(t, model.Mean, forecasts[9], 1.0)
}

func TestResidualsMatchFittedValues(t *testing.T) {
	series := simulateAR(200, 10, []float64{0.6}, 5)

	model := New(1)
	require.NoError(t, model.Fit(series))

	residuals := model.Residuals()
	fitted := model.FittedValues()
	require.Len(t, residuals, 200)
	require.Len(t, fitted, 200)

	for t2 := 0; t2 < 200; t2++ {
		assert.InDelta(t, series.Values[t2], fitted[t2]+residuals[t2], 1e-12)
	}
}

func TestResidualsReturnCopies(t *testing.T) {
	model := New(1)
	require.NoError(t, model.Fit(simulateAR(100, 0, []float64{0.5}, 3)))

	residuals := model.Residuals()
	residuals[0] = 12345
	assert.NotEqual(t, 12345.0, model.Residuals()[0])
}

func TestResidualsBeforeFit(t *testing.T) {
	assert.Nil(t, New(1).Residuals())
	assert.Nil(t, New(1).FittedValues())
}

func TestSummary(t *testing.T) {
	series := simulateAR(500, 100, []float64{0.7}, 1)

	model := New(1)
	require.NoError(t, model.Fit(series))

	summary := model.Summary()
	require.NotNil(t, summary)

	assert.Equal(t, 1, summary.Order)
	assert.Equal(t, MethodYuleWalker, summary.Method)
	assert.Equal(t, 500, summary.NObs)
	assert.Equal(t, model.Coeffs, summary.Coeffs)
	assert.NotNil(t, summary.LjungBox)
}

func TestSummaryBeforeFit(t *testing.T) {
	assert.Nil(t, New(1).Summary())
}

func TestLevinsonDurbin(t *testing.T) {
	// Geometric autocorrelations of an AR(1) with coefficient 0.6: the
	// order-2 solution recovers 0.6 with a vanishing second coefficient.
	acf := []float64{1.0, 0.6, 0.36, 0.216, 0.1296}

	phi := levinsonDurbin(acf, 1)
	require.Len(t, phi, 1)
	assert.InDelta(t, 0.6, phi[0], 1e-12)

	phi = levinsonDurbin(acf, 2)
	require.Len(t, phi, 2)
	assert.InDelta(t, 0.6, phi[0], 1e-12)
	assert.InDelta(t, 0.0, phi[1], 1e-12)
}

func TestLevinsonDurbinDegenerateInputs(t *testing.T) {
	assert.Nil(t, levinsonDurbin([]float64{1.0, 0.5}, 0))
	assert.Nil(t, levinsonDurbin([]float64{1.0, 0.5}, 2))
}
