package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValuesWithNaN compares element-wise, treating NaN as equal to NaN.
func assertValuesWithNaN(t *testing.T, expected, actual []float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "index %d: expected NaN, got %v", i, actual[i])
			continue
		}
		assert.InDelta(t, expected[i], actual[i], 1e-12, "index %d", i)
	}
}

func TestFillDispatch(t *testing.T) {
	s := New([]float64{1, nan, 3})

	linear, err := s.Fill("linear")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, linear.Values)

	nearest, err := s.Fill("nearest")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 3}, nearest.Values)
}

func TestFillDeclaredButNotImplemented(t *testing.T) {
	s := New([]float64{1, nan, 3})

	for _, method := range []string{"next", "previous"} {
		t.Run(method, func(t *testing.T) {
			filled, err := s.Fill(method)
			assert.Nil(t, filled)
			assert.ErrorIs(t, err, ErrFillNotImplemented)
		})
	}

	filled, err := s.FillNext()
	assert.Nil(t, filled)
	assert.ErrorIs(t, err, ErrFillNotImplemented)

	filled, err = s.FillPrevious()
	assert.Nil(t, filled)
	assert.ErrorIs(t, err, ErrFillNotImplemented)
}

func TestFillUnsupportedMethod(t *testing.T) {
	s := New([]float64{1, nan, 3})

	for _, method := range []string{"spline", "mean", ""} {
		filled, err := s.Fill(method)
		assert.Nil(t, filled)
		assert.ErrorIs(t, err, ErrUnsupportedFillMethod)
	}
}

func TestFillNearestTieGoesForward(t *testing.T) {
	// Index 2 is equally distant from the known values at 1 and 3; the
	// forward value wins the tie.
	s := New([]float64{1, nan, nan, 4})

	filled, err := s.FillNearest()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 4, 4}, filled.Values)
}

func TestFillNearestAllMissing(t *testing.T) {
	s := New([]float64{nan, nan, nan})

	filled, err := s.FillNearest()
	assert.Nil(t, filled)
	assert.ErrorIs(t, err, ErrAllValuesMissing)
}

func TestFillNearestIndexZeroNeverFilled(t *testing.T) {
	s := New([]float64{nan, 5, nan})

	filled, err := s.FillNearest()
	require.NoError(t, err)
	assertValuesWithNaN(t, []float64{nan, 5, 5}, filled.Values)
}

func TestFillNearestLongGap(t *testing.T) {
	// Distances are measured to the known values of the input, so a gap
	// splits at its midpoint: the left half takes the left value, the right
	// half the right value.
	s := New([]float64{1, nan, nan, nan, nan, 9})

	filled, err := s.FillNearest()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 9, 9, 9}, filled.Values)
}

func TestFillNearestOddGapMidpoint(t *testing.T) {
	// The middle of an odd-length gap is equally distant from both bounds;
	// the forward value wins there, and everything after it is strictly
	// closer to the right bound.
	s := New([]float64{1, nan, nan, nan, 9})

	filled, err := s.FillNearest()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 9, 9, 9}, filled.Values)
}

func TestFillNearestTrailingGapUsesLeft(t *testing.T) {
	s := New([]float64{1, 2, nan, nan})

	filled, err := s.FillNearest()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 2}, filled.Values)
}

func TestFillNearestLeadingGapUsesRight(t *testing.T) {
	// No left neighbor exists before the first known value; index 0 itself
	// still stays missing.
	s := New([]float64{nan, nan, 3, 4})

	filled, err := s.FillNearest()
	require.NoError(t, err)
	assertValuesWithNaN(t, []float64{nan, 3, 3, 4}, filled.Values)
}

func TestFillNearestKnownValuesUntouched(t *testing.T) {
	s := New([]float64{1, nan, 3, nan, 5})

	filled, err := s.FillNearest()
	require.NoError(t, err)
	assert.Equal(t, 1.0, filled.Values[0])
	assert.Equal(t, 3.0, filled.Values[2])
	assert.Equal(t, 5.0, filled.Values[4])
}

func TestFillNearestShortSeries(t *testing.T) {
	// Series of length 0 or 1 never enter the fill loop, so even an
	// all-missing singleton passes through unchanged.
	filled, err := New([]float64{}).FillNearest()
	require.NoError(t, err)
	assert.Zero(t, filled.Len())

	filled, err = New([]float64{nan}).FillNearest()
	require.NoError(t, err)
	assertValuesWithNaN(t, []float64{nan}, filled.Values)
}

func TestFillLinear(t *testing.T) {
	s := New([]float64{2, nan, nan, 8})

	filled := s.FillLinear()
	assert.Equal(t, []float64{2, 4, 6, 8}, filled.Values)
}

func TestFillLinearMultipleRuns(t *testing.T) {
	s := New([]float64{1, nan, 3, nan, nan, 9})

	filled := s.FillLinear()
	assert.Equal(t, []float64{1, 2, 3, 5, 7, 9}, filled.Values)
}

func TestFillLinearTrailingRunUnfilled(t *testing.T) {
	// A run with no terminating known value is the caller's problem,
	// typically handled by TrimTrailing beforehand.
	s := New([]float64{1, 2, nan, nan})

	filled := s.FillLinear()
	assertValuesWithNaN(t, []float64{1, 2, nan, nan}, filled.Values)
}

func TestFillLinearLeadingRunUnfilled(t *testing.T) {
	s := New([]float64{nan, nan, 3, nan, 5})

	filled := s.FillLinear()
	assertValuesWithNaN(t, []float64{nan, nan, 3, 4, 5}, filled.Values)
}

func TestFillLinearIdempotent(t *testing.T) {
	s := New([]float64{nan, 2, nan, 6, 7, nan, nan})

	once := s.FillLinear()
	twice := once.FillLinear()
	assertValuesWithNaN(t, once.Values, twice.Values)
}

func TestFillLinearNoMissing(t *testing.T) {
	s := New([]float64{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, s.FillLinear().Values)
}

func TestFillsReturnCopies(t *testing.T) {
	s := New([]float64{1, nan, 3})

	linear := s.FillLinear()
	linear.Values[0] = 100
	assert.Equal(t, 1.0, s.Values[0])
	assert.True(t, math.IsNaN(s.Values[1]))

	nearest, err := s.FillNearest()
	require.NoError(t, err)
	nearest.Values[2] = 100
	assert.Equal(t, 3.0, s.Values[2])
}

func TestTrimThenFillRoundTrip(t *testing.T) {
	// Trimming both boundaries then interpolating closes every interior gap.
	s := New([]float64{nan, nan, 1, nan, nan, 4, 5, 6, nan})

	cleaned := s.TrimTrailing().TrimLeading().FillLinear()
	assert.False(t, cleaned.HasMissing())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, cleaned.Values)
}
