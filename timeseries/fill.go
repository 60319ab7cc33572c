package timeseries

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnsupportedFillMethod indicates an unrecognized fill method name.
	ErrUnsupportedFillMethod = errors.New("unsupported fill method")

	// ErrFillNotImplemented indicates a declared fill method with no implementation.
	ErrFillNotImplemented = errors.New("fill method not implemented")

	// ErrAllValuesMissing indicates a fill cannot proceed because the series
	// contains no known value.
	ErrAllValuesMissing = errors.New("all values missing")
)

// Fill returns a copy of the series with missing values imputed by the named
// method. Supported methods are "linear" (FillLinear) and "nearest"
// (FillNearest). The names "next" and "previous" are part of the surface but
// carry no implementation and always fail with ErrFillNotImplemented; any
// other name fails with ErrUnsupportedFillMethod. No partial work is done on
// failure.
func (s *Series) Fill(method string) (*Series, error) {
	switch method {
	case "linear":
		return s.FillLinear(), nil
	case "nearest":
		return s.FillNearest()
	case "next", "previous":
		return nil, fmt.Errorf("%w: %q", ErrFillNotImplemented, method)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFillMethod, method)
	}
}

// FillNearest replaces each missing value with the value at the nearest known
// position, measured by index distance. Filling proceeds from index 1 upward:
// position 0 is never a fill candidate and stays missing if it was missing,
// though a known value there does serve as a left neighbor. Candidates are
// the non-missing positions of the input; values written earlier in the pass
// are never candidates themselves. When the two candidates are equally
// distant the later (forward) value wins; a position with a known value on
// only one side takes that side. Fails with ErrAllValuesMissing, before
// writing anything, when the series holds no known value at all.
func (s *Series) FillNearest() (*Series, error) {
	out := s.Copy()
	v := out.Values
	n := len(v)

	last := -1 // nearest known index to the left, -1 when none yet
	if n > 0 && !math.IsNaN(v[0]) {
		last = 0
	}
	next := 0 // cached index of the next known value beyond the cursor

	for i := 1; i < n; i++ {
		if !math.IsNaN(v[i]) {
			last = i
			continue
		}
		if next <= i {
			next = i + 1
			for next < n && math.IsNaN(v[next]) {
				next++
			}
		}
		switch {
		case last < 0 && next >= n:
			return nil, ErrAllValuesMissing
		case next >= n:
			v[i] = v[last]
		case last < 0:
			v[i] = v[next]
		case i-last < next-i:
			v[i] = v[last]
		default:
			v[i] = v[next]
		}
	}
	return out, nil
}

// FillLinear fills interior runs of missing values by linear interpolation
// between the known values bounding the run. Each run is walked left to
// right, adding a constant increment to a running sum seeded with the left
// bound. A run that reaches the end of the series without a terminating known
// value is left unfilled, as is a run with no known value immediately before
// it; trim the boundaries first when leftover missing runs must not survive.
// Position 0 and the final position are never fill candidates, though the
// final position may terminate a run.
func (s *Series) FillLinear() *Series {
	out := s.Copy()
	v := out.Values
	n := len(v)

	for i := 1; i < n-1; i++ {
		if !math.IsNaN(v[i]) || math.IsNaN(v[i-1]) {
			continue
		}
		end := i + 1
		for end < n && math.IsNaN(v[end]) {
			end++
		}
		if end == n {
			break
		}
		inc := (v[end] - v[i-1]) / float64(end-i+1)
		acc := v[i-1]
		for j := i; j < end; j++ {
			acc += inc
			v[j] = acc
		}
		i = end
	}
	return out
}

// FillNext would replace each missing value with the next known value. It is
// declared for surface compatibility only and always fails with
// ErrFillNotImplemented.
func (s *Series) FillNext() (*Series, error) {
	return nil, ErrFillNotImplemented
}

// FillPrevious would replace each missing value with the previous known
// value. It is declared for surface compatibility only and always fails with
// ErrFillNotImplemented.
func (s *Series) FillPrevious() (*Series, error) {
	return nil, ErrFillNotImplemented
}
