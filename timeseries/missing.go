package timeseries

import "math"

// FirstNotNaN returns the smallest index holding a non-missing value.
// It returns Len() when every value is missing or the series is empty.
func (s *Series) FirstNotNaN() int {
	for i, v := range s.Values {
		if !math.IsNaN(v) {
			return i
		}
	}
	return len(s.Values)
}

// LastNotNaN returns the largest index holding a non-missing value.
// It returns -1 when every value is missing or the series is empty.
func (s *Series) LastNotNaN() int {
	for i := len(s.Values) - 1; i >= 0; i-- {
		if !math.IsNaN(s.Values[i]) {
			return i
		}
	}
	return -1
}

// TrimLeading removes every position before the first non-missing value, so
// the result starts with a known value. If no non-missing value exists the
// result is empty.
func (s *Series) TrimLeading() *Series {
	return s.Slice(s.FirstNotNaN(), len(s.Values))
}

// TrimTrailing removes the last non-missing value and everything after it:
// the result is the slice [0, LastNotNaN()). The boundary element itself is
// excluded, unlike TrimLeading which keeps its boundary; callers composing
// both must account for the one-element difference. If no non-missing value
// exists the result is empty.
func (s *Series) TrimTrailing() *Series {
	end := s.LastNotNaN()
	if end < 0 {
		return &Series{Values: []float64{}, Name: s.Name}
	}
	return s.Slice(0, end)
}

// CountMissing returns the number of missing (NaN) values in the series.
func (s *Series) CountMissing() int {
	count := 0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			count++
		}
	}
	return count
}

// HasMissing reports whether the series contains any missing value.
func (s *Series) HasMissing() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
