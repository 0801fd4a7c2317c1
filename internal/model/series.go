package model

// Series is a per-month sequence. Storage is 0-based; Month is 1-based.
type Series []float64

// NewSeries allocates a zeroed series covering months 1..months.
func NewSeries(months int) Series {
	return make(Series, months)
}

// Len returns the number of months covered.
func (s Series) Len() int { return len(s) }

// Month returns the value for calendar month m (1-based).
// Months outside 1..Len panic like any out-of-range index.
func (s Series) Month(m int) float64 {
	return s[m-1]
}

// Last returns the value of the final month, or 0 for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Values returns a copy of the underlying values.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

// Scale returns a new series with every value multiplied by f.
func (s Series) Scale(f float64) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = v * f
	}
	return out
}

// Min returns the smallest value and its 1-based month. Empty series yield (0, 0).
func (s Series) Min() (float64, int) {
	if len(s) == 0 {
		return 0, 0
	}
	low, month := s[0], 1
	for i, v := range s[1:] {
		if v < low {
			low, month = v, i+2
		}
	}
	return low, month
}

// Max returns the largest value and its 1-based month. Empty series yield (0, 0).
func (s Series) Max() (float64, int) {
	if len(s) == 0 {
		return 0, 0
	}
	high, month := s[0], 1
	for i, v := range s[1:] {
		if v > high {
			high, month = v, i+2
		}
	}
	return high, month
}
