package chart

import "math"

// LinearScale maps a data domain onto a pixel range.
//
// The y scale uses an inverted range ([graphH, 0]) since pixel y grows
// downward.
type LinearScale struct {
	DomainLo float64
	DomainHi float64
	RangeLo  float64
	RangeHi  float64
}

func NewLinearScale(domainLo, domainHi, rangeLo, rangeHi float64) LinearScale {
	return LinearScale{
		DomainLo: domainLo,
		DomainHi: domainHi,
		RangeLo:  rangeLo,
		RangeHi:  rangeHi,
	}
}

// Scale maps a data value to a pixel position. A degenerate domain maps
// everything to the low end of the range.
func (s LinearScale) Scale(v float64) float64 {
	span := s.DomainHi - s.DomainLo
	if span == 0 {
		return s.RangeLo
	}
	t := (v - s.DomainLo) / span
	return s.RangeLo + t*(s.RangeHi-s.RangeLo)
}

// Invert maps a pixel position back to a data value.
func (s LinearScale) Invert(p float64) float64 {
	span := s.RangeHi - s.RangeLo
	if span == 0 {
		return s.DomainLo
	}
	t := (p - s.RangeLo) / span
	return s.DomainLo + t*(s.DomainHi-s.DomainLo)
}

// Domain returns the scale's current domain.
func (s LinearScale) Domain() (float64, float64) {
	return s.DomainLo, s.DomainHi
}

// Range returns the scale's current range.
func (s LinearScale) Range() (float64, float64) {
	return s.RangeLo, s.RangeHi
}

// Ticks returns about count round values covering the domain.
func (s LinearScale) Ticks(count int) []float64 {
	if count < 2 {
		count = 2
	}
	lo, hi := s.DomainLo, s.DomainHi
	if lo == hi {
		return []float64{lo}
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	step := tickStep(lo, hi, count)
	start := math.Ceil(lo/step) * step
	var ticks []float64
	for v := start; v <= hi+step*1e-9; v += step {
		// Snap values like 0.30000000000000004 back to the grid.
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

// tickStep picks a 1/2/5-scaled power of ten producing about count steps.
func tickStep(lo, hi float64, count int) float64 {
	raw := (hi - lo) / float64(count)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag

	switch {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}
