package spline

// The SOR and Akima kinds share a per-segment cache of power-basis cubics;
// they differ only in how the per-entry tangents are derived.

// tangentsFunc fills m with one derivative estimate per entry for
// component k.
type tangentsFunc func(s *Spline, k int, m []float64)

func (s *Spline) precomputeCubic(tangents tangentsFunc) {
	n := len(s.entries)
	s.coeff = make([]segmentCoeff, n-1)
	m := make([]float64, n)
	for k := 0; k < s.terms; k++ {
		tangents(s, k, m)
		for i := 0; i < n-1; i++ {
			h := s.entries[i+1].Param - s.entries[i].Param
			sl := s.slope(i, k)
			c := &s.coeff[i].c[k]
			c[0] = (m[i] + m[i+1] - 2*sl) / (h * h)
			c[1] = (3*sl - 2*m[i] - m[i+1]) / h
			c[2] = m[i]
			c[3] = s.entries[i].Value[k]
		}
	}
}

// cubicSegment evaluates segment i's cached cubic for component k.
func (s *Spline) cubicSegment(i, k int, p float64) float64 {
	u := p - s.entries[i].Param
	c := &s.coeff[i].c[k]
	return ((c[0]*u+c[1])*u+c[2])*u + c[3]
}

// sorTangents weights the two adjacent secant slopes by the opposite
// interval widths, which keeps the tangent bounded on uneven spacing.
// Boundaries fall back to the one-sided slope.
func sorTangents(s *Spline, k int, m []float64) {
	n := len(s.entries)
	m[0] = s.slope(0, k)
	m[n-1] = s.slope(n-2, k)
	for j := 1; j < n-1; j++ {
		h0 := s.entries[j].Param - s.entries[j-1].Param
		h1 := s.entries[j+1].Param - s.entries[j].Param
		m[j] = (h1*s.slope(j-1, k) + h0*s.slope(j, k)) / (h0 + h1)
	}
}
