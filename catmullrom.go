package spline

// hermite evaluates the cubic Hermite basis at t ∈ [0, 1] with endpoint
// values v0, v1 and endpoint tangents m0, m1 in segment-local units.
func hermite(t, v0, v1, m0, m1 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return (2*t3-3*t2+1)*v0 + (t3-2*t2+t)*m0 + (3*t2-2*t3)*v1 + (t3-t2)*m1
}

// catmullRom uses centered-difference tangents; where a neighbor is missing
// the boundary entry stands in for it, leaving a one-sided slope.
func (s *Spline) catmullRom(i, k int, p float64) float64 {
	e0, e1 := &s.entries[i], &s.entries[i+1]
	h := e1.Param - e0.Param
	t := (p - e0.Param) / h
	m0 := h * s.centeredSlope(i, k)
	m1 := h * s.centeredSlope(i+1, k)
	return hermite(t, e0.Value[k], e1.Value[k], m0, m1)
}

// centeredSlope is the derivative estimate at entry j from its two
// neighbors, clamped to the available range at the boundaries.
func (s *Spline) centeredSlope(j, k int) float64 {
	lo := max(j-1, 0)
	hi := min(j+1, len(s.entries)-1)
	return (s.entries[hi].Value[k] - s.entries[lo].Value[k]) /
		(s.entries[hi].Param - s.entries[lo].Param)
}
