package spline

// The linear and quadratic bases need no precomputed coefficients; both
// work from the entries alone.

func (s *Spline) linear(i, k int, p float64) float64 {
	e0, e1 := &s.entries[i], &s.entries[i+1]
	t := (p - e0.Param) / (e1.Param - e0.Param)
	return e0.Value[k] + t*(e1.Value[k]-e0.Value[k])
}

// quadratic fits a parabola through the segment's end point and its two
// nearest neighbors, shifting the window inward at the last segment.
func (s *Spline) quadratic(i, k int, p float64) float64 {
	j := min(i+1, len(s.entries)-2)
	p1, p2, p3 := s.entries[j-1].Param, s.entries[j].Param, s.entries[j+1].Param
	v1, v2, v3 := s.entries[j-1].Value[k], s.entries[j].Value[k], s.entries[j+1].Value[k]
	d := (p1 - p2) * (p1 - p3) * (p2 - p3)
	a := (v1*(p2-p3) + v2*(p3-p1) + v3*(p1-p2)) / d
	b := -(v1*(p2*p2-p3*p3) + v2*(p3*p3-p1*p1) + v3*(p1*p1-p2*p2)) / d
	c := (v1*p2*p3*(p2-p3) + v2*p3*p1*(p3-p1) + v3*p1*p2*(p1-p2)) / d
	return (a*p+b)*p + c
}
