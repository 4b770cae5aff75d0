package spline

// precomputeNatural solves, per component, the tridiagonal system for the
// second derivatives at the entries, with the natural boundary condition of
// zero second derivative at both ends. With two entries all second
// derivatives are zero and the curve degenerates to a line.
func (s *Spline) precomputeNatural() {
	n := len(s.entries)
	s.y2 = make([][MaxTerms]float64, n)
	if n < 3 {
		return
	}
	u := make([]float64, n-1)
	for k := 0; k < s.terms; k++ {
		u[0] = 0
		for i := 1; i < n-1; i++ {
			x0, x1, x2 := s.entries[i-1].Param, s.entries[i].Param, s.entries[i+1].Param
			y0, y1, y2 := s.entries[i-1].Value[k], s.entries[i].Value[k], s.entries[i+1].Value[k]
			sig := (x1 - x0) / (x2 - x0)
			div := sig*s.y2[i-1][k] + 2
			s.y2[i][k] = (sig - 1) / div
			u[i] = (y2-y1)/(x2-x1) - (y1-y0)/(x1-x0)
			u[i] = (6*u[i]/(x2-x0) - sig*u[i-1]) / div
		}
		s.y2[n-1][k] = 0
		for i := n - 2; i >= 1; i-- {
			s.y2[i][k] = s.y2[i][k]*s.y2[i+1][k] + u[i]
		}
	}
}

// natural evaluates the second-derivative form of the piecewise cubic.
func (s *Spline) natural(i, k int, p float64) float64 {
	e0, e1 := &s.entries[i], &s.entries[i+1]
	h := e1.Param - e0.Param
	a := (e1.Param - p) / h
	b := (p - e0.Param) / h
	return a*e0.Value[k] + b*e1.Value[k] +
		((a*a*a-a)*s.y2[i][k]+(b*b*b-b)*s.y2[i+1][k])*h*h/6
}
