package spline

// precomputeTCB derives the incoming and outgoing tangent of every entry
// from its tension/bias/continuity triples and its neighbors. Tangents are
// stored as derivatives; the Kochanek adjustment for non-uniform parameter
// spacing is folded in, so a spline with all-zero triples reproduces the
// Catmull-Rom centered differences.
//
// See "Interpolating Splines with Local Tension, Continuity, and Bias
// Control", Kochanek and Bartels, SIGGRAPH 1984.
func (s *Spline) precomputeTCB() {
	n := len(s.entries)
	s.inTan = make([][MaxTerms]float64, n)
	s.outTan = make([][MaxTerms]float64, n)
	for j := 0; j < n; j++ {
		in, out := s.in[j], s.out[j]
		for k := 0; k < s.terms; k++ {
			switch {
			case j == 0:
				sl := s.slope(0, k)
				s.outTan[j][k] = (1 - out.Tension) * (1 - out.Bias) * (1 - out.Continuity) * sl
				s.inTan[j][k] = (1 - in.Tension) * (1 - in.Bias) * (1 + in.Continuity) * sl
			case j == n-1:
				sl := s.slope(n-2, k)
				s.outTan[j][k] = (1 - out.Tension) * (1 + out.Bias) * (1 + out.Continuity) * sl
				s.inTan[j][k] = (1 - in.Tension) * (1 + in.Bias) * (1 - in.Continuity) * sl
			default:
				dp := s.entries[j+1].Param - s.entries[j-1].Param
				dv0 := s.entries[j].Value[k] - s.entries[j-1].Value[k]
				dv1 := s.entries[j+1].Value[k] - s.entries[j].Value[k]
				s.outTan[j][k] = ((1-out.Tension)*(1+out.Bias)*(1+out.Continuity)*dv0 +
					(1-out.Tension)*(1-out.Bias)*(1-out.Continuity)*dv1) / dp
				s.inTan[j][k] = ((1-in.Tension)*(1+in.Bias)*(1-in.Continuity)*dv0 +
					(1-in.Tension)*(1-in.Bias)*(1+in.Continuity)*dv1) / dp
			}
		}
	}
}

// tcb is a Hermite evaluation using the cached outgoing tangent of the
// segment's start entry and the incoming tangent of its end entry.
func (s *Spline) tcb(i, k int, p float64) float64 {
	e0, e1 := &s.entries[i], &s.entries[i+1]
	h := e1.Param - e0.Param
	t := (p - e0.Param) / h
	return hermite(t, e0.Value[k], e1.Value[k], h*s.outTan[i][k], h*s.inTan[i+1][k])
}
