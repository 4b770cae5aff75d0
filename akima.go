package spline

import "math"

// akimaTangents implements Akima's slope selection: each tangent is a
// weighted mean of the two adjacent secant slopes, weighted by how much the
// slopes on the far sides disagree. Flat runs of data pin the tangent to
// the flat slope, which is what suppresses overshoot.
//
// See "A New Method of Interpolation and Smooth Curve Fitting Based on
// Local Procedures", Akima, JACM 17(4), 1970.
func akimaTangents(s *Spline, k int, m []float64) {
	n := len(s.entries)
	// Secant slopes, extended quadratically two segments past each end;
	// d[j+2] is the slope of segment j.
	d := make([]float64, n+3)
	for j := 0; j < n-1; j++ {
		d[j+2] = s.slope(j, k)
	}
	d[1] = 2*d[2] - d[3]
	d[0] = 2*d[1] - d[2]
	d[n+1] = 2*d[n] - d[n-1]
	d[n+2] = 2*d[n+1] - d[n]
	for j := 0; j < n; j++ {
		w1 := math.Abs(d[j+3] - d[j+2])
		w2 := math.Abs(d[j+1] - d[j])
		if w1+w2 == 0 {
			m[j] = 0.5 * (d[j+1] + d[j+2])
		} else {
			m[j] = (w1*d[j+1] + w2*d[j+2]) / (w1 + w2)
		}
	}
}
