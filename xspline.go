package spline

// X-splines after Blanc and Schlick: each segment blends the four
// surrounding entries with quintic weights, and the shape value at an entry
// stretches or shrinks the support of its neighbors' weights. Zero shape
// interpolates the entry, positive shape smooths past it, negative shape
// (Extended only) pinches the curve into a corner.
//
// The blend functions follow the formulation used in xfig's spline drawing
// code; t is the position within the segment mapped to [0, 1], shapes are
// expected in [-1, 1].
//
// See "X-Splines: A Spline Model Designed for the End-User", Blanc and
// Schlick, SIGGRAPH 1995.

// fBlend is the quintic basis u³(10−p + (2p−15)u + (6−p)u²) with u =
// num/den and p = 2·den², which is 1 at u = 1 for any p.
func fBlend(num, den float64) float64 {
	p := 2 * den * den
	u := num / den
	u2 := u * u
	return u * u2 * (10 - p + (2*p-15)*u + (6-p)*u2)
}

// fBlendFlat is fBlend with the flatness parameter p = den², the free
// parameter of the general scheme.
func fBlendFlat(num, den float64) float64 {
	p := den * den
	u := num / den
	u2 := u * u
	return u * u2 * (10 - p + (2*p-15)*u + (6-p)*u2)
}

// gBlend and hBlend form the corner branch for negative shapes; q is the
// negated half shape.
func gBlend(u, q float64) float64 {
	return u * (q + u*(2*q+u*(8-12*q+u*(14*q-11+u*(4-5*q)))))
}

func hBlend(u, q float64) float64 {
	u2 := u * u
	return u * (q + u*(2*q+u2*(-2*q-u*q)))
}

// xWeights computes the four blend weights of a segment from the local
// position t and the shapes of the segment's start and end entries.
type xWeights func(t, s1, s2 float64) (a0, a1, a2, a3 float64)

func extendedWeights(t, s1, s2 float64) (a0, a1, a2, a3 float64) {
	if s1 < 0 {
		a0 = hBlend(-t, -0.5*s1)
		a2 = gBlend(t, -0.5*s1)
	} else {
		if t < s1 {
			a0 = fBlend(t-s1, -1-s1)
		}
		a2 = fBlend(t+s1, 1+s1)
	}
	if s2 < 0 {
		a1 = gBlend(1-t, -0.5*s2)
		a3 = hBlend(t-1, -0.5*s2)
	} else {
		a1 = fBlend(t-1-s2, -1-s2)
		if t > 1-s2 {
			a3 = fBlend(t-1+s2, 1+s2)
		}
	}
	return a0, a1, a2, a3
}

func generalWeights(t, s1, s2 float64) (a0, a1, a2, a3 float64) {
	s1, s2 = max(s1, 0), max(s2, 0)
	if t < s1 {
		a0 = fBlendFlat(t-s1, -1-s1)
	}
	a2 = fBlendFlat(t+s1, 1+s1)
	a1 = fBlendFlat(t-1-s2, -1-s2)
	if t > 1-s2 {
		a3 = fBlendFlat(t-1+s2, 1+s2)
	}
	return a0, a1, a2, a3
}

// xspline blends the segment's surrounding entries; missing neighbors at
// the ends are stood in for by the boundary entry.
func (s *Spline) xspline(i, k int, p float64, w xWeights, s1, s2 float64) float64 {
	n := len(s.entries)
	e0, e1 := &s.entries[i], &s.entries[i+1]
	t := (p - e0.Param) / (e1.Param - e0.Param)
	a0, a1, a2, a3 := w(t, s1, s2)
	v0 := s.entries[max(i-1, 0)].Value[k]
	v3 := s.entries[min(i+2, n-1)].Value[k]
	return (a0*v0 + a1*e0.Value[k] + a2*e1.Value[k] + a3*v3) / (a0 + a1 + a2 + a3)
}
