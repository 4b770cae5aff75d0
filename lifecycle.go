package spline

import (
	"slices"
	"sync/atomic"
)

// Reference counts only change during the build phase, but they are atomic
// so that sloppier callers fail loudly under the race detector instead of
// corrupting the count.
type refCount = atomic.Int32

// Acquire registers an additional owner of s. Acquire of a nil spline is a
// no-op, as are [Release], [Destroy], and [Copy].
func Acquire(s *Spline) {
	if s == nil {
		return
	}
	s.refs.Add(1)
}

// Release drops one ownership reference and tears the spline down when the
// last one goes away.
func Release(s *Spline) {
	if s == nil {
		return
	}
	if s.refs.Add(-1) == 0 {
		Destroy(s)
	}
}

// Destroy unconditionally drops the spline's stores, regardless of the
// reference count. Only the sole remaining owner may call it; shared owners
// go through [Release]. A destroyed spline reports [ErrEmptySpline] on
// evaluation; reclaiming the memory itself is left to the garbage
// collector.
func Destroy(s *Spline) {
	if s == nil {
		return
	}
	s.entries = nil
	s.in, s.out = nil, nil
	s.shape = nil
	s.y2 = nil
	s.coeff = nil
	s.inTan, s.outTan = nil, nil
	s.terms = 0
	s.ready = false
}

// Copy returns an independent deep copy of s, owned by a single fresh
// reference. The copy shares no storage with s; its derived coefficients
// are rebuilt on first use.
func Copy(s *Spline) *Spline {
	if s == nil {
		return nil
	}
	c := New(s.kind)
	c.entries = slices.Clone(s.entries)
	c.terms = s.terms
	c.in = slices.Clone(s.in)
	c.out = slices.Clone(s.out)
	c.shape = slices.Clone(s.shape)
	c.global = s.global
	return c
}
