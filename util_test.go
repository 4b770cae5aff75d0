package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// eval1 evaluates a one-component spline, failing the test on error.
func eval1(t *testing.T, s *Spline, p float64) float64 {
	t.Helper()
	v, n, err := s.Eval(p)
	if err != nil {
		t.Fatalf("Eval(%g): %v", p, err)
	}
	if n != 1 {
		t.Fatalf("Eval(%g) returned %d terms, want 1", p, n)
	}
	return v[0]
}

// mustInsert inserts (p, v...) into a NoExtension spline.
func mustInsert(t *testing.T, s *Spline, p float64, v ...float64) {
	t.Helper()
	if err := s.Insert(p, v); err != nil {
		t.Fatalf("Insert(%g, %v): %v", p, v, err)
	}
}
