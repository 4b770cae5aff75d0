package spline

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInsertKeepsEntriesSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		s := New(LinearKind)
		for i := 0; i < 20; i++ {
			p := math.Floor(rng.Float64()*10) / 2 // plenty of duplicates
			mustInsert(t, s, p, rng.Float64())
			for j := 1; j < s.Len(); j++ {
				if s.At(j).Param < s.At(j-1).Param {
					t.Fatalf("entries out of order after inserting %g: %v < %v at %d",
						p, s.At(j).Param, s.At(j-1).Param, j)
				}
			}
		}
	}
}

func TestInsertDuplicateParamStable(t *testing.T) {
	s := New(LinearKind)
	mustInsert(t, s, 1, 10)
	mustInsert(t, s, 1, 20)
	mustInsert(t, s, 1, 30)
	// equal parameters keep source order
	want := []float64{10, 20, 30}
	for i, w := range want {
		if got := s.At(i).Value[0]; got != w {
			t.Errorf("entry %d has value %g, want %g", i, got, w)
		}
	}
}

func TestInsertDimensionMismatch(t *testing.T) {
	s := New(LinearKind)
	mustInsert(t, s, 0, 1, 2, 3)
	if err := s.Insert(1, []float64{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
	if err := s.Insert(1, []float64{1, 2, 3, 4, 5, 6}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
	if err := s.Insert(1, nil); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
	if s.Terms() != 3 {
		t.Errorf("Terms() = %d, want 3", s.Terms())
	}
}

func TestInsertExtensionMismatch(t *testing.T) {
	plain := New(NaturalKind)
	if err := plain.InsertTCB(0, []float64{1}, TCB{}, TCB{}); !errors.Is(err, ErrExtensionMismatch) {
		t.Errorf("InsertTCB on %v: got %v, want ErrExtensionMismatch", plain.Kind(), err)
	}
	if err := plain.InsertShape(0, []float64{1}, 0); !errors.Is(err, ErrExtensionMismatch) {
		t.Errorf("InsertShape on %v: got %v, want ErrExtensionMismatch", plain.Kind(), err)
	}

	tcb := New(TCBKind)
	if err := tcb.Insert(0, []float64{1}); !errors.Is(err, ErrExtensionMismatch) {
		t.Errorf("Insert on %v: got %v, want ErrExtensionMismatch", tcb.Kind(), err)
	}

	xs := New(ExtendedXKind)
	if err := xs.Insert(0, []float64{1}); !errors.Is(err, ErrExtensionMismatch) {
		t.Errorf("Insert on %v: got %v, want ErrExtensionMismatch", xs.Kind(), err)
	}
}

func TestInsertInvalidNumeric(t *testing.T) {
	s := New(LinearKind)
	if err := s.Insert(math.NaN(), []float64{1}); !errors.Is(err, ErrInvalidNumeric) {
		t.Errorf("NaN parameter: got %v, want ErrInvalidNumeric", err)
	}
	if err := s.Insert(0, []float64{math.Inf(1)}); !errors.Is(err, ErrInvalidNumeric) {
		t.Errorf("infinite value: got %v, want ErrInvalidNumeric", err)
	}
	if s.Len() != 0 {
		t.Errorf("rejected insertions added entries: Len() = %d", s.Len())
	}
}

func TestEvalEmptyAndInsufficient(t *testing.T) {
	s := New(QuadraticKind)
	if _, _, err := s.Eval(0); !errors.Is(err, ErrEmptySpline) {
		t.Errorf("empty: got %v, want ErrEmptySpline", err)
	}
	if err := s.Finalize(); !errors.Is(err, ErrEmptySpline) {
		t.Errorf("Finalize empty: got %v, want ErrEmptySpline", err)
	}
	mustInsert(t, s, 0, 0)
	mustInsert(t, s, 1, 1)
	if _, _, err := s.Eval(0.5); !errors.Is(err, ErrInsufficientEntries) {
		t.Errorf("2 entries: got %v, want ErrInsufficientEntries", err)
	}
	if err := s.Finalize(); !errors.Is(err, ErrInsufficientEntries) {
		t.Errorf("Finalize with 2 entries: got %v, want ErrInsufficientEntries", err)
	}
	mustInsert(t, s, 2, 4)
	if err := s.Finalize(); err != nil {
		t.Errorf("Finalize with 3 entries: %v", err)
	}
}

func TestEvalInvalidNumeric(t *testing.T) {
	s := New(LinearKind)
	mustInsert(t, s, 0, 0)
	mustInsert(t, s, 1, 10)
	if _, _, err := s.Eval(math.NaN()); !errors.Is(err, ErrInvalidNumeric) {
		t.Errorf("got %v, want ErrInvalidNumeric", err)
	}
}

// Inserting after an evaluation must give the same results as building the
// final point set from scratch.
func TestStaleCacheRebuild(t *testing.T) {
	kinds := []Kind{NaturalKind, SORKind, AkimaKind}
	for _, kind := range kinds {
		s := New(kind)
		ps := []float64{0, 1, 2, 4, 5}
		vs := []float64{0, 2, 1, 3, 0}
		for i := range ps {
			mustInsert(t, s, ps[i], vs[i])
		}
		eval1(t, s, 2.5) // populate the cache
		mustInsert(t, s, 3, -1)

		fresh := New(kind)
		for i := range ps {
			mustInsert(t, fresh, ps[i], vs[i])
		}
		mustInsert(t, fresh, 3, -1)

		for p := 0.0; p <= 5.0; p += 0.125 {
			got := eval1(t, s, p)
			want := eval1(t, fresh, p)
			if got != want {
				t.Errorf("%v: Eval(%g) = %g after insert, fresh spline gives %g",
					kind, p, got, want)
			}
		}
	}
}

func TestAccessors(t *testing.T) {
	s := New(TCBKind)
	if s.Extension() != TCBExtension {
		t.Errorf("Extension() = %v, want TCBExtension", s.Extension())
	}
	if err := s.InsertTCB(2, []float64{1, 2}, TCB{}, TCB{}); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertTCB(-1, []float64{3, 4}, TCB{}, TCB{}); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 || s.Terms() != 2 {
		t.Errorf("Len, Terms = %d, %d, want 2, 2", s.Len(), s.Terms())
	}
	first, last := s.Domain()
	diff(t, []float64{-1, 2}, []float64{first, last})
	diff(t, Entry{Param: -1, Value: [MaxTerms]float64{3, 4}}, s.At(0))
}

func TestKindStrings(t *testing.T) {
	diff(t, "CatmullRom", CatmullRomKind.String())
	diff(t, "TCB", TCBKind.String())
	diff(t, "Kind(42)", Kind(42).String())
	diff(t, "PerPointShape", GeneralXKind.Extension().String())
}

// All kinds that interpolate their control points must return the entry
// value exactly (within float tolerance) when evaluated at an interior
// entry's parameter.
func TestKnotInterpolation(t *testing.T) {
	ps := []float64{0, 1, 2.5, 3, 4.5, 6}
	vs := [][]float64{{0, 5}, {1, -2}, {4, 0}, {2, 2}, {-1, 7}, {3, 3}}
	kinds := []Kind{LinearKind, QuadraticKind, NaturalKind, CatmullRomKind, SORKind, AkimaKind}
	for _, kind := range kinds {
		s := New(kind)
		for i := range ps {
			mustInsert(t, s, ps[i], vs[i]...)
		}
		for i := range ps {
			v, n, err := s.Eval(ps[i])
			if err != nil {
				t.Fatalf("%v: %v", kind, err)
			}
			if n != 2 {
				t.Fatalf("%v: got %d terms, want 2", kind, n)
			}
			diff(t, vs[i], []float64{v[0], v[1]}, cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestConcurrentEvalAfterFinalize(t *testing.T) {
	s := New(NaturalKind)
	for i := 0; i < 32; i++ {
		mustInsert(t, s, float64(i), math.Sin(float64(i)/3), math.Cos(float64(i)/5))
	}
	if err := s.Finalize(); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, seed))
			for i := 0; i < 1000; i++ {
				if _, _, err := s.Eval(rng.Float64() * 31); err != nil {
					t.Errorf("Eval: %v", err)
					return
				}
			}
		}(uint64(g))
	}
	wg.Wait()
}
