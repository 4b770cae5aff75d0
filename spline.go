package spline

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

// MaxTerms is the maximum number of scalar components in a spline value.
const MaxTerms = 5

// Errors reported by insertion and evaluation. They describe caller input;
// none of them is transient.
var (
	// ErrExtensionMismatch means the insertion call does not carry the
	// extension data the spline's kind declares, or carries data the kind
	// doesn't take.
	ErrExtensionMismatch = errors.New("insertion does not match the spline's extension")
	// ErrDimensionMismatch means the inserted value's width differs from
	// the width established by earlier insertions, or is outside [1, MaxTerms].
	ErrDimensionMismatch = errors.New("value width differs from earlier entries")
	// ErrInsufficientEntries means the spline holds fewer entries than its
	// kind's basis needs.
	ErrInsufficientEntries = errors.New("too few entries for this kind")
	// ErrEmptySpline means evaluation was attempted on a spline without
	// entries.
	ErrEmptySpline = errors.New("spline has no entries")
	// ErrInvalidNumeric means a parameter or value component was NaN or
	// infinite.
	ErrInvalidNumeric = errors.New("non-finite parameter or value")
)

// Kind selects the interpolation basis of a spline.
type Kind int

const (
	// LinearKind interpolates each segment linearly.
	LinearKind Kind = iota + 1
	// QuadraticKind fits a parabola through the segment's three nearest
	// entries.
	QuadraticKind
	// NaturalKind is the natural cubic spline, with zero second derivative
	// at both ends.
	NaturalKind
	// CatmullRomKind is a cubic Hermite spline with centered-difference
	// tangents.
	CatmullRomKind
	// SORKind is a cubic Hermite spline with interval-weighted
	// finite-difference tangents, as used for surface-of-revolution
	// profiles.
	SORKind
	// AkimaKind is a cubic Hermite spline with Akima's slope selection,
	// which suppresses overshoot near inflection points.
	AkimaKind
	// TCBKind is the Kochanek–Bartels spline; every entry carries incoming
	// and outgoing tension/bias/continuity triples.
	TCBKind
	// BasicXKind is an X-spline with a single shape value applied to every
	// entry.
	BasicXKind
	// ExtendedXKind is an X-spline with one shape value per entry; negative
	// values produce corners.
	ExtendedXKind
	// GeneralXKind is an X-spline with one shape value per entry and a
	// flatter blend basis; negative values are treated as zero.
	GeneralXKind
)

func (k Kind) String() string {
	switch k {
	case LinearKind:
		return "Linear"
	case QuadraticKind:
		return "Quadratic"
	case NaturalKind:
		return "Natural"
	case CatmullRomKind:
		return "CatmullRom"
	case SORKind:
		return "SOR"
	case AkimaKind:
		return "Akima"
	case TCBKind:
		return "TCB"
	case BasicXKind:
		return "BasicX"
	case ExtendedXKind:
		return "ExtendedX"
	case GeneralXKind:
		return "GeneralX"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Extension returns the per-entry auxiliary data the kind requires. Callers
// have to pick the insertion method matching it.
func (k Kind) Extension() Extension {
	switch k {
	case TCBKind:
		return TCBExtension
	case BasicXKind:
		return GlobalShapeExtension
	case ExtendedXKind, GeneralXKind:
		return PerPointShapeExtension
	default:
		return NoExtension
	}
}

// minEntries is the smallest entry count the kind's basis is defined for.
func (k Kind) minEntries() int {
	switch k {
	case QuadraticKind:
		return 3
	case CatmullRomKind, SORKind, AkimaKind:
		return 4
	default:
		return 2
	}
}

// Extension describes the auxiliary data a spline collects with each entry.
type Extension int

const (
	// NoExtension takes entries as plain (parameter, value) pairs.
	NoExtension Extension = iota
	// TCBExtension takes an incoming and an outgoing [TCB] triple per
	// entry.
	TCBExtension
	// GlobalShapeExtension takes a shape value per insertion, the last of
	// which applies to the whole curve.
	GlobalShapeExtension
	// PerPointShapeExtension takes one shape value per entry.
	PerPointShapeExtension
)

func (e Extension) String() string {
	switch e {
	case NoExtension:
		return "None"
	case TCBExtension:
		return "TCB"
	case GlobalShapeExtension:
		return "GlobalShape"
	case PerPointShapeExtension:
		return "PerPointShape"
	default:
		return fmt.Sprintf("Extension(%d)", int(e))
	}
}

// Entry is a control point: the parameter and the value the curve takes
// there.
type Entry struct {
	Param float64
	Value [MaxTerms]float64
}

// TCB is a Kochanek–Bartels tension/bias/continuity triple. The zero value
// leaves the tangent at its centered-difference estimate.
type TCB struct {
	Tension    float64
	Bias       float64
	Continuity float64
}

// segmentCoeff holds one segment's power-basis cubic per component,
// innermost as (a, b, c, d) of a·u³ + b·u² + c·u + d with u relative to the
// segment start.
type segmentCoeff struct {
	c [MaxTerms][4]float64
}

// Spline maps a scalar parameter to a vector of up to [MaxTerms]
// components. Entries are kept sorted by ascending parameter; the value
// width of the first insertion fixes the spline's term count.
//
// A spline goes through two phases. During the build phase a single
// goroutine inserts entries and manages ownership. Once built, [Spline.Finalize]
// computes the derived coefficients; after that, any number of goroutines
// may call [Spline.Eval] concurrently. Evaluating a stale spline rebuilds the
// coefficients as a side effect, so skipping Finalize is only safe
// single-threaded.
type Spline struct {
	kind    Kind
	entries []Entry
	terms   int

	// extension stores, index-aligned with entries
	in, out []TCB     // TCBExtension
	shape   []float64 // PerPointShapeExtension
	global  float64   // GlobalShapeExtension

	// derived coefficients, valid only while ready is set
	ready  bool
	y2     [][MaxTerms]float64 // NaturalKind: second derivative per entry
	coeff  []segmentCoeff      // SORKind, AkimaKind: cubic per segment
	inTan  [][MaxTerms]float64 // TCBKind: incoming tangent per entry
	outTan [][MaxTerms]float64 // TCBKind: outgoing tangent per entry

	refs refCount
}

// New returns an empty spline of the given kind, owned by a single
// reference.
func New(kind Kind) *Spline {
	s := &Spline{kind: kind}
	s.refs.Store(1)
	return s
}

// Kind returns the spline's interpolation basis.
func (s *Spline) Kind() Kind { return s.kind }

// Extension returns the auxiliary data the spline collects with each entry.
func (s *Spline) Extension() Extension { return s.kind.Extension() }

// Len returns the number of entries.
func (s *Spline) Len() int { return len(s.entries) }

// At returns the i'th entry in parameter order.
func (s *Spline) At(i int) Entry { return s.entries[i] }

// Terms returns the width of the spline's values, or 0 before the first
// insertion.
func (s *Spline) Terms() int { return s.terms }

// Domain returns the parameter range covered by the entries. Evaluation
// outside of it returns the boundary value.
func (s *Spline) Domain() (first, last float64) {
	if len(s.entries) == 0 {
		return 0, 0
	}
	return s.entries[0].Param, s.entries[len(s.entries)-1].Param
}

// Insert adds a control point to a spline whose kind declares
// [NoExtension].
func (s *Spline) Insert(p float64, v []float64) error {
	if s.Extension() != NoExtension {
		return ErrExtensionMismatch
	}
	_, err := s.insert(p, v)
	return err
}

// InsertTCB adds a control point together with its incoming and outgoing
// tension/bias/continuity triples. The spline's kind must declare
// [TCBExtension].
func (s *Spline) InsertTCB(p float64, v []float64, in, out TCB) error {
	if s.Extension() != TCBExtension {
		return ErrExtensionMismatch
	}
	if !finite(in.Tension, in.Bias, in.Continuity) ||
		!finite(out.Tension, out.Bias, out.Continuity) {
		return ErrInvalidNumeric
	}
	i, err := s.insert(p, v)
	if err != nil {
		return err
	}
	s.in = slices.Insert(s.in, i, in)
	s.out = slices.Insert(s.out, i, out)
	return nil
}

// InsertShape adds a control point together with a shape value. For
// [PerPointShapeExtension] kinds the value shapes this entry; for
// [GlobalShapeExtension] kinds the value of the last insertion shapes the
// whole curve.
func (s *Spline) InsertShape(p float64, v []float64, shape float64) error {
	if !finite(shape) {
		return ErrInvalidNumeric
	}
	switch s.Extension() {
	case GlobalShapeExtension:
		_, err := s.insert(p, v)
		if err != nil {
			return err
		}
		s.global = shape
		return nil
	case PerPointShapeExtension:
		i, err := s.insert(p, v)
		if err != nil {
			return err
		}
		s.shape = slices.Insert(s.shape, i, shape)
		return nil
	default:
		return ErrExtensionMismatch
	}
}

// insert places the entry by ascending parameter, after any entries with an
// equal parameter, and returns the insertion index. It marks the derived
// coefficients stale.
func (s *Spline) insert(p float64, v []float64) (int, error) {
	if !finite(p) {
		return 0, ErrInvalidNumeric
	}
	if len(v) == 0 || len(v) > MaxTerms {
		return 0, fmt.Errorf("%w: got width %d", ErrDimensionMismatch, len(v))
	}
	if len(s.entries) > 0 && len(v) != s.terms {
		return 0, fmt.Errorf("%w: got width %d, spline has %d", ErrDimensionMismatch, len(v), s.terms)
	}
	e := Entry{Param: p}
	for i, c := range v {
		if !finite(c) {
			return 0, ErrInvalidNumeric
		}
		e.Value[i] = c
	}
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Param > p })
	s.entries = slices.Insert(s.entries, i, e)
	s.terms = len(v)
	s.ready = false
	return i, nil
}

// Finalize computes the spline's derived coefficients so that later [Spline.Eval]
// calls perform no writes. Call it once, from a single goroutine, before
// sharing the spline between evaluating goroutines.
func (s *Spline) Finalize() error {
	if len(s.entries) == 0 {
		return ErrEmptySpline
	}
	if len(s.entries) < s.kind.minEntries() {
		return fmt.Errorf("%w: %v needs %d, have %d",
			ErrInsufficientEntries, s.kind, s.kind.minEntries(), len(s.entries))
	}
	s.precompute()
	return nil
}

func (s *Spline) precompute() {
	switch s.kind {
	case NaturalKind:
		s.precomputeNatural()
	case SORKind:
		s.precomputeCubic(sorTangents)
	case AkimaKind:
		s.precomputeCubic(akimaTangents)
	case TCBKind:
		s.precomputeTCB()
	}
	s.ready = true
}

// Eval evaluates the spline at p and returns the value along with the
// spline's term count. Parameters outside the domain clamp to the nearest
// boundary value. If the derived coefficients are stale, Eval rebuilds them
// first; see the type documentation for the concurrency contract.
func (s *Spline) Eval(p float64) ([MaxTerms]float64, int, error) {
	var v [MaxTerms]float64
	if len(s.entries) == 0 {
		return v, 0, ErrEmptySpline
	}
	if len(s.entries) < s.kind.minEntries() {
		return v, 0, fmt.Errorf("%w: %v needs %d, have %d",
			ErrInsufficientEntries, s.kind, s.kind.minEntries(), len(s.entries))
	}
	if !finite(p) {
		return v, 0, ErrInvalidNumeric
	}
	if !s.ready {
		s.precompute()
	}

	n := len(s.entries)
	if p <= s.entries[0].Param {
		return s.entries[0].Value, s.terms, nil
	}
	if p >= s.entries[n-1].Param {
		return s.entries[n-1].Value, s.terms, nil
	}

	i := s.findSegment(p)
	for k := 0; k < s.terms; k++ {
		switch s.kind {
		case LinearKind:
			v[k] = s.linear(i, k, p)
		case QuadraticKind:
			v[k] = s.quadratic(i, k, p)
		case NaturalKind:
			v[k] = s.natural(i, k, p)
		case CatmullRomKind:
			v[k] = s.catmullRom(i, k, p)
		case SORKind, AkimaKind:
			v[k] = s.cubicSegment(i, k, p)
		case TCBKind:
			v[k] = s.tcb(i, k, p)
		case BasicXKind:
			v[k] = s.xspline(i, k, p, extendedWeights, s.global, s.global)
		case ExtendedXKind:
			v[k] = s.xspline(i, k, p, extendedWeights, s.shape[i], s.shape[i+1])
		case GeneralXKind:
			v[k] = s.xspline(i, k, p, generalWeights, s.shape[i], s.shape[i+1])
		default:
			panic(fmt.Sprintf("unhandled kind %v", s.kind))
		}
	}
	return v, s.terms, nil
}

// findSegment returns i such that entries[i].Param <= p < entries[i+1].Param.
// p must lie strictly inside the domain, which also guarantees a segment of
// nonzero width even when parameters repeat.
func (s *Spline) findSegment(p float64) int {
	return sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Param > p }) - 1
}

// slope returns the secant slope of segment i for component k.
func (s *Spline) slope(i, k int) float64 {
	return (s.entries[i+1].Value[k] - s.entries[i].Value[k]) /
		(s.entries[i+1].Param - s.entries[i].Param)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
