// Package spline evaluates parametric control-point curves that map a
// scalar parameter to a vector of up to five components. It serves
// scene-description interpreters that drive animated or spatially-varying
// quantities (positions, colors, transform parameters) from a declared
// curve, but nothing in it is specific to that use.
//
// # Kinds
//
// A [Spline] is created with one of ten interpolation bases:
//
//   - [LinearKind] and [QuadraticKind]: piecewise linear and piecewise
//     parabolic interpolation.
//   - [NaturalKind]: the classic natural cubic spline, C² with zero second
//     derivative at the ends.
//   - [CatmullRomKind]: cubic Hermite with centered-difference tangents.
//   - [SORKind] and [AkimaKind]: cubic Hermite with, respectively,
//     interval-weighted finite-difference tangents and Akima's
//     overshoot-suppressing slope selection.
//   - [TCBKind]: Kochanek–Bartels, with per-entry incoming and outgoing
//     tension/bias/continuity triples.
//   - [BasicXKind], [ExtendedXKind], [GeneralXKind]: the X-spline family,
//     where a shape value per entry (or one global value) moves the curve
//     between interpolating, smoothing past, and cornering at the entry.
//
// Some kinds collect auxiliary data with every control point. [Kind.Extension]
// reports which of the insertion methods ([Spline.Insert], [Spline.InsertTCB],
// [Spline.InsertShape]) a spline accepts.
//
// # Build and evaluation phases
//
// Splines are passive data structures without internal locking. A single
// goroutine builds a spline by inserting control points in any order; the
// store keeps itself sorted by parameter. Derived per-segment coefficients
// are computed lazily, so a plain Insert-then-Eval sequence just works.
//
// To evaluate one spline from many goroutines, for example a renderer
// evaluating the same curve per pixel, call [Spline.Finalize] once after
// the last insertion. Finalize builds all derived coefficients eagerly;
// afterwards
// [Spline.Eval] performs no writes and is safe for concurrent use. Skipping
// Finalize and evaluating a freshly mutated spline from several goroutines
// is a data race.
//
// # Shared ownership
//
// Multiple owners (for example, several scene objects referencing the same
// declared curve) share one instance through explicit reference counting:
// [Acquire], [Release], [Destroy] and [Copy] are free functions and safe to
// call with a nil spline. A new spline starts with one reference; [Copy]
// yields an independent deep copy with its own count.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A New Method of Interpolation and Smooth Curve Fitting Based on Local Procedures] by Hiroshi Akima
//   - [Interpolating Splines with Local Tension, Continuity, and Bias Control] by Kochanek and Bartels
//   - [X-Splines: A Spline Model Designed for the End-User] by Blanc and Schlick
//   - the natural cubic spline treatment of Numerical Recipes, ch. 3.3
//
// [A New Method of Interpolation and Smooth Curve Fitting Based on Local Procedures]: https://dl.acm.org/doi/10.1145/321607.321609
// [Interpolating Splines with Local Tension, Continuity, and Bias Control]: https://dl.acm.org/doi/10.1145/800031.808575
// [X-Splines: A Spline Model Designed for the End-User]: https://dl.acm.org/doi/10.1145/218380.218488
package spline
