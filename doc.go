// Package spline evaluates parametric curves defined by small fixed sets of
// control points. It is the math core beneath interactive curve editors: the
// editor owns the control points and the selected curve family, and calls
// into this package with a parameter value to get back points, derivatives,
// tangents, and normals.
//
// # Curve families
//
// Five families are supported, each with its own fixed-arity value type:
//
//   - [Line] — linear interpolation between two points
//   - [QuadBez] — quadratic Bézier (Bernstein basis, three points)
//   - [CubicBez] — cubic Bézier (Bernstein basis, four points)
//   - [CatmullRom] — uniform Catmull-Rom cubic; interpolates its two inner
//     points, the outer points shape the end tangents
//   - [CubicBSpline] — uniform cubic B-spline basis segment; approximating,
//     it generally touches none of its control points
//
// The family set is closed. [Segment] is the tagged-union form of the five
// families, dispatching with a single exhaustive switch; use it when the
// family is chosen at runtime, e.g. by an editor's family picker.
//
// # Evaluation
//
// Every curve implements [ParametricCurve]. Evaluation is a pure function of
// the receiver and t: nothing is retained between calls, control points are
// never mutated, and calls may run concurrently without locking. t is
// conventionally in [0, 1] but is never clamped; all blends are total
// polynomials and extrapolate gracefully outside that range.
//
// # Derivatives, tangents, and normals
//
// [CubicBez] additionally provides analytic first and second derivatives
// ([CubicBez.Derivative], [CubicBez.SecondDerivative]), unit tangent and
// normal vectors, and renderable tangent and normal line segments. The unit
// vectors are epsilon-guarded: when the derivative is degenerate (a cusp, or
// coincident control points), normalization is skipped and the near-zero
// vector is returned as-is, so tangent and normal lines collapse to the
// curve point instead of failing.
//
// # Sampling
//
// [Sample] yields evenly spaced points along a curve as an iterator, the
// polyline-building loop display code consumes. Use [slices.Collect] to
// materialize it.
package spline
