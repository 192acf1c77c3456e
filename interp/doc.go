// Package interp provides the 1-D interpolation kernels used by tabulated
// optical media: a natural cubic spline and a piecewise-linear fallback.
//
// 🚀 Why a spline?
//
//	Refractive-index tables from vendor catalogs and RefractiveIndex.INFO
//	are smooth, slowly varying curves. Cubic-spline interpolation matches
//	the reference data far better than linear segments, and its continuous
//	first derivative keeps derived quantities (Abbe numbers, partials)
//	stable between samples.
//
// ✨ Key features:
//   - natural cubic spline (zero second derivative at both ends)
//   - O(n) construction via the tridiagonal (Thomas) solve, O(log n) eval
//   - evaluation beyond the knots extends the boundary polynomial, so the
//     range policy (reject vs. extrapolate) stays with the caller
//   - strictly increasing, duplicate-free abscissas enforced at build time
//
// ⚙️ Usage:
//
//	s, err := interp.NewSpline(wvls, rndx)
//	if err != nil { ... } // ErrTooFewPoints, ErrNotIncreasing, ErrLengthMismatch
//	n := s.Eval(587.5618)
//
// The kernels are pure data + arithmetic: no locking, safe for concurrent
// reads after construction.
package interp
