package interp

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by kernel construction.
var (
	// ErrTooFewPoints indicates fewer than two samples were supplied.
	ErrTooFewPoints = errors.New("interp: need at least two sample points")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("interp: xs and ys lengths differ")

	// ErrNotIncreasing indicates xs is not strictly increasing (duplicates
	// included).
	ErrNotIncreasing = errors.New("interp: xs must be strictly increasing")
)

// Spline is a natural cubic spline through (xs[i], ys[i]).
//
// Construction solves the standard tridiagonal system for the second
// derivatives with the natural boundary condition y''(x0) = y''(xn) = 0.
// Evaluation outside [xs[0], xs[n-1]] extends the boundary cubic segment;
// whether that extension is permitted is the caller's policy.
type Spline struct {
	xs, ys []float64
	y2     []float64 // second derivatives at the knots
}

// NewSpline builds a natural cubic spline over strictly increasing xs.
// With exactly two points the spline degenerates to the connecting line.
//
// Complexity: O(n) time, O(n) space.
//
// Errors:
//   - ErrLengthMismatch — len(xs) != len(ys).
//   - ErrTooFewPoints   — fewer than two samples.
//   - ErrNotIncreasing  — xs out of order or duplicated.
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	n := len(xs)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}

	s := &Spline{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		y2: make([]float64, n),
	}
	if n == 2 {
		return s, nil // y2 stays zero: straight segment
	}

	// Tridiagonal solve for the interior second derivatives (Thomas
	// algorithm). u is scratch storage for the decomposition.
	u := make([]float64, n-1)
	for i := 1; i < n-1; i++ {
		sig := (xs[i] - xs[i-1]) / (xs[i+1] - xs[i-1])
		p := sig*s.y2[i-1] + 2
		s.y2[i] = (sig - 1) / p
		du := (ys[i+1]-ys[i])/(xs[i+1]-xs[i]) - (ys[i]-ys[i-1])/(xs[i]-xs[i-1])
		u[i] = (6*du/(xs[i+1]-xs[i-1]) - sig*u[i-1]) / p
	}
	// Natural boundary: y2[n-1] = 0, then back-substitute.
	s.y2[n-1] = 0
	for i := n - 2; i >= 0; i-- {
		s.y2[i] = s.y2[i]*s.y2[i+1] + u[i]
	}

	return s, nil
}

// Eval returns the spline value at x. Queries beyond the knot range
// evaluate the boundary segment's cubic, i.e. a smooth extrapolation.
//
// Complexity: O(log n).
func (s *Spline) Eval(x float64) float64 {
	i := s.segment(x)
	h := s.xs[i+1] - s.xs[i]
	a := (s.xs[i+1] - x) / h
	b := (x - s.xs[i]) / h

	return a*s.ys[i] + b*s.ys[i+1] +
		((a*a*a-a)*s.y2[i]+(b*b*b-b)*s.y2[i+1])*(h*h)/6
}

// EvalSlice evaluates the spline at every x in xs, same-shaped output.
func (s *Spline) EvalSlice(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Eval(x)
	}

	return out
}

// Domain returns the knot range [min, max].
func (s *Spline) Domain() (minX, maxX float64) {
	return s.xs[0], s.xs[len(s.xs)-1]
}

// segment locates the knot interval containing x, clamped to the boundary
// segments for out-of-range queries.
func (s *Spline) segment(x float64) int {
	n := len(s.xs)
	i := sort.SearchFloat64s(s.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	return i
}

// Linear is a piecewise-linear interpolator over strictly increasing xs.
// It shares the Spline validation rules and extrapolates by extending the
// boundary segments.
type Linear struct {
	xs, ys []float64
}

// NewLinear builds a piecewise-linear interpolator. Same validation and
// errors as NewSpline.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotIncreasing, i-1, xs[i-1], i, xs[i])
		}
	}

	return &Linear{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// Eval returns the piecewise-linear value at x, extending boundary segments
// beyond the sample range.
func (l *Linear) Eval(x float64) float64 {
	n := len(l.xs)
	i := sort.SearchFloat64s(l.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	t := (x - l.xs[i]) / (l.xs[i+1] - l.xs[i])

	return l.ys[i] + t*(l.ys[i+1]-l.ys[i])
}

// Domain returns the sample range [min, max].
func (l *Linear) Domain() (minX, maxX float64) {
	return l.xs[0], l.xs[len(l.xs)-1]
}
