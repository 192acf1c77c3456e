package buchdahl

import (
	"errors"
	"fmt"
	"math"

	"github.com/katlumen/opticalglass/spectral"
)

// Sentinel errors for coordinate fitting.
var (
	// ErrDegenerateDispersion indicates a zero denominator in a fit:
	// coincident reference wavelengths, equal blue/red indices, or a
	// non-positive Abbe number.
	ErrDegenerateDispersion = errors.New("buchdahl: degenerate dispersion")

	// ErrTooFewSamples indicates a least-squares fit with fewer than three
	// line/index samples.
	ErrTooFewSamples = errors.New("buchdahl: too few samples")
)

// detEps bounds the 2x2 determinant below which a solve is rejected.
const detEps = 1e-15

// Omega maps a wavelength offset from the reference line (micrometers) to
// the Buchdahl chromatic coordinate.
func Omega(deltaUm float64) float64 {
	return deltaUm / (1 + 2.5*deltaUm)
}

// DeltaFromOmega inverts Omega, returning the micrometer offset that maps
// to the coordinate om.
func DeltaFromOmega(om float64) float64 {
	return om / (1 - 2.5*om)
}

// Coords holds the linear and quadratic model coefficients.
type Coords struct {
	V1 float64
	V2 float64
}

// Options configures coordinate calculation and fitting.
type Options struct {
	// Lines names the reference, blue and red spectral lines, in that
	// order. Default: d, F, C.
	Lines [3]string
	// Normalize divides the coefficients by (n0 - 1), yielding the
	// dispersion coefficients used for glass-map plotting.
	Normalize bool
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns the standard d/F/C configuration.
func DefaultOptions() Options {
	return Options{Lines: [3]string{"d", "F", "C"}}
}

// WithLines selects the reference, blue and red spectral lines.
func WithLines(ref, blue, red string) Option {
	return func(o *Options) { o.Lines = [3]string{ref, blue, red} }
}

// WithNormalization divides the fitted coefficients by (n0 - 1).
func WithNormalization() Option {
	return func(o *Options) { o.Normalize = true }
}

// lineOmegas resolves the configured lines and returns the reference
// wavelength (µm) and the blue/red chromatic coordinates.
func lineOmegas(lines [3]string) (wv0Um, omBlue, omRed float64, err error) {
	wv := [3]float64{}
	for i, token := range lines {
		nm, err := spectral.Resolve(token)
		if err != nil {
			return 0, 0, 0, err
		}
		wv[i] = nm * 1e-3
	}
	wv0Um = wv[0]
	omBlue = Omega(wv[1] - wv0Um)
	omRed = Omega(wv[2] - wv0Um)

	return wv0Um, omBlue, omRed, nil
}

// solve2x2 solves [[a11 a12], [a21 a22]]·x = [b1 b2] by Cramer's rule.
func solve2x2(a11, a12, a21, a22, b1, b2 float64) (x1, x2 float64, err error) {
	det := a11*a22 - a12*a21
	if math.Abs(det) < detEps {
		return 0, 0, fmt.Errorf("%w: singular system (det %g)", ErrDegenerateDispersion, det)
	}

	return (b1*a22 - b2*a12) / det, (a11*b2 - a21*b1) / det, nil
}

// CalcCoords solves for the model coefficients given the reference, blue
// and red indices. The system is exactly determined: the resulting model
// reproduces all three inputs.
//
// Errors:
//   - ErrDegenerateDispersion — coincident lines.
//   - spectral.ErrUnknownLine — an unresolvable line option.
func CalcCoords(n0, nBlue, nRed float64, opts ...Option) (Coords, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	_, omB, omR, err := lineOmegas(cfg.Lines)
	if err != nil {
		return Coords{}, err
	}
	v1, v2, err := solve2x2(omB, omB*omB, omR, omR*omR, nBlue-n0, nRed-n0)
	if err != nil {
		return Coords{}, err
	}
	if cfg.Normalize {
		v1 /= n0 - 1
		v2 /= n0 - 1
	}

	return Coords{V1: v1, V2: v2}, nil
}

// FitCoords least-squares fits the model coefficients to a set of
// line/index samples. tokens[0] is the reference line; its index becomes
// n0 and the remaining samples constrain the fit through the normal
// equations. Option lines are ignored here except for normalization.
//
// Errors:
//   - ErrTooFewSamples           — fewer than three samples.
//   - interp-style length checks — tokens and indices must align.
//   - ErrDegenerateDispersion    — collinear chromatic coordinates.
func FitCoords(tokens []string, indices []float64, opts ...Option) (n0 float64, c Coords, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(tokens) != len(indices) {
		return 0, Coords{}, fmt.Errorf("buchdahl: %d tokens vs %d indices", len(tokens), len(indices))
	}
	if len(tokens) < 3 {
		return 0, Coords{}, fmt.Errorf("%w: need at least 3, got %d", ErrTooFewSamples, len(tokens))
	}

	wv0Nm, err := spectral.Resolve(tokens[0])
	if err != nil {
		return 0, Coords{}, err
	}
	wv0Um := wv0Nm * 1e-3
	n0 = indices[0]

	// Normal equations for the two-parameter model d = v1·ω + v2·ω².
	var s11, s12, s22, t1, t2 float64
	for i, token := range tokens {
		nm, err := spectral.Resolve(token)
		if err != nil {
			return 0, Coords{}, err
		}
		om := Omega(nm*1e-3 - wv0Um)
		d := indices[i] - n0
		s11 += om * om
		s12 += om * om * om
		s22 += om * om * om * om
		t1 += om * d
		t2 += om * om * d
	}
	v1, v2, err := solve2x2(s11, s12, s12, s22, t1, t2)
	if err != nil {
		return 0, Coords{}, err
	}
	if cfg.Normalize {
		v1 /= n0 - 1
		v2 /= n0 - 1
	}

	return n0, Coords{V1: v1, V2: v2}, nil
}
