package medium

import (
	"errors"
	"fmt"
	"math"
)

// domainFuzzNm is the tolerance applied to domain-boundary comparisons.
// Vendor data declares domains in micrometers to limited precision; 1e-14 µm
// of slack (1e-11 nm) keeps exact-boundary queries in-domain.
const domainFuzzNm = 1e-11

// Medium is the capability contract every material representation satisfies.
//
// A Medium is identified by a (name, catalog) pair, unique within its
// catalog, and maps wavelength → refractive index deterministically.
// Implementations are immutable after construction except for explicit
// refit operations on model glasses; all query methods are safe for
// concurrent use.
type Medium interface {
	// Name returns the material identifier, e.g. "N-BK7".
	Name() string

	// CatalogName returns the catalog the material belongs to, e.g. "Schott".
	CatalogName() string

	// CalcRindex evaluates the dispersion model at wvNm (nanometers).
	//
	// Errors:
	//   - ErrWavelengthOutOfRange — wvNm outside the declared domain and
	//     extrapolation is disabled (no value returned).
	//   - ErrExtrapolated — advisory; wvNm outside the domain but
	//     extrapolation is enabled. The returned value is valid.
	CalcRindex(wvNm float64) (float64, error)

	// Rindex resolves token (spectral-line name or numeric string) through
	// the spectral registry, then delegates to CalcRindex.
	Rindex(token string) (float64, error)

	// MeasRindex returns the directly measured index tabulated for token.
	// It fails with ErrNoMeasuredData when none exists — it never falls
	// back to the calculated value.
	MeasRindex(token string) (float64, error)

	// GlassCode returns the "nnn.vvv" code derived from (nd, Vd). The
	// advisory ErrExtrapolated may accompany a valid code when any of the
	// d, F or C lines lies outside the declared domain.
	GlassCode() (string, error)
}

// Domain is a closed wavelength interval [MinNm, MaxNm] in nanometers.
// The zero value means "unbounded": Contains always reports true.
type Domain struct {
	MinNm float64
	MaxNm float64
}

// DomainFromUm builds a Domain from micrometer bounds, normalizing units
// at the boundary as catalog records commonly declare domains in µm.
func DomainFromUm(minUm, maxUm float64) Domain {
	return Domain{MinNm: minUm * 1e3, MaxNm: maxUm * 1e3}
}

// Bounded reports whether the domain restricts queries at all.
func (d Domain) Bounded() bool { return d.MinNm != 0 || d.MaxNm != 0 }

// Contains reports whether wvNm lies inside the domain, with boundary fuzz
// so that querying exactly at MinNm or MaxNm always succeeds.
func (d Domain) Contains(wvNm float64) bool {
	if !d.Bounded() {
		return true
	}

	return wvNm >= d.MinNm-domainFuzzNm && wvNm <= d.MaxNm+domainFuzzNm
}

// Check validates wvNm against the domain under the shared extrapolation
// contract and returns the advisory or rejecting sentinel for the caller to
// propagate next to its computed value.
//
// Returns:
//   - nil                       — wvNm is in-domain.
//   - ErrExtrapolated           — out-of-domain, extrapolation allowed.
//   - ErrWavelengthOutOfRange   — out-of-domain, extrapolation disallowed.
func (d Domain) Check(wvNm float64, extrapolate bool) error {
	if d.Contains(wvNm) {
		return nil
	}
	if extrapolate {
		return ErrExtrapolated
	}

	return fmt.Errorf("%w: %g nm not in [%g, %g] nm", ErrWavelengthOutOfRange, wvNm, d.MinNm, d.MaxNm)
}

// CalcRindexSlice evaluates m at every wavelength in wvNm, returning an
// index slice of the same length. This is the bulk path behind plotting
// sweeps; element i of the result corresponds to wvNm[i].
//
// If any element was extrapolated the full result is still returned,
// flagged with the advisory ErrExtrapolated. Any other error aborts the
// sweep and is returned with positional context.
func CalcRindexSlice(m Medium, wvNm []float64) ([]float64, error) {
	out := make([]float64, len(wvNm))
	extrapolated := false
	for i, wv := range wvNm {
		n, err := m.CalcRindex(wv)
		switch {
		case err == nil:
		case errors.Is(err, ErrExtrapolated):
			extrapolated = true
		default:
			return nil, fmt.Errorf("medium: sweep element %d (%g nm): %w", i, wv, err)
		}
		out[i] = n
	}
	if extrapolated {
		return out, ErrExtrapolated
	}

	return out, nil
}

// RindexSlice resolves each token through the spectral registry and
// evaluates m at the result. Same error contract as CalcRindexSlice.
func RindexSlice(m Medium, tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	extrapolated := false
	for i, token := range tokens {
		n, err := m.Rindex(token)
		switch {
		case err == nil:
		case errors.Is(err, ErrExtrapolated):
			extrapolated = true
		default:
			return nil, fmt.Errorf("medium: sweep token %q: %w", token, err)
		}
		out[i] = n
	}
	if extrapolated {
		return out, ErrExtrapolated
	}

	return out, nil
}

// Sweep returns count wavelengths evenly spaced over [minNm, maxNm],
// the usual abscissa for dispersion-curve plots. count < 2 yields a
// single-element slice holding minNm.
func Sweep(minNm, maxNm float64, count int) []float64 {
	if count < 2 {
		return []float64{minNm}
	}
	out := make([]float64, count)
	step := (maxNm - minNm) / float64(count-1)
	for i := range out {
		out[i] = minNm + float64(i)*step
	}
	// Pin the last sample to the exact upper bound.
	out[count-1] = maxNm

	return out
}

// GlassCodeOf derives the "nnn.vvv" code of m from its indices at the
// d, F and C lines. It is the shared implementation behind the GlassCode
// method of every representation.
//
// The advisory ErrExtrapolated from a line query is not fatal: the index
// it accompanies is valid, so the code is still derived and returned
// alongside the advisory, mirroring the CalcRindex contract.
//
// Errors:
//   - ErrExtrapolated — advisory; at least one line lies outside the
//     declared domain. The returned code is valid.
//   - ErrDegenerateGlassCode — nF equals nC.
//   - any non-advisory error from Rindex.
func GlassCodeOf(m Medium) (string, error) {
	extrapolated := false
	line := func(token string) (float64, error) {
		n, err := m.Rindex(token)
		switch {
		case err == nil:
		case errors.Is(err, ErrExtrapolated):
			extrapolated = true
		default:
			return 0, err
		}

		return n, nil
	}

	nd, err := line("d")
	if err != nil {
		return "", err
	}
	nF, err := line("F")
	if err != nil {
		return "", err
	}
	nC, err := line("C")
	if err != nil {
		return "", err
	}
	vd := (nd - 1) / (nF - nC)
	if math.IsNaN(vd) || math.IsInf(vd, 0) {
		return "", fmt.Errorf("%w: %q", ErrDegenerateGlassCode, m.Name())
	}
	code := Encode(nd, vd)
	if extrapolated {
		return code, ErrExtrapolated
	}

	return code, nil
}
