package medium

import "github.com/katlumen/opticalglass/spectral"

// ConstantIndex is a non-dispersive placeholder medium: the same index at
// every wavelength. It backs idealized materials in setup code and the
// low-fidelity Air definition.
type ConstantIndex struct {
	n       float64
	label   string
	catalog string
}

// compile-time contract check
var _ Medium = ConstantIndex{}

// NewConstantIndex builds a constant-index medium with the given label.
func NewConstantIndex(n float64, label string) ConstantIndex {
	return ConstantIndex{n: n, label: label}
}

// Air returns the conventional low-fidelity air definition, n = 1 everywhere.
func Air() ConstantIndex {
	return ConstantIndex{n: 1.0, label: "air"}
}

// Name returns the material label.
func (c ConstantIndex) Name() string { return c.label }

// CatalogName returns the owning catalog; empty for ad hoc media.
func (c ConstantIndex) CatalogName() string { return c.catalog }

// CalcRindex returns the constant index; every wavelength is in-domain.
func (c ConstantIndex) CalcRindex(wvNm float64) (float64, error) {
	if _, err := spectral.ResolveNm(wvNm); err != nil {
		return 0, err
	}

	return c.n, nil
}

// Rindex resolves token and returns the constant index.
func (c ConstantIndex) Rindex(token string) (float64, error) {
	if _, err := spectral.Resolve(token); err != nil {
		return 0, err
	}

	return c.n, nil
}

// MeasRindex always fails: a constant-index medium carries no measurements.
func (c ConstantIndex) MeasRindex(token string) (float64, error) {
	return 0, ErrNoMeasuredData
}

// GlassCode is undefined for non-dispersive media (nF == nC); it reports
// the shared degenerate-code error from GlassCodeOf.
func (c ConstantIndex) GlassCode() (string, error) {
	return GlassCodeOf(c)
}
