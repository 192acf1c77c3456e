package buchdahl

import (
	"fmt"
	"math"

	"github.com/katlumen/opticalglass/medium"
	"github.com/katlumen/opticalglass/spectral"
)

// Normal-glass-line constants: the regression of ν1 against ν2 across the
// common optical glasses, ν1 = b + m·ν2 (Robb & Mercado).
const (
	GlassLineB = -0.064667
	GlassLineM = -1.604048
)

// Micrometer wavelengths of the standard blue and red fit lines, resolved
// once. Both names are registry constants, so mustLineUm can only panic on
// a broken registry.
var (
	blueLineUm = mustLineUm("F")
	redLineUm  = mustLineUm("C")
)

func mustLineUm(name string) float64 {
	wv, err := spectral.Resolve(name)
	if err != nil {
		panic(err)
	}

	return wv * 1e-3
}

// Model is a quadratic chromatic model n(ω) = n0 + ν1·ω + ν2·ω² acting as
// an optical medium. Unlike formula and tabulated media it supports an
// explicit in-place refit via UpdateModel; all other methods treat the
// model as immutable. The model has no declared wavelength domain, so
// CalcRindex never rejects a query.
type Model struct {
	label   string
	catalog string
	wv0Um   float64
	n0      float64
	coords  Coords

	// Chromatic coordinates of the blue and red fit lines, retained so
	// UpdateModel re-solves the identical system.
	omBlue float64
	omRed  float64

	// Glass-line constants used by (nd, Vd) fits.
	lineB float64
	lineM float64
}

var _ medium.Medium = (*Model)(nil)

// New builds a model directly from a reference wavelength (µm), reference
// index and coefficient pair, with the standard F/C fit lines retained for
// refits.
func New(label, catalog string, wv0Um, n0 float64, c Coords) *Model {
	return &Model{
		label:   label,
		catalog: catalog,
		wv0Um:   wv0Um,
		n0:      n0,
		coords:  c,
		omBlue:  Omega(blueLineUm - wv0Um),
		omRed:   Omega(redLineUm - wv0Um),
		lineB:   GlassLineB,
		lineM:   GlassLineM,
	}
}

// FromIndices fits a model to three reference indices (exact 2×2 solve).
// The model reproduces all three inputs bit-exactly at the fit lines.
//
// Errors:
//   - ErrDegenerateDispersion — coincident fit lines.
func FromIndices(label, catalog string, n0, nBlue, nRed float64, opts ...Option) (*Model, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	wv0Um, omB, omR, err := lineOmegas(cfg.Lines)
	if err != nil {
		return nil, err
	}
	v1, v2, err := solve2x2(omB, omB*omB, omR, omR*omR, nBlue-n0, nRed-n0)
	if err != nil {
		return nil, err
	}

	return &Model{
		label:   label,
		catalog: catalog,
		wv0Um:   wv0Um,
		n0:      n0,
		coords:  Coords{V1: v1, V2: v2},
		omBlue:  omB,
		omRed:   omR,
		lineB:   GlassLineB,
		lineM:   GlassLineM,
	}, nil
}

// FromNdVd fits a model to a six-digit glass specification. The total
// dispersion nF − nC follows from the Abbe relation, and the normal
// glass line ν1 = b + m·ν2 supplies the second constraint, so the model
// reproduces both nd and Vd exactly.
//
// Errors:
//   - ErrDegenerateDispersion — vd is zero or non-finite.
func FromNdVd(label, catalog string, nd, vd float64, opts ...Option) (*Model, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	wv0Um, omB, omR, err := lineOmegas(cfg.Lines)
	if err != nil {
		return nil, err
	}
	m := &Model{
		label:   label,
		catalog: catalog,
		wv0Um:   wv0Um,
		omBlue:  omB,
		omRed:   omR,
		lineB:   GlassLineB,
		lineM:   GlassLineM,
	}
	if err := m.UpdateModel(nd, vd); err != nil {
		return nil, err
	}

	return m, nil
}

// WithGlassLine overrides the normal-glass-line constants used by
// (nd, Vd) fits, e.g. the line between two real glasses from ModelLine.
func (m *Model) WithGlassLine(b, slope float64) *Model {
	m.lineB = b
	m.lineM = slope

	return m
}

// UpdateModel refits the coefficients in place from a new (nd, vd) pair
// and resets n0 to nd. The solve is exact and closed-form, so repeating a
// call with identical arguments yields bit-identical coefficients.
//
// Errors:
//   - ErrDegenerateDispersion — vd is zero or non-finite, or the fit
//     lines coincide.
func (m *Model) UpdateModel(nd, vd float64) error {
	if vd == 0 || math.IsNaN(vd) || math.IsInf(vd, 0) {
		return fmt.Errorf("%w: vd = %g", ErrDegenerateDispersion, vd)
	}
	deltaOm := m.omBlue - m.omRed
	deltaOm2 := m.omBlue*m.omBlue - m.omRed*m.omRed
	denom := m.lineM*deltaOm + deltaOm2
	if math.Abs(denom) < detEps {
		return fmt.Errorf("%w: coincident fit lines", ErrDegenerateDispersion)
	}

	dFC := (nd - 1) / vd
	v2 := (dFC - m.lineB*deltaOm) / denom
	m.coords = Coords{V1: m.lineB + m.lineM*v2, V2: v2}
	m.n0 = nd

	return nil
}

// Name returns the model label, or the glass code when unlabeled.
func (m *Model) Name() string {
	if m.label == "" {
		if code, err := m.GlassCode(); err == nil {
			return code
		}
	}

	return m.label
}

// CatalogName returns the owning catalog label.
func (m *Model) CatalogName() string { return m.catalog }

// N0 returns the reference index.
func (m *Model) N0() float64 { return m.n0 }

// Wv0Um returns the reference wavelength in micrometers.
func (m *Model) Wv0Um() float64 { return m.wv0Um }

// Coords returns the fitted coefficients.
func (m *Model) Coords() Coords { return m.coords }

// CalcRindex evaluates the quadratic model at wvNm. The model is defined
// for every positive wavelength; no domain error is possible.
func (m *Model) CalcRindex(wvNm float64) (float64, error) {
	om := Omega(wvNm*1e-3 - m.wv0Um)

	return m.n0 + m.coords.V1*om + m.coords.V2*om*om, nil
}

// Rindex resolves token through the spectral registry and evaluates.
func (m *Model) Rindex(token string) (float64, error) {
	wv, err := spectral.Resolve(token)
	if err != nil {
		return 0, err
	}

	return m.CalcRindex(wv)
}

// MeasRindex always fails: a fitted model carries no measured data.
func (m *Model) MeasRindex(token string) (float64, error) {
	return 0, fmt.Errorf("%w: model glass %q", medium.ErrNoMeasuredData, m.label)
}

// GlassCode derives the "nnn.vvv" code from the modeled d, F and C
// indices. For (nd, Vd) fits this reproduces the input pair.
func (m *Model) GlassCode() (string, error) {
	return medium.GlassCodeOf(m)
}

// ModelLine computes the (b, m) line through two real glasses in
// (ν1, ν2) space. Pairs achromatized across the fit lines cluster along
// this line; feed it to WithGlassLine to bias (nd, Vd) fits toward a
// particular glass family.
//
// Errors:
//   - ErrDegenerateDispersion — the glasses have equal ν2.
//   - any index-query error from either glass.
func ModelLine(gla1, gla2 medium.Medium, opts ...Option) (b, slope float64, err error) {
	fit := func(g medium.Medium) (Coords, error) {
		cfg := DefaultOptions()
		for _, opt := range opts {
			opt(&cfg)
		}
		var idx [3]float64
		for i, token := range cfg.Lines {
			n, err := g.Rindex(token)
			if err != nil {
				return Coords{}, fmt.Errorf("glass %q: %w", g.Name(), err)
			}
			idx[i] = n
		}

		return CalcCoords(idx[0], idx[1], idx[2], opts...)
	}

	c1, err := fit(gla1)
	if err != nil {
		return 0, 0, err
	}
	c2, err := fit(gla2)
	if err != nil {
		return 0, 0, err
	}
	if math.Abs(c1.V2-c2.V2) < detEps {
		return 0, 0, fmt.Errorf("%w: equal quadratic coefficients", ErrDegenerateDispersion)
	}
	slope = (c1.V1 - c2.V1) / (c1.V2 - c2.V2)

	return c1.V1 - slope*c1.V2, slope, nil
}
