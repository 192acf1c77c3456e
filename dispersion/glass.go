package dispersion

import (
	"errors"
	"fmt"
	"math"

	"github.com/katlumen/opticalglass/medium"
	"github.com/katlumen/opticalglass/spectral"
)

// Options configures glass construction. Resolve via DefaultOptions and
// the WithX setters; New validates data-driven fields and returns sentinel
// errors rather than panicking, since coefficients come from catalog data.
type Options struct {
	// Domain is the declared valid wavelength interval. Unbounded if zero.
	Domain medium.Domain
	// Measured maps spectral-line tokens (or wavelength strings) to directly
	// measured refractive indices.
	Measured map[string]float64
	// Exponents holds per-coefficient power-of-ten multipliers, applied once
	// at construction. Must match the coefficient count when present.
	Exponents []float64
	// Extrapolate permits out-of-domain evaluation, flagged with
	// medium.ErrExtrapolated.
	Extrapolate bool
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults: unbounded domain, no
// measured table, extrapolation disabled.
func DefaultOptions() Options {
	return Options{}
}

// WithDomainNm declares the valid wavelength domain in nanometers.
func WithDomainNm(minNm, maxNm float64) Option {
	return func(o *Options) { o.Domain = medium.Domain{MinNm: minNm, MaxNm: maxNm} }
}

// WithDomainUm declares the valid wavelength domain in micrometers, the
// unit vendor sheets use; normalized to nanometers at this boundary.
func WithDomainUm(minUm, maxUm float64) Option {
	return func(o *Options) { o.Domain = medium.DomainFromUm(minUm, maxUm) }
}

// WithMeasured attaches the measured-index table.
func WithMeasured(measured map[string]float64) Option {
	return func(o *Options) { o.Measured = measured }
}

// WithExponents attaches per-coefficient power-of-ten exponents.
func WithExponents(exps []float64) Option {
	return func(o *Options) { o.Exponents = exps }
}

// WithExtrapolation permits out-of-domain queries; results are flagged
// with medium.ErrExtrapolated.
func WithExtrapolation() Option {
	return func(o *Options) { o.Extrapolate = true }
}

// Glass is a coefficient-formula optical medium. Immutable after New;
// all query methods are safe for concurrent use.
type Glass struct {
	name        string
	catalog     string
	formula     Formula
	coefs       []float64
	domain      medium.Domain
	measured    map[string]float64
	extrapolate bool
}

var _ medium.Medium = (*Glass)(nil)

// New constructs a formula glass from a catalog record.
//
// Validation order:
//  1. formula tag implemented (ErrUnsupportedFormula)
//  2. exponent count, when exponents are present (ErrExponentCount)
//  3. coefficient count for the family (ErrCoefficientCount)
//  4. domain sanity when bounded (ErrBadDomain)
//
// Errors carry the glass name for context; match with errors.Is.
func New(name, catalog string, formula Formula, coefs []float64, opts ...Option) (*Glass, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if formula == FormulaUnknown {
		return nil, fmt.Errorf("%w: glass %q", ErrUnsupportedFormula, name)
	}

	c := append([]float64(nil), coefs...)
	if cfg.Exponents != nil {
		scaled, err := ApplyExponents(c, cfg.Exponents)
		if err != nil {
			return nil, fmt.Errorf("glass %q: %w", name, err)
		}
		c = scaled
	}
	if err := validateCoefs(formula, len(c)); err != nil {
		return nil, fmt.Errorf("glass %q: %w", name, err)
	}
	if cfg.Domain.Bounded() {
		d := cfg.Domain
		if math.IsNaN(d.MinNm) || math.IsNaN(d.MaxNm) || d.MinNm <= 0 || d.MinNm >= d.MaxNm {
			return nil, fmt.Errorf("%w: [%g, %g] nm for glass %q", ErrBadDomain, d.MinNm, d.MaxNm, name)
		}
	}

	var measured map[string]float64
	if len(cfg.Measured) > 0 {
		measured = make(map[string]float64, len(cfg.Measured))
		for k, v := range cfg.Measured {
			measured[k] = v
		}
	}

	return &Glass{
		name:        name,
		catalog:     catalog,
		formula:     formula,
		coefs:       c,
		domain:      cfg.Domain,
		measured:    measured,
		extrapolate: cfg.Extrapolate,
	}, nil
}

// Name returns the glass name.
func (g *Glass) Name() string { return g.name }

// CatalogName returns the owning catalog.
func (g *Glass) CatalogName() string { return g.catalog }

// Formula returns the formula family tag.
func (g *Glass) Formula() Formula { return g.formula }

// Coefs returns a copy of the effective (exponent-applied) coefficients.
func (g *Glass) Coefs() []float64 { return append([]float64(nil), g.coefs...) }

// Domain returns the declared wavelength domain.
func (g *Glass) Domain() medium.Domain { return g.domain }

// CalcRindex evaluates the dispersion formula at wvNm.
//
// Errors:
//   - medium.ErrWavelengthOutOfRange — out-of-domain, extrapolation disabled.
//   - medium.ErrExtrapolated — advisory; the returned value is valid.
func (g *Glass) CalcRindex(wvNm float64) (float64, error) {
	domErr := g.domain.Check(wvNm, g.extrapolate)
	if domErr != nil && !errors.Is(domErr, medium.ErrExtrapolated) {
		return 0, domErr
	}

	n, err := eval(g.formula, g.coefs, wvNm*1e-3)
	if err != nil {
		return 0, fmt.Errorf("glass %q: %w", g.name, err)
	}

	return n, domErr
}

// Rindex resolves token through the spectral registry and evaluates.
func (g *Glass) Rindex(token string) (float64, error) {
	wv, err := spectral.Resolve(token)
	if err != nil {
		return 0, err
	}

	return g.CalcRindex(wv)
}

// MeasRindex returns the measured index tabulated for token. Tokens match
// the table key directly, or numerically: "587.5618" finds the entry keyed
// "d" and vice versa. Absent data is medium.ErrNoMeasuredData — the
// calculated index is never substituted.
func (g *Glass) MeasRindex(token string) (float64, error) {
	if n, ok := g.measured[token]; ok {
		return n, nil
	}
	wv, err := spectral.Resolve(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", medium.ErrNoMeasuredData, token)
	}
	for key, n := range g.measured {
		kwv, kerr := spectral.Resolve(key)
		if kerr == nil && math.Abs(kwv-wv) < 1e-9 {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", medium.ErrNoMeasuredData, token)
}

// GlassCode derives the "nnn.vvv" code from the d, F and C indices.
func (g *Glass) GlassCode() (string, error) {
	return medium.GlassCodeOf(g)
}
