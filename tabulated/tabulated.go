package tabulated

import (
	"errors"
	"fmt"
	"math"

	"github.com/katlumen/opticalglass/interp"
	"github.com/katlumen/opticalglass/medium"
	"github.com/katlumen/opticalglass/spectral"
)

// Sentinel errors specific to tabulated media.
var (
	// ErrNoSamples indicates an empty sample table.
	ErrNoSamples = errors.New("tabulated: no samples supplied")

	// ErrNoExtinctionData indicates a k-value query on a medium constructed
	// without an extinction table.
	ErrNoExtinctionData = errors.New("tabulated: no extinction data")
)

// measMatchFuzzNm is the wavelength tolerance for treating a query token as
// naming one of the measured samples.
const measMatchFuzzNm = 1e-9

// Options configures tabulated-medium construction.
type Options struct {
	// Catalog labels the owning catalog (e.g. "rii-main").
	Catalog string
	// Extrapolate permits queries beyond the sample range, flagged with
	// medium.ErrExtrapolated. Default: disabled.
	Extrapolate bool
	// KWvlsNm / Kvals hold the extinction-coefficient table for absorbing
	// materials. When Kvals is set and KWvlsNm is nil, the index sample
	// wavelengths are reused.
	KWvlsNm []float64
	Kvals   []float64
}

// Option is a functional setter for Options.
type Option func(*Options)

// WithCatalog sets the catalog label.
func WithCatalog(cat string) Option {
	return func(o *Options) { o.Catalog = cat }
}

// WithExtrapolation permits out-of-range queries; results are flagged with
// medium.ErrExtrapolated.
func WithExtrapolation() Option {
	return func(o *Options) { o.Extrapolate = true }
}

// WithExtinction attaches the extinction-coefficient table. Pass a nil
// wvlsNm to reuse the refractive-index sample wavelengths.
func WithExtinction(wvlsNm, kvals []float64) Option {
	return func(o *Options) {
		o.KWvlsNm = wvlsNm
		o.Kvals = kvals
	}
}

// Medium is an optical medium backed by interpolated samples. Immutable
// after New; safe for concurrent reads.
type Medium struct {
	label       string
	catalog     string
	wvlsNm      []float64
	rndx        []float64
	nInterp     *interp.Spline // nil for single-sample tables
	domain      medium.Domain
	extrapolate bool

	kWvlsNm []float64
	kvals   []float64
	kInterp *interp.Spline
	kDomain medium.Domain
}

var _ medium.Medium = (*Medium)(nil)

// New builds a tabulated medium from parallel wavelength (nm) and index
// slices. Wavelengths must be strictly increasing and unique; a single
// sample yields a constant-index table.
//
// Errors:
//   - ErrNoSamples             — empty table.
//   - interp.ErrLengthMismatch — slices of different length.
//   - interp.ErrNotIncreasing  — out-of-order or duplicate wavelengths.
func New(label string, wvlsNm, rndx []float64, opts ...Option) (*Medium, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(wvlsNm) == 0 || len(rndx) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSamples, label)
	}
	if len(wvlsNm) != len(rndx) {
		return nil, fmt.Errorf("%w: %d wavelengths vs %d indices", interp.ErrLengthMismatch, len(wvlsNm), len(rndx))
	}

	m := &Medium{
		label:       label,
		catalog:     cfg.Catalog,
		wvlsNm:      append([]float64(nil), wvlsNm...),
		rndx:        append([]float64(nil), rndx...),
		domain:      medium.Domain{MinNm: wvlsNm[0], MaxNm: wvlsNm[len(wvlsNm)-1]},
		extrapolate: cfg.Extrapolate,
	}
	if len(wvlsNm) > 1 {
		s, err := interp.NewSpline(m.wvlsNm, m.rndx)
		if err != nil {
			return nil, fmt.Errorf("medium %q: %w", label, err)
		}
		m.nInterp = s
	}

	if cfg.Kvals != nil {
		kWvls := cfg.KWvlsNm
		if kWvls == nil {
			kWvls = wvlsNm
		}
		if len(kWvls) != len(cfg.Kvals) {
			return nil, fmt.Errorf("%w: %d wavelengths vs %d k-values", interp.ErrLengthMismatch, len(kWvls), len(cfg.Kvals))
		}
		m.kWvlsNm = append([]float64(nil), kWvls...)
		m.kvals = append([]float64(nil), cfg.Kvals...)
		m.kDomain = medium.Domain{MinNm: kWvls[0], MaxNm: kWvls[len(kWvls)-1]}
		if len(kWvls) > 1 {
			s, err := interp.NewSpline(m.kWvlsNm, m.kvals)
			if err != nil {
				return nil, fmt.Errorf("medium %q extinction: %w", label, err)
			}
			m.kInterp = s
		}
	}

	return m, nil
}

// NewFromPairs builds a tabulated medium from (wavelength nm, index) pairs.
func NewFromPairs(label string, pairs [][2]float64, opts ...Option) (*Medium, error) {
	wvls := make([]float64, len(pairs))
	rndx := make([]float64, len(pairs))
	for i, p := range pairs {
		wvls[i] = p[0]
		rndx[i] = p[1]
	}

	return New(label, wvls, rndx, opts...)
}

// Name returns the material label, or the glass code when unlabeled. An
// extrapolation-flagged code still names the medium.
func (m *Medium) Name() string {
	if m.label == "" {
		code, err := m.GlassCode()
		if err == nil || errors.Is(err, medium.ErrExtrapolated) {
			return code
		}
	}

	return m.label
}

// CatalogName returns the owning catalog label.
func (m *Medium) CatalogName() string { return m.catalog }

// Domain returns the tabulated wavelength range.
func (m *Medium) Domain() medium.Domain { return m.domain }

// CalcRindex interpolates the index table at wvNm.
//
// Errors:
//   - medium.ErrWavelengthOutOfRange — beyond the table, extrapolation off.
//   - medium.ErrExtrapolated — advisory; the returned value is the smooth
//     boundary-polynomial extension.
func (m *Medium) CalcRindex(wvNm float64) (float64, error) {
	domErr := m.domain.Check(wvNm, m.extrapolate)
	if domErr != nil && !errors.Is(domErr, medium.ErrExtrapolated) {
		return 0, domErr
	}
	if m.nInterp == nil {
		return m.rndx[0], domErr
	}

	return m.nInterp.Eval(wvNm), domErr
}

// Rindex resolves token through the spectral registry and interpolates.
func (m *Medium) Rindex(token string) (float64, error) {
	wv, err := spectral.Resolve(token)
	if err != nil {
		return 0, err
	}

	return m.CalcRindex(wv)
}

// MeasRindex returns the tabulated sample whose wavelength matches token
// exactly. Between-sample queries are interpolations, not measurements,
// and report medium.ErrNoMeasuredData.
func (m *Medium) MeasRindex(token string) (float64, error) {
	wv, err := spectral.Resolve(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", medium.ErrNoMeasuredData, token)
	}
	for i, w := range m.wvlsNm {
		if math.Abs(w-wv) < measMatchFuzzNm {
			return m.rndx[i], nil
		}
	}

	return 0, fmt.Errorf("%w: %q is not a sample wavelength", medium.ErrNoMeasuredData, token)
}

// GlassCode derives the "nnn.vvv" code from the d, F and C indices. The
// visible lines must lie inside the table, or extrapolation be enabled;
// in the latter case an out-of-table code is returned with the advisory
// medium.ErrExtrapolated.
func (m *Medium) GlassCode() (string, error) {
	return medium.GlassCodeOf(m)
}

// ExtinctionCoeff interpolates the extinction table at wvNm, under the
// same range rules as CalcRindex.
//
// Errors:
//   - ErrNoExtinctionData — the medium carries no k table.
//   - medium.ErrWavelengthOutOfRange / medium.ErrExtrapolated — as above.
func (m *Medium) ExtinctionCoeff(wvNm float64) (float64, error) {
	if m.kvals == nil {
		return 0, fmt.Errorf("%w: %q", ErrNoExtinctionData, m.label)
	}
	domErr := m.kDomain.Check(wvNm, m.extrapolate)
	if domErr != nil && !errors.Is(domErr, medium.ErrExtrapolated) {
		return 0, domErr
	}
	if m.kInterp == nil {
		return m.kvals[0], domErr
	}

	return m.kInterp.Eval(wvNm), domErr
}

// Transmission returns the internal transmission of a thiMm-millimeter
// sample at every extinction-table wavelength:
//
//	T(λ) = exp(−4πk·d/λ), d and λ in nanometers.
//
// Errors:
//   - ErrNoExtinctionData — the medium carries no k table.
func (m *Medium) Transmission(thiMm float64) (wvlsNm, t []float64, err error) {
	if m.kvals == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoExtinctionData, m.label)
	}
	dNm := thiMm * 1e6
	wvlsNm = append([]float64(nil), m.kWvlsNm...)
	t = make([]float64, len(m.kvals))
	for i, k := range m.kvals {
		t[i] = math.Exp(-4 * math.Pi * k * dNm / m.kWvlsNm[i])
	}

	return wvlsNm, t, nil
}
