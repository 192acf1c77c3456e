package catalog

import (
	"errors"
	"fmt"

	"github.com/katlumen/opticalglass/dispersion"
	"github.com/katlumen/opticalglass/medium"
	"github.com/katlumen/opticalglass/tabulated"
)

// Sentinel errors for record handling.
var (
	// ErrEmptyRecord indicates a record carrying no usable representation.
	ErrEmptyRecord = errors.New("catalog: record carries no dispersion data")

	// ErrBadUnits indicates an unrecognized wavelength unit tag.
	ErrBadUnits = errors.New("catalog: bad wavelength units")
)

// Record is the neutral shape a catalog row reduces to before a medium is
// constructed. Exactly one representation should be populated; when
// several are, the factory prefers formula over tabulated over model
// over constant.
type Record struct {
	Name    string
	Catalog string

	// Formula representation.
	Formula  string
	Coefs    []float64
	CoefExps []float64 // optional power-of-ten exponents, paired with Coefs

	// Tabulated representation, sample wavelengths in nanometers.
	WvlsNm []float64
	Rndx   []float64

	// Extinction table for absorbing materials, nanometers.
	KWvlsNm []float64
	Kvals   []float64

	// Model representation: a six-digit glass specification.
	Nd float64
	Vd float64

	// Constant-index representation.
	ConstantN float64

	// Measured indices keyed by spectral line or numeric wavelength.
	Measured map[string]float64

	// Declared valid domain in Units ("um" when empty, or "nm").
	DomainMin float64
	DomainMax float64
	Units     string

	// Extrapolate permits out-of-domain queries, flagged advisory.
	Extrapolate bool
}

// domainNm normalizes the declared domain to nanometers.
func (r Record) domainNm() (medium.Domain, error) {
	switch r.Units {
	case "", "um", "µm":
		return medium.DomainFromUm(r.DomainMin, r.DomainMax), nil
	case "nm":
		return medium.Domain{MinNm: r.DomainMin, MaxNm: r.DomainMax}, nil
	default:
		return medium.Domain{}, fmt.Errorf("%w: %q", ErrBadUnits, r.Units)
	}
}

// Medium constructs the optical medium a record describes.
//
// Dispatch order: formula tag, tabulated samples, (nd, Vd) model,
// constant index. Construction errors of the selected representation
// pass through unchanged.
//
// Errors:
//   - ErrEmptyRecord — no representation populated.
//   - ErrBadUnits    — unrecognized Units tag.
func Medium(r Record) (medium.Medium, error) {
	switch {
	case r.Formula != "":
		f, err := dispersion.ParseFormula(r.Formula)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", r.Name, err)
		}
		dom, err := r.domainNm()
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", r.Name, err)
		}
		opts := []dispersion.Option{
			dispersion.WithDomainNm(dom.MinNm, dom.MaxNm),
			dispersion.WithMeasured(r.Measured),
		}
		if r.CoefExps != nil {
			opts = append(opts, dispersion.WithExponents(r.CoefExps))
		}
		if r.Extrapolate {
			opts = append(opts, dispersion.WithExtrapolation())
		}

		return dispersion.New(r.Name, r.Catalog, f, r.Coefs, opts...)

	case len(r.WvlsNm) > 0:
		opts := []tabulated.Option{tabulated.WithCatalog(r.Catalog)}
		if r.Kvals != nil {
			opts = append(opts, tabulated.WithExtinction(r.KWvlsNm, r.Kvals))
		}
		if r.Extrapolate {
			opts = append(opts, tabulated.WithExtrapolation())
		}

		return tabulated.New(r.Name, r.WvlsNm, r.Rndx, opts...)

	case r.Nd != 0:
		return NewModelGlass(r.Name, r.Catalog, r.Nd, r.Vd)

	case r.ConstantN != 0:
		return medium.NewConstantIndex(r.ConstantN, r.Name), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrEmptyRecord, r.Name)
}
