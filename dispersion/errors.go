package dispersion

import "errors"

// Sentinel errors for formula-glass construction and evaluation.
var (
	// ErrUnsupportedFormula indicates a formula tag this package does not
	// implement. Fatal for the medium: it cannot be constructed.
	ErrUnsupportedFormula = errors.New("dispersion: unsupported dispersion formula")

	// ErrCoefficientCount indicates a coefficient vector whose length does
	// not match the declared formula family.
	ErrCoefficientCount = errors.New("dispersion: coefficient count does not match formula")

	// ErrExponentCount indicates a power-of-ten exponent vector whose length
	// differs from the coefficient vector.
	ErrExponentCount = errors.New("dispersion: exponent count does not match coefficients")

	// ErrBadDomain indicates a wavelength domain with min >= max or
	// non-positive bounds.
	ErrBadDomain = errors.New("dispersion: invalid wavelength domain")
)
