package medium

import "errors"

// Sentinel errors shared by every Medium implementation. Implementations in
// sibling packages return these so callers can match with errors.Is without
// caring which representation backs the material.
var (
	// ErrWavelengthOutOfRange indicates a query outside the medium's declared
	// wavelength domain while extrapolation is disabled. Recoverable: the
	// caller may rebuild the medium with extrapolation enabled.
	ErrWavelengthOutOfRange = errors.New("medium: wavelength outside valid domain")

	// ErrExtrapolated is an advisory sentinel: the returned index is valid
	// but was computed outside the declared domain. It is returned alongside
	// the value when extrapolation was explicitly enabled, so extrapolated
	// results stay distinguishable from interpolated ones.
	ErrExtrapolated = errors.New("medium: result extrapolated beyond data domain")

	// ErrNoMeasuredData indicates that no directly measured index exists for
	// the requested token. Falling back to the calculated index is a caller
	// decision, never automatic.
	ErrNoMeasuredData = errors.New("medium: no measured index for token")

	// ErrBadGlassCode indicates a glass-code string that cannot be decoded.
	ErrBadGlassCode = errors.New("medium: malformed glass code")

	// ErrDegenerateGlassCode indicates a medium whose F and C indices
	// coincide, leaving the Abbe number and therefore the code undefined.
	ErrDegenerateGlassCode = errors.New("medium: glass code undefined: nF equals nC")
)
