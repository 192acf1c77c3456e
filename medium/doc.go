// Package medium defines the capability contract shared by every optical
// material representation in the library, plus the helpers built on it.
//
// 🚀 What is a Medium?
//
//	Any object that answers refractive-index queries for a named material:
//	a vendor-formula glass, a RefractiveIndex.INFO record, a tabulated
//	sample set, a Buchdahl model fit, or a constant-index placeholder.
//	All of them expose the same five operations:
//	  • CalcRindex — evaluate the dispersion model at a wavelength (nm)
//	  • Rindex     — same, but the wavelength may be a spectral-line token
//	  • MeasRindex — return a directly measured value, never a computed one
//	  • GlassCode  — the "nnn.vvv" six-digit code derived from (nd, Vd)
//	  • Name / CatalogName — identity within a catalog
//
// ✨ Key contracts:
//   - wavelengths are nanometers everywhere on the public API
//   - out-of-domain queries fail with ErrWavelengthOutOfRange unless the
//     medium was built with extrapolation enabled, in which case the value
//     is returned together with the advisory sentinel ErrExtrapolated
//   - MeasRindex never silently falls back to the calculated index; absent
//     data is ErrNoMeasuredData and the fallback is the caller's decision
//   - media are immutable after construction; concurrent reads are safe
//
// Slice helpers (CalcRindexSlice, RindexSlice) provide the bulk evaluation
// path — one implementation serves both single-point and sweep queries.
package medium
