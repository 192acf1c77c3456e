// Package tabulated implements optical media defined by a finite table of
// (wavelength, index) samples, interpolated with a natural cubic spline.
//
// 🚀 When is a medium tabulated?
//
//	Many RefractiveIndex.INFO records and most infrared-material
//	datasheets publish no dispersion formula — only measured samples.
//	This package turns such a table into a medium.Medium with the same
//	contract as a formula glass.
//
// ✨ Key contracts:
//   - sample wavelengths must be strictly increasing and unique
//   - queries between samples interpolate with cubic-spline smoothness
//   - queries beyond the table fail with medium.ErrWavelengthOutOfRange
//     unless extrapolation was enabled at construction, in which case the
//     boundary-polynomial value is returned flagged with
//     medium.ErrExtrapolated — extrapolated results are always
//     distinguishable (silent extrapolation historically produced wrong
//     plots for out-of-range queries)
//   - a single-sample table degenerates to a constant index
//   - absorbing materials carry a parallel extinction-coefficient table
//     with the same interpolation and range rules, from which internal
//     transmission is derived
//
// ⚙️ Usage:
//
//	m, err := tabulated.New("ZnSe", wvlsNm, rndx,
//	    tabulated.WithCatalog("rii-main"),
//	    tabulated.WithExtinction(kWvlsNm, kvals))
//	n, err := m.CalcRindex(10600)
package tabulated
