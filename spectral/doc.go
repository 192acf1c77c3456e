// Package spectral maps named spectral lines to their wavelengths and
// resolves wavelength tokens for the rest of the library.
//
// 🚀 What is a spectral line token?
//
//	Optical catalogs tabulate refractive indices at a fixed set of
//	Fraunhofer emission lines ('d', 'F', 'C', ...). Anywhere the library
//	accepts a wavelength it also accepts one of these line names, so
//	callers can write m.Rindex("d") instead of m.CalcRindex(587.5618).
//
// ✨ Key features:
//   - fixed, process-wide immutable line table (nanometers)
//   - Resolve accepts a line name or a numeric string ("486.1327")
//   - ResolveNm validates plain numeric wavelengths
//   - typographic primes (U+2032) normalize to ASCII apostrophes,
//     so "F′" and "F'" name the same line
//
// ⚙️ Usage:
//
//	wv, err := spectral.Resolve("F'") // 479.9914
//	if errors.Is(err, spectral.ErrUnknownLine) { ... }
//
// The table is static data; there is no mutation API.
package spectral
