// Package opticalglass is a toolkit for optical-glass dispersion modeling —
// from vendor catalog coefficients to derived chromatic quantities.
//
// 🚀 What is opticalglass?
//
//	A pure-Go library that gives uniform programmatic access to the
//	refractive-index data behind optical-glass vendor catalogs and the
//	RefractiveIndex.INFO database:
//	  • Spectral line registry: named Fraunhofer lines ↔ wavelengths
//	  • Medium contract: one interface over every material representation
//	  • Dispersion formulas: vendor Sellmeier/Laurent forms, RII formulas 1–9
//	  • Tabulated media: cubic-spline interpolation with controlled extrapolation
//	  • Buchdahl model: two-term chromatic coordinate fits for glass pairing
//	  • Glass constants: Abbe number and partial dispersions, scalar or bulk
//
// ✨ Why choose opticalglass?
//
//   - Exact vendor semantics – each coefficient layout reproduced to catalog accuracy
//   - Explicit errors – out-of-range and degenerate inputs surface as sentinels
//   - Pure Go – no cgo, numerics implemented in-package
//   - Safe reads – media are immutable after construction; refits are explicit
//
// Everything is organized under flat subpackages:
//
//	spectral/   — spectral line registry and wavelength token resolution
//	medium/     — the Medium interface, glass codes, constant-index media
//	interp/     — cubic-spline and linear interpolation kernels
//	tabulated/  — media built from (wavelength, index) sample tables
//	dispersion/ — coefficient-formula glasses (vendor + RefractiveIndex.INFO)
//	buchdahl/   — two-term chromatic model: fit, refit, evaluation
//	abbe/       — Abbe number and partial-dispersion calculators
//	catalog/    — catalog records, medium factory, model glasses
//	rii/        — RefractiveIndex.INFO YAML record parsing
//
// Quick example — an N-BK7-like crown:
//
//	g, _ := dispersion.New("N-BK7", "Schott", dispersion.Sellmeier3,
//	    []float64{1.03961212, 0.231792344, 1.01046945,
//	        0.00600069867, 0.0200179144, 103.560653},
//	    dispersion.WithDomainUm(0.3, 2.5))
//	nd, _ := g.Rindex("d") // 1.5168...
//
// See each package's doc.go and example_test.go for full walkthroughs.
package opticalglass
