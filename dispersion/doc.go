// Package dispersion implements coefficient-formula optical glasses: the
// closed-form dispersion equations used by vendor catalogs and by the
// RefractiveIndex.INFO database, behind the shared medium.Medium contract.
//
// 🚀 What is a dispersion formula?
//
//	A closed-form function n(λ) determined by a short coefficient vector.
//	Vendors publish the coefficients in their catalogs; the formula family
//	fixes the term count and exponent layout:
//	  • Sellmeier3 — n² = 1 + Σᵢ Aᵢλ²/(λ²−Bᵢ), 6 coefficients
//	    (Schott, Ohara, current CDGM sheets)
//	  • Laurent6   — n² = A0 + A1λ² + A2λ⁻² + … + A5λ⁻⁸, 6 coefficients
//	    (Hoya, Sumita, legacy catalogs; often with power-of-ten exponents)
//	  • Laurent9   — the 9-coefficient extension with λ⁴ and λ⁻¹⁰, λ⁻¹²
//	    terms (Hikari)
//	  • RII1…RII9  — RefractiveIndex.INFO formulas 1 through 9 (Sellmeier
//	    variants, polynomial, Cauchy, gases, Herzberger, retro, exotic)
//
// ✨ Key contracts:
//   - coefficient count is validated against the formula family at
//     construction (ErrCoefficientCount); an unrecognized family is
//     ErrUnsupportedFormula
//   - wavelengths are nanometers at the API and micrometers inside the
//     formulas, matching how every vendor publishes coefficients
//   - per-coefficient power-of-ten exponents (Hoya-style sheets) are
//     applied once, at construction
//   - out-of-domain queries follow the shared medium extrapolation contract
//
// ⚙️ Usage:
//
//	g, err := dispersion.New("N-BK7", "Schott", dispersion.Sellmeier3, coefs,
//	    dispersion.WithDomainUm(0.3, 2.5),
//	    dispersion.WithMeasured(map[string]float64{"d": 1.5168}))
//	nd, err := g.Rindex("d")
//
// The formula layouts are reproduced exactly: vendor catalogs tabulate
// measured indices next to the coefficients, and the two must agree to
// better than 1e-5.
package dispersion
