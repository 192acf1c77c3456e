package dispersion

import (
	"fmt"
	"strings"
)

// Formula tags a dispersion-formula family. The tag fixes both the
// closed-form expression and the required coefficient layout.
type Formula int

const (
	// FormulaUnknown is the zero value; constructing a glass with it fails.
	FormulaUnknown Formula = iota

	// Sellmeier3 is the three-term Sellmeier form used by Schott, Ohara and
	// current CDGM sheets: n² = 1 + Σᵢ Aᵢλ²/(λ² − Bᵢ), coefficients ordered
	// [A1 A2 A3 B1 B2 B3], λ in µm, Bᵢ in µm².
	Sellmeier3

	// Laurent6 is the six-term power-series form used by Hoya, Sumita and
	// legacy catalogs: n² = A0 + A1λ² + A2λ⁻² + A3λ⁻⁴ + A4λ⁻⁶ + A5λ⁻⁸.
	Laurent6

	// Laurent9 is the nine-term extension used by Hikari:
	// n² = A0 + A1λ² + A2λ⁴ + A3λ⁻² + A4λ⁻⁴ + … + A8λ⁻¹².
	Laurent9

	// RII1 through RII9 are RefractiveIndex.INFO formulas 1–9. Coefficient
	// vectors are variable-length where the database allows it.
	RII1 // Sellmeier (preferred): n²−1 = C0 + Σ Cᵢλ²/(λ²−Cᵢ₊₁²)
	RII2 // Sellmeier-2:           n²−1 = C0 + Σ Cᵢλ²/(λ²−Cᵢ₊₁)
	RII3 // Polynomial:            n²   = C0 + Σ Cᵢλᶜⁱᵖᵒʷ
	RII4 // RefractiveIndex.INFO:  n²   = C0 + rational terms + power terms
	RII5 // Cauchy:                n    = C0 + Σ Cᵢλᶜⁱᵖᵒʷ
	RII6 // Gases:                 n−1  = C0 + Σ Cᵢ/(Cᵢ₊₁ − λ⁻²)
	RII7 // Herzberger:            n    = C0 + C1/(λ²−0.028) + C2/(λ²−0.028)² + Σ Cᵢλ²ᵏ
	RII8 // Retro:                 (n²−1)/(n²+2) = C0 + C1λ²/(λ²−C2) + C3λ²
	RII9 // Exotic:                n²   = C0 + C1/(λ²−C2) + C3(λ−C4)/((λ−C4)²+C5)
)

// String returns the canonical tag for the formula family.
func (f Formula) String() string {
	switch f {
	case Sellmeier3:
		return "sellmeier"
	case Laurent6:
		return "laurent"
	case Laurent9:
		return "extended laurent"
	case RII1, RII2, RII3, RII4, RII5, RII6, RII7, RII8, RII9:
		return fmt.Sprintf("formula %d", int(f-RII1)+1)
	default:
		return "unknown"
	}
}

// ParseFormula maps a catalog formula tag to its Formula value. Tags are
// matched case-insensitively; both the vendor names and the
// RefractiveIndex.INFO "formula N" spellings are accepted.
//
// Errors:
//   - ErrUnsupportedFormula — the tag names no implemented family.
func ParseFormula(tag string) (Formula, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "sellmeier", "sellmeier3", "schott", "ohara":
		return Sellmeier3, nil
	case "laurent", "laurent6", "schott polynomial", "hoya", "sumita":
		return Laurent6, nil
	case "extended laurent", "laurent9", "hikari":
		return Laurent9, nil
	case "formula 1":
		return RII1, nil
	case "formula 2":
		return RII2, nil
	case "formula 3":
		return RII3, nil
	case "formula 4":
		return RII4, nil
	case "formula 5":
		return RII5, nil
	case "formula 6":
		return RII6, nil
	case "formula 7":
		return RII7, nil
	case "formula 8":
		return RII8, nil
	case "formula 9":
		return RII9, nil
	default:
		return FormulaUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormula, tag)
	}
}

// validateCoefs checks the coefficient count against the formula family.
func validateCoefs(f Formula, n int) error {
	ok := false
	switch f {
	case Sellmeier3, Laurent6:
		ok = n == 6
	case Laurent9:
		ok = n == 9
	case RII1, RII2, RII3, RII5, RII6:
		// C0 plus (value, parameter) pairs.
		ok = n >= 3 && n%2 == 1
	case RII4:
		// C0, two 4-parameter rational terms, then (value, power) pairs.
		ok = n >= 9 && n%2 == 1
	case RII7:
		// C0..C2 mandatory, up to three power terms.
		ok = n >= 3 && n <= 6
	case RII8:
		ok = n == 4
	case RII9:
		ok = n == 6
	default:
		return fmt.Errorf("%w: tag %d", ErrUnsupportedFormula, int(f))
	}
	if !ok {
		return fmt.Errorf("%w: %s with %d coefficients", ErrCoefficientCount, f, n)
	}

	return nil
}

// eval dispatches the formula evaluation. wvUm is the wavelength in
// micrometers; coefs has already passed validateCoefs.
func eval(f Formula, coefs []float64, wvUm float64) (float64, error) {
	switch f {
	case Sellmeier3:
		return evalSellmeier3(coefs, wvUm), nil
	case Laurent6:
		return evalLaurent6(coefs, wvUm), nil
	case Laurent9:
		return evalLaurent9(coefs, wvUm), nil
	case RII1:
		return evalRII1(coefs, wvUm), nil
	case RII2:
		return evalRII2(coefs, wvUm), nil
	case RII3:
		return evalRII3(coefs, wvUm), nil
	case RII4:
		return evalRII4(coefs, wvUm), nil
	case RII5:
		return evalRII5(coefs, wvUm), nil
	case RII6:
		return evalRII6(coefs, wvUm), nil
	case RII7:
		return evalRII7(coefs, wvUm), nil
	case RII8:
		return evalRII8(coefs, wvUm), nil
	case RII9:
		return evalRII9(coefs, wvUm), nil
	default:
		return 0, fmt.Errorf("%w: tag %d", ErrUnsupportedFormula, int(f))
	}
}
