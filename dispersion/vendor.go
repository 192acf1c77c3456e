package dispersion

import (
	"fmt"
	"math"
)

// ApplyExponents scales each coefficient by its power-of-ten exponent.
// Hoya-style sheets publish coefficient columns as (mantissa, exponent)
// pairs; the declared power must be applied before evaluation.
//
// Errors:
//   - ErrExponentCount — len(exps) != len(coefs).
func ApplyExponents(coefs, exps []float64) ([]float64, error) {
	if len(exps) != len(coefs) {
		return nil, fmt.Errorf("%w: %d exponents for %d coefficients", ErrExponentCount, len(exps), len(coefs))
	}
	out := make([]float64, len(coefs))
	for i, c := range coefs {
		out[i] = c * math.Pow(10, exps[i])
	}

	return out, nil
}

// evalSellmeier3 evaluates the three-term Sellmeier form,
// coefficients [A1 A2 A3 B1 B2 B3]:
//
//	n² = 1 + A1λ²/(λ²−B1) + A2λ²/(λ²−B2) + A3λ²/(λ²−B3)
func evalSellmeier3(c []float64, wv float64) float64 {
	wv2 := wv * wv
	n2 := 1 + c[0]*wv2/(wv2-c[3])
	n2 += c[1] * wv2 / (wv2 - c[4])
	n2 += c[2] * wv2 / (wv2 - c[5])

	return math.Sqrt(n2)
}

// evalLaurent6 evaluates the six-term power series,
// coefficients [A0 A1 A2 A3 A4 A5]:
//
//	n² = A0 + A1λ² + A2λ⁻² + A3λ⁻⁴ + A4λ⁻⁶ + A5λ⁻⁸
func evalLaurent6(c []float64, wv float64) float64 {
	wv2 := wv * wv
	wvm2 := 1 / wv2
	n2 := c[0] + c[1]*wv2
	n2 += wvm2 * (c[2] + wvm2*(c[3]+wvm2*(c[4]+wvm2*c[5])))

	return math.Sqrt(n2)
}

// evalLaurent9 evaluates the nine-term extended power series,
// coefficients [A0 A1 A2 A3 A4 A5 A6 A7 A8]:
//
//	n² = A0 + A1λ² + A2λ⁴ + A3λ⁻² + A4λ⁻⁴ + A5λ⁻⁶ + A6λ⁻⁸ + A7λ⁻¹⁰ + A8λ⁻¹²
func evalLaurent9(c []float64, wv float64) float64 {
	wv2 := wv * wv
	wvm2 := 1 / wv2
	n2 := c[0] + wv2*(c[1]+wv2*c[2])
	n2 += wvm2 * (c[3] + wvm2*(c[4]+wvm2*(c[5]+wvm2*(c[6]+wvm2*(c[7]+wvm2*c[8])))))

	return math.Sqrt(n2)
}
