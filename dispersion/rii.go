package dispersion

import "math"

// RefractiveIndex.INFO formulas 1–9, per the database's formula
// specification. λ is in micrometers throughout; coefficient vectors have
// passed validateCoefs. Where historical copies of material records
// disagree with the specification, the specification wins.

// evalRII1: Sellmeier (preferred).
//
//	n² − 1 = C0 + Σ Cᵢλ²/(λ² − Cᵢ₊₁²)
func evalRII1(c []float64, wv float64) float64 {
	wv2 := wv * wv
	n2 := 1 + c[0]
	for i := 1; i+1 < len(c); i += 2 {
		n2 += c[i] * wv2 / (wv2 - c[i+1]*c[i+1])
	}

	return math.Sqrt(n2)
}

// evalRII2: Sellmeier-2 — resonances given as λ², not λ.
//
//	n² − 1 = C0 + Σ Cᵢλ²/(λ² − Cᵢ₊₁)
func evalRII2(c []float64, wv float64) float64 {
	wv2 := wv * wv
	n2 := 1 + c[0]
	for i := 1; i+1 < len(c); i += 2 {
		n2 += c[i] * wv2 / (wv2 - c[i+1])
	}

	return math.Sqrt(n2)
}

// evalRII3: Polynomial.
//
//	n² = C0 + Σ Cᵢλ^Cᵢ₊₁
func evalRII3(c []float64, wv float64) float64 {
	n2 := c[0]
	for i := 1; i+1 < len(c); i += 2 {
		n2 += c[i] * math.Pow(wv, c[i+1])
	}

	return math.Sqrt(n2)
}

// evalRII4: the database's own rational form — two 4-parameter resonance
// terms followed by plain power terms.
//
//	n² = C0 + C1λ^C2/(λ²−C3^C4) + C5λ^C6/(λ²−C7^C8) + Σ Cᵢλ^Cᵢ₊₁
func evalRII4(c []float64, wv float64) float64 {
	wv2 := wv * wv
	n2 := c[0]
	for i := 1; i <= 5; i += 4 {
		n2 += c[i] * math.Pow(wv, c[i+1]) / (wv2 - math.Pow(c[i+2], c[i+3]))
	}
	for i := 9; i+1 < len(c); i += 2 {
		n2 += c[i] * math.Pow(wv, c[i+1])
	}

	return math.Sqrt(n2)
}

// evalRII5: Cauchy — the only vendor form linear in n.
//
//	n = C0 + Σ Cᵢλ^Cᵢ₊₁
func evalRII5(c []float64, wv float64) float64 {
	n := c[0]
	for i := 1; i+1 < len(c); i += 2 {
		n += c[i] * math.Pow(wv, c[i+1])
	}

	return n
}

// evalRII6: Gases.
//
//	n − 1 = C0 + Σ Cᵢ/(Cᵢ₊₁ − λ⁻²)
func evalRII6(c []float64, wv float64) float64 {
	wvm2 := 1 / (wv * wv)
	n := 1 + c[0]
	for i := 1; i+1 < len(c); i += 2 {
		n += c[i] / (c[i+1] - wvm2)
	}

	return n
}

// evalRII7: Herzberger, with the fixed 0.028 µm² resonance constant.
//
//	n = C0 + C1/(λ²−0.028) + C2/(λ²−0.028)² + C3λ² + C4λ⁴ + C5λ⁶
func evalRII7(c []float64, wv float64) float64 {
	const res = 0.028
	wv2 := wv * wv
	l := 1 / (wv2 - res)
	n := c[0] + c[1]*l + c[2]*l*l
	pw := wv2
	for i := 3; i < len(c); i++ {
		n += c[i] * pw
		pw *= wv2
	}

	return n
}

// evalRII8: Retro — the formula constrains the Lorentz-Lorenz fraction.
//
//	(n²−1)/(n²+2) = C0 + C1λ²/(λ²−C2) + C3λ²  ⇒  n² = (1+2f)/(1−f)
func evalRII8(c []float64, wv float64) float64 {
	wv2 := wv * wv
	f := c[0] + c[1]*wv2/(wv2-c[2]) + c[3]*wv2

	return math.Sqrt((1 + 2*f) / (1 - f))
}

// evalRII9: Exotic.
//
//	n² = C0 + C1/(λ²−C2) + C3(λ−C4)/((λ−C4)²+C5)
func evalRII9(c []float64, wv float64) float64 {
	wv2 := wv * wv
	d := wv - c[4]
	n2 := c[0] + c[1]/(wv2-c[2]) + c[3]*d/(d*d+c[5])

	return math.Sqrt(n2)
}
