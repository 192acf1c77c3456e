// Package buchdahl implements the Buchdahl two-term chromatic coordinate
// model of refractive index.
//
// 🚀 Why a two-term model?
//
//	The Buchdahl transform ω(λ) = Δλ/(1 + 2.5Δλ) (Δλ in µm from a
//	reference line) linearizes glass dispersion so well that two
//	coefficients reproduce a real glass across the visible to roughly
//	1e-4. Glasses achromatized at three wavelengths lie on a straight
//	line in (ν1, ν2) space, which is what makes the model useful for
//	glass-pair searches (Robb & Mercado, 1983).
//
// ✨ Core pieces:
//   - Omega / DeltaFromOmega: the chromatic coordinate transform and its
//     inverse
//   - CalcCoords: exact (ν1, ν2) from three reference indices via a 2×2
//     linear solve
//   - FitCoords: least-squares (ν1, ν2) from any number of line/index
//     samples
//   - Model: a medium.Medium evaluating n(ω) = n0 + ν1ω + ν2ω², built
//     from three indices, from an (nd, Vd) pair, or refit in place with
//     UpdateModel
//   - ModelLine: the (b, m) glass-line constants between two real glasses
//
// ⚙️ Usage:
//
//	m, err := buchdahl.FromNdVd("model", "user", 1.517, 64.2)
//	nd, _ := m.Rindex("d")   // 1.517 exactly
//	err = m.UpdateModel(1.6, 55.0)
package buchdahl
