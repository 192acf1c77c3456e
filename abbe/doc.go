// Package abbe computes glass constants: the Abbe number and partial
// dispersion ratios derived from refractive indices at standard spectral
// lines.
//
// ✨ Contract:
//   - pure functions of the input indices, no state
//   - Vd  = (nd − 1)/(nF − nC)
//   - PCd = (nd − nC)/(nF − nC)
//   - every extra index nx yields the partial (nx − nC)/(nF − nC)
//   - a zero denominator (nF == nC) propagates as NaN or ±Inf; the
//     functions never reject it, callers guard where it matters
//
// Scalar and slice forms share one implementation; the slice form serves
// glass-map plots that derive constants for a whole catalog at once.
package abbe
