package abbe

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates slice inputs of unequal length.
var ErrLengthMismatch = errors.New("abbe: length mismatch")

// Vd returns the Abbe number (nd − 1)/(nF − nC). A zero denominator
// yields ±Inf or NaN.
func Vd(nd, nF, nC float64) float64 {
	return (nd - 1) / (nF - nC)
}

// PCd returns the partial dispersion (nd − nC)/(nF − nC).
func PCd(nd, nF, nC float64) float64 {
	return (nd - nC) / (nF - nC)
}

// CalcGlassConstants returns the Abbe number, the d-line partial
// dispersion and one partial dispersion ratio (nx − nC)/(nF − nC) per
// extra index supplied. Division by zero propagates per IEEE 754.
func CalcGlassConstants(nd, nF, nC float64, extras ...float64) (vd, pcd float64, partials []float64) {
	dFC := nF - nC
	vd = (nd - 1) / dFC
	pcd = (nd - nC) / dFC
	if len(extras) == 0 {
		return vd, pcd, nil
	}
	partials = make([]float64, len(extras))
	for i, nx := range extras {
		partials[i] = (nx - nC) / dFC
	}

	return vd, pcd, partials
}

// CalcGlassConstantsSlice is the element-wise form over aligned index
// slices. Element i of every output derives from element i of every
// input.
//
// Errors:
//   - ErrLengthMismatch — any input slice differs in length from nd.
func CalcGlassConstantsSlice(nd, nF, nC []float64, extras ...[]float64) (vd, pcd []float64, partials [][]float64, err error) {
	if len(nF) != len(nd) || len(nC) != len(nd) {
		return nil, nil, nil, fmt.Errorf("%w: nd %d, nF %d, nC %d", ErrLengthMismatch, len(nd), len(nF), len(nC))
	}
	for i, nx := range extras {
		if len(nx) != len(nd) {
			return nil, nil, nil, fmt.Errorf("%w: extra %d has %d elements, want %d", ErrLengthMismatch, i, len(nx), len(nd))
		}
	}

	vd = make([]float64, len(nd))
	pcd = make([]float64, len(nd))
	partials = make([][]float64, len(extras))
	for i := range partials {
		partials[i] = make([]float64, len(nd))
	}
	for i := range nd {
		dFC := nF[i] - nC[i]
		vd[i] = (nd[i] - 1) / dFC
		pcd[i] = (nd[i] - nC[i]) / dFC
		for j, nx := range extras {
			partials[j][i] = (nx[i] - nC[i]) / dFC
		}
	}

	return vd, pcd, partials, nil
}
