package tabulated_test

import (
	"math"
	"testing"

	"github.com/katlumen/opticalglass/interp"
	"github.com/katlumen/opticalglass/medium"
	"github.com/katlumen/opticalglass/tabulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// irWvls / irRndx model a mid-infrared material sampled every 1000 nm.
var (
	irWvls = []float64{3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000, 11000, 12000, 13000, 14000}
	irRndx = []float64{2.4376, 2.4331, 2.4295, 2.4258, 2.4218, 2.4173, 2.4122, 2.4065, 2.4001, 2.3930, 2.3850, 2.3761}
)

// irMedium builds the shared fixture, failing the test on any error.
func irMedium(t *testing.T, opts ...tabulated.Option) *tabulated.Medium {
	t.Helper()
	m, err := tabulated.New("IR-test", irWvls, irRndx, opts...)
	require.NoError(t, err)

	return m
}

// TestNew_Validation covers the constructor error taxonomy.
func TestNew_Validation(t *testing.T) {
	_, err := tabulated.New("empty", nil, nil)
	assert.ErrorIs(t, err, tabulated.ErrNoSamples)

	_, err = tabulated.New("ragged", []float64{1, 2, 3}, []float64{1.5, 1.6})
	assert.ErrorIs(t, err, interp.ErrLengthMismatch)

	_, err = tabulated.New("unsorted", []float64{500, 400, 600}, []float64{1.5, 1.6, 1.7})
	assert.ErrorIs(t, err, interp.ErrNotIncreasing)

	_, err = tabulated.New("dup", []float64{400, 400, 600}, []float64{1.5, 1.6, 1.7})
	assert.ErrorIs(t, err, interp.ErrNotIncreasing)

	_, err = tabulated.New("ragged-k", irWvls, irRndx,
		tabulated.WithExtinction([]float64{3000, 5000}, []float64{1e-6, 2e-6, 3e-6}))
	assert.ErrorIs(t, err, interp.ErrLengthMismatch)
}

// TestCalcRindex_ExactAtSamples: the spline must reproduce every knot.
func TestCalcRindex_ExactAtSamples(t *testing.T) {
	m := irMedium(t)
	for i, wv := range irWvls {
		n, err := m.CalcRindex(wv)
		require.NoError(t, err, "wv %g", wv)
		assert.InDelta(t, irRndx[i], n, 1e-12, "wv %g", wv)
	}
}

// TestCalcRindex_BetweenSamples: interpolated values stay between the
// bracketing samples on this monotone table.
func TestCalcRindex_BetweenSamples(t *testing.T) {
	m := irMedium(t)
	for i := 0; i < len(irWvls)-1; i++ {
		mid := (irWvls[i] + irWvls[i+1]) / 2
		n, err := m.CalcRindex(mid)
		require.NoError(t, err)
		assert.Less(t, n, irRndx[i], "mid %g", mid)
		assert.Greater(t, n, irRndx[i+1], "mid %g", mid)
	}
}

// TestCalcRindex_OutOfRange pins the extrapolation contract at both ends
// of the table.
func TestCalcRindex_OutOfRange(t *testing.T) {
	strict := irMedium(t)
	for _, wv := range []float64{2500.0, 14500.0} {
		_, err := strict.CalcRindex(wv)
		assert.ErrorIs(t, err, medium.ErrWavelengthOutOfRange, "wv %g", wv)
	}

	loose := irMedium(t, tabulated.WithExtrapolation())
	for _, wv := range []float64{2500.0, 14500.0} {
		n, err := loose.CalcRindex(wv)
		assert.ErrorIs(t, err, medium.ErrExtrapolated, "wv %g", wv)
		assert.False(t, math.IsNaN(n) || math.IsInf(n, 0), "wv %g", wv)
		assert.Greater(t, n, 1.0, "wv %g", wv)
	}

	// In-range queries carry no advisory even with extrapolation on.
	_, err := loose.CalcRindex(5500)
	assert.NoError(t, err)
}

// TestSingleSample: a one-point table is a constant index with a
// degenerate domain.
func TestSingleSample(t *testing.T) {
	m, err := tabulated.New("point", []float64{10600}, []float64{2.4028})
	require.NoError(t, err)

	n, err := m.CalcRindex(10600)
	require.NoError(t, err)
	assert.Equal(t, 2.4028, n)

	_, err = m.CalcRindex(10700)
	assert.ErrorIs(t, err, medium.ErrWavelengthOutOfRange)

	loose, err := tabulated.New("point", []float64{10600}, []float64{2.4028},
		tabulated.WithExtrapolation())
	require.NoError(t, err)
	n, err = loose.CalcRindex(9000)
	assert.ErrorIs(t, err, medium.ErrExtrapolated)
	assert.Equal(t, 2.4028, n)
}

// TestMeasRindex only reports values at sample wavelengths; interpolated
// points are not measurements.
func TestMeasRindex(t *testing.T) {
	m := irMedium(t)

	n, err := m.MeasRindex("5000")
	require.NoError(t, err)
	assert.Equal(t, irRndx[2], n)

	_, err = m.MeasRindex("5500")
	assert.ErrorIs(t, err, medium.ErrNoMeasuredData)

	_, err = m.MeasRindex("d")
	assert.ErrorIs(t, err, medium.ErrNoMeasuredData)

	_, err = m.MeasRindex("bogus")
	assert.ErrorIs(t, err, medium.ErrNoMeasuredData)
}

// TestNameAndCatalog covers labeling, catalog option and the glass-code
// fallback for unlabeled visible-range tables.
func TestNameAndCatalog(t *testing.T) {
	m := irMedium(t, tabulated.WithCatalog("rii-main"))
	assert.Equal(t, "IR-test", m.Name())
	assert.Equal(t, "rii-main", m.CatalogName())

	// Visible-range unlabeled table names itself by glass code.
	wvls := []float64{400, 450, 486.1327, 550, 587.5618, 656.2725, 700}
	rndx := []float64{1.53024, 1.52523, 1.52238, 1.51851, 1.51680, 1.51432, 1.51314}
	anon, err := tabulated.New("", wvls, rndx)
	require.NoError(t, err)
	assert.Equal(t, "517.641", anon.Name())
}

// TestExtinctionCoeff interpolates the k table under the same range rules.
func TestExtinctionCoeff(t *testing.T) {
	kWvls := []float64{3000, 6000, 9000, 12000, 14000}
	kvals := []float64{1e-7, 4e-7, 2e-6, 9e-6, 4e-5}

	m := irMedium(t, tabulated.WithExtinction(kWvls, kvals))

	k, err := m.ExtinctionCoeff(6000)
	require.NoError(t, err)
	assert.InDelta(t, 4e-7, k, 1e-18)

	k, err = m.ExtinctionCoeff(7500)
	require.NoError(t, err)
	assert.Greater(t, k, 4e-7)
	assert.Less(t, k, 2e-6)

	_, err = m.ExtinctionCoeff(2000)
	assert.ErrorIs(t, err, medium.ErrWavelengthOutOfRange)

	_, err = irMedium(t).ExtinctionCoeff(6000)
	assert.ErrorIs(t, err, tabulated.ErrNoExtinctionData)
}

// TestExtinction_ReusesIndexWavelengths: a nil k-wavelength slice shares
// the index sample grid.
func TestExtinction_ReusesIndexWavelengths(t *testing.T) {
	kvals := make([]float64, len(irWvls))
	for i := range kvals {
		kvals[i] = 1e-7 * float64(i+1)
	}
	m := irMedium(t, tabulated.WithExtinction(nil, kvals))

	k, err := m.ExtinctionCoeff(irWvls[3])
	require.NoError(t, err)
	assert.InDelta(t, kvals[3], k, 1e-18)
}

// TestTransmission checks Beer-Lambert attenuation against a hand
// computation and the thickness monotonicity it implies.
func TestTransmission(t *testing.T) {
	kWvls := []float64{4000.0, 10000.0}
	kvals := []float64{2e-7, 5e-6}
	m := irMedium(t, tabulated.WithExtinction(kWvls, kvals))

	wvls, tr, err := m.Transmission(10)
	require.NoError(t, err)
	require.Equal(t, kWvls, wvls)
	require.Len(t, tr, 2)

	// T = exp(−4πk·d/λ) with d = 10 mm = 1e7 nm.
	want0 := math.Exp(-4 * math.Pi * 2e-7 * 1e7 / 4000)
	want1 := math.Exp(-4 * math.Pi * 5e-6 * 1e7 / 10000)
	assert.InDelta(t, want0, tr[0], 1e-12)
	assert.InDelta(t, want1, tr[1], 1e-12)

	// Thicker samples transmit less.
	_, thick, err := m.Transmission(25)
	require.NoError(t, err)
	for i := range tr {
		assert.Less(t, thick[i], tr[i])
	}

	_, _, err = irMedium(t).Transmission(10)
	assert.ErrorIs(t, err, tabulated.ErrNoExtinctionData)
}

// TestMediumInterface exercises the tabulated medium through the shared
// bulk helpers.
func TestMediumInterface(t *testing.T) {
	m := irMedium(t)

	wvs := medium.Sweep(3000, 14000, 23)
	ns, err := medium.CalcRindexSlice(m, wvs)
	require.NoError(t, err)
	require.Len(t, ns, 23)
	for i := 1; i < len(ns); i++ {
		assert.Less(t, ns[i], ns[i-1], "index %d", i)
	}
}

// TestGlassCode_ExtrapolatedAdvisory: a table that excludes the visible
// lines yields no code when strict, and an advisory-flagged valid code
// when extrapolation is enabled. The flagged code still names unlabeled
// media.
func TestGlassCode_ExtrapolatedAdvisory(t *testing.T) {
	strict := irMedium(t)
	code, err := strict.GlassCode()
	assert.ErrorIs(t, err, medium.ErrWavelengthOutOfRange)
	assert.Empty(t, code)

	loose := irMedium(t, tabulated.WithExtrapolation())
	code, err = loose.GlassCode()
	assert.ErrorIs(t, err, medium.ErrExtrapolated)
	require.NotEmpty(t, code)
	assert.Contains(t, code, ".")

	// The code matches what the flagged line indices encode.
	nd, err := loose.CalcRindex(587.5618)
	require.ErrorIs(t, err, medium.ErrExtrapolated)
	nF, _ := loose.CalcRindex(486.1327)
	nC, _ := loose.CalcRindex(656.2725)
	assert.Equal(t, medium.Encode(nd, (nd-1)/(nF-nC)), code)

	anon, err := tabulated.New("", irWvls, irRndx, tabulated.WithExtrapolation())
	require.NoError(t, err)
	assert.Equal(t, code, anon.Name())
}
