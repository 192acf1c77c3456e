package buchdahl_test

import (
	"math"
	"testing"

	"github.com/katlumen/opticalglass/buchdahl"
	"github.com/katlumen/opticalglass/medium"
	"github.com/katlumen/opticalglass/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// N-BK7 measured indices at the standard fit lines.
const (
	bk7Nd = 1.51680
	bk7NF = 1.52238
	bk7NC = 1.51432
)

// TestOmega_RoundTrip: DeltaFromOmega inverts Omega across the visible
// offsets from the d line.
func TestOmega_RoundTrip(t *testing.T) {
	for _, delta := range []float64{-0.2, -0.1014291, -0.05, 0, 0.0687107, 0.15} {
		om := buchdahl.Omega(delta)
		assert.InDelta(t, delta, buchdahl.DeltaFromOmega(om), 1e-15, "delta %g", delta)
	}

	// ω is zero exactly at the reference line.
	assert.Zero(t, buchdahl.Omega(0))
}

// TestCalcCoords_ReproducesInputs: the exact solve must return the blue
// and red indices bit-exactly when the model is evaluated back.
func TestCalcCoords_ReproducesInputs(t *testing.T) {
	c, err := buchdahl.CalcCoords(bk7Nd, bk7NF, bk7NC)
	require.NoError(t, err)

	m, err := buchdahl.FromIndices("N-BK7 model", "user", bk7Nd, bk7NF, bk7NC)
	require.NoError(t, err)
	assert.Equal(t, c, m.Coords())

	nd, err := m.Rindex("d")
	require.NoError(t, err)
	assert.Equal(t, bk7Nd, nd)

	nF, err := m.Rindex("F")
	require.NoError(t, err)
	assert.InDelta(t, bk7NF, nF, 1e-12)

	nC, err := m.Rindex("C")
	require.NoError(t, err)
	assert.InDelta(t, bk7NC, nC, 1e-12)
}

// TestCalcCoords_SignsMatchDispersion: normal glasses descend in index
// toward the red, so ν1 is negative with the blue line at negative ω.
func TestCalcCoords_SignsMatchDispersion(t *testing.T) {
	c, err := buchdahl.CalcCoords(bk7Nd, bk7NF, bk7NC)
	require.NoError(t, err)
	assert.Negative(t, c.V1)
}

// TestCalcCoords_Normalization divides both coefficients by (n0 - 1).
func TestCalcCoords_Normalization(t *testing.T) {
	raw, err := buchdahl.CalcCoords(bk7Nd, bk7NF, bk7NC)
	require.NoError(t, err)
	norm, err := buchdahl.CalcCoords(bk7Nd, bk7NF, bk7NC, buchdahl.WithNormalization())
	require.NoError(t, err)

	assert.InDelta(t, raw.V1/(bk7Nd-1), norm.V1, 1e-15)
	assert.InDelta(t, raw.V2/(bk7Nd-1), norm.V2, 1e-15)
}

// TestCalcCoords_Degenerate: coincident fit lines make the system
// singular.
func TestCalcCoords_Degenerate(t *testing.T) {
	_, err := buchdahl.CalcCoords(1.5, 1.51, 1.49, buchdahl.WithLines("d", "d", "C"))
	assert.ErrorIs(t, err, buchdahl.ErrDegenerateDispersion)

	_, err = buchdahl.CalcCoords(1.5, 1.51, 1.49, buchdahl.WithLines("d", "zz", "C"))
	assert.ErrorIs(t, err, spectral.ErrUnknownLine)
}

// TestFitCoords_RecoversExactModel: samples generated from a known
// quadratic must fit back to the generating coefficients.
func TestFitCoords_RecoversExactModel(t *testing.T) {
	const n0, v1, v2 = 1.6168, -0.041, -0.013
	tokens := []string{"d", "h", "g", "F", "e", "C", "r"}

	wv0, err := spectral.Resolve("d")
	require.NoError(t, err)
	indices := make([]float64, len(tokens))
	for i, token := range tokens {
		nm, err := spectral.Resolve(token)
		require.NoError(t, err)
		om := buchdahl.Omega(nm*1e-3 - wv0*1e-3)
		indices[i] = n0 + v1*om + v2*om*om
	}

	got0, c, err := buchdahl.FitCoords(tokens, indices)
	require.NoError(t, err)
	assert.Equal(t, n0, got0)
	assert.InDelta(t, v1, c.V1, 1e-9)
	assert.InDelta(t, v2, c.V2, 1e-9)
}

// TestFitCoords_Validation covers the fit error taxonomy.
func TestFitCoords_Validation(t *testing.T) {
	_, _, err := buchdahl.FitCoords([]string{"d", "F"}, []float64{1.5, 1.51})
	assert.ErrorIs(t, err, buchdahl.ErrTooFewSamples)

	_, _, err = buchdahl.FitCoords([]string{"d", "F", "C"}, []float64{1.5, 1.51})
	assert.Error(t, err)

	_, _, err = buchdahl.FitCoords([]string{"d", "zz", "C"}, []float64{1.5, 1.51, 1.49})
	assert.ErrorIs(t, err, spectral.ErrUnknownLine)
}

// TestFromNdVd_ReproducesSpecification: the model must return nd at the
// d line and reproduce the given Abbe number from its own F and C
// indices.
func TestFromNdVd_ReproducesSpecification(t *testing.T) {
	const nd, vd = 1.517, 64.2
	m, err := buchdahl.FromNdVd("517.642", "user", nd, vd)
	require.NoError(t, err)

	got, err := m.Rindex("d")
	require.NoError(t, err)
	assert.InDelta(t, nd, got, 1e-6)

	nF, err := m.Rindex("F")
	require.NoError(t, err)
	nC, err := m.Rindex("C")
	require.NoError(t, err)
	assert.InDelta(t, vd, (nd-1)/(nF-nC), 1e-9)

	code, err := m.GlassCode()
	require.NoError(t, err)
	assert.Equal(t, "517.642", code)
}

// TestFromNdVd_Degenerate rejects unusable Abbe numbers.
func TestFromNdVd_Degenerate(t *testing.T) {
	for _, vd := range []float64{0, math.NaN(), math.Inf(1)} {
		_, err := buchdahl.FromNdVd("bad", "user", 1.5, vd)
		assert.ErrorIs(t, err, buchdahl.ErrDegenerateDispersion, "vd %g", vd)
	}
}

// TestUpdateModel_Idempotent: refitting with identical arguments must
// yield bit-identical coefficients, and refitting with new arguments
// must reset n0.
func TestUpdateModel_Idempotent(t *testing.T) {
	m, err := buchdahl.FromNdVd("model", "user", 1.517, 64.2)
	require.NoError(t, err)

	require.NoError(t, m.UpdateModel(1.517, 64.2))
	first := m.Coords()
	require.NoError(t, m.UpdateModel(1.517, 64.2))
	assert.Equal(t, first, m.Coords())
	assert.Equal(t, 1.517, m.N0())

	require.NoError(t, m.UpdateModel(1.62, 36.6))
	assert.Equal(t, 1.62, m.N0())
	assert.NotEqual(t, first, m.Coords())

	assert.ErrorIs(t, m.UpdateModel(1.62, 0), buchdahl.ErrDegenerateDispersion)
}

// TestModel_MediumContract: identity, no measured data, bulk sweep.
func TestModel_MediumContract(t *testing.T) {
	m, err := buchdahl.FromNdVd("", "user", 1.517, 64.2)
	require.NoError(t, err)

	assert.Equal(t, "user", m.CatalogName())
	// Unlabeled models name themselves by glass code.
	assert.Equal(t, "517.642", m.Name())

	_, err = m.MeasRindex("d")
	assert.ErrorIs(t, err, medium.ErrNoMeasuredData)

	// The model has no domain; a 75-point sweep never errors.
	ns, err := medium.CalcRindexSlice(m, medium.Sweep(400, 700, 75))
	require.NoError(t, err)
	require.Len(t, ns, 75)
	for i := 1; i < len(ns); i++ {
		assert.Less(t, ns[i], ns[i-1], "index %d", i)
	}
}

// TestModelLine: the fitted line must pass through both glasses in
// (ν1, ν2) space.
func TestModelLine(t *testing.T) {
	crown, err := buchdahl.FromIndices("crown", "user", bk7Nd, bk7NF, bk7NC)
	require.NoError(t, err)
	// F2-like flint.
	flint, err := buchdahl.FromIndices("flint", "user", 1.62004, 1.63208, 1.61503)
	require.NoError(t, err)

	b, slope, err := buchdahl.ModelLine(crown, flint)
	require.NoError(t, err)

	for _, g := range []*buchdahl.Model{crown, flint} {
		c := g.Coords()
		assert.InDelta(t, c.V1, b+slope*c.V2, 1e-12, "glass %s", g.Name())
	}

	_, _, err = buchdahl.ModelLine(crown, crown)
	assert.ErrorIs(t, err, buchdahl.ErrDegenerateDispersion)
}

// TestWithGlassLine: a custom glass line changes the (nd, Vd) fit but
// preserves the nd and Vd reproduction guarantees.
func TestWithGlassLine(t *testing.T) {
	const nd, vd = 1.517, 64.2

	std, err := buchdahl.FromNdVd("std", "user", nd, vd)
	require.NoError(t, err)

	custom, err := buchdahl.FromNdVd("custom", "user", nd, vd)
	require.NoError(t, err)
	custom.WithGlassLine(-0.07, -1.5)
	require.NoError(t, custom.UpdateModel(nd, vd))

	assert.NotEqual(t, std.Coords(), custom.Coords())

	got, err := custom.Rindex("d")
	require.NoError(t, err)
	assert.InDelta(t, nd, got, 1e-12)

	nF, err := custom.Rindex("F")
	require.NoError(t, err)
	nC, err := custom.Rindex("C")
	require.NoError(t, err)
	assert.InDelta(t, vd, (nd-1)/(nF-nC), 1e-9)
}

// TestNew_RetainsStandardFitLines: a model assembled from explicit
// coordinates evaluates back to the fitted indices at the F and C lines,
// and the retained lines feed later refits.
func TestNew_RetainsStandardFitLines(t *testing.T) {
	c, err := buchdahl.CalcCoords(bk7Nd, bk7NF, bk7NC)
	require.NoError(t, err)
	wv0, err := spectral.Resolve("d")
	require.NoError(t, err)

	m := buchdahl.New("N-BK7 model", "user", wv0*1e-3, bk7Nd, c)
	nF, err := m.Rindex("F")
	require.NoError(t, err)
	nC, err := m.Rindex("C")
	require.NoError(t, err)
	assert.InDelta(t, bk7NF, nF, 1e-12)
	assert.InDelta(t, bk7NC, nC, 1e-12)

	// Refitting through the same F/C system reproduces a new specification.
	require.NoError(t, m.UpdateModel(1.62004, 36.37))
	code, err := m.GlassCode()
	require.NoError(t, err)
	assert.Equal(t, "620.364", code)
}
