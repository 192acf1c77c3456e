package medium_test

import (
	"testing"

	"github.com/katlumen/opticalglass/medium"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_NBK7 pins the canonical encoding of an N-BK7-like glass.
func TestEncode_NBK7(t *testing.T) {
	assert.Equal(t, "517.642", medium.Encode(1.5168, 64.17))
}

// TestEncode_HighIndexFlint covers a dense flint with a low V-number.
func TestEncode_HighIndexFlint(t *testing.T) {
	assert.Equal(t, "805.254", medium.Encode(1.80518, 25.43))
}

// TestDecode_RoundTrip verifies Encode/Decode agree to code precision.
func TestDecode_RoundTrip(t *testing.T) {
	nd, vd, err := medium.Decode("517.642")
	require.NoError(t, err)
	assert.InDelta(t, 1.517, nd, 1e-9)
	assert.InDelta(t, 64.2, vd, 1e-9)
}

// TestDecode_Malformed covers the failure sentinel.
func TestDecode_Malformed(t *testing.T) {
	_, _, err := medium.Decode("517642")
	assert.ErrorIs(t, err, medium.ErrBadGlassCode)

	_, _, err = medium.Decode("abc.def")
	assert.ErrorIs(t, err, medium.ErrBadGlassCode)
}
