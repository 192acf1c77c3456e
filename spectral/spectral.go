package spectral

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors returned by token resolution.
var (
	// ErrUnknownLine indicates that a token names no registered spectral line.
	ErrUnknownLine = errors.New("spectral: unknown spectral line")

	// ErrNonPositive indicates a numeric wavelength that is not strictly positive.
	ErrNonPositive = errors.New("spectral: wavelength must be positive")
)

// lines is the registry of spectral lines, keyed by conventional name,
// with wavelengths in nanometers. The values are the standard vacuum
// wavelengths used throughout vendor glass catalogs.
//
// The map is package-private and never mutated after init; Resolve and
// Lines are the only access paths.
var lines = map[string]float64{
	"Nd":    1060.0,    // neodymium glass laser
	"t":     1013.98,   // Hg infrared
	"s":     852.11,    // Cs infrared
	"A'":    768.1938,  // K
	"r":     706.5188,  // He red
	"C":     656.2725,  // H red
	"C'":    643.8469,  // Cd red
	"He-Ne": 632.8,     // helium-neon laser
	"D":     589.2938,  // Na doublet center
	"d":     587.5618,  // He yellow
	"e":     546.074,   // Hg green
	"F":     486.1327,  // H blue
	"F'":    479.9914,  // Cd blue
	"g":     435.8343,  // Hg violet
	"h":     404.6561,  // Hg UV-A
	"i":     365.0146,  // Hg UV
}

// Resolve maps token to a wavelength in nanometers.
//
// token is either the name of a registered spectral line or the decimal
// representation of a positive wavelength ("587.5618"). Line names win:
// no registered name parses as a float, so there is no ambiguity.
//
// Errors:
//   - ErrUnknownLine  — token is neither a registered line nor numeric.
//   - ErrNonPositive  — token parsed as a number that is ≤ 0 or not finite.
func Resolve(token string) (float64, error) {
	if wv, ok := lines[normalize(token)]; ok {
		return wv, nil
	}
	wv, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLine, token)
	}

	return ResolveNm(wv)
}

// ResolveNm validates a plain numeric wavelength in nanometers and returns
// it unchanged. It is the numeric half of the Resolve contract.
//
// Errors:
//   - ErrNonPositive — wvNm ≤ 0, NaN or ±Inf.
func ResolveNm(wvNm float64) (float64, error) {
	if math.IsNaN(wvNm) || math.IsInf(wvNm, 0) || wvNm <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNonPositive, wvNm)
	}

	return wvNm, nil
}

// IsLine reports whether token names a registered spectral line.
func IsLine(token string) bool {
	_, ok := lines[normalize(token)]
	return ok
}

// Lines returns the registered line names in ascending wavelength order.
func Lines() []string {
	names := make([]string, 0, len(lines))
	for name := range lines {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return lines[names[i]] < lines[names[j]] })

	return names
}

// normalize folds typographic prime characters into ASCII apostrophes so
// that tokens copied from datasheets ("F′") match the registry keys.
func normalize(token string) string {
	return strings.ReplaceAll(strings.TrimSpace(token), "′", "'")
}
