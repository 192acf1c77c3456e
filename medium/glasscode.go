package medium

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Encode formats (nd, vd) as the conventional six-digit glass code
// "nnn.vvv": nd − 1 rounded to three decimals and scaled ×1000, and
// 10·vd rounded to the nearest integer. Example: nd=1.5168, vd=64.17
// encodes as "517.642".
func Encode(nd, vd float64) string {
	return fmt.Sprintf("%3d.%3d",
		int(math.Round((nd-1)*1000)),
		int(math.Round(vd*10)))
}

// Decode parses a glass code produced by Encode back into (nd, vd).
//
// Errors:
//   - ErrBadGlassCode — code is not two dot-separated integer fields.
func Decode(code string) (nd, vd float64, err error) {
	fields := strings.SplitN(strings.TrimSpace(code), ".", 2)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGlassCode, code)
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGlassCode, code)
	}
	v, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGlassCode, code)
	}

	return 1 + float64(n)/1000, float64(v) / 10, nil
}
