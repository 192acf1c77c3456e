package interp_test

import (
	"testing"

	"github.com/katlumen/opticalglass/interp"
)

// benchmarkSpline builds a spline over n samples and times evaluation.
func benchmarkSpline(b *testing.B, n int) {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = 300 + float64(i)*10
		ys[i] = 1.5 + 1e-4*float64(i)
	}
	s, err := interp.NewSpline(xs, ys)
	if err != nil {
		b.Fatalf("NewSpline failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Eval(xs[0] + float64(i%n)*9.7)
	}
}

// BenchmarkSpline_Eval20 times lookups over a typical catalog-sized table.
func BenchmarkSpline_Eval20(b *testing.B) { benchmarkSpline(b, 20) }

// BenchmarkSpline_Eval500 times lookups over a dense RII tabulation.
func BenchmarkSpline_Eval500(b *testing.B) { benchmarkSpline(b, 500) }
