package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-chebyshev-sine/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

// TestChebyshevNodes tests node count, ordering and placement.
func TestChebyshevNodes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 20, 33} {
		nodes := ChebyshevNodes(n)
		require.Len(t, nodes, n)
		testutil.AssertAllInRange(t, nodes, -1, 1)
		testutil.AssertStrictlyDecreasing(t, nodes)
		testutil.AssertAntisymmetric(t, nodes, 1e-14)
	}
}

// TestChebyshevNodes_AreRootsOfTn tests T_n(x_j) = cos(n·acos(x_j)) = 0.
func TestChebyshevNodes_AreRootsOfTn(t *testing.T) {
	const n = 20
	for j, x := range ChebyshevNodes(n) {
		assert.InDelta(t, 0.0, math.Cos(n*math.Acos(x)), 1e-12, "T_%d(x_%d) != 0", n, j)
	}
}

// TestChebyshevNodes_Invalid tests that non-positive counts yield no nodes.
func TestChebyshevNodes_Invalid(t *testing.T) {
	assert.Nil(t, ChebyshevNodes(0))
	assert.Nil(t, ChebyshevNodes(-3))
}

// TestChebyshevCoefficients_Length tests that n terms yield exactly n coefficients.
func TestChebyshevCoefficients_Length(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 20, 64} {
		coeffs, err := ChebyshevCoefficients(SinPi, n)
		require.NoError(t, err)
		assert.Len(t, coeffs, n)
		testutil.AssertNoNaNOrInf(t, coeffs)
	}
}

// TestChebyshevCoefficients_InvalidTerms tests the error path for n < 1.
func TestChebyshevCoefficients_InvalidTerms(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		coeffs, err := ChebyshevCoefficients(SinPi, n)
		require.ErrorIs(t, err, ErrInvalidTermsCount, "n=%d", n)
		assert.Nil(t, coeffs)
	}
}

// TestChebyshevCoefficients_Deterministic tests that repeated calls are bit-identical.
func TestChebyshevCoefficients_Deterministic(t *testing.T) {
	a, err := ChebyshevCoefficients(SinPi, 20)
	require.NoError(t, err)
	b, err := ChebyshevCoefficients(SinPi, 20)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestChebyshevCoefficients_KnownValues compares against the analytic expansion
// sin(πu) = 2 Σ (-1)^m J_{2m+1}(π) T_{2m+1}(u).
func TestChebyshevCoefficients_KnownValues(t *testing.T) {
	coeffs, err := ChebyshevCoefficients(SinPi, 20)
	require.NoError(t, err)

	tests := []struct {
		k        int
		expected float64
	}{
		{1, 0.5692306863595057},  // 2·J₁(π)
		{3, -0.6669166724059788}, // −2·J₃(π)
		{5, 0.10428236873423694}, // 2·J₅(π)
	}
	for _, tt := range tests {
		testutil.AssertRelativeError(t, tt.expected, coeffs[tt.k], 1e-12, "c_%d", tt.k)
	}
}

// TestChebyshevCoefficients_OddFunction tests that even-order coefficients of an odd target vanish.
func TestChebyshevCoefficients_OddFunction(t *testing.T) {
	coeffs, err := ChebyshevCoefficients(SinPi, 20)
	require.NoError(t, err)

	for k := 0; k < len(coeffs); k += 2 {
		assert.InDelta(t, 0.0, coeffs[k], 1e-14, "c_%d should vanish for an odd function", k)
	}
}

// TestChebyshevCoefficients_Interpolates tests that the truncated series passes
// through the target at every node.
func TestChebyshevCoefficients_Interpolates(t *testing.T) {
	const n = 12
	f := func(u float64) float64 { return math.Exp(u) }

	coeffs, err := ChebyshevCoefficients(f, n)
	require.NoError(t, err)

	for _, x := range ChebyshevNodes(n) {
		assert.InDelta(t, f(x), Clenshaw(coeffs, x), testutil.ExactTolerance, "x=%v", x)
	}
}

// TestChebyshevCoefficients_Polynomial tests exact recovery of a low-degree Chebyshev polynomial.
func TestChebyshevCoefficients_Polynomial(t *testing.T) {
	// 3·T₂(u) = 3(2u² − 1)
	f := func(u float64) float64 { return 3 * (2*u*u - 1) }

	coeffs, err := ChebyshevCoefficients(f, 6)
	require.NoError(t, err)

	expected := []float64{0, 0, 3, 0, 0, 0}
	assert.True(t, floats.EqualApprox(expected, coeffs, testutil.ExactTolerance),
		"got %v, want %v", coeffs, expected)
}

// TestReduceAngle tests known reductions into (-π, π].
func TestReduceAngle(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"Zero", 0, 0},
		{"Half pi", math.Pi / 2, math.Pi / 2},
		{"Pi stays", math.Pi, math.Pi},
		{"Minus pi maps to pi", -math.Pi, math.Pi},
		{"Three half pi", 3 * math.Pi / 2, -math.Pi / 2},
		{"Full period", 2 * math.Pi, 0},
		{"Negative", -5.5, -5.5 + 2*math.Pi},
		{"Beyond period", 10.5, 10.5 - 4*math.Pi},
		{"Large", 100, -0.5309649148733797},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ReduceAngle(tt.x), 1e-12)
		})
	}
}

// TestReduceAngle_Range tests that any finite input lands in (-π, π] and keeps its sine.
func TestReduceAngle_Range(t *testing.T) {
	xs := floats.Span(make([]float64, 4001), -1000, 1000)
	xs = append(xs, 1e6, -1e6, 1e9, math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64)

	reduced := make([]float64, len(xs))
	for i, x := range xs {
		reduced[i] = ReduceAngle(x)
		assert.Greater(t, reduced[i], -math.Pi, "x=%v", x)
	}
	testutil.AssertAllInRange(t, reduced, -math.Pi, math.Pi)

	for i, x := range xs[:4001] {
		assert.InDelta(t, math.Sin(x), math.Sin(reduced[i]), 1e-12, "x=%v", x)
	}
}

// TestReduceAngle_NonFinite tests that NaN and infinities propagate as NaN.
func TestReduceAngle_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(ReduceAngle(math.NaN())))
	assert.True(t, math.IsNaN(ReduceAngle(math.Inf(1))))
	assert.True(t, math.IsNaN(ReduceAngle(math.Inf(-1))))
}

// TestClenshaw tests the recurrence on hand-built series.
func TestClenshaw(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		u      float64
		want   float64
	}{
		{"Constant only", []float64{4}, 0.3, 2},
		{"T1", []float64{0, 1}, 0.3, 0.3},
		{"T2", []float64{0, 0, 1}, 0.3, 2*0.09 - 1},
		{"T3", []float64{0, 0, 0, 1}, 0.3, 4*0.027 - 3*0.3},
		{"Mixed at one", []float64{2, 1, 1, 1}, 1, 4},
		{"Mixed at minus one", []float64{2, 1, 1, 1}, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Clenshaw(tt.coeffs, tt.u), testutil.ExactTolerance)
		})
	}
}

// TestClenshaw_NoAllocation tests that evaluation does not allocate.
func TestClenshaw_NoAllocation(t *testing.T) {
	coeffs, err := ChebyshevCoefficients(SinPi, 20)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		_ = Clenshaw(coeffs, ReduceAngle(100)/math.Pi)
	})
	assert.Zero(t, allocs)
}

// BenchmarkChebyshevCoefficients benchmarks coefficient generation for the default order.
func BenchmarkChebyshevCoefficients(b *testing.B) {
	for b.Loop() {
		_, _ = ChebyshevCoefficients(SinPi, 20)
	}
}

// BenchmarkClenshaw benchmarks a single 20-term evaluation.
func BenchmarkClenshaw(b *testing.B) {
	coeffs, err := ChebyshevCoefficients(SinPi, 20)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = Clenshaw(coeffs, 0.37)
	}
}

// BenchmarkReduceAngle benchmarks range reduction of a large angle.
func BenchmarkReduceAngle(b *testing.B) {
	for b.Loop() {
		_ = ReduceAngle(12345.678)
	}
}
