// Package mathutil provides the numerical kernels behind the sine approximator:
// Chebyshev coefficient generation, range reduction and Clenshaw evaluation.
package mathutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
)

// ErrInvalidTermsCount indicates a Chebyshev expansion order below one.
var ErrInvalidTermsCount = errors.New("invalid Chebyshev terms count")

// SinPi is the target function of the sine expansion: f(u) = sin(πu).
// The normalized variable u ∈ [-1, 1] covers one full period x = uπ ∈ [-π, π].
func SinPi(u float64) float64 {
	return math.Sin(u * math.Pi)
}

// ChebyshevNodes returns the n Chebyshev–Gauss nodes, the roots of T_n:
//
//	x_j = cos(π(2j+1) / 2n),  j = 0..n-1
//
// Nodes are in descending order and lie strictly inside (-1, 1).
// Returns nil for n < 1.
func ChebyshevNodes(n int) []float64 {
	if n < minTerms {
		return nil
	}

	nodes := make([]float64, n)
	for j := range nodes {
		nodes[j] = math.Cos(nodeAngle(1, j, n))
	}
	return nodes
}

// nodeAngle returns kπ(2j+1)/2n, the angle at which T_k is sampled at node j.
func nodeAngle(k, j, n int) float64 {
	return float64(k) * math.Pi * float64(2*j+1) / (nodeAngleDivisor * float64(n))
}

// ChebyshevCoefficients computes the first n Chebyshev coefficients of f on
// [-1, 1] with the discrete Chebyshev transform (a DCT-II over the nodes):
//
//	c_k = (2/n) Σ_j f(x_j) · cos(kπ(2j+1) / 2n),  k = 0..n-1
//
// Every coefficient, c₀ included, carries the 2/n factor; [Clenshaw] compensates
// by weighting c₀ with ½. The result is a pure function of f and n.
//
// Returns ErrInvalidTermsCount for n < 1.
func ChebyshevCoefficients(f func(float64) float64, n int) ([]float64, error) {
	if n < minTerms {
		return nil, fmt.Errorf("%w: %d (must be at least %d)", ErrInvalidTermsCount, n, minTerms)
	}

	// Sample the target once per node
	samples := make([]float64, n)
	for j, x := range ChebyshevNodes(n) {
		samples[j] = f(x)
	}

	coeffs := make([]float64, n)
	basis := make([]float64, n)
	for k := range coeffs {
		// T_k(x_j) = cos(k·θ_j) since x_j = cos(θ_j)
		for j := range basis {
			basis[j] = math.Cos(nodeAngle(k, j, n))
		}
		coeffs[k] = f64.DotProductUnsafe(samples, basis)
	}

	f64.Scale(coeffs, coeffs, transformNormalization/float64(n))
	return coeffs, nil
}

// ReduceAngle maps x into (-π, π] in constant time.
//
// The remainder is taken with a single math.Mod call and its sign is
// normalized explicitly, so the result does not depend on the truncating
// remainder convention: first into [0, 2π), then shifted down by one period
// when above π. NaN and ±Inf yield NaN.
func ReduceAngle(x float64) float64 {
	r := math.Mod(x, twoPi)
	if r < 0 {
		r += twoPi
	}
	// A tiny negative remainder can round up to exactly 2π
	if r >= twoPi {
		r -= twoPi
	}
	if r > math.Pi {
		r -= twoPi
	}
	return r
}

// Clenshaw evaluates the truncated Chebyshev series
//
//	½c₀ + Σ_{k=1}^{n-1} c_k T_k(u)
//
// with Clenshaw's backward recurrence. It performs no allocation.
// coeffs must hold at least one element.
func Clenshaw(coeffs []float64, u float64) float64 {
	var b1, b2 float64
	y := clenshawArgScale * u

	for k := len(coeffs) - 1; k > 0; k-- {
		b0 := coeffs[k] + y*b1 - b2
		b2 = b1
		b1 = b0
	}

	return clenshawConstantWeight*coeffs[0] + u*b1 - b2
}
