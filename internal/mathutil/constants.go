package mathutil

import "math"

// Range reduction constants
const (
	twoPi = 2 * math.Pi // Period of sine
)

// Chebyshev expansion constants
const (
	// Smallest usable expansion order
	minTerms = 1

	// Normalization numerator for the discrete Chebyshev transform: c_k = (2/N) Σ f(x_j) T_k(x_j)
	transformNormalization = 2.0

	// The node angle is π(2j+1)/(2N)
	nodeAngleDivisor = 2.0

	// c₀ enters the Clenshaw sum with weight ½ because it was scaled by 2/N like the others
	clenshawConstantWeight = 0.5

	// Clenshaw recurrence multiplier: b_k = c_k + 2u·b_{k+1} − b_{k+2}
	clenshawArgScale = 2.0
)

// Taylor series constants
const (
	// DefaultTaylorTerms matches the precision used by the comparison benchmark
	DefaultTaylorTerms = 20

	// Each Taylor step advances the odd power by two: x^(2n+1)
	taylorPowerStep = 2
)
