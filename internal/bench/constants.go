package bench

import "math"

// TestAngles is the fixed angle set every benchmark pass walks through:
// zero, the quadrant boundaries, a full period, and inputs outside the
// primary period that need range reduction.
var TestAngles = [...]float64{
	0.0,
	math.Pi / 6,
	math.Pi / 4,
	math.Pi / 2,
	math.Pi,
	3 * math.Pi / 2,
	2 * math.Pi,
	10.5,  // > 2π
	-5.5,  // negative
	100.0, // large
}

// Output formatting
const (
	// SingleShotDigits is the number of decimals printed by EvaluateOnce
	SingleShotDigits = 15

	nsPerSecond = 1e9
	nsPerMs     = 1e6
)

// Comparison defaults
const (
	DefaultCompareIterations = 50000
	DefaultCompareRounds     = 5
	DefaultSweepPoints       = 1001

	// Sweep bounds for the dense accuracy check: four periods on each side
	sweepLow  = -4 * 2 * math.Pi
	sweepHigh = 4 * 2 * math.Pi

	// Minimum rounds for a sample standard deviation
	minRoundsForStdDev = 2

	// floats.Span needs both end points
	minSweepPoints = 2
)

// Algorithm names used in comparison reports
const (
	AlgorithmMathSin   = "math.sin"
	AlgorithmTaylor    = "taylor"
	AlgorithmChebyshev = "chebyshev"
)
