package bench

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-chebyshev-sine/internal/mathutil"
	"github.com/tphakala/simd/cpu"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidConfig indicates invalid comparison parameters.
var ErrInvalidConfig = errors.New("invalid comparison configuration")

// Algorithm is a named sine implementation taking part in a comparison.
type Algorithm struct {
	Name string
	Sin  func(float64) float64
}

// DefaultAlgorithms returns the library sine, a Taylor series with
// taylorTerms terms, and the given Chebyshev evaluator, in that order.
func DefaultAlgorithms(chebyshev Evaluator, taylorTerms int) []Algorithm {
	return []Algorithm{
		{Name: AlgorithmMathSin, Sin: math.Sin},
		{Name: AlgorithmTaylor, Sin: func(x float64) float64 { return mathutil.TaylorSin(x, taylorTerms) }},
		{Name: AlgorithmChebyshev, Sin: chebyshev.Sin},
	}
}

// CompareConfig holds comparison parameters.
type CompareConfig struct {
	// Iterations is the number of passes over TestAngles per round.
	Iterations int

	// Rounds is the number of timed repetitions per algorithm.
	// The reported ns/op is the mean over rounds.
	Rounds int

	// SweepPoints adds an evenly spaced sweep over ±4 periods to the
	// accuracy check. 0 disables the sweep; otherwise it must be at least 2.
	SweepPoints int
}

// DefaultCompareConfig returns the configuration used by chebsine-compare
// when no flags override it.
func DefaultCompareConfig() CompareConfig {
	return CompareConfig{
		Iterations:  DefaultCompareIterations,
		Rounds:      DefaultCompareRounds,
		SweepPoints: DefaultSweepPoints,
	}
}

func (c *CompareConfig) validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidIterations, c.Iterations)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1", ErrInvalidConfig)
	}
	if c.SweepPoints < 0 || (c.SweepPoints > 0 && c.SweepPoints < minSweepPoints) {
		return fmt.Errorf("%w: sweep points must be 0 or at least 2", ErrInvalidConfig)
	}
	return nil
}

// AlgorithmResult holds timing and accuracy for one algorithm.
type AlgorithmResult struct {
	Name        string  `json:"name"`
	TotalTimeMs float64 `json:"total_time_ms"` // All rounds
	AvgTimeNs   float64 `json:"avg_time_ns"`   // Mean ns/op over rounds
	StdDevNs    float64 `json:"stddev_ns"`     // 0 for a single round
	MaxError    float64 `json:"max_error"`     // Against math.Sin
}

// Comparison is the outcome of [Compare].
type Comparison struct {
	Iterations  int               `json:"iterations"`
	Rounds      int               `json:"rounds"`
	DatasetSize int               `json:"dataset_size"`
	Results     []AlgorithmResult `json:"results"`
	Winner      string            `json:"winner"` // Lowest mean ns/op
	SIMD        string            `json:"simd"`
}

// Compare times each algorithm over TestAngles and measures its maximum
// absolute error against math.Sin.
//
// Every algorithm gets one untimed warm-up pass, then cfg.Rounds timed rounds
// of cfg.Iterations passes each. Ties for the winner go to the algorithm
// listed first.
func Compare(cfg CompareConfig, algorithms []Algorithm) (*Comparison, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(algorithms) == 0 {
		return nil, fmt.Errorf("%w: no algorithms to compare", ErrInvalidConfig)
	}

	accuracyAngles := AccuracyAngles(cfg.SweepPoints)
	ops := float64(cfg.Iterations * len(TestAngles))

	cmp := &Comparison{
		Iterations:  cfg.Iterations,
		Rounds:      cfg.Rounds,
		DatasetSize: len(TestAngles),
		Results:     make([]AlgorithmResult, 0, len(algorithms)),
		SIMD:        cpu.Info(),
	}

	perRound := make([]float64, cfg.Rounds)
	bestIdx := 0
	for i, alg := range algorithms {
		// Warm-up
		timePasses(alg.Sin, 1)

		var totalNs float64
		for r := range perRound {
			ns := float64(timePasses(alg.Sin, cfg.Iterations).Nanoseconds())
			totalNs += ns
			perRound[r] = ns / ops
		}

		mean, std := perRound[0], 0.0
		if cfg.Rounds >= minRoundsForStdDev {
			mean, std = stat.MeanStdDev(perRound, nil)
		}

		cmp.Results = append(cmp.Results, AlgorithmResult{
			Name:        alg.Name,
			TotalTimeMs: totalNs / nsPerMs,
			AvgTimeNs:   mean,
			StdDevNs:    std,
			MaxError:    MaxError(alg.Sin, accuracyAngles),
		})

		if mean < cmp.Results[bestIdx].AvgTimeNs {
			bestIdx = i
		}
	}
	cmp.Winner = cmp.Results[bestIdx].Name

	return cmp, nil
}

// AccuracyAngles returns TestAngles followed by sweepPoints evenly spaced
// angles over ±4 periods. sweepPoints below 2 adds nothing.
func AccuracyAngles(sweepPoints int) []float64 {
	angles := TestAngles[:]
	if sweepPoints < minSweepPoints {
		return append([]float64(nil), angles...)
	}
	sweep := floats.Span(make([]float64, sweepPoints), sweepLow, sweepHigh)
	return append(append(make([]float64, 0, len(angles)+len(sweep)), angles...), sweep...)
}

// MaxError returns the largest |sin(x) − math.Sin(x)| over xs, or 0 for no angles.
func MaxError(sin func(float64) float64, xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	errs := make([]float64, len(xs))
	for i, x := range xs {
		errs[i] = math.Abs(sin(x) - math.Sin(x))
	}
	return floats.Max(errs)
}
