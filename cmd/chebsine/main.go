// Command chebsine benchmarks or evaluates the Chebyshev sine approximation.
//
// Usage:
//
//	chebsine <iterations>          # throughput benchmark, prints JSON
//	chebsine <iterations> <input>  # single evaluation when iterations is not positive
//
// Examples:
//
//	chebsine 1000000
//	{"total_time_sec": 0.089213, "ns_per_op": 8.92}
//
//	chebsine 0 1.5707963267948966
//	1.000000000000001
//
// Arguments are positional only; there are no flags or environment variables.
// Diagnostics are written to stderr and failures exit with status 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	chebyshev "github.com/tphakala/go-chebyshev-sine"
	"github.com/tphakala/go-chebyshev-sine/internal/bench"
	"github.com/tphakala/go-chebyshev-sine/internal/logging"
	"go.uber.org/zap"
)

var (
	// ErrArgumentParse indicates a positional argument that must be numeric is not.
	ErrArgumentParse = errors.New("argument parse error")

	// ErrMissingInput indicates neither a positive iteration count nor an input value was given.
	ErrMissingInput = errors.New("missing input")
)

func main() {
	logger := logging.NewCLI(false)

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("chebsine failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "usage: %s [iterations] [input]\n", os.Args[0])
		_ = logger.Sync()
		os.Exit(exitFailure)
	}
	_ = logger.Sync()
}

// run dispatches on the positional arguments:
//   - a positive integer iteration count runs the throughput benchmark
//   - otherwise a second argument is evaluated once
//   - otherwise the invocation is an error
func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	approx, err := chebyshev.New(chebyshev.DefaultTerms)
	if err != nil {
		return fmt.Errorf("failed to create approximator: %w", err)
	}

	var iterErr error
	if len(args) > argIterations {
		iterations, err := strconv.Atoi(args[argIterations])
		switch {
		case err != nil:
			iterErr = fmt.Errorf("%w: iterations %q is not an integer", ErrArgumentParse, args[argIterations])
		case iterations > 0:
			return runBenchmark(approx, iterations, stdout, logger)
		}
	}

	if len(args) > argInput {
		return runSingle(approx, args[argInput], stdout)
	}

	if iterErr != nil {
		return iterErr
	}
	return fmt.Errorf("%w: need a positive iteration count or an input value", ErrMissingInput)
}

func runBenchmark(approx *chebyshev.Approximator, iterations int, stdout io.Writer, logger *zap.Logger) error {
	report, err := bench.Run(approx, iterations)
	if err != nil {
		return err
	}

	logger.Debug("benchmark finished",
		zap.Int("iterations", iterations),
		zap.Int("terms", approx.Terms()),
		zap.Float64("ns_per_op", report.NsPerOp))

	_, err = fmt.Fprintln(stdout, report.JSON())
	return err
}

func runSingle(approx *chebyshev.Approximator, input string, stdout io.Writer) error {
	x, err := strconv.ParseFloat(input, 64)
	// Out-of-range literals parse to ±Inf and evaluate to NaN like "Inf" does
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(x, 0)) {
		return fmt.Errorf("%w: input %q is not a number", ErrArgumentParse, input)
	}

	_, err = fmt.Fprintln(stdout, bench.EvaluateOnce(approx, x))
	return err
}
