// Command chebsine-compare compares the Chebyshev sine against math.Sin and a
// Taylor series: mean latency per call, spread over rounds, and maximum
// absolute error.
//
// Usage:
//
//	chebsine-compare
//	chebsine-compare -iterations 100000 -rounds 10 -sweep 2001
//	chebsine-compare -terms 12 -json
//	chebsine-compare -v -log-json 2> compare.log
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	chebyshev "github.com/tphakala/go-chebyshev-sine"
	"github.com/tphakala/go-chebyshev-sine/internal/bench"
	"github.com/tphakala/go-chebyshev-sine/internal/logging"
	"go.uber.org/zap"
)

// options holds parsed command-line flags.
type options struct {
	iterations  int
	rounds      int
	sweep       int
	terms       int
	taylorTerms int
	json        bool
	verbose     bool
	logJSON     bool
}

// defaultOptions returns the flag defaults, taken from bench.DefaultCompareConfig.
func defaultOptions() options {
	cfg := bench.DefaultCompareConfig()
	return options{
		iterations:  cfg.Iterations,
		rounds:      cfg.Rounds,
		sweep:       cfg.SweepPoints,
		terms:       chebyshev.DefaultTerms,
		taylorTerms: defaultTaylorTerms,
	}
}

// compareConfig starts from the default comparison and applies the flags.
func (o *options) compareConfig() bench.CompareConfig {
	cfg := bench.DefaultCompareConfig()
	cfg.Iterations = o.iterations
	cfg.Rounds = o.rounds
	cfg.SweepPoints = o.sweep
	return cfg
}

func main() {
	opts := defaultOptions()
	flag.IntVar(&opts.iterations, "iterations", opts.iterations, "Passes over the test angles per round")
	flag.IntVar(&opts.rounds, "rounds", opts.rounds, "Timed rounds per algorithm")
	flag.IntVar(&opts.sweep, "sweep", opts.sweep, "Extra evenly spaced angles for the accuracy check (0 disables)")
	flag.IntVar(&opts.terms, "terms", opts.terms, "Chebyshev expansion order")
	flag.IntVar(&opts.taylorTerms, "taylor-terms", opts.taylorTerms, "Taylor series terms")
	flag.BoolVar(&opts.json, "json", false, "Print the comparison as JSON")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose output")
	flag.BoolVar(&opts.logJSON, "log-json", false, "Write diagnostics to stderr as JSON lines")
	flag.Parse()

	logger := logging.NewCommand(opts.verbose, opts.logJSON)
	defer func() { _ = logger.Sync() }()

	if err := run(&opts, os.Stdout, logger); err != nil {
		logger.Error("comparison failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(exitFailure)
	}
}

func run(opts *options, stdout io.Writer, logger *zap.Logger) error {
	approx, err := chebyshev.New(opts.terms)
	if err != nil {
		return fmt.Errorf("failed to create approximator: %w", err)
	}

	cfg := opts.compareConfig()

	logger.Debug("starting comparison",
		zap.Int("iterations", cfg.Iterations),
		zap.Int("rounds", cfg.Rounds),
		zap.Int("sweep", cfg.SweepPoints),
		zap.Int("terms", approx.Terms()),
		zap.Int("taylor_terms", opts.taylorTerms))

	cmp, err := bench.Compare(cfg, bench.DefaultAlgorithms(approx, opts.taylorTerms))
	if err != nil {
		return err
	}

	if opts.json {
		return writeJSON(stdout, cmp)
	}
	return writeTable(stdout, cmp, approx.Terms())
}

func writeJSON(w io.Writer, cmp *bench.Comparison) error {
	data, err := sonic.Marshal(cmp)
	if err != nil {
		return fmt.Errorf("failed to encode comparison: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeTable(w io.Writer, cmp *bench.Comparison, terms int) error {
	if _, err := fmt.Fprintf(w, "Sine comparison: %d iterations x %d angles, %d rounds, %d Chebyshev terms\n",
		cmp.Iterations, cmp.DatasetSize, cmp.Rounds, terms); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "SIMD: %s\n\n", cmp.SIMD); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-12s %12s %10s %12s %12s\n",
		"algorithm", "ns/op", "stddev", "total ms", "max error"); err != nil {
		return err
	}
	for _, r := range cmp.Results {
		if _, err := fmt.Fprintf(w, "%-12s %12.2f %10.2f %12.3f %12.3e\n",
			r.Name, r.AvgTimeNs, r.StdDevNs, r.TotalTimeMs, r.MaxError); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nWinner: %s\n", cmp.Winner)
	return err
}
