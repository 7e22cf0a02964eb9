// Package bench measures the per-call latency of sine implementations.
package bench

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidIterations indicates a non-positive iteration count.
var ErrInvalidIterations = errors.New("invalid iteration count")

// Evaluator is anything that approximates sine.
type Evaluator interface {
	Sin(x float64) float64
}

// sink receives every benchmark result so the loop body cannot be proven dead.
var sink float64

// Report is the result of one throughput run.
type Report struct {
	TotalTimeSec float64 `json:"total_time_sec"`
	NsPerOp      float64 `json:"ns_per_op"`
}

// JSON renders the report as a single JSON object with six decimals for the
// total time and two for ns/op.
func (r Report) JSON() string {
	return fmt.Sprintf(`{"total_time_sec": %.6f, "ns_per_op": %.2f}`, r.TotalTimeSec, r.NsPerOp)
}

// Run performs iterations full passes over [TestAngles] and reports the
// elapsed wall time and the average cost of a single Sin call.
//
// The evaluator is only read. Returns an error wrapping ErrInvalidIterations
// if iterations < 1.
func Run(ev Evaluator, iterations int) (Report, error) {
	if iterations < 1 {
		return Report{}, fmt.Errorf("%w: %d (must be positive)", ErrInvalidIterations, iterations)
	}

	elapsed := timePasses(ev.Sin, iterations)
	return newReport(elapsed, iterations*len(TestAngles)), nil
}

// timePasses runs iterations passes of sin over TestAngles and returns the wall time.
func timePasses(sin func(float64) float64, iterations int) time.Duration {
	start := time.Now()
	for range iterations {
		for _, x := range TestAngles {
			sink += sin(x)
		}
	}
	return time.Since(start)
}

func newReport(elapsed time.Duration, ops int) Report {
	total := elapsed.Seconds()
	return Report{
		TotalTimeSec: total,
		NsPerOp:      total * nsPerSecond / float64(ops),
	}
}

// EvaluateOnce returns ev.Sin(x) formatted with 15 decimal digits.
// It is meant for correctness checks, not timing.
func EvaluateOnce(ev Evaluator, x float64) string {
	return strconv.FormatFloat(ev.Sin(x), 'f', SingleShotDigits, 64)
}
