// Package testutil provides reusable test helper functions for the sine approximator tests.
//
// Every helper reports through assert.Fail and appends the caller's
// msgAndArgs to the failure, the same way testify's own assertions do.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances for various test scenarios.
const (
	AccuracyTolerance = 1e-9  // Chebyshev sine with the default 20 terms
	ExactTolerance    = 1e-13 // Quantities that differ only by rounding
)

type tHelper interface {
	Helper()
}

func markHelper(t assert.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// AssertAntisymmetric verifies that a slice is antisymmetric (s[i] == -s[n-1-i]).
func AssertAntisymmetric(t assert.TestingT, s []float64, tolerance float64, msgAndArgs ...any) bool {
	markHelper(t)
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !scalar.EqualWithinAbs(s[i], -s[j], tolerance) {
			return assert.Fail(t, fmt.Sprintf("slice not antisymmetric at i=%d: s[%d]=%g, s[%d]=%g",
				i, i, s[i], j, s[j]), msgAndArgs...)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	markHelper(t)
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t assert.TestingT, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	markHelper(t)
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%f is outside [%f, %f]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyDecreasing verifies that each element is smaller than the one before it.
func AssertStrictlyDecreasing(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	markHelper(t)
	for i := 1; i < len(s); i++ {
		if s[i] >= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not strictly decreasing: s[%d]=%g >= s[%d]=%g",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertMatchesSin verifies that fn agrees with math.Sin at every x within tolerance.
// All mismatches are reported, not just the first.
func AssertMatchesSin(t assert.TestingT, fn func(float64) float64, xs []float64, tolerance float64, msgAndArgs ...any) bool {
	markHelper(t)
	ok := true
	for _, x := range xs {
		want := math.Sin(x)
		got := fn(x)
		if !scalar.EqualWithinAbs(want, got, tolerance) {
			assert.Fail(t, fmt.Sprintf("sin(%v): want %.17g, got %.17g (tolerance %g)",
				x, want, got, tolerance), msgAndArgs...)
			ok = false
		}
	}
	return ok
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
// A zero expected value falls back to an absolute comparison.
func AssertRelativeError(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	markHelper(t)
	if expected == 0 {
		if scalar.EqualWithinAbs(expected, actual, tolerance) {
			return true
		}
		return assert.Fail(t, fmt.Sprintf("absolute error %e exceeds tolerance %e (actual=%g)",
			math.Abs(actual), tolerance, actual), msgAndArgs...)
	}
	if scalar.EqualWithinRel(actual, expected, tolerance) {
		return true
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual), msgAndArgs...)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t assert.TestingT, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	markHelper(t)
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}
