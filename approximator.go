package chebyshev

import (
	"math"
	"slices"

	"github.com/tphakala/go-chebyshev-sine/internal/mathutil"
)

// ErrInvalidTermsCount indicates an expansion order below one.
// Errors returned by [New] wrap it; test with errors.Is.
var ErrInvalidTermsCount = mathutil.ErrInvalidTermsCount

// Approximator evaluates sin(x) from a truncated Chebyshev expansion.
//
// The coefficient table is computed once by [New] and never modified, so an
// Approximator is safe for concurrent use by multiple goroutines.
type Approximator struct {
	terms  int
	coeffs []float64
}

// New creates an Approximator with the given expansion order.
//
// The coefficients approximate sin(πu) on u ∈ [-1, 1], i.e. one full period
// of sine after range reduction. The same terms value always produces the
// same coefficients.
//
// Returns an error wrapping [ErrInvalidTermsCount] if terms < 1.
func New(terms int) (*Approximator, error) {
	coeffs, err := mathutil.ChebyshevCoefficients(mathutil.SinPi, terms)
	if err != nil {
		return nil, err
	}

	return &Approximator{
		terms:  terms,
		coeffs: coeffs,
	}, nil
}

// NewDefault creates an Approximator with [DefaultTerms] terms.
func NewDefault() *Approximator {
	a, err := New(DefaultTerms)
	if err != nil {
		panic("chebyshev: default terms rejected: " + err.Error())
	}
	return a
}

// Terms returns the expansion order.
func (a *Approximator) Terms() int {
	return a.terms
}

// Coefficients returns a copy of the Chebyshev coefficients, index 0..Terms()-1.
func (a *Approximator) Coefficients() []float64 {
	return slices.Clone(a.coeffs)
}

// Sin approximates sin(x).
//
// The angle is reduced into (-π, π] in constant time, normalized to
// u = x/π, and the series is evaluated with Clenshaw's recurrence in O(Terms())
// without allocating. NaN and ±Inf return NaN.
func (a *Approximator) Sin(x float64) float64 {
	u := mathutil.ReduceAngle(x) / math.Pi
	return mathutil.Clenshaw(a.coeffs, u)
}
