package chebyshev

// Expansion order
const (
	// DefaultTerms gives an absolute error below 1e-9 (in practice ~1e-15)
	// for any angle whose range reduction is exact.
	DefaultTerms = 20

	// MinTerms is the smallest accepted expansion order.
	MinTerms = 1
)
