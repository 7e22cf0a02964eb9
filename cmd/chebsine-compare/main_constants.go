package main

import "github.com/tphakala/go-chebyshev-sine/internal/mathutil"

// Default command-line flag values
const (
	defaultTaylorTerms = mathutil.DefaultTaylorTerms
)

// Process exit codes
const (
	exitFailure = 1
)
