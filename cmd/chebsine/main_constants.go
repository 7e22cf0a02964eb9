package main

// Positional argument indexes
const (
	argIterations = 0
	argInput      = 1
)

// Process exit codes
const (
	exitFailure = 1
)
