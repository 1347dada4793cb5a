package main

import "runtime"

// resolvePoolSize determines how many dramas are converted in parallel.
// Priority: explicit flag > GOMAXPROCS-based calculation. Each drama also
// fetches its pages in parallel, so the automatic size stays small.
func resolvePoolSize(flagJobs int) int {
	// Explicit flag takes priority
	if flagJobs > 0 {
		return flagJobs
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
