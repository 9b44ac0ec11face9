package main

import (
	"errors"
	"fmt"
	"runtime"
)

// MaxWorkers caps the --workers flag.
const MaxWorkers = 64

// ErrInvalidWorkers is returned for a worker count outside 0..MaxWorkers.
var ErrInvalidWorkers = errors.New("invalid worker count")

// validateWorkers checks an explicit worker count. Zero means auto.
func validateWorkers(n int) error {
	if n < 0 || n > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkers, n, MaxWorkers)
	}
	return nil
}

// resolvePoolSize determines the generator worker count.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0) / 2

	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
