// Package match - entry validation shared by all matchers.
//
// Validation runs in stages before any emission:
//  1. Policy consistency (Policy.Validate).
//  2. Interval well-formedness on interval-typed sides; every offender
//     is reported, aggregated into one error.
//  3. Declared-ordering verification (once, never in the inner loop).
//
// Deterministic, side-effect free, O(n+m); only sentinel errors from
// types.go, wrapped with side and index where detail helps.
package match

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/katalvlaran/chronomatch/temporal"
)

// Side labels used in wrapped validation errors.
const (
	sideAnchor    = "anchor"
	sideCandidate = "candidate"
)

// checkIntervals verifies I1 (start <= end) for every entity, collecting
// all offenders into a single aggregated error. errors.Is matches
// ErrInvalidInterval on the aggregate.
//
// Complexity: O(len(xs)).
func checkIntervals[T temporal.Interval](side string, xs []T) error {
	var merr error

	var (
		i          int
		start, end time.Time
	)
	for i = 0; i < len(xs); i++ {
		start, end = xs[i].Span()
		if end.Before(start) {
			merr = multierr.Append(merr, fmt.Errorf("match: %s %d: %w", side, i, ErrInvalidInterval))
		}
	}

	return merr
}

// checkSortedPoints verifies the sequence is non-decreasing by At.
//
// Complexity: O(len(xs)).
func checkSortedPoints[T temporal.Point](side string, xs []T) error {
	var i int
	for i = 1; i < len(xs); i++ {
		if xs[i].At().Before(xs[i-1].At()) {
			return fmt.Errorf("match: %s %d: %w", side, i, ErrUnsortedInput)
		}
	}

	return nil
}

// checkSortedIntervals verifies the sequence is non-decreasing by Span
// start.
//
// Complexity: O(len(xs)).
func checkSortedIntervals[T temporal.Interval](side string, xs []T) error {
	var (
		i          int
		prev, curr time.Time
	)
	for i = 1; i < len(xs); i++ {
		prev, _ = xs[i-1].Span()
		curr, _ = xs[i].Span()
		if curr.Before(prev) {
			return fmt.Errorf("match: %s %d: %w", side, i, ErrUnsortedInput)
		}
	}

	return nil
}
