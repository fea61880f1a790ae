// Package match - unified dispatchers for the four matcher families.
//
// This file provides the canonical entry points. Each family has three
// surfaces:
//
//   - a PairSink variant (per-match callbacks),
//   - a GroupSink variant (per-anchor aggregated callbacks),
//   - an Into variant filling a caller-supplied buffer (returns count).
//
// Every entry point runs strict validation before any emission (policy,
// interval well-formedness, declared ordering), then routes to the
// strategy the ordering enables. The router is a pure performance
// optimization: every applicable strategy produces the identical
// emission and miss sequences.
//
// Design principles:
//   - Deterministic: no randomness, no clocks, no retained state.
//   - Strict sentinels: only errors from types.go, plus sink errors
//     propagated unchanged.
//   - Hot-path discipline: validation and dispatch up front, nothing
//     but scanning afterwards.
package match

import (
	"github.com/katalvlaran/chronomatch/allen"
	"github.com/katalvlaran/chronomatch/temporal"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Point → Point
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// PointToPoint matches point anchors against point candidates, emitting
// through a PairSink.
//
// Contracts:
//   - sink must be non-nil.
//   - pol.Ordering declarations are verified up front.
//
// Complexity: brute O(n·m); candidates-sorted O(n·(log m + k));
// both-sorted O(n + m + matches).
func PointToPoint[A temporal.Point, C temporal.Point](anchors []A, candidates []C, pol Policy, sink PairSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runP2P(anchors, candidates, pol, &pairEmitter[A, C]{sink: sink})
}

// PointToPointGroups is PointToPoint with per-anchor aggregation.
// The group's candidate view is borrowed; see Group.
func PointToPointGroups[A temporal.Point, C temporal.Point](anchors []A, candidates []C, pol Policy, sink GroupSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runP2P(anchors, candidates, pol, &groupEmitter[A, C]{sink: sink})
}

// PointToPointInto is PointToPoint writing pairs into buf in emission
// order. It returns the number of pairs written; overflow fails with
// ErrBufferExhausted after filling buf completely. Misses are not
// reported in this mode.
func PointToPointInto[A temporal.Point, C temporal.Point](anchors []A, candidates []C, pol Policy, buf []Pair[A, C]) (int, error) {
	em := bufferEmitter[A, C]{buf: buf}
	err := runP2P(anchors, candidates, pol, &em)

	return em.n, err
}

// runP2P validates and routes the point-to-point family.
func runP2P[A temporal.Point, C temporal.Point](anchors []A, candidates []C, pol Policy, em emitter[A, C]) error {
	// Stage 1 - policy consistency.
	if err := pol.Validate(); err != nil {
		return err
	}

	// Stage 2 - declared ordering, then route.
	switch pol.Ordering {
	case OrderingNone:
		return bruteP2P(anchors, candidates, &pol, em)

	case OrderingCandidatesSorted:
		if err := checkSortedPoints(sideCandidate, candidates); err != nil {
			return err
		}

		return sortedP2P(anchors, candidates, &pol, em)

	case OrderingBothSorted:
		if err := checkSortedPoints(sideAnchor, anchors); err != nil {
			return err
		}
		if err := checkSortedPoints(sideCandidate, candidates); err != nil {
			return err
		}

		return sweepP2P(anchors, candidates, &pol, em)

	default:
		return ErrUnknownOrdering
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Point → Interval
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// PointToInterval matches point anchors against interval candidates,
// emitting through a PairSink. Candidate intervals are validated for
// start <= end before any emission.
func PointToInterval[A temporal.Point, C temporal.Interval](anchors []A, candidates []C, pol Policy, sink PairSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runP2I(anchors, candidates, pol, &pairEmitter[A, C]{sink: sink})
}

// PointToIntervalGroups is PointToInterval with per-anchor aggregation.
func PointToIntervalGroups[A temporal.Point, C temporal.Interval](anchors []A, candidates []C, pol Policy, sink GroupSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runP2I(anchors, candidates, pol, &groupEmitter[A, C]{sink: sink})
}

// PointToIntervalInto is PointToInterval writing pairs into buf;
// semantics follow PointToPointInto.
func PointToIntervalInto[A temporal.Point, C temporal.Interval](anchors []A, candidates []C, pol Policy, buf []Pair[A, C]) (int, error) {
	em := bufferEmitter[A, C]{buf: buf}
	err := runP2I(anchors, candidates, pol, &em)

	return em.n, err
}

// runP2I validates and routes the point-to-interval family. Sorted
// orderings share the prefix-cut scan (interval starts cannot bound
// ends, so no dual-pointer sweep is defined for this family).
func runP2I[A temporal.Point, C temporal.Interval](anchors []A, candidates []C, pol Policy, em emitter[A, C]) error {
	if err := pol.Validate(); err != nil {
		return err
	}
	if err := checkIntervals(sideCandidate, candidates); err != nil {
		return err
	}

	switch pol.Ordering {
	case OrderingNone:
		return bruteP2I(anchors, candidates, &pol, em)

	case OrderingCandidatesSorted:
		if err := checkSortedIntervals(sideCandidate, candidates); err != nil {
			return err
		}

		return sortedP2I(anchors, candidates, &pol, em)

	case OrderingBothSorted:
		if err := checkSortedPoints(sideAnchor, anchors); err != nil {
			return err
		}
		if err := checkSortedIntervals(sideCandidate, candidates); err != nil {
			return err
		}

		return sortedP2I(anchors, candidates, &pol, em)

	default:
		return ErrUnknownOrdering
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Interval → Point
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// IntervalToPoint matches interval anchors against point candidates,
// emitting through a PairSink. Anchor intervals are validated for
// start <= end before any emission.
func IntervalToPoint[A temporal.Interval, C temporal.Point](anchors []A, candidates []C, pol Policy, sink PairSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runI2P(anchors, candidates, pol, &pairEmitter[A, C]{sink: sink})
}

// IntervalToPointGroups is IntervalToPoint with per-anchor aggregation.
func IntervalToPointGroups[A temporal.Interval, C temporal.Point](anchors []A, candidates []C, pol Policy, sink GroupSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runI2P(anchors, candidates, pol, &groupEmitter[A, C]{sink: sink})
}

// IntervalToPointInto is IntervalToPoint writing pairs into buf;
// semantics follow PointToPointInto.
func IntervalToPointInto[A temporal.Interval, C temporal.Point](anchors []A, candidates []C, pol Policy, buf []Pair[A, C]) (int, error) {
	em := bufferEmitter[A, C]{buf: buf}
	err := runI2P(anchors, candidates, pol, &em)

	return em.n, err
}

// runI2P validates and routes the interval-to-point family. The anchor
// window's lower bound is monotone in Span start, so both sorted
// strategies carry over from the point-to-point family.
func runI2P[A temporal.Interval, C temporal.Point](anchors []A, candidates []C, pol Policy, em emitter[A, C]) error {
	if err := pol.Validate(); err != nil {
		return err
	}
	if err := checkIntervals(sideAnchor, anchors); err != nil {
		return err
	}

	switch pol.Ordering {
	case OrderingNone:
		return bruteI2P(anchors, candidates, &pol, em)

	case OrderingCandidatesSorted:
		if err := checkSortedPoints(sideCandidate, candidates); err != nil {
			return err
		}

		return sortedI2P(anchors, candidates, &pol, em)

	case OrderingBothSorted:
		if err := checkSortedIntervals(sideAnchor, anchors); err != nil {
			return err
		}
		if err := checkSortedPoints(sideCandidate, candidates); err != nil {
			return err
		}

		return sweepI2P(anchors, candidates, &pol, em)

	default:
		return ErrUnknownOrdering
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Interval → Interval
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// IntervalToInterval matches interval anchors against interval
// candidates, emitting through a PairSink. Both sides are validated for
// start <= end before any emission. The relation mask is respected
// exactly: with Before or After in the mask, disjoint pairs are matches.
func IntervalToInterval[A temporal.Interval, C temporal.Interval](anchors []A, candidates []C, pol Policy, sink PairSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runI2I(anchors, candidates, pol, &pairEmitter[A, C]{sink: sink})
}

// IntervalToIntervalGroups is IntervalToInterval with per-anchor
// aggregation.
func IntervalToIntervalGroups[A temporal.Interval, C temporal.Interval](anchors []A, candidates []C, pol Policy, sink GroupSink[A, C]) error {
	if sink == nil {
		return ErrNilSink
	}

	return runI2I(anchors, candidates, pol, &groupEmitter[A, C]{sink: sink})
}

// IntervalToIntervalInto is IntervalToInterval writing pairs into buf;
// semantics follow PointToPointInto.
func IntervalToIntervalInto[A temporal.Interval, C temporal.Interval](anchors []A, candidates []C, pol Policy, buf []Pair[A, C]) (int, error) {
	em := bufferEmitter[A, C]{buf: buf}
	err := runI2I(anchors, candidates, pol, &em)

	return em.n, err
}

// runI2I validates and routes the interval-to-interval family.
//
// Windowed scans cannot observe Before/After pairs, so sorted routing
// applies only when the mask excludes both; otherwise the declared
// ordering is still verified and the brute kernel runs - a strategy may
// never drop a relation the mask includes.
func runI2I[A temporal.Interval, C temporal.Interval](anchors []A, candidates []C, pol Policy, em emitter[A, C]) error {
	if err := pol.Validate(); err != nil {
		return err
	}
	if err := checkIntervals(sideAnchor, anchors); err != nil {
		return err
	}
	if err := checkIntervals(sideCandidate, candidates); err != nil {
		return err
	}

	windowable := !pol.Allowed.Has(allen.Before) && !pol.Allowed.Has(allen.After)

	switch pol.Ordering {
	case OrderingNone:
		return bruteI2I(anchors, candidates, &pol, em)

	case OrderingCandidatesSorted:
		if err := checkSortedIntervals(sideCandidate, candidates); err != nil {
			return err
		}
		if !windowable {
			return bruteI2I(anchors, candidates, &pol, em)
		}

		return sortedI2I(anchors, candidates, &pol, em)

	case OrderingBothSorted:
		if err := checkSortedIntervals(sideAnchor, anchors); err != nil {
			return err
		}
		if err := checkSortedIntervals(sideCandidate, candidates); err != nil {
			return err
		}
		if !windowable {
			return bruteI2I(anchors, candidates, &pol, em)
		}

		return sortedI2I(anchors, candidates, &pol, em)

	default:
		return ErrUnknownOrdering
	}
}
