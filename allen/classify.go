// Package allen - the total interval classifier.
//
// Classification runs a fixed decision ladder; the first matching rule
// wins. The ladder order is part of the contract: boundary touches are
// resolved before the gap checks, so a zero-gap pair classifies as
// Meets/MetBy rather than Before/After, and a degenerate operand sitting
// on the other interval's boundary classifies as Meets/MetBy rather than
// Starts/Finishes.
package allen

import "time"

// Classify returns the unique relation of [aStart, aEnd] to
// [bStart, bEnd].
//
// Contracts:
//   - Both intervals must be well-formed (start <= end); the matchers
//     validate this at entry. Degenerate intervals are legal.
//   - Total over well-formed inputs: exactly one relation is returned.
//
// Complexity: O(1), at most fifteen time comparisons.
func Classify(aStart, aEnd, bStart, bEnd time.Time) Relation {
	switch {
	// Rule 1: identical bounds.
	case aStart.Equal(bStart) && aEnd.Equal(bEnd):
		return Equal

	// Rules 2-3: touching endpoints win over the gap checks below.
	case aEnd.Equal(bStart):
		return Meets
	case aStart.Equal(bEnd):
		return MetBy

	// Rules 4-5: disjoint with a positive gap.
	case aEnd.Before(bStart):
		return Before
	case aStart.After(bEnd):
		return After

	// Rules 6-7: shared start.
	case aStart.Equal(bStart) && aEnd.Before(bEnd):
		return Starts
	case aStart.Equal(bStart) && aEnd.After(bEnd):
		return StartedBy

	// Rules 8-9: shared end.
	case aEnd.Equal(bEnd) && aStart.After(bStart):
		return Finishes
	case aEnd.Equal(bEnd) && aStart.Before(bStart):
		return FinishedBy

	// Rules 10-11: strict nesting.
	case aStart.After(bStart) && aEnd.Before(bEnd):
		return During
	case aStart.Before(bStart) && aEnd.After(bEnd):
		return Contains

	// Rules 12-13: proper overlap.
	case aStart.Before(bStart) && aEnd.Before(bEnd):
		return Overlaps
	case aStart.After(bStart) && aEnd.After(bEnd):
		return OverlappedBy
	}

	// Unreachable for well-formed inputs: rules 1-13 partition the
	// endpoint orderings. Reaching here is a classifier bug, not bad
	// user input.
	panic("allen: classification ladder is not exhaustive")
}
