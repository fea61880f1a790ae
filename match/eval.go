// Package match - the per-pair evaluation core shared by every strategy.
//
// All four matcher families reduce to the same step: expand both sides,
// classify the expanded pair with Allen's algebra, apply the relation
// mask, and shape the result (PointExact / PointInInterval / Interval).
// Keeping this in one place is what makes brute, binary-search, and
// sweep strategies bit-identical.
package match

import (
	"time"

	"github.com/katalvlaran/chronomatch/allen"
)

// evalPair classifies one expanded (anchor, candidate) pair and decides
// acceptance and match shape.
//
// pointKind marks the families with an intrinsically point-typed side
// (P→P, P→I, I→P). For those, disjoint extents never correlate: a
// Before/After classification is a non-match regardless of the mask.
// Interval-to-interval matching respects the mask exactly, Before and
// After included.
//
// Match shape, after expansion:
//  1. both extents degenerate and coincident → MatchPointExact;
//  2. exactly one extent degenerate, lying within the other under
//     closed bounds → MatchPointInInterval (the ladder classifies a
//     boundary touch of a degenerate operand as Meets/MetBy and strict
//     interiority as During/Contains);
//  3. otherwise → MatchInterval with the relation carried.
//
// Complexity: O(1).
func evalPair(pol *Policy, aLo, aHi, cLo, cHi time.Time, pointKind bool) (typ MatchType, rel allen.Relation, hasRel, ok bool) {
	rel = allen.Classify(aLo, aHi, cLo, cHi)

	if pointKind && (rel == allen.Before || rel == allen.After) {
		return 0, 0, false, false
	}
	if !pol.Allowed.Has(rel) {
		return 0, 0, false, false
	}

	aDeg := aLo.Equal(aHi)
	cDeg := cLo.Equal(cHi)
	switch {
	case aDeg && cDeg && rel == allen.Equal:
		return MatchPointExact, 0, false, true
	case aDeg != cDeg && degenerateWithin(rel, aDeg):
		return MatchPointInInterval, 0, false, true
	default:
		return MatchInterval, rel, true, true
	}
}

// degenerateWithin reports whether rel places the degenerate operand
// inside the non-degenerate one under closed bounds. With one degenerate
// operand the ladder can only produce Meets/MetBy (boundary), During or
// Contains (interior), or Before/After (outside).
func degenerateWithin(rel allen.Relation, aDeg bool) bool {
	if rel == allen.Meets || rel == allen.MetBy {
		return true
	}
	if aDeg {
		return rel == allen.During
	}

	return rel == allen.Contains
}
