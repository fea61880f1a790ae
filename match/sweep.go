// Package match - dual-pointer sweep strategies for fully sorted inputs.
//
// With both sequences sorted, anchor windows open in non-decreasing
// order, so a single candidate cursor never retreats: it advances past
// candidates that ended before the current window opens, because no
// earlier candidate can match any future anchor either. The cursor must
// NOT advance past the window's end - the next anchor may revisit those
// candidates - so each anchor scans forward from the cursor without
// moving it.
//
// Complexity: O(n + m + matches).
package match

import (
	"time"

	"github.com/katalvlaran/chronomatch/allen"
	"github.com/katalvlaran/chronomatch/temporal"
)

// sweepP2P matches sorted point anchors against sorted point candidates.
func sweepP2P[A temporal.Point, C temporal.Point](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j, cursor   int
		aLo, aHi       time.Time
		loKey, hiKey   time.Time
		cLo, cHi       time.Time
		typ            MatchType
		rel            allen.Relation
		hasRel, ok     bool
		err            error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aLo, aHi = pol.AnchorTolerance.ExpandPoint(anchors[i].At())
		loKey = aLo.Add(-pol.CandidateTolerance.After())
		hiKey = aHi.Add(pol.CandidateTolerance.Before())

		// Retire candidates no future anchor can reach: loKey is
		// non-decreasing across anchors, so this never loses a match.
		for cursor < len(candidates) && candidates[cursor].At().Before(loKey) {
			cursor++
		}

		for j = cursor; j < len(candidates) && !candidates[j].At().After(hiKey); j++ {
			cLo, cHi = pol.CandidateTolerance.ExpandPoint(candidates[j].At())
			typ, rel, hasRel, ok = evalPair(pol, aLo, aHi, cLo, cHi, true)
			if !ok {
				continue
			}
			if err = em.match(Pair[A, C]{Anchor: anchors[i], Candidate: candidates[j], Type: typ, Relation: rel, HasRelation: hasRel}); err != nil {
				return err
			}
		}
		if err = em.finish(anchors[i]); err != nil {
			return err
		}
	}

	return nil
}

// sweepI2P matches sorted interval anchors against sorted point
// candidates. The retire condition depends only on the window's lower
// bound, which is monotone in the anchors' sort key (Span start), so the
// cursor invariant carries over unchanged.
func sweepI2P[A temporal.Interval, C temporal.Point](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j, cursor   int
		aStart, aEnd   time.Time
		aLo, aHi       time.Time
		loKey, hiKey   time.Time
		cLo, cHi       time.Time
		typ            MatchType
		rel            allen.Relation
		hasRel, ok     bool
		err            error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aStart, aEnd = anchors[i].Span()
		aLo, aHi = pol.AnchorTolerance.ExpandSpan(aStart, aEnd)
		loKey = aLo.Add(-pol.CandidateTolerance.After())
		hiKey = aHi.Add(pol.CandidateTolerance.Before())

		for cursor < len(candidates) && candidates[cursor].At().Before(loKey) {
			cursor++
		}

		for j = cursor; j < len(candidates) && !candidates[j].At().After(hiKey); j++ {
			cLo, cHi = pol.CandidateTolerance.ExpandPoint(candidates[j].At())
			typ, rel, hasRel, ok = evalPair(pol, aLo, aHi, cLo, cHi, true)
			if !ok {
				continue
			}
			if err = em.match(Pair[A, C]{Anchor: anchors[i], Candidate: candidates[j], Type: typ, Relation: rel, HasRelation: hasRel}); err != nil {
				return err
			}
		}
		if err = em.finish(anchors[i]); err != nil {
			return err
		}
	}

	return nil
}
