// Package match - binary-search window strategies for sorted candidates.
//
// With candidates sorted by their key (point At, interval Span start),
// each anchor scans only the candidates whose expanded extent can reach
// its own expanded window [lo, hi]:
//
//   - point candidates: c matches the window iff
//     c.At >= lo - candTol.After  and  c.At <= hi + candTol.Before,
//     a contiguous run located by one binary search;
//   - interval candidates: start bounds only the upper cut (a long early
//     interval may still reach the window), so the scan runs over the
//     prefix start <= hi + candTol.Before and filters end >= lo inline.
//
// Point-kind families never match disjoint pairs, so a window scan loses
// nothing. For interval-to-interval the dispatcher routes here only when
// the mask excludes Before and After; otherwise brute runs, so no
// masked-in relation is ever dropped.
//
// Complexity: O(n·(log m + k)) with k candidates per window.
package match

import (
	"sort"
	"time"

	"github.com/katalvlaran/chronomatch/allen"
	"github.com/katalvlaran/chronomatch/temporal"
)

// sortedP2P matches point anchors against candidates sorted by At.
func sortedP2P[A temporal.Point, C temporal.Point](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	// Window keys fold the uniform candidate tolerance into the anchor
	// window once per anchor instead of expanding every candidate.
	var (
		i, j, from         int
		aLo, aHi           time.Time
		loKey, hiKey       time.Time
		cLo, cHi           time.Time
		typ                MatchType
		rel                allen.Relation
		hasRel, ok         bool
		err                error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aLo, aHi = pol.AnchorTolerance.ExpandPoint(anchors[i].At())
		loKey = aLo.Add(-pol.CandidateTolerance.After())
		hiKey = aHi.Add(pol.CandidateTolerance.Before())

		// First candidate whose expanded extent can reach lo.
		from = sort.Search(len(candidates), func(k int) bool {
			return !candidates[k].At().Before(loKey)
		})

		for j = from; j < len(candidates) && !candidates[j].At().After(hiKey); j++ {
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

// sortedI2P matches interval anchors against point candidates sorted by
// At; identical windowing to sortedP2P with span expansion on the anchor
// side.
func sortedI2P[A temporal.Interval, C temporal.Point](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j, from     int
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

		from = sort.Search(len(candidates), func(k int) bool {
			return !candidates[k].At().Before(loKey)
		})

		for j = from; j < len(candidates) && !candidates[j].At().After(hiKey); j++ {
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

// sortedP2I matches point anchors against interval candidates sorted by
// Span start. Only the upper cut is established by binary search; the
// scan filters unreachable ends inline (start does not bound end).
func sortedP2I[A temporal.Point, C temporal.Interval](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j, cut      int
		aLo, aHi       time.Time
		hiKey          time.Time
		cStart, cEnd   time.Time
		cLo, cHi       time.Time
		typ            MatchType
		rel            allen.Relation
		hasRel, ok     bool
		err            error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aLo, aHi = pol.AnchorTolerance.ExpandPoint(anchors[i].At())
		hiKey = aHi.Add(pol.CandidateTolerance.Before())

		// First candidate starting past the window; nothing at or beyond
		// the cut can reach back to hi.
		cut = sort.Search(len(candidates), func(k int) bool {
			s, _ := candidates[k].Span()
			return s.After(hiKey)
		})

		for j = 0; j < cut; j++ {
			cStart, cEnd = candidates[j].Span()
			cLo, cHi = pol.CandidateTolerance.ExpandSpan(cStart, cEnd)
			if cHi.Before(aLo) {
				continue // ends before the window opens
			}
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

// sortedI2I matches interval anchors against interval candidates sorted
// by Span start, with the same prefix-cut scheme as sortedP2I. The
// dispatcher routes here only when the mask excludes Before and After.
func sortedI2I[A temporal.Interval, C temporal.Interval](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j, cut      int
		aStart, aEnd   time.Time
		aLo, aHi       time.Time
		hiKey          time.Time
		cStart, cEnd   time.Time
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
		hiKey = aHi.Add(pol.CandidateTolerance.Before())

		cut = sort.Search(len(candidates), func(k int) bool {
			s, _ := candidates[k].Span()
			return s.After(hiKey)
		})

		for j = 0; j < cut; j++ {
			cStart, cEnd = candidates[j].Span()
			cLo, cHi = pol.CandidateTolerance.ExpandSpan(cStart, cEnd)
			if cHi.Before(aLo) {
				continue // After-classified pair; excluded by the mask precondition
			}
			typ, rel, hasRel, ok = evalPair(pol, aLo, aHi, cLo, cHi, false)
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
