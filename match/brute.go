// Package match - brute-force strategies.
//
// One kernel per matcher family, each O(n·m): for every anchor, scan
// every candidate, evaluate, emit. Correct for every policy and serves
// as the reference the optimized strategies are held equivalent to.
//
// Hot-path discipline: expansion, classification and emission only -
// no allocations, no virtual dispatch beyond the emitter.
package match

import (
	"time"

	"github.com/katalvlaran/chronomatch/allen"
	"github.com/katalvlaran/chronomatch/temporal"
)

// bruteP2P matches point anchors against point candidates.
func bruteP2P[A temporal.Point, C temporal.Point](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j                   int
		aLo, aHi, cLo, cHi     time.Time
		typ                    MatchType
		rel                    allen.Relation
		hasRel, ok             bool
		err                    error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aLo, aHi = pol.AnchorTolerance.ExpandPoint(anchors[i].At())
		for j = 0; j < len(candidates); j++ {
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

// bruteP2I matches point anchors against interval candidates.
func bruteP2I[A temporal.Point, C temporal.Interval](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j               int
		aLo, aHi, cLo, cHi time.Time
		cStart, cEnd       time.Time
		typ                MatchType
		rel                allen.Relation
		hasRel, ok         bool
		err                error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aLo, aHi = pol.AnchorTolerance.ExpandPoint(anchors[i].At())
		for j = 0; j < len(candidates); j++ {
			cStart, cEnd = candidates[j].Span()
			cLo, cHi = pol.CandidateTolerance.ExpandSpan(cStart, cEnd)
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

// bruteI2P matches interval anchors against point candidates.
func bruteI2P[A temporal.Interval, C temporal.Point](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j               int
		aStart, aEnd       time.Time
		aLo, aHi, cLo, cHi time.Time
		typ                MatchType
		rel                allen.Relation
		hasRel, ok         bool
		err                error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aStart, aEnd = anchors[i].Span()
		aLo, aHi = pol.AnchorTolerance.ExpandSpan(aStart, aEnd)
		for j = 0; j < len(candidates); j++ {
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

// bruteI2I matches interval anchors against interval candidates.
// The mask is respected exactly: Before/After classifications are
// matches whenever the mask contains them.
func bruteI2I[A temporal.Interval, C temporal.Interval](anchors []A, candidates []C, pol *Policy, em emitter[A, C]) error {
	var (
		i, j               int
		aStart, aEnd       time.Time
		cStart, cEnd       time.Time
		aLo, aHi, cLo, cHi time.Time
		typ                MatchType
		rel                allen.Relation
		hasRel, ok         bool
		err                error
	)
	for i = 0; i < len(anchors); i++ {
		em.begin()
		aStart, aEnd = anchors[i].Span()
		aLo, aHi = pol.AnchorTolerance.ExpandSpan(aStart, aEnd)
		for j = 0; j < len(candidates); j++ {
			cStart, cEnd = candidates[j].Span()
			cLo, cHi = pol.CandidateTolerance.ExpandSpan(cStart, cEnd)
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
