package match_test

import (
	"time"

	"github.com/katalvlaran/chronomatch/allen"
	"github.com/katalvlaran/chronomatch/match"
	"github.com/katalvlaran/chronomatch/temporal"
)

// base is the reference instant for every scenario; offsets are seconds.
var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// sec maps a second offset to an instant.
func sec(n int) time.Time { return base.Add(time.Duration(n) * time.Second) }

// off maps an instant back to its second offset.
func off(t time.Time) int { return int(t.Sub(base) / time.Second) }

// pts builds a point sequence from second offsets.
func pts(offsets ...int) []temporal.Stamp {
	out := make([]temporal.Stamp, len(offsets))
	for i, n := range offsets {
		out[i] = temporal.Stamp(sec(n))
	}

	return out
}

// wins builds an interval sequence from [start, end] offset pairs.
func wins(bounds ...[2]int) []temporal.Window {
	out := make([]temporal.Window, len(bounds))
	for i, b := range bounds {
		out[i] = temporal.Window{Start: sec(b[0]), End: sec(b[1])}
	}

	return out
}

// tol builds a tolerance or panics; test fixtures only use legal values.
func tol(before, after int) temporal.Tolerance {
	t, err := temporal.NewTolerance(time.Duration(before)*time.Second, time.Duration(after)*time.Second)
	if err != nil {
		panic(err)
	}

	return t
}

// emitted is a comparable projection of one emission: anchor and
// candidate as second offsets (intervals use their start/end), plus the
// match shape. Projections keep go-cmp diffs readable and avoid
// comparing time.Time internals.
type emitted struct {
	Anchor    [2]int
	Candidate [2]int
	Type      match.MatchType
	Relation  allen.Relation
	HasRel    bool
}

// projectPoint and projectWindow map entities onto offset pairs.
func projectPoint(s temporal.Stamp) [2]int {
	n := off(s.At())

	return [2]int{n, n}
}

func projectWindow(w temporal.Window) [2]int { return [2]int{off(w.Start), off(w.End)} }

// pairRec records a PairSink's callbacks in order.
type pairRec[A, C any] struct {
	pairs  []match.Pair[A, C]
	misses []A
}

func (r *pairRec[A, C]) OnMatch(p match.Pair[A, C]) error {
	r.pairs = append(r.pairs, p)

	return nil
}

func (r *pairRec[A, C]) OnMiss(anchor A) error {
	r.misses = append(r.misses, anchor)

	return nil
}

// groupRec records a GroupSink's callbacks, copying each borrowed view
// before it is invalidated.
type groupRec[A, C any] struct {
	groups []match.Group[A, C]
	misses []A
}

func (r *groupRec[A, C]) OnMatch(g match.Group[A, C]) error {
	cp := make([]C, len(g.Matches))
	copy(cp, g.Matches)
	r.groups = append(r.groups, match.Group[A, C]{Anchor: g.Anchor, Matches: cp})

	return nil
}

func (r *groupRec[A, C]) OnMiss(anchor A) error {
	r.misses = append(r.misses, anchor)

	return nil
}

// faultSink fails OnMatch once the given number of matches was accepted.
type faultSink[A, C any] struct {
	rec   pairRec[A, C]
	limit int
	err   error
}

func (s *faultSink[A, C]) OnMatch(p match.Pair[A, C]) error {
	if len(s.rec.pairs) == s.limit {
		return s.err
	}

	return s.rec.OnMatch(p)
}

func (s *faultSink[A, C]) OnMiss(anchor A) error { return s.rec.OnMiss(anchor) }

// projectPairs flattens recorded point-to-point pairs for go-cmp.
func projectPairs(pairs []match.Pair[temporal.Stamp, temporal.Stamp]) []emitted {
	out := make([]emitted, len(pairs))
	for i, p := range pairs {
		out[i] = emitted{
			Anchor:    projectPoint(p.Anchor),
			Candidate: projectPoint(p.Candidate),
			Type:      p.Type,
			Relation:  p.Relation,
			HasRel:    p.HasRelation,
		}
	}

	return out
}

// offsetsOf flattens a recorded point sequence into second offsets.
func offsetsOf(stamps []temporal.Stamp) []int {
	out := make([]int, len(stamps))
	for i, s := range stamps {
		out[i] = off(s.At())
	}

	return out
}
