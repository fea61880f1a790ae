// Package match defines the matching policy, result types, output sinks,
// and sentinel errors shared by every matching strategy.
//
// Design goals:
//   - Determinism: identical emission across strategies, orderings fixed.
//   - Zero surprises: one immutable Policy value covers every matcher.
//   - Hot-path discipline: no heap allocations in the matching loop.
//   - Strict sentinels: all failures are input-validation or capacity
//     errors; no transient errors, no retries.
package match

import (
	"errors"

	"github.com/katalvlaran/chronomatch/allen"
	"github.com/katalvlaran/chronomatch/temporal"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, capacity)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrInvalidInterval indicates an input interval with start > end.
	// Reported before any emission; wrapped errors carry the side and
	// index of each offender.
	ErrInvalidInterval = errors.New("match: interval start after end")

	// ErrUnsortedInput indicates the data violates the ordering declared
	// by Policy.Ordering. Reported before any emission.
	ErrUnsortedInput = errors.New("match: input violates declared ordering")

	// ErrBufferExhausted indicates a caller-supplied pair buffer filled
	// up; the returned count is the prefix written before overflow.
	ErrBufferExhausted = errors.New("match: output buffer exhausted")

	// ErrInvalidMatchPair indicates a pair whose relation presence does
	// not agree with its match type (relation iff MatchInterval).
	ErrInvalidMatchPair = errors.New("match: relation presence must agree with match type")

	// ErrNilSink indicates a nil sink argument.
	ErrNilSink = errors.New("match: sink must be non-nil")

	// ErrUnknownOrdering indicates an Ordering outside the enum.
	ErrUnknownOrdering = errors.New("match: unknown input ordering")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Policy
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Ordering declares which input sequences the caller guarantees to be
// sorted. Declared orderings are verified once up front; a violation
// fails with ErrUnsortedInput before any emission.
type Ordering int

const (
	// OrderingNone: no guarantees; the brute-force strategy is used.
	OrderingNone Ordering = iota

	// OrderingCandidatesSorted: candidates are non-decreasing by their
	// sort key (point At, interval Span start); enables binary-search
	// windowing.
	OrderingCandidatesSorted

	// OrderingBothSorted: both sequences are sorted; enables the
	// dual-pointer sweep.
	OrderingBothSorted
)

// orderingNames is indexed by Ordering.
var orderingNames = [...]string{"None", "CandidatesSorted", "BothSorted"}

// String returns the ordering name.
func (o Ordering) String() string {
	if o < 0 || int(o) >= len(orderingNames) {
		return "Ordering(?)"
	}

	return orderingNames[o]
}

// Policy is the immutable matching configuration.
// Zero value means exact tolerances, no accepted relations, no ordering;
// use DefaultPolicy and override fields as needed.
type Policy struct {
	// AnchorTolerance expands every anchor before classification.
	AnchorTolerance temporal.Tolerance

	// CandidateTolerance expands every candidate before classification.
	CandidateTolerance temporal.Tolerance

	// Allowed filters classified relations; only members are emitted.
	// RelNone matches nothing (every anchor is a miss).
	Allowed allen.RelationSet

	// Ordering declares input sortedness; see the Ordering constants.
	Ordering Ordering
}

// DefaultPolicy returns the permissive baseline:
// exact tolerances, all thirteen relations, no ordering guarantees.
func DefaultPolicy() Policy {
	return Policy{
		AnchorTolerance:    temporal.None,
		CandidateTolerance: temporal.None,
		Allowed:            allen.RelAny,
		Ordering:           OrderingNone,
	}
}

// Validate checks the policy for internal consistency.
// Tolerances are validated at construction (temporal.NewTolerance), so
// only the ordering can be out of range here.
func (p Policy) Validate() error {
	switch p.Ordering {
	case OrderingNone, OrderingCandidatesSorted, OrderingBothSorted:
		return nil
	default:
		return ErrUnknownOrdering
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// MatchType classifies a produced match.
type MatchType int

const (
	// MatchPointExact: both effective extents are degenerate and
	// coincide (typically point-to-point with exact tolerances).
	MatchPointExact MatchType = iota

	// MatchPointInInterval: exactly one effective extent is degenerate
	// and lies within the other (closed bounds); no relation carried.
	MatchPointInInterval

	// MatchInterval: every other accepted pair - at least one side is
	// non-degenerate after tolerance expansion, or (interval-to-interval
	// only) two distinct degenerate extents accepted as Before/After; the
	// Allen relation is carried.
	MatchInterval
)

// matchTypeNames is indexed by MatchType.
var matchTypeNames = [...]string{"PointExact", "PointInInterval", "Interval"}

// String returns the match type name.
func (m MatchType) String() string {
	if m < 0 || int(m) >= len(matchTypeNames) {
		return "MatchType(?)"
	}

	return matchTypeNames[m]
}

// Pair is one emitted (anchor, candidate) match.
//
// Invariants:
//
//	HasRelation == (Type == MatchInterval)
//
// The engine only constructs valid pairs; NewPair enforces the invariant
// for external construction.
type Pair[A, C any] struct {
	Anchor    A
	Candidate C
	Type      MatchType

	// Relation is meaningful only when HasRelation is true.
	Relation    allen.Relation
	HasRelation bool
}

// NewPair builds a Pair, rejecting relation/type disagreements with
// ErrInvalidMatchPair: a relation is carried iff typ is MatchInterval.
func NewPair[A, C any](anchor A, candidate C, typ MatchType, rel allen.Relation, hasRel bool) (Pair[A, C], error) {
	if hasRel != (typ == MatchInterval) {
		return Pair[A, C]{}, ErrInvalidMatchPair
	}
	if hasRel && !rel.Valid() {
		return Pair[A, C]{}, ErrInvalidMatchPair
	}

	return Pair[A, C]{Anchor: anchor, Candidate: candidate, Type: typ, Relation: rel, HasRelation: hasRel}, nil
}

// Group is the aggregated view of one anchor's matches.
//
// Matches is a borrowed view over an internal scratch buffer reused
// across anchors within a call: it is valid only until the GroupSink's
// OnMatch returns. Copy it for retention. Groups are never emitted
// empty; a zero-match anchor is reported through OnMiss instead.
type Group[A, C any] struct {
	Anchor  A
	Matches []C
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sinks
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// PairSink receives per-pair emissions.
//
// OnMatch is invoked once per matched pair in emission order (anchors in
// input order; per anchor, candidates in input order). OnMiss is invoked
// exactly once for each anchor that produced zero matches, in anchor
// input order. A non-nil error aborts the call; no further emission
// happens and the error is returned unchanged.
//
// Sinks must not mutate inputs and must return normally.
type PairSink[A, C any] interface {
	OnMatch(p Pair[A, C]) error
	OnMiss(anchor A) error
}

// GroupSink receives per-anchor aggregated emissions.
//
// OnMatch is invoked once per anchor with at least one match, carrying a
// borrowed candidate view in emission order. OnMiss mirrors PairSink.
// Error semantics are identical to PairSink.
type GroupSink[A, C any] interface {
	OnMatch(g Group[A, C]) error
	OnMiss(anchor A) error
}
