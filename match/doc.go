// Package match enumerates, for each anchor in one temporal sequence,
// the candidates of a second sequence standing in a configured temporal
// relationship to it.
//
// 🚀 How matching works
//
//	anchors + candidates + Policy + sink
//	    │
//	    ├─ validate: policy, interval well-formedness, declared ordering
//	    ├─ expand:   per-side tolerances widen points/intervals
//	    ├─ classify: Allen relation of each expanded pair
//	    ├─ filter:   Policy.Allowed relation mask
//	    └─ emit:     pairs, groups, or a caller-owned buffer
//
// Four families cover every input-kind combination: PointToPoint,
// PointToInterval, IntervalToPoint, IntervalToInterval - each with a
// Groups and an Into variant.
//
// ✨ Guarantees:
//
//   - Determinism — brute force, binary-search windows, and dual-pointer
//     sweep produce the identical emission and miss sequences; the
//     strategy router is a pure optimization driven by Policy.Ordering.
//   - Ordering — anchors in input order; per anchor, candidates in
//     candidate input order; groups preserve intra-anchor order.
//   - Miss completeness — every zero-match anchor is reported through
//     OnMiss exactly once (sink surfaces only; buffers skip misses).
//   - Hot-path discipline — pair and buffer paths allocate nothing in
//     the matching loop; the group path reuses one scratch buffer per
//     call, bounded by the candidate count.
//
// Matching semantics: families with an intrinsically point-typed side
// never match disjoint pairs (a point either falls within the opposite
// extent or it does not); interval-to-interval respects the relation
// mask exactly, Before/After included. Match shapes follow tolerance
// expansion: PointExact for coincident degenerate extents,
// PointInInterval for a degenerate extent inside a non-degenerate one,
// Interval (with the Allen relation) otherwise.
//
// ⚙️ Usage:
//
//	pol := match.DefaultPolicy()
//	pol.AnchorTolerance, _ = temporal.Symmetric(5 * time.Second)
//
//	err := match.PointToPoint(events, probes, pol, sink)
//
// Calls are synchronous, single-threaded, and share no state; shard
// across goroutines by splitting anchors between independent calls.
package match
