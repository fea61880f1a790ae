// Package temporal provides the primitive vocabulary of chronomatch:
// capability contracts for temporal entities and tolerance windows.
//
// 🚀 What lives here?
//
//   - Point    — the capability of occupying a single instant (At)
//   - Interval — the capability of spanning two instants (Span)
//   - Stamp    — a ready-made Point wrapping time.Time
//   - Window   — a ready-made Interval with inclusive bounds
//   - Tolerance — an asymmetric (before, after) expansion window
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chronomatch/temporal"
//
//	tol, err := temporal.Symmetric(5 * time.Second)
//	lo, hi := tol.ExpandPoint(ts) // [ts-5s, ts+5s]
//
// Entities are consumed read-only by the matchers; both accessors must be
// pure, total, and stable across repeated calls on the same entity.
//
// All instants are time.Time values compared with Equal/Before/After, so
// matching never depends on wall clocks, monotonic readings, or locale.
package temporal
