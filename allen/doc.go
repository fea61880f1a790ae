// Package allen implements Allen's interval algebra: the thirteen basic
// temporal relations, a total classifier over interval pairs, and a
// bitmask set type for relation filtering.
//
// 🚀 What is Allen's algebra?
//
//	Any two well-formed intervals stand in exactly one of 13 relations:
//
//	  Before   ├──┤  ├──┤        After        (disjoint, gap)
//	  Meets    ├──┼──┤           MetBy        (touching endpoints)
//	  Overlaps ├──╪══╪──┤        OverlappedBy (partial overlap)
//	  Starts   ╞══╪──┤           StartedBy    (shared start)
//	  Finishes    ├──╪══╡        FinishedBy   (shared end)
//	  During      ├╪══╪┤         Contains     (strict nesting)
//	  Equal    ╞══╡              Equal        (identical bounds)
//
//	The set is mutually exclusive and collectively exhaustive.
//
// ✨ Key pieces:
//
//   - Relation    — the closed 13-value enum, with Converse()
//   - Classify    — total function (aStart, aEnd, bStart, bEnd) → Relation
//   - RelationSet — a 13-bit mask combinable by union/intersection/difference
//
// Classification uses a fixed decision ladder with explicit tie-breaking:
// a zero-gap touch classifies as Meets/MetBy, never Before/After, and a
// degenerate operand touching a boundary classifies as Meets/MetBy rather
// than Starts/Finishes.
//
// ⚙️ Usage:
//
//	rel := allen.Classify(aStart, aEnd, bStart, bEnd)
//	if allen.NewRelationSet(allen.During, allen.Equal).Has(rel) { ... }
package allen
