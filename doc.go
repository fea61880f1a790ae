// Package chronomatch is a high-performance temporal correlation engine
// for event-driven and telemetry pipelines.
//
// 🚀 What is chronomatch?
//
//	A deterministic, allocation-disciplined matching kernel that, given an
//	anchor sequence and a candidate sequence of temporal entities, reports
//	for each anchor the candidates standing in a configured temporal
//	relationship to it:
//
//	  • Points & intervals: entities expose a single instant or a span
//	  • Tolerance windows: asymmetric (before, after) expansion per side
//	  • Allen's algebra: every pair classified into one of 13 relations
//	  • Three strategies: brute force, binary-search windows, dual-pointer
//	    sweep — all bit-identical in output
//
// ✨ Why choose chronomatch?
//
//   - Deterministic          — identical emission across all strategies
//   - Hot-path discipline    — no heap allocations in the matching loop
//   - Extensible             — polymorphic over your entity types via
//     two tiny capability interfaces
//   - Pure Go                — no cgo, synchronous, caller-shardable
//
// Everything is organized under three packages:
//
//	temporal/ — Point & Interval capabilities, Stamp/Window values, Tolerance
//	allen/    — the 13-relation enum, classifier and relation-set bitmask
//	match/    — policies, matching strategies, sinks and the public API
//
// Quick ASCII example:
//
//	    anchor    ├────────┤
//	    c1   ├───┤               Meets
//	    c2        ├──┤           Starts
//	    c3           ├───────┤   OverlappedBy
//
// Dive into the per-package example tests for full walkthroughs of pair,
// group and buffered matching.
//
//	go get github.com/katalvlaran/chronomatch
package chronomatch
