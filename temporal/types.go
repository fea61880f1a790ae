// Package temporal defines the entity capabilities and concrete value
// types shared by every matcher, plus the sentinel errors raised when
// constructing them.
package temporal

import (
	"errors"
	"time"
)

// Sentinel errors for primitive construction.
var (
	// ErrInvalidTolerance indicates a negative Before or After component.
	ErrInvalidTolerance = errors.New("temporal: tolerance components must be non-negative")

	// ErrInvalidWindow indicates a window whose End precedes its Start.
	ErrInvalidWindow = errors.New("temporal: window end precedes start")
)

// Point is the capability contract for entities occupying a single instant.
//
// Implementer requirements:
//   - At is pure and total: no side effects, defined for every receiver.
//   - Repeated calls on the same entity return the same instant.
//
// No other methods are required; matchers refer to point entities only
// through this capability.
type Point interface {
	At() time.Time
}

// Interval is the capability contract for entities spanning two instants.
//
// Implementer requirements mirror Point: Span is pure, total, and returns
// the same pair on repeated calls for the same entity.
//
// Well-formedness (start <= end) is validated by the matchers at entry.
// A degenerate interval with start == end is legal and is classified
// exactly like a point at that instant.
type Interval interface {
	Span() (start, end time.Time)
}

// Stamp adapts a bare time.Time to the Point capability.
type Stamp time.Time

// At returns the wrapped instant.
func (s Stamp) At() time.Time { return time.Time(s) }

// Window is a concrete Interval with inclusive bounds.
// Zero value is the degenerate window at the zero instant.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a Window, rejecting End < Start with ErrInvalidWindow.
func NewWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, ErrInvalidWindow
	}

	return Window{Start: start, End: end}, nil
}

// Span returns the window bounds.
func (w Window) Span() (start, end time.Time) { return w.Start, w.End }

// Valid reports whether the window satisfies Start <= End.
func (w Window) Valid() bool { return !w.End.Before(w.Start) }
