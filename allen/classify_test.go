package allen_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/chronomatch/allen"
	"github.com/stretchr/testify/assert"
)

// base anchors every interval in the tests; offsets are in seconds.
var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// sec maps a second offset to an instant.
func sec(n int) time.Time { return base.Add(time.Duration(n) * time.Second) }

// classify is a thin offset-based wrapper to keep the tables readable.
func classify(aStart, aEnd, bStart, bEnd int) allen.Relation {
	return allen.Classify(sec(aStart), sec(aEnd), sec(bStart), sec(bEnd))
}

// TestClassify_AllThirteenReachable drives one canonical witness per
// relation through the ladder.
func TestClassify_AllThirteenReachable(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd, bS, bEnd int
		want                   allen.Relation
	}{
		{"Before", 0, 10, 20, 30, allen.Before},
		{"Meets", 0, 10, 10, 30, allen.Meets},
		{"Overlaps", 0, 20, 10, 30, allen.Overlaps},
		{"FinishedBy", 0, 30, 10, 30, allen.FinishedBy},
		{"Contains", 0, 30, 10, 20, allen.Contains},
		{"StartedBy", 0, 30, 0, 10, allen.StartedBy},
		{"Equal", 0, 30, 0, 30, allen.Equal},
		{"Starts", 0, 10, 0, 30, allen.Starts},
		{"During", 10, 20, 0, 30, allen.During},
		{"Finishes", 10, 30, 0, 30, allen.Finishes},
		{"OverlappedBy", 10, 30, 0, 20, allen.OverlappedBy},
		{"MetBy", 10, 30, 0, 10, allen.MetBy},
		{"After", 20, 30, 0, 10, allen.After},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.aStart, tc.aEnd, tc.bS, tc.bEnd)
			assert.Equal(t, tc.want, got, "a=[%d,%d] b=[%d,%d]", tc.aStart, tc.aEnd, tc.bS, tc.bEnd)
		})
	}
}

// TestClassify_TieBreaking pins the ladder's explicit tie-breaks:
// boundary touches beat the gap rules, and a degenerate operand on a
// boundary classifies as Meets/MetBy.
func TestClassify_TieBreaking(t *testing.T) {
	// Zero-gap touch is Meets, never Before.
	assert.Equal(t, allen.Meets, classify(0, 10, 10, 20), "zero gap must be Meets")
	assert.Equal(t, allen.MetBy, classify(10, 20, 0, 10), "zero gap must be MetBy")

	// Degenerate a on b's start: Meets wins over Starts.
	assert.Equal(t, allen.Meets, classify(5, 5, 5, 10))

	// Degenerate a on b's end: MetBy wins over Finishes.
	assert.Equal(t, allen.MetBy, classify(10, 10, 5, 10))

	// Degenerate a strictly inside b.
	assert.Equal(t, allen.During, classify(7, 7, 5, 10))

	// Two coincident degenerate intervals are Equal, not Meets.
	assert.Equal(t, allen.Equal, classify(5, 5, 5, 5))

	// Two distinct degenerate intervals are disjoint.
	assert.Equal(t, allen.Before, classify(3, 3, 5, 5))
	assert.Equal(t, allen.After, classify(5, 5, 3, 3))
}

// TestClassify_TotalityAndConverse sweeps every well-formed pair over a
// small endpoint grid and checks that exactly one valid relation comes
// back and that Classify(a,b) and Classify(b,a) are converses.
func TestClassify_TotalityAndConverse(t *testing.T) {
	const gridMax = 4

	var aS, aE, bS, bE int
	for aS = 0; aS <= gridMax; aS++ {
		for aE = aS; aE <= gridMax; aE++ {
			for bS = 0; bS <= gridMax; bS++ {
				for bE = bS; bE <= gridMax; bE++ {
					fwd := classify(aS, aE, bS, bE)
					rev := classify(bS, bE, aS, aE)

					assert.True(t, fwd.Valid(), "a=[%d,%d] b=[%d,%d]", aS, aE, bS, bE)
					assert.True(t, rev.Valid(), "a=[%d,%d] b=[%d,%d] reversed", aS, aE, bS, bE)
					assert.Equal(t, fwd.Converse(), rev,
						"converse mismatch: a=[%d,%d] b=[%d,%d] fwd=%s rev=%s",
						aS, aE, bS, bE, fwd, rev)
				}
			}
		}
	}
}

// TestConverse_Involution checks the inverse table pairs and that
// applying Converse twice is the identity.
func TestConverse_Involution(t *testing.T) {
	pairs := map[allen.Relation]allen.Relation{
		allen.Before:   allen.After,
		allen.Meets:    allen.MetBy,
		allen.Overlaps: allen.OverlappedBy,
		allen.Starts:   allen.StartedBy,
		allen.During:   allen.Contains,
		allen.Finishes: allen.FinishedBy,
		allen.Equal:    allen.Equal,
	}
	for r, conv := range pairs {
		assert.Equal(t, conv, r.Converse(), "%s converse", r)
		assert.Equal(t, r, r.Converse().Converse(), "%s double converse", r)
	}
}

// TestClassify_SubSecondResolution confirms classification resolves
// millisecond-scale separations.
func TestClassify_SubSecondResolution(t *testing.T) {
	aEnd := base.Add(time.Millisecond)
	bStart := base.Add(2 * time.Millisecond)

	assert.Equal(t, allen.Before, allen.Classify(base, aEnd, bStart, bStart.Add(time.Millisecond)))
	assert.Equal(t, allen.Meets, allen.Classify(base, aEnd, aEnd, aEnd.Add(time.Millisecond)))
}
