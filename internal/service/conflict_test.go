package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamselevated/backend/internal/constant"
	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
)

func minutes(h, m int) int {
	return h*60 + m
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"identical windows", minutes(17, 0), minutes(18, 0), minutes(17, 0), minutes(18, 0), true},
		{"partial overlap", minutes(17, 30), minutes(18, 30), minutes(17, 0), minutes(18, 0), true},
		{"candidate contains committed", minutes(16, 0), minutes(20, 0), minutes(17, 0), minutes(18, 0), true},
		{"committed contains candidate", minutes(17, 15), minutes(17, 45), minutes(17, 0), minutes(18, 0), true},
		{"end touches start", minutes(16, 0), minutes(17, 0), minutes(17, 0), minutes(18, 0), false},
		{"start touches end", minutes(18, 0), minutes(19, 0), minutes(17, 0), minutes(18, 0), false},
		{"disjoint before", minutes(9, 0), minutes(10, 0), minutes(17, 0), minutes(18, 0), false},
		{"disjoint after", minutes(20, 0), minutes(21, 0), minutes(17, 0), minutes(18, 0), false},
		{"one minute overlap", minutes(17, 59), minutes(19, 0), minutes(17, 0), minutes(18, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	pairs := [][4]int{
		{minutes(17, 30), minutes(18, 30), minutes(17, 0), minutes(18, 0)},
		{minutes(16, 0), minutes(17, 0), minutes(17, 0), minutes(18, 0)},
		{minutes(16, 0), minutes(20, 0), minutes(17, 0), minutes(18, 0)},
	}
	for _, p := range pairs {
		assert.Equal(t, Overlaps(p[0], p[1], p[2], p[3]), Overlaps(p[2], p[3], p[0], p[1]))
	}
}

func testCandidate(date, start, end string) *types.Candidate {
	return &types.Candidate{
		CandidateID: "cand-" + date + start,
		Date:        date,
		Weekday:     "Tuesday",
		StartTime:   start,
		EndTime:     end,
		VenueID:     1,
		FieldID:     2,
		TeamID:      10,
		TeamName:    "U12 Hawks",
	}
}

func testOccurrence(date, start, end string) *model.Occurrence {
	return &model.Occurrence{
		OccurrenceID: "occ-" + date + start,
		Date:         date,
		Weekday:      "Tuesday",
		StartTime:    start,
		EndTime:      end,
		VenueID:      1,
		FieldID:      2,
		TeamID:       20,
		TeamName:     "U14 Falcons",
	}
}

func TestDetectConflictFlagsOverlap(t *testing.T) {
	candidate := testCandidate("2025-03-04", "17:30", "18:30")
	committed := []*model.Occurrence{
		testOccurrence("2025-03-04", "17:00", "18:00"),
	}

	DetectConflict(candidate, committed)

	assert.True(t, candidate.HasConflict)
	assert.NotNil(t, candidate.ConflictDetail)
	assert.Equal(t, "U14 Falcons", candidate.ConflictDetail.TeamName)
	assert.Equal(t, constant.ConflictCategoryField, candidate.ConflictDetail.Category)
	assert.Equal(t, "17:00–18:00", candidate.ConflictDetail.TimeRange)
}

func TestDetectConflictBackToBackIsClean(t *testing.T) {
	committed := []*model.Occurrence{
		testOccurrence("2025-03-04", "17:00", "18:00"),
	}

	before := testCandidate("2025-03-04", "16:00", "17:00")
	DetectConflict(before, committed)
	assert.False(t, before.HasConflict)
	assert.Nil(t, before.ConflictDetail)

	after := testCandidate("2025-03-04", "18:00", "19:00")
	DetectConflict(after, committed)
	assert.False(t, after.HasConflict)
}

func TestDetectConflictScope(t *testing.T) {
	committed := []*model.Occurrence{
		testOccurrence("2025-03-04", "17:00", "18:00"),
	}

	otherDate := testCandidate("2025-03-05", "17:00", "18:00")
	DetectConflict(otherDate, committed)
	assert.False(t, otherDate.HasConflict)

	otherField := testCandidate("2025-03-04", "17:00", "18:00")
	otherField.FieldID = 99
	DetectConflict(otherField, committed)
	assert.False(t, otherField.HasConflict)

	otherVenue := testCandidate("2025-03-04", "17:00", "18:00")
	otherVenue.VenueID = 99
	DetectConflict(otherVenue, committed)
	assert.False(t, otherVenue.HasConflict)
}

func TestDetectConflictFirstMatchWins(t *testing.T) {
	first := testOccurrence("2025-03-04", "17:00", "18:00")
	second := testOccurrence("2025-03-04", "17:30", "18:30")
	second.TeamName = "U16 Eagles"

	candidate := testCandidate("2025-03-04", "17:00", "19:00")
	DetectConflict(candidate, []*model.Occurrence{first, second})

	assert.True(t, candidate.HasConflict)
	assert.Equal(t, "U14 Falcons", candidate.ConflictDetail.TeamName)
}

func TestDetectConflictClearsStaleFlag(t *testing.T) {
	candidate := testCandidate("2025-03-04", "17:00", "18:00")
	candidate.HasConflict = true
	candidate.ConflictDetail = &types.ConflictDetail{TeamName: "stale"}

	DetectConflict(candidate, nil)

	assert.False(t, candidate.HasConflict)
	assert.Nil(t, candidate.ConflictDetail)
}

func TestDetectBatchConflicts(t *testing.T) {
	a := testCandidate("2025-03-04", "17:00", "18:00")
	b := testCandidate("2025-03-04", "17:30", "18:30")
	c := testCandidate("2025-03-04", "18:00", "19:00")

	DetectBatchConflicts([]*types.Candidate{a, b, c})

	// the earlier candidate keeps priority; only later ones get flagged
	assert.False(t, a.HasConflict)
	assert.True(t, b.HasConflict)
	assert.Equal(t, constant.ConflictCategoryBatch, b.ConflictDetail.Category)
	// c touches a's end and b is already flagged, so c stays clean against
	// a; it does overlap b though
	assert.True(t, c.HasConflict)
}

func TestDetectBatchConflictsKeepsCommittedDetail(t *testing.T) {
	a := testCandidate("2025-03-04", "17:00", "18:00")
	b := testCandidate("2025-03-04", "17:00", "18:00")
	b.HasConflict = true
	b.ConflictDetail = &types.ConflictDetail{
		TeamName: "U14 Falcons",
		Category: constant.ConflictCategoryField,
	}

	DetectBatchConflicts([]*types.Candidate{a, b})

	// a committed-set conflict is not overwritten by a batch conflict
	assert.Equal(t, constant.ConflictCategoryField, b.ConflictDetail.Category)
	assert.False(t, a.HasConflict)
}

func TestDetectBatchConflictsDistinctScopes(t *testing.T) {
	a := testCandidate("2025-03-04", "17:00", "18:00")
	b := testCandidate("2025-03-04", "17:00", "18:00")
	b.FieldID = 3

	DetectBatchConflicts([]*types.Candidate{a, b})

	assert.False(t, a.HasConflict)
	assert.False(t, b.HasConflict)
}
