package service

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/apperr"
)

func testPattern() *types.SchedulePattern {
	return &types.SchedulePattern{
		TeamID:    10,
		TeamName:  "U12 Hawks",
		Days:      []string{"Tuesday", "Thursday"},
		StartTime: "17:00",
		EndTime:   "18:00",
		StartDate: "2025-03-04",
		EndDate:   "2025-03-13",
		VenueID:   1,
		FieldID:   2,
	}
}

func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, code, e.ErrorCode)
}

func TestExpandPattern(t *testing.T) {
	s := &Schedule{OccurrenceGateway: newMemOccurrenceStore()}

	candidates, err := s.ExpandPattern(testPattern())
	require.NoError(t, err)

	dates := lo.Map(candidates, func(c *types.Candidate, _ int) string { return c.Date })
	assert.Equal(t, []string{"2025-03-04", "2025-03-06", "2025-03-11", "2025-03-13"}, dates)

	for _, c := range candidates {
		assert.NotEmpty(t, c.CandidateID)
		assert.Equal(t, "17:00", c.StartTime)
		assert.Equal(t, "18:00", c.EndTime)
		assert.Equal(t, 1, c.VenueID)
		assert.Equal(t, 2, c.FieldID)
		assert.Equal(t, "U12 Hawks", c.TeamName)
		assert.Contains(t, []string{"Tuesday", "Thursday"}, c.Weekday)
		assert.False(t, c.HasConflict)
	}
}

func TestExpandPatternSingleDayRange(t *testing.T) {
	s := &Schedule{OccurrenceGateway: newMemOccurrenceStore()}

	// 2025-03-04 is a Tuesday; a matching single-day range yields one
	pattern := testPattern()
	pattern.Days = []string{"Tuesday"}
	pattern.EndDate = "2025-03-04"

	candidates, err := s.ExpandPattern(pattern)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "2025-03-04", candidates[0].Date)

	// a non-matching weekday over the same range yields none, not an error
	pattern.Days = []string{"Friday"}
	candidates, err = s.ExpandPattern(pattern)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestExpandPatternLeapYear(t *testing.T) {
	s := &Schedule{OccurrenceGateway: newMemOccurrenceStore()}

	// 2024-02-29 is a Thursday
	pattern := testPattern()
	pattern.Days = []string{"Thursday"}
	pattern.StartDate = "2024-02-26"
	pattern.EndDate = "2024-03-03"

	candidates, err := s.ExpandPattern(pattern)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "2024-02-29", candidates[0].Date)
}

func TestExpandPatternInvalid(t *testing.T) {
	s := &Schedule{OccurrenceGateway: newMemOccurrenceStore()}

	tests := []struct {
		name   string
		mutate func(p *types.SchedulePattern)
	}{
		{"empty day set", func(p *types.SchedulePattern) { p.Days = nil }},
		{"unknown weekday", func(p *types.SchedulePattern) { p.Days = []string{"Tueday"} }},
		{"end time equals start", func(p *types.SchedulePattern) { p.EndTime = p.StartTime }},
		{"end time before start", func(p *types.SchedulePattern) { p.EndTime = "16:00" }},
		{"malformed time", func(p *types.SchedulePattern) { p.StartTime = "5pm" }},
		{"end date before start", func(p *types.SchedulePattern) { p.EndDate = "2025-03-03" }},
		{"malformed date", func(p *types.SchedulePattern) { p.StartDate = "04/03/2025" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := testPattern()
			tt.mutate(pattern)
			_, err := s.ExpandPattern(pattern)
			assertErrCode(t, err, apperr.CodeInvalidPattern)
		})
	}
}

func TestGenerateOccurrencesFlagsCommittedConflicts(t *testing.T) {
	store := newMemOccurrenceStore(
		testOccurrence("2025-03-06", "17:30", "18:30"),
	)
	s := &Schedule{OccurrenceGateway: store}

	response, err := s.GenerateOccurrences(context.Background(), testPattern(), false)
	require.NoError(t, err)
	require.Len(t, response.Candidates, 4)
	assert.Equal(t, 1, response.ConflictCount)

	flagged, ok := lo.Find(response.Candidates, func(c *types.Candidate) bool { return c.HasConflict })
	require.True(t, ok)
	assert.Equal(t, "2025-03-06", flagged.Date)
	assert.Equal(t, "U14 Falcons", flagged.ConflictDetail.TeamName)
}

func TestGenerateOccurrencesOutOfScopeCommitted(t *testing.T) {
	// same time window but different field: never a conflict
	other := testOccurrence("2025-03-06", "17:00", "18:00")
	other.FieldID = 9
	s := &Schedule{OccurrenceGateway: newMemOccurrenceStore(other)}

	response, err := s.GenerateOccurrences(context.Background(), testPattern(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, response.ConflictCount)
}

func TestGenerateOccurrencesStrict(t *testing.T) {
	s := &Schedule{OccurrenceGateway: newMemOccurrenceStore()}

	// weekly pattern candidates never share a date, so strict mode adds
	// nothing here; it must also not flag anything spuriously
	response, err := s.GenerateOccurrences(context.Background(), testPattern(), true)
	require.NoError(t, err)
	assert.Equal(t, 0, response.ConflictCount)
}

func TestGenerateOccurrencesStrictServerDefault(t *testing.T) {
	s := &Schedule{OccurrenceGateway: newMemOccurrenceStore(), StrictDefault: true}

	response, err := s.GenerateOccurrences(context.Background(), testPattern(), false)
	require.NoError(t, err)
	assert.Empty(t, lo.Filter(response.Candidates, func(c *types.Candidate, _ int) bool {
		return c.HasConflict
	}))
}
