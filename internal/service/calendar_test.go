package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
)

func testEvent(date, start, end, title string) *model.Event {
	return &model.Event{
		Title:     title,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestMergeCalendarDays(t *testing.T) {
	occurrences := []*model.Occurrence{
		testOccurrence("2025-03-04", "17:00", "18:00"),
		testOccurrence("2025-03-06", "17:00", "18:00"),
	}
	events := []*model.Event{
		testEvent("2025-03-04", "10:00", "12:00", "Board meeting"),
	}

	days := MergeCalendarDays(occurrences, events)
	require.Len(t, days, 2)

	// days come back ascending
	assert.Equal(t, "2025-03-04", days[0].Date)
	assert.Equal(t, "2025-03-06", days[1].Date)

	// within a day, items sort by start time: the morning event first
	require.Len(t, days[0].Items, 2)
	assert.Equal(t, types.CalendarItemEvent, days[0].Items[0].Kind)
	assert.Equal(t, "Board meeting", days[0].Items[0].Title)
	assert.Equal(t, types.CalendarItemOccurrence, days[0].Items[1].Kind)
	assert.Equal(t, "U14 Falcons practice", days[0].Items[1].Title)
	assert.Equal(t, "U14 Falcons", days[0].Items[1].TeamName)

	assert.Equal(t, 0, days[0].Overflow)
}

func TestMergeCalendarDaysOverflow(t *testing.T) {
	occurrences := []*model.Occurrence{
		testOccurrence("2025-03-04", "15:00", "16:00"),
		testOccurrence("2025-03-04", "16:00", "17:00"),
		testOccurrence("2025-03-04", "17:00", "18:00"),
		testOccurrence("2025-03-04", "18:00", "19:00"),
		testOccurrence("2025-03-04", "19:00", "20:00"),
	}

	days := MergeCalendarDays(occurrences, nil)
	require.Len(t, days, 1)

	// capped at three items; the earliest three survive
	require.Len(t, days[0].Items, 3)
	assert.Equal(t, 2, days[0].Overflow)
	assert.Equal(t, "15:00", days[0].Items[0].StartTime)
	assert.Equal(t, "17:00", days[0].Items[2].StartTime)
}

func TestMergeCalendarDaysEmpty(t *testing.T) {
	assert.Empty(t, MergeCalendarDays(nil, nil))
}

func TestGetCalendarDays(t *testing.T) {
	calendar := &Calendar{
		OccurrenceGateway: newMemOccurrenceStore(
			testOccurrence("2025-03-04", "17:00", "18:00"),
			testOccurrence("2025-04-01", "17:00", "18:00"),
		),
		EventGateway: &memEventStore{events: []*model.Event{
			testEvent("2025-03-05", "10:00", "12:00", "Board meeting"),
			testEvent("2025-05-01", "10:00", "12:00", "Season kickoff"),
		}},
	}

	days, err := calendar.GetCalendarDays(context.Background(), &types.CalendarRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	require.NoError(t, err)

	// only march items make it into the window
	require.Len(t, days, 2)
	assert.Equal(t, "2025-03-04", days[0].Date)
	assert.Equal(t, "2025-03-05", days[1].Date)
}

func TestGetCalendarDaysTeamFilter(t *testing.T) {
	hawks := testOccurrence("2025-03-04", "15:00", "16:00")
	hawks.TeamID = 10
	hawks.TeamName = "U12 Hawks"

	hawksEvent := testEvent("2025-03-05", "10:00", "12:00", "Hawks team photo")
	hawksEvent.TeamID = null.IntFrom(10)

	calendar := &Calendar{
		OccurrenceGateway: newMemOccurrenceStore(
			hawks,
			testOccurrence("2025-03-04", "17:00", "18:00"),
		),
		EventGateway: &memEventStore{events: []*model.Event{
			hawksEvent,
			testEvent("2025-03-06", "10:00", "12:00", "Board meeting"),
		}},
	}

	days, err := calendar.GetCalendarDays(context.Background(), &types.CalendarRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
		TeamID:    10,
	})
	require.NoError(t, err)

	require.Len(t, days, 2)
	assert.Equal(t, "U12 Hawks", days[0].Items[0].TeamName)
	assert.Equal(t, "Hawks team photo", days[1].Items[0].Title)
}

func TestGetCalendarDaysInvalidWindow(t *testing.T) {
	calendar := &Calendar{
		OccurrenceGateway: newMemOccurrenceStore(),
		EventGateway:      &memEventStore{},
	}

	_, err := calendar.GetCalendarDays(context.Background(), &types.CalendarRequest{
		StartDate: "not-a-date",
		EndDate:   "2025-03-31",
	})
	assert.Error(t, err)
}
