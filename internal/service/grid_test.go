package service

import (
	"context"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamselevated/backend/internal/constant"
	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/apperr"
)

func testFields() map[int][]*model.Field {
	return map[int][]*model.Field{
		1: {
			{FieldID: 2, Name: "North Field", VenueID: 1},
			{FieldID: 3, Name: "South Field", VenueID: 1},
		},
	}
}

func newTestGridder(store *memOccurrenceStore) *Gridder {
	return &Gridder{
		FieldGateway:      &memFieldStore{fields: testFields()},
		OccurrenceGateway: store,
		PublisherService:  &Publisher{OccurrenceGateway: store},
		sessions:          cache.New(time.Hour, time.Minute),
	}
}

func testGridRequest() *types.GridRequest {
	return &types.GridRequest{
		VenueID:   1,
		StartDate: "2025-03-04",
		EndDate:   "2025-03-05",
	}
}

func cellAt(t *testing.T, grid *types.Grid, date string, fieldId int, slot string) *types.AvailabilityCell {
	t.Helper()
	for di := range grid.Days {
		if grid.Days[di].Date != date {
			continue
		}
		for ci := range grid.Days[di].Cells {
			cell := &grid.Days[di].Cells[ci]
			if cell.FieldID == fieldId && cell.Slot == slot {
				return cell
			}
		}
	}
	t.Fatalf("no cell for %s field %d slot %s", date, fieldId, slot)
	return nil
}

func TestBuildGrid(t *testing.T) {
	store := newMemOccurrenceStore(
		// occupies the 17:00 slot on field 2
		testOccurrence("2025-03-04", "17:00", "18:00"),
	)
	gridder := newTestGridder(store)

	grid, err := gridder.BuildGrid(context.Background(), testGridRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, grid.VenueID)
	assert.Equal(t, constant.GridSlots, grid.Slots)
	require.Len(t, grid.Days, 2)
	assert.Equal(t, "Tuesday", grid.Days[0].Weekday)
	// 2 fields x 5 slots
	assert.Len(t, grid.Days[0].Cells, 10)

	booked := cellAt(t, grid, "2025-03-04", 2, "17:00")
	assert.Equal(t, types.CellBooked, booked.Status)
	assert.Equal(t, "U14 Falcons", booked.BookedBy)

	// the same slot on the other field, the neighbouring slots, and the
	// same slot next day all stay available
	assert.Equal(t, types.CellAvailable, cellAt(t, grid, "2025-03-04", 3, "17:00").Status)
	assert.Equal(t, types.CellAvailable, cellAt(t, grid, "2025-03-04", 2, "16:00").Status)
	assert.Equal(t, types.CellAvailable, cellAt(t, grid, "2025-03-04", 2, "18:00").Status)
	assert.Equal(t, types.CellAvailable, cellAt(t, grid, "2025-03-05", 2, "17:00").Status)
}

func TestBuildGridPartialSlotOverlap(t *testing.T) {
	store := newMemOccurrenceStore(
		// 17:30-18:30 straddles the 17:00 and 18:00 slots
		testOccurrence("2025-03-04", "17:30", "18:30"),
	)
	gridder := newTestGridder(store)

	grid, err := gridder.BuildGrid(context.Background(), testGridRequest())
	require.NoError(t, err)

	assert.Equal(t, types.CellBooked, cellAt(t, grid, "2025-03-04", 2, "17:00").Status)
	assert.Equal(t, types.CellBooked, cellAt(t, grid, "2025-03-04", 2, "18:00").Status)
	assert.Equal(t, types.CellAvailable, cellAt(t, grid, "2025-03-04", 2, "16:00").Status)
	assert.Equal(t, types.CellAvailable, cellAt(t, grid, "2025-03-04", 2, "19:00").Status)
}

func TestBuildGridInvalidWindow(t *testing.T) {
	gridder := newTestGridder(newMemOccurrenceStore())

	request := testGridRequest()
	request.EndDate = "2025-03-03"
	_, err := gridder.BuildGrid(context.Background(), request)
	assertErrCode(t, err, apperr.CodeInvalidPattern)
}

func testGridSessionRequest() *types.GridSessionRequest {
	return &types.GridSessionRequest{
		GridRequest: *testGridRequest(),
		TeamID:      10,
		TeamName:    "U12 Hawks",
	}
}

func TestGridToggle(t *testing.T) {
	store := newMemOccurrenceStore(
		testOccurrence("2025-03-04", "17:00", "18:00"),
	)
	gridder := newTestGridder(store)

	session, err := gridder.CreateSession(context.Background(), testGridSessionRequest())
	require.NoError(t, err)

	// select
	session, err = gridder.Toggle(session.SessionID, &types.CellToggleRequest{Date: "2025-03-04", FieldID: 3, Slot: "17:00"})
	require.NoError(t, err)
	assert.Len(t, session.Selected, 1)
	assert.Equal(t, types.CellSelected, cellAt(t, session.Grid, "2025-03-04", 3, "17:00").Status)

	// deselect
	session, err = gridder.Toggle(session.SessionID, &types.CellToggleRequest{Date: "2025-03-04", FieldID: 3, Slot: "17:00"})
	require.NoError(t, err)
	assert.Empty(t, session.Selected)
	assert.Equal(t, types.CellAvailable, cellAt(t, session.Grid, "2025-03-04", 3, "17:00").Status)

	// booked cells reject selection
	_, err = gridder.Toggle(session.SessionID, &types.CellToggleRequest{Date: "2025-03-04", FieldID: 2, Slot: "17:00"})
	assertErrCode(t, err, apperr.CodeSlotUnavailable)

	// unknown cells are distinguishable from booked ones
	_, err = gridder.Toggle(session.SessionID, &types.CellToggleRequest{Date: "2025-03-09", FieldID: 2, Slot: "17:00"})
	assertErrCode(t, err, apperr.CodeNotFound)
}

func TestGridPatternSelect(t *testing.T) {
	store := newMemOccurrenceStore(
		testOccurrence("2025-03-04", "17:00", "18:00"),
	)
	gridder := newTestGridder(store)

	request := testGridSessionRequest()
	// Tue 03-04 through Tue 03-11: two Tuesdays
	request.EndDate = "2025-03-11"
	session, err := gridder.CreateSession(context.Background(), request)
	require.NoError(t, err)

	// Tuesday = 2; field 2's 17:00 is booked on the first Tuesday, so
	// only the second one gets selected
	session, err = gridder.PatternSelect(session.SessionID, &types.PatternSelectRequest{Weekday: 2, Slot: "17:00", FieldID: 2})
	require.NoError(t, err)

	require.Len(t, session.Selected, 1)
	assert.Equal(t, types.CellSelected, cellAt(t, session.Grid, "2025-03-11", 2, "17:00").Status)
	assert.Equal(t, types.CellBooked, cellAt(t, session.Grid, "2025-03-04", 2, "17:00").Status)
}

func TestGridPublishSelection(t *testing.T) {
	store := newMemOccurrenceStore()
	gridder := newTestGridder(store)

	session, err := gridder.CreateSession(context.Background(), testGridSessionRequest())
	require.NoError(t, err)

	// publishing an empty selection is rejected
	_, err = gridder.PublishSelection(context.Background(), session.SessionID, false)
	assertErrCode(t, err, apperr.CodeNoSlotsSelected)

	session, err = gridder.Toggle(session.SessionID, &types.CellToggleRequest{Date: "2025-03-04", FieldID: 2, Slot: "17:00"})
	require.NoError(t, err)
	session, err = gridder.Toggle(session.SessionID, &types.CellToggleRequest{Date: "2025-03-05", FieldID: 3, Slot: "18:00"})
	require.NoError(t, err)

	report, err := gridder.PublishSelection(context.Background(), session.SessionID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Committed)

	committed, _ := store.ListOccurrences(context.Background(), types.OccurrenceFilter{})
	require.Len(t, committed, 2)

	hawk, ok := lo.Find(committed, func(occ *model.Occurrence) bool { return occ.Date == "2025-03-04" })
	require.True(t, ok)
	assert.Equal(t, "17:00", hawk.StartTime)
	assert.Equal(t, "18:00", hawk.EndTime)
	assert.Equal(t, 2, hawk.FieldID)
	assert.Equal(t, "U12 Hawks", hawk.TeamName)
	assert.Equal(t, "Tuesday", hawk.Weekday)

	// the session is gone once published
	_, err = gridder.GetSession(session.SessionID)
	assertErrCode(t, err, apperr.CodeSessionNotFound)
}
