package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"github.com/teamselevated/backend/internal/app/appconfig"
	"github.com/teamselevated/backend/internal/constant"
	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/apperr"
	"github.com/teamselevated/backend/internal/pkg/datespan"
	"github.com/teamselevated/backend/internal/repo"
)

// GridSession tracks one admin's cell selection on top of a built grid.
// Selections live only in the session; publishing converts them to
// occurrences through the same path the pattern workflow uses.
type GridSession struct {
	SessionID string      `json:"sessionId"`
	Grid      *types.Grid `json:"grid"`
	TeamID    int         `json:"teamId"`
	TeamName  string      `json:"teamName"`

	// Selected is keyed by types.CellKey.
	Selected  map[string]*types.AvailabilityCell `json:"selected"`
	CreatedAt time.Time                          `json:"createdAt"`
}

type Gridder struct {
	FieldGateway      FieldGateway
	OccurrenceGateway OccurrenceGateway
	PublisherService  *Publisher

	sessions *cache.Cache
}

func NewGridder(conf *appconfig.Config, fieldService *Field, occurrenceRepo *repo.Occurrence, publisherService *Publisher) *Gridder {
	return &Gridder{
		FieldGateway:      fieldService,
		OccurrenceGateway: occurrenceRepo,
		PublisherService:  publisherService,
		sessions:          cache.New(conf.ReviewSessionTTL, conf.ReviewSessionTTL/4),
	}
}

// BuildAvailabilityGrid marks each (date, field, slot) cell booked when
// any committed occurrence on that field and date overlaps the slot's
// hour, using the same overlap rule the conflict detector applies.
func BuildAvailabilityGrid(venueId int, fields []*model.Field, days []time.Time, slots []string, committed []*model.Occurrence) *types.Grid {
	slotLength := int(constant.GridSlotLength / time.Minute)

	byDateField := lo.GroupBy(committed, func(occurrence *model.Occurrence) string {
		return types.CellKey(occurrence.Date, occurrence.FieldID, "")
	})

	grid := &types.Grid{
		VenueID: venueId,
		Slots:   slots,
		Days:    make([]types.GridDay, 0, len(days)),
	}

	for _, day := range days {
		date := day.Format(datespan.DateLayout)
		gridDay := types.GridDay{
			Date:    date,
			Weekday: datespan.WeekdayLabel(day),
			Cells:   make([]types.AvailabilityCell, 0, len(fields)*len(slots)),
		}

		for _, field := range fields {
			occupied := byDateField[types.CellKey(date, field.FieldID, "")]

			for _, slot := range slots {
				slotStart, err := datespan.ParseClock(slot)
				if err != nil {
					continue
				}
				slotEnd := slotStart + slotLength

				cell := types.AvailabilityCell{
					Date:    date,
					FieldID: field.FieldID,
					Slot:    slot,
					Status:  types.CellAvailable,
				}
				for _, occurrence := range occupied {
					start, end, err := occurrenceMinutes(occurrence)
					if err != nil {
						continue
					}
					if Overlaps(slotStart, slotEnd, start, end) {
						cell.Status = types.CellBooked
						cell.BookedBy = occurrence.TeamName
						break
					}
				}
				gridDay.Cells = append(gridDay.Cells, cell)
			}
		}

		grid.Days = append(grid.Days, gridDay)
	}

	return grid
}

// BuildGrid assembles the availability grid for a venue and inclusive
// date window from the venue's fields and its committed occurrences.
func (s *Gridder) BuildGrid(ctx context.Context, request *types.GridRequest) (*types.Grid, error) {
	start, err := datespan.ParseDate(request.StartDate)
	if err != nil {
		return nil, apperr.ErrInvalidPattern.Msg("invalid start date %q", request.StartDate)
	}
	end, err := datespan.ParseDate(request.EndDate)
	if err != nil {
		return nil, apperr.ErrInvalidPattern.Msg("invalid end date %q", request.EndDate)
	}
	if end.Before(start) {
		return nil, apperr.ErrInvalidPattern.Msg("end date precedes start date")
	}

	fields, err := s.FieldGateway.GetFieldsByVenueId(ctx, request.VenueID)
	if err != nil {
		return nil, err
	}

	committed, err := s.OccurrenceGateway.ListOccurrences(ctx, types.OccurrenceFilter{
		VenueID:   request.VenueID,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
	})
	if err != nil {
		return nil, err
	}

	return BuildAvailabilityGrid(request.VenueID, fields, datespan.Days(start, end), constant.GridSlots, committed), nil
}

func (s *Gridder) CreateSession(ctx context.Context, request *types.GridSessionRequest) (*GridSession, error) {
	grid, err := s.BuildGrid(ctx, &request.GridRequest)
	if err != nil {
		return nil, err
	}

	session := &GridSession{
		SessionID: xid.New().String(),
		Grid:      grid,
		TeamID:    request.TeamID,
		TeamName:  request.TeamName,
		Selected:  map[string]*types.AvailabilityCell{},
		CreatedAt: time.Now().UTC(),
	}
	s.sessions.SetDefault(session.SessionID, session)
	return session, nil
}

func (s *Gridder) GetSession(sessionId string) (*GridSession, error) {
	stored, ok := s.sessions.Get(sessionId)
	if !ok {
		return nil, apperr.ErrSessionNotFound
	}
	return stored.(*GridSession), nil
}

// Toggle selects an available cell or deselects a selected one. Booked
// cells are never selectable.
func (s *Gridder) Toggle(sessionId string, request *types.CellToggleRequest) (*GridSession, error) {
	session, err := s.GetSession(sessionId)
	if err != nil {
		return nil, err
	}

	cell := session.cell(request.Date, request.FieldID, request.Slot)
	if cell == nil {
		return nil, apperr.ErrNotFound
	}

	switch cell.Status {
	case types.CellBooked:
		return nil, apperr.ErrSlotUnavailable
	case types.CellSelected:
		cell.Status = types.CellAvailable
		delete(session.Selected, cell.Key())
	default:
		cell.Status = types.CellSelected
		session.Selected[cell.Key()] = cell
	}

	s.sessions.SetDefault(session.SessionID, session)
	return session, nil
}

// PatternSelect selects every available cell matching the weekday, slot
// and field across the session's window. Booked cells are skipped, not
// rejected: bulk selection over a partly occupied week is the expected
// use.
func (s *Gridder) PatternSelect(sessionId string, request *types.PatternSelectRequest) (*GridSession, error) {
	session, err := s.GetSession(sessionId)
	if err != nil {
		return nil, err
	}

	for di := range session.Grid.Days {
		day := &session.Grid.Days[di]
		date, err := datespan.ParseDate(day.Date)
		if err != nil || int(date.Weekday()) != request.Weekday {
			continue
		}
		for ci := range day.Cells {
			cell := &day.Cells[ci]
			if cell.FieldID != request.FieldID || cell.Slot != request.Slot {
				continue
			}
			if cell.Status == types.CellAvailable {
				cell.Status = types.CellSelected
				session.Selected[cell.Key()] = cell
			}
		}
	}

	s.sessions.SetDefault(session.SessionID, session)
	return session, nil
}

// PublishSelection converts the selected cells into slot-length
// candidates and commits them. Cells marked available at selection time
// are still re-validated inside the publisher.
func (s *Gridder) PublishSelection(ctx context.Context, sessionId string, confirm bool) (*types.CommitReport, error) {
	session, err := s.GetSession(sessionId)
	if err != nil {
		return nil, err
	}
	if len(session.Selected) == 0 {
		return nil, apperr.ErrNoSlotsSelected
	}

	slotLength := int(constant.GridSlotLength / time.Minute)
	candidates := make([]*types.Candidate, 0, len(session.Selected))
	for _, cell := range session.Selected {
		start, err := datespan.ParseClock(cell.Slot)
		if err != nil {
			continue
		}
		date, err := datespan.ParseDate(cell.Date)
		if err != nil {
			continue
		}
		candidates = append(candidates, &types.Candidate{
			CandidateID: xid.New().String(),
			Date:        cell.Date,
			Weekday:     datespan.WeekdayLabel(date),
			StartTime:   cell.Slot,
			EndTime:     datespan.FormatClock(start + slotLength),
			VenueID:     session.Grid.VenueID,
			FieldID:     cell.FieldID,
			TeamID:      session.TeamID,
			TeamName:    session.TeamName,
		})
	}

	report, err := s.PublisherService.PublishCandidates(ctx, candidates, confirm, "grid")
	if err != nil {
		return report, err
	}

	s.sessions.Delete(session.SessionID)
	return report, nil
}

func (session *GridSession) cell(date string, fieldId int, slot string) *types.AvailabilityCell {
	for di := range session.Grid.Days {
		day := &session.Grid.Days[di]
		if day.Date != date {
			continue
		}
		for ci := range day.Cells {
			cell := &day.Cells[ci]
			if cell.FieldID == fieldId && cell.Slot == slot {
				return cell
			}
		}
	}
	return nil
}

func occurrenceMinutes(occurrence *model.Occurrence) (int, int, error) {
	start, err := datespan.ParseClock(occurrence.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := datespan.ParseClock(occurrence.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
