package service

import (
	"context"
	"sort"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/teamselevated/backend/internal/constant"
	"github.com/teamselevated/backend/internal/model"
	modelcache "github.com/teamselevated/backend/internal/model/cache"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/apperr"
	"github.com/teamselevated/backend/internal/pkg/datespan"
	"github.com/teamselevated/backend/internal/repo"
)

type Calendar struct {
	OccurrenceGateway OccurrenceGateway
	EventGateway      EventGateway
}

func NewCalendar(occurrenceRepo *repo.Occurrence, eventRepo *repo.Event) *Calendar {
	return &Calendar{
		OccurrenceGateway: occurrenceRepo,
		EventGateway:      eventRepo,
	}
}

// GetCalendarDays merges committed occurrences and events into per-day
// buckets over the inclusive window, each day sorted by start time and
// capped for display. Days without items are omitted.
func (s *Calendar) GetCalendarDays(ctx context.Context, request *types.CalendarRequest) ([]*types.CalendarDay, error) {
	if _, err := datespan.ParseDate(request.StartDate); err != nil {
		return nil, apperr.ErrInvalidReq
	}
	if _, err := datespan.ParseDate(request.EndDate); err != nil {
		return nil, apperr.ErrInvalidReq
	}

	occurrences, err := s.OccurrenceGateway.ListOccurrences(ctx, types.OccurrenceFilter{
		TeamID:    request.TeamID,
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
	})
	if err != nil {
		return nil, err
	}

	events, err := s.EventGateway.ListEvents(ctx, request.StartDate, request.EndDate, request.TeamID)
	if err != nil {
		return nil, err
	}

	return MergeCalendarDays(occurrences, events), nil
}

// GetCalendarDaysForMonth serves the month view through the shared redis
// cache; the calendar worker keeps current months warm. month is
// "2006-01".
func (s *Calendar) GetCalendarDaysForMonth(ctx context.Context, month string, teamId int) ([]*types.CalendarDay, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, apperr.ErrInvalidReq
	}
	end := start.AddDate(0, 1, -1)

	request := &types.CalendarRequest{
		StartDate: start.Format(datespan.DateLayout),
		EndDate:   end.Format(datespan.DateLayout),
		TeamID:    teamId,
	}

	// only the unfiltered month view is cached; team-scoped views are
	// cheap enough to compute per request
	if teamId != 0 {
		return s.GetCalendarDays(ctx, request)
	}

	days, err := modelcache.CalendarDaysByMonth.MutexGetSet(month, func() ([]*types.CalendarDay, error) {
		return s.GetCalendarDays(ctx, request)
	}, 10*time.Minute)
	if err != nil {
		log.Warn().Err(err).Str("month", month).Msg("calendar month cache unavailable, computing directly")
		return s.GetCalendarDays(ctx, request)
	}
	return days, nil
}

// MergeCalendarDays is the pure aggregation step, exposed for the worker.
func MergeCalendarDays(occurrences []*model.Occurrence, events []*model.Event) []*types.CalendarDay {
	items := make([]types.CalendarItem, 0, len(occurrences)+len(events))

	for _, occurrence := range occurrences {
		item := types.CalendarItem{
			Kind:  types.CalendarItemOccurrence,
			Title: occurrence.TeamName + " practice",
		}
		if err := copier.Copy(&item, occurrence); err != nil {
			log.Warn().Err(err).Msg("failed to map occurrence to calendar item")
			continue
		}
		items = append(items, item)
	}
	for _, event := range events {
		item := types.CalendarItem{
			Kind: types.CalendarItemEvent,
		}
		if err := copier.Copy(&item, event); err != nil {
			log.Warn().Err(err).Msg("failed to map event to calendar item")
			continue
		}
		items = append(items, item)
	}

	byDate := lo.GroupBy(items, func(item types.CalendarItem) string {
		return item.Date
	})

	days := make([]*types.CalendarDay, 0, len(byDate))
	for date, dayItems := range byDate {
		sort.SliceStable(dayItems, func(i, j int) bool {
			return dayItems[i].StartTime < dayItems[j].StartTime
		})

		overflow := 0
		if len(dayItems) > constant.CalendarDayCap {
			overflow = len(dayItems) - constant.CalendarDayCap
			dayItems = dayItems[:constant.CalendarDayCap]
		}

		days = append(days, &types.CalendarDay{
			Date:     date,
			Items:    dayItems,
			Overflow: overflow,
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days
}
