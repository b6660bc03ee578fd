package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/xid"
	"github.com/samber/lo"
	"github.com/teambition/rrule-go"

	"github.com/teamselevated/backend/internal/app/appconfig"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/apperr"
	"github.com/teamselevated/backend/internal/pkg/datespan"
	"github.com/teamselevated/backend/internal/pkg/observability"
	"github.com/teamselevated/backend/internal/repo"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

type Schedule struct {
	OccurrenceGateway OccurrenceGateway

	// StrictDefault is the server-wide default for batch-pairwise
	// conflict checking; a request's strict flag can only opt in, never
	// opt out of a strict server.
	StrictDefault bool
}

func NewSchedule(conf *appconfig.Config, occurrenceRepo *repo.Occurrence) *Schedule {
	return &Schedule{
		OccurrenceGateway: occurrenceRepo,
		StrictDefault:     conf.StrictBatchConflicts,
	}
}

// ExpandPattern turns a recurrence pattern into its dated candidates, one
// per date in the inclusive range whose weekday is in the pattern's day
// set, ascending. An in-range set with no matching weekday expands to an
// empty list, which is not an error. Leap years and month lengths fall
// out of the date arithmetic; nothing is special-cased.
func (s *Schedule) ExpandPattern(pattern *types.SchedulePattern) ([]*types.Candidate, error) {
	start, end, err := s.validatePattern(pattern)
	if err != nil {
		return nil, err
	}

	byweekday := make([]rrule.Weekday, 0, len(pattern.Days))
	for _, label := range pattern.Days {
		wd, ok := datespan.WeekdayIndex(label)
		if !ok {
			return nil, apperr.ErrInvalidPattern.Msg("unknown weekday %q", label)
		}
		byweekday = append(byweekday, rruleWeekdays[wd])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   start,
		Until:     end,
		Byweekday: byweekday,
	})
	if err != nil {
		return nil, apperr.ErrInvalidPattern.Msg("invalid recurrence: %s", err)
	}

	candidates := lo.Map(rule.Between(start, end, true), func(date time.Time, _ int) *types.Candidate {
		return &types.Candidate{
			CandidateID: xid.New().String(),

			Date:      date.Format(datespan.DateLayout),
			Weekday:   datespan.WeekdayLabel(date),
			StartTime: pattern.StartTime,
			EndTime:   pattern.EndTime,
			VenueID:   pattern.VenueID,
			FieldID:   pattern.FieldID,
			TeamID:    pattern.TeamID,
			TeamName:  pattern.TeamName,
		}
	})

	return candidates, nil
}

// GenerateOccurrences expands the pattern and checks every candidate
// against the committed set for the pattern's field and window. With
// strict enabled, candidates are additionally checked against each other.
func (s *Schedule) GenerateOccurrences(ctx context.Context, pattern *types.SchedulePattern, strict bool) (*types.GenerateResponse, error) {
	candidates, err := s.ExpandPattern(pattern)
	if err != nil {
		return nil, err
	}

	committed, err := s.OccurrenceGateway.ListOccurrences(ctx, types.OccurrenceFilter{
		VenueID:   pattern.VenueID,
		FieldID:   pattern.FieldID,
		StartDate: pattern.StartDate,
		EndDate:   pattern.EndDate,
	})
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		DetectConflict(candidate, committed)
	}

	strict = strict || s.StrictDefault
	if strict {
		DetectBatchConflicts(candidates)
	}

	observability.CandidatesGenerated.
		WithLabelValues(strconv.FormatBool(strict)).
		Add(float64(len(candidates)))

	return &types.GenerateResponse{
		Candidates:    candidates,
		ConflictCount: countConflicts(candidates),
	}, nil
}

// validatePattern rejects malformed patterns before any generation work.
func (s *Schedule) validatePattern(pattern *types.SchedulePattern) (start, end time.Time, err error) {
	if len(pattern.Days) == 0 {
		return start, end, apperr.ErrInvalidPattern.Msg("day set must not be empty")
	}

	startMinutes, err := datespan.ParseClock(pattern.StartTime)
	if err != nil {
		return start, end, apperr.ErrInvalidPattern.Msg("%s", err)
	}
	endMinutes, err := datespan.ParseClock(pattern.EndTime)
	if err != nil {
		return start, end, apperr.ErrInvalidPattern.Msg("%s", err)
	}
	if endMinutes <= startMinutes {
		return start, end, apperr.ErrInvalidPattern.Msg("end time %s must be after start time %s", pattern.EndTime, pattern.StartTime)
	}

	start, err = datespan.ParseDate(pattern.StartDate)
	if err != nil {
		return start, end, apperr.ErrInvalidPattern.Msg("%s", err)
	}
	end, err = datespan.ParseDate(pattern.EndDate)
	if err != nil {
		return start, end, apperr.ErrInvalidPattern.Msg("%s", err)
	}
	if end.Before(start) {
		return start, end, apperr.ErrInvalidPattern.Msg("end date %s must not precede start date %s", pattern.EndDate, pattern.StartDate)
	}

	return start, end, nil
}

func countConflicts(candidates []*types.Candidate) int {
	return lo.CountBy(candidates, func(c *types.Candidate) bool {
		return c.HasConflict
	})
}
