package service

import (
	"github.com/teamselevated/backend/internal/constant"
	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/datespan"
	"github.com/teamselevated/backend/internal/pkg/observability"
)

// Overlaps reports whether the half-open time windows [s1,e1) and [s2,e2)
// truly overlap. Arguments are minutes since midnight. Windows that merely
// touch at a boundary (one ends exactly when the other begins) do not
// overlap: back-to-back bookings are not double-bookings.
func Overlaps(s1, e1, s2, e2 int) bool {
	// s1 falls inside [s2,e2)
	if s1 >= s2 && s1 < e2 {
		return true
	}
	// e1 falls inside (s2,e2]
	if e1 > s2 && e1 <= e2 {
		return true
	}
	// [s1,e1) fully contains [s2,e2]
	if s1 <= s2 && e1 >= e2 {
		return true
	}
	return false
}

// DetectConflict checks a candidate against the committed set, scoped to
// the candidate's (venue, field, date). The first matching committed
// occurrence wins; later matches are not reported. Pure: flags the
// candidate in place and touches nothing else.
func DetectConflict(candidate *types.Candidate, committed []*model.Occurrence) {
	candidate.HasConflict = false
	candidate.ConflictDetail = nil

	s1, err := datespan.ParseClock(candidate.StartTime)
	if err != nil {
		return
	}
	e1, err := datespan.ParseClock(candidate.EndTime)
	if err != nil {
		return
	}

	for _, occ := range committed {
		if occ.VenueID != candidate.VenueID ||
			occ.FieldID != candidate.FieldID ||
			occ.Date != candidate.Date {
			continue
		}

		s2, err := datespan.ParseClock(occ.StartTime)
		if err != nil {
			continue
		}
		e2, err := datespan.ParseClock(occ.EndTime)
		if err != nil {
			continue
		}

		if Overlaps(s1, e1, s2, e2) {
			candidate.HasConflict = true
			candidate.ConflictDetail = &types.ConflictDetail{
				TeamName:  occ.TeamName,
				Category:  constant.ConflictCategoryField,
				TimeRange: occ.TimeRangeString(),
			}
			observability.ConflictsFlagged.WithLabelValues(constant.ConflictCategoryField).Inc()
			return
		}
	}
}

// DetectBatchConflicts scans a generation batch pairwise and flags later
// candidates against earlier ones. The classic engine never did this, so
// a pattern could silently double-book itself; strict mode closes that
// gap. Candidates already flagged against committed data keep their
// original detail.
func DetectBatchConflicts(candidates []*types.Candidate) {
	for i, candidate := range candidates {
		if candidate.HasConflict {
			continue
		}

		s1, err := datespan.ParseClock(candidate.StartTime)
		if err != nil {
			continue
		}
		e1, err := datespan.ParseClock(candidate.EndTime)
		if err != nil {
			continue
		}

		for _, earlier := range candidates[:i] {
			if earlier.VenueID != candidate.VenueID ||
				earlier.FieldID != candidate.FieldID ||
				earlier.Date != candidate.Date {
				continue
			}

			s2, err := datespan.ParseClock(earlier.StartTime)
			if err != nil {
				continue
			}
			e2, err := datespan.ParseClock(earlier.EndTime)
			if err != nil {
				continue
			}

			if Overlaps(s1, e1, s2, e2) {
				candidate.HasConflict = true
				candidate.ConflictDetail = &types.ConflictDetail{
					TeamName:  earlier.TeamName,
					Category:  constant.ConflictCategoryBatch,
					TimeRange: earlier.StartTime + "–" + earlier.EndTime,
				}
				observability.ConflictsFlagged.WithLabelValues(constant.ConflictCategoryBatch).Inc()
				break
			}
		}
	}
}
