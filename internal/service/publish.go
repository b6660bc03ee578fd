package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/teamselevated/backend/internal/constant"
	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/apperr"
	"github.com/teamselevated/backend/internal/pkg/observability"
	"github.com/teamselevated/backend/internal/repo"
)

// Publisher commits accepted candidates to the store. Conflict-check and
// append are serialized per (venue, field, date) via redsync, so two
// concurrent publishers re-checking against the live committed set cannot
// both see "no conflict" from stale snapshots and double-book a field.
type Publisher struct {
	OccurrenceGateway OccurrenceGateway
	RedSync           *redsync.Redsync
	NATS              *nats.Conn
}

func NewPublisher(occurrenceRepo *repo.Occurrence, rs *redsync.Redsync, nc *nats.Conn) *Publisher {
	return &Publisher{
		OccurrenceGateway: occurrenceRepo,
		RedSync:           rs,
		NATS:              nc,
	}
}

// PublishCandidates filters the batch to non-skipped candidates and
// appends them as committed occurrences. Flagged conflicts require
// confirm; the committed set is re-validated under the per-key locks, so
// conflicts introduced since generation are caught here too. Skipped and
// unconfirmed candidates are discarded, never retried.
func (s *Publisher) PublishCandidates(ctx context.Context, candidates []*types.Candidate, confirm bool, source string) (*types.CommitReport, error) {
	accepted := lo.Filter(candidates, func(c *types.Candidate, _ int) bool {
		return !c.Skip
	})
	if len(accepted) == 0 {
		return nil, apperr.ErrNoOccurrencesSelected
	}

	if err := s.requireConfirmed(accepted, confirm); err != nil {
		return nil, err
	}

	unlock, err := s.lockScopes(ctx, accepted)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Re-validate against the authoritative committed set now that the
	// scope keys are held; the generation-time snapshot may be stale.
	if err := s.revalidate(ctx, accepted); err != nil {
		return nil, err
	}
	if err := s.requireConfirmed(accepted, confirm); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	batch := lo.Map(accepted, func(c *types.Candidate, _ int) *model.Occurrence {
		return &model.Occurrence{
			OccurrenceID: xid.New().String(),
			Date:         c.Date,
			Weekday:      c.Weekday,
			StartTime:    c.StartTime,
			EndTime:      c.EndTime,
			VenueID:      c.VenueID,
			FieldID:      c.FieldID,
			TeamID:       c.TeamID,
			TeamName:     c.TeamName,
			Notes:        c.Notes,
			CreatedAt:    now,
		}
	})

	committed, err := s.OccurrenceGateway.AppendOccurrences(ctx, batch)
	report := &types.CommitReport{
		Requested: len(batch),
		Committed: committed,
		Failed:    len(batch) - committed,
	}
	if err != nil {
		report.FirstError = err.Error()
		log.Error().Err(err).
			Int("requested", report.Requested).
			Int("committed", report.Committed).
			Msg("store append failed during publish")
		return report, apperr.ErrStoreWriteFailed.WithExtras(apperr.Extras{
			"report": report,
		})
	}

	observability.PublishBatchSize.WithLabelValues(source).Observe(float64(committed))
	s.announce(batch, source)

	return report, nil
}

func (s *Publisher) requireConfirmed(accepted []*types.Candidate, confirm bool) error {
	conflicts := countConflicts(accepted)
	if conflicts > 0 && !confirm {
		return apperr.ErrConflictsUnconfirmed.WithExtras(apperr.Extras{
			"conflictCount": conflicts,
		})
	}
	return nil
}

// lockScopes takes the redsync mutex of every distinct (venue, field,
// date) key in the batch, in sorted order so concurrent publishers with
// overlapping scopes cannot deadlock. Without redsync configured (unit
// tests against in-memory gateways) locking is skipped.
func (s *Publisher) lockScopes(ctx context.Context, accepted []*types.Candidate) (func(), error) {
	if s.RedSync == nil {
		return func() {}, nil
	}

	keys := lo.Uniq(lo.Map(accepted, func(c *types.Candidate, _ int) string {
		return fmt.Sprintf("%d:%d:%s", c.VenueID, c.FieldID, c.Date)
	}))
	sort.Strings(keys)

	locked := make([]*redsync.Mutex, 0, len(keys))
	unlock := func() {
		for _, mutex := range locked {
			if _, err := mutex.Unlock(); err != nil {
				log.Warn().Err(err).Str("mutex", mutex.Name()).Msg("failed to unlock publish scope")
			}
		}
	}

	for _, key := range keys {
		mutex := s.RedSync.NewMutex(constant.ScheduleLockPrefix+key, redsync.WithExpiry(constant.ScheduleLockExpiry))
		if err := mutex.LockContext(ctx); err != nil {
			unlock()
			return nil, err
		}
		locked = append(locked, mutex)
	}

	return unlock, nil
}

func (s *Publisher) revalidate(ctx context.Context, accepted []*types.Candidate) error {
	groups := lo.GroupBy(accepted, func(c *types.Candidate) string {
		return fmt.Sprintf("%d:%d", c.VenueID, c.FieldID)
	})

	for _, group := range groups {
		dates := lo.Map(group, func(c *types.Candidate, _ int) string { return c.Date })
		sort.Strings(dates)

		committed, err := s.OccurrenceGateway.ListOccurrences(ctx, types.OccurrenceFilter{
			VenueID:   group[0].VenueID,
			FieldID:   group[0].FieldID,
			StartDate: dates[0],
			EndDate:   dates[len(dates)-1],
		})
		if err != nil {
			return err
		}

		for _, candidate := range group {
			DetectConflict(candidate, committed)
		}
	}
	return nil
}

// announce publishes the committed batch for downstream consumers, e.g.
// the notification sender. Best effort: a failed announce never fails the
// publish.
func (s *Publisher) announce(batch []*model.Occurrence, source string) {
	if s.NATS == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"source":      source,
		"count":       len(batch),
		"occurrences": batch,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal committed batch announcement")
		return
	}

	if err := s.NATS.Publish(constant.ScheduleCommittedSubject, payload); err != nil {
		log.Warn().Err(err).Str("subject", constant.ScheduleCommittedSubject).Msg("failed to announce committed batch")
	}
}
