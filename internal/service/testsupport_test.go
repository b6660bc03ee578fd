package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
)

// memOccurrenceStore is an in-memory OccurrenceGateway with the same
// filter and visibility semantics as the postgres repo.
type memOccurrenceStore struct {
	occurrences []*model.Occurrence

	// failAfter makes AppendOccurrences fail once that many rows of the
	// batch have been written, imitating a non-transactional store.
	failAfter int
	failErr   error
}

func newMemOccurrenceStore(seed ...*model.Occurrence) *memOccurrenceStore {
	return &memOccurrenceStore{
		occurrences: seed,
		failAfter:   -1,
	}
}

func (s *memOccurrenceStore) ListOccurrences(_ context.Context, filter types.OccurrenceFilter) ([]*model.Occurrence, error) {
	var result []*model.Occurrence
	for _, occ := range s.occurrences {
		if filter.VenueID != 0 && occ.VenueID != filter.VenueID {
			continue
		}
		if filter.FieldID != 0 && occ.FieldID != filter.FieldID {
			continue
		}
		if filter.TeamID != 0 && occ.TeamID != filter.TeamID {
			continue
		}
		if filter.StartDate != "" && occ.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && occ.Date > filter.EndDate {
			continue
		}
		result = append(result, occ)
	}
	return result, nil
}

func (s *memOccurrenceStore) AppendOccurrences(_ context.Context, batch []*model.Occurrence) (int, error) {
	for i, occ := range batch {
		if s.failAfter >= 0 && i >= s.failAfter {
			err := s.failErr
			if err == nil {
				err = errors.New("store unavailable")
			}
			return i, err
		}
		s.occurrences = append(s.occurrences, occ)
	}
	return len(batch), nil
}

// memFieldStore is an in-memory FieldGateway.
type memFieldStore struct {
	fields map[int][]*model.Field
}

func (s *memFieldStore) GetFieldsByVenueId(_ context.Context, venueId int) ([]*model.Field, error) {
	return s.fields[venueId], nil
}

// memEventStore is an in-memory EventGateway.
type memEventStore struct {
	events []*model.Event
}

func (s *memEventStore) ListEvents(_ context.Context, startDate, endDate string, teamId int) ([]*model.Event, error) {
	var result []*model.Event
	for _, event := range s.events {
		if event.Date < startDate || event.Date > endDate {
			continue
		}
		if teamId != 0 && event.TeamID.ValueOrZero() != int64(teamId) {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}
