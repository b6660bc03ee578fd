package service

import (
	"context"

	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
)

// OccurrenceGateway is the store the engine reads committed occurrences
// from and appends publish batches to. The engine assumes nothing about
// its transport or persistence, only that appended occurrences become
// visible to subsequent ListOccurrences calls before the next conflict
// check. Satisfied by repo.Occurrence; tests inject in-memory fakes.
type OccurrenceGateway interface {
	ListOccurrences(ctx context.Context, filter types.OccurrenceFilter) ([]*model.Occurrence, error)
	AppendOccurrences(ctx context.Context, batch []*model.Occurrence) (int, error)
}

// EventGateway reads the independently stored event records merged by the
// calendar aggregator.
type EventGateway interface {
	ListEvents(ctx context.Context, startDate, endDate string, teamId int) ([]*model.Event, error)
}

// FieldGateway reads the fields of a venue.
type FieldGateway interface {
	GetFieldsByVenueId(ctx context.Context, venueId int) ([]*model.Field, error)
}
