package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/teamselevated/backend/internal/model"
)

type Event struct {
	DB *bun.DB
}

func NewEvent(db *bun.DB) *Event {
	return &Event{DB: db}
}

func (r *Event) ListEvents(ctx context.Context, startDate, endDate string, teamId int) ([]*model.Event, error) {
	var events []*model.Event
	q := r.DB.NewSelect().
		Model(&events).
		Where("date >= ?", startDate).
		Where("date <= ?", endDate)

	if teamId != 0 {
		q = q.Where("team_id = ?", teamId)
	}

	err := q.
		Order("date ASC").
		Order("start_time ASC").
		Scan(ctx)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return events, nil
}
