package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/pkg/apperr"
)

type Venue struct {
	DB *bun.DB
}

func NewVenue(db *bun.DB) *Venue {
	return &Venue{DB: db}
}

func (r *Venue) GetVenues(ctx context.Context) ([]*model.Venue, error) {
	var venues []*model.Venue
	err := r.DB.NewSelect().
		Model(&venues).
		Order("venue_id ASC").
		Scan(ctx)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return venues, nil
}

func (r *Venue) GetVenueById(ctx context.Context, venueId int) (*model.Venue, error) {
	var venue model.Venue
	err := r.DB.NewSelect().
		Model(&venue).
		Where("venue_id = ?", venueId).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &venue, nil
}
