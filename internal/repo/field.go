package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/pkg/apperr"
)

type Field struct {
	DB *bun.DB
}

func NewField(db *bun.DB) *Field {
	return &Field{DB: db}
}

func (r *Field) GetFieldsByVenueId(ctx context.Context, venueId int) ([]*model.Field, error) {
	var fields []*model.Field
	err := r.DB.NewSelect().
		Model(&fields).
		Where("venue_id = ?", venueId).
		Order("field_id ASC").
		Scan(ctx)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return fields, nil
}

func (r *Field) GetFieldById(ctx context.Context, fieldId int) (*model.Field, error) {
	var field model.Field
	err := r.DB.NewSelect().
		Model(&field).
		Where("field_id = ?", fieldId).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &field, nil
}
