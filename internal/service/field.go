package service

import (
	"context"
	"strconv"
	"time"

	"github.com/teamselevated/backend/internal/model"
	modelcache "github.com/teamselevated/backend/internal/model/cache"
	"github.com/teamselevated/backend/internal/repo"
)

type Field struct {
	FieldRepo *repo.Field
}

func NewField(fieldRepo *repo.Field) *Field {
	return &Field{
		FieldRepo: fieldRepo,
	}
}

// Cache: fields#venueId:{venueId}, 1 hr
func (s *Field) GetFieldsByVenueId(ctx context.Context, venueId int) ([]*model.Field, error) {
	return modelcache.FieldsByVenueID.MutexGetSet(strconv.Itoa(venueId), func() ([]*model.Field, error) {
		return s.FieldRepo.GetFieldsByVenueId(ctx, venueId)
	}, time.Hour)
}

func (s *Field) GetFieldById(ctx context.Context, fieldId int) (*model.Field, error) {
	return s.FieldRepo.GetFieldById(ctx, fieldId)
}
