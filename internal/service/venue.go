package service

import (
	"context"
	"time"

	"github.com/teamselevated/backend/internal/model"
	modelcache "github.com/teamselevated/backend/internal/model/cache"
	"github.com/teamselevated/backend/internal/repo"
)

type Venue struct {
	VenueRepo *repo.Venue
}

func NewVenue(venueRepo *repo.Venue) *Venue {
	return &Venue{
		VenueRepo: venueRepo,
	}
}

// Cache: venues, 1 hr
func (s *Venue) GetVenues(ctx context.Context) ([]*model.Venue, error) {
	return modelcache.Venues.MutexGetSet(func() ([]*model.Venue, error) {
		return s.VenueRepo.GetVenues(ctx)
	}, time.Hour)
}

func (s *Venue) GetVenueById(ctx context.Context, venueId int) (*model.Venue, error) {
	return s.VenueRepo.GetVenueById(ctx, venueId)
}
