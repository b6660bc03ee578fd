package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/teamselevated/backend/internal/model"
	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/pkg/cache"
)

var (
	Venues *cache.Singular[[]*model.Venue]

	FieldsByVenueID *cache.Set[[]*model.Field]

	CalendarDaysByMonth *cache.Set[[]*types.CalendarDay]
)

func Initialize(client *redis.Client) {
	initializeCaches(client)
}

func initializeCaches(client *redis.Client) {
	// singular caches
	Venues = cache.NewSingular[[]*model.Venue]("venues")

	// redis caches
	FieldsByVenueID = cache.NewSet[[]*model.Field](client, "fields#venueId")
	CalendarDaysByMonth = cache.NewSet[[]*types.CalendarDay](client, "calendar#month")
}
