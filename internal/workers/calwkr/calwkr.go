package calwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/teamselevated/backend/internal/app/appconfig"
	"github.com/teamselevated/backend/internal/pkg/observability"
	"github.com/teamselevated/backend/internal/service"
)

type WorkerDeps struct {
	fx.In
	VenueService    *service.Venue
	FieldService    *service.Field
	CalendarService *service.Calendar
}

// Worker keeps the venue list, per-venue field lists and the current
// month's calendar view warm, so the first admin request after a cold
// start or cache expiry does not pay the full aggregation cost.
type Worker struct {
	// count counts batches worker has completed so far
	count int

	// interval describes the interval in-between different batches of job running
	interval time.Duration

	// deps
	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("worker is disabled, skipping")
		return
	}

	(&Worker{
		interval:   conf.WorkerInterval,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			log.Info().
				Int("count", w.count).
				Msg("worker batch started")

			w.warmVenuesAndFields(ctx)
			w.warmCalendar(ctx)

			log.Info().Int("count", w.count).Msg("worker batch finished")

			w.count++

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()

	return cancel
}

func (w *Worker) warmVenuesAndFields(ctx context.Context) {
	start := time.Now()
	defer func() {
		observability.WorkerCalcDuration.WithLabelValues("venues").Set(time.Since(start).Seconds())
	}()

	venues, err := w.VenueService.GetVenues(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("worker failed to warm venues")
		return
	}

	for _, venue := range venues {
		if _, err := w.FieldService.GetFieldsByVenueId(ctx, venue.VenueID); err != nil {
			log.Warn().Err(err).Int("venueId", venue.VenueID).Msg("worker failed to warm fields")
		}
	}
}

func (w *Worker) warmCalendar(ctx context.Context) {
	start := time.Now()
	defer func() {
		observability.WorkerCalcDuration.WithLabelValues("calendar").Set(time.Since(start).Seconds())
	}()

	// current and next month cover the views admins actually open
	now := time.Now().UTC()
	for _, month := range []string{
		now.Format("2006-01"),
		now.AddDate(0, 1, 0).Format("2006-01"),
	} {
		if _, err := w.CalendarService.GetCalendarDaysForMonth(ctx, month, 0); err != nil {
			log.Warn().Err(err).Str("month", month).Msg("worker failed to warm calendar month")
		}
	}
}

func (w *Worker) Count() int {
	return w.count
}
