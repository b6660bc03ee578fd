package appentry

import (
	"time"

	"go.uber.org/fx"

	"github.com/teamselevated/backend/internal/app/appconfig"
	"github.com/teamselevated/backend/internal/app/appcontext"
	"github.com/teamselevated/backend/internal/controller"
	"github.com/teamselevated/backend/internal/infra"
	"github.com/teamselevated/backend/internal/model/cache"
	"github.com/teamselevated/backend/internal/pkg/logger"
	"github.com/teamselevated/backend/internal/repo"
	"github.com/teamselevated/backend/internal/server/httpserver"
	"github.com/teamselevated/backend/internal/server/svr"
	"github.com/teamselevated/backend/internal/service"
	"github.com/teamselevated/backend/internal/workers/calwkr"
)

func ProvideOptions(ctx appcontext.Ctx) []fx.Option {
	opts := []fx.Option{
		fx.Supply(ctx),
		fx.Provide(appconfig.Parse),
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateVersioningEndpoints),
		fx.WithLogger(logger.Fx),

		// Infrastructure: postgres, redis, redsync, nats
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Global singleton inits
		fx.Invoke(logger.Configure),
		fx.Invoke(infra.SentryInit),
		fx.Invoke(cache.Initialize),

		// Controllers
		controller.Module(),

		// Workers
		fx.Invoke(calwkr.Start),

		// fx Extra Options
		fx.StartTimeout(30 * time.Second),
	}

	return opts
}
