package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"

	"github.com/teamselevated/backend/internal/pkg/bininfo"
	"github.com/teamselevated/backend/internal/server/svr"
	"github.com/teamselevated/backend/internal/service"
)

type Meta struct {
	HealthService *service.Health
}

func RegisterMeta(admin *svr.Admin, healthService *service.Health) {
	c := &Meta{
		HealthService: healthService,
	}

	admin.Get("/bininfo", c.BinInfo)

	admin.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
