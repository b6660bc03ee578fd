package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/server/svr"
	"github.com/teamselevated/backend/internal/service"
	"github.com/teamselevated/backend/internal/util/rekuest"
)

type Grid struct {
	GridderService *service.Gridder
}

func RegisterGrid(v1 *svr.V1, gridderService *service.Gridder) {
	c := &Grid{
		GridderService: gridderService,
	}

	v1.Get("/grid", c.GetGrid)

	v1.Post("/grid/sessions", c.CreateSession)
	v1.Get("/grid/sessions/:sessionId", c.GetSession)
	v1.Post("/grid/sessions/:sessionId/toggle", c.Toggle)
	v1.Post("/grid/sessions/:sessionId/pattern", c.PatternSelect)
	v1.Post("/grid/sessions/:sessionId/publish", c.PublishSelection)
}

// @Summary      Get Availability Grid
// @Tags         Grid
// @Produce      json
// @Param        venueId    query     int     true  "Venue ID"
// @Param        startDate  query     string  true  "Inclusive start date (2006-01-02)"
// @Param        endDate    query     string  true  "Inclusive end date (2006-01-02)"
// @Success      200        {object}  types.Grid
// @Router       /api/v1/grid [GET]
func (c *Grid) GetGrid(ctx *fiber.Ctx) error {
	var request types.GridRequest
	if err := rekuest.ValidQuery(ctx, &request); err != nil {
		return err
	}

	grid, err := c.GridderService.BuildGrid(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(grid)
}

func (c *Grid) CreateSession(ctx *fiber.Ctx) error {
	var request types.GridSessionRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	session, err := c.GridderService.CreateSession(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Grid) GetSession(ctx *fiber.Ctx) error {
	session, err := c.GridderService.GetSession(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Grid) Toggle(ctx *fiber.Ctx) error {
	var request types.CellToggleRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	session, err := c.GridderService.Toggle(ctx.Params("sessionId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Grid) PatternSelect(ctx *fiber.Ctx) error {
	var request types.PatternSelectRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	session, err := c.GridderService.PatternSelect(ctx.Params("sessionId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Grid) PublishSelection(ctx *fiber.Ctx) error {
	var request types.SessionPublishRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	report, err := c.GridderService.PublishSelection(ctx.UserContext(), ctx.Params("sessionId"), request.ConfirmConflicts)
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}
