package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teamselevated/backend/internal/pkg/apperr"
	"github.com/teamselevated/backend/internal/server/svr"
	"github.com/teamselevated/backend/internal/service"
)

type Venue struct {
	VenueService *service.Venue
	FieldService *service.Field
}

func RegisterVenue(v1 *svr.V1, venueService *service.Venue, fieldService *service.Field) {
	c := &Venue{
		VenueService: venueService,
		FieldService: fieldService,
	}

	v1.Get("/venues", c.GetVenues)
	v1.Get("/venues/:venueId", c.GetVenueById)
	v1.Get("/venues/:venueId/fields", c.GetFieldsByVenueId)
}

// @Summary      Get All Venues
// @Tags         Venue
// @Produce      json
// @Success      200  {array}  model.Venue
// @Router       /api/v1/venues [GET]
func (c *Venue) GetVenues(ctx *fiber.Ctx) error {
	venues, err := c.VenueService.GetVenues(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(venues)
}

func (c *Venue) GetVenueById(ctx *fiber.Ctx) error {
	venueId, err := ctx.ParamsInt("venueId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid venueId %q", ctx.Params("venueId"))
	}

	venue, err := c.VenueService.GetVenueById(ctx.UserContext(), venueId)
	if err != nil {
		return err
	}
	return ctx.JSON(venue)
}

func (c *Venue) GetFieldsByVenueId(ctx *fiber.Ctx) error {
	venueId, err := ctx.ParamsInt("venueId")
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid venueId %q", ctx.Params("venueId"))
	}

	fields, err := c.FieldService.GetFieldsByVenueId(ctx.UserContext(), venueId)
	if err != nil {
		return err
	}
	return ctx.JSON(fields)
}
