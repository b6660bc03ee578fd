package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/server/svr"
	"github.com/teamselevated/backend/internal/service"
	"github.com/teamselevated/backend/internal/util/rekuest"
)

type Calendar struct {
	CalendarService *service.Calendar
}

func RegisterCalendar(v1 *svr.V1, calendarService *service.Calendar) {
	c := &Calendar{
		CalendarService: calendarService,
	}

	v1.Get("/calendar", c.GetCalendarDays)
	v1.Get("/calendar/:month", c.GetCalendarMonth)
}

// @Summary      Get Calendar Days
// @Tags         Calendar
// @Produce      json
// @Param        startDate  query     string  true   "Inclusive start date (2006-01-02)"
// @Param        endDate    query     string  true   "Inclusive end date (2006-01-02)"
// @Param        teamId     query     int     false  "Restrict to one team"
// @Success      200        {array}   types.CalendarDay
// @Router       /api/v1/calendar [GET]
func (c *Calendar) GetCalendarDays(ctx *fiber.Ctx) error {
	var request types.CalendarRequest
	if err := rekuest.ValidQuery(ctx, &request); err != nil {
		return err
	}

	days, err := c.CalendarService.GetCalendarDays(ctx.UserContext(), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(days)
}

// @Summary      Get Calendar Month
// @Tags         Calendar
// @Produce      json
// @Param        month   path      string  true   "Month (2006-01)"
// @Param        teamId  query     int     false  "Restrict to one team"
// @Success      200     {array}   types.CalendarDay
// @Router       /api/v1/calendar/{month} [GET]
func (c *Calendar) GetCalendarMonth(ctx *fiber.Ctx) error {
	days, err := c.CalendarService.GetCalendarDaysForMonth(ctx.UserContext(), ctx.Params("month"), ctx.QueryInt("teamId"))
	if err != nil {
		return err
	}
	return ctx.JSON(days)
}
