package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teamselevated/backend/internal/model/types"
	"github.com/teamselevated/backend/internal/server/svr"
	"github.com/teamselevated/backend/internal/service"
	"github.com/teamselevated/backend/internal/util/rekuest"
)

type Schedule struct {
	ScheduleService  *service.Schedule
	PublisherService *service.Publisher
	ReviewService    *service.Review
}

func RegisterSchedule(v1 *svr.V1, scheduleService *service.Schedule, publisherService *service.Publisher, reviewService *service.Review) {
	c := &Schedule{
		ScheduleService:  scheduleService,
		PublisherService: publisherService,
		ReviewService:    reviewService,
	}

	v1.Post("/schedules/generate", c.Generate)
	v1.Post("/schedules/publish", c.Publish)

	v1.Post("/schedules/sessions", c.CreateSession)
	v1.Get("/schedules/sessions/:sessionId", c.GetSession)
	v1.Post("/schedules/sessions/:sessionId/pattern", c.SubmitPattern)
	v1.Post("/schedules/sessions/:sessionId/candidates/:candidateId/toggle", c.ToggleCandidate)
	v1.Put("/schedules/sessions/:sessionId/candidates/:candidateId/notes", c.AnnotateCandidate)
	v1.Post("/schedules/sessions/:sessionId/edit", c.EditPattern)
	v1.Post("/schedules/sessions/:sessionId/publish", c.PublishSession)
}

// @Summary      Generate Occurrence Candidates
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        request  body      types.GenerateRequest  true  "Recurrence pattern"
// @Success      200      {object}  types.GenerateResponse
// @Failure      400      {object}  apperr.Error "Invalid pattern"
// @Router       /api/v1/schedules/generate [POST]
func (c *Schedule) Generate(ctx *fiber.Ctx) error {
	var request types.GenerateRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	response, err := c.ScheduleService.GenerateOccurrences(ctx.UserContext(), &request.Pattern, request.Strict)
	if err != nil {
		return err
	}
	return ctx.JSON(response)
}

// @Summary      Publish Candidates
// @Tags         Schedule
// @Accept       json
// @Produce      json
// @Param        request  body      types.PublishRequest  true  "Candidates with review decisions applied"
// @Success      200      {object}  types.CommitReport
// @Failure      409      {object}  apperr.Error "Unconfirmed conflicts"
// @Failure      502      {object}  apperr.Error "Store write failed"
// @Router       /api/v1/schedules/publish [POST]
func (c *Schedule) Publish(ctx *fiber.Ctx) error {
	var request types.PublishRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	report, err := c.PublisherService.PublishCandidates(ctx.UserContext(), request.Candidates, request.ConfirmConflicts, "pattern")
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}

// @Summary      Create Review Session
// @Tags         Schedule
// @Produce      json
// @Success      200  {object}  service.ReviewSession
// @Router       /api/v1/schedules/sessions [POST]
func (c *Schedule) CreateSession(ctx *fiber.Ctx) error {
	return ctx.JSON(c.ReviewService.CreateSession())
}

func (c *Schedule) GetSession(ctx *fiber.Ctx) error {
	session, err := c.ReviewService.GetSession(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Schedule) SubmitPattern(ctx *fiber.Ctx) error {
	var request types.GenerateRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	session, err := c.ReviewService.SubmitPattern(ctx.UserContext(), ctx.Params("sessionId"), &request)
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Schedule) ToggleCandidate(ctx *fiber.Ctx) error {
	session, err := c.ReviewService.ToggleCandidate(ctx.Params("sessionId"), ctx.Params("candidateId"))
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Schedule) AnnotateCandidate(ctx *fiber.Ctx) error {
	var request types.AnnotateRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	session, err := c.ReviewService.AnnotateCandidate(ctx.Params("sessionId"), ctx.Params("candidateId"), request.Notes)
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Schedule) EditPattern(ctx *fiber.Ctx) error {
	session, err := c.ReviewService.EditPattern(ctx.Params("sessionId"))
	if err != nil {
		return err
	}
	return ctx.JSON(session)
}

func (c *Schedule) PublishSession(ctx *fiber.Ctx) error {
	var request types.SessionPublishRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	report, err := c.ReviewService.Publish(ctx.UserContext(), ctx.Params("sessionId"), request.ConfirmConflicts)
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}
