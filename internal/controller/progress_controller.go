package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	RecordAttempt(ctx *fiber.Ctx) error
	EmployeeProgress(ctx *fiber.Ctx) error
	TopicProgress(ctx *fiber.Ctx) error
}

type progressController struct {
	progressService service.IProgressService
	auth            *serverutils.AuthMiddleware
}

func NewProgressController(progressService service.IProgressService, auth *serverutils.AuthMiddleware) IProgressController {
	return &progressController{
		progressService: progressService,
		auth:            auth,
	}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/training/v1/progress")
	h.Use(c.auth.Handle)
	h.Post("attempts", c.RecordAttempt)
	h.Get("employees/:id", c.EmployeeProgress)
	h.Get("employees/:id/topics/:topicId", c.TopicProgress)
}

func (c *progressController) RecordAttempt(ctx *fiber.Ctx) error {
	var req dto.RecordAttemptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.progressService.RecordAttempt(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Attempt recorded", res))
}

func (c *progressController) EmployeeProgress(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	employeeId, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid employee id")
	}

	res, err := c.progressService.EmployeeProgress(ctx.Context(), employeeId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show progress", res))
}

func (c *progressController) TopicProgress(ctx *fiber.Ctx) error {
	employeeId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid employee id")
	}
	topicId, err := uuid.Parse(ctx.Params("topicId"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid topic id")
	}

	res, err := c.progressService.TopicProgress(ctx.Context(), employeeId, topicId)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("No progress recorded for this topic")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show topic progress", res))
}
