package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService    service.ISessionService
	assessmentService service.IAssessmentService
	auth              *serverutils.AuthMiddleware
}

func NewSessionController(
	sessionService service.ISessionService,
	assessmentService service.IAssessmentService,
	auth *serverutils.AuthMiddleware,
) ISessionController {
	return &sessionController{
		sessionService:    sessionService,
		assessmentService: assessmentService,
		auth:              auth,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/training/v1/sessions")
	h.Use(c.auth.Handle)
	h.Post("", c.Start)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Save)
	h.Delete(":id", c.Delete)
	h.Post(":id/analyze", c.Analyze)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}

	if res.Created {
		return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session started", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Session already exists", res))
}

func (c *sessionController) Save(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid session id")
	}

	var req dto.SaveSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Save(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session saved", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid session id")
	}

	res, err := c.sessionService.Show(ctx.Context(), companyId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("Session not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var employeeId *uuid.UUID
	if employeeParam := ctx.Query("employee_id"); employeeParam != "" {
		id, err := uuid.Parse(employeeParam)
		if err != nil {
			return serverutils.NewBadRequest("Invalid employee_id")
		}
		employeeId = &id
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.sessionService.List(ctx.Context(), companyId, employeeId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid session id")
	}

	if err := c.sessionService.Delete(ctx.Context(), companyId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}

func (c *sessionController) Analyze(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid session id")
	}

	force := ctx.QueryBool("force", false)

	res, err := c.assessmentService.Analyze(ctx.Context(), companyId, id, force)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session analyzed", res))
}
