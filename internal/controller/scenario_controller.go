package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IScenarioController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Assign(ctx *fiber.Ctx) error
	MyAssignments(ctx *fiber.Ctx) error
}

type scenarioController struct {
	scenarioService service.IScenarioService
	auth            *serverutils.AuthMiddleware
}

func NewScenarioController(scenarioService service.IScenarioService, auth *serverutils.AuthMiddleware) IScenarioController {
	return &scenarioController{
		scenarioService: scenarioService,
		auth:            auth,
	}
}

func (c *scenarioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/training/v1/scenarios")
	h.Use(c.auth.Handle)
	h.Get("", c.List)
	h.Get("assignments", c.MyAssignments)
	h.Get(":id", c.Show)

	manage := h.Group("", c.auth.RequireRole("manager", "admin"))
	manage.Post("", c.Create)
	manage.Put(":id", c.Update)
	manage.Delete(":id", c.Delete)
	manage.Post(":id/assign", c.Assign)
}

func (c *scenarioController) Create(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateScenarioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scenarioService.Create(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create scenario", res))
}

func (c *scenarioController) Show(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid scenario id")
	}

	res, err := c.scenarioService.Show(ctx.Context(), companyId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("Scenario not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show scenario", res))
}

func (c *scenarioController) List(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.scenarioService.List(ctx.Context(), companyId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list scenarios", res))
}

func (c *scenarioController) Update(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid scenario id")
	}

	var req dto.UpdateScenarioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scenarioService.Update(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFound("Scenario not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update scenario", res))
}

func (c *scenarioController) Delete(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid scenario id")
	}

	if err := c.scenarioService.Delete(ctx.Context(), companyId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Scenario deleted", nil))
}

func (c *scenarioController) Assign(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	scenarioId, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid scenario id")
	}

	var req dto.AssignScenarioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.scenarioService.Assign(ctx.Context(), companyId, userId, scenarioId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success assign scenario", res))
}

func (c *scenarioController) MyAssignments(ctx *fiber.Ctx) error {
	var employeeId uuid.UUID

	if employeeParam := ctx.Query("employee_id"); employeeParam != "" {
		id, err := uuid.Parse(employeeParam)
		if err != nil {
			return serverutils.NewBadRequest("Invalid employee_id")
		}
		employeeId = id
	} else {
		id, err := serverutils.UserID(ctx)
		if err != nil {
			return err
		}
		employeeId = id
	}

	res, err := c.scenarioService.ListAssignments(ctx.Context(), employeeId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list assignments", res))
}
