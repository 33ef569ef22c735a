package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
}

type settingsController struct {
	settingsService service.ISettingsService
	auth            *serverutils.AuthMiddleware
}

func NewSettingsController(settingsService service.ISettingsService, auth *serverutils.AuthMiddleware) ISettingsController {
	return &settingsController{
		settingsService: settingsService,
		auth:            auth,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings/v1")
	h.Use(c.auth.Handle)
	h.Get("", c.Show)
	h.Get("recommendation-questions", c.ListRecommendationQuestions)

	manage := h.Group("", c.auth.RequireRole("manager", "admin"))
	manage.Put("", c.Upsert)
	manage.Post("recommendation-questions", c.CreateRecommendationQuestion)
	manage.Delete("recommendation-questions/:id", c.DeleteRecommendationQuestion)
}

func (c *settingsController) Show(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.settingsService.Show(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show settings", res))
}

func (c *settingsController) Upsert(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpsertSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.settingsService.Upsert(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save settings", res))
}

func (c *settingsController) CreateRecommendationQuestion(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateRecommendationQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.settingsService.CreateRecommendationQuestion(ctx.Context(), companyId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create question", res))
}

func (c *settingsController) DeleteRecommendationQuestion(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewBadRequest("Invalid question id")
	}

	if err := c.settingsService.DeleteRecommendationQuestion(ctx.Context(), companyId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Question deleted", nil))
}

func (c *settingsController) ListRecommendationQuestions(ctx *fiber.Ctx) error {
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	res, err := c.settingsService.ListRecommendationQuestions(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list questions", res))
}
