package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	PostCall(ctx *fiber.Ctx) error
}

type webhookController struct {
	webhookService service.IWebhookService
}

func NewWebhookController(webhookService service.IWebhookService) IWebhookController {
	return &webhookController{
		webhookService: webhookService,
	}
}

// The voice provider calls these endpoints directly, no bearer auth.
func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhooks/v1")
	h.Post("convai", c.PostCall)
}

func (c *webhookController) PostCall(ctx *fiber.Ctx) error {
	var req dto.ConvaiWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Invalid webhook payload")
	}

	if err := c.webhookService.HandlePostCall(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Webhook processed", nil))
}
