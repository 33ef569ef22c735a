package controller

import (
	"fmt"
	"log"

	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service   service.IOAuthService
	clientURL string
}

func NewOAuthController(service service.IOAuthService, clientURL string) IOAuthController {
	return &oauthController{service: service, clientURL: clientURL}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1/oauth")
	h.Get("/:provider", c.Login)
	h.Get("/:provider/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")

	url, err := c.service.GetLoginURL(provider)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Redirect(url)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")
	code := ctx.Query("code")

	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing code"))
	}

	res, err := c.service.HandleCallback(ctx.Context(), provider, code)
	if err != nil {
		log.Printf("[OAuth] Callback failed: %v", err)
		return err
	}

	// Hand the token to the frontend via redirect.
	return ctx.Redirect(fmt.Sprintf("%s/app?token=%s", c.clientURL, res.Token), fiber.StatusTemporaryRedirect)
}
