package controller

import (
	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	InviteEmployee(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	auth        *serverutils.AuthMiddleware
}

func NewAuthController(authService service.IAuthService, auth *serverutils.AuthMiddleware) IAuthController {
	return &authController{
		authService: authService,
		auth:        auth,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)

	protected := h.Group("", c.auth.Handle)
	protected.Get("me", c.Me)
	protected.Post("employees/invite", c.auth.RequireRole("manager", "admin"), c.InviteEmployee)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success register company", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.authService.Me(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *authController) InviteEmployee(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	companyId, err := serverutils.CompanyID(ctx)
	if err != nil {
		return err
	}

	var req dto.InviteEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.InviteEmployee(ctx.Context(), companyId, userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success invite employee", res))
}
