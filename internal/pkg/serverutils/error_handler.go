package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps service errors to the response envelope. Registered as
// fiber's app-level ErrorHandler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Retryable {
			return ctx.Status(appErr.Status).JSON(RetryableErrorResponse(appErr.Status, appErr.Message))
		}
		return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Status, appErr.Message))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}
