package serverutils

import "github.com/gofiber/fiber/v2"

// AppError carries an HTTP status through the service layer so the error
// handler can map it without string matching.
type AppError struct {
	Status    int
	Message   string
	Retryable bool
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Message: message}
}

func NewInternal(message string) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: message}
}

// NewRetryable marks a dependency failure the client may safely retry.
func NewRetryable(message string) *AppError {
	return &AppError{Status: fiber.StatusServiceUnavailable, Message: message, Retryable: true}
}
