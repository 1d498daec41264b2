package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eatgo-discovery/internal/pkg/errors"
)

// ErrorResponse is the only failure shape clients ever see: a short
// human-readable string, never an upstream body or a stack trace.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendError translates any error into the JSON error envelope. Errors that
// are not AppError are masked as a generic 500.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
	})
}
