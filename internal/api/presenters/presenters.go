package presenters

import (
	"Food-Traceability-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SuccessResponse writes a success result. With data it writes the payload
// as-is (list and detail responses have contract-fixed shapes without an
// envelope); without data it writes the {status,message} envelope.
func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	if data == nil {
		return c.Status(status).JSON(domain.GenericResponse{
			Status:  "success",
			Message: message,
		})
	}
	return c.Status(status).JSON(data)
}

// ErrorResponse writes the {status,message} envelope. Only the stable
// message leaves the server; err stays in the server log.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	return c.Status(status).JSON(domain.GenericResponse{
		Status:  "error",
		Message: message,
	})
}

// StatusCode maps the domain error taxonomy onto HTTP status codes.
// Database and internal errors fall through to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidMetadata):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrProductIDExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
