package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the error body every failing endpoint returns.
type ErrorResponse struct {
	Detail  string      `json:"detail"`
	Details interface{} `json:"details,omitempty"`
}

// Success replies 200 with {"status": "success"} merged into body.
func Success(c *fiber.Ctx, body fiber.Map) error {
	response := fiber.Map{"status": "success"}
	for k, v := range body {
		response[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// List replies with a bare JSON array, never null.
func List[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// Error replies with status and the error message as detail.
func Error(c *fiber.Ctx, status int, err error, details ...interface{}) error {
	response := ErrorResponse{Detail: err.Error()}
	if len(details) > 0 {
		response.Details = details[0]
	}
	return c.Status(status).JSON(response)
}

// ValidationError replies 400 with one entry per failing field.
func ValidationError(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Detail:  "Validation failed",
		Details: errors,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, fiber.NewError(fiber.StatusBadRequest, message))
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, message))
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, fiber.NewError(fiber.StatusForbidden, message))
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, fiber.NewError(fiber.StatusInternalServerError, message))
}
