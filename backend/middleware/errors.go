package middleware

import (
	"errors"
	"log"

	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors that escape the handlers as {"detail": ...}.
func ErrorHandler(logger *log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.Error(c, fe.Code, fe)
		}

		logger.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return utils.InternalServerError(c, "Internal server error")
	}
}
