package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID, echoed in the X-Request-ID header.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	})
}

func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		requestID, _ := c.Locals("requestid").(string)
		logger.Printf(
			"%s %s %s %s %d %v",
			requestID,
			c.IP(),
			c.Method(),
			c.Path(),
			status,
			time.Since(start),
		)
		if err != nil {
			logger.Printf("%s error: %v", requestID, err)
		}

		return err
	}
}
