package controllers

import (
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service failure to its HTTP status.
func respondError(c *fiber.Ctx, err error) error {
	switch services.KindOf(err) {
	case services.KindNotFound, services.KindReferenceNotFound:
		return utils.Error(c, fiber.StatusNotFound, err)
	case services.KindDuplicateKey, services.KindFileParse, services.KindInvalidInput:
		return utils.Error(c, fiber.StatusBadRequest, err)
	case services.KindInvalidCredential:
		return utils.Error(c, fiber.StatusUnauthorized, err)
	}
	return err
}

// parseBody decodes and validates a JSON request body into dst.
// On false the 400 response has already been written.
func parseBody(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.Validate(dst); fields != nil {
		return false, utils.ValidationError(c, fields)
	}
	return true, nil
}
