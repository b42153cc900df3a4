package controllers

import (
	"smartscore/backend/config"
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Users *services.UserService
	Cfg   *config.Config
}

func NewAuthController(users *services.UserService, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"admin123"`
}

// Login godoc
// @Summary User login
// @Description Checks the password and returns the account role with a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	user, err := ac.Users.Authenticate(c.UserContext(), input.Username, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := utils.GenerateJWTToken(user.UserID, string(user.Role), ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Success(c, fiber.Map{
		"role":     user.Role,
		"username": user.Username,
		"token":    token,
	})
}
