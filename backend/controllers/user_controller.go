package controllers

import (
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type CreateUserRequest struct {
	UserID   string `json:"user_id" validate:"required,max=50" example:"F001"`
	Username string `json:"username" validate:"required,max=50" example:"jdoe"`
	Password string `json:"password" validate:"required" example:"secret"`
	// Role is accepted for compatibility and ignored; new accounts are always faculty.
	Role string `json:"role,omitempty" example:"faculty"`
}

// ListUsers godoc
// @Summary List faculty accounts
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponse
// @Router /users [get]
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	users, err := uc.Users.ListFacultyUsers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return utils.List(c, users)
}

// CreateUser godoc
// @Summary Create a faculty account
// @Description The role in the body is ignored
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "Account data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /users [post]
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var input CreateUserRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	user, err := uc.Users.CreateFacultyUser(c.UserContext(), input.UserID, input.Username, input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"user": user})
}

// GetUser godoc
// @Summary Get an account by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{username} [get]
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	user, err := uc.Users.GetUserByUsername(c.UserContext(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
