package controllers

import (
	"smartscore/backend/models"
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Roster *services.RosterService
}

func NewCoursesController(roster *services.RosterService) *CoursesController {
	return &CoursesController{Roster: roster}
}

type CreateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=20" example:"20MCA101"`
	CourseName string `json:"course_name" validate:"required,max=100" example:"Mathematical Foundations for Computing Applications"`
	Department string `json:"department" validate:"max=50" example:"MCA"`
}

// ListCourses godoc
// @Summary List the course catalogue
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Roster.ListCourses(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return utils.List(c, courses)
}

// CreateCourse godoc
// @Summary Add a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body CreateCourseRequest true "Course data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input CreateCourseRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	course := &models.Course{
		CourseCode: input.CourseCode,
		CourseName: input.CourseName,
		Department: input.Department,
	}
	if err := cc.Roster.CreateCourse(c.UserContext(), course); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"course": course})
}
