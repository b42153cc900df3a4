package controllers

import (
	"smartscore/backend/models"
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StudentsController struct {
	Roster  *services.RosterService
	Imports *services.ImportService
}

func NewStudentsController(roster *services.RosterService, imports *services.ImportService) *StudentsController {
	return &StudentsController{Roster: roster, Imports: imports}
}

type CreateStudentRequest struct {
	KtuID       string `json:"ktu_id" validate:"required,max=20" example:"S1"`
	StudentName string `json:"student_name" validate:"required,max=100" example:"Alice"`
	BatchID     string `json:"batch_id" validate:"required,max=20" example:"B1"`
}

// ListStudents godoc
// @Summary List students
// @Tags students
// @Produce json
// @Param batch_id query string false "Only students of this batch"
// @Success 200 {array} models.Student
// @Router /students [get]
func (sc *StudentsController) ListStudents(c *fiber.Ctx) error {
	students, err := sc.Roster.ListStudents(c.UserContext(), c.Query("batch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.List(c, students)
}

// CreateStudent godoc
// @Summary Enrol a student in an existing batch
// @Tags students
// @Accept json
// @Produce json
// @Param student body CreateStudentRequest true "Student data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /students [post]
func (sc *StudentsController) CreateStudent(c *fiber.Ctx) error {
	var input CreateStudentRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	student := &models.Student{
		KtuID:       input.KtuID,
		StudentName: input.StudentName,
		BatchID:     input.BatchID,
	}
	if err := sc.Roster.CreateStudent(c.UserContext(), student); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"student": student})
}

// UploadStudents godoc
// @Summary Bulk import students from a spreadsheet
// @Description Accepts .xlsx or .csv with ktu_id, student_name and batch_id columns.
// @Description Rows that fail validation are reported and the rest are imported.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Roster spreadsheet"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /upload-students [post]
func (sc *StudentsController) UploadStudents(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "No file uploaded")
	}

	file, err := header.Open()
	if err != nil {
		return utils.BadRequest(c, "Could not open uploaded file")
	}
	defer file.Close()

	result, err := sc.Imports.ImportFile(c.UserContext(), header.Filename, file)
	if err != nil {
		return respondError(c, err)
	}

	body := fiber.Map{"added": result.Added}
	if len(result.Errors) > 0 {
		body["errors"] = result.Errors
	}
	return utils.Success(c, body)
}
