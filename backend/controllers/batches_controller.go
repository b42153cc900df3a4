package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"smartscore/backend/models"
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type BatchesController struct {
	Roster *services.RosterService
}

func NewBatchesController(roster *services.RosterService) *BatchesController {
	return &BatchesController{Roster: roster}
}

// Semester is an integer that may arrive as a JSON number or a numeric string,
// as form inputs send it.
type Semester int

func (s *Semester) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return errors.New("current_semester must be a whole number")
	}
	*s = Semester(n)
	return nil
}

type CreateBatchRequest struct {
	BatchID         string   `json:"batch_id" validate:"required,max=20" example:"B1"`
	BatchName       string   `json:"batch_name" validate:"required,max=50" example:"2024 MCA"`
	CurrentSemester Semester `json:"current_semester" validate:"gte=1" example:"1" swaggertype:"integer"`
}

// ListBatches godoc
// @Summary List batches
// @Tags batches
// @Produce json
// @Success 200 {array} models.Batch
// @Router /batches [get]
func (bc *BatchesController) ListBatches(c *fiber.Ctx) error {
	batches, err := bc.Roster.ListBatches(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return utils.List(c, batches)
}

// CreateBatch godoc
// @Summary Create a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param batch body CreateBatchRequest true "Batch data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /batches [post]
func (bc *BatchesController) CreateBatch(c *fiber.Ctx) error {
	var input CreateBatchRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	batch := &models.Batch{
		BatchID:         input.BatchID,
		BatchName:       input.BatchName,
		CurrentSemester: int(input.CurrentSemester),
	}
	if err := bc.Roster.CreateBatch(c.UserContext(), batch); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"batch": batch})
}

// UpgradeSemester godoc
// @Summary Move a batch to its next semester
// @Tags batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /batches/{batch_id}/upgrade [put]
func (bc *BatchesController) UpgradeSemester(c *fiber.Ctx) error {
	semester, err := bc.Roster.UpgradeBatchSemester(c.UserContext(), c.Params("batch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"new_semester": semester})
}

// ListBatchStudents godoc
// @Summary List the students of a batch
// @Tags batches
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {array} models.Student
// @Router /batches/{batch_id}/students [get]
func (bc *BatchesController) ListBatchStudents(c *fiber.Ctx) error {
	students, err := bc.Roster.ListStudents(c.UserContext(), c.Params("batch_id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.List(c, students)
}
