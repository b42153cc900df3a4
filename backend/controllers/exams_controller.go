package controllers

import (
	"strings"
	"time"

	"smartscore/backend/models"
	"smartscore/backend/services"
	"smartscore/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ExamsController struct {
	Exams *services.ExamService
}

func NewExamsController(exams *services.ExamService) *ExamsController {
	return &ExamsController{Exams: exams}
}

type CreateExamRequest struct {
	CourseCode    string                 `json:"course_code" validate:"required,max=20" example:"20MCA101"`
	Date          string                 `json:"date" validate:"required" example:"2025-01-15"`
	SeriesType    string                 `json:"series_type" validate:"max=20" example:"Series 1"`
	PatternConfig map[string]interface{} `json:"pattern_config"`
}

type UpdateExamStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed published" example:"completed"`
}

type SaveDraftRequest struct {
	KtuID    string         `json:"ktu_id" validate:"required,max=20" example:"S1"`
	QMarks   map[string]int `json:"q_marks"`
	IsAbsent bool           `json:"is_absent"`
}

type ArchiveReportRequest struct {
	FacultyID         string                 `json:"faculty_id" validate:"required,max=50" example:"F001"`
	FilePath          string                 `json:"file_path" validate:"required,max=255" example:"reports/exam-1.pdf"`
	AnalyticsSnapshot map[string]interface{} `json:"analytics_snapshot"`
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func examID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("exam_id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// CreateExam godoc
// @Summary Schedule an exam
// @Description pattern_config is stored and returned as sent
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body CreateExamRequest true "Exam data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /exams [post]
func (ec *ExamsController) CreateExam(c *fiber.Ctx) error {
	var input CreateExamRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return utils.ValidationError(c, map[string]string{"date": "date"})
	}

	exam, err := ec.Exams.CreateExam(c.UserContext(), services.ExamInput{
		CourseCode:    input.CourseCode,
		Date:          date,
		SeriesType:    input.SeriesType,
		PatternConfig: input.PatternConfig,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"exam_id": exam.ExamID})
}

// GetExam godoc
// @Summary Get an exam with its scoring pattern
// @Tags exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} models.ExamConfig
// @Failure 404 {object} utils.ErrorResponse
// @Router /exams/{exam_id} [get]
func (ec *ExamsController) GetExam(c *fiber.Ctx) error {
	id, ok := examID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid exam ID")
	}

	exam, err := ec.Exams.GetExam(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exam)
}

// UpdateStatus godoc
// @Summary Set an exam's status
// @Tags exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param status body UpdateExamStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /exams/{exam_id}/status [put]
func (ec *ExamsController) UpdateStatus(c *fiber.Ctx) error {
	id, ok := examID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid exam ID")
	}

	var input UpdateExamStatusRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	exam, err := ec.Exams.UpdateExamStatus(c.UserContext(), id, models.ExamStatus(input.Status))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"exam": exam})
}

// ListDrafts godoc
// @Summary List draft marks entered for an exam
// @Tags exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} models.DraftMark
// @Failure 404 {object} utils.ErrorResponse
// @Router /exams/{exam_id}/drafts [get]
func (ec *ExamsController) ListDrafts(c *fiber.Ctx) error {
	id, ok := examID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid exam ID")
	}

	drafts, err := ec.Exams.ListDraftMarks(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.List(c, drafts)
}

// SaveDraft godoc
// @Summary Save one student's draft marks
// @Description Replaces any earlier draft for the same student and exam
// @Tags exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param draft body SaveDraftRequest true "Marks per question"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /exams/{exam_id}/drafts [post]
func (ec *ExamsController) SaveDraft(c *fiber.Ctx) error {
	id, ok := examID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid exam ID")
	}

	var input SaveDraftRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	draft, err := ec.Exams.SaveDraftMarks(c.UserContext(), id, services.DraftInput{
		KtuID:    input.KtuID,
		QMarks:   input.QMarks,
		IsAbsent: input.IsAbsent,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"draft": draft})
}

// ListReports godoc
// @Summary List archived reports of an exam
// @Tags exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} models.Report
// @Failure 404 {object} utils.ErrorResponse
// @Router /exams/{exam_id}/reports [get]
func (ec *ExamsController) ListReports(c *fiber.Ctx) error {
	id, ok := examID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid exam ID")
	}

	reports, err := ec.Exams.ListReports(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.List(c, reports)
}

// ArchiveReport godoc
// @Summary Archive a finalized report
// @Tags exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param report body ArchiveReportRequest true "Report data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /exams/{exam_id}/reports [post]
func (ec *ExamsController) ArchiveReport(c *fiber.Ctx) error {
	id, ok := examID(c)
	if !ok {
		return utils.BadRequest(c, "Invalid exam ID")
	}

	var input ArchiveReportRequest
	if ok, err := parseBody(c, &input); !ok {
		return err
	}

	report, err := ec.Exams.ArchiveReport(c.UserContext(), id, services.ReportInput{
		FacultyID:         input.FacultyID,
		FilePath:          input.FilePath,
		AnalyticsSnapshot: input.AnalyticsSnapshot,
	})
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"report": report})
}
