package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"smartscore/backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExamInput describes a new exam instance.
type ExamInput struct {
	CourseCode string
	Date       time.Time
	SeriesType string
	// PatternConfig holds the caller's scoring rules and is stored as given.
	PatternConfig map[string]interface{}
}

// ExamService owns exam configurations, draft marks and archived reports.
type ExamService struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewExamService(db *gorm.DB, logger *log.Logger) *ExamService {
	return &ExamService{DB: db, Logger: logger}
}

// CreateExam stores a scheduled exam for an existing course.
func (s *ExamService) CreateExam(ctx context.Context, in ExamInput) (*models.ExamConfig, error) {
	exam := &models.ExamConfig{
		CourseCode:    in.CourseCode,
		Date:          datatypes.Date(in.Date),
		SeriesType:    in.SeriesType,
		PatternConfig: datatypes.JSONMap(in.PatternConfig),
		Status:        models.ExamScheduled,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Course{}, "course_code = ?", in.CourseCode)
		if err != nil {
			return err
		}
		if !ok {
			return newError(KindReferenceNotFound, nil, "Course '%s' does not exist", in.CourseCode)
		}
		return tx.Create(exam).Error
	})
	if err != nil {
		if KindOf(err) != 0 {
			return nil, err
		}
		if storeKind(err) == KindReferenceNotFound {
			return nil, newError(KindReferenceNotFound, err, "Course '%s' does not exist", in.CourseCode)
		}
		return nil, fmt.Errorf("create exam: %w", err)
	}

	s.Logger.Printf("Exam %d scheduled for %s (%s)", exam.ExamID, exam.CourseCode, exam.SeriesType)
	return exam, nil
}

func (s *ExamService) GetExam(ctx context.Context, examID uint) (*models.ExamConfig, error) {
	return s.getExam(s.DB.WithContext(ctx), examID)
}

func (s *ExamService) getExam(tx *gorm.DB, examID uint) (*models.ExamConfig, error) {
	var exam models.ExamConfig
	if err := tx.Where("exam_id = ?", examID).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(KindNotFound, err, "Exam %d not found", examID)
		}
		return nil, fmt.Errorf("get exam %d: %w", examID, err)
	}
	return &exam, nil
}

// UpdateExamStatus writes the status field. Any of the three states may be set.
func (s *ExamService) UpdateExamStatus(ctx context.Context, examID uint, status models.ExamStatus) (*models.ExamConfig, error) {
	if !status.Valid() {
		return nil, newError(KindInvalidInput, nil, "Invalid exam status '%s'", status)
	}

	res := s.DB.WithContext(ctx).Model(&models.ExamConfig{}).
		Where("exam_id = ?", examID).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update exam %d: %w", examID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, newError(KindNotFound, nil, "Exam %d not found", examID)
	}
	return s.GetExam(ctx, examID)
}
