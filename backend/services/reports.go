package services

import (
	"context"
	"fmt"

	"smartscore/backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportInput describes a finalized report produced outside this service.
type ReportInput struct {
	FacultyID         string
	FilePath          string
	AnalyticsSnapshot map[string]interface{}
}

// ArchiveReport appends a report for an exam. Archived reports are never modified.
func (s *ExamService) ArchiveReport(ctx context.Context, examID uint, in ReportInput) (*models.Report, error) {
	report := &models.Report{
		ExamID:            examID,
		FacultyID:         in.FacultyID,
		FilePath:          in.FilePath,
		AnalyticsSnapshot: datatypes.JSONMap(in.AnalyticsSnapshot),
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.getExam(tx, examID); err != nil {
			return err
		}
		ok, err := exists(tx, &models.User{}, "user_id = ?", in.FacultyID)
		if err != nil {
			return err
		}
		if !ok {
			return newError(KindReferenceNotFound, nil, "User '%s' does not exist", in.FacultyID)
		}
		return tx.Create(report).Error
	})
	if err != nil {
		if KindOf(err) != 0 {
			return nil, err
		}
		return nil, fmt.Errorf("archive report: %w", err)
	}

	s.Logger.Printf("Report %d archived for exam %d by %s", report.ReportID, examID, in.FacultyID)
	return report, nil
}

// ListReports returns an exam's archive, oldest first.
func (s *ExamService) ListReports(ctx context.Context, examID uint) ([]models.Report, error) {
	db := s.DB.WithContext(ctx)
	if _, err := s.getExam(db, examID); err != nil {
		return nil, err
	}

	var reports []models.Report
	if err := db.Where("exam_id = ?", examID).Order("created_at, report_id").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}
