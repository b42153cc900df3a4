package services

import (
	"context"
	"fmt"

	"smartscore/backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DraftInput is one student's working marks for an exam.
type DraftInput struct {
	KtuID    string
	QMarks   map[string]int
	IsAbsent bool
}

// SaveDraftMarks creates or replaces the draft for (exam, student).
// The total is the sum of the question marks, and zero for an absentee.
func (s *ExamService) SaveDraftMarks(ctx context.Context, examID uint, in DraftInput) (*models.DraftMark, error) {
	marks := in.QMarks
	if marks == nil || in.IsAbsent {
		marks = map[string]int{}
	}

	total := 0
	for question, score := range marks {
		if score < 0 {
			return nil, newError(KindInvalidInput, nil, "Marks for question %s cannot be negative", question)
		}
		total += score
	}

	draft := &models.DraftMark{
		ExamID:        examID,
		KtuID:         in.KtuID,
		QMarks:        datatypes.NewJSONType(marks),
		TotalObtained: total,
		IsAbsent:      in.IsAbsent,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.getExam(tx, examID); err != nil {
			return err
		}
		ok, err := exists(tx, &models.Student{}, "ktu_id = ?", in.KtuID)
		if err != nil {
			return err
		}
		if !ok {
			return newError(KindReferenceNotFound, nil, "Student '%s' does not exist", in.KtuID)
		}

		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "exam_id"}, {Name: "ktu_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"q_marks", "total_obtained", "is_absent"}),
		}).Create(draft).Error
		if err != nil {
			return err
		}
		var saved models.DraftMark
		if err := tx.Where("exam_id = ? AND ktu_id = ?", examID, in.KtuID).First(&saved).Error; err != nil {
			return err
		}
		*draft = saved
		return nil
	})
	if err != nil {
		if KindOf(err) != 0 {
			return nil, err
		}
		return nil, fmt.Errorf("save draft marks: %w", err)
	}
	return draft, nil
}

// ListDraftMarks returns the drafts recorded for an exam, ordered by student.
func (s *ExamService) ListDraftMarks(ctx context.Context, examID uint) ([]models.DraftMark, error) {
	db := s.DB.WithContext(ctx)
	if _, err := s.getExam(db, examID); err != nil {
		return nil, err
	}

	var drafts []models.DraftMark
	if err := db.Where("exam_id = ?", examID).Order("ktu_id").Find(&drafts).Error; err != nil {
		return nil, fmt.Errorf("list draft marks: %w", err)
	}
	return drafts, nil
}
