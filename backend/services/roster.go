package services

import (
	"context"
	"fmt"
	"log"

	"smartscore/backend/models"

	"gorm.io/gorm"
)

// RosterService manages courses, batches and students.
type RosterService struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewRosterService(db *gorm.DB, logger *log.Logger) *RosterService {
	return &RosterService{DB: db, Logger: logger}
}

func (s *RosterService) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := s.DB.WithContext(ctx).Order("course_code").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *RosterService) CreateCourse(ctx context.Context, course *models.Course) error {
	err := s.DB.WithContext(ctx).Create(course).Error
	if err == nil {
		return nil
	}
	if storeKind(err) == KindDuplicateKey {
		return newError(KindDuplicateKey, err, "Course code '%s' already exists", course.CourseCode)
	}
	return fmt.Errorf("create course: %w", err)
}

// DeleteCourse removes a course that no exam refers to.
func (s *RosterService) DeleteCourse(ctx context.Context, courseCode string) error {
	res := s.DB.WithContext(ctx).Where("course_code = ?", courseCode).Delete(&models.Course{})
	if res.Error != nil {
		if storeKind(res.Error) == KindReferenceNotFound {
			return newError(KindInvalidInput, res.Error, "Course '%s' has exams and cannot be removed", courseCode)
		}
		return fmt.Errorf("delete course: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return newError(KindNotFound, nil, "Course '%s' not found", courseCode)
	}
	return nil
}

func (s *RosterService) ListBatches(ctx context.Context) ([]models.Batch, error) {
	var batches []models.Batch
	if err := s.DB.WithContext(ctx).Order("batch_id").Find(&batches).Error; err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return batches, nil
}

// CreateBatch inserts a batch; the primary key rejects a reused batch_id.
func (s *RosterService) CreateBatch(ctx context.Context, batch *models.Batch) error {
	err := s.DB.WithContext(ctx).Create(batch).Error
	if err == nil {
		return nil
	}
	if storeKind(err) == KindDuplicateKey {
		return newError(KindDuplicateKey, err, "Batch ID '%s' already exists", batch.BatchID)
	}
	return fmt.Errorf("create batch: %w", err)
}

// UpgradeBatchSemester advances current_semester by one and returns the new value.
func (s *RosterService) UpgradeBatchSemester(ctx context.Context, batchID string) (int, error) {
	var batch models.Batch
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Batch{}).
			Where("batch_id = ?", batchID).
			UpdateColumn("current_semester", gorm.Expr("current_semester + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return newError(KindNotFound, nil, "Batch '%s' not found", batchID)
		}
		return tx.Where("batch_id = ?", batchID).First(&batch).Error
	})
	if err != nil {
		if KindOf(err) != 0 {
			return 0, err
		}
		return 0, fmt.Errorf("upgrade batch %s: %w", batchID, err)
	}

	s.Logger.Printf("Batch %s moved to semester %d", batchID, batch.CurrentSemester)
	return batch.CurrentSemester, nil
}

// CreateStudent inserts a student into an existing batch.
// A reused ktu_id is reported before a missing batch.
func (s *RosterService) CreateStudent(ctx context.Context, student *models.Student) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(student).Error; err != nil {
			return err
		}
		// Also covers stores running without foreign key enforcement.
		ok, err := exists(tx, &models.Batch{}, "batch_id = ?", student.BatchID)
		if err != nil {
			return err
		}
		if !ok {
			return newError(KindReferenceNotFound, nil, "Batch '%s' does not exist", student.BatchID)
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case KindOf(err) != 0:
		return err
	case storeKind(err) == KindDuplicateKey:
		return newError(KindDuplicateKey, err, "Student with KTU ID '%s' already exists", student.KtuID)
	case storeKind(err) == KindReferenceNotFound:
		return newError(KindReferenceNotFound, err, "Batch '%s' does not exist", student.BatchID)
	default:
		return fmt.Errorf("create student: %w", err)
	}
}

// ListStudents returns every student, or only those of batchID when it is set.
func (s *RosterService) ListStudents(ctx context.Context, batchID string) ([]models.Student, error) {
	q := s.DB.WithContext(ctx).Order("ktu_id")
	if batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}

	var students []models.Student
	if err := q.Find(&students).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}
