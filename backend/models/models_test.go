package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExamStatusValid(t *testing.T) {
	for _, s := range []ExamStatus{ExamScheduled, ExamCompleted, ExamPublished} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ExamStatus("archived").Valid())
	assert.False(t, ExamStatus("").Valid())
}

func TestMigrateCreatesRelations(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	for _, table := range []string{"users", "course_master", "batch_master", "student_master", "exam_config", "session_draft_marks", "report_archive"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	err = db.Create(&Student{KtuID: "S1", StudentName: "Alice", BatchID: "missing"}).Error
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	require.NoError(t, db.Create(&Course{CourseCode: "20MCA101"}).Error)
	exam := ExamConfig{CourseCode: "20MCA101", SeriesType: "Series 1"}
	require.NoError(t, db.Create(&exam).Error)
	assert.Equal(t, ExamScheduled, exam.Status)

	require.NoError(t, db.Create(&Batch{BatchID: "B1", CurrentSemester: 1}).Error)
	require.NoError(t, db.Create(&Student{KtuID: "S1", BatchID: "B1"}).Error)
	require.NoError(t, db.Create(&DraftMark{ExamID: exam.ExamID, KtuID: "S1"}).Error)
	err = db.Create(&DraftMark{ExamID: exam.ExamID, KtuID: "S1"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
