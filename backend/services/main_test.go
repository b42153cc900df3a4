package services

import (
	"io"
	"log"
	"testing"

	"smartscore/backend/config"
	"smartscore/backend/models"
	"smartscore/backend/utils"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	roster  *RosterService
	users   *UserService
	imports *ImportService
	exams   *ExamService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := utils.InitDB(&config.Config{DBDriver: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	logger := log.New(io.Discard, "", 0)
	users := NewUserService(db, logger)
	users.Cost = bcrypt.MinCost

	return &testEnv{
		db:      db,
		roster:  NewRosterService(db, logger),
		users:   users,
		imports: NewImportService(db, logger),
		exams:   NewExamService(db, logger),
	}
}

func (e *testEnv) seedBatch(t *testing.T, id string, semester int) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Batch{BatchID: id, BatchName: id + " MCA", CurrentSemester: semester}).Error)
}

func (e *testEnv) seedCourse(t *testing.T, code string) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Course{CourseCode: code, CourseName: "Course " + code, Department: "MCA"}).Error)
}

func (e *testEnv) seedStudent(t *testing.T, ktuID, batchID string) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Student{KtuID: ktuID, StudentName: "Student " + ktuID, BatchID: batchID}).Error)
}

func (e *testEnv) countStudents(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Student{}).Count(&n).Error)
	return n
}
