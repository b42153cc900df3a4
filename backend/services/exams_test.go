package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"smartscore/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const patternJSON = `{
	"target_batch_id": "B1",
	"total_questions": 2,
	"questions": [{"qNo": 1, "maxMarks": 5}, {"qNo": 2, "maxMarks": 10, "hasSubQuestions": true, "subMarks": {"a": 4, "b": 6}}],
	"choice_rules": [{"fromQ": 1, "toQ": 2, "solveCount": 1}]
}`

func newExam(t *testing.T, env *testEnv) *models.ExamConfig {
	t.Helper()
	var pattern map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(patternJSON), &pattern))

	exam, err := env.exams.CreateExam(context.Background(), ExamInput{
		CourseCode:    "20MCA101",
		Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		SeriesType:    "Series 1",
		PatternConfig: pattern,
	})
	require.NoError(t, err)
	return exam
}

func TestCreateExam(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedCourse(t, "20MCA101")

	exam := newExam(t, env)
	assert.NotZero(t, exam.ExamID)
	assert.Equal(t, models.ExamScheduled, exam.Status)

	got, err := env.exams.GetExam(ctx, exam.ExamID)
	require.NoError(t, err)
	assert.Equal(t, models.ExamScheduled, got.Status)
	assert.Equal(t, "Series 1", got.SeriesType)
	assert.Equal(t, "2025-01-15", time.Time(got.Date).Format("2006-01-02"))

	stored, err := json.Marshal(got.PatternConfig)
	require.NoError(t, err)
	assert.JSONEq(t, patternJSON, string(stored))

	_, err = env.exams.CreateExam(ctx, ExamInput{CourseCode: "NOPE", Date: time.Now()})
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	_, err = env.exams.GetExam(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateExamStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedCourse(t, "20MCA101")
	exam := newExam(t, env)

	updated, err := env.exams.UpdateExamStatus(ctx, exam.ExamID, models.ExamCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ExamCompleted, updated.Status)

	_, err = env.exams.UpdateExamStatus(ctx, exam.ExamID, "archived")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.exams.UpdateExamStatus(ctx, 9999, models.ExamPublished)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveDraftMarks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedCourse(t, "20MCA101")
	env.seedBatch(t, "B1", 1)
	env.seedStudent(t, "S1", "B1")
	env.seedStudent(t, "S2", "B1")
	exam := newExam(t, env)

	draft, err := env.exams.SaveDraftMarks(ctx, exam.ExamID, DraftInput{
		KtuID:  "S1",
		QMarks: map[string]int{"1": 4, "2_a": 3, "2_b": 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 12, draft.TotalObtained)
	firstSession := draft.SessionID

	draft, err = env.exams.SaveDraftMarks(ctx, exam.ExamID, DraftInput{
		KtuID:  "S1",
		QMarks: map[string]int{"1": 5, "2_a": 4},
	})
	require.NoError(t, err)
	assert.Equal(t, firstSession, draft.SessionID)
	assert.Equal(t, 9, draft.TotalObtained)
	assert.Equal(t, map[string]int{"1": 5, "2_a": 4}, draft.QMarks.Data())

	absent, err := env.exams.SaveDraftMarks(ctx, exam.ExamID, DraftInput{
		KtuID:    "S2",
		QMarks:   map[string]int{"1": 5},
		IsAbsent: true,
	})
	require.NoError(t, err)
	assert.True(t, absent.IsAbsent)
	assert.Equal(t, 0, absent.TotalObtained)

	drafts, err := env.exams.ListDraftMarks(ctx, exam.ExamID)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "S1", drafts[0].KtuID)
	assert.Equal(t, 9, drafts[0].TotalObtained)

	_, err = env.exams.SaveDraftMarks(ctx, exam.ExamID, DraftInput{KtuID: "S9"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	_, err = env.exams.SaveDraftMarks(ctx, exam.ExamID, DraftInput{KtuID: "S1", QMarks: map[string]int{"1": -1}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.exams.SaveDraftMarks(ctx, 9999, DraftInput{KtuID: "S1"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.exams.ListDraftMarks(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchiveReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedCourse(t, "20MCA101")
	exam := newExam(t, env)

	_, err := env.users.CreateFacultyUser(ctx, "F1", "jdoe", "pw")
	require.NoError(t, err)

	first, err := env.exams.ArchiveReport(ctx, exam.ExamID, ReportInput{
		FacultyID:         "F1",
		FilePath:          "reports/exam-1.pdf",
		AnalyticsSnapshot: map[string]interface{}{"CO1": 80, "PassRate": 90},
	})
	require.NoError(t, err)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = env.exams.ArchiveReport(ctx, exam.ExamID, ReportInput{FacultyID: "F1", FilePath: "reports/exam-1-v2.pdf"})
	require.NoError(t, err)

	reports, err := env.exams.ListReports(ctx, exam.ExamID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "reports/exam-1.pdf", reports[0].FilePath)
	assert.Equal(t, first.CreatedAt.Unix(), reports[0].CreatedAt.Unix())

	snapshot, err := json.Marshal(reports[0].AnalyticsSnapshot)
	require.NoError(t, err)
	assert.JSONEq(t, `{"CO1": 80, "PassRate": 90}`, string(snapshot))

	_, err = env.exams.ArchiveReport(ctx, exam.ExamID, ReportInput{FacultyID: "ghost"})
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	_, err = env.exams.ArchiveReport(ctx, 9999, ReportInput{FacultyID: "F1"})
	assert.ErrorIs(t, err, ErrNotFound)
}
