package models

import "gorm.io/datatypes"

// DraftMark is working storage for a student's in-progress scores on one exam.
type DraftMark struct {
	SessionID     uint                               `gorm:"primaryKey;autoIncrement" json:"session_id"`
	ExamID        uint                               `gorm:"not null;uniqueIndex:idx_draft_exam_student" json:"exam_id"`
	KtuID         string                             `gorm:"size:20;not null;uniqueIndex:idx_draft_exam_student" json:"ktu_id"`
	QMarks        datatypes.JSONType[map[string]int] `json:"q_marks"` // {"1": 5, "2_a": 3}
	TotalObtained int                                `gorm:"not null;default:0" json:"total_obtained"`
	IsAbsent      bool                               `gorm:"not null;default:false" json:"is_absent"`
}

func (DraftMark) TableName() string { return "session_draft_marks" }
