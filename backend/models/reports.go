package models

import (
	"time"

	"gorm.io/datatypes"
)

// Report is an archived, finalized exam result. Rows are never updated.
type Report struct {
	ReportID          uint              `gorm:"primaryKey;autoIncrement" json:"report_id"`
	ExamID            uint              `gorm:"not null;index" json:"exam_id"`
	FacultyID         string            `gorm:"size:50;not null;index" json:"faculty_id"`
	FilePath          string            `gorm:"size:255" json:"file_path"`
	AnalyticsSnapshot datatypes.JSONMap `json:"analytics_snapshot"` // {"CO1": 80, "PassRate": 90}
	CreatedAt         time.Time         `gorm:"autoCreateTime;<-:create" json:"created_at"`
}

func (Report) TableName() string { return "report_archive" }
