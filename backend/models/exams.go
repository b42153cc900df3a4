package models

import "gorm.io/datatypes"

type ExamStatus string

const (
	ExamScheduled ExamStatus = "scheduled"
	ExamCompleted ExamStatus = "completed"
	ExamPublished ExamStatus = "published"
)

func (s ExamStatus) Valid() bool {
	switch s {
	case ExamScheduled, ExamCompleted, ExamPublished:
		return true
	}
	return false
}

type ExamConfig struct {
	ExamID     uint           `gorm:"primaryKey;autoIncrement" json:"exam_id"`
	CourseCode string         `gorm:"size:20;not null;index" json:"course_code"`
	Date       datatypes.Date `json:"date"`
	SeriesType string         `gorm:"size:20" json:"series_type"` // "Series 1", "Series 2"
	// Scoring rules (questions, choice rules, max marks). Stored verbatim.
	PatternConfig datatypes.JSONMap `json:"pattern_config"`
	Status        ExamStatus        `gorm:"size:20;not null;default:scheduled" json:"status"`

	Drafts  []DraftMark `gorm:"foreignKey:ExamID;references:ExamID" json:"-"`
	Reports []Report    `gorm:"foreignKey:ExamID;references:ExamID" json:"-"`
}

func (ExamConfig) TableName() string { return "exam_config" }
