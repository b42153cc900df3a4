package models

type Batch struct {
	BatchID         string `gorm:"primaryKey;size:20" json:"batch_id"`
	BatchName       string `gorm:"size:50" json:"batch_name"` // e.g. "2024-2026 MCA"
	CurrentSemester int    `gorm:"not null" json:"current_semester"`

	Students []Student `gorm:"foreignKey:BatchID;references:BatchID" json:"-"`
}

func (Batch) TableName() string { return "batch_master" }
