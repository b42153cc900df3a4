package models

type Student struct {
	KtuID       string `gorm:"primaryKey;size:20" json:"ktu_id"`
	StudentName string `gorm:"size:100" json:"student_name"`
	BatchID     string `gorm:"size:20;not null;index" json:"batch_id"`

	Drafts []DraftMark `gorm:"foreignKey:KtuID;references:KtuID" json:"-"`
}

func (Student) TableName() string { return "student_master" }
