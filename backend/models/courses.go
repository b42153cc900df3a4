package models

type Course struct {
	CourseCode string `gorm:"primaryKey;size:20" json:"course_code"`
	CourseName string `gorm:"size:100" json:"course_name"`
	Department string `gorm:"size:50" json:"department"`

	Exams []ExamConfig `gorm:"foreignKey:CourseCode;references:CourseCode" json:"-"`
}

func (Course) TableName() string { return "course_master" }
