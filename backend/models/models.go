package models

import "gorm.io/gorm"

// All lists every table in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Course{},
		&Batch{},
		&Student{},
		&ExamConfig{},
		&DraftMark{},
		&Report{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
