package models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleFaculty UserRole = "faculty"
)

type User struct {
	UserID       string   `gorm:"primaryKey;size:50" json:"user_id"`
	Username     string   `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"size:20;not null;default:faculty" json:"role"`

	Reports []Report `gorm:"foreignKey:FacultyID;references:UserID" json:"-"`
}

func (User) TableName() string { return "users" }
