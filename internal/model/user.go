package model

import (
	"time"
)

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Business   UserRole = "business"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	Password     string    `gorm:"size:100;not null" json:"-"`
	Role         UserRole  `gorm:"type:enum('student','instructor','business','admin');default:'student'" json:"role"`
	CompanyID    *uint     `gorm:"index;type:bigint unsigned" json:"companyId,omitempty"`
	DepartmentID *uint     `gorm:"index;type:bigint unsigned" json:"departmentId,omitempty"`
	JobTitle     string    `gorm:"size:100" json:"jobTitle"`
	Active       bool      `gorm:"default:true" json:"active"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen     time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
