package model

import "time"

// Assessment is an assignment of an AssessmentType to a target population.
// A nil DepartmentID targets every active employee of the company.
// Deactivation is a flag flip; assessments are never deleted from the
// grading path.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	AssessmentTypeID uint            `gorm:"index;type:bigint unsigned" json:"assessmentTypeId"`
	AssessmentType   *AssessmentType `gorm:"foreignKey:AssessmentTypeID" json:"assessmentType,omitempty"`
	CompanyID        uint            `gorm:"index;type:bigint unsigned" json:"companyId"`
	DepartmentID     *uint           `gorm:"index;type:bigint unsigned" json:"departmentId,omitempty"`
	Title            string          `gorm:"size:255;not null" json:"title"`
	Description      string          `gorm:"type:text" json:"description"`
	DueDate          *time.Time      `json:"dueDate,omitempty"`
	TimeLimit        int             `gorm:"default:0" json:"timeLimit"` // Minutes, 0 means unlimited
	IsActive         bool            `gorm:"default:true" json:"isActive"`
}

func (Assessment) TableName() string {
	return "employee_assessments"
}
