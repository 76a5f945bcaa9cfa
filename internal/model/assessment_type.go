package model

// AssessmentType is a company-owned template carrying the grading policy
// (mandatory flag and passing threshold) shared by its assessments.
// swagger:model AssessmentType
type AssessmentType struct {
	BaseModel
	CompanyID    uint   `gorm:"index;type:bigint unsigned" json:"companyId"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	IsMandatory  bool   `gorm:"default:false" json:"isMandatory"`
	PassingScore int    `gorm:"default:70" json:"passingScore"` // Percentage, 0-100
}

func (AssessmentType) TableName() string {
	return "assessment_types"
}
