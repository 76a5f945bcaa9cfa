package model

// swagger:model Company
type Company struct {
	BaseModel
	Name   string `gorm:"size:255;not null" json:"name"`
	Domain string `gorm:"size:255" json:"domain"`
	Active bool   `gorm:"default:true" json:"active"`
}

func (Company) TableName() string {
	return "companies"
}

// swagger:model Department
type Department struct {
	BaseModel
	CompanyID uint   `gorm:"index;type:bigint unsigned" json:"companyId"`
	Name      string `gorm:"size:255;not null" json:"name"`
}

func (Department) TableName() string {
	return "departments"
}
