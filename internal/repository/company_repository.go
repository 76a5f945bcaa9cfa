package repository

import (
	"traininghub_backend/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) Create(company *model.Company) error {
	return r.DB.Create(company).Error
}

func (r *CompanyRepository) FindByID(id uint) (*model.Company, error) {
	var c model.Company
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CompanyRepository) Update(company *model.Company) error {
	return r.DB.Save(company).Error
}

func (r *CompanyRepository) List(page, limit int) ([]model.Company, int64, error) {
	var cs []model.Company
	var total int64
	query := r.DB.Model(&model.Company{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&cs).Error
	return cs, total, err
}

// Department methods

func (r *CompanyRepository) CreateDepartment(d *model.Department) error {
	return r.DB.Create(d).Error
}

func (r *CompanyRepository) FindDepartmentByID(id uint) (*model.Department, error) {
	var d model.Department
	err := r.DB.First(&d, id).Error
	return &d, err
}

func (r *CompanyRepository) ListDepartments(companyID uint) ([]model.Department, error) {
	var ds []model.Department
	err := r.DB.Where("company_id = ?", companyID).Order("name asc").Find(&ds).Error
	return ds, err
}

func (r *CompanyRepository) DeleteDepartment(id uint) error {
	return r.DB.Delete(&model.Department{}, id).Error
}
