package repository

import (
	"traininghub_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentTypeRepository struct {
	DB *gorm.DB
}

func NewAssessmentTypeRepository(db *gorm.DB) *AssessmentTypeRepository {
	return &AssessmentTypeRepository{DB: db}
}

func (r *AssessmentTypeRepository) Create(t *model.AssessmentType) error {
	return r.DB.Create(t).Error
}

func (r *AssessmentTypeRepository) FindByID(id uint) (*model.AssessmentType, error) {
	var t model.AssessmentType
	err := r.DB.First(&t, id).Error
	return &t, err
}

func (r *AssessmentTypeRepository) ListByCompany(companyID uint) ([]model.AssessmentType, error) {
	var ts []model.AssessmentType
	err := r.DB.Where("company_id = ?", companyID).Order("name asc").Find(&ts).Error
	return ts, err
}

func (r *AssessmentTypeRepository) Update(t *model.AssessmentType) error {
	return r.DB.Save(t).Error
}

func (r *AssessmentTypeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.AssessmentType{}, id).Error
}
