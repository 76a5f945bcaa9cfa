package repository

import (
	"traininghub_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("AssessmentType").First(&a, id).Error
	return &a, err
}

func (r *AssessmentRepository) Update(a *model.Assessment) error {
	return r.DB.Save(a).Error
}

// ListByCompany returns a company's assessments, newest first. With
// activeOnly it is restricted to the grading path's view: deactivated
// assessments stay in the table but drop out of every listing.
func (r *AssessmentRepository) ListByCompany(companyID uint, activeOnly bool, page, limit int) ([]model.Assessment, int64, error) {
	var as []model.Assessment
	var total int64
	query := r.DB.Model(&model.Assessment{}).Where("company_id = ?", companyID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("AssessmentType").Order("created_at desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

// ListActiveForEmployee returns the active assessments targeting an
// employee: company-wide ones plus those aimed at the employee's department.
func (r *AssessmentRepository) ListActiveForEmployee(companyID uint, departmentID *uint) ([]model.Assessment, error) {
	var as []model.Assessment
	query := r.DB.Where("company_id = ? AND is_active = ?", companyID, true)
	if departmentID != nil {
		query = query.Where("department_id IS NULL OR department_id = ?", *departmentID)
	} else {
		query = query.Where("department_id IS NULL")
	}
	err := query.Preload("AssessmentType").Order("due_date asc, created_at desc").Find(&as).Error
	return as, err
}

func (r *AssessmentRepository) ListAllActive(companyID uint) ([]model.Assessment, error) {
	var as []model.Assessment
	err := r.DB.Where("company_id = ? AND is_active = ?", companyID, true).
		Preload("AssessmentType").
		Order("created_at desc").
		Find(&as).Error
	return as, err
}

// Question methods

func (r *AssessmentRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *AssessmentRepository) FindQuestionByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// ListQuestions returns an assessment's questions in evaluation order.
func (r *AssessmentRepository) ListQuestions(assessmentID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("assessment_id = ?", assessmentID).Order("position asc").Find(&qs).Error
	return qs, err
}

func (r *AssessmentRepository) UpdateQuestion(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *AssessmentRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

// CountQuestionAtPosition reports how many other questions of the assessment
// already occupy the position. excludeID skips the question being updated.
func (r *AssessmentRepository) CountQuestionAtPosition(assessmentID uint, position int, excludeID uint) (int64, error) {
	var count int64
	query := r.DB.Model(&model.Question{}).
		Where("assessment_id = ? AND position = ?", assessmentID, position)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}
