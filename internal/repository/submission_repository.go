package repository

import (
	"traininghub_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) FindByID(id string) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.Preload("Employee").Where("id = ?", id).First(&s).Error
	return &s, err
}

func (r *SubmissionRepository) FindByAssessmentAndEmployee(assessmentID, employeeID uint) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.Where("assessment_id = ? AND employee_id = ?", assessmentID, employeeID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) ListByAssessment(assessmentID uint, page, limit int) ([]model.Submission, int64, error) {
	var ss []model.Submission
	var total int64
	query := r.DB.Model(&model.Submission{}).Where("assessment_id = ?", assessmentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Employee").Order("created_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

func (r *SubmissionRepository) ListByEmployee(employeeID uint) ([]model.Submission, error) {
	var ss []model.Submission
	err := r.DB.Where("employee_id = ?", employeeID).Order("created_at desc").Find(&ss).Error
	return ss, err
}

// ListByAssessments loads every submission for a set of assessments in one
// query, for the statistics aggregation.
func (r *SubmissionRepository) ListByAssessments(assessmentIDs []uint) ([]model.Submission, error) {
	if len(assessmentIDs) == 0 {
		return nil, nil
	}
	var ss []model.Submission
	err := r.DB.Where("assessment_id IN ?", assessmentIDs).Find(&ss).Error
	return ss, err
}

func (r *SubmissionRepository) ListResponses(submissionID string) ([]model.Response, error) {
	var rs []model.Response
	err := r.DB.Where("submission_id = ?", submissionID).Find(&rs).Error
	return rs, err
}
