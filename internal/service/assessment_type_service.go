package service

import (
	"fmt"
	"traininghub_backend/internal/model"
	"traininghub_backend/internal/repository"
)

type AssessmentTypeService struct {
	Repo *repository.AssessmentTypeRepository
}

func NewAssessmentTypeService(repo *repository.AssessmentTypeRepository) *AssessmentTypeService {
	return &AssessmentTypeService{Repo: repo}
}

type AssessmentTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	IsMandatory  bool   `json:"isMandatory"`
	PassingScore int    `json:"passingScore"`
}

func validatePassingScore(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("passing score must be between 0 and 100, got %d", score)
	}
	return nil
}

func (s *AssessmentTypeService) Create(companyID uint, req AssessmentTypeRequest) (*model.AssessmentType, error) {
	if err := validatePassingScore(req.PassingScore); err != nil {
		return nil, err
	}

	t := &model.AssessmentType{
		CompanyID:    companyID,
		Name:         req.Name,
		Description:  req.Description,
		IsMandatory:  req.IsMandatory,
		PassingScore: req.PassingScore,
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *AssessmentTypeService) Get(id uint) (*model.AssessmentType, error) {
	return s.Repo.FindByID(id)
}

func (s *AssessmentTypeService) ListByCompany(companyID uint) ([]model.AssessmentType, error) {
	return s.Repo.ListByCompany(companyID)
}

func (s *AssessmentTypeService) Update(id uint, req AssessmentTypeRequest) (*model.AssessmentType, error) {
	if err := validatePassingScore(req.PassingScore); err != nil {
		return nil, err
	}

	t, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	t.Name = req.Name
	t.Description = req.Description
	t.IsMandatory = req.IsMandatory
	t.PassingScore = req.PassingScore
	if err := s.Repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *AssessmentTypeService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
