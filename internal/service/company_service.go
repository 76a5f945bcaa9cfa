package service

import (
	"traininghub_backend/internal/model"
	"traininghub_backend/internal/repository"
)

type CompanyService struct {
	CompanyRepo *repository.CompanyRepository
	UserRepo    *repository.UserRepository
}

func NewCompanyService(companyRepo *repository.CompanyRepository, userRepo *repository.UserRepository) *CompanyService {
	return &CompanyService{
		CompanyRepo: companyRepo,
		UserRepo:    userRepo,
	}
}

type CompanyRequest struct {
	Name   string `json:"name" binding:"required"`
	Domain string `json:"domain"`
}

func (s *CompanyService) CreateCompany(req CompanyRequest) (*model.Company, error) {
	c := &model.Company{
		Name:   req.Name,
		Domain: req.Domain,
		Active: true,
	}
	if err := s.CompanyRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) GetCompany(id uint) (*model.Company, error) {
	return s.CompanyRepo.FindByID(id)
}

func (s *CompanyService) ListCompanies(page, limit int) ([]model.Company, int64, error) {
	return s.CompanyRepo.List(page, limit)
}

func (s *CompanyService) UpdateCompany(id uint, req CompanyRequest) (*model.Company, error) {
	c, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	c.Name = req.Name
	c.Domain = req.Domain
	if err := s.CompanyRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

type DepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *CompanyService) CreateDepartment(companyID uint, req DepartmentRequest) (*model.Department, error) {
	d := &model.Department{
		CompanyID: companyID,
		Name:      req.Name,
	}
	if err := s.CompanyRepo.CreateDepartment(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *CompanyService) ListDepartments(companyID uint) ([]model.Department, error) {
	return s.CompanyRepo.ListDepartments(companyID)
}

func (s *CompanyService) DeleteDepartment(id uint) error {
	return s.CompanyRepo.DeleteDepartment(id)
}

func (s *CompanyService) ListEmployees(companyID uint, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.ListByCompany(companyID, page, limit)
}

type EmployeeUpdateRequest struct {
	Role         *model.UserRole `json:"role"`
	DepartmentID *uint           `json:"departmentId"`
	JobTitle     *string         `json:"jobTitle"`
	Active       *bool           `json:"active"`
}

// UpdateEmployee applies the non-nil fields of the request. Deactivation
// removes the employee from the statistics roster without touching history.
func (s *CompanyService) UpdateEmployee(userID uint, req EmployeeUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.DepartmentID != nil {
		user.DepartmentID = req.DepartmentID
	}
	if req.JobTitle != nil {
		user.JobTitle = *req.JobTitle
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
