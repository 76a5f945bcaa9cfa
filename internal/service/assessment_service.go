package service

import (
	"encoding/json"
	"fmt"
	"time"
	"traininghub_backend/internal/model"
	"traininghub_backend/internal/repository"
	"traininghub_backend/internal/util"
)

type AssessmentService struct {
	Repo *repository.AssessmentRepository
}

func NewAssessmentService(repo *repository.AssessmentRepository) *AssessmentService {
	return &AssessmentService{Repo: repo}
}

type AssessmentRequest struct {
	AssessmentTypeID uint       `json:"assessmentTypeId" binding:"required"`
	DepartmentID     *uint      `json:"departmentId"` // nil targets all departments
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	DueDate          *time.Time `json:"dueDate"`
	TimeLimit        int        `json:"timeLimit"`
}

func (s *AssessmentService) Create(companyID uint, req AssessmentRequest) (*model.Assessment, error) {
	a := &model.Assessment{
		AssessmentTypeID: req.AssessmentTypeID,
		CompanyID:        companyID,
		DepartmentID:     req.DepartmentID,
		Title:            req.Title,
		Description:      req.Description,
		DueDate:          req.DueDate,
		TimeLimit:        req.TimeLimit,
		IsActive:         true,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) Get(id uint) (*model.Assessment, error) {
	return s.Repo.FindByID(id)
}

func (s *AssessmentService) ListByCompany(companyID uint, activeOnly bool, page, limit int) ([]model.Assessment, int64, error) {
	return s.Repo.ListByCompany(companyID, activeOnly, page, limit)
}

func (s *AssessmentService) ListForEmployee(companyID uint, departmentID *uint) ([]model.Assessment, error) {
	return s.Repo.ListActiveForEmployee(companyID, departmentID)
}

func (s *AssessmentService) Update(id uint, req AssessmentRequest) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	a.AssessmentTypeID = req.AssessmentTypeID
	a.DepartmentID = req.DepartmentID
	a.Title = req.Title
	a.Description = req.Description
	a.DueDate = req.DueDate
	a.TimeLimit = req.TimeLimit
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Deactivate takes the assessment out of every listing and the statistics
// without deleting it: submitted history stays intact.
func (s *AssessmentService) Deactivate(id uint) (*model.Assessment, error) {
	a, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	a.IsActive = false
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

type QuestionRequest struct {
	QuestionText  string             `json:"questionText" binding:"required"`
	QuestionType  model.QuestionType `json:"questionType" binding:"required"`
	Options       json.RawMessage    `json:"options"`
	CorrectAnswer *string            `json:"correctAnswer"`
	Points        int                `json:"points"`
	Position      int                `json:"position"`
}

func (s *AssessmentService) validateQuestion(assessmentID uint, req QuestionRequest, excludeID uint) error {
	switch req.QuestionType {
	case model.SingleChoice, model.MultipleChoice, model.TextQuestion:
	default:
		return fmt.Errorf("unknown question type %q", req.QuestionType)
	}

	if req.Points < 1 {
		return fmt.Errorf("points must be at least 1, got %d", req.Points)
	}

	if req.QuestionType.Gradable() && (req.CorrectAnswer == nil || *req.CorrectAnswer == "") {
		return fmt.Errorf("%s questions require a correct answer", req.QuestionType)
	}

	taken, err := s.Repo.CountQuestionAtPosition(assessmentID, req.Position, excludeID)
	if err != nil {
		return err
	}
	if taken > 0 {
		return util.ErrPositionTaken
	}
	return nil
}

func (s *AssessmentService) CreateQuestion(assessmentID uint, req QuestionRequest) (*model.Question, error) {
	if _, err := s.Repo.FindByID(assessmentID); err != nil {
		return nil, util.ErrAssessmentNotFound
	}

	if err := s.validateQuestion(assessmentID, req, 0); err != nil {
		return nil, err
	}

	correctAnswer := req.CorrectAnswer
	if !req.QuestionType.Gradable() {
		correctAnswer = nil
	}

	q := &model.Question{
		AssessmentID:  assessmentID,
		QuestionText:  req.QuestionText,
		QuestionType:  req.QuestionType,
		Options:       req.Options,
		CorrectAnswer: correctAnswer,
		Points:        req.Points,
		Position:      req.Position,
	}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) ListQuestions(assessmentID uint) ([]model.Question, error) {
	return s.Repo.ListQuestions(assessmentID)
}

// EmployeeQuestion is the employee-facing question view with the answer key
// stripped.
type EmployeeQuestion struct {
	ID           uint               `json:"id"`
	QuestionText string             `json:"questionText"`
	QuestionType model.QuestionType `json:"questionType"`
	Options      json.RawMessage    `json:"options,omitempty"`
	Points       int                `json:"points"`
	Position     int                `json:"position"`
}

func (s *AssessmentService) ListQuestionsForEmployee(assessmentID uint) ([]EmployeeQuestion, error) {
	a, err := s.Repo.FindByID(assessmentID)
	if err != nil {
		return nil, util.ErrAssessmentNotFound
	}
	if !a.IsActive {
		return nil, util.ErrAssessmentInactive
	}

	qs, err := s.Repo.ListQuestions(assessmentID)
	if err != nil {
		return nil, err
	}

	res := make([]EmployeeQuestion, len(qs))
	for i, q := range qs {
		res[i] = EmployeeQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Options:      q.Options,
			Points:       q.Points,
			Position:     q.Position,
		}
	}
	return res, nil
}

func (s *AssessmentService) UpdateQuestion(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Repo.FindQuestionByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validateQuestion(q.AssessmentID, req, q.ID); err != nil {
		return nil, err
	}

	correctAnswer := req.CorrectAnswer
	if !req.QuestionType.Gradable() {
		correctAnswer = nil
	}

	q.QuestionText = req.QuestionText
	q.QuestionType = req.QuestionType
	q.Options = req.Options
	q.CorrectAnswer = correctAnswer
	q.Points = req.Points
	q.Position = req.Position
	if err := s.Repo.UpdateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *AssessmentService) DeleteQuestion(id uint) error {
	return s.Repo.DeleteQuestion(id)
}
