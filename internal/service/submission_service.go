package service

import (
	"errors"
	"traininghub_backend/internal/grading"
	"traininghub_backend/internal/model"
	"traininghub_backend/internal/repository"
	"traininghub_backend/internal/util"
	"traininghub_backend/pkg/logger"
	"traininghub_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	AssessmentRepo *repository.AssessmentRepository
	TypeRepo       *repository.AssessmentTypeRepository
	Stats          *StatisticsService
	DB             *gorm.DB
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assessmentRepo *repository.AssessmentRepository,
	typeRepo *repository.AssessmentTypeRepository,
	stats *StatisticsService,
	db *gorm.DB,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		AssessmentRepo: assessmentRepo,
		TypeRepo:       typeRepo,
		Stats:          stats,
		DB:             db,
	}
}

type SubmitRequest struct {
	Answers        []model.SubmittedAnswer `json:"answers"`
	CompletionTime int                     `json:"completionTime"` // Seconds
}

// SubmitAssessment grades an employee's answers and persists the attempt.
// The submission row, its responses, and the graded score are written in one
// transaction, so a failed write leaves no half-stored attempt behind. One
// submission per (assessment, employee) pair: a second attempt is rejected
// up front and again inside the transaction to close the check-then-insert
// race.
func (s *SubmissionService) SubmitAssessment(employee *model.User, assessmentID uint, req SubmitRequest) (*model.Submission, error) {
	assessment, err := s.AssessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, util.ErrAssessmentNotFound
	}
	if !assessment.IsActive {
		return nil, util.ErrAssessmentInactive
	}

	if _, err := s.SubmissionRepo.FindByAssessmentAndEmployee(assessmentID, employee.ID); err == nil {
		return nil, util.ErrAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	questions, err := s.AssessmentRepo.ListQuestions(assessmentID)
	if err != nil {
		return nil, err
	}

	passingScore := s.passingScore(assessment)

	graded := grading.GradeResponses(req.Answers, questions)
	result := grading.AggregateScore(graded, questions, passingScore)

	submission := &model.Submission{
		AssessmentID:   assessmentID,
		EmployeeID:     employee.ID,
		Status:         model.SubmissionSubmitted,
		CompletionTime: req.CompletionTime,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Submission
		err := tx.Where("assessment_id = ? AND employee_id = ?", assessmentID, employee.ID).First(&existing).Error
		if err == nil {
			return util.ErrAlreadySubmitted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		if len(graded) > 0 {
			responses := make([]model.Response, len(graded))
			for i, g := range graded {
				responses[i] = model.Response{
					SubmissionID: submission.ID,
					QuestionID:   g.QuestionID,
					Response:     g.Response,
					IsCorrect:    g.IsCorrect,
					PointsEarned: g.PointsEarned,
					ResponseTime: g.ResponseTime,
				}
			}
			if err := tx.Create(&responses).Error; err != nil {
				return err
			}
		}

		return tx.Model(submission).Updates(map[string]interface{}{
			"status": result.Status,
			"score":  result.Score,
			"passed": result.Passed,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	submission.Status = result.Status
	submission.Score = &result.Score
	submission.Passed = &result.Passed

	monitoring.RecordGrading(result.Status, result.Passed)
	s.Stats.InvalidateCompany(assessment.CompanyID)

	logger.Log.Info("submission graded",
		zap.Uint("assessmentId", assessmentID),
		zap.Uint("employeeId", employee.ID),
		zap.Int("score", result.Score),
		zap.Bool("passed", result.Passed),
		zap.String("status", result.Status),
	)

	return submission, nil
}

// passingScore resolves the threshold from the assessment type, falling back
// to the documented default when the type row cannot be loaded. A missing
// threshold must not make the score unavailable.
func (s *SubmissionService) passingScore(assessment *model.Assessment) int {
	if assessment.AssessmentType != nil {
		return assessment.AssessmentType.PassingScore
	}

	t, err := s.TypeRepo.FindByID(assessment.AssessmentTypeID)
	if err != nil {
		logger.Log.Warn("passing score unavailable, using default",
			zap.Uint("assessmentId", assessment.ID),
			zap.Int("default", grading.DefaultPassingScore),
			zap.Error(err),
		)
		return grading.DefaultPassingScore
	}
	return t.PassingScore
}

type SubmissionDetail struct {
	Submission *model.Submission `json:"submission"`
	Responses  []model.Response  `json:"responses"`
}

func (s *SubmissionService) GetSubmissionDetail(id string) (*SubmissionDetail, error) {
	submission, err := s.SubmissionRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrSubmissionNotFound
	}

	responses, err := s.SubmissionRepo.ListResponses(id)
	if err != nil {
		return nil, err
	}

	return &SubmissionDetail{
		Submission: submission,
		Responses:  responses,
	}, nil
}

func (s *SubmissionService) ListByAssessment(assessmentID uint, page, limit int) ([]model.Submission, int64, error) {
	return s.SubmissionRepo.ListByAssessment(assessmentID, page, limit)
}

func (s *SubmissionService) ListMine(employeeID uint) ([]model.Submission, error) {
	return s.SubmissionRepo.ListByEmployee(employeeID)
}

// GetResult returns the employee's own graded outcome for one assessment,
// or a "not submitted" marker when there is no attempt yet.
type SubmissionResult struct {
	HasSubmitted bool   `json:"hasSubmitted"`
	Status       string `json:"status,omitempty"`
	Score        *int   `json:"score,omitempty"`
	Passed       *bool  `json:"passed,omitempty"`
}

func (s *SubmissionService) GetResult(assessmentID, employeeID uint) (*SubmissionResult, error) {
	submission, err := s.SubmissionRepo.FindByAssessmentAndEmployee(assessmentID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SubmissionResult{HasSubmitted: false}, nil
		}
		return nil, err
	}

	return &SubmissionResult{
		HasSubmitted: true,
		Status:       submission.Status,
		Score:        submission.Score,
		Passed:       submission.Passed,
	}, nil
}
