package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"traininghub_backend/internal/grading"
	"traininghub_backend/internal/model"
	"traininghub_backend/internal/repository"
	"traininghub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type StatisticsService struct {
	AssessmentRepo *repository.AssessmentRepository
	SubmissionRepo *repository.SubmissionRepository
	TypeRepo       *repository.AssessmentTypeRepository
	UserRepo       *repository.UserRepository
	Redis          *redis.Client
	CacheTTL       time.Duration
}

func NewStatisticsService(
	assessmentRepo *repository.AssessmentRepository,
	submissionRepo *repository.SubmissionRepository,
	typeRepo *repository.AssessmentTypeRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *StatisticsService {
	return &StatisticsService{
		AssessmentRepo: assessmentRepo,
		SubmissionRepo: submissionRepo,
		TypeRepo:       typeRepo,
		UserRepo:       userRepo,
		Redis:          rdb,
		CacheTTL:       cacheTTL,
	}
}

func statsCacheKey(companyID uint) string {
	return fmt.Sprintf("stats:company:%d", companyID)
}

// CompanyStatistics aggregates completion and pass statistics over a
// company's active assessments. Fail-closed: any load error yields no
// statistics at all, since a partially computed compliance report would be
// misleading. Results are cached in redis until the TTL expires or a new
// submission invalidates them.
func (s *StatisticsService) CompanyStatistics(companyID uint) (*grading.CompanyStats, error) {
	ctx := context.Background()

	if cached, err := s.Redis.Get(ctx, statsCacheKey(companyID)).Result(); err == nil {
		var stats grading.CompanyStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		// Unreadable cache entry, fall through to a fresh computation.
		s.Redis.Del(ctx, statsCacheKey(companyID))
	}

	assessments, err := s.AssessmentRepo.ListAllActive(companyID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(assessments))
	for i, a := range assessments {
		ids[i] = a.ID
	}

	submissions, err := s.SubmissionRepo.ListByAssessments(ids)
	if err != nil {
		return nil, err
	}
	byAssessment := make(map[uint][]model.Submission)
	for _, sub := range submissions {
		byAssessment[sub.AssessmentID] = append(byAssessment[sub.AssessmentID], sub)
	}

	roster, err := s.UserRepo.ListActiveByCompany(companyID, nil)
	if err != nil {
		return nil, err
	}

	cohorts := make([]grading.AssessmentCohort, 0, len(assessments))
	for _, a := range assessments {
		cohorts = append(cohorts, grading.AssessmentCohort{
			Assessment:  a,
			IsMandatory: s.isMandatory(a),
			Submissions: byAssessment[a.ID],
		})
	}

	stats := grading.ComputeCompanyStats(cohorts, roster)

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.Redis.Set(ctx, statsCacheKey(companyID), encoded, s.CacheTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache statistics", zap.Uint("companyId", companyID), zap.Error(err))
		}
	}

	return &stats, nil
}

// isMandatory reads the mandatory flag off the preloaded type, loading it
// when the preload is missing. An unavailable type is treated as optional so
// the overall rate never counts a population it cannot verify.
func (s *StatisticsService) isMandatory(a model.Assessment) bool {
	if a.AssessmentType != nil {
		return a.AssessmentType.IsMandatory
	}
	t, err := s.TypeRepo.FindByID(a.AssessmentTypeID)
	if err != nil {
		return false
	}
	return t.IsMandatory
}

// InvalidateCompany drops the cached statistics after a new submission.
func (s *StatisticsService) InvalidateCompany(companyID uint) {
	if err := s.Redis.Del(context.Background(), statsCacheKey(companyID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate statistics cache", zap.Uint("companyId", companyID), zap.Error(err))
	}
}
