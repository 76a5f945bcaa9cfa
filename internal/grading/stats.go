package grading

import (
	"math"
	"traininghub_backend/internal/model"
)

// AssessmentCohort bundles one assessment with its grading policy and every
// stored submission for it, ready for statistics aggregation.
type AssessmentCohort struct {
	Assessment  model.Assessment
	IsMandatory bool
	Submissions []model.Submission
}

// AssessmentStats are the per-assessment cohort numbers.
type AssessmentStats struct {
	AssessmentID   uint   `json:"assessmentId"`
	Title          string `json:"title"`
	IsMandatory    bool   `json:"isMandatory"`
	TargetCount    int    `json:"targetCount"`
	SubmittedCount int    `json:"submittedCount"` // Distinct employees
	PassedCount    int    `json:"passedCount"`    // Distinct employees with a passing submission
	CompletionRate int    `json:"completionRate"` // Integer percentage
	PassRate       int    `json:"passRate"`
	AverageScore   int    `json:"averageScore"`
}

// CompanyStats is the full statistics object for one company.
type CompanyStats struct {
	Assessments           []AssessmentStats `json:"assessments"`
	OverallCompletionRate int               `json:"overallCompletionRate"` // Mandatory assessments only
}

// ComputeCompanyStats aggregates completion and pass statistics across a
// company's active assessments. The roster must be the company's active
// employees; an assessment with a department targets only that department's
// employees, a nil department targets the whole roster.
//
// All counting is restricted to the current target population: submissions
// from employees who have since been deactivated or moved out of the
// department are ignored, so submittedCount never exceeds targetCount. Both
// submitted and passed counts are per distinct employee, keeping every rate
// in [0,100]. Every zero denominator yields 0, never a division error.
func ComputeCompanyStats(cohorts []AssessmentCohort, roster []model.User) CompanyStats {
	stats := CompanyStats{Assessments: make([]AssessmentStats, 0, len(cohorts))}

	mandatoryTarget := 0
	mandatorySubmitted := 0

	for _, c := range cohorts {
		targets := targetSet(c.Assessment.DepartmentID, roster)
		s := AssessmentStats{
			AssessmentID: c.Assessment.ID,
			Title:        c.Assessment.Title,
			IsMandatory:  c.IsMandatory,
			TargetCount:  len(targets),
		}

		submitted := make(map[uint]bool)
		passed := make(map[uint]bool)
		scoreSum := 0
		scoreCount := 0
		for _, sub := range c.Submissions {
			if !targets[sub.EmployeeID] {
				continue
			}
			submitted[sub.EmployeeID] = true
			if sub.Passed != nil && *sub.Passed {
				passed[sub.EmployeeID] = true
			}
			if sub.Score != nil {
				scoreSum += *sub.Score
				scoreCount++
			}
		}

		s.SubmittedCount = len(submitted)
		s.PassedCount = len(passed)
		s.CompletionRate = percentage(s.SubmittedCount, s.TargetCount)
		s.PassRate = percentage(s.PassedCount, s.SubmittedCount)
		if scoreCount > 0 {
			s.AverageScore = int(math.Round(float64(scoreSum) / float64(scoreCount)))
		}

		if c.IsMandatory {
			mandatoryTarget += s.TargetCount
			mandatorySubmitted += s.SubmittedCount
		}

		stats.Assessments = append(stats.Assessments, s)
	}

	stats.OverallCompletionRate = percentage(mandatorySubmitted, mandatoryTarget)
	return stats
}

// targetSet returns the ids of the roster members an assessment targets.
func targetSet(departmentID *uint, roster []model.User) map[uint]bool {
	targets := make(map[uint]bool, len(roster))
	for _, u := range roster {
		if departmentID == nil || (u.DepartmentID != nil && *u.DepartmentID == *departmentID) {
			targets[u.ID] = true
		}
	}
	return targets
}

// percentage is round(100*n/d) with the zero denominator defined as 0.
func percentage(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}
