package grading

import (
	"testing"
	"traininghub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func employee(id uint, departmentID *uint) model.User {
	u := model.User{DepartmentID: departmentID, Active: true}
	u.ID = id
	return u
}

func assessment(id uint, departmentID *uint) model.Assessment {
	a := model.Assessment{DepartmentID: departmentID, Title: "t", IsActive: true}
	a.ID = id
	return a
}

func submission(employeeID uint, score int, passed bool) model.Submission {
	return model.Submission{
		EmployeeID: employeeID,
		Score:      intPtr(score),
		Passed:     boolPtr(passed),
	}
}

func TestComputeCompanyStatsAllDepartments(t *testing.T) {
	roster := make([]model.User, 0, 10)
	for i := uint(1); i <= 10; i++ {
		roster = append(roster, employee(i, nil))
	}

	// 4 distinct employees submitted, one of them twice.
	cohorts := []AssessmentCohort{{
		Assessment:  assessment(1, nil),
		IsMandatory: true,
		Submissions: []model.Submission{
			submission(1, 80, true),
			submission(1, 90, true),
			submission(2, 60, false),
			submission(3, 75, true),
			submission(4, 40, false),
		},
	}}

	stats := ComputeCompanyStats(cohorts, roster)
	require.Len(t, stats.Assessments, 1)

	s := stats.Assessments[0]
	assert.Equal(t, 10, s.TargetCount)
	assert.Equal(t, 4, s.SubmittedCount)
	assert.Equal(t, 40, s.CompletionRate)
	assert.Equal(t, 40, stats.OverallCompletionRate)

	// Employee 1 passed twice but counts once.
	assert.Equal(t, 2, s.PassedCount)
	assert.Equal(t, 50, s.PassRate)

	// mean(80, 90, 60, 75, 40) = 69
	assert.Equal(t, 69, s.AverageScore)
}

func TestComputeCompanyStatsDepartmentTargeting(t *testing.T) {
	roster := []model.User{
		employee(1, uintPtr(7)),
		employee(2, uintPtr(7)),
		employee(3, uintPtr(8)),
		employee(4, nil), // no department, only targeted by all-department assessments
	}

	cohorts := []AssessmentCohort{{
		Assessment:  assessment(1, uintPtr(7)),
		Submissions: []model.Submission{submission(1, 100, true)},
	}}

	stats := ComputeCompanyStats(cohorts, roster)
	s := stats.Assessments[0]
	assert.Equal(t, 2, s.TargetCount)
	assert.Equal(t, 1, s.SubmittedCount)
	assert.Equal(t, 50, s.CompletionRate)
}

func TestComputeCompanyStatsZeroDenominators(t *testing.T) {
	// Empty department target, no submissions anywhere.
	cohorts := []AssessmentCohort{{
		Assessment:  assessment(1, uintPtr(42)),
		IsMandatory: true,
	}}

	stats := ComputeCompanyStats(cohorts, []model.User{employee(1, uintPtr(7))})
	s := stats.Assessments[0]
	assert.Equal(t, 0, s.TargetCount)
	assert.Equal(t, 0, s.CompletionRate)
	assert.Equal(t, 0, s.PassRate)
	assert.Equal(t, 0, s.AverageScore)
	assert.Equal(t, 0, stats.OverallCompletionRate)
}

func TestComputeCompanyStatsEmptyInputs(t *testing.T) {
	stats := ComputeCompanyStats(nil, nil)
	assert.Empty(t, stats.Assessments)
	assert.Equal(t, 0, stats.OverallCompletionRate)
}

func TestComputeCompanyStatsOverallRestrictedToMandatory(t *testing.T) {
	roster := []model.User{employee(1, nil), employee(2, nil)}

	cohorts := []AssessmentCohort{
		{
			Assessment:  assessment(1, nil),
			IsMandatory: true,
			Submissions: []model.Submission{submission(1, 90, true)},
		},
		{
			// Fully completed but optional, must not lift the overall rate.
			Assessment:  assessment(2, nil),
			IsMandatory: false,
			Submissions: []model.Submission{submission(1, 90, true), submission(2, 90, true)},
		},
	}

	stats := ComputeCompanyStats(cohorts, roster)
	assert.Equal(t, 50, stats.OverallCompletionRate)
}

func TestComputeCompanyStatsUngradedSubmissionCounts(t *testing.T) {
	roster := []model.User{employee(1, nil), employee(2, nil)}

	// Submission stuck before grading: no score, no pass flag. It still
	// counts toward completion but not toward pass rate or average.
	cohorts := []AssessmentCohort{{
		Assessment:  assessment(1, nil),
		Submissions: []model.Submission{{EmployeeID: 1}},
	}}

	stats := ComputeCompanyStats(cohorts, roster)
	s := stats.Assessments[0]
	assert.Equal(t, 1, s.SubmittedCount)
	assert.Equal(t, 50, s.CompletionRate)
	assert.Equal(t, 0, s.PassedCount)
	assert.Equal(t, 0, s.PassRate)
	assert.Equal(t, 0, s.AverageScore)
}

func TestComputeCompanyStatsIgnoresDepartedSubmitters(t *testing.T) {
	// Employee 99 submitted and passed, then left the active roster;
	// employee 3 submitted, then moved to another department. Neither may
	// push a rate past 100 or leak into the counts.
	roster := []model.User{
		employee(1, uintPtr(7)),
		employee(2, uintPtr(7)),
		employee(3, uintPtr(8)),
	}

	cohorts := []AssessmentCohort{{
		Assessment:  assessment(1, uintPtr(7)),
		IsMandatory: true,
		Submissions: []model.Submission{
			submission(1, 80, true),
			submission(3, 90, true),
			submission(99, 100, true),
		},
	}}

	stats := ComputeCompanyStats(cohorts, roster)
	s := stats.Assessments[0]
	assert.Equal(t, 2, s.TargetCount)
	assert.Equal(t, 1, s.SubmittedCount)
	assert.Equal(t, 50, s.CompletionRate)
	assert.Equal(t, 1, s.PassedCount)
	assert.Equal(t, 100, s.PassRate)
	assert.Equal(t, 80, s.AverageScore)
	assert.Equal(t, 50, stats.OverallCompletionRate)
}

func TestRatesAlwaysBounded(t *testing.T) {
	roster := []model.User{employee(1, nil), employee(2, nil)}

	cohorts := []AssessmentCohort{{
		Assessment:  assessment(1, nil),
		IsMandatory: true,
		Submissions: []model.Submission{
			submission(1, 100, true),
			submission(2, 100, true),
		},
	}}

	stats := ComputeCompanyStats(cohorts, roster)
	s := stats.Assessments[0]
	for _, rate := range []int{s.CompletionRate, s.PassRate, stats.OverallCompletionRate} {
		assert.GreaterOrEqual(t, rate, 0)
		assert.LessOrEqual(t, rate, 100)
	}
	assert.Equal(t, 100, s.CompletionRate)
	assert.Equal(t, 100, s.PassRate)
}
