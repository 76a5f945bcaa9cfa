// Package grading implements the assessment scoring rules: per-response
// grading against stored answer keys, score aggregation with pass/fail
// determination, and cohort completion statistics. Everything here is a pure
// function over already-loaded rows; persistence stays in the repositories.
package grading

import (
	"math"
	"traininghub_backend/internal/model"
)

// DefaultPassingScore is the threshold applied when the assessment type
// carrying the real threshold cannot be loaded. Falling back keeps a score
// available instead of failing the whole submission.
const DefaultPassingScore = 70

// GradedResponse is the grading outcome for a single answer.
type GradedResponse struct {
	QuestionID   uint
	Response     string
	IsCorrect    *bool // nil: free-text or unknown question, needs manual review
	PointsEarned int
	ResponseTime int
}

// GradeResponses scores raw answers against the assessment's question set.
// Choice questions are exact string matches against the stored answer key.
// Free-text questions are never auto-graded: IsCorrect stays nil and they
// earn nothing here. Answers referencing unknown questions are kept but left
// ungraded rather than rejected (lenient-read policy). Duplicate question ids
// in the input are each scored independently.
func GradeResponses(answers []model.SubmittedAnswer, questions []model.Question) []GradedResponse {
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	graded := make([]GradedResponse, 0, len(answers))
	for _, ans := range answers {
		gr := GradedResponse{
			QuestionID:   ans.QuestionID,
			Response:     ans.Response,
			ResponseTime: ans.TimeSpent,
		}

		q, ok := byID[ans.QuestionID]
		if ok && q.QuestionType.Gradable() {
			correct := q.CorrectAnswer != nil && ans.Response == *q.CorrectAnswer
			gr.IsCorrect = &correct
			if correct {
				gr.PointsEarned = q.Points
			}
		}

		graded = append(graded, gr)
	}
	return graded
}

// ScoreResult is the aggregate outcome of one submission.
type ScoreResult struct {
	Score  int // Percentage over the gradable subset, always in [0,100]
	Passed bool
	Status string // SubmissionEvaluated when every question is gradable
}

// AggregateScore computes the submission score over the gradable subset of
// the question set and compares it to the passing threshold.
//
// Each question contributes to the earned sum at most once: when the input
// carries duplicate question ids, only the first response counts, so
// repeating a correct answer cannot push the score past 100. The per-response
// grading output keeps every duplicate for persistence.
//
// A submission only reaches SubmissionEvaluated when the assessment contains
// no free-text questions; otherwise the numeric score is already final for
// the gradable subset but the status stays SubmissionSubmitted until manual
// review. With no gradable points the score is defined as 0, so such a
// submission passes only under a zero threshold.
func AggregateScore(responses []GradedResponse, questions []model.Question, passingScore int) ScoreResult {
	gradablePoints := 0
	gradableCount := 0
	for _, q := range questions {
		if q.QuestionType.Gradable() {
			gradablePoints += q.Points
			gradableCount++
		}
	}

	earned := 0
	counted := make(map[uint]bool, len(responses))
	for _, r := range responses {
		if counted[r.QuestionID] {
			continue
		}
		counted[r.QuestionID] = true
		earned += r.PointsEarned
	}

	score := 0
	if gradablePoints > 0 {
		score = int(math.Round(100 * float64(earned) / float64(gradablePoints)))
	}

	status := model.SubmissionSubmitted
	if gradableCount == len(questions) {
		status = model.SubmissionEvaluated
	}

	return ScoreResult{
		Score:  score,
		Passed: score >= passingScore,
		Status: status,
	}
}
