package grading

import (
	"testing"
	"traininghub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func choiceQuestion(id uint, answer string, points int) model.Question {
	q := model.Question{
		QuestionType:  model.SingleChoice,
		CorrectAnswer: strPtr(answer),
		Points:        points,
	}
	q.ID = id
	return q
}

func textQuestion(id uint, points int) model.Question {
	q := model.Question{
		QuestionType: model.TextQuestion,
		Points:       points,
	}
	q.ID = id
	return q
}

func TestGradeResponsesChoiceQuestions(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, "A", 10),
		choiceQuestion(2, "B", 20),
	}
	answers := []model.SubmittedAnswer{
		{QuestionID: 1, Response: "A", TimeSpent: 12},
		{QuestionID: 2, Response: "C", TimeSpent: 30},
	}

	graded := GradeResponses(answers, questions)
	require.Len(t, graded, 2)

	require.NotNil(t, graded[0].IsCorrect)
	assert.True(t, *graded[0].IsCorrect)
	assert.Equal(t, 10, graded[0].PointsEarned)
	assert.Equal(t, 12, graded[0].ResponseTime)

	require.NotNil(t, graded[1].IsCorrect)
	assert.False(t, *graded[1].IsCorrect)
	assert.Equal(t, 0, graded[1].PointsEarned)
}

func TestGradeResponsesTextQuestionNeverAutoGraded(t *testing.T) {
	questions := []model.Question{textQuestion(1, 15)}

	for _, response := range []string{"", "anything", "a very long essay"} {
		graded := GradeResponses([]model.SubmittedAnswer{{QuestionID: 1, Response: response}}, questions)
		require.Len(t, graded, 1)
		assert.Nil(t, graded[0].IsCorrect)
		assert.Equal(t, 0, graded[0].PointsEarned)
	}
}

func TestGradeResponsesUnknownQuestionSilentlySkipped(t *testing.T) {
	questions := []model.Question{choiceQuestion(1, "A", 10)}
	answers := []model.SubmittedAnswer{{QuestionID: 99, Response: "A"}}

	graded := GradeResponses(answers, questions)
	require.Len(t, graded, 1)
	assert.Nil(t, graded[0].IsCorrect)
	assert.Equal(t, 0, graded[0].PointsEarned)
}

func TestGradeResponsesEmptyInput(t *testing.T) {
	graded := GradeResponses(nil, []model.Question{choiceQuestion(1, "A", 10)})
	assert.Empty(t, graded)
}

func TestGradeResponsesDuplicateAnswersScoredIndependently(t *testing.T) {
	questions := []model.Question{choiceQuestion(1, "A", 10)}
	answers := []model.SubmittedAnswer{
		{QuestionID: 1, Response: "A"},
		{QuestionID: 1, Response: "B"},
	}

	graded := GradeResponses(answers, questions)
	require.Len(t, graded, 2)
	assert.Equal(t, 10, graded[0].PointsEarned)
	assert.Equal(t, 0, graded[1].PointsEarned)
}

func TestAggregateScoreAllGradable(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, "A", 10),
		choiceQuestion(2, "B", 20),
	}
	answers := []model.SubmittedAnswer{
		{QuestionID: 1, Response: "A"},
		{QuestionID: 2, Response: "C"},
	}

	result := AggregateScore(GradeResponses(answers, questions), questions, 70)

	assert.Equal(t, 33, result.Score) // round(100*10/30)
	assert.False(t, result.Passed)
	assert.Equal(t, model.SubmissionEvaluated, result.Status)
}

func TestAggregateScoreFreeTextDefersEvaluation(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, "A", 10),
		choiceQuestion(2, "B", 20),
		textQuestion(3, 15),
	}
	answers := []model.SubmittedAnswer{
		{QuestionID: 1, Response: "A"},
		{QuestionID: 2, Response: "C"},
		{QuestionID: 3, Response: "free form thoughts"},
	}

	result := AggregateScore(GradeResponses(answers, questions), questions, 70)

	// Free-text points stay out of the denominator; score is unchanged.
	assert.Equal(t, 33, result.Score)
	assert.False(t, result.Passed)
	assert.Equal(t, model.SubmissionSubmitted, result.Status)
}

func TestAggregateScoreAllTextQuestions(t *testing.T) {
	questions := []model.Question{textQuestion(1, 15), textQuestion(2, 5)}
	answers := []model.SubmittedAnswer{
		{QuestionID: 1, Response: "x"},
		{QuestionID: 2, Response: "y"},
	}

	result := AggregateScore(GradeResponses(answers, questions), questions, 70)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	assert.Equal(t, model.SubmissionSubmitted, result.Status)

	// A zero threshold is the only way an all-text assessment passes.
	result = AggregateScore(nil, questions, 0)
	assert.Equal(t, 0, result.Score)
	assert.True(t, result.Passed)
}

func TestAggregateScorePerfectAndThresholdBoundary(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, "A", 7),
		choiceQuestion(2, "B", 3),
	}

	tests := []struct {
		name    string
		answers []model.SubmittedAnswer
		score   int
		passed  bool
	}{
		{
			name: "all correct",
			answers: []model.SubmittedAnswer{
				{QuestionID: 1, Response: "A"},
				{QuestionID: 2, Response: "B"},
			},
			score:  100,
			passed: true,
		},
		{
			name: "exactly at threshold",
			answers: []model.SubmittedAnswer{
				{QuestionID: 1, Response: "A"},
			},
			score:  70,
			passed: true,
		},
		{
			name: "just under threshold",
			answers: []model.SubmittedAnswer{
				{QuestionID: 2, Response: "B"},
			},
			score:  30,
			passed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AggregateScore(GradeResponses(tt.answers, questions), questions, 70)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.passed, result.Passed)
		})
	}
}

func TestAggregateScoreDuplicateAnswersCountOnce(t *testing.T) {
	questions := []model.Question{choiceQuestion(1, "A", 10)}

	// Repeating a known-correct answer must not inflate the score.
	answers := []model.SubmittedAnswer{
		{QuestionID: 1, Response: "A"},
		{QuestionID: 1, Response: "A"},
	}
	result := AggregateScore(GradeResponses(answers, questions), questions, 70)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)

	// The first response per question is the one that counts.
	answers = []model.SubmittedAnswer{
		{QuestionID: 1, Response: "wrong"},
		{QuestionID: 1, Response: "A"},
	}
	result = AggregateScore(GradeResponses(answers, questions), questions, 70)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
}

func TestAggregateScoreBounded(t *testing.T) {
	questions := []model.Question{choiceQuestion(1, "A", 3)}

	for _, answers := range [][]model.SubmittedAnswer{
		nil,
		{{QuestionID: 1, Response: "wrong"}},
		{{QuestionID: 1, Response: "A"}},
		{{QuestionID: 1, Response: "A"}, {QuestionID: 1, Response: "A"}, {QuestionID: 1, Response: "A"}},
	} {
		result := AggregateScore(GradeResponses(answers, questions), questions, 50)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
	}
}
