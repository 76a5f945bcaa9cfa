package model

import "encoding/json"

type QuestionType string

const (
	SingleChoice   QuestionType = "single_choice"
	MultipleChoice QuestionType = "multiple_choice"
	TextQuestion   QuestionType = "text"
)

// Gradable reports whether the question can be auto-graded. Free-text
// questions always require manual review.
func (t QuestionType) Gradable() bool {
	return t != TextQuestion
}

// swagger:model Question
type Question struct {
	BaseModel
	AssessmentID  uint            `gorm:"index;type:bigint unsigned" json:"assessmentId"`
	QuestionText  string          `gorm:"type:text;not null" json:"questionText"`
	QuestionType  QuestionType    `gorm:"size:50;not null" json:"questionType"`
	Options       json.RawMessage `gorm:"type:json" json:"options,omitempty"` // JSON array of option labels
	CorrectAnswer *string         `gorm:"type:text" json:"correctAnswer,omitempty"` // nil for free-text questions; stripped from the employee view
	Points        int             `gorm:"default:1" json:"points"`
	Position      int             `gorm:"default:0" json:"position"` // Unique within an assessment
}

func (Question) TableName() string {
	return "assessment_questions"
}
