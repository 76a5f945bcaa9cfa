package model

const (
	// SubmissionSubmitted means the attempt is stored but final evaluation is
	// still pending manual review of free-text answers.
	SubmissionSubmitted = "submitted"
	// SubmissionEvaluated means every question was auto-gradable and the
	// stored score is final.
	SubmissionEvaluated = "evaluated"
)

// swagger:model Submission
type Submission struct {
	UUIDBase
	AssessmentID   uint   `gorm:"index;type:bigint unsigned" json:"assessmentId"`
	EmployeeID     uint   `gorm:"index;type:bigint unsigned" json:"employeeId"`
	Employee       *User  `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Status         string `gorm:"size:20;default:'submitted'" json:"status"`
	Score          *int   `json:"score,omitempty"`  // Percentage, nil until graded
	Passed         *bool  `json:"passed,omitempty"` // nil until graded
	CompletionTime int    `gorm:"default:0" json:"completionTime"` // Seconds
}

func (Submission) TableName() string {
	return "assessment_submissions"
}

// swagger:model Response
type Response struct {
	UUIDBase
	SubmissionID string `gorm:"index;type:varchar(36)" json:"submissionId"`
	QuestionID   uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	Response     string `gorm:"type:text" json:"response"`
	IsCorrect    *bool  `json:"isCorrect"` // nil for free-text and unknown questions
	PointsEarned int    `gorm:"default:0" json:"pointsEarned"`
	ResponseTime int    `gorm:"default:0" json:"responseTime"` // Seconds
}

func (Response) TableName() string {
	return "assessment_responses"
}

// SubmittedAnswer is one raw answer in a submit request.
type SubmittedAnswer struct {
	QuestionID uint   `json:"questionId"`
	Response   string `json:"response"`
	TimeSpent  int    `json:"timeSpent"` // Seconds
}
