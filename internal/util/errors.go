package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email is already registered")
	ErrNoCompany          = errors.New("user has no company association")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAssessmentInactive = errors.New("assessment is not active")
	ErrAlreadySubmitted   = errors.New("assessment already submitted")
	ErrPositionTaken      = errors.New("question position already used in this assessment")
	ErrSubmissionNotFound = errors.New("submission not found")
)
