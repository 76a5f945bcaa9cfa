// Seed a fresh database with a demo tenant, accounts, and one assessment.
//
// Intended for local development and first deployments only. The script is
// idempotent: it exits without writing when the demo company already exists.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"log"
	"traininghub_backend/internal/config"
	"traininghub_backend/internal/model"
	"traininghub_backend/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var count int64
	db.Model(&model.Company{}).Where("domain = ?", "demo.traininghub.local").Count(&count)
	if count > 0 {
		log.Println("Demo tenant already seeded, nothing to do")
		return
	}

	company := model.Company{Name: "Demo Corp", Domain: "demo.traininghub.local", Active: true}
	if err := db.Create(&company).Error; err != nil {
		log.Fatalf("Failed to create demo company: %v", err)
	}

	engineering := model.Department{CompanyID: company.ID, Name: "Engineering"}
	if err := db.Create(&engineering).Error; err != nil {
		log.Fatalf("Failed to create demo department: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	users := []model.User{
		{Name: "Demo Admin", Email: "admin@demo.traininghub.local", Password: string(hash), Role: model.Admin, CompanyID: &company.ID, Active: true},
		{Name: "Demo Manager", Email: "manager@demo.traininghub.local", Password: string(hash), Role: model.Business, CompanyID: &company.ID, Active: true},
		{Name: "Demo Employee", Email: "employee@demo.traininghub.local", Password: string(hash), Role: model.Student, CompanyID: &company.ID, DepartmentID: &engineering.ID, JobTitle: "Engineer", Active: true},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("Failed to create demo users: %v", err)
	}

	assessmentType := model.AssessmentType{
		CompanyID:    company.ID,
		Name:         "Security Awareness",
		Description:  "Annual mandatory security training",
		IsMandatory:  true,
		PassingScore: 70,
	}
	if err := db.Create(&assessmentType).Error; err != nil {
		log.Fatalf("Failed to create demo assessment type: %v", err)
	}

	assessment := model.Assessment{
		AssessmentTypeID: assessmentType.ID,
		CompanyID:        company.ID,
		Title:            "Security Awareness 2026",
		Description:      "Covers phishing, passwords, and data handling",
		IsActive:         true,
	}
	if err := db.Create(&assessment).Error; err != nil {
		log.Fatalf("Failed to create demo assessment: %v", err)
	}

	answerA := "a"
	questions := []model.Question{
		{
			AssessmentID:  assessment.ID,
			QuestionText:  "What should you do with a suspicious email?",
			QuestionType:  model.SingleChoice,
			Options:       []byte(`["Report it","Open the attachment","Forward it to a colleague"]`),
			CorrectAnswer: &answerA,
			Points:        2,
			Position:      1,
		},
		{
			AssessmentID: assessment.ID,
			QuestionText: "Describe your team's incident escalation path.",
			QuestionType: model.TextQuestion,
			Points:       3,
			Position:     2,
		},
	}
	if err := db.Create(&questions).Error; err != nil {
		log.Fatalf("Failed to create demo questions: %v", err)
	}

	log.Println("Demo tenant seeded: log in as admin@demo.traininghub.local / demo1234")
}
