package database

import (
	"fmt"
	"log"
	"traininghub_backend/internal/config"
	"traininghub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Company{},
		&model.Department{},
		&model.User{},
		&model.AssessmentType{},
		&model.Assessment{},
		&model.Question{},
		&model.Submission{},
		&model.Response{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	// Seed a default tenant so a fresh install has somewhere to hang the
	// first admin account.
	var count int64
	db.Model(&model.Company{}).Count(&count)
	if count == 0 {
		db.Create(&model.Company{
			Name:   "TrainingHub",
			Domain: "traininghub.local",
			Active: true,
		})
	}

	return nil
}
