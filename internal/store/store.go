package store

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gopherit/internal/config"
	"gopherit/internal/models"
)

// Open connects to Postgres with the configured DSN. TranslateError makes
// unique and foreign key violations surface as gorm sentinel errors, which
// the repository maps to domain errors.
func Open(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the schema for every entity the core owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Subreddit{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		&models.CommentVote{},
		&models.Session{},
		&models.PasswordResetToken{},
	)
}

// SeedSubreddits creates a starter set of subreddits when the table is empty.
func SeedSubreddits(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Subreddit{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Subreddits already seeded, skipping")
		return nil
	}

	subreddits := []models.Subreddit{
		{Name: "programming", Description: "Languages, tooling and **software** in general"},
		{Name: "golang", Description: "Everything about the Go programming language"},
		{Name: "news", Description: "What is happening around the world"},
		{Name: "funny", Description: "Things that make you laugh :joy:"},
	}

	for _, subreddit := range subreddits {
		if err := db.Create(&subreddit).Error; err != nil {
			log.Printf("Failed to create subreddit %s: %v", subreddit.Name, err)
		}
	}
	log.Println("Initial subreddits created successfully")
	return nil
}
