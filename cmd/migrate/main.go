package main

import (
	"log"

	"gopherit/internal/config"
	"gopherit/internal/store"
)

// Brings the schema up to date and seeds starter subreddits. The transport
// layer that mounts the core is a separate deployable; this binary only
// prepares the store it talks to.
func main() {
	cfg := config.Load()

	db, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := store.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if err := store.SeedSubreddits(db); err != nil {
		log.Fatalf("Failed to seed subreddits: %v", err)
	}
}
