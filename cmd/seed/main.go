package main

import (
	"context"
	"log"

	"healthease/internal/backend"
	"healthease/internal/config"
	"healthease/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()
	log.Printf("Seeding backend at: %s", cfg.APIBaseURL)

	api := backend.New(cfg.APIBaseURL, cfg.APITimeout)
	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.APITimeout)
	defer cancel()

	result, err := service.NewSeedService(api).Seed(ctx)
	if err != nil {
		log.Fatalf("Failed to seed backend: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Doctors: %s", result.Doctors)
	log.Printf("  - Admin: %s", result.Admin)
}
