// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"github.com/cmcummings/warechat/internal/config"
	"github.com/cmcummings/warechat/internal/database"
	"github.com/cmcummings/warechat/internal/seed"
)

func main() {
	numUsers := flag.Int("users", seed.DefaultCounts.Users, "Number of users to create")
	numForums := flag.Int("forums", seed.DefaultCounts.Forums, "Number of forums to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	counts := seed.DefaultCounts
	counts.Users = *numUsers
	counts.Forums = *numForums
	if err := s.Run(counts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
