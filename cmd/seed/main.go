// Command main runs the database seeder for BrainBridge.
package main

import (
	"flag"
	"log"

	"github.com/Isaac-1-lang/BrainBridge/internal/config"
	"github.com/Isaac-1-lang/BrainBridge/internal/database"
	"github.com/Isaac-1-lang/BrainBridge/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	projectsPerUser := flag.Int("projects", 3, "Projects per user")
	commentsPerProject := flag.Int("comments", 4, "Comments per project")
	eventsPerProject := flag.Int("events", 6, "Analytics events per project")
	auxiliary := flag.Bool("auxiliary", true, "Also populate teams, tags, ideas, notifications, attachments")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d projects each\n", *numUsers, *projectsPerUser)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		Users:             *numUsers,
		ProjectsPerUser:   *projectsPerUser,
		CommentsPerProj:   *commentsPerProject,
		EventsPerProject:  *eventsPerProject,
		AuxiliaryEntities: *auxiliary,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. The database is populated with demo data.")
}
