package main

import (
	"database/sql"
	"flag"
	"log"

	"domus-api/internal/config"
	"domus-api/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Standalone migration runner for deploy pipelines, where migrations run
// before the API process starts.
func main() {
	_ = godotenv.Load()

	status := flag.Bool("status", false, "print the current migration version and exit")
	seed := flag.Bool("seed", false, "load seed data after migrating")
	flag.Parse()

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("database readiness check failed: %v", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("failed to get migration status: %v", err)
		}
		log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migration execution failed: %v", err)
	}

	if *seed {
		if err := runner.LoadSeeds(); err != nil {
			log.Fatalf("seed data loading failed: %v", err)
		}
	}
}
