package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/db"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"github.com/pressly/goose/v3"
)

const usage = "Usage: migrate [up|down|status|reset|version|create <name>]"

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	command := os.Args[1]

	// create writes a new Go migration into the source tree and needs no database
	if command == "create" {
		if len(os.Args) < 3 {
			log.Fatal("Usage: migrate create <name>")
		}
		createMigration(os.Args[2])
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.PostgresEnabled() {
		log.Fatal("POSTGRES_HOST is not set, nothing to migrate")
	}

	ctx := context.Background()
	pg, err := db.NewConnect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pg.Close()

	if err := db.Prepare(); err != nil {
		log.Fatalf("Failed to prepare goose: %v", err)
	}

	switch command {
	case "up":
		if err := goose.UpContext(ctx, pg.DB(), "."); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, pg.DB(), "."); err != nil {
			log.Fatalf("Failed to rollback migration: %v", err)
		}
		fmt.Println("Migration rollback successful")
	case "status":
		if err := goose.StatusContext(ctx, pg.DB(), "."); err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}
	case "reset":
		if err := goose.ResetContext(ctx, pg.DB(), "."); err != nil {
			log.Fatalf("Failed to reset migrations: %v", err)
		}
		fmt.Println("All migrations have been rolled back")
	case "version":
		if err := goose.VersionContext(ctx, pg.DB(), "."); err != nil {
			log.Fatalf("Failed to get migration version: %v", err)
		}
	default:
		log.Fatalf("Unknown command: %s\n%s", command, usage)
	}
}

func createMigration(name string) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to get working directory: %v", err)
	}

	migrationsDir := filepath.Join(wd, "internal", "migrations")
	fmt.Printf("Creating migration in: %s\n", migrationsDir)

	if err := goose.Create(nil, migrationsDir, name, "go"); err != nil {
		log.Fatalf("Failed to create migration: %v", err)
	}
}
