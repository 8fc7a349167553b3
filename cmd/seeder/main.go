package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/foxxcyber/billscan/internal/config"
	"github.com/foxxcyber/billscan/internal/database"
	"github.com/foxxcyber/billscan/internal/models"
)

func main() {
	// Load .env
	godotenv.Load()

	fs := ff.NewFlagSet("seeder")
	var (
		dryRun   = fs.BoolLong("dry-run", "Preview changes without writing to database")
		typeFlag = fs.StringLong("type", "all", "Taxonomy to seed: expense, income or all")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("BILLSCAN_SEEDER")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	types, err := seedTypes(*typeFlag)
	if err != nil {
		log.Fatalf("Invalid --type: %v", err)
	}

	if *dryRun {
		for _, t := range types {
			for i, name := range models.CategoriesFor(t) {
				log.Printf("[dry-run] %s %d: %s", t, i+1, name)
			}
		}
		return
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	for _, t := range types {
		names := models.CategoriesFor(t)
		if err := db.UpsertCategories(ctx, t, names); err != nil {
			log.Fatalf("Failed to seed %s categories: %v", t, err)
		}
		log.Printf("Seeded %d %s categories", len(names), t)
	}
}

func seedTypes(s string) ([]models.TransactionType, error) {
	switch s {
	case "all":
		return []models.TransactionType{models.TransactionExpense, models.TransactionIncome}, nil
	case string(models.TransactionExpense):
		return []models.TransactionType{models.TransactionExpense}, nil
	case string(models.TransactionIncome):
		return []models.TransactionType{models.TransactionIncome}, nil
	}
	return nil, fmt.Errorf("unknown transaction type %q", s)
}
