package main

import (
	"encoding/json"
	"fmt"
	"os"

	"stone-ledger-backend/internal/config"
	"stone-ledger-backend/internal/database"
	"stone-ledger-backend/internal/diagnostics"
	"stone-ledger-backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// bridgecheck prints a JSON snapshot of the entry-type/material bridge table,
// for verifying seeded data and debugging missing mappings.
func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("Bridge check failed")
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}
	defer sqlDB.Close()

	reporter := diagnostics.NewReporter(
		repository.NewEntryTypeMaterialRepository(db),
		repository.NewMaterialRateRepository(db),
	)

	report, err := reporter.Report()
	if err != nil {
		return fmt.Errorf("build bridge report: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode bridge report: %w", err)
	}
	return nil
}
