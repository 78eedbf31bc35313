package main

import (
	"flag"
	"os"
	"time"

	"stone-ledger-backend/internal/config"
	"stone-ledger-backend/internal/database"
	"stone-ledger-backend/internal/logger"
	"stone-ledger-backend/internal/seeder"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

func main() {
	reset := flag.Bool("reset", false, "wipe all seeded data and exit")
	fixturesPath := flag.String("fixtures", "", "path to a YAML fixtures file (defaults to built-in dataset)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	db, err := connectWithRetry(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		os.Exit(1)
	}

	log := logger.New()

	fixtures, err := seeder.LoadFixtures(*fixturesPath)
	if err != nil {
		logrus.WithError(err).Error("Failed to load fixtures")
		os.Exit(1)
	}

	s := seeder.New(db, cfg, fixtures, log)

	if *reset {
		if err := s.ClearData(); err != nil {
			logrus.WithError(err).Error("Failed to clear data")
			os.Exit(1)
		}
		return
	}

	summary, err := s.Run()
	if err != nil {
		logrus.WithError(err).Error("Seeding failed")
		os.Exit(1)
	}

	if summary.AlreadySeeded {
		logrus.Info("Seed data already present")
	} else {
		logrus.Info("Seeding complete")
	}
}

func connectWithRetry(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = database.Initialize(dsn, nil)
		if err == nil {
			return db, nil
		}
		logrus.WithError(err).Warnf("Database not ready, retrying (%d/%d)", attempt, connectAttempts)
		time.Sleep(connectBackoff)
	}
	return nil, err
}
