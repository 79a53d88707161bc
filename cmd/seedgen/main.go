package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/garmio/seedgen/config"
	"github.com/garmio/seedgen/internal/domain"
	"github.com/garmio/seedgen/internal/export"
	"github.com/garmio/seedgen/internal/generator"
	"github.com/garmio/seedgen/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// openDB is a variable to allow substituting the database in tests
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

// run generates one dataset and writes it to every configured target.
func run(cfg *config.Config, appLogger logger.Logger) error {
	profile, err := config.ProfileByName(cfg.Profile)
	if err != nil {
		return err
	}

	g := generator.New(
		appLogger,
		config.DefaultGenerationConfig(),
		generator.WithSeed(cfg.Seed),
		generator.WithNullProbability(cfg.Output.NullProbability),
	)
	ds, err := g.Generate(profile)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	for _, format := range cfg.Output.Formats {
		var err error
		switch format {
		case "csv":
			err = export.WriteCSV(cfg.Output.Dir, ds)
		case "ndjson":
			err = export.WriteNDJSON(cfg.Output.Dir, ds)
		case "sql":
			err = export.WriteSQL(cfg.Output.Dir, ds, cfg.Database.BatchSize)
		default:
			err = fmt.Errorf("unknown output format %q", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		appLogger.WithField("format", format).Info("Export completed")
	}

	if cfg.Database.DSN != "" {
		if err := loadPostgres(cfg, appLogger, ds); err != nil {
			return fmt.Errorf("postgres load failed: %w", err)
		}
	}
	return nil
}

func loadPostgres(cfg *config.Config, appLogger logger.Logger, ds *domain.Dataset) error {
	db, err := openDB(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	loader, err := export.NewLoader(db, appLogger, cfg.Database.BatchSize)
	if err != nil {
		return err
	}
	return loader.Load(context.Background(), ds)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
	appLogger.WithField("profile", cfg.Profile).Info(fmt.Sprintf("Starting seedgen %s", cfg.Version))

	if err := run(cfg, appLogger); err != nil {
		appLogger.WithField("error", err.Error()).Error("Run failed")
		osExit(1)
	}
}
