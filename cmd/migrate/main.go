package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/config"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/logger"
	"github.com/mgiwa78/hr-intern-macro-app/internal/platform/logger/sl"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "assets/migrations", "directory containing migration files")
	)
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		slog.Error("failed to load config", sl.Err(err))
		os.Exit(1)
	}
	log := logger.New(cfg.Env)

	if cfg.Storage.Driver != config.DriverPostgres {
		log.Error("migrations only apply to the postgres storage driver", slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	if err := runMigration(log, action, *migrationsDir, cfg.Database.DSN()); err != nil {
		log.Error("migration failed", slog.String("action", action), sl.Err(err))
		os.Exit(1)
	}

	log.Info("migration completed", slog.String("action", action))
}

func effectiveConfigPath(flagValue string) string {
	if path := config.PathFromEnv(flagValue); path != "" {
		return path
	}
	return "assets/local.yaml"
}

func runMigration(log *slog.Logger, action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	absDir = filepath.ToSlash(absDir)

	m, err := migrate.New(fmt.Sprintf("file://%s", absDir), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Info("no migration applied")
				return nil
			}
			return err
		}
		log.Info("current migration version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
