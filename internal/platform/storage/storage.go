package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/fund_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger/internal/platform/config"
	"github.com/SscSPs/fund_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/fund_ledger/internal/repositories/memory"
	"github.com/SscSPs/fund_ledger/pkg/database"
)

// Open returns the store selected by cfg.StoreDriver and a func that releases it.
// With migrate set, pending postgres migrations are applied first.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (portsrepo.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on exit")
		return memory.NewStore(), func() {}, nil
	case config.DriverPostgres:
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if migrate {
		if err := Migrate(cfg, logger); err != nil {
			return nil, nil, err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewStore(pool), func() { database.ClosePgxPool(pool) }, nil
}

// Migrate applies every pending migration from cfg.MigrationsPath.
func Migrate(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
	m, err := database.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Error("Error closing migrator", slog.String("error", cerr.Error()))
		}
	}()
	return m.Up()
}
