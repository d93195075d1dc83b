package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger/internal/core/services"
	"github.com/SscSPs/fund_ledger/internal/platform/config"
	"github.com/SscSPs/fund_ledger/internal/platform/storage"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

var (
	asUser   string
	tenantID string
)

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Administer fund ledger books from the command line",
	Long: `ledgerctl runs fund ledger operations directly against the configured store.

It reads the same environment as the API server (PGSQL_URL, STORE_DRIVER,
TENANCY_MODE, ...) and is the way to bootstrap books: apply migrations,
open a tenant, add members and mint API tokens.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&asUser, "as", "", "user ID the command acts as")
	rootCmd.PersistentFlags().StringVar(&tenantID, "tenant", "", "tenant ID (ignored in single tenancy mode)")
}

// env is everything a command needs to call the core services.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *portssvc.ServiceContainer
}

func newLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return logger
}

// withServices loads configuration, opens the store without migrating and
// hands fn a service container.
func withServices(ctx context.Context, fn func(ctx context.Context, e env) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)
	rules, err := config.LoadPostingRules(cfg.PostingRulesFile)
	if err != nil {
		return err
	}
	store, closeStore, err := storage.Open(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(ctx, env{cfg: cfg, logger: logger, services: services.NewServiceContainer(cfg, store, rules)})
}

// actor resolves --as and --tenant into a member of the selected books.
func (e env) actor(ctx context.Context) (domain.Actor, error) {
	if asUser == "" {
		return domain.Actor{}, fmt.Errorf("--as is required")
	}
	return e.services.Tenant.ResolveActor(ctx, asUser, tenantID)
}
