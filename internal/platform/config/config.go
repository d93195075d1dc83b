package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	StoreDriver       string
	TenancyMode       domain.TenancyMode
	DefaultTenantID   string
	AutoVerify        bool // default for tenants without stored settings
	PostingRulesFile  string
	MigrationsPath    string
	RateLimit         string // ulule formatted rate, e.g. "100-M"; empty disables
	LogLevel          slog.Level
}

const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", insecureJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "fund-ledger")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("TENANCY_MODE", string(domain.TenancyMulti))
	v.SetDefault("DEFAULT_TENANT_ID", domain.DefaultTenantID)
	v.SetDefault("AUTO_VERIFY", true)
	v.SetDefault("POSTING_RULES_FILE", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("LOG_LEVEL", "info")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		StoreDriver:      strings.ToLower(v.GetString("STORE_DRIVER")),
		TenancyMode:      domain.TenancyMode(strings.ToLower(v.GetString("TENANCY_MODE"))),
		DefaultTenantID:  v.GetString("DEFAULT_TENANT_ID"),
		AutoVerify:       v.GetBool("AUTO_VERIFY"),
		PostingRulesFile: v.GetString("POSTING_RULES_FILE"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		RateLimit:        v.GetString("RATE_LIMIT"),
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		expiry = time.Hour
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default", slog.String("value", jwtExpiryStr), slog.Duration("default", expiry))
	}
	cfg.JWTExpiryDuration = expiry

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		cfg.LogLevel = slog.LevelInfo
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER is %s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	switch cfg.TenancyMode {
	case domain.TenancyMulti, domain.TenancySingle:
	default:
		return nil, fmt.Errorf("unknown TENANCY_MODE %q", cfg.TenancyMode)
	}
	if cfg.DefaultTenantID == "" {
		cfg.DefaultTenantID = domain.DefaultTenantID
	}

	if cfg.JWTSecret == insecureJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}

	return cfg, nil
}
