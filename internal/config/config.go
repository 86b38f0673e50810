// Package config loads runtime settings from flags, BMICALC_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Storage backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// EnvPrefix is prepended to every environment variable, e.g. BMICALC_ADDR.
const EnvPrefix = "BMICALC"

// Config is the resolved server configuration.
type Config struct {
	Addr             string
	Store            string
	DatabaseURL      string
	SQLitePath       string
	LogLevel         zapcore.Level
	SessionTTL       time.Duration
	AuthDisabled     bool
	TrustForwardAuth bool
	OIDC             OIDC
}

// OIDC configures optional single sign-on.
type OIDC struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether an issuer has been configured.
func (o OIDC) Enabled() bool { return o.Issuer != "" }

// NewViper returns a viper instance with defaults set and environment
// lookup enabled. Nested keys map to underscores: oidc.issuer is read from
// BMICALC_OIDC_ISSUER.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("store", StoreMemory)
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "bmicalc.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_ttl", "24h")
	v.SetDefault("auth_disabled", false)
	v.SetDefault("trust_forward_auth", false)
	v.SetDefault("oidc.issuer", "")
	v.SetDefault("oidc.client_id", "")
	v.SetDefault("oidc.client_secret", "")
	v.SetDefault("oidc.redirect_url", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Addr:             v.GetString("addr"),
		Store:            strings.ToLower(v.GetString("store")),
		DatabaseURL:      v.GetString("database_url"),
		SQLitePath:       v.GetString("sqlite_path"),
		SessionTTL:       v.GetDuration("session_ttl"),
		AuthDisabled:     v.GetBool("auth_disabled"),
		TrustForwardAuth: v.GetBool("trust_forward_auth"),
		OIDC: OIDC{
			Issuer:       v.GetString("oidc.issuer"),
			ClientID:     v.GetString("oidc.client_id"),
			ClientSecret: v.GetString("oidc.client_secret"),
			RedirectURL:  v.GetString("oidc.redirect_url"),
		},
	}

	level, err := zapcore.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, fmt.Errorf("log_level: %w", err)
	}
	cfg.LogLevel = level

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("database_url is required for the postgres store"))
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("sqlite_path is required for the sqlite store"))
		}
	default:
		errs = append(errs, fmt.Errorf("store %q: must be one of memory, postgres, sqlite", c.Store))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("session_ttl must be positive"))
	}
	if c.OIDC.Enabled() && (c.OIDC.ClientID == "" || c.OIDC.RedirectURL == "") {
		errs = append(errs, errors.New("oidc.client_id and oidc.redirect_url are required when oidc.issuer is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
