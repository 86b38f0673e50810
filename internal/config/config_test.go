package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "bmicalc.db", cfg.SQLitePath)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.AuthDisabled)
	assert.False(t, cfg.TrustForwardAuth)
	assert.False(t, cfg.OIDC.Enabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("BMICALC_STORE", "postgres")
	t.Setenv("BMICALC_DATABASE_URL", "postgres://localhost/bmicalc")
	t.Setenv("BMICALC_LOG_LEVEL", "debug")
	t.Setenv("BMICALC_TRUST_FORWARD_AUTH", "true")
	t.Setenv("BMICALC_OIDC_ISSUER", "https://id.example.com")
	t.Setenv("BMICALC_OIDC_CLIENT_ID", "bmicalc")
	t.Setenv("BMICALC_OIDC_REDIRECT_URL", "https://bmi.example.com/api/auth/sso/callback")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "postgres://localhost/bmicalc", cfg.DatabaseURL)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.TrustForwardAuth)
	assert.True(t, cfg.OIDC.Enabled())
	assert.Equal(t, "bmicalc", cfg.OIDC.ClientID)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmicalc.yaml")
	yaml := "addr: \":9090\"\nstore: sqlite\nsqlite_path: /var/lib/bmicalc/data.db\nsession_ttl: 2h\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	v := NewViper()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/var/lib/bmicalc/data.db", cfg.SQLitePath)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestReadFile_Missing(t *testing.T) {
	assert.NoError(t, ReadFile(NewViper(), ""))
	assert.Error(t, ReadFile(NewViper(), filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr string
	}{
		{"unknown store", map[string]any{"store": "redis"}, `store "redis"`},
		{"postgres without dsn", map[string]any{"store": "postgres"}, "database_url is required"},
		{"sqlite without path", map[string]any{"store": "sqlite", "sqlite_path": ""}, "sqlite_path is required"},
		{"bad level", map[string]any{"log_level": "loud"}, "log_level"},
		{"zero ttl", map[string]any{"session_ttl": "0s"}, "session_ttl must be positive"},
		{"partial oidc", map[string]any{"oidc.issuer": "https://id.example.com"}, "oidc.client_id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViper()
			for k, val := range tc.set {
				v.Set(k, val)
			}
			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
