package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET", "HTTP_PORT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_FileAndDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "rest"

[auth]
jwt_secret = "from-file"

[reservations]
slot_minutes = 90
timezone = "UTC"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.Reservations.SlotDuration())
	assert.Equal(t, time.Hour, cfg.Reservations.BufferDuration())
	assert.Equal(t, "host=db port=5432 user=postgres password= dbname=rest sslmode=disable", cfg.Database.DSN())

	loc, err := cfg.Reservations.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("HTTP_PORT", "8181")

	path := writeConfig(t, `
[auth]
jwt_secret = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "missing secret", body: "[server]\nhttp_port = 8080\n"},
		{name: "bad port env", body: "[auth]\njwt_secret = \"x\"\n", env: map[string]string{"HTTP_PORT": "abc"}},
		{name: "zero slot", body: "[auth]\njwt_secret = \"x\"\n[reservations]\nslot_minutes = 0\n"},
		{name: "unknown timezone", body: "[auth]\njwt_secret = \"x\"\n[reservations]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "mail without host", body: "[auth]\njwt_secret = \"x\"\n[mail]\nenabled = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
