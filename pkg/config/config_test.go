package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/selectdb/login_watch/pkg/xerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Attempts)
	assert.Equal(t, "bob", cfg.User)
	assert.Equal(t, "mypass", cfg.Password)
	assert.Equal(t, "123.22.112.1", cfg.Origin)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "login_watch", cfg.ServiceName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOGINWATCH_ATTEMPTS", "3")
	t.Setenv("LOGINWATCH_USER", "alice")
	t.Setenv("LOGINWATCH_SEED", "42")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Attempts)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login_watch.yaml")
	content := "demo:\n  attempts: 5\n  origin: 10.0.0.7\nmetrics:\n  service-name: lw\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Attempts)
	assert.Equal(t, "10.0.0.7", cfg.Origin)
	assert.Equal(t, "bob", cfg.User)
	assert.Equal(t, "lw", cfg.ServiceName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, xerror.Config, xerror.As(err).Category())
}

func TestValidate(t *testing.T) {
	t.Setenv("LOGINWATCH_ATTEMPTS", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.Equal(t, xerror.Config, xerror.As(err).Category())

	cfg := &Config{Demo: Demo{Attempts: 1}, Metrics: Metrics{ServiceName: "lw"}}
	assert.Error(t, cfg.Validate())
	cfg.User = "bob"
	assert.NoError(t, cfg.Validate())
}
