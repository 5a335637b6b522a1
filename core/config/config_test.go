package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "statements", cfg.Storage.Bucket)
	assert.Equal(t, "100", cfg.Reconcile.AbsoluteTolerance)
	assert.Equal(t, "0.001", cfg.Reconcile.PercentageTolerance)
	assert.True(t, cfg.Reconcile.AutoResolveWithinTolerance)
	assert.Equal(t, 300, cfg.Golden.CacheTTLSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RECONCILE_ABSOLUTE_TOLERANCE", "250")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("RECONCILE_AUTO_RESOLVE_WITHIN_TOLERANCE", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "250", cfg.Reconcile.AbsoluteTolerance)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Reconcile.AutoResolveWithinTolerance)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: \"9191\"\nreconcile:\n  warning_threshold: \"500\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "500", cfg.Reconcile.WarningThreshold)
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
