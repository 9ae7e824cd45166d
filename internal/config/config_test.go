package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "inspekto.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.UploadTimeout)
	assert.Equal(t, 12, cfg.UploadBatchSize)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"database_path":  "/tmp/field.db",
		"upload_timeout": "10s",
	})
	t.Setenv(EnvConfigFile, path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/field.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Second, cfg.UploadTimeout)
	// absent in the file, default stays
	assert.Equal(t, 12, cfg.UploadBatchSize)
}

func TestLoadConfig_EnvWinsOverJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"database_path":     "/tmp/from-json.db",
		"upload_batch_size": 5,
	})
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvDatabasePath, "/tmp/from-env.db")
	t.Setenv(EnvUploadTimeout, "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DatabasePath)
	assert.Equal(t, 3*time.Second, cfg.UploadTimeout)
	assert.Equal(t, 5, cfg.UploadBatchSize)
}

func TestLoadConfig_BadSources(t *testing.T) {
	t.Run("missing json file", func(t *testing.T) {
		t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.json"))
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv(EnvUploadTimeout, "soon")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("bad env batch size", func(t *testing.T) {
		t.Setenv(EnvUploadBatchSize, "many")
		_, err := LoadConfig()
		require.Error(t, err)
	})
}
