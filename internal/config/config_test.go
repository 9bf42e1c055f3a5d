package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:    AppConfig{Environment: "development"},
			Logger: LoggerConfig{Level: "info"},
			Data:   DataConfig{Path: "/tmp/quill"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("bad environment", func(t *testing.T) {
		cfg := base()
		cfg.App.Environment = "sandbox"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := base()
		cfg.Logger.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty data path", func(t *testing.T) {
		cfg := base()
		cfg.Data.Path = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("tilde expansion", func(t *testing.T) {
		got, err := expandPath("~/quill-data", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "quill-data"), got)
	})

	t.Run("empty uses default", func(t *testing.T) {
		got, err := expandPath("", "/srv/quill")
		require.NoError(t, err)
		assert.Equal(t, "/srv/quill", got)
	})

	t.Run("absolute passes through", func(t *testing.T) {
		got, err := expandPath("/var/lib/quill/", "")
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/quill", got)
	})
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("QUILL_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "QUILL_TEST_KEY", "fallback"))
	assert.Equal(t, "from-env", getConfigValue("", "QUILL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getConfigValue("", "QUILL_TEST_MISSING", "fallback"))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nQUILL_ENVFILE_A=hello\nQUILL_ENVFILE_B=\"quoted\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("QUILL_ENVFILE_A", "")
	t.Setenv("QUILL_ENVFILE_B", "")
	os.Unsetenv("QUILL_ENVFILE_A")
	os.Unsetenv("QUILL_ENVFILE_B")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "hello", os.Getenv("QUILL_ENVFILE_A"))
	assert.Equal(t, "quoted", os.Getenv("QUILL_ENVFILE_B"))
}
