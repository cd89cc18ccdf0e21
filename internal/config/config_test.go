package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/persona-quiz/internal/apperr"
	"github.com/saulo-duarte/persona-quiz/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Session.MaxInteractions)
	assert.Equal(t, 3, cfg.Generation.Attempts)
	assert.Equal(t, 10, cfg.Generation.QuestionCount)
	assert.Equal(t, 20, cfg.RateLimit.Requests)
	assert.Equal(t, time.Hour, config.Duration(cfg.RateLimit.Window, 0))
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
app:
  env: development
server:
  port: "9090"
oracle:
  model: gemini-test
  questions:
    temperature: 0.2
generation:
  attempts: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))
	t.Setenv("GOOGLE_API_KEY", "key-from-env")
	t.Setenv("PORT", "7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "gemini-test", cfg.Oracle.Model)
	assert.InDelta(t, 0.2, cfg.Oracle.Questions.Temperature, 0.0001)
	assert.Equal(t, 5, cfg.Generation.Attempts)
	assert.Equal(t, "key-from-env", cfg.Oracle.APIKey)
	assert.Equal(t, 40.0, float64(cfg.Oracle.Questions.TopK), "defaults survive partial sections")
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		cfg := config.Default()
		err := cfg.Validate()

		var cfgErr *apperr.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("ShortSessionSecret", func(t *testing.T) {
		cfg := config.Default()
		cfg.Oracle.APIKey = "k"
		cfg.Session.Secret = "chave_curta"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Valid", func(t *testing.T) {
		cfg := config.Default()
		cfg.Oracle.APIKey = "k"
		cfg.Session.Secret = "01234567890123456789012345678901"
		assert.NoError(t, cfg.Validate())

		cfg.Session.Secret += "-with-a-longer-tail"
		assert.NoError(t, cfg.Validate())
	})
}

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Second, config.Duration("", time.Second))
	assert.Equal(t, time.Second, config.Duration("garbage", time.Second))
	assert.Equal(t, 1500*time.Millisecond, config.Duration("1500ms", time.Second))
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QUIZ_DOTENV_CHECK=loaded\n"), 0o600))
	t.Setenv("QUIZ_DOTENV_CHECK", "")
	os.Unsetenv("QUIZ_DOTENV_CHECK")

	require.NoError(t, config.LoadEnvFile(path))
	assert.Equal(t, "loaded", os.Getenv("QUIZ_DOTENV_CHECK"))

	assert.NoError(t, config.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
