package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"alcyxob/fitplanner/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("OPENAI_POLL_INTERVAL", "250ms")

	cfg, err := config.LoadConfig(".")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 250*time.Millisecond, cfg.OpenAI.PollInterval)
	assert.Equal(t, 120, cfg.OpenAI.MaxPollAttempts)
	assert.Empty(t, cfg.OpenAI.APIKey, "missing api key is not a startup error")
	assert.Equal(t, "fitplanner", cfg.Metrics.Namespace)
}

func TestLoadConfig_FileOverriddenByEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := []byte(`
server:
  address: ":9000"
jwt:
  secret: from-file
  expiration: 30m
openai:
  api_key: sk-file
  max_poll_attempts: 10
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("SERVER_ADDRESS", ":9100")

	cfg, err := config.LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.Address)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, "sk-file", cfg.OpenAI.APIKey)
	assert.Equal(t, 10, cfg.OpenAI.MaxPollAttempts)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\nGOOGLE_CLIENT_ID=client-1\n"), 0o600))
	// godotenv sets process env directly; register cleanup through t.Setenv.
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	require.NoError(t, os.Unsetenv("GOOGLE_CLIENT_ID"))

	cfg, err := config.LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.JWT.Secret)
	assert.Equal(t, "client-1", cfg.Google.ClientID)
}

func TestLoadConfig_RequiresJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadConfig(".")

	require.Error(t, err)
}
