package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.UserAPIURL)
	assert.Equal(t, "http://localhost:8081", c.NewsAPIURL)
	assert.Equal(t, "infowise.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "es-EC", c.Locale)
	assert.Equal(t, "info", c.LogLevel)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"INFOWISE_API_URL", "INFOWISE_NEWS_API_URL", "INFOWISE_DB_PATH",
		"INFOWISE_REQUEST_TIMEOUT", "INFOWISE_LOCALE", "INFOWISE_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	clearEnv(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080", cfg.UserAPIURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	clearEnv(t)

	path := writeTempJSON(t, "", "", map[string]any{
		"user_api_url": "http://json:1",
		"news_api_url": "http://json:2",
		"locale":       "fr-FR",
	})
	t.Setenv("INFOWISE_NEWS_API_URL", "http://env:2")
	t.Setenv("INFOWISE_LOCALE", "en-US")
	os.Args = []string{"testbin", "-c", path, "-n", "http://flag:2"}

	cfg := LoadConfig()

	assert.Equal(t, "http://json:1", cfg.UserAPIURL)
	assert.Equal(t, "http://flag:2", cfg.NewsAPIURL)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "infowise.db", cfg.DatabasePath)
}

func TestLoadConfig_SubSecondTimeoutFromEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	clearEnv(t)
	t.Setenv("INFOWISE_REQUEST_TIMEOUT", "500ms")

	cfg := LoadConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}
