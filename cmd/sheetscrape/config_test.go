package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	main "github.com/fwojciec/sheetscrape/cmd/sheetscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scraper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := main.DefaultConfig()

	assert.Equal(t, ".data-item", cfg.Selector)
	assert.Equal(t, "scraped_data.xlsx", cfg.Output)
	assert.Equal(t, "Scraped Data", cfg.WorksheetName)
	assert.Equal(t, 1, cfg.MinDataLength)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
	assert.Equal(t, "scraper.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("decodes every key", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
url: https://example.com/data-page
selector: span.price
output: prices.xlsx
worksheetName: Data
minDataLength: 3
timeout: 15s
userAgent: test-agent
maxRetries: 3
retryDelay: 2s
requestDelay: 1s
logFile: run.log
logLevel: warning
`)

		fc, err := main.LoadConfigFile(path)
		require.NoError(t, err)

		cfg := main.DefaultConfig()
		fc.Apply(&cfg)

		assert.Equal(t, main.Config{
			URL:           "https://example.com/data-page",
			Selector:      "span.price",
			Output:        "prices.xlsx",
			WorksheetName: "Data",
			MinDataLength: 3,
			Timeout:       15 * time.Second,
			UserAgent:     "test-agent",
			MaxRetries:    3,
			RetryDelay:    2 * time.Second,
			RequestDelay:  time.Second,
			LogFile:       "run.log",
			LogLevel:      "warning",
		}, cfg)
	})

	t.Run("keeps defaults for absent keys", func(t *testing.T) {
		t.Parallel()

		fc, err := main.LoadConfigFile(writeConfig(t, "url: https://example.com\n"))
		require.NoError(t, err)

		cfg := main.DefaultConfig()
		fc.Apply(&cfg)

		expected := main.DefaultConfig()
		expected.URL = "https://example.com"
		assert.Equal(t, expected, cfg)
	})

	t.Run("accepts empty file", func(t *testing.T) {
		t.Parallel()

		fc, err := main.LoadConfigFile(writeConfig(t, ""))
		require.NoError(t, err)

		cfg := main.DefaultConfig()
		fc.Apply(&cfg)
		assert.Equal(t, main.DefaultConfig(), cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfigFile(writeConfig(t, "urls: [a, b]\n"))

		assert.Error(t, err)
	})

	t.Run("rejects malformed durations", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadConfigFile(writeConfig(t, "timeout: soon\n"))

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := main.DefaultConfig()
	valid.URL = "https://example.com"
	require.NoError(t, valid.Validate())

	noURL := main.DefaultConfig()
	assert.Error(t, noURL.Validate())

	badTimeout := valid
	badTimeout.Timeout = 0
	assert.Error(t, badTimeout.Validate())

	badRetries := valid
	badRetries.MaxRetries = -1
	assert.Error(t, badRetries.Validate())

	badMinLength := valid
	badMinLength.MinDataLength = -1
	assert.Error(t, badMinLength.Validate())
}
