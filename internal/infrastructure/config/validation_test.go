package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/clip_history.db"
	cfg.Storage.ImagesDir = "/tmp/images"
	return cfg
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative interval", func(c *Config) { c.Monitor.PollIntervalSeconds = -1 }, "monitor.poll_interval_seconds"},
		{"huge interval", func(c *Config) { c.Monitor.PollIntervalSeconds = 7200 }, "monitor.poll_interval_seconds"},
		{"unknown backend", func(c *Config) { c.Monitor.ClipboardBackend = "osc52" }, "monitor.clipboard_backend"},
		{"ocr timeout", func(c *Config) { c.OCR.TimeoutSeconds = 0 }, "ocr.timeout_seconds"},
		{"ocr cache", func(c *Config) { c.OCR.CacheEntries = -1 }, "ocr.cache_entries"},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"empty images dir", func(c *Config) { c.Storage.ImagesDir = "" }, "storage.images_dir"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log size", func(c *Config) { c.Logging.MaxSizeMB = 0 }, "logging.max_size_mb"},
		{"api host", func(c *Config) { c.API.Host = "" }, "api.host"},
		{"api port", func(c *Config) { c.API.Port = 0 }, "api.port"},
		{"palette", func(c *Config) { c.Appearance.Palette.Muted = "#12345" }, "appearance.palette.muted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, isHexColor("#fff"))
	assert.True(t, isHexColor("#7aa2F7"))
	assert.False(t, isHexColor("7aa2f7"))
	assert.False(t, isHexColor("#7aa2g7"))
	assert.False(t, isHexColor(""))
}
