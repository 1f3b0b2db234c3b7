package config

import (
	"fmt"
	"strings"
)

// MaxPollIntervalSeconds is the longest accepted clipboard poll interval.
const MaxPollIntervalSeconds = 3600

const (
	minPort = 1
	maxPort = 65535
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateMonitor(config)...)
	validationErrors = append(validationErrors, validateOCR(config)...)
	validationErrors = append(validationErrors, validatePaths(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAPI(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateMonitor(config *Config) []string {
	var validationErrors []string
	if config.Monitor.PollIntervalSeconds <= 0 || config.Monitor.PollIntervalSeconds > MaxPollIntervalSeconds {
		validationErrors = append(validationErrors,
			fmt.Sprintf("monitor.poll_interval_seconds must be greater than 0 and at most %d", MaxPollIntervalSeconds))
	}
	switch config.Monitor.ClipboardBackend {
	case ClipboardBackendAuto, ClipboardBackendTools, ClipboardBackendNative:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"monitor.clipboard_backend must be one of: %s, %s, %s (got %q)",
			ClipboardBackendAuto, ClipboardBackendTools, ClipboardBackendNative, config.Monitor.ClipboardBackend,
		))
	}
	return validationErrors
}

func validateOCR(config *Config) []string {
	var errs []string
	if config.OCR.TimeoutSeconds < 1 {
		errs = append(errs, "ocr.timeout_seconds must be at least 1")
	}
	if config.OCR.CacheEntries < 0 {
		errs = append(errs, "ocr.cache_entries must be non-negative")
	}
	return errs
}

func validatePaths(config *Config) []string {
	var validationErrors []string
	if config.Database.Path == "" {
		validationErrors = append(validationErrors, "database.path cannot be empty")
	}
	if config.Storage.ImagesDir == "" {
		validationErrors = append(validationErrors, "storage.images_dir cannot be empty")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !contains(validLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: %s (got %q)", strings.Join(validLevels, ", "), config.Logging.Level,
		))
	}

	validFormats := []string{"console", "json"}
	if !contains(validFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: %s (got %q)", strings.Join(validFormats, ", "), config.Logging.Format,
		))
	}

	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateAPI(config *Config) []string {
	var validationErrors []string
	if config.API.Host == "" {
		validationErrors = append(validationErrors, "api.host cannot be empty")
	}
	if config.API.Port < minPort || config.API.Port > maxPort {
		validationErrors = append(validationErrors, fmt.Sprintf("api.port must be between %d and %d", minPort, maxPort))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	colors := []struct {
		key   string
		value string
	}{
		{"accent", p.Accent},
		{"text", p.Text},
		{"muted", p.Muted},
		{"border", p.Border},
		{"selected", p.Selected},
		{"error", p.Error},
	}

	var validationErrors []string
	for _, c := range colors {
		if !isHexColor(c.value) {
			validationErrors = append(validationErrors, "appearance.palette."+c.key+" must be a hex color like #RRGGBB")
		}
	}
	return validationErrors
}

// isHexColor reports whether s is #RGB or #RRGGBB.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		isDigit := r >= '0' && r <= '9'
		isLower := r >= 'a' && r <= 'f'
		isUpper := r >= 'A' && r <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
