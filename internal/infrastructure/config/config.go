// Package config provides configuration management for clipsage with Viper integration.
package config

import (
	"net"
	"strconv"
	"time"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Clipboard backend names.
const (
	ClipboardBackendAuto   = "auto"
	ClipboardBackendTools  = "tools"
	ClipboardBackendNative = "native"
)

// Config represents the complete configuration for clipsage.
type Config struct {
	Monitor    MonitorConfig    `mapstructure:"monitor" toml:"monitor" json:"monitor"`
	OCR        OCRConfig        `mapstructure:"ocr" toml:"ocr" json:"ocr"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Storage    StorageConfig    `mapstructure:"storage" toml:"storage" json:"storage"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	API        APIConfig        `mapstructure:"api" toml:"api" json:"api"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// MonitorConfig controls clipboard polling.
type MonitorConfig struct {
	PollIntervalSeconds float64 `mapstructure:"poll_interval_seconds" toml:"poll_interval_seconds" json:"poll_interval_seconds"`
	// ClipboardBackend is auto, tools or native.
	ClipboardBackend string `mapstructure:"clipboard_backend" toml:"clipboard_backend" json:"clipboard_backend"`
}

// PollInterval returns the poll interval as a duration.
func (m MonitorConfig) PollInterval() time.Duration {
	return time.Duration(m.PollIntervalSeconds * float64(time.Second))
}

// OCRConfig controls text extraction from clipboard images.
type OCRConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// TesseractPath is overridden by the TESSERACT_PATH environment variable.
	TesseractPath  string `mapstructure:"tesseract_path" toml:"tesseract_path" json:"tesseract_path"`
	Languages      string `mapstructure:"languages" toml:"languages" json:"languages"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds"`
	// CacheEntries bounds the extracted-text cache keyed by image digest. 0 disables it.
	CacheEntries int `mapstructure:"cache_entries" toml:"cache_entries" json:"cache_entries"`
}

// Timeout returns the per-image OCR timeout.
func (o OCRConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// StorageConfig holds payload storage configuration.
type StorageConfig struct {
	ImagesDir string `mapstructure:"images_dir" toml:"images_dir" json:"images_dir"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// APIConfig holds the local HTTP API configuration.
type APIConfig struct {
	// Enabled starts the API with watch even without --listen.
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Host    string `mapstructure:"host" toml:"host" json:"host"`
	Port    int    `mapstructure:"port" toml:"port" json:"port"`
}

// Addr returns host:port.
func (a APIConfig) Addr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// AppearanceConfig holds TUI appearance settings.
type AppearanceConfig struct {
	Palette PaletteConfig `mapstructure:"palette" toml:"palette" json:"palette"`
}

// PaletteConfig holds the TUI colors as #RRGGBB hex strings.
type PaletteConfig struct {
	Accent   string `mapstructure:"accent" toml:"accent" json:"accent"`
	Text     string `mapstructure:"text" toml:"text" json:"text"`
	Muted    string `mapstructure:"muted" toml:"muted" json:"muted"`
	Border   string `mapstructure:"border" toml:"border" json:"border"`
	Selected string `mapstructure:"selected" toml:"selected" json:"selected"`
	Error    string `mapstructure:"error" toml:"error" json:"error"`
}
