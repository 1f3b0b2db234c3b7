package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "CLIPSAGE"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// CLIPSAGE_MONITOR_POLL_INTERVAL_SECONDS, CLIPSAGE_DATABASE_PATH, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit bindings for names that don't follow the prefix pattern.
	// The first variable set wins.
	bindings := map[string][]string{
		"logging.level":      {"CLIPSAGE_LOG_LEVEL", "CLIPSAGE_LOGGING_LEVEL"},
		"logging.format":     {"CLIPSAGE_LOG_FORMAT", "CLIPSAGE_LOGGING_FORMAT"},
		"ocr.tesseract_path": {"TESSERACT_PATH", "CLIPSAGE_OCR_TESSERACT_PATH"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envs[0], err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

// buildConfig unmarshals, fills paths, normalizes and validates.
func (m *Manager) buildConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := ensurePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Storage.ImagesDir == "" {
		dir, err := GetImagesDir()
		if err != nil {
			return fmt.Errorf("failed to get images directory: %w", err)
		}
		config.Storage.ImagesDir = dir
	}
	if config.Logging.LogDir == "" {
		dir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = dir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Monitor.ClipboardBackend = strings.ToLower(strings.TrimSpace(config.Monitor.ClipboardBackend))
	if config.Monitor.ClipboardBackend == "" {
		config.Monitor.ClipboardBackend = ClipboardBackendAuto
	}

	config.OCR.TesseractPath = strings.TrimSpace(config.OCR.TesseractPath)
	if config.OCR.TesseractPath == "" {
		config.OCR.TesseractPath = defaultTesseractPath
	}
	config.OCR.Languages = strings.TrimSpace(config.OCR.Languages)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.API.Host = strings.TrimSpace(config.API.Host)

	config.Database.Path = expandHome(config.Database.Path)
	config.Storage.ImagesDir = expandHome(config.Storage.ImagesDir)
	config.Logging.LogDir = expandHome(config.Logging.LogDir)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	// stderr keeps stdout clean for --json output.
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)

	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("monitor.poll_interval_seconds", defaults.Monitor.PollIntervalSeconds)
	m.viper.SetDefault("monitor.clipboard_backend", defaults.Monitor.ClipboardBackend)

	m.viper.SetDefault("ocr.enabled", defaults.OCR.Enabled)
	m.viper.SetDefault("ocr.tesseract_path", defaults.OCR.TesseractPath)
	m.viper.SetDefault("ocr.languages", defaults.OCR.Languages)
	m.viper.SetDefault("ocr.timeout_seconds", defaults.OCR.TimeoutSeconds)
	m.viper.SetDefault("ocr.cache_entries", defaults.OCR.CacheEntries)

	// Paths are resolved from XDG dirs in ensurePaths.
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("storage.images_dir", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", "")
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("api.enabled", defaults.API.Enabled)
	m.viper.SetDefault("api.host", defaults.API.Host)
	m.viper.SetDefault("api.port", defaults.API.Port)

	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.border", defaults.Appearance.Palette.Border)
	m.viper.SetDefault("appearance.palette.selected", defaults.Appearance.Palette.Selected)
	m.viper.SetDefault("appearance.palette.error", defaults.Appearance.Palette.Error)
}
