package config

// Default configuration constants
const (
	// Monitor defaults
	defaultPollIntervalSeconds = 1.0

	// OCR defaults
	defaultTesseractPath     = "tesseract"
	defaultOCRTimeoutSeconds = 30
	defaultOCRCacheEntries   = 32

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	// API defaults
	defaultAPIHost = "127.0.0.1"
	defaultAPIPort = 7878
)

// DefaultConfig returns the default configuration.
// Paths are left empty and filled from the XDG directories on load.
func DefaultConfig() *Config {
	return &Config{
		Monitor: MonitorConfig{
			PollIntervalSeconds: defaultPollIntervalSeconds,
			ClipboardBackend:    ClipboardBackendAuto,
		},
		OCR: OCRConfig{
			Enabled:        true,
			TesseractPath:  defaultTesseractPath,
			Languages:      "",
			TimeoutSeconds: defaultOCRTimeoutSeconds,
			CacheEntries:   defaultOCRCacheEntries,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
			Compress:      true,
		},
		API: APIConfig{
			Enabled: false,
			Host:    defaultAPIHost,
			Port:    defaultAPIPort,
		},
		Appearance: AppearanceConfig{
			Palette: PaletteConfig{
				Accent:   "#7aa2f7",
				Text:     "#c0caf5",
				Muted:    "#565f89",
				Border:   "#3b4261",
				Selected: "#bb9af7",
				Error:    "#f7768e",
			},
		},
	}
}
