package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to a rotating file and/or stderr.
// The file always receives JSON lines; stderr follows cfg.Format.
// The returned cleanup is never nil.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), func() {}, nil
		}
		return New(cfg), func() {}, nil
	}

	rotator, err := NewLogRotator(RotatorConfig{
		Dir:        fileCfg.LogDir,
		MaxSizeMB:  fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAgeDays: fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
	})
	if err != nil {
		return New(cfg), func() {}, err
	}

	var w io.Writer = rotator
	if fileCfg.WriteToStderr {
		w = zerolog.MultiLevelWriter(rotator, stderrWriter(cfg))
	}

	logger := zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	return logger, func() { _ = rotator.Close() }, nil
}

func stderrWriter(cfg Config) io.Writer {
	if cfg.Format == "json" {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
}
