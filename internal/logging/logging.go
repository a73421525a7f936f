// Package logging holds the process-wide slog logger used by the sqlscan
// command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logger   *slog.Logger
	loggerMu sync.RWMutex
	logFile  *os.File
	isInited bool
)

// Level names a logging verbosity as written in configuration files.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Config holds logger configuration.
type Config struct {
	Level      Level
	OutputPath string // empty for stderr
	Format     string // "json" or "text"
}

// ParseLevel converts a case-insensitive level name. Unknown names are an
// error rather than silently mapping to INFO.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToUpper(strings.TrimSpace(s))); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	}
	return "", fmt.Errorf("logging: unknown level %q", s)
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init initializes the global logger. A second call fails until Close has
// been called.
func Init(config Config) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if isInited {
		return fmt.Errorf("logger already initialized; call Close() first to reinitialize")
	}

	var writer io.Writer = os.Stderr
	if config.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0o750); err != nil {
			return err
		}
		file, err := os.OpenFile(config.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		writer = file
		logFile = file
	}

	logger = slog.New(newHandler(writer, config))
	isInited = true
	return nil
}

func newHandler(w io.Writer, config Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: config.Level.slogLevel()}
	if config.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// InitDefault installs a WARN-level text logger on stderr unless a logger is
// already in place.
func InitDefault() {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if !isInited {
		installDefault()
	}
}

// installDefault must be called with loggerMu held for writing.
func installDefault() {
	logger = slog.New(newHandler(os.Stderr, Config{Level: LevelWarn}))
	isInited = true
}

// Close releases the log file, if any, and resets the package so Init can be
// called again. It is safe to call more than once.
func Close() error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if !isInited {
		return nil
	}

	var err error
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}
	logger = nil
	isInited = false
	return err
}

// GetLogger returns the current logger, installing the default one on first
// use.
func GetLogger() *slog.Logger {
	loggerMu.RLock()
	if isInited {
		l := logger
		loggerMu.RUnlock()
		return l
	}
	loggerMu.RUnlock()

	// Close may run between the two locks, so check again.
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if !isInited {
		installDefault()
	}
	return logger
}

// WithComponent returns a logger that tags every record with component.
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithFile returns a logger that tags every record with the input name.
func WithFile(name string) *slog.Logger {
	return GetLogger().With("file", name)
}
