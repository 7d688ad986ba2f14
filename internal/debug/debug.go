package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/grindlemire/flexkit/internal/logging"
)

// Config is read from the environment on first use.
type Config struct {
	// Path is the debug log file from FLEXKIT_DEBUG. Empty disables logging.
	Path string `env:"FLEXKIT_DEBUG"`
}

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
)

// Init opens path for appending and routes Logger output to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = logging.NewLogger(f, logging.LevelDebug)
	return nil
}

// Close closes the debug log file. Later Logger calls discard output until
// Init is called again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(slog.DiscardHandler)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the debug logger, initializing it from the environment on
// first use. It never returns nil.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger
	}

	var cfg Config
	if err := env.Parse(&cfg); err == nil && cfg.Path != "" {
		if initLocked(cfg.Path) == nil {
			return logger
		}
	}
	logger = slog.New(slog.DiscardHandler)
	return logger
}
