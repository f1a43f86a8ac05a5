// Package logger owns the process-wide slog logger. Until Setup succeeds every
// call goes to a discard handler, so packages can log unconditionally.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

// LogDir is relative to the workspace root.
const LogDir = ".club/logs"

const fileName = "club.log"

type Config struct {
	Root  string
	Debug bool
	// Level overrides the level derived from Debug when non-empty
	// ("debug", "info", "warn", "error").
	Level string
}

type state struct {
	log      *slog.Logger
	file     *os.File
	path     string
	initedAt time.Time
}

var (
	mu  sync.RWMutex
	cur = discardState()
)

func discardState() state {
	return state{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Setup opens <root>/.club/logs/club.log for appending and installs a JSON
// handler on it. The returned cleanup closes the file and restores discard.
func Setup(cfg Config) (func() error, error) {
	level, err := resolveLevel(cfg)
	if err != nil {
		reset()
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindInvalidConfig, Err: err}
	}

	root := filepath.Clean(cfg.Root)
	dir := filepath.Join(root, filepath.FromSlash(LogDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	path := filepath.Join(dir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindExecution, Path: path, Err: err}
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       level,
		AddSource:   cfg.Debug,
		ReplaceAttr: utcTime,
	})
	l := slog.New(h).With("app", "clubctl")

	mu.Lock()
	cur = state{log: l, file: f, path: path, initedAt: time.Now().UTC()}
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "level", level.String())

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		var cerr error
		if cur.file != nil {
			cerr = cur.file.Close()
		}
		cur = discardState()
		return cerr
	}, nil
}

func resolveLevel(cfg Config) (slog.Level, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return level, err
		}
	}
	return level, nil
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cur = discardState()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return cur.initedAt
}

// IsReady reports whether Setup has installed a file-backed logger.
func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}
