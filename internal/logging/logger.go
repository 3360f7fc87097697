package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/shelf/internal/colors"
)

// Logger is the structured logging interface used across shelf.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a child logger carrying extra key/value pairs.
	With(args ...any) Logger
	// Shutdown closes the underlying file.
	Shutdown() error
}

type fileLogger struct {
	clogger *clog.Logger
	closer  io.Closer
	path    string
	once    *sync.Once
}

// Init opens a new log file in LogDir. A disabled Config yields a no-op logger.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir, err := LogDir()
	if err != nil {
		return nil, fmt.Errorf("resolve log directory: %w", err)
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	name := fmt.Sprintf("%s%s_PID%d_%s.log",
		FilePrefix,
		time.Now().Format("20060102_150405"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"))
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := newFileLogger(f, cfg)
	l.path = path
	return l, nil
}

func newFileLogger(w io.WriteCloser, cfg Config) *fileLogger {
	clogger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	})
	return &fileLogger{
		clogger: clogger.With("pid", cfg.PID, "command", cfg.Command),
		closer:  w,
		once:    &sync.Once{},
	}
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *fileLogger) Debug(msg string, args ...any) { l.clogger.Debug(msg, redact(args)...) }
func (l *fileLogger) Info(msg string, args ...any)  { l.clogger.Info(msg, redact(args)...) }
func (l *fileLogger) Warn(msg string, args ...any)  { l.clogger.Warn(msg, redact(args)...) }
func (l *fileLogger) Error(msg string, args ...any) { l.clogger.Error(msg, redact(args)...) }

func (l *fileLogger) With(args ...any) Logger {
	return &fileLogger{
		clogger: l.clogger.With(redact(args)...),
		closer:  l.closer,
		path:    l.path,
		once:    l.once,
	}
}

func (l *fileLogger) Shutdown() error {
	var err error
	l.once.Do(func() { err = l.closer.Close() })
	return err
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

var (
	globalMu     sync.RWMutex
	globalLogger Logger = noopLogger{}
)

// InitGlobal installs the process-wide logger from the loaded configuration
// and mirrors colors output into it.
func InitGlobal() error {
	logger, err := Init(FromGlobalConfig())
	if err != nil {
		return err
	}
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()

	colors.SetLogger(logger)
	if path := CurrentLogFile(); path != "" {
		colors.Debug("logging to file: " + path)
	}
	return nil
}

// GetGlobal returns the process-wide logger. It is never nil.
func GetGlobal() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetGlobal().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetGlobal().Warn(msg, args...) }
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }

// With returns a child of the global logger.
func With(args ...any) Logger { return GetGlobal().With(args...) }

// ShutdownGlobal closes the global log file and resets to a no-op logger.
func ShutdownGlobal() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	err := globalLogger.Shutdown()
	globalLogger = noopLogger{}
	colors.SetLogger(nil)
	return err
}

// CurrentLogFile returns the path of the active log file, or "" when
// logging is disabled.
func CurrentLogFile() string {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if fl, ok := globalLogger.(*fileLogger); ok {
		return fl.path
	}
	return ""
}
