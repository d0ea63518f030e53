package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger provides a centralized logging mechanism for codevol.
// The terminal belongs to the TUI, so output goes to a file.
type Logger struct {
	entry *logrus.Logger
	file  *os.File
	mu    sync.Mutex
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// DefaultLogPath is where the logger writes until Configure is called
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "codevol.log")
}

// GetLogger returns the default logger instance (singleton pattern)
func GetLogger() *Logger {
	once.Do(func() {
		var err error
		defaultLogger, err = NewLogger(DefaultLogPath())
		if err != nil {
			defaultLogger = newWriterLogger(os.Stderr, nil)
			defaultLogger.Warning("failed to create log file, falling back to stderr: %v", err)
		}
	})
	return defaultLogger
}

// NewLogger creates a new logger that appends to the specified file
func NewLogger(logPath string) (*Logger, error) {
	file, err := openLogFile(logPath)
	if err != nil {
		return nil, err
	}
	return newWriterLogger(file, file), nil
}

// NewWriterLogger creates a logger writing to w. Close is a no-op for it.
func NewWriterLogger(w io.Writer) *Logger {
	return newWriterLogger(w, nil)
}

func newWriterLogger(w io.Writer, file *os.File) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return &Logger{entry: l, file: file}
}

func openLogFile(logPath string) (*os.File, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Configure points the default logger at logPath and sets its verbosity.
// An empty path keeps the current output.
func Configure(logPath string, verbose bool) error {
	l := GetLogger()
	if logPath != "" {
		file, err := openLogFile(logPath)
		if err != nil {
			return err
		}
		l.setFile(file)
	}
	l.SetVerbose(verbose)
	return nil
}

func (l *Logger) setFile(file *os.File) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
	}
	l.file = file
	l.entry.SetOutput(file)
}

// SetVerbose enables debug output
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if verbose {
		l.entry.SetLevel(logrus.DebugLevel)
	} else {
		l.entry.SetLevel(logrus.InfoLevel)
	}
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry.Warnf(format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry.Infof(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry.Errorf(format, args...)
}

// Close closes the log file (if any)
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Convenience functions for the default logger
func Warning(format string, args ...interface{}) {
	GetLogger().Warning(format, args...)
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}
