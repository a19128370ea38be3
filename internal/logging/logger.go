package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with a component tag
type Logger struct {
	*logrus.Logger
	component string
}

var (
	// globalLogger global logger instance
	globalLogger *Logger
	// logFile log file handle
	logFile *os.File
	mu      sync.Mutex
)

// LogLevel log level type
type LogLevel string

const (
	TraceLevel LogLevel = "trace"
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
	PanicLevel LogLevel = "panic"
)

// Config log configuration
type Config struct {
	Level   LogLevel `json:"level"`    // Log level
	Format  string   `json:"format"`   // Format: "json" or "text"
	Output  string   `json:"output"`   // Output: "file", "console", "both", "none"
	LogFile string   `json:"log_file"` // Log file path
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Level:   InfoLevel,
		Format:  "text",
		Output:  "file",
		LogFile: filepath.Join(home, ".config", "picker", "logs", "picker.log"),
	}
}

// Init initializes logging system
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	logger := logrus.New()

	level, err := logrus.ParseLevel(string(config.Level))
	if err != nil {
		return fmt.Errorf("invalid log level: %s", config.Level)
	}
	logger.SetLevel(level)

	switch config.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text":
		logger.SetFormatter(&CustomTextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	// Console output goes to stderr: stdout carries the selected values.
	switch config.Output {
	case "console":
		logger.SetOutput(os.Stderr)
	case "file":
		file, err := openLogFile(config.LogFile)
		if err != nil {
			return fmt.Errorf("failed to setup file output: %w", err)
		}
		logger.SetOutput(file)
	case "both":
		file, err := openLogFile(config.LogFile)
		if err != nil {
			return fmt.Errorf("failed to setup file output: %w", err)
		}
		logger.SetOutput(io.MultiWriter(file, os.Stderr))
	case "none":
		logger.SetOutput(io.Discard)
	default:
		return fmt.Errorf("invalid log output: %s", config.Output)
	}

	globalLogger = &Logger{
		Logger:    logger,
		component: "picker",
	}

	return nil
}

// openLogFile replaces the currently open log file
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	return file, nil
}

// GetLogger gets global logger instance
func GetLogger() *Logger {
	mu.Lock()
	initialized := globalLogger != nil
	mu.Unlock()

	if !initialized {
		if err := Init(DefaultConfig()); err != nil {
			// The terminal is in use by the picker; never fall back to it.
			mu.Lock()
			logger := logrus.New()
			logger.SetOutput(io.Discard)
			globalLogger = &Logger{
				Logger:    logger,
				component: "picker",
			}
			mu.Unlock()
		}
	}

	mu.Lock()
	defer mu.Unlock()
	return globalLogger
}

// WithComponent creates logger instance with component identifier
func WithComponent(component string) *Logger {
	base := GetLogger()
	return &Logger{
		Logger:    base.Logger,
		component: component,
	}
}

// NewWithWriter builds a standalone logger, mostly for tests and embedding
func NewWithWriter(component string, w io.Writer, level LogLevel) *Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&CustomTextFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	if lvl, err := logrus.ParseLevel(string(level)); err == nil {
		logger.SetLevel(lvl)
	}
	return &Logger{
		Logger:    logger,
		component: component,
	}
}

// Component returns the component tag
func (l *Logger) Component() string {
	return l.component
}

// WithField adds field
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"component": l.component,
		key:         value,
	})
}

// WithFields adds multiple fields
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	fields["component"] = l.component
	return l.Logger.WithFields(fields)
}

// WithError adds error field
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields{
		"component": l.component,
		"error":     err,
	})
}

// Close closes logging system
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// CustomTextFormatter custom text formatter
type CustomTextFormatter struct {
	TimestampFormat string
	FullTimestamp   bool
}

// Format implements logrus.Formatter interface
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if f.FullTimestamp {
		b.WriteString(entry.Time.Format(f.TimestampFormat))
		b.WriteString(" ")
	}

	b.WriteString("[")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("] ")

	if component, ok := entry.Data["component"].(string); ok {
		b.WriteString("[")
		b.WriteString(component)
		b.WriteString("] ")
	}

	b.WriteString(entry.Message)

	// Sorted so lines are stable across runs
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", key, entry.Data[key]))
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
