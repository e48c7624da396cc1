package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level describes severity of log message.
type Level int

const (
	// LevelInfo is default log level.
	LevelInfo Level = iota
	// LevelDebug enables verbose output.
	LevelDebug
)

// ParseLevel converts string to Level.
func ParseLevel(v string) Level {
	switch v {
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Logger is a thin wrapper around log.Logger with levels.
type Logger struct {
	logger *log.Logger
	level  Level
	closer io.Closer
}

// New creates a configured logger. When path is empty output goes to stdout,
// otherwise lines are appended to the file so the history of repeated runs
// is kept.
func New(path string, level Level) (*Logger, error) {
	var output io.Writer = os.Stdout
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		output = f
		closer = f
	}
	return &Logger{logger: log.New(output, "hudubridge ", log.LstdFlags), level: level, closer: closer}, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) logf(lvl Level, prefix, format string, args ...interface{}) {
	if l == nil {
		return
	}
	if lvl > l.level {
		return
	}
	l.logger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

// Infof logs informational messages.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, "INFO", format, args...)
}

// Debugf logs verbose diagnostic messages.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, args...)
}

// Warnf logs recoverable per-item problems.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelInfo, "WARN", format, args...)
}

// Errorf logs errors.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelInfo, "ERROR", format, args...)
}
