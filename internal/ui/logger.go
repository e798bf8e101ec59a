package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// LogLevel represents a logging level
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogSuccess
)

var (
	debugColor   = color.New(color.FgHiBlack)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

// Logger writes leveled, colored messages to the console.
type Logger struct {
	out      io.Writer
	minLevel LogLevel
}

// NewLogger creates a logger writing to out. Debug messages are shown only
// when debug is set.
func NewLogger(out io.Writer, debug bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	minLevel := LogInfo
	if debug {
		minLevel = LogDebug
	}
	return &Logger{out: out, minLevel: minLevel}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{out: io.Discard, minLevel: LogSuccess + 1}
}

// SetNoColor turns colored output off for every logger.
func SetNoColor(noColor bool) {
	color.NoColor = noColor
}

func (l *Logger) log(level LogLevel, levelStr string, format string, args ...interface{}) {
	if l == nil || level < l.minLevel {
		return
	}

	msg := fmt.Sprintf(format, args...)

	var c *color.Color
	switch level {
	case LogDebug:
		c = debugColor
	case LogInfo:
		c = infoColor
	case LogWarn:
		c = warnColor
	case LogError:
		c = errorColor
	case LogSuccess:
		c = successColor
	}

	c.Fprintf(l.out, "[%s] %s\n", levelStr, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, "DEBUG", format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogInfo, "INFO", format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogWarn, "WARN", format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogError, "ERROR", format, args...)
}

// Success logs a success message
func (l *Logger) Success(format string, args ...interface{}) {
	l.log(LogSuccess, "SUCCESS", format, args...)
}
