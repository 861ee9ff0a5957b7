package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

var (
	currentLevel = INFO
	base         = newBase()
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

func toLogrus(level LogLevel) logrus.Level {
	switch level {
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	currentLevel = level
	base.SetLevel(toLogrus(level))
}

// SetLogLevelFromString sets the global log level from a string
func SetLogLevelFromString(levelStr string) {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		SetLogLevel(DEBUG)
	case "INFO":
		SetLogLevel(INFO)
	case "WARN":
		SetLogLevel(WARN)
	case "ERROR":
		SetLogLevel(ERROR)
	default:
		SetLogLevel(INFO)
	}
}

// GetLogLevel returns the current log level
func GetLogLevel() LogLevel {
	return currentLevel
}

// SetOutput redirects all log output, mainly for tests.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// SetJSON switches to logrus' JSON formatter.
func SetJSON(enabled bool) {
	if enabled {
		base.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// WithFields returns a structured entry, e.g.
// logger.WithFields(logger.Fields{"path": p}).Debug("okx.send")
func WithFields(fields Fields) *logrus.Entry {
	return base.WithFields(fields)
}

// Debug logs a debug message if debug level is enabled
func Debug(format string, v ...interface{}) {
	base.Debugf(format, v...)
}

// Info logs an info message if info level is enabled
func Info(format string, v ...interface{}) {
	base.Infof(format, v...)
}

// Warn logs a warning message if warn level is enabled
func Warn(format string, v ...interface{}) {
	base.Warnf(format, v...)
}

// Error logs an error message if error level is enabled
func Error(format string, v ...interface{}) {
	base.Errorf(format, v...)
}

// Debugf is an alias for Debug for consistency
func Debugf(format string, v ...interface{}) {
	Debug(format, v...)
}

// Infof is an alias for Info for consistency
func Infof(format string, v ...interface{}) {
	Info(format, v...)
}

// Warnf is an alias for Warn for consistency
func Warnf(format string, v ...interface{}) {
	Warn(format, v...)
}

// Errorf is an alias for Error for consistency
func Errorf(format string, v ...interface{}) {
	Error(format, v...)
}
