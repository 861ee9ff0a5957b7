package logger

import (
	"os"
)

// Init initializes the global logger from LOG_LEVEL and LOG_FORMAT.
func Init() {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		SetLogLevelFromString(logLevel)
	} else {
		SetLogLevel(INFO)
	}
	SetJSON(os.Getenv("LOG_FORMAT") == "json")
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return currentLevel <= DEBUG
}

// IsInfoEnabled returns true if info logging is enabled
func IsInfoEnabled() bool {
	return currentLevel <= INFO
}

// IsWarnEnabled returns true if warn logging is enabled
func IsWarnEnabled() bool {
	return currentLevel <= WARN
}

// IsErrorEnabled returns true if error logging is enabled
func IsErrorEnabled() bool {
	return currentLevel <= ERROR
}
