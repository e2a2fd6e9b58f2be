package logging

import (
	"log"
	"os"
)

// Logger provides level-gated logging for the papersketch server. All output
// goes through the standard library logger so timestamps stay consistent with
// anything third-party libraries print.
type Logger struct {
	debugEnabled bool
	out          *log.Logger
}

var globalLogger *Logger

// Initialize sets up the global logger. Debug output is suppressed unless
// debugMode is set.
func Initialize(debugMode bool) {
	globalLogger = &Logger{
		debugEnabled: debugMode,
		out:          log.New(os.Stdout, "", log.LstdFlags),
	}
}

// Info logs informational messages (always shown)
func Info(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.out.Printf(format, args...)
	}
}

// Debug logs debug messages (only shown when debug mode is enabled)
func Debug(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.debugEnabled {
		globalLogger.out.Printf("DEBUG: "+format, args...)
	}
}

// Error logs error messages (always shown)
func Error(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.out.Printf("ERROR: "+format, args...)
	}
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return globalLogger != nil && globalLogger.debugEnabled
}
