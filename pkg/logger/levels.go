package logger

import (
	"fmt"
	"math"

	charm "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/fngen/errors"
)

// LogLevel is the level name used in configuration and on the command line.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// Charm levels, plus Trace which sits one step below Debug.
const (
	TraceLevel = charm.DebugLevel - 1
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	OffLevel   = charm.Level(math.MaxInt32)
)

// ParseLogLevel validates a configured level name. Empty means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	switch LogLevel(logLevel) {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff:
		return LogLevel(logLevel), nil
	default:
		return "", fmt.Errorf("%w: '%s'. Supported log levels are Trace, Debug, Info, Warning, Off",
			errUtils.ErrInvalidLogLevel, logLevel)
	}
}

// ConvertLogLevel maps a LogLevel onto the charm level scale.
func ConvertLogLevel(level LogLevel) charm.Level {
	switch level {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return DebugLevel
	case LogLevelWarning:
		return WarnLevel
	case LogLevelOff:
		return OffLevel
	default:
		return InfoLevel
	}
}
