package contracts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// LogLevelEnv is the environment variable that selects the logging verbosity.
const LogLevelEnv = "MIDISEQ_LOG"

// LogLevel represents the severity level for logging.
// The zero value means "not set" and is replaced by InfoLevel when options are applied.
type LogLevel int

const (
	// DebugLevel indicates debug messages that are useful for developers to troubleshoot issues.
	DebugLevel LogLevel = iota + 1
	// InfoLevel indicates informational messages, including every captured event.
	InfoLevel
	// WarnLevel indicates potentially harmful situations that should be monitored.
	WarnLevel
	// ErrorLevel indicates error messages that represent serious issues that need attention.
	ErrorLevel
	// FatalLevel indicates very severe error events that will presumably lead the application to abort.
	FatalLevel
)

// ErrInvalidLogLevel is returned by ParseLogLevel for unknown level names.
var ErrInvalidLogLevel = errors.New("invalid log level")

var levelNames = map[LogLevel]string{
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

// String returns the lower-case level name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLogLevel converts a level name such as "debug" or "WARN" into a LogLevel.
// "warning" is accepted as an alias of "warn".
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}

// LogDestination specifies where the log messages should be directed.
type LogDestination string

const (
	// ConsoleLog directs log messages to the standard error stream.
	ConsoleLog LogDestination = "console"
	// FileLog directs log messages to a file.
	FileLog LogDestination = "file"
)

// Field is a typed key/value pair attached to a log record.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Time(key string, val time.Time) Field
	Duration(key string, val time.Duration) Field
	Int64(key string, val int64) Field
	Error(key string, val error) Field
	Uint64(key string, val uint64) Field
	Uint8(key string, val uint8) Field
}

// Logger provides leveled, structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
	SetDestination(dest LogDestination, filePath ...string) error
	Sync() error
}
