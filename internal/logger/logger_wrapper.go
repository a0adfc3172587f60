package logger

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// ErrUnknownDestination is returned by SetDestination for unsupported destinations.
var ErrUnknownDestination = errors.New("unknown log destination")

// ZapLogger implements contracts.Logger on top of go.uber.org/zap.
type ZapLogger struct {
	mu     sync.RWMutex
	logger *zap.Logger
	level  zap.AtomicLevel
	closer func() // releases a file destination, nil for the console
}

// NewZapLogger creates a console logger writing to the standard error stream.
// Levels are colored when stderr is a terminal.
func NewZapLogger() contracts.Logger {
	z := &ZapLogger{level: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
	z.logger = z.build(newStderrCore())
	return z
}

// NewZapLoggerWithCore wraps an existing core, mainly for tests using zaptest/observer.
func NewZapLoggerWithCore(core zapcore.Core) contracts.Logger {
	z := &ZapLogger{level: zap.NewAtomicLevelAt(zapcore.InfoLevel)}
	z.logger = z.build(core)
	return z
}

func newStderrCore() zapcore.Core {
	fd := os.Stderr.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return zapcore.NewCore(newConsoleEncoder(color), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
}

func newConsoleEncoder(color bool) zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func (z *ZapLogger) build(core zapcore.Core) *zap.Logger {
	return zap.New(leveledCore{Core: core, level: z.level}, zap.AddCaller(), zap.AddCallerSkip(2))
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
}

// Field returns a builder for typed log fields
func (z *ZapLogger) Field() contracts.Field {
	return zapField{}
}

// SetLevel sets the minimum level that is written
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(toZapLevel(level))
}

// SetDestination redirects output to the console or to a file.
// A file destination replaces the current core, including one passed to NewZapLoggerWithCore.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) error {
	var (
		core   zapcore.Core
		closer func()
	)

	switch dest {
	case contracts.ConsoleLog:
		core = newStderrCore()
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			return fmt.Errorf("%w: file destination without a path", ErrUnknownDestination)
		}
		sink, closeFn, err := zap.Open(filePath[0])
		if err != nil {
			return fmt.Errorf("open log file %s: %w", filePath[0], err)
		}
		core = zapcore.NewCore(newConsoleEncoder(false), sink, zapcore.DebugLevel)
		closer = closeFn
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDestination, dest)
	}

	z.mu.Lock()
	old, oldCloser := z.logger, z.closer
	z.logger, z.closer = z.build(core), closer
	z.mu.Unlock()

	_ = old.Sync()
	if oldCloser != nil {
		oldCloser()
	}
	return nil
}

// Sync flushes buffered log entries
func (z *ZapLogger) Sync() error {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.logger.Sync()
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	z.mu.RLock()
	l := z.logger
	z.mu.RUnlock()

	zf := toZapFields(fields)
	switch level {
	case zapcore.DebugLevel:
		l.Debug(msg, zf...)
	case zapcore.InfoLevel:
		l.Info(msg, zf...)
	case zapcore.WarnLevel:
		l.Warn(msg, zf...)
	case zapcore.ErrorLevel:
		l.Error(msg, zf...)
	case zapcore.FatalLevel:
		l.Fatal(msg, zf...)
	}
}

func toZapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []contracts.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if zf, ok := f.(zapField); ok {
			out = append(out, zf.f)
		}
	}
	return out
}

// leveledCore applies the logger's atomic level in front of any core.
type leveledCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c leveledCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c leveledCore) With(fields []zapcore.Field) zapcore.Core {
	return leveledCore{Core: c.Core.With(fields), level: c.level}
}

func (c leveledCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

// zapField implements contracts.Field
type zapField struct {
	f zap.Field
}

func newField(f zap.Field) contracts.Field {
	return zapField{f: f}
}

func (zapField) Bool(key string, val bool) contracts.Field { return newField(zap.Bool(key, val)) }

func (zapField) Int(key string, val int) contracts.Field { return newField(zap.Int(key, val)) }

func (zapField) Float64(key string, val float64) contracts.Field {
	return newField(zap.Float64(key, val))
}

func (zapField) String(key string, val string) contracts.Field {
	return newField(zap.String(key, val))
}

func (zapField) Time(key string, val time.Time) contracts.Field { return newField(zap.Time(key, val)) }

func (zapField) Duration(key string, val time.Duration) contracts.Field {
	return newField(zap.Duration(key, val))
}

func (zapField) Int64(key string, val int64) contracts.Field { return newField(zap.Int64(key, val)) }

func (zapField) Error(key string, val error) contracts.Field {
	return newField(zap.NamedError(key, val))
}

func (zapField) Uint64(key string, val uint64) contracts.Field {
	return newField(zap.Uint64(key, val))
}

func (zapField) Uint8(key string, val uint8) contracts.Field { return newField(zap.Uint8(key, val)) }
