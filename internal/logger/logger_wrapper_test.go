package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

func newObserved() (contracts.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLoggerWithCore(core), logs
}

func TestZapLogger_DefaultLevelIsInfo(t *testing.T) {
	log, logs := newObserved()

	log.Debug("hidden")
	log.Info("shown")
	log.Warn("warned")
	log.Error("failed")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "shown", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestZapLogger_SetLevel(t *testing.T) {
	log, logs := newObserved()

	log.SetLevel(contracts.DebugLevel)
	log.Debug("now visible")
	log.SetLevel(contracts.ErrorLevel)
	log.Info("dropped")
	log.Warn("dropped")
	log.Error("kept")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "now visible", entries[0].Message)
	assert.Equal(t, "kept", entries[1].Message)
}

func TestZapLogger_Fields(t *testing.T) {
	log, logs := newObserved()

	log.Info("port opened",
		log.Field().String("port", "Input"),
		log.Field().Int("client", 128),
		log.Field().Uint8("channel", 9),
		log.Field().Bool("virtual", true),
		log.Field().Duration("took", time.Millisecond),
		log.Field().Error("error", errors.New("boom")),
	)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Input", ctx["port"])
	assert.EqualValues(t, 128, ctx["client"])
	assert.EqualValues(t, 9, ctx["channel"])
	assert.Equal(t, true, ctx["virtual"])
	assert.Equal(t, time.Millisecond, ctx["took"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestZapLogger_SetDestinationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.log")
	log, logs := newObserved()

	require.NoError(t, log.SetDestination(contracts.FileLog, path))
	log.Info("[    0.000001] - Debug   - Hello, world!")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO")
	assert.Contains(t, string(data), "Hello, world!")
	assert.Zero(t, logs.Len(), "observer core is replaced by the file destination")

	require.NoError(t, log.SetDestination(contracts.ConsoleLog))
}

func TestZapLogger_SetDestinationErrors(t *testing.T) {
	log, _ := newObserved()

	assert.ErrorIs(t, log.SetDestination(contracts.FileLog), ErrUnknownDestination)
	assert.ErrorIs(t, log.SetDestination("syslog"), ErrUnknownDestination)
}
