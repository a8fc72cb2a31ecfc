package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// useObserver swaps the package logger for an observer until the test ends
func useObserver(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	original := defaultLogger
	t.Cleanup(func() { defaultLogger = original })

	core, recorded := observer.New(level)
	defaultLogger = zap.New(core)
	return recorded
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInfoLogging(t *testing.T) {
	recorded := useObserver(t, zapcore.InfoLevel)

	Info("cache created", "cache", "sessions", "capacity", 100)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, zapcore.InfoLevel, logs[0].Level)
	assert.Equal(t, "cache created", logs[0].Message)

	fields := logs[0].ContextMap()
	assert.Equal(t, "sessions", fields["cache"])
	assert.Equal(t, int64(100), fields["capacity"])
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     zapcore.Level
		logFunc   func(string, ...interface{})
		shouldLog bool
	}{
		{"Debug with Info level", zapcore.InfoLevel, Debug, false},
		{"Info with Info level", zapcore.InfoLevel, Info, true},
		{"Warn with Info level", zapcore.InfoLevel, Warn, true},
		{"Error with Info level", zapcore.InfoLevel, Error, true},
		{"Debug with Debug level", zapcore.DebugLevel, Debug, true},
		{"Info with Warn level", zapcore.WarnLevel, Info, false},
		{"Error with Warn level", zapcore.WarnLevel, Error, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorded := useObserver(t, tt.level)
			tt.logFunc("test message")
			assert.Equal(t, tt.shouldLog, recorded.Len() > 0)
		})
	}
}

func TestWithMethod(t *testing.T) {
	recorded := useObserver(t, zapcore.InfoLevel)

	log := With("cache", "sessions").With("shard", 2)
	log.Info("entry evicted")

	logs := recorded.All()
	require.Len(t, logs, 1)
	fields := logs[0].ContextMap()
	assert.Equal(t, "sessions", fields["cache"])
	assert.Equal(t, int64(2), fields["shard"])
}

func TestInitLoggerToFile(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	path := filepath.Join(t.TempDir(), "lrucache.log")
	require.NoError(t, InitLogger(DebugLevel, path))

	Debug("written to file", "key", "value")
	require.NoError(t, defaultLogger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written to file"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitLoggerBadPath(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	// A regular file cannot be used as a directory
	parent := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(parent, nil, 0o644))

	err := InitLogger(InfoLevel, filepath.Join(parent, "app.log"))
	assert.Error(t, err)
}
