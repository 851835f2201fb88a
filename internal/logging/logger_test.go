package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureAdapter records written entries for assertions
type captureAdapter struct {
	mu      sync.Mutex
	entries []*LogEntry
}

func (a *captureAdapter) Write(entry *LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

func (a *captureAdapter) Close() error { return nil }
func (a *captureAdapter) Name() string { return "capture" }

func (a *captureAdapter) last() *LogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.entries) == 0 {
		return nil
	}
	return a.entries[len(a.entries)-1]
}

func newCaptureLogger(t *testing.T) (*MultiLogger, *captureAdapter) {
	t.Helper()
	logger := NewMultiLogger()
	capture := &captureAdapter{}
	require.NoError(t, logger.AddAdapter(capture))
	return logger, capture
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLogLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLogLevel("error"))
	assert.Equal(t, InfoLevel, ParseLogLevel("unknown"))
}

func TestMultiLogger_LevelFiltering(t *testing.T) {
	logger, capture := newCaptureLogger(t)
	logger.SetLevel(WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	require.Len(t, capture.entries, 1)
	assert.Equal(t, "warn message", capture.entries[0].Message)
}

func TestMultiLogger_FieldsMerged(t *testing.T) {
	logger, capture := newCaptureLogger(t)

	logger.Info("with fields", map[string]interface{}{"request_id": "abc123"})

	entry := capture.last()
	require.NotNil(t, entry)
	assert.Equal(t, "abc123", entry.Fields["request_id"])
}

func TestMultiLogger_WithFieldPropagates(t *testing.T) {
	logger, capture := newCaptureLogger(t)

	scoped := logger.WithField("request_id", "abc123")
	scoped.Info("scoped message", map[string]interface{}{"extra": "value"})

	entry := capture.last()
	require.NotNil(t, entry)
	assert.Equal(t, "abc123", entry.Fields["request_id"])
	assert.Equal(t, "value", entry.Fields["extra"])

	// The parent logger is untouched
	logger.Info("parent message")
	assert.NotContains(t, capture.last().Fields, "request_id")
}

func TestMultiLogger_DuplicateAdapterRejected(t *testing.T) {
	logger, _ := newCaptureLogger(t)
	assert.Error(t, logger.AddAdapter(&captureAdapter{}))
}

func TestFormatEntry_JSON(t *testing.T) {
	entry := &LogEntry{
		Level:   InfoLevel,
		Message: "hello",
		Fields:  map[string]interface{}{"key": "value"},
	}

	out, err := formatEntry(entry, "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"message":"hello"`)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestFormatEntry_Text(t *testing.T) {
	entry := &LogEntry{
		Level:   ErrorLevel,
		Message: "something broke",
		Fields:  map[string]interface{}{"code": 500},
	}

	out, err := formatEntry(entry, "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[ERROR] something broke")
	assert.Contains(t, out, "code=500")
}

func TestGetGlobalLogger_FallbackWithoutInit(t *testing.T) {
	// Must never return nil, even before InitializeLogging runs
	assert.NotNil(t, GetGlobalLogger())
}
