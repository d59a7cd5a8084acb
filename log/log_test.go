package log

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	textFormatter, ok := NewFormatter("").(*logrus.TextFormatter)
	assert.NotNil(t, textFormatter)
	assert.True(t, ok)

	jsonFormatter, ok := NewFormatter("json").(*JSONFormatter)
	assert.NotNil(t, jsonFormatter)
	assert.True(t, ok)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"error":   ErrorLevel,
		"WARN":    WarnLevel,
		"warning": WarnLevel,
		"debug":   DebugLevel,
		"":        InfoLevel,
		"bogus":   InfoLevel,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(in))
		})
	}
}

func TestGet_LevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "error")
	assert.Equal(t, ErrorLevel, Get().Level())

	t.Setenv(LevelEnv, "")
	assert.Equal(t, InfoLevel, Get().Level())
}

func TestLogger_WithPrefix(t *testing.T) {
	raw, hook := test.NewNullLogger()
	logger := FromLogrus(raw).WithPrefix("regexp")

	logger.WithError(errors.New("boom")).Warn("warned")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "regexp", entry.Data["prefix"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestLogger_WithErrorNil(t *testing.T) {
	raw, hook := test.NewNullLogger()
	logger := FromLogrus(raw)

	logger.WithError(nil).Info("no error")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.NotContains(t, entry.Data, logrus.ErrorKey)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer

	logger := New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&JSONFormatter{DisableTimestamp: true})

	logger.WithField("pattern", "[").WithError(errors.New("missing closing ]")).Error("invalid regular expression")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "[", got["pattern"])
	assert.Equal(t, "missing closing ]", got["error"])
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "invalid regular expression", got["msg"])
	assert.NotContains(t, got, "time")
}

func BenchmarkFormatter(b *testing.B) {
	b.Run("json", func(b *testing.B) {
		benchmarkFormatter(b, "json")
	})
	b.Run("default", func(b *testing.B) {
		benchmarkFormatter(b, "")
	})
}

func benchmarkFormatter(b *testing.B, formatter string) {
	logger := logrus.New()
	logger.Out = io.Discard
	logger.Formatter = NewFormatter(formatter)

	err := errors.New("Test error value")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i <= b.N; i++ {
		logger.WithError(err).WithField("prefix", "regexp").Info("This is a typical log message")
	}
}
