package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/conneroisu/mstparse/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{" Debug ", LevelDebug},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("cli").Info(context.Background(), "parsed template", "nodes", 3)

	out := buf.String()
	assert.Contains(t, out, `"msg":"parsed template"`)
	assert.Contains(t, out, `"component":"cli"`)
	assert.Contains(t, out, `"nodes":3`)
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelWarn, Format: "text", Output: &buf})

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "also hidden")
	assert.Empty(t, buf.String())

	logger.Warn(context.Background(), errors.New("boom"), "shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "boom")
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelDebug, Format: "json", Output: &buf})

	child := logger.With("input_bytes", 12)
	child.Info(context.Background(), "ready")

	assert.Contains(t, buf.String(), `"input_bytes":12`)
}

func TestTraceSinkEmitsParserEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelDebug, Format: "json", Output: &buf})

	p := parser.New(parser.DefaultLimits(), parser.WithTracer(NewTraceSink(logger)))
	nodes, err := p.Parse("Hi {{name}}")
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	out := buf.String()
	assert.Contains(t, out, "parsed text node")
	assert.Contains(t, out, "entering variable")
	assert.Contains(t, out, "exiting variable")
	assert.Contains(t, out, `"component":"parser"`)
}
