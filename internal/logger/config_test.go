package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFormat_String(t *testing.T) {
	tests := []struct {
		name     string
		format   LogFormat
		expected string
	}{
		{"json", FormatJSON, "json"},
		{"console", FormatConsole, "console"},
		{"text", FormatText, "text"},
		{"unknown falls back to console", LogFormat(99), "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()

	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, FormatConsole, cfg.Format)
	assert.True(t, cfg.EnableConsole)
	assert.False(t, cfg.EnableFile)
	assert.Empty(t, cfg.FilePath)
}

func TestLogFormatParser_ParseFormat(t *testing.T) {
	parser := NewLogFormatParser()

	assert.Equal(t, FormatJSON, parser.ParseFormat("JSON"))
	assert.Equal(t, FormatText, parser.ParseFormat("text"))
	assert.Equal(t, FormatConsole, parser.ParseFormat(""))
	assert.Equal(t, FormatConsole, parser.ParseFormat("xml"))
}

func TestLogLevelParser_ParseLevel(t *testing.T) {
	parser := NewLogLevelParser()

	level, err := parser.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	level, err = parser.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	_, err = parser.ParseLevel("verbose")
	assert.Error(t, err)
}
