package logger

import "github.com/rs/zerolog"

// LoggerConfig is the resolved logger setup after the file-level settings
// have been parsed into zerolog types.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// LogFormat selects how log lines are rendered
type LogFormat int

// Supported output formats
const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

var formatNames = map[LogFormat]string{
	FormatJSON:    "json",
	FormatConsole: "console",
	FormatText:    "text",
}

// String returns the format name; unknown values render as console, the
// same fallback the writer factory applies.
func (lf LogFormat) String() string {
	if name, ok := formatNames[lf]; ok {
		return name
	}
	return FormatConsole.String()
}

// DefaultLoggerConfig returns the setup used when no log section is
// configured: colored console output on stderr at info level, no file.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		MaxSizeMB:     100,
		MaxBackups:    3,
	}
}
