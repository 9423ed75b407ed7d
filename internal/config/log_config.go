package config

// LogConfig is the log_config section of the configuration file. All fields
// are optional; defaults come from NewDefaultLogConfig.
type LogConfig struct {
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty" validate:"omitempty,filepath"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
}

// NewDefaultLogConfig returns the logging defaults: console output only,
// info level.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		LogFile:       DefaultLogFile,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
		MaxLogBackups: DefaultMaxLogBackups,
	}
}
