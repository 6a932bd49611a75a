package config

import "github.com/rshade/ecodash/internal/logging"

// ToLoggingConfig converts the logging section to a logging.Config.
// A configured File switches output to the file; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,

		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
	}
}

// GetLoggingConfig returns a copy of the global logging section. Callers
// apply flag and environment overrides on the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
