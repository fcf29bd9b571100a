package emptypages

import (
	"fmt"
	"io"
	"os"
)

// ScanConfig holds user options for a detection run
type ScanConfig struct {
	Quiet       bool      // Suppress progress and status messages
	LogWarnings bool      // Whether to print per-file warnings
	Logger      io.Writer // Custom log sink (nil = stdout)
	PageDirName string    // Name of the page description subdirectory
	PageExt     string    // Extension of page description files
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() ScanConfig {
	return ScanConfig{
		Quiet:       false,
		LogWarnings: true,
		Logger:      nil, // stdout
		PageDirName: "page",
		PageExt:     ".xml",
	}
}

// getLogger returns the appropriate io.Writer to use for logging
// based on the configuration settings, defaulting to os.Stdout if nil.
func getLogger(config ScanConfig) io.Writer {
	if config.Logger == nil {
		return os.Stdout
	}
	return config.Logger
}

// logf prints a progress/status message unless in quiet mode.
func logf(config ScanConfig, format string, args ...any) {
	if config.Quiet {
		return
	}
	fmt.Fprintf(getLogger(config), format, args...)
}

// warnf prints a per-file warning unless warnings are disabled.
func warnf(config ScanConfig, format string, args ...any) {
	if !config.LogWarnings {
		return
	}
	fmt.Fprintf(getLogger(config), format, args...)
}
