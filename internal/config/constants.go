package config

// Application constants
const (
	AppName        = "picker"
	AppDescription = "Pick items from a list in the terminal"

	// Directory and file paths
	DefaultConfigDir      = ".config/picker"
	DefaultLogDir         = "logs"
	DefaultConfigFileName = "config.json"
	DefaultLogFileName    = "picker.log"

	// Log levels
	LogLevelTrace = "trace"
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	// Log formats
	LogFormatJSON = "json"
	LogFormatText = "text"

	// Log outputs
	LogOutputFile    = "file"
	LogOutputConsole = "console"
	LogOutputBoth    = "both"
	LogOutputNone    = "none"

	// ActionNone in a key section removes the default binding for that key.
	ActionNone = "none"

	DefaultCursorMarker = ">"
	MaxCursorMarkerLen  = 8

	// Environment variables
	EnvPickerConfig = "PICKER_CONFIG"
	EnvPickerDebug  = "PICKER_DEBUG"

	// File permissions
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// GetValidLogLevels returns all valid log levels
func GetValidLogLevels() []string {
	return []string{
		LogLevelTrace,
		LogLevelDebug,
		LogLevelInfo,
		LogLevelWarn,
		LogLevelError,
	}
}

// GetValidLogFormats returns all valid log formats
func GetValidLogFormats() []string {
	return []string{
		LogFormatJSON,
		LogFormatText,
	}
}

// GetValidLogOutputs returns all valid log outputs
func GetValidLogOutputs() []string {
	return []string{
		LogOutputFile,
		LogOutputConsole,
		LogOutputBoth,
		LogOutputNone,
	}
}

// IsValidLogLevel checks if a log level is valid
func IsValidLogLevel(level string) bool {
	return contains(GetValidLogLevels(), level)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
