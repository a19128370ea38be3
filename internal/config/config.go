package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/TonnyWong1052/picker/internal/errors"
	"github.com/TonnyWong1052/picker/internal/logging"
)

// DisplayConfig controls how the list is drawn.
type DisplayConfig struct {
	ShowHelp     bool   `json:"show_help"`     // Show the key binding summary under the list
	CursorMarker string `json:"cursor_marker"` // Drawn in front of the row under the cursor
	ClearOnExit  bool   `json:"clear_on_exit"` // Erase the list when the selection ends
}

// LoggingConfig defines logging configuration options.
type LoggingConfig struct {
	Level   string `json:"level"`    // Log level: trace, debug, info, warn, error
	Format  string `json:"format"`   // Format: json, text
	Output  string `json:"output"`   // Output: file, console, both, none
	LogFile string `json:"log_file"` // Log file path
}

// Config is the main configuration structure for the application.
//
// SingleKeys and MultiKeys map a key name ("j", "ctrl+n", "space") to a
// built-in action name. They are applied on top of the default keymaps.
type Config struct {
	SingleKeys map[string]string `json:"single_keys,omitempty"`
	MultiKeys  map[string]string `json:"multi_keys,omitempty"`
	Display    DisplayConfig     `json:"display"`
	Logging    LoggingConfig     `json:"logging"`
}

// GetConfigPath returns the full path to the configuration file. PICKER_CONFIG
// overrides the default location.
func GetConfigPath() (string, error) {
	if p := os.Getenv(EnvPickerConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFileName), nil
}

func newDefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ShowHelp:     true,
			CursorMarker: DefaultCursorMarker,
		},
		Logging: LoggingConfig{
			Level:   LogLevelInfo,
			Format:  LogFormatText,
			Output:  LogOutputFile,
			LogFile: defaultLogFilePath(),
		},
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return newDefaultConfig()
}

// Load reads the configuration file, or returns defaults when there is none.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, apperrors.ErrConfigLoadFailed("", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file yields defaults.
// Empty fields are filled in and the result is validated.
func LoadFrom(path string) (*Config, error) {
	cfg, err := readFrom(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLenient is Load for commands that inspect or repair the file.
func LoadLenient() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, apperrors.ErrConfigLoadFailed("", err)
	}
	return LoadFromLenient(path)
}

// LoadFromLenient reads the configuration at path but keeps it when it fails
// validation. The config is then returned together with the validation error.
// Read and parse failures still return a nil config.
func LoadFromLenient(path string) (*Config, error) {
	cfg, err := readFrom(path)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func readFrom(path string) (*Config, error) {
	cfg := newDefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, apperrors.ErrConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.ErrConfigLoadFailed(path, err)
	}

	cfg.ValidateAndFix()
	return cfg, nil
}

// Save writes the current configuration to the default path.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return apperrors.ErrConfigSaveFailed("", err)
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return apperrors.ErrConfigSaveFailed(path, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return apperrors.ErrConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return apperrors.ErrConfigSaveFailed(path, err)
	}
	return nil
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	return logging.Config{
		Level:   logging.LogLevel(c.Logging.Level),
		Format:  c.Logging.Format,
		Output:  c.Logging.Output,
		LogFile: c.Logging.LogFile,
	}
}

func defaultLogFilePath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, DefaultConfigDir, DefaultLogDir, DefaultLogFileName)
	}
	return filepath.Join(os.TempDir(), AppName, DefaultLogDir, DefaultLogFileName)
}
