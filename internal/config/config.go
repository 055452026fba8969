// Package config resolves the storage directory and optional settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also the env prefix.
	AppName = "simpletasks"

	// DirName is the default storage directory name under $HOME.
	DirName = ".simpletasks"

	// DataFile is the default snapshot filename.
	DataFile = "data.json"

	// ConfigFile is the optional settings file inside the storage directory.
	ConfigFile = "config.yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid is returned for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the storage directory path.
	Dir string

	// DataFile is the snapshot filename, relative to Dir unless absolute.
	DataFile string

	// Color is one of auto, always, never.
	Color string

	// LogFile, when set, receives debug logs (relative to Dir unless absolute).
	LogFile string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New resolves configuration. Precedence for the directory is dir,
// then SIMPLETASKS_DIR, then $HOME/.simpletasks. Other keys come from
// SIMPLETASKS_* env vars, then config.yaml in the directory, then defaults.
func New(dir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(AppName)
	v.AutomaticEnv()
	v.SetDefault("data_file", DataFile)
	v.SetDefault("color", ColorAuto)

	if dir == "" {
		dir = v.GetString("dir")
	}
	if dir == "" {
		dir = DefaultDir()
	}
	dir = expandHome(dir)

	cfgPath := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(cfgPath); err == nil {
		v.SetConfigFile(cfgPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Dir:      dir,
		DataFile: strings.TrimSpace(v.GetString("data_file")),
		Color:    strings.ToLower(strings.TrimSpace(v.GetString("color"))),
		LogFile:  strings.TrimSpace(v.GetString("log_file")),
	}
	if cfg.DataFile == "" {
		return nil, fmt.Errorf("%w: data_file must not be empty", ErrInvalid)
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, cfg.Color)
	}
	return cfg, nil
}

// DefaultDir returns $HOME/.simpletasks, or .simpletasks when the home
// directory cannot be determined.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DirName
	}
	return filepath.Join(home, DirName)
}

// DataPath returns the snapshot path.
func (c *Config) DataPath() string {
	name := c.DataFile
	if name == "" {
		name = DataFile
	}
	return c.resolve(name)
}

// LogPath returns the debug log path, or "" when file logging is off.
func (c *Config) LogPath() string {
	if c.LogFile == "" {
		return ""
	}
	return c.resolve(c.LogFile)
}

// ColorMode returns Color, defaulting to auto.
func (c *Config) ColorMode() string {
	if c.Color == "" {
		return ColorAuto
	}
	return c.Color
}

// EnsureDir creates the storage directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

func (c *Config) resolve(name string) string {
	name = expandHome(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		if home, _ := os.UserHomeDir(); home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
