package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Viper keys, shared with the command-line flags
const (
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyTPS      = "tps"
	KeyOpen     = "open"
	KeyLogLevel = "log-level"
)

// NewViper returns a viper instance reading DEVMENU_* environment variables
// and, when path is not empty, the given config file.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("devmenu")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return v, nil
}

// Load overlays values set in v onto the global configuration
func Load(v *viper.Viper) error {
	width, height, tps := C.Width, C.Height, C.TPS
	if v.IsSet(KeyWidth) {
		width = v.GetInt(KeyWidth)
	}
	if v.IsSet(KeyHeight) {
		height = v.GetInt(KeyHeight)
	}
	if v.IsSet(KeyTPS) {
		tps = v.GetInt(KeyTPS)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, width, height)
	}
	if tps <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, tps)
	}

	level := Debug.LogLevel
	if v.IsSet(KeyLogLevel) {
		level = v.GetString(KeyLogLevel)
	}
	if _, err := ParseLogLevel(level); err != nil {
		return err
	}

	C.Width, C.Height, C.TPS = width, height, tps
	Debug.LogLevel = level
	if v.IsSet(KeyOpen) {
		Debug.StartOpen = v.GetBool(KeyOpen)
	}
	return nil
}

// ParseLogLevel maps a level name to a slog level
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, name)
	}
	return level, nil
}
