package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultPlatformLevel   = 26
	DefaultMinLevel        = 24
	DefaultPermissionLevel = 26
	DefaultIconSize        = 48
	DefaultAspect          = "16:9"
	DefaultLogLevel        = "info"
)

var ErrInvalidAspect = errors.New("aspect must look like 16:9")

type Config struct {
	Icons     string `koanf:"icons"`      // "nerd", "unicode", or "none"
	LogLevel  string `koanf:"log_level"`  // zerolog level name
	AssetsDir string `koanf:"assets_dir"` // where control icons live

	Pip           PipConfig           `koanf:"pip"`
	Controls      ControlsConfig      `koanf:"controls"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

// PipConfig describes the floating window host.
type PipConfig struct {
	Enabled         *bool  `koanf:"enabled"`        // host supports floating windows (default: true)
	Permitted       *bool  `koanf:"permitted"`      // user allowed floating windows (default: true)
	PlatformLevel   int    `koanf:"platform_level"` // level the host reports
	MinLevel        int    `koanf:"min_platform_level"`
	PermissionLevel int    `koanf:"permission_level"` // level from which permission is checked
	IconSize        int    `koanf:"icon_size"`        // control icon edge in pixels
	Aspect          string `koanf:"aspect"`           // e.g. "16:9"
}

// ControlsConfig holds the control icon file names. An empty name hides the
// control.
type ControlsConfig struct {
	Back    string `koanf:"back"`
	Resume  string `koanf:"resume"`
	Pause   string `koanf:"pause"`
	Forward string `koanf:"forward"`
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Controls: ControlsConfig{
			Back:    "back.png",
			Resume:  "play.png",
			Pause:   "pause.png",
			Forward: "forward.png",
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.AssetsDir != "" {
		cfg.AssetsDir = expandPath(cfg.AssetsDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/pipctl/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pipctl", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLogLevel returns the configured log level name.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// GetPipConfig returns the floating window configuration with defaults applied.
func (c *Config) GetPipConfig() PipConfig {
	cfg := c.Pip

	if cfg.Enabled == nil {
		cfg.Enabled = boolPtr(true)
	}
	if cfg.Permitted == nil {
		cfg.Permitted = boolPtr(true)
	}
	if cfg.PlatformLevel <= 0 {
		cfg.PlatformLevel = DefaultPlatformLevel
	}
	if cfg.MinLevel <= 0 {
		cfg.MinLevel = DefaultMinLevel
	}
	if cfg.PermissionLevel <= 0 {
		cfg.PermissionLevel = DefaultPermissionLevel
	}
	if cfg.IconSize <= 0 {
		cfg.IconSize = DefaultIconSize
	}
	if _, _, err := ParseAspect(cfg.Aspect); err != nil {
		cfg.Aspect = DefaultAspect
	}

	return cfg
}

// ParseAspect parses a "width:height" ratio with positive sides.
func ParseAspect(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspect, s)
	}
	width, errW := strconv.Atoi(strings.TrimSpace(w))
	height, errH := strconv.Atoi(strings.TrimSpace(h))
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspect, s)
	}
	return width, height, nil
}

func boolPtr(b bool) *bool { return &b }
