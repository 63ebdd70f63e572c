//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/icons",
			expected: filepath.Join(home, "icons"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.local/share/pipctl/assets",
			expected: filepath.Join(home, ".local", "share", "pipctl", "assets"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/share/pipctl",
			expected: "/usr/share/pipctl",
		},
		{
			name:     "relative path unchanged",
			input:    "assets",
			expected: "assets",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "pipctl", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestGetPipConfig_Defaults(t *testing.T) {
	cfg := Config{}
	got := cfg.GetPipConfig()

	if got.Enabled == nil || !*got.Enabled {
		t.Error("Enabled should default to true")
	}
	if got.Permitted == nil || !*got.Permitted {
		t.Error("Permitted should default to true")
	}
	if got.PlatformLevel != DefaultPlatformLevel {
		t.Errorf("PlatformLevel = %d, want %d", got.PlatformLevel, DefaultPlatformLevel)
	}
	if got.MinLevel != DefaultMinLevel {
		t.Errorf("MinLevel = %d, want %d", got.MinLevel, DefaultMinLevel)
	}
	if got.PermissionLevel != DefaultPermissionLevel {
		t.Errorf("PermissionLevel = %d, want %d", got.PermissionLevel, DefaultPermissionLevel)
	}
	if got.IconSize != DefaultIconSize {
		t.Errorf("IconSize = %d, want %d", got.IconSize, DefaultIconSize)
	}
	if got.Aspect != DefaultAspect {
		t.Errorf("Aspect = %q, want %q", got.Aspect, DefaultAspect)
	}
}

func TestGetPipConfig_CustomValues(t *testing.T) {
	cfg := Config{
		Pip: PipConfig{
			Enabled:         boolPtr(false),
			Permitted:       boolPtr(false),
			PlatformLevel:   21,
			MinLevel:        20,
			PermissionLevel: 30,
			IconSize:        64,
			Aspect:          "4:3",
		},
	}
	got := cfg.GetPipConfig()

	if *got.Enabled || *got.Permitted {
		t.Error("explicit false flags should be kept")
	}
	if got.PlatformLevel != 21 || got.MinLevel != 20 || got.PermissionLevel != 30 {
		t.Errorf("levels = %d/%d/%d, want 21/20/30", got.PlatformLevel, got.MinLevel, got.PermissionLevel)
	}
	if got.IconSize != 64 {
		t.Errorf("IconSize = %d, want 64", got.IconSize)
	}
	if got.Aspect != "4:3" {
		t.Errorf("Aspect = %q, want %q", got.Aspect, "4:3")
	}
}

func TestGetPipConfig_InvalidAspectFallsBack(t *testing.T) {
	cfg := Config{Pip: PipConfig{Aspect: "wide"}}

	if got := cfg.GetPipConfig().Aspect; got != DefaultAspect {
		t.Errorf("Aspect = %q, want %q", got, DefaultAspect)
	}
}

func TestParseAspect(t *testing.T) {
	tests := []struct {
		input   string
		width   int
		height  int
		wantErr bool
	}{
		{"16:9", 16, 9, false},
		{" 4 : 3 ", 4, 3, false},
		{"1:1", 1, 1, false},
		{"0:9", 0, 0, true},
		{"16:-9", 0, 0, true},
		{"16x9", 0, 0, true},
		{"", 0, 0, true},
		{"a:b", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := ParseAspect(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAspect) {
					t.Errorf("ParseAspect(%q) error = %v, want ErrInvalidAspect", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAspect(%q) error = %v", tt.input, err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("ParseAspect(%q) = %d:%d, want %d:%d", tt.input, w, h, tt.width, tt.height)
			}
		})
	}
}

func TestNotificationsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled *bool
		want    bool
	}{
		{"unset defaults to on", nil, true},
		{"explicit on", boolPtr(true), true},
		{"explicit off", boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Notifications: NotificationsConfig{Enabled: tt.enabled}}
			if got := cfg.NotificationsEnabled(); got != tt.want {
				t.Errorf("NotificationsEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	if got := (&Config{}).GetLogLevel(); got != DefaultLogLevel {
		t.Errorf("GetLogLevel() = %q, want %q", got, DefaultLogLevel)
	}
	if got := (&Config{LogLevel: "debug"}).GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "debug")
	}
}

// chdirTemp moves into a fresh directory holding config.toml with content.
func chdirTemp(t *testing.T, content string) {
	t.Helper()

	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})

	if err := os.WriteFile("config.toml", []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Note: Values may be inherited from ~/.config/pipctl/config.toml if it exists
	// We just verify Load() succeeds and returns a valid config
}

func TestLoad_BasicConfig(t *testing.T) {
	chdirTemp(t, `
icons = "unicode"
log_level = "debug"
assets_dir = "~/pip-icons"

[pip]
permitted = false
platform_level = 25
aspect = "21:9"

[controls]
back = ""
forward = "skip.png"

[notifications]
enabled = false
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want %q", cfg.Icons, "unicode")
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("GetLogLevel() = %q, want %q", cfg.GetLogLevel(), "debug")
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "pip-icons"); cfg.AssetsDir != want {
		t.Errorf("AssetsDir = %q, want %q", cfg.AssetsDir, want)
	}

	pip := cfg.GetPipConfig()
	if *pip.Permitted {
		t.Error("Permitted = true, want false")
	}
	if !*pip.Enabled {
		t.Error("Enabled = false, want default true")
	}
	if pip.PlatformLevel != 25 {
		t.Errorf("PlatformLevel = %d, want 25", pip.PlatformLevel)
	}
	if pip.Aspect != "21:9" {
		t.Errorf("Aspect = %q, want %q", pip.Aspect, "21:9")
	}

	// Explicit empty hides the control, unset keeps the default name
	if cfg.Controls.Back != "" {
		t.Errorf("Controls.Back = %q, want empty", cfg.Controls.Back)
	}
	if cfg.Controls.Forward != "skip.png" {
		t.Errorf("Controls.Forward = %q, want %q", cfg.Controls.Forward, "skip.png")
	}
	if cfg.Controls.Resume != "play.png" || cfg.Controls.Pause != "pause.png" {
		t.Errorf("Controls play/pause = %q/%q, want defaults", cfg.Controls.Resume, cfg.Controls.Pause)
	}

	if cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = true, want false")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	chdirTemp(t, "invalid = [[[")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}
