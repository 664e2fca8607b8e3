// Package config holds deskfolio's user configuration and the UI
// constants shared across packages.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig is the on-disk configuration, stored as TOML under the
// XDG config directory.
type UserConfig struct {
	Appearance AppearanceConfig `toml:"appearance"`
	Desktop    DesktopConfig    `toml:"desktop"`
}

// AppearanceConfig controls theming and chrome.
type AppearanceConfig struct {
	// Theme is a bubbletint theme id, or empty to use the terminal's
	// own colors.
	Theme        string `toml:"theme"`
	BorderStyle  string `toml:"border_style"`  // rounded, normal, thick, ascii
	DockPosition string `toml:"dock_position"` // bottom or top
	ShowSysinfo  bool   `toml:"show_sysinfo"`  // CPU/RAM readout in the dock
}

// DesktopConfig controls the desktop's content and startup behavior.
type DesktopConfig struct {
	Owner       string `toml:"owner"`
	Tagline     string `toml:"tagline"`
	LockOnStart bool   `toml:"lock_on_start"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:        "dracula",
			BorderStyle:  "rounded",
			DockPosition: "bottom",
			ShowSysinfo:  true,
		},
		Desktop: DesktopConfig{
			Owner:       "guest",
			Tagline:     "a desktop that lives in your terminal",
			LockOnStart: true,
		},
	}
}

// GetConfigPath returns the path of the configuration file, creating
// parent directories as needed.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile("deskfolio/config.toml")
	if err != nil {
		return "", fmt.Errorf("could not resolve config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the configuration file, writing the defaults
// first if no file exists yet. Unknown keys are ignored; missing keys
// keep their defaults.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveConfig writes the configuration with a short header.
func SaveConfig(cfg *UserConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# deskfolio configuration\n")
	sb.WriteString("# theme: any bubbletint theme id, or empty for terminal colors\n")
	sb.WriteString("# border_style: rounded, normal, thick or ascii\n\n")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// normalize folds invalid enum values back to their defaults so the
// rest of the program never has to re-validate them.
func (c *UserConfig) normalize() {
	switch c.Appearance.DockPosition {
	case "top", "bottom":
	default:
		c.Appearance.DockPosition = "bottom"
	}
	switch c.Appearance.BorderStyle {
	case "rounded", "normal", "thick", "ascii":
	default:
		c.Appearance.BorderStyle = "rounded"
	}
}
