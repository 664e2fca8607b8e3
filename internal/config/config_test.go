package config_test

import (
	"testing"

	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Appearance.BorderStyle == "" {
		t.Error("Expected default border style to be set")
	}

	if cfg.Appearance.DockPosition != "top" && cfg.Appearance.DockPosition != "bottom" {
		t.Errorf("Expected valid dock position, got %q", cfg.Appearance.DockPosition)
	}

	if cfg.Desktop.Owner == "" {
		t.Error("Expected default owner to be set")
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	// A config file that only sets one key must not blank the rest.
	data := []byte("[appearance]\ntheme = \"nord\"\n")

	cfg := config.DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if cfg.Appearance.Theme != "nord" {
		t.Errorf("theme = %q, want nord", cfg.Appearance.Theme)
	}
	if cfg.Appearance.BorderStyle != "rounded" {
		t.Errorf("border style = %q, want default rounded", cfg.Appearance.BorderStyle)
	}
	if !cfg.Desktop.LockOnStart {
		t.Error("lock_on_start default lost")
	}
}

func TestGetBorderForStyle(t *testing.T) {
	tests := []struct {
		style string
		top   string
	}{
		{"rounded", "─"},
		{"normal", "─"},
		{"thick", "━"},
		{"ascii", "-"},
		{"nonsense", "─"}, // falls back to rounded
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			border := config.GetBorderForStyle(tt.style)
			if border.Top != tt.top {
				t.Errorf("border top = %q, want %q", border.Top, tt.top)
			}
		})
	}

	if config.GetBorderForStyle("ascii").TopLeft != "+" {
		t.Error("ascii border should use + corners")
	}
	if config.GetBorderForStyle("rounded").TopLeft != "╭" {
		t.Error("rounded border should use curved corners")
	}
}
