package config

import (
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/taskmaster/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	writeFile(t, themeFile, `theme:
  accent: "#FF0000"
  create: "#00FF00"
`)
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete != colors.Default().Delete {
		t.Errorf("Expected default delete color, got %s", cfg.ColorScheme.Delete)
	}
}

func TestThemePresets(t *testing.T) {
	for _, name := range colors.Presets() {
		t.Run(name, func(t *testing.T) {
			scheme := colors.ColorScheme{Preset: name}
			scheme.ApplyDefaults()

			if scheme.Accent != colors.GetPreset(name).Accent {
				t.Errorf("accent = %s, want preset %s", scheme.Accent, colors.GetPreset(name).Accent)
			}
			if scheme.ErrorFg == "" || scheme.Completed == "" {
				t.Errorf("preset %s left colors empty: %+v", name, scheme)
			}
		})
	}

	unknown := colors.ColorScheme{Preset: "neon"}
	unknown.ApplyDefaults()
	if unknown.Accent != colors.Default().Accent {
		t.Error("unknown preset should fall back to default colors")
	}
}

func TestMonochromeColorScheme(t *testing.T) {
	mono := MonochromeColorScheme()
	if mono.Preset != "monochrome" || mono.Accent != "#FFFFFF" {
		t.Errorf("unexpected monochrome scheme: %+v", mono)
	}
}
