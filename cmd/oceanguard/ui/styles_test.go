package ui

import (
	"strings"
	"testing"

	"oceanguard/internal/config"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if dark := DetectTheme(); !dark.IsDark {
		t.Fatalf("expected dark theme for a black background")
	}

	t.Setenv("COLORFGBG", "0;15")
	if light := DetectTheme(); light.IsDark {
		t.Fatalf("expected light theme for a white background")
	}

	t.Setenv("COLORFGBG", "")
	if light := DetectTheme(); light.IsDark {
		t.Fatalf("expected light theme when COLORFGBG is unset")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	if !ThemeFor(config.ThemeDark).IsDark {
		t.Error("dark config should give dark theme")
	}
	if ThemeFor(config.ThemeLight).IsDark {
		t.Error("light config should give light theme")
	}
	if ThemeFor(config.ThemeAuto).IsDark {
		t.Error("auto with no hint should give light theme")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := s.RenderDivider(5); !strings.Contains(got, "─────") {
		t.Fatalf("unexpected divider %q", got)
	}
}
