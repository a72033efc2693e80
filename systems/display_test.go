package systems

import (
	"testing"

	"github.com/lagoon-games/switchkit/components"
	cfg "github.com/lagoon-games/switchkit/config"
)

func TestApplyDisplayConfig(t *testing.T) {
	display := &components.DisplayData{}
	c := cfg.HandheldConfig()

	applyDisplayConfig(display, c)

	if display.Mode != cfg.DisplayHandheld {
		t.Errorf("mode = %v, want handheld", display.Mode)
	}
	if display.Width != 1280 || display.Height != 720 {
		t.Errorf("resolution = %dx%d, want 1280x720", display.Width, display.Height)
	}
	if display.AspectRatio() != 16.0/9.0 {
		t.Errorf("aspect ratio = %v, want 16:9", display.AspectRatio())
	}
}

func TestApplySavedDisplaySettings(t *testing.T) {
	orig := *cfg.Switch
	defer func() { *cfg.Switch = orig }()

	t.Run("nil is a no-op", func(t *testing.T) {
		*cfg.Switch = orig
		ApplySavedDisplaySettings(nil)
		if cfg.Switch.DisplayMode != orig.DisplayMode {
			t.Error("nil settings changed the display mode")
		}
	})

	t.Run("saved mode applies on desktop", func(t *testing.T) {
		*cfg.Switch = orig
		ApplySavedDisplaySettings(&SavedDisplaySettings{
			DisplayMode:     int(cfg.DisplayHandheld),
			VSync:           false,
			ShowPerfOverlay: true,
		})
		if cfg.Switch.DisplayMode != cfg.DisplayHandheld {
			t.Errorf("mode = %v, want handheld", cfg.Switch.DisplayMode)
		}
		if cfg.Switch.Width != 1280 || cfg.Switch.Height != 720 {
			t.Errorf("resolution = %dx%d, want 1280x720", cfg.Switch.Width, cfg.Switch.Height)
		}
		if cfg.Switch.VSync || !cfg.Switch.ShowPerfOverlay {
			t.Error("vsync/overlay preferences not applied")
		}
	})

	t.Run("unknown mode is ignored", func(t *testing.T) {
		*cfg.Switch = orig
		ApplySavedDisplaySettings(&SavedDisplaySettings{DisplayMode: 42, VSync: orig.VSync})
		if cfg.Switch.DisplayMode != orig.DisplayMode {
			t.Errorf("mode = %v, want unchanged %v", cfg.Switch.DisplayMode, orig.DisplayMode)
		}
	})
}
