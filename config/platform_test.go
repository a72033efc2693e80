package config

import "testing"

func TestCurrentPlatformIsDesktop(t *testing.T) {
	// Tests build without the console tag
	if got := Current(); got != PlatformDesktop {
		t.Errorf("Current() = %v, want PlatformDesktop", got)
	}
}

func TestPlatformResolution(t *testing.T) {
	tests := []struct {
		platform Platform
		w, h     int
	}{
		{PlatformDesktop, 1920, 1080},
		{PlatformDocked, 1920, 1080},
		{PlatformHandheld, 1280, 720},
	}
	for _, tt := range tests {
		w, h := tt.platform.Resolution()
		if w != tt.w || h != tt.h {
			t.Errorf("%s resolution = %dx%d, want %dx%d", tt.platform.Name(), w, h, tt.w, tt.h)
		}
	}
}

func TestIsConsole(t *testing.T) {
	if PlatformDesktop.IsConsole() {
		t.Error("desktop reported as console")
	}
	if !PlatformDocked.IsConsole() || !PlatformHandheld.IsConsole() {
		t.Error("console platforms not reported as console")
	}
}

func TestDisplayModeResolution(t *testing.T) {
	tests := []struct {
		mode DisplayMode
		w, h int
	}{
		{DisplayDocked, 1920, 1080},
		{DisplayHandheld, 1280, 720},
		{DisplayTabletop, 1280, 720},
	}
	for _, tt := range tests {
		w, h := tt.mode.Resolution()
		if w != tt.w || h != tt.h {
			t.Errorf("%s resolution = %dx%d, want %dx%d", tt.mode.Name(), w, h, tt.w, tt.h)
		}
	}
}

func TestConfigConstructors(t *testing.T) {
	t.Run("default follows build platform", func(t *testing.T) {
		c := DefaultConfig()
		if c.Platform != PlatformDesktop {
			t.Errorf("platform = %v, want desktop", c.Platform)
		}
		if c.Width != 1920 || c.Height != 1080 {
			t.Errorf("resolution = %dx%d, want 1920x1080", c.Width, c.Height)
		}
		if c.TargetFPS != 60 {
			t.Errorf("TargetFPS = %d, want 60", c.TargetFPS)
		}
	})

	t.Run("handheld", func(t *testing.T) {
		c := HandheldConfig()
		if c.DisplayMode != DisplayHandheld || c.Width != 1280 || c.Height != 720 {
			t.Errorf("handheld config = %+v", c)
		}
	})

	t.Run("docked", func(t *testing.T) {
		c := DockedConfig()
		if c.DisplayMode != DisplayDocked || c.Width != 1920 || c.Height != 1080 {
			t.Errorf("docked config = %+v", c)
		}
	})

	t.Run("with fps", func(t *testing.T) {
		c := DefaultConfig().WithFPS(30)
		if c.TargetFPS != 30 {
			t.Errorf("TargetFPS = %d, want 30", c.TargetFPS)
		}
	})
}

func TestSetDisplayModeRecomputesResolution(t *testing.T) {
	c := DockedConfig()
	c.SetDisplayMode(DisplayHandheld)
	if c.Width != 1280 || c.Height != 720 {
		t.Errorf("after undock: %dx%d, want 1280x720", c.Width, c.Height)
	}
	c.SetDisplayMode(DisplayDocked)
	if c.Width != 1920 || c.Height != 1080 {
		t.Errorf("after dock: %dx%d, want 1920x1080", c.Width, c.Height)
	}
}
