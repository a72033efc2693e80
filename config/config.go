package config

import "github.com/hajimehoshi/ebiten/v2"

// SwitchConfig holds the console compatibility configuration for a game.
// Platform is fixed at build time; DisplayMode may change while running
// (dock/undock), at which point the display system recomputes Width/Height.
type SwitchConfig struct {
	Platform    Platform
	DisplayMode DisplayMode

	// Target resolution derived from DisplayMode
	Width  int
	Height int

	// Target ticks per second (console games typically target 30 or 60)
	TargetFPS int
	VSync     bool

	// Draw the FPS/TPS overlay
	ShowPerfOverlay bool

	// Desktop-only: key that cycles docked/handheld for testing the
	// mode-change path. Set to -1 to disable.
	DevModeToggleKey ebiten.Key
}

// Switch is the global console configuration
var Switch *SwitchConfig

// DefaultConfig builds a config for the compile-time platform.
func DefaultConfig() *SwitchConfig {
	platform := Current()
	mode := DisplayDocked
	if platform == PlatformHandheld {
		mode = DisplayHandheld
	}
	w, h := mode.Resolution()
	return &SwitchConfig{
		Platform:         platform,
		DisplayMode:      mode,
		Width:            w,
		Height:           h,
		TargetFPS:        60,
		VSync:            true,
		ShowPerfOverlay:  false,
		DevModeToggleKey: ebiten.KeyF10,
	}
}

// DockedConfig builds a config pinned to docked mode.
func DockedConfig() *SwitchConfig {
	c := DefaultConfig()
	c.Platform = PlatformDocked
	c.SetDisplayMode(DisplayDocked)
	return c
}

// HandheldConfig builds a config pinned to handheld mode.
func HandheldConfig() *SwitchConfig {
	c := DefaultConfig()
	c.Platform = PlatformHandheld
	c.SetDisplayMode(DisplayHandheld)
	return c
}

// WithFPS sets the target frame rate.
func (c *SwitchConfig) WithFPS(fps int) *SwitchConfig {
	c.TargetFPS = fps
	return c
}

// SetDisplayMode changes the display mode and recomputes the target
// resolution. The display system picks the change up on its next tick.
func (c *SwitchConfig) SetDisplayMode(mode DisplayMode) {
	c.DisplayMode = mode
	c.Width, c.Height = mode.Resolution()
}

func init() {
	Switch = DefaultConfig()
}
