package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/lagoon-games/switchkit/components"
	cfg "github.com/lagoon-games/switchkit/config"
)

// UpdateDisplay keeps the display state in sync with the global config.
// When the display mode changes (dock/undock, or the desktop dev toggle)
// it recomputes the resolution, resizes the window on desktop, and
// persists the new settings.
func UpdateDisplay(e *ecs.ECS) {
	handleDevToggle()

	display := GetOrCreateDisplay(e)
	if display.Mode == cfg.Switch.DisplayMode && display.VSync == cfg.Switch.VSync {
		return
	}

	applyDisplayConfig(display, cfg.Switch)
	SaveCurrentDisplaySettings()
}

// SetDisplayMode triggers a dock/undock transition. The new resolution
// takes effect on the next display system tick.
func SetDisplayMode(mode cfg.DisplayMode) {
	cfg.Switch.SetDisplayMode(mode)
}

// applyDisplayConfig publishes the config to the display component and
// the window. Window sizing only applies on desktop; on the console the
// output follows the dock state on its own.
func applyDisplayConfig(display *components.DisplayData, c *cfg.SwitchConfig) {
	display.Mode = c.DisplayMode
	display.Width = c.Width
	display.Height = c.Height
	display.VSync = c.VSync

	ebiten.SetVsyncEnabled(c.VSync)
	if !c.Platform.IsConsole() {
		ebiten.SetWindowSize(c.Width, c.Height)
	}

	log.Printf("Display mode: %s (%dx%d)", c.DisplayMode.Name(), c.Width, c.Height)
}

// handleDevToggle cycles docked/handheld on desktop builds so the
// mode-change path can be exercised without hardware.
func handleDevToggle() {
	if cfg.Switch.Platform.IsConsole() || cfg.Switch.DevModeToggleKey < 0 {
		return
	}
	if !inpututil.IsKeyJustPressed(cfg.Switch.DevModeToggleKey) {
		return
	}

	if cfg.Switch.DisplayMode == cfg.DisplayDocked {
		cfg.Switch.SetDisplayMode(cfg.DisplayHandheld)
	} else {
		cfg.Switch.SetDisplayMode(cfg.DisplayDocked)
	}
}

// GetOrCreateDisplay returns the singleton display component, creating
// and initializing it from the global config if needed.
func GetOrCreateDisplay(e *ecs.ECS) *components.DisplayData {
	entry, ok := components.Display.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Display))
		display := components.Display.Get(entry)
		display.Mode = cfg.Switch.DisplayMode
		display.Width = cfg.Switch.Width
		display.Height = cfg.Switch.Height
		display.VSync = cfg.Switch.VSync
		return display
	}
	return components.Display.Get(entry)
}
