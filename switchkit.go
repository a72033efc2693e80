// Package switchkit helps port Ebiten games to a Switch-style game
// console. It layers a console button vocabulary over Ebiten's keyboard
// and gamepad input, detects the build target, and manages the
// docked/handheld display configuration - so game logic written against
// Joy-Con buttons runs unchanged on a desktop development machine.
//
// Typical usage:
//
//	world := donburi.NewWorld()
//	e := ecs.NewECS(world)
//	switchkit.Install(e)
//	switchkit.SetupWindow("My Game")
//
//	// in a game system:
//	input := switchkit.InputState(e)
//	if input.JustPressed(config.ButtonA) { ... }
//	dx, dy := input.Movement()
package switchkit

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/lagoon-games/switchkit/components"
	cfg "github.com/lagoon-games/switchkit/config"
	"github.com/lagoon-games/switchkit/systems"
)

// Install registers the switchkit resources and systems on the given ECS.
// It loads any saved display settings, creates the input and display
// singletons, and queues the input system ahead of the display system so
// games querying input the same tick see the fresh state.
func Install(e *ecs.ECS) {
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadDisplaySettings(); err == nil && saved != nil {
			systems.ApplySavedDisplaySettings(saved)
		}
	}

	systems.GetOrCreateInput(e)
	systems.GetOrCreateDisplay(e)

	e.AddSystem(systems.UpdateSwitchInput)
	e.AddSystem(systems.UpdateDisplay)
	e.AddRenderer(ecs.LayerDefault, systems.DrawPerfOverlay)

	log.Printf("switchkit initialized")
	log.Printf("Platform: %s", cfg.Switch.Platform.Name())
	log.Printf("Resolution: %dx%d", cfg.Switch.Width, cfg.Switch.Height)
}

// InputState returns the unified input state for query access.
func InputState(e *ecs.ECS) *components.SwitchInputData {
	return systems.GetOrCreateInput(e)
}

// Display returns the current display state.
func Display(e *ecs.ECS) *components.DisplayData {
	return systems.GetOrCreateDisplay(e)
}

// SetupWindow applies console-compatible window settings for the
// configured display mode: fixed resolution, no resizing, target TPS.
func SetupWindow(title string) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Switch.Width, cfg.Switch.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.Switch.TargetFPS)
	ebiten.SetVsyncEnabled(cfg.Switch.VSync)
}

// SetupHandheldWindow is SetupWindow pinned to the handheld resolution,
// for testing the 720p layout on desktop.
func SetupHandheldWindow(title string) {
	cfg.Switch.SetDisplayMode(cfg.DisplayHandheld)
	SetupWindow(title)
}
