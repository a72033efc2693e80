package components

import (
	cfg "github.com/lagoon-games/switchkit/config"
	"github.com/lagoon-games/switchkit/gamemath"
	"github.com/yohamta/donburi"
)

// ButtonState represents the temporal state of a button
type ButtonState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// SwitchInputData is the per-frame unified input state. It merges the
// keyboard and every connected gamepad into the console button vocabulary,
// keeping one frame of history so edge transitions can be derived.
type SwitchInputData struct {
	Current  [cfg.ButtonCount]bool // Current frame's pressed state
	Previous [cfg.ButtonCount]bool // Previous frame's pressed state

	// Stick positions, each axis in -1.0 to 1.0, deadzone already applied.
	// Keyboard movement (WASD/IJKL) is merged into the left stick.
	LeftStickX  float64
	LeftStickY  float64
	RightStickX float64
	RightStickY float64

	LastDevice cfg.InputDevice      // Most recently used input device
	Controller cfg.SwitchController // Form factor of the active gamepad
}

// SwitchInput is the donburi component holding the unified input state.
// A single entity carries it; the input system creates one on demand.
var SwitchInput = donburi.NewComponentType[SwitchInputData]()

// Pressed reports whether a button is currently held.
func (in *SwitchInputData) Pressed(b cfg.SwitchButton) bool {
	return in.Current[b]
}

// JustPressed reports whether a button went down this frame.
func (in *SwitchInputData) JustPressed(b cfg.SwitchButton) bool {
	return in.Current[b] && !in.Previous[b]
}

// JustReleased reports whether a button went up this frame.
func (in *SwitchInputData) JustReleased(b cfg.SwitchButton) bool {
	return !in.Current[b] && in.Previous[b]
}

// State returns the full temporal state for a button.
func (in *SwitchInputData) State(b cfg.SwitchButton) ButtonState {
	return ButtonState{
		Pressed:      in.Current[b],
		JustPressed:  in.Current[b] && !in.Previous[b],
		JustReleased: !in.Current[b] && in.Previous[b],
	}
}

// LeftStick returns the left stick position.
func (in *SwitchInputData) LeftStick() (x, y float64) {
	return in.LeftStickX, in.LeftStickY
}

// RightStick returns the right stick position.
func (in *SwitchInputData) RightStick() (x, y float64) {
	return in.RightStickX, in.RightStickY
}

// Movement returns the directional input from the left stick and D-pad
// combined. Magnitude never exceeds 1.0, so diagonal D-pad input comes
// out unit length while stick values inside the circle pass through.
func (in *SwitchInputData) Movement() (x, y float64) {
	x, y = in.LeftStickX, in.LeftStickY

	if in.Current[cfg.ButtonDPadUp] {
		y += 1.0
	}
	if in.Current[cfg.ButtonDPadDown] {
		y -= 1.0
	}
	if in.Current[cfg.ButtonDPadLeft] {
		x -= 1.0
	}
	if in.Current[cfg.ButtonDPadRight] {
		x += 1.0
	}

	return gamemath.ClampMagnitude(x, y, 1.0)
}
