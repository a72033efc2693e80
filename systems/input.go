package systems

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/lagoon-games/switchkit/components"
	cfg "github.com/lagoon-games/switchkit/config"
	"github.com/lagoon-games/switchkit/gamemath"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller form factors to avoid string work every frame
var controllerCache = make(map[ebiten.GamepadID]cfg.SwitchController)

// frameState is the raw device state gathered for one tick. Sticks use a
// Y-up convention matching the D-pad (up is positive), deadzone applied.
type frameState struct {
	buttons [cfg.ButtonCount]bool

	leftX, leftY   float64
	rightX, rightY float64

	// Keyboard movement (WASD/IJKL), unnormalized
	kbMoveX, kbMoveY float64

	keyboardUsed bool
	gamepadUsed  bool
	controller   cfg.SwitchController
}

// UpdateSwitchInput polls the keyboard and all connected gamepads and
// refreshes the unified input state. Must be registered before any
// system that queries input.
func UpdateSwitchInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	applyFrame(input, pollDevices())
}

// pollDevices reads raw device state from ebiten. Absent devices simply
// contribute nothing.
func pollDevices() frameState {
	var frame frameState

	// Keyboard buttons (development mode)
	for button, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				frame.buttons[button] = true
				frame.keyboardUsed = true
			}
		}
	}

	// Keyboard movement
	if anyKeyPressed(cfg.Input.MoveUpKeys) {
		frame.kbMoveY += 1.0
	}
	if anyKeyPressed(cfg.Input.MoveDownKeys) {
		frame.kbMoveY -= 1.0
	}
	if anyKeyPressed(cfg.Input.MoveLeftKeys) {
		frame.kbMoveX -= 1.0
	}
	if anyKeyPressed(cfg.Input.MoveRightKeys) {
		frame.kbMoveX += 1.0
	}

	// Gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		for button, binding := range cfg.Input.Bindings {
			for _, gb := range binding.GamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, gb) {
					frame.buttons[button] = true
					frame.gamepadUsed = true
					frame.controller = controllerKind(gpID)
				}
			}
		}

		deadzone := cfg.Input.AnalogDeadzone

		// Ebiten's vertical axes grow downward; flip to Y-up
		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		lx, ly = gamemath.ApplyDeadzone(lx, ly, deadzone)
		if lx != 0 || ly != 0 {
			frame.leftX, frame.leftY = lx, ly
			frame.gamepadUsed = true
			frame.controller = controllerKind(gpID)
		}

		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		rx, ry = gamemath.ApplyDeadzone(rx, ry, deadzone)
		if rx != 0 || ry != 0 {
			frame.rightX, frame.rightY = rx, ry
			frame.gamepadUsed = true
			frame.controller = controllerKind(gpID)
		}
	}

	return frame
}

// applyFrame folds one frame of raw device state into the unified input
// state: swaps the history buffer, publishes the new pressed set, and
// resolves the left stick from gamepad or keyboard movement.
func applyFrame(input *components.SwitchInputData, frame frameState) {
	input.Previous = input.Current
	input.Current = frame.buttons

	input.LeftStickX, input.LeftStickY = frame.leftX, frame.leftY
	input.RightStickX, input.RightStickY = frame.rightX, frame.rightY

	// Keyboard movement stands in for the left stick when the stick is
	// centered; diagonals are normalized to unit length
	if frame.leftX == 0 && frame.leftY == 0 && (frame.kbMoveX != 0 || frame.kbMoveY != 0) {
		input.LeftStickX, input.LeftStickY = gamemath.Normalize(frame.kbMoveX, frame.kbMoveY)
	}

	// Gamepad takes priority when both devices were used this frame
	if frame.gamepadUsed {
		input.Controller = frame.controller
		if frame.controller == cfg.ControllerLeftJoyCon || frame.controller == cfg.ControllerRightJoyCon {
			input.LastDevice = cfg.DeviceJoyCon
		} else {
			input.LastDevice = cfg.DeviceProController
		}
	} else if frame.keyboardUsed || frame.kbMoveX != 0 || frame.kbMoveY != 0 {
		input.LastDevice = cfg.DeviceKeyboard
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// controllerKind returns the cached form factor, detecting on first access.
func controllerKind(gpID ebiten.GamepadID) cfg.SwitchController {
	if kind, ok := controllerCache[gpID]; ok {
		return kind
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var kind cfg.SwitchController
	switch {
	case strings.Contains(name, "joy-con (l)"):
		kind = cfg.ControllerLeftJoyCon
	case strings.Contains(name, "joy-con (r)"):
		kind = cfg.ControllerRightJoyCon
	default:
		// Pro Controller, paired Joy-Cons and generic pads all behave
		// as a combined controller
		kind = cfg.ControllerCombined
	}

	controllerCache[gpID] = kind
	return kind
}

// GetOrCreateInput returns the singleton input component, creating it if
// needed.
func GetOrCreateInput(e *ecs.ECS) *components.SwitchInputData {
	entry, ok := components.SwitchInput.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SwitchInput))
		// Zero-value SwitchInputData is correct (nothing pressed)
	}
	return components.SwitchInput.Get(entry)
}
