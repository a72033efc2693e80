package config

import "github.com/hajimehoshi/ebiten/v2"

// SwitchButton represents a logical console controller button,
// independent of the physical device that produced it.
type SwitchButton int

const (
	// Face buttons (right Joy-Con)
	ButtonA SwitchButton = iota
	ButtonB
	ButtonX
	ButtonY

	// Shoulder buttons
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR

	// Stick clicks
	ButtonLeftStick
	ButtonRightStick

	// System buttons
	ButtonPlus
	ButtonMinus
	ButtonHome
	ButtonCapture

	// D-pad (left Joy-Con)
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	// SL/SR (single Joy-Con held sideways)
	ButtonSL
	ButtonSR

	ButtonCount // Must be last - used for array sizing
)

var buttonNames = [ButtonCount]string{
	"A", "B", "X", "Y",
	"L", "R", "ZL", "ZR",
	"Left Stick", "Right Stick",
	"+", "-", "Home", "Capture",
	"D-Pad Up", "D-Pad Down", "D-Pad Left", "D-Pad Right",
	"SL", "SR",
}

func (b SwitchButton) String() string {
	if b < 0 || b >= ButtonCount {
		return "Unknown"
	}
	return buttonNames[b]
}

// SwitchController represents the form factor of a connected controller.
type SwitchController int

const (
	// ControllerCombined - both Joy-Cons attached, or a Pro Controller
	ControllerCombined SwitchController = iota
	// ControllerLeftJoyCon - left Joy-Con only
	ControllerLeftJoyCon
	// ControllerRightJoyCon - right Joy-Con only
	ControllerRightJoyCon
	// ControllerSideways - single Joy-Con held sideways. Cannot be
	// detected from the device name; games opt in via configuration.
	ControllerSideways
)

// ButtonBinding holds the concrete inputs bound to one logical button.
// GamepadButtons is always non-empty; Keys is empty for buttons with no
// development keyboard binding (Home, Capture, stick clicks, SL/SR).
type ButtonBinding struct {
	Keys           []ebiten.Key
	GamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings.
type InputConfig struct {
	Bindings map[SwitchButton]ButtonBinding

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	// Development keyboard movement, merged into the left stick.
	// Each direction accepts several keys (WASD plus IJKL).
	MoveUpKeys    []ebiten.Key
	MoveDownKeys  []ebiten.Key
	MoveLeftKeys  []ebiten.Key
	MoveRightKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

// keyToButton is the reverse of Bindings over keyboard keys. Partial:
// most keys have no binding, which is a valid empty result.
var keyToButton map[ebiten.Key]SwitchButton

// gamepadToButton is the reverse of Bindings over standard gamepad
// buttons. Where two logical buttons share a physical one (SL shares L,
// SR shares R, Capture shares Home) the primary button wins.
var gamepadToButton map[ebiten.StandardGamepadButton]SwitchButton

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.2,
		MoveUpKeys:     []ebiten.Key{ebiten.KeyW, ebiten.KeyI},
		MoveDownKeys:   []ebiten.Key{ebiten.KeyS, ebiten.KeyK},
		MoveLeftKeys:   []ebiten.Key{ebiten.KeyA, ebiten.KeyJ},
		MoveRightKeys:  []ebiten.Key{ebiten.KeyD, ebiten.KeyL},
		Bindings: map[SwitchButton]ButtonBinding{
			ButtonA: {
				Keys:           []ebiten.Key{ebiten.KeyX},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			ButtonB: {
				Keys:           []ebiten.Key{ebiten.KeyZ},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ButtonX: {
				Keys:           []ebiten.Key{ebiten.KeyS},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			ButtonY: {
				Keys:           []ebiten.Key{ebiten.KeyA},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			ButtonL: {
				Keys:           []ebiten.Key{ebiten.KeyQ},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
			ButtonR: {
				Keys:           []ebiten.Key{ebiten.KeyW},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			ButtonZL: {
				Keys:           []ebiten.Key{ebiten.KeyDigit1},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
			},
			ButtonZR: {
				Keys:           []ebiten.Key{ebiten.KeyDigit2},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
			},
			ButtonLeftStick: {
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick},
			},
			ButtonRightStick: {
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightStick},
			},
			ButtonPlus: {
				Keys:           []ebiten.Key{ebiten.KeyEnter},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ButtonMinus: {
				Keys:           []ebiten.Key{ebiten.KeyBackspace},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ButtonHome: {
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterCenter},
			},
			ButtonCapture: {
				// No dedicated position in the standard layout; shares Home
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterCenter},
			},
			ButtonDPadUp: {
				Keys:           []ebiten.Key{ebiten.KeyUp},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ButtonDPadDown: {
				Keys:           []ebiten.Key{ebiten.KeyDown},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ButtonDPadLeft: {
				Keys:           []ebiten.Key{ebiten.KeyLeft},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ButtonDPadRight: {
				Keys:           []ebiten.Key{ebiten.KeyRight},
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ButtonSL: {
				// Sideways Joy-Con; shares the shoulder positions
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
			ButtonSR: {
				GamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
		},
	}

	keyToButton = make(map[ebiten.Key]SwitchButton)
	gamepadToButton = make(map[ebiten.StandardGamepadButton]SwitchButton)
	for b := SwitchButton(0); b < ButtonCount; b++ {
		binding := Input.Bindings[b]
		for _, key := range binding.Keys {
			keyToButton[key] = b
		}
		for _, gb := range binding.GamepadButtons {
			if _, taken := gamepadToButton[gb]; !taken {
				gamepadToButton[gb] = b
			}
		}
	}
}

// ButtonForKey resolves a keyboard key to its logical button. The second
// return value is false for unmapped keys; that is not an error.
func ButtonForKey(key ebiten.Key) (SwitchButton, bool) {
	b, ok := keyToButton[key]
	return b, ok
}

// ButtonForGamepad resolves a standard gamepad button to its logical button.
func ButtonForGamepad(gb ebiten.StandardGamepadButton) (SwitchButton, bool) {
	b, ok := gamepadToButton[gb]
	return b, ok
}
