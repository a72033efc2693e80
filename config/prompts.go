package config

// InputDevice identifies the kind of device that most recently produced
// input, used to pick the right button-prompt labels.
type InputDevice int

const (
	DeviceKeyboard InputDevice = iota
	DeviceProController
	DeviceJoyCon
)

// keyboardLabels names the development keyboard binding for buttons that
// have one. Buttons without a keyboard binding fall through to the
// controller label.
var keyboardLabels = map[SwitchButton]string{
	ButtonA:         "X",
	ButtonB:         "Z",
	ButtonX:         "S",
	ButtonY:         "A",
	ButtonL:         "Q",
	ButtonR:         "W",
	ButtonZL:        "1",
	ButtonZR:        "2",
	ButtonPlus:      "ENTER",
	ButtonMinus:     "BACKSPACE",
	ButtonDPadUp:    "UP",
	ButtonDPadDown:  "DOWN",
	ButtonDPadLeft:  "LEFT",
	ButtonDPadRight: "RIGHT",
}

// PromptLabel returns the label to show in UI prompts for a button,
// appropriate to the given device.
func PromptLabel(device InputDevice, b SwitchButton) string {
	if device == DeviceKeyboard {
		if label, ok := keyboardLabels[b]; ok {
			return label
		}
	}
	return b.String()
}
