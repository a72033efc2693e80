package systems

import (
	"math"
	"testing"

	"github.com/lagoon-games/switchkit/components"
	cfg "github.com/lagoon-games/switchkit/config"
)

func TestApplyFrameEdgeDetection(t *testing.T) {
	var in components.SwitchInputData

	// Frame 1: X key held (maps to A)
	var frame frameState
	frame.buttons[cfg.ButtonA] = true
	frame.keyboardUsed = true
	applyFrame(&in, frame)

	if !in.Pressed(cfg.ButtonA) || !in.JustPressed(cfg.ButtonA) {
		t.Fatal("frame 1: A should be pressed and just pressed")
	}

	// Frame 2: still held
	applyFrame(&in, frame)
	if !in.Pressed(cfg.ButtonA) {
		t.Fatal("frame 2: A should still be pressed")
	}
	if in.JustPressed(cfg.ButtonA) {
		t.Fatal("frame 2: A held from last frame should not be just pressed")
	}

	// Frame 3: released
	applyFrame(&in, frameState{})
	if in.Pressed(cfg.ButtonA) {
		t.Fatal("frame 3: A should not be pressed")
	}
	if !in.JustReleased(cfg.ButtonA) {
		t.Fatal("frame 3: A should be just released")
	}
}

func TestApplyFrameKeyboardMovementNormalized(t *testing.T) {
	var in components.SwitchInputData

	applyFrame(&in, frameState{kbMoveX: 1, kbMoveY: 1, keyboardUsed: true})

	x, y := in.LeftStick()
	if mag := math.Hypot(x, y); math.Abs(mag-1.0) > 1e-9 {
		t.Errorf("diagonal keyboard movement magnitude = %v, want 1.0", mag)
	}
	if x <= 0 || y <= 0 {
		t.Errorf("up-right keyboard movement = (%v, %v)", x, y)
	}
}

func TestApplyFrameStickOverridesKeyboard(t *testing.T) {
	var in components.SwitchInputData

	applyFrame(&in, frameState{
		leftX:       0.5,
		leftY:       0,
		kbMoveX:     -1,
		gamepadUsed: true,
	})

	if x, _ := in.LeftStick(); x != 0.5 {
		t.Errorf("left stick x = %v, want gamepad value 0.5", x)
	}
}

func TestApplyFrameDeviceTracking(t *testing.T) {
	t.Run("gamepad wins over keyboard", func(t *testing.T) {
		var in components.SwitchInputData
		applyFrame(&in, frameState{
			keyboardUsed: true,
			gamepadUsed:  true,
			controller:   cfg.ControllerCombined,
		})
		if in.LastDevice != cfg.DeviceProController {
			t.Errorf("LastDevice = %v, want pro controller", in.LastDevice)
		}
	})

	t.Run("joy-con detected", func(t *testing.T) {
		var in components.SwitchInputData
		applyFrame(&in, frameState{
			gamepadUsed: true,
			controller:  cfg.ControllerLeftJoyCon,
		})
		if in.LastDevice != cfg.DeviceJoyCon {
			t.Errorf("LastDevice = %v, want joy-con", in.LastDevice)
		}
		if in.Controller != cfg.ControllerLeftJoyCon {
			t.Errorf("Controller = %v, want left joy-con", in.Controller)
		}
	})

	t.Run("keyboard movement counts as keyboard", func(t *testing.T) {
		var in components.SwitchInputData
		in.LastDevice = cfg.DeviceProController
		applyFrame(&in, frameState{kbMoveX: 1})
		if in.LastDevice != cfg.DeviceKeyboard {
			t.Errorf("LastDevice = %v, want keyboard", in.LastDevice)
		}
	})

	t.Run("idle frame keeps previous device", func(t *testing.T) {
		var in components.SwitchInputData
		in.LastDevice = cfg.DeviceJoyCon
		applyFrame(&in, frameState{})
		if in.LastDevice != cfg.DeviceJoyCon {
			t.Errorf("LastDevice = %v, want retained joy-con", in.LastDevice)
		}
	})
}

func TestApplyFrameIdleClearsSticks(t *testing.T) {
	var in components.SwitchInputData
	in.LeftStickX, in.LeftStickY = 0.7, 0.3
	in.RightStickX = -0.4

	applyFrame(&in, frameState{})

	if x, y := in.LeftStick(); x != 0 || y != 0 {
		t.Errorf("left stick = (%v, %v), want zero after idle frame", x, y)
	}
	if x, y := in.RightStick(); x != 0 || y != 0 {
		t.Errorf("right stick = (%v, %v), want zero after idle frame", x, y)
	}
}
