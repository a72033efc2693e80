package config

// Platform identifies the runtime target the game was built for.
type Platform int

const (
	// PlatformDesktop is the development target (Windows, macOS, Linux)
	PlatformDesktop Platform = iota
	// PlatformDocked is the console target outputting to a TV at 1080p
	PlatformDocked
	// PlatformHandheld is the console target on the built-in 720p screen
	PlatformHandheld
)

// Current returns the platform this binary was built for.
// Selected at compile time via the "console" build tag; ambiguous
// targets fall back to PlatformDesktop.
func Current() Platform {
	return buildPlatform
}

// Name returns a human-readable platform name.
func (p Platform) Name() string {
	switch p {
	case PlatformDocked:
		return "Console (Docked)"
	case PlatformHandheld:
		return "Console (Handheld)"
	default:
		return "Desktop"
	}
}

// Resolution returns the native resolution for this platform.
func (p Platform) Resolution() (int, int) {
	if p == PlatformHandheld {
		return 1280, 720
	}
	// Desktop development windows match the docked output
	return 1920, 1080
}

// IsConsole reports whether the target is the console in any mode.
func (p Platform) IsConsole() bool {
	return p == PlatformDocked || p == PlatformHandheld
}

// DisplayMode represents how the console screen is being driven.
// Unlike Platform it can change at runtime (dock/undock).
type DisplayMode int

const (
	// DisplayDocked - TV output at 1080p
	DisplayDocked DisplayMode = iota
	// DisplayHandheld - built-in screen at 720p
	DisplayHandheld
	// DisplayTabletop - kickstand mode, same resolution as handheld
	DisplayTabletop
)

// Resolution returns the output resolution for this display mode.
func (m DisplayMode) Resolution() (int, int) {
	if m == DisplayDocked {
		return 1920, 1080
	}
	return 1280, 720
}

// Name returns a human-readable display mode name.
func (m DisplayMode) Name() string {
	switch m {
	case DisplayHandheld:
		return "Handheld"
	case DisplayTabletop:
		return "Tabletop"
	default:
		return "Docked"
	}
}
