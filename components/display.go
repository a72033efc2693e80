package components

import (
	cfg "github.com/lagoon-games/switchkit/config"
	"github.com/yohamta/donburi"
)

// DisplayData is the current display state as applied to the window.
// The display system keeps it in sync with the global SwitchConfig and
// republishes it whenever the mode changes (dock/undock).
type DisplayData struct {
	Mode   cfg.DisplayMode
	Width  int
	Height int
	VSync  bool
}

// Display is the donburi component holding the display state.
var Display = donburi.NewComponentType[DisplayData]()

// AspectRatio returns width over height.
func (d *DisplayData) AspectRatio() float64 {
	return float64(d.Width) / float64(d.Height)
}

// ResolutionF returns the resolution as float64s, handy for draw code.
func (d *DisplayData) ResolutionF() (float64, float64) {
	return float64(d.Width), float64(d.Height)
}
