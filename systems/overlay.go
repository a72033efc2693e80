package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/lagoon-games/switchkit/config"
)

// DrawPerfOverlay renders the frame-rate overlay when enabled in the
// config. Console builds typically leave it on during profiling sessions
// to confirm the 30/60 FPS target holds in both dock states.
func DrawPerfOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Switch.ShowPerfOverlay {
		return
	}

	display := GetOrCreateDisplay(e)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"FPS %0.1f / TPS %0.1f (target %d)\n%s - %s %dx%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), cfg.Switch.TargetFPS,
		cfg.Switch.Platform.Name(), display.Mode.Name(), display.Width, display.Height,
	), 4, 4)
}
