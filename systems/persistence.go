package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"

	cfg "github.com/lagoon-games/switchkit/config"
)

// SavedDisplaySettings is the display preference blob stored on disk.
// Only desktop builds persist anything; on the console the dock state is
// reported by the hardware.
type SavedDisplaySettings struct {
	DisplayMode     int  `json:"displayMode"`
	Fullscreen      bool `json:"fullscreen"`
	VSync           bool `json:"vsync"`
	ShowPerfOverlay bool `json:"showPerfOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "switchkit",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadDisplaySettings loads saved display settings from disk. A missing
// or unreadable store yields (nil, nil): the caller keeps the defaults.
func LoadDisplaySettings() (*SavedDisplaySettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("display")
	if err != nil {
		log.Printf("Warning: Could not load display settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedDisplaySettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved display settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveDisplaySettings saves display settings to disk.
func SaveDisplaySettings(s *SavedDisplaySettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize display settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("display", data); err != nil {
		log.Printf("Warning: Could not save display settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentDisplaySettings snapshots the global config to disk.
func SaveCurrentDisplaySettings() {
	_ = SaveDisplaySettings(&SavedDisplaySettings{
		DisplayMode:     int(cfg.Switch.DisplayMode),
		Fullscreen:      ebiten.IsFullscreen(),
		VSync:           cfg.Switch.VSync,
		ShowPerfOverlay: cfg.Switch.ShowPerfOverlay,
	})
}

// ApplySavedDisplaySettings folds loaded settings into the global config.
// Only meaningful on desktop; console builds ignore the saved mode since
// the dock decides.
func ApplySavedDisplaySettings(saved *SavedDisplaySettings) {
	if saved == nil {
		return
	}

	cfg.Switch.VSync = saved.VSync
	cfg.Switch.ShowPerfOverlay = saved.ShowPerfOverlay

	if cfg.Switch.Platform.IsConsole() {
		return
	}

	mode := cfg.DisplayMode(saved.DisplayMode)
	switch mode {
	case cfg.DisplayDocked, cfg.DisplayHandheld, cfg.DisplayTabletop:
		cfg.Switch.SetDisplayMode(mode)
	default:
		log.Printf("Warning: Ignoring unknown saved display mode %d", saved.DisplayMode)
	}

	ebiten.SetFullscreen(saved.Fullscreen)
}
