package main

// Entry point. The application is split across:
// - app_core.go: WaveApp construction, run loop and per-frame update
// - app_handlers.go: handlers for user interactions and picker results
// - app_menus.go: main menu setup

import (
	"log"

	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"

	"wavescope/internal/config"
	"wavescope/internal/logger"
	"wavescope/internal/picker"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger := logger.New(cfg.Log.Level, cfg.Log.JSON).WithSession(uuid.NewString())
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    version,
		"frame_rate": cfg.Render.FrameRate,
		"samples":    cfg.Render.Samples,
	})

	application := NewWaveApp(app.NewWithID(AppID), cfg, appLogger, picker.NativeDialog{})
	application.Run()

	appLogger.Info("Application", "terminated", nil)
}
