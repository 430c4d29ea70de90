package main

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"wavescope/internal/config"
	"wavescope/internal/gui"
	"wavescope/internal/logger"
	"wavescope/internal/picker"
	"wavescope/internal/shutdown"
	"wavescope/internal/timing"
	"wavescope/internal/wave"
)

const (
	AppName = "Wavescope"
	AppID   = "com.wavescope.app"

	appComponent = "Application"
)

type WaveApp struct {
	fyneApp    fyne.App
	window     fyne.Window
	cfg        config.Config
	state      *config.State
	logger     logger.Logger
	guiManager *gui.Manager
	picker     *picker.Coordinator
	frames     *gui.FrameLoop
	timings    *timing.Tracker
	shutdown   *shutdown.Manager

	mu       sync.Mutex
	label    string
	plotTime float64
	lastFile string
}

func NewWaveApp(fyneApp fyne.App, cfg config.Config, log logger.Logger, dialog picker.Dialog) *WaveApp {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	window := fyneApp.NewWindow(fmt.Sprintf("%s %s", AppName, version))
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	window.CenterOnScreen()
	window.SetMaster()

	state := config.NewState(fyneApp)
	snap := state.Load()

	timings := timing.NewTracker()
	timings.SetEnabled(cfg.Log.Timings)

	app := &WaveApp{
		fyneApp:  fyneApp,
		window:   window,
		cfg:      cfg,
		state:    state,
		logger:   log,
		timings:  timings,
		picker:   picker.NewCoordinator(dialog, pickerOptions(cfg.Picker), log, timings),
		shutdown: shutdown.NewManager(log, shutdown.DefaultTimeout),
		label:    snap.Label,
		plotTime: snap.PlotTime,
		lastFile: snap.LastFile,
	}

	app.guiManager = gui.NewManager(window, log, snap.Label, cfg.Render.Samples)
	app.guiManager.UpdateFile(snap.LastFile)
	app.frames = gui.NewFrameLoop(cfg.Render.FrameRate, app.onFrame)

	app.setupHandlers()
	app.setupMenus()

	// stopped in reverse: frames, picker, then state is saved last
	app.shutdown.Register("state", shutdown.Func(app.saveState))
	app.shutdown.Register("picker", app.picker)
	app.shutdown.Register("frames", app.frames)

	log.Info(appComponent, "initialization complete", map[string]interface{}{
		"restored_label": snap.Label != config.DefaultLabel,
		"plot_time":      snap.PlotTime,
		"last_file":      snap.LastFile,
	})

	return app
}

func pickerOptions(cfg config.PickerConfig) picker.Options {
	return picker.Options{
		Title:      cfg.Title,
		FilterName: cfg.FilterName,
		Extensions: cfg.Extensions,
		StartDir:   cfg.StartDir,
	}
}

func (app *WaveApp) setupHandlers() {
	app.guiManager.SetLabelChangeHandler(app.handleLabelChange)
	app.guiManager.SetValueChangeHandler(app.handleValueChange)
}

// Start launches the picker worker and the repaint loop.
func (app *WaveApp) Start() {
	app.picker.Start()
	app.frames.Start()
}

func (app *WaveApp) Run() {
	app.window.SetContent(app.guiManager.GetMainContainer())

	app.window.SetCloseIntercept(func() {
		app.logger.Info(appComponent, "shutdown requested", nil)
		app.stop()
		app.window.Close()
	})
	app.shutdown.Listen(func() {
		fyne.Do(func() {
			app.guiManager.Shutdown()
			app.fyneApp.Quit()
		})
	})

	app.Start()
	app.window.ShowAndRun()
}

// stop must run on the UI thread.
func (app *WaveApp) stop() {
	app.guiManager.Shutdown()
	app.shutdown.Shutdown()
}

// onFrame runs on the UI thread once per repaint tick.
func (app *WaveApp) onFrame(dt time.Duration) {
	app.mu.Lock()
	app.plotTime += dt.Seconds() * app.cfg.Render.TimeScale
	t := app.plotTime
	app.mu.Unlock()

	app.guiManager.UpdatePlot(wave.Points(app.cfg.Render.Samples, wave.XMin, wave.XMax, t))
	app.pollSelection()
	app.guiManager.UpdatePickerState(app.picker.State(), app.picker.Pending())
}

func (app *WaveApp) snapshot() config.Snapshot {
	app.mu.Lock()
	defer app.mu.Unlock()

	return config.Snapshot{
		Label:    app.label,
		PlotTime: app.plotTime,
		LastFile: app.lastFile,
	}
}

func (app *WaveApp) saveState() {
	snap := app.snapshot()
	app.state.Save(snap)
	app.logger.Info(appComponent, "state saved", map[string]interface{}{
		"plot_time": snap.PlotTime,
		"last_file": snap.LastFile,
	})
}
