package main

import (
	"fmt"

	"wavescope/internal/config"
)

// handleOpen queues a dialog request and returns at once; the result arrives in a later frame.
func (app *WaveApp) handleOpen() {
	app.picker.RequestPick()
	app.guiManager.UpdateStatus("Waiting for file dialog...")
}

// handleNew restores the defaults a first run would show, clearing persisted
// state and recorded dialog timings.
func (app *WaveApp) handleNew() {
	app.mu.Lock()
	app.label = config.DefaultLabel
	app.plotTime = 0
	app.lastFile = ""
	app.mu.Unlock()

	app.state.Reset()
	app.timings.Reset("")

	app.guiManager.SetLabel(config.DefaultLabel)
	app.guiManager.UpdateFile("")
	app.guiManager.UpdateStatus("Ready")
	app.logger.Info(appComponent, "state reset", nil)
}

func (app *WaveApp) handleQuit() {
	app.logger.Info(appComponent, "quit requested", nil)
	app.stop()
	app.fyneApp.Quit()
}

func (app *WaveApp) handleLabelChange(label string) {
	app.mu.Lock()
	app.label = label
	app.mu.Unlock()
}

func (app *WaveApp) handleValueChange(value float64) {
	app.guiManager.UpdateStatus(fmt.Sprintf("value = %.1f", value))
}

// pollSelection takes at most one picker result per frame.
func (app *WaveApp) pollSelection() {
	selection, ok := app.picker.PollSelection()
	if !ok {
		return
	}

	if selection.Err == nil {
		app.mu.Lock()
		app.lastFile = selection.Name
		app.mu.Unlock()
	}
	app.guiManager.ShowSelection(selection)
}

func (app *WaveApp) pickerReport() string {
	return fmt.Sprintf("State: %s\nQueued requests: %d\n\n%s",
		app.picker.State(), app.picker.Pending(), app.timings.Report())
}
