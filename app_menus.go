package main

import (
	"fyne.io/fyne/v2"
)

func (app *WaveApp) setupMenus() {
	quitItem := fyne.NewMenuItem("Quit", func() {
		app.handleQuit()
	})
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", func() {
			app.handleNew()
		}),
		fyne.NewMenuItem("Open...", func() {
			app.handleOpen()
		}),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	debugMenu := fyne.NewMenu("Debug",
		fyne.NewMenuItem("Dialog Timings", func() {
			app.guiManager.ShowInformation("Dialog Timings", app.timings.Report())
		}),
		fyne.NewMenuItem("Picker State", func() {
			app.guiManager.ShowInformation("Picker State", app.pickerReport())
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, debugMenu)
	app.window.SetMainMenu(mainMenu)
}
