package gui

import (
	"fmt"

	"wavescope/internal/gui/components"
	"wavescope/internal/logger"
	"wavescope/internal/picker"
	"wavescope/internal/wave"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const component = "GUIManager"

// Manager owns the window content. Its methods must run on the UI thread.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	sidePanel *components.SidePanel
	plot      *components.WavePlot
	statusBar *components.StatusBar
}

func NewManager(window fyne.Window, log logger.Logger, label string, samples int) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	manager := &Manager{
		window:    window,
		logger:    log,
		sidePanel: components.NewSidePanel(label, components.DefaultValue),
		plot:      components.NewWavePlot(samples),
		statusBar: components.NewStatusBar(),
	}

	log.Info(component, "initialized", map[string]interface{}{
		"samples": samples,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		m.statusBar.GetContainer(),
		m.sidePanel.GetContainer(),
		nil,
		m.plot.GetContainer(),
	)
}

func (m *Manager) SetLabelChangeHandler(handler func(string)) {
	m.sidePanel.SetLabelChangeHandler(func(text string) {
		m.logger.Debug(component, "label changed", map[string]interface{}{
			"length": len(text),
		})
		handler(text)
	})
}

func (m *Manager) SetValueChangeHandler(handler func(float64)) {
	m.sidePanel.SetValueChangeHandler(func(value float64) {
		m.logger.Debug(component, "value changed", map[string]interface{}{
			"value": value,
		})
		handler(value)
	})
}

func (m *Manager) Label() string {
	return m.sidePanel.Label()
}

func (m *Manager) SetLabel(label string) {
	m.sidePanel.SetLabel(label)
}

func (m *Manager) UpdatePlot(points []wave.Point) {
	m.plot.SetPoints(points)
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
}

func (m *Manager) UpdateFile(name string) {
	m.statusBar.SetFile(name)
}

func (m *Manager) UpdatePickerState(state picker.State, pending int) {
	m.statusBar.SetPicker(state.String(), pending)
}

// ShowSelection renders a selection delivered by the picker worker.
func (m *Manager) ShowSelection(selection picker.FileSelection) {
	if selection.Err != nil {
		m.UpdateStatus(fmt.Sprintf("Could not open %s", selection.Name))
		m.ShowError("Open File", selection.Err)
		return
	}

	m.statusBar.SetFile(selection.Name)
	m.UpdateStatus(fmt.Sprintf("Opened %s (%d bytes)", selection.Name, selection.Size))
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error(component, err, map[string]interface{}{
		"title": title,
	})

	if m.isShutdown {
		return
	}
	dialog.ShowError(err, m.window)
}

func (m *Manager) ShowInformation(title, message string) {
	if m.isShutdown {
		return
	}
	dialog.ShowInformation(title, message, m.window)
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info(component, "shutdown initiated", nil)
}
