package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const noFile = "No file opened"

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	fileLabel   *widget.Label
	pickerLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	fileLabel := widget.NewLabel(noFile)
	pickerLabel := widget.NewLabel("")

	infoContainer := container.NewHBox(
		fileLabel,
		widget.NewSeparator(),
		pickerLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		infoContainer,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		fileLabel:   fileLabel,
		pickerLabel: pickerLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetFile shows the last opened file; an empty name clears it.
func (sb *StatusBar) SetFile(name string) {
	if name == "" {
		sb.fileLabel.SetText(noFile)
		return
	}
	sb.fileLabel.SetText("File: " + name)
}

func (sb *StatusBar) File() string {
	return sb.fileLabel.Text
}

// SetPicker shows the dialog worker state, skipping the refresh when unchanged.
func (sb *StatusBar) SetPicker(state string, pending int) {
	text := state
	if pending > 0 {
		text = fmt.Sprintf("%s (%d queued)", state, pending)
	}
	if sb.pickerLabel.Text == text {
		return
	}
	sb.pickerLabel.SetText(text)
}

func (sb *StatusBar) Picker() string {
	return sb.pickerLabel.Text
}
