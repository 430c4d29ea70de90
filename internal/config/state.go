package config

import (
	"fyne.io/fyne/v2"
)

// Preference keys for persisted UI state
const (
	KeyLabel    = "label"
	KeyPlotTime = "plot_time"
	KeyLastFile = "last_file"
)

const DefaultLabel = "Hello World!"

// State persists UI state across runs through Fyne preferences.
type State struct {
	app fyne.App
}

func NewState(app fyne.App) *State {
	return &State{app: app}
}

// GetLabel returns the side panel text, falling back to the default on first run
func (s *State) GetLabel() string {
	return s.app.Preferences().StringWithFallback(KeyLabel, DefaultLabel)
}

func (s *State) SetLabel(label string) {
	s.app.Preferences().SetString(KeyLabel, label)
}

// GetPlotTime returns the animation phase the plot was at when last saved
func (s *State) GetPlotTime() float64 {
	return s.app.Preferences().FloatWithFallback(KeyPlotTime, 0)
}

func (s *State) SetPlotTime(t float64) {
	s.app.Preferences().SetFloat(KeyPlotTime, t)
}

func (s *State) GetLastFile() string {
	return s.app.Preferences().String(KeyLastFile)
}

func (s *State) SetLastFile(name string) {
	s.app.Preferences().SetString(KeyLastFile, name)
}

// Snapshot is the full persisted state.
type Snapshot struct {
	Label    string
	PlotTime float64
	LastFile string
}

func (s *State) Load() Snapshot {
	return Snapshot{
		Label:    s.GetLabel(),
		PlotTime: s.GetPlotTime(),
		LastFile: s.GetLastFile(),
	}
}

func (s *State) Save(snap Snapshot) {
	s.SetLabel(snap.Label)
	s.SetPlotTime(snap.PlotTime)
	s.SetLastFile(snap.LastFile)
}

// Reset removes every persisted key so the next Load returns defaults.
func (s *State) Reset() {
	prefs := s.app.Preferences()
	prefs.RemoveValue(KeyLabel)
	prefs.RemoveValue(KeyPlotTime)
	prefs.RemoveValue(KeyLastFile)
}
