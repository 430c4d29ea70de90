package components

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"wavescope/internal/wave"
)

const tolerance = 1e-3

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestWavePlotProjection(t *testing.T) {
	test.NewApp()

	plot := NewWavePlot(9)
	plot.SetPoints(wave.Points(9, wave.XMin, wave.XMax, math.Pi/2))
	plot.GetContainer().Resize(fyne.NewSize(400, 300))

	first := plot.lines[0]
	if !near(float64(first.Position1.X), 0) {
		t.Errorf("Expected first segment to start at x=0, got %f", first.Position1.X)
	}
	if !near(float64(first.Position1.Y), 150) {
		t.Errorf("Expected sin(-2pi)=0 to sit on the axis at y=150, got %f", first.Position1.Y)
	}

	// x = -3pi/4 gives 0.5*sin(-3pi/2) = 0.5, drawn above the axis
	expectedY := 150 - 0.5/PlotYRange*150
	if !near(float64(first.Position2.Y), expectedY) {
		t.Errorf("Expected peak at y=%f, got %f", expectedY, first.Position2.Y)
	}

	last := plot.lines[len(plot.lines)-1]
	if !near(float64(last.Position2.X), 400) {
		t.Errorf("Expected last segment to end at x=400, got %f", last.Position2.X)
	}
	if !last.Visible() {
		t.Error("Expected all segments visible when points fill the plot")
	}

	if plot.axis.Position2.X != 400 || plot.axis.Position1.Y != 150 {
		t.Errorf("Unexpected axis %v -> %v", plot.axis.Position1, plot.axis.Position2)
	}
}

func TestWavePlotHidesUnusedSegments(t *testing.T) {
	test.NewApp()

	plot := NewWavePlot(10)
	plot.GetContainer().Resize(fyne.NewSize(200, 100))
	plot.SetPoints(wave.Points(4, wave.XMin, wave.XMax, 1))

	for i, line := range plot.lines {
		visible := i < 3
		if line.Visible() != visible {
			t.Errorf("Segment %d: expected visible=%v", i, visible)
		}
	}
}

func TestWavePlotMinSize(t *testing.T) {
	test.NewApp()

	plot := NewWavePlot(1)
	if len(plot.lines) != 1 {
		t.Errorf("Expected sample count to be raised to 2 (1 segment), got %d segments", len(plot.lines))
	}

	size := plot.GetContainer().MinSize()
	if size.Width < PlotMinWidth || size.Height < PlotMinHeight {
		t.Errorf("Expected min size at least %dx%d, got %v", PlotMinWidth, PlotMinHeight, size)
	}
}

func TestSidePanelIncrement(t *testing.T) {
	test.NewApp()

	panel := NewSidePanel("Hello World!", DefaultValue)

	var changes []float64
	panel.SetValueChangeHandler(func(v float64) {
		changes = append(changes, v)
	})

	test.Tap(panel.incrementButton)

	if !near(panel.Value(), DefaultValue+1) {
		t.Errorf("Expected value %f after increment, got %f", DefaultValue+1, panel.Value())
	}
	if len(changes) != 1 {
		t.Fatalf("Expected one change notification, got %d", len(changes))
	}
	if panel.valueLabel.Text != "value: 3.7" {
		t.Errorf("Unexpected value label %q", panel.valueLabel.Text)
	}
}

func TestSidePanelIncrementClamps(t *testing.T) {
	test.NewApp()

	panel := NewSidePanel("", 9.5)
	test.Tap(panel.incrementButton)
	test.Tap(panel.incrementButton)

	if !near(panel.Value(), ValueMax) {
		t.Errorf("Expected value clamped to %f, got %f", ValueMax, panel.Value())
	}
}

func TestSidePanelLabel(t *testing.T) {
	test.NewApp()

	panel := NewSidePanel("Hello World!", DefaultValue)
	if panel.Label() != "Hello World!" {
		t.Errorf("Expected initial label, got %q", panel.Label())
	}

	var got string
	panel.SetLabelChangeHandler(func(text string) {
		got = text
	})

	panel.SetLabel("sine")

	if got != "sine" {
		t.Errorf("Expected handler to receive 'sine', got %q", got)
	}
	if panel.Label() != "sine" {
		t.Errorf("Expected label 'sine', got %q", panel.Label())
	}
}

func TestStatusBar(t *testing.T) {
	test.NewApp()

	bar := NewStatusBar()
	if bar.Status() != "Ready" {
		t.Errorf("Expected initial status Ready, got %q", bar.Status())
	}
	if bar.File() != noFile {
		t.Errorf("Expected %q, got %q", noFile, bar.File())
	}

	bar.SetFile("a.txt")
	if bar.File() != "File: a.txt" {
		t.Errorf("Unexpected file label %q", bar.File())
	}
	bar.SetFile("")
	if bar.File() != noFile {
		t.Errorf("Expected cleared file label, got %q", bar.File())
	}

	tests := []struct {
		state    string
		pending  int
		expected string
	}{
		{"Idle", 0, "Idle"},
		{"AwaitingUser", 2, "AwaitingUser (2 queued)"},
	}
	for _, tc := range tests {
		bar.SetPicker(tc.state, tc.pending)
		if bar.Picker() != tc.expected {
			t.Errorf("SetPicker(%s, %d): expected %q, got %q", tc.state, tc.pending, tc.expected, bar.Picker())
		}
	}
}
