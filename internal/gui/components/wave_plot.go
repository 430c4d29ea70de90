package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"wavescope/internal/wave"
)

const (
	PlotMinWidth  = 320
	PlotMinHeight = 240

	// PlotYRange is the half-height of the visible y interval.
	PlotYRange = 0.6
)

var (
	plotBackground = color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	plotAxis       = color.NRGBA{R: 96, G: 96, B: 96, A: 255}
	waveColor      = color.NRGBA{R: 200, G: 100, B: 100, A: 255}
)

// WavePlot draws a polyline through the latest points. It is its own layout so
// the line segments are reprojected whenever the container is resized.
type WavePlot struct {
	container  *fyne.Container
	background *canvas.Rectangle
	axis       *canvas.Line
	lines      []*canvas.Line
	points     []wave.Point
	xMin       float64
	xMax       float64
}

func NewWavePlot(samples int) *WavePlot {
	if samples < 2 {
		samples = 2
	}

	wp := &WavePlot{
		background: canvas.NewRectangle(plotBackground),
		axis:       canvas.NewLine(plotAxis),
		lines:      make([]*canvas.Line, samples-1),
		xMin:       wave.XMin,
		xMax:       wave.XMax,
	}
	wp.axis.StrokeWidth = 1

	objects := []fyne.CanvasObject{wp.background, wp.axis}
	for i := range wp.lines {
		line := canvas.NewLine(waveColor)
		line.StrokeWidth = 2
		line.Hide()
		wp.lines[i] = line
		objects = append(objects, line)
	}

	wp.container = container.New(wp, objects...)
	return wp
}

func (wp *WavePlot) GetContainer() *fyne.Container {
	return wp.container
}

// SetPoints replaces the drawn curve. Points beyond the sample count are ignored.
func (wp *WavePlot) SetPoints(points []wave.Point) {
	wp.points = points
	wp.container.Refresh()
}

func (wp *WavePlot) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	wp.background.Move(fyne.NewPos(0, 0))
	wp.background.Resize(size)

	midY := size.Height / 2
	wp.axis.Position1 = fyne.NewPos(0, midY)
	wp.axis.Position2 = fyne.NewPos(size.Width, midY)

	for i, line := range wp.lines {
		if i+1 >= len(wp.points) {
			line.Hide()
			continue
		}
		line.Position1 = wp.project(wp.points[i], size)
		line.Position2 = wp.project(wp.points[i+1], size)
		line.Show()
	}
}

func (wp *WavePlot) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(PlotMinWidth, PlotMinHeight)
}

func (wp *WavePlot) project(p wave.Point, size fyne.Size) fyne.Position {
	x := (p.X - wp.xMin) / (wp.xMax - wp.xMin) * float64(size.Width)
	half := float64(size.Height) / 2
	y := half - p.Y/PlotYRange*half
	return fyne.NewPos(float32(x), float32(y))
}
