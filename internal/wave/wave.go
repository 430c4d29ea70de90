// Package wave samples the animated curve drawn in the central panel.
package wave

import "math"

const (
	Amplitude = 0.5
	XMin      = -math.Pi
	XMax      = math.Pi
)

type Point struct {
	X float64
	Y float64
}

// Sample evaluates the curve at x for animation time t.
func Sample(x, t float64) float64 {
	return Amplitude * math.Sin(2*x) * math.Sin(t)
}

// Points returns n evenly spaced samples over [xMin, xMax], both ends included.
// n below 2 is raised to 2.
func Points(n int, xMin, xMax, t float64) []Point {
	if n < 2 {
		n = 2
	}

	points := make([]Point, n)
	step := (xMax - xMin) / float64(n-1)
	for i := range points {
		x := xMin + float64(i)*step
		if i == n-1 {
			x = xMax
		}
		points[i] = Point{X: x, Y: Sample(x, t)}
	}
	return points
}
