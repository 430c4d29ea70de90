package gui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// FrameLoop drives the repaint cycle: on every tick it hands onFrame to the UI
// thread with the time elapsed since the previous tick.
type FrameLoop struct {
	interval time.Duration
	onFrame  func(dt time.Duration)
	dispatch func(func())

	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

func NewFrameLoop(frameRate int, onFrame func(dt time.Duration)) *FrameLoop {
	if frameRate < 1 {
		frameRate = 1
	}

	return &FrameLoop{
		interval: time.Second / time.Duration(frameRate),
		onFrame:  onFrame,
		dispatch: fyne.Do,
		done:     make(chan struct{}),
	}
}

// SetDispatcher replaces fyne.Do, for running frames without a driver.
func (fl *FrameLoop) SetDispatcher(dispatch func(func())) {
	fl.dispatch = dispatch
}

func (fl *FrameLoop) Interval() time.Duration {
	return fl.interval
}

func (fl *FrameLoop) Start() {
	fl.startOnce.Do(func() {
		fl.wg.Add(1)
		go fl.run()
	})
}

func (fl *FrameLoop) run() {
	defer fl.wg.Done()

	ticker := time.NewTicker(fl.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			fl.dispatch(func() {
				fl.onFrame(dt)
			})
		case <-fl.done:
			return
		}
	}
}

// Shutdown stops the ticker. Frames already dispatched may still run.
func (fl *FrameLoop) Shutdown() {
	fl.stopOnce.Do(func() {
		close(fl.done)
		fl.wg.Wait()
	})
}
