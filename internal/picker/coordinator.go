package picker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"wavescope/internal/logger"
	"wavescope/internal/timing"
)

const (
	component = "Picker"

	OperationPickFile = "pick_file"
	OperationReadFile = "read_file"
)

// Coordinator owns the request and result queues and the worker servicing them.
type Coordinator struct {
	dialog  Dialog
	opts    Options
	logger  logger.Logger
	timings *timing.Tracker

	requests *queue[PickRequest]
	results  *queue[FileSelection]

	state atomic.Int32
	// mu orders taking a request against Shutdown's detach decision.
	mu sync.Mutex

	ctx       context.Context
	cancel    context.CancelFunc
	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

func NewCoordinator(dialog Dialog, opts Options, log logger.Logger, timings *timing.Tracker) *Coordinator {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if timings == nil {
		timings = timing.NewTracker()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Coordinator{
		dialog:   dialog,
		opts:     opts,
		logger:   log,
		timings:  timings,
		requests: newQueue[PickRequest](),
		results:  newQueue[FileSelection](),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start launches the worker. Calling it again has no effect.
func (c *Coordinator) Start() {
	c.startOnce.Do(func() {
		c.logger.Debug(component, "worker starting", map[string]interface{}{
			"filter":    c.opts.FilterName,
			"start_dir": c.opts.StartDir,
		})
		go c.run()
	})
}

// RequestPick queues a dialog invocation. It never blocks.
func (c *Coordinator) RequestPick() {
	if !c.requests.push(PickRequest{}) {
		c.logger.Warning(component, "pick request dropped after shutdown", nil)
		return
	}
	c.logger.Debug(component, "pick requested", map[string]interface{}{
		"pending": c.requests.len(),
	})
}

// PollSelection returns the next selection produced by the worker, if any. It never blocks.
func (c *Coordinator) PollSelection() (FileSelection, bool) {
	return c.results.tryPop()
}

// State reports whether the worker is waiting on an open dialog.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Pending reports queued requests not yet taken by the worker.
func (c *Coordinator) Pending() int {
	return c.requests.len()
}

// Shutdown stops accepting requests and waits for the worker to exit. An open
// dialog cannot be canceled, so in that case the worker is detached instead of
// joined; it exits once the user resolves the dialog and its result is dropped.
func (c *Coordinator) Shutdown() {
	c.stopOnce.Do(func() {
		dropped := c.requests.close()

		c.mu.Lock()
		c.cancel()
		awaiting := c.State() == StateAwaitingUser
		c.mu.Unlock()

		c.logger.Info(component, "shutdown initiated", map[string]interface{}{
			"dropped_requests": dropped,
			"awaiting_user":    awaiting,
		})

		// never started: consume startOnce so a late Start stays a no-op
		c.startOnce.Do(func() { close(c.done) })
		if awaiting {
			c.logger.Warning(component, "dialog still open, worker detached", nil)
		} else {
			<-c.done
		}

		if unread := c.results.close(); unread > 0 {
			c.logger.Warning(component, "unread selections discarded", map[string]interface{}{
				"count": unread,
			})
		}
		c.logger.Info(component, "shutdown completed", nil)
	})
}

func (c *Coordinator) run() {
	defer close(c.done)

	for {
		c.mu.Lock()
		if c.ctx.Err() != nil {
			c.mu.Unlock()
			return
		}
		_, ok := c.requests.tryPop()
		if ok {
			c.state.Store(int32(StateAwaitingUser))
		}
		c.mu.Unlock()

		if ok {
			c.serve()
			continue
		}

		select {
		case <-c.requests.ready:
		case <-c.ctx.Done():
			return
		}
	}
}

// serve runs one dialog interaction. run has already moved the state to
// AwaitingUser; serve returns it to Idle.
func (c *Coordinator) serve() {
	defer c.state.Store(int32(StateIdle))

	ctx := c.timings.StartTiming(context.Background(), OperationPickFile)
	file, err := c.dialog.PickFile(c.opts)
	waited := c.timings.EndTiming(ctx)

	if err != nil {
		if errors.Is(err, ErrCanceled) {
			c.logger.Debug(component, "dialog canceled", map[string]interface{}{
				"waited": waited.String(),
			})
			return
		}
		c.logger.Error(component, fmt.Errorf("file dialog: %w", err), nil)
		return
	}
	if file == nil {
		return
	}

	selection := c.read(file)
	if !c.results.push(selection) {
		c.logger.Warning(component, "selection dropped, consumer gone", map[string]interface{}{
			"file": selection.Name,
		})
	}
}

func (c *Coordinator) read(file File) FileSelection {
	selection := FileSelection{
		Name: file.Name(),
		Path: file.Path(),
	}

	ctx := c.timings.StartTiming(context.Background(), OperationReadFile)
	data, err := file.Read()
	c.timings.EndTiming(ctx)

	if err != nil {
		selection.Err = fmt.Errorf("read %s: %w", selection.Name, err)
		c.logger.Error(component, selection.Err, map[string]interface{}{
			"path": selection.Path,
		})
		return selection
	}

	selection.Size = len(data)
	c.logger.Info(component, "file selected", map[string]interface{}{
		"file":  selection.Name,
		"path":  selection.Path,
		"bytes": selection.Size,
	})
	return selection
}
