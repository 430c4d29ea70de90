package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"wavescope/internal/logger"
)

const (
	component = "ShutdownManager"

	DefaultTimeout = 5 * time.Second
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() {
	f()
}

type namedComponent struct {
	name      string
	component Shutdownable
}

type Manager struct {
	components []namedComponent
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
}

func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Manager{
		components: make([]namedComponent, 0),
		logger:     log,
		timeout:    timeout,
		done:       make(chan struct{}),
	}
}

// Register adds a component. Components shut down in reverse registration order.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, namedComponent{name: name, component: component})
}

// Listen runs Shutdown on SIGINT or SIGTERM, then calls onSignal.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

// Shutdown stops every registered component once. A component that does not
// return within the timeout is abandoned and the sequence continues.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		entry := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			entry.component.Shutdown()
		}()

		select {
		case <-done:
			m.logger.Debug(component, "component stopped", map[string]interface{}{
				"component": entry.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning(component, "component shutdown timeout, detaching", map[string]interface{}{
				"component": entry.name,
				"timeout":   m.timeout.String(),
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}
