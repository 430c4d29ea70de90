package shutdown

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) component(name string) Func {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order = append(r.order, name)
	}
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func TestShutdownReverseOrder(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil, time.Second)

	m.Register("state", rec.component("state"))
	m.Register("picker", rec.component("picker"))
	m.Register("frames", rec.component("frames"))

	m.Shutdown()

	got := rec.calls()
	expected := []string{"frames", "picker", "state"}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d shutdown calls, got %v", len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Shutdown %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil, time.Second)
	m.Register("state", rec.component("state"))

	m.Shutdown()
	m.Shutdown()

	if n := len(rec.calls()); n != 1 {
		t.Errorf("Expected component to be shut down once, got %d", n)
	}
}

func TestShutdownTimeoutDetachesStuckComponent(t *testing.T) {
	rec := &recorder{}
	stuck := make(chan struct{})
	t.Cleanup(func() { close(stuck) })

	m := NewManager(nil, 20*time.Millisecond)
	m.Register("state", rec.component("state"))
	m.Register("picker", Func(func() { <-stuck }))

	start := time.Now()
	m.Shutdown()

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Shutdown took %s, expected the stuck component to be detached", elapsed)
	}
	if got := rec.calls(); len(got) != 1 || got[0] != "state" {
		t.Errorf("Expected remaining components to still shut down, got %v", got)
	}
}

func TestNewManagerDefaultTimeout(t *testing.T) {
	m := NewManager(nil, 0)

	if m.timeout != DefaultTimeout {
		t.Errorf("Expected default timeout %s, got %s", DefaultTimeout, m.timeout)
	}
}
