package timing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type timingKey struct{}

type timingInfo struct {
	operation string
	start     time.Time
}

// Tracker collects wall-clock durations per named operation.
type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

func (tt *Tracker) StartTiming(ctx context.Context, operation string) context.Context {
	if !tt.isEnabled() {
		return ctx
	}

	return context.WithValue(ctx, timingKey{}, timingInfo{
		operation: operation,
		start:     tt.now(),
	})
}

// EndTiming records the duration started by StartTiming and returns it.
func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	if !tt.isEnabled() {
		return 0
	}

	info, ok := ctx.Value(timingKey{}).(timingInfo)
	if !ok {
		return 0
	}

	duration := tt.now().Sub(info.start)

	tt.mu.Lock()
	tt.timings[info.operation] = append(tt.timings[info.operation], duration)
	tt.mu.Unlock()

	return duration
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

// Report renders one line per operation, sorted by name.
func (tt *Tracker) Report() string {
	tt.mu.RLock()
	operations := make([]string, 0, len(tt.timings))
	for operation := range tt.timings {
		operations = append(operations, operation)
	}
	tt.mu.RUnlock()

	if len(operations) == 0 {
		return "No timings recorded"
	}
	sort.Strings(operations)

	var b strings.Builder
	for i, operation := range operations {
		if i > 0 {
			b.WriteString("\n")
		}
		timings := tt.GetTimings(operation)
		b.WriteString(fmt.Sprintf("%s: %d run(s), avg %s", operation, len(timings),
			tt.GetAverageTime(operation).Round(time.Millisecond)))
	}
	return b.String()
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}
