// Package timing keeps per-operation durations for the session summary.
package timing

import (
	"sort"
	"sync"
	"time"
)

// Stats summarises one operation.
type Stats struct {
	Count   int
	Total   time.Duration
	Average time.Duration
	Max     time.Duration
}

type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
	enabled bool
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
	}
}

// Start returns a function that records the time elapsed since Start when
// called.
func (tt *Tracker) Start(operation string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		tt.Record(operation, d)
		return d
	}
}

func (tt *Tracker) Record(operation string, d time.Duration) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if !tt.enabled {
		return
	}
	tt.timings[operation] = append(tt.timings[operation], d)
}

func (tt *Tracker) Stats(operation string) Stats {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return summarise(tt.timings[operation])
}

// Operations lists recorded operation names in sorted order.
func (tt *Tracker) Operations() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	names := make([]string, 0, len(tt.timings))
	for name := range tt.timings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

// Reset drops one operation, or everything when operation is empty.
func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}

func summarise(durations []time.Duration) Stats {
	var s Stats
	for _, d := range durations {
		s.Count++
		s.Total += d
		s.Max = max(s.Max, d)
	}
	if s.Count > 0 {
		s.Average = s.Total / time.Duration(s.Count)
	}
	return s
}
