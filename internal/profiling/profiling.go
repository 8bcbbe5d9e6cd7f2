// Package profiling accumulates named CPU durations for the current frame.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Entry is one named total.
type Entry struct {
	Name     string
	Duration time.Duration
}

// Frame holds the totals recorded since the last Reset.
type Frame struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	now    func() time.Time
}

func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration), now: time.Now}
}

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer frame.Track("scene.RenderAll")()
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.Add(name, f.now().Sub(start))
	}
}

func (f *Frame) Add(name string, d time.Duration) {
	f.mu.Lock()
	f.totals[name] += d
	f.mu.Unlock()
}

// Reset clears the totals. Call it at the start of each frame.
func (f *Frame) Reset() {
	f.mu.Lock()
	clear(f.totals)
	f.mu.Unlock()
}

func (f *Frame) Snapshot() map[string]time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// Total sums every entry.
func (f *Frame) Total() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum time.Duration
	for _, v := range f.totals {
		sum += v
	}
	return sum
}

// Top returns the n largest entries, longest first. Ties sort by name.
func (f *Frame) Top(n int) []Entry {
	ss := f.Snapshot()
	list := make([]Entry, 0, len(ss))
	for k, v := range ss {
		list = append(list, Entry{Name: k, Duration: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Duration != list[j].Duration {
			return list[i].Duration > list[j].Duration
		}
		return list[i].Name < list[j].Name
	})
	if n < len(list) {
		list = list[:max(n, 0)]
	}
	return list
}

// TopN formats Top(n) as "engine.Render:4.2ms, engine.Swap:1ms".
func (f *Frame) TopN(n int) string {
	top := f.Top(n)
	parts := make([]string, len(top))
	for i, e := range top {
		parts[i] = e.Name + ":" + formatMs(e.Duration)
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := fmt.Sprintf("%.1f", ms)
	return strings.TrimSuffix(s, ".0") + "ms"
}

var defaultFrame = NewFrame()

// Default is the process-wide frame shared by the package-level helpers.
func Default() *Frame { return defaultFrame }

func Track(name string) func() { return defaultFrame.Track(name) }

func TopN(n int) string { return defaultFrame.TopN(n) }
