package profiling

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler for tick-level insights.

// Stat is the time spent under one name and how many calls added to it
type Stat struct {
	Total time.Duration
	Calls int
}

var (
	mu          sync.Mutex
	frameTotals = make(map[string]Stat)
	runTotals   = make(map[string]Stat)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("meshing.fast")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		add(frameTotals, name, d)
		add(runTotals, name, d)
		mu.Unlock()
	}
}

func add(m map[string]Stat, name string, d time.Duration) {
	s := m[name]
	s.Total += d
	s.Calls++
	m[name] = s
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Reset clears both the frame and the run totals
func Reset() {
	mu.Lock()
	clear(frameTotals)
	clear(runTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	return copyStats(frameTotals)
}

// Cumulative returns a copy of the totals since the last Reset
func Cumulative() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	return copyStats(runTotals)
}

func copyStats(m map[string]Stat) map[string]Stat {
	out := make(map[string]Stat, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TopN formats the n most expensive entries of the current frame.
// Example: "meshing.fast:4.2ms(3), render.cache:2.1ms(12)"
func TopN(n int) string {
	return Format(Snapshot(), n)
}

// Format renders the n largest entries of stats, largest first
func Format(stats map[string]Stat, n int) string {
	names := make([]string, 0, len(stats))
	for k := range stats {
		names = append(names, k)
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(stats[b].Total, stats[a].Total), strings.Compare(a, b))
	})
	n = min(n, len(names))

	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		s := stats[name]
		ms := float64(s.Total.Microseconds()) / 1000.0
		parts = append(parts, name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms("+strconv.Itoa(s.Calls)+")")
	}
	return strings.Join(parts, ", ")
}
