// Package kernel selects the scalar reference inner-product implementation
// used by the resampler's sample driver.
//
// The resampler core defines one contract per (format, tap-interpolation)
// pair and a single conforming scalar implementation ("generic"). The
// registry exists so that a vectorized implementation can register itself
// later under the same contract without touching the driver; today only
// the generic entry is present. Selection happens once per process via
// sync.Once and is safe to call concurrently, mirroring the CPU-feature
// probe it consults.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-resampler/internal/cpu"
)

// Entry names a registered reference-kernel implementation.
type Entry struct {
	// Name identifies the implementation (e.g. "generic", "avx2").
	Name string
	// Priority breaks ties when more than one entry is compatible with the
	// detected CPU. Higher wins.
	Priority int
	// Compatible reports whether this entry may run on the given CPU.
	Compatible func(cpu.Features) bool
}

var (
	mu      sync.Mutex
	entries []Entry

	selectOnce sync.Once
	selected   Entry
)

func init() {
	Register(Entry{
		Name:     "generic",
		Priority: 0,
		Compatible: func(cpu.Features) bool {
			return true
		},
	})
}

// Register adds an implementation entry. Intended to be called from init()
// functions of architecture-specific packages; safe for concurrent use.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, e)
}

// Selected returns the implementation chosen for the current process,
// probing CPU features exactly once.
func Selected() Entry {
	selectOnce.Do(func() {
		features := cpu.DetectFeatures()

		mu.Lock()
		defer mu.Unlock()

		best := Entry{Name: "generic", Compatible: func(cpu.Features) bool { return true }}
		for _, e := range entries {
			if e.Compatible == nil || !e.Compatible(features) {
				continue
			}
			if e.Priority >= best.Priority {
				best = e
			}
		}
		selected = best
	})
	return selected
}

// reset is used by tests to force re-selection.
func reset() {
	selectOnce = sync.Once{}
}
