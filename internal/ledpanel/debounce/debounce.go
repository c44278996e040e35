// Package debounce filters out the spurious presses a mechanical
// switch generates while its contacts settle.
package debounce

import (
	"sync"
	"time"
)

// Filter drops presses that arrive too soon after the last accepted
// press of the same switch. Switches are debounced independently.
type Filter struct {
	window time.Duration
	lock   sync.Mutex
	last   []time.Time
}

func New(switches int, window time.Duration) *Filter {
	return &Filter{
		window: window,
		last:   make([]time.Time, switches),
	}
}

// Accept reports whether a press of the given switch at the given time
// should be processed. Rejected presses leave the filter unchanged, so
// a bouncing contact cannot postpone the next valid press.
func (f *Filter) Accept(switchID int, now time.Time) bool {
	if switchID < 0 || switchID >= len(f.last) {
		return false
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	if now.Sub(f.last[switchID]) < f.window {
		return false
	}
	f.last[switchID] = now
	return true
}
