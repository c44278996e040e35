package testutils

import (
	"fmt"
	"slices"
	"sync"
)

// FakeLEDs is an in-memory LED bank. It records a snapshot of the bank
// after every successful write, so tests can reconstruct the frames a
// pattern produced.
type FakeLEDs struct {
	Err       error
	lock      sync.Mutex
	states    []bool
	snapshots [][]bool
	closed    bool
}

func NewFakeLEDs(count int) *FakeLEDs {
	return &FakeLEDs{states: make([]bool, count)}
}

func (f *FakeLEDs) Set(id int, on bool) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if id < 0 || id >= len(f.states) {
		return fmt.Errorf("invalid led: %d", id)
	}
	f.states[id] = on
	f.snapshots = append(f.snapshots, slices.Clone(f.states))
	return nil
}

func (f *FakeLEDs) States() []bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	return slices.Clone(f.states)
}

func (f *FakeLEDs) Off() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	for id := range f.states {
		f.states[id] = false
	}
	return nil
}

func (f *FakeLEDs) Close() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.closed = true
	return nil
}

func (f *FakeLEDs) Closed() bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.closed
}

// Writes returns the number of successful writes so far.
func (f *FakeLEDs) Writes() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.snapshots)
}

// Snapshots returns the recorded bank states, one per write.
func (f *FakeLEDs) Snapshots() [][]bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	return slices.Clone(f.snapshots)
}
