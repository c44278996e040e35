package gpio

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// LEDs is a bank of GPIO output lines, one per LED. All lines are
// claimed up front. If any line cannot be claimed, the ones already
// claimed are released again, in reverse order.
type LEDs struct {
	lines  []line
	lock   sync.RWMutex
	states []bool
}

func NewLEDs(chip string, offsets []int) (*LEDs, error) {
	return newLEDs(chip, offsets, requestOutputLine)
}

func newLEDs(chip string, offsets []int, request func(chip string, offset int) (line, error)) (*LEDs, error) {
	lines := make([]line, 0, len(offsets))
	for _, offset := range offsets {
		l, err := request(chip, offset)
		if err != nil {
			_ = closeLines(lines)
			return nil, fmt.Errorf("gpio %d: %w", offset, err)
		}
		lines = append(lines, l)
	}
	return &LEDs{lines: lines, states: make([]bool, len(lines))}, nil
}

// Set switches one LED on or off.
func (l *LEDs) Set(id int, on bool) error {
	if id < 0 || id >= len(l.lines) {
		return fmt.Errorf("invalid led: %d", id)
	}
	var value int
	if on {
		value = 1
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	if err := l.lines[id].SetValue(value); err != nil {
		return fmt.Errorf("led %d: %w", id, err)
	}
	l.states[id] = on
	return nil
}

// States returns the on/off state of all LEDs.
func (l *LEDs) States() []bool {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return slices.Clone(l.states)
}

// Off switches all LEDs off.
func (l *LEDs) Off() error {
	var errs []error
	for id := range l.lines {
		errs = append(errs, l.Set(id, false))
	}
	return errors.Join(errs...)
}

// Close releases all LED lines, in reverse order.
func (l *LEDs) Close() error {
	return closeLines(l.lines)
}
