// Package led drives LEDs exposed through the sysfs LED class
// (/sys/class/leds).
package led

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// LED is one entry under /sys/class/leds. Writes use the LED's
// max_brightness, or 255 if the attribute is absent.
type LED struct {
	path string
	max  int
}

func New(path string) (*LED, error) {
	if _, err := os.Stat(filepath.Join(path, "brightness")); err != nil {
		return nil, fmt.Errorf("brightness: %w", err)
	}
	l := LED{path: path, max: 255}
	if content, err := os.ReadFile(filepath.Join(l.path, "max_brightness")); err == nil {
		if max, err := strconv.Atoi(strings.TrimSpace(string(content))); err == nil && max > 0 {
			l.max = max
		}
	}
	return &l, nil
}

// Set switches the LED fully on or off.
func (l *LED) Set(on bool) error {
	value := "0"
	if on {
		value = strconv.Itoa(l.max)
	}
	return os.WriteFile(filepath.Join(l.path, "brightness"), []byte(value), 0644)
}

// Get reports whether the LED is currently lit.
func (l *LED) Get() (bool, error) {
	content, err := os.ReadFile(filepath.Join(l.path, "brightness"))
	if err != nil {
		return false, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return false, err
	}
	return value > 0, nil
}

// Triggers returns the kernel triggers the LED supports.
func (l *LED) Triggers() ([]string, error) {
	content, err := os.ReadFile(filepath.Join(l.path, "trigger"))
	if err != nil {
		return nil, err
	}
	triggers := strings.Fields(string(content))
	if len(triggers) == 0 {
		return nil, errors.New("no triggers found")
	}
	for i, trigger := range triggers {
		triggers[i] = strings.Trim(trigger, "[]")
	}
	return triggers, nil
}

// ActiveTrigger returns the trigger currently driving the LED, or ""
// if none is marked active.
func (l *LED) ActiveTrigger() (string, error) {
	content, err := os.ReadFile(filepath.Join(l.path, "trigger"))
	if err != nil {
		return "", err
	}
	for _, trigger := range strings.Fields(string(content)) {
		if strings.HasPrefix(trigger, "[") && strings.HasSuffix(trigger, "]") {
			return strings.Trim(trigger, "[]"), nil
		}
	}
	return "", nil
}

// SetTrigger activates one of the LED's supported triggers. Setting
// "none" gives userspace full control of the brightness.
func (l *LED) SetTrigger(name string) error {
	triggers, err := l.Triggers()
	if err != nil {
		return err
	}
	if !slices.Contains(triggers, name) {
		return fmt.Errorf("invalid trigger: %s", name)
	}
	return os.WriteFile(filepath.Join(l.path, "trigger"), []byte(name), 0644)
}
