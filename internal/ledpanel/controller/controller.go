// Package controller implements the mode state machine that maps
// switch presses to LED patterns.
package controller

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/clambin/ledpanel/internal/ledpanel/controller/pattern"
	"github.com/prometheus/client_golang/prometheus"
)

// NumLEDs and NumSwitches fix the panel geometry.
const (
	NumLEDs     = 4
	NumSwitches = 4
)

// Switch assignments.
const (
	SwitchAllBlink = 0
	SwitchChase    = 1
	SwitchManual   = 2
	SwitchReset    = 3
)

// Mode is the panel's operating state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAllBlink
	ModeChase
	ModeManual
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAllBlink:
		return "all-blink"
	case ModeChase:
		return "chase"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// LEDs is the output driver the controller and its workers write to.
type LEDs interface {
	Set(id int, on bool) error
	States() []bool
}

// Controller owns the current mode, the manually set LED states and
// the active pattern worker. All transitions run under one lock, so a
// press is fully processed before the next one starts. The worker
// never takes that lock, which makes it safe to join the worker while
// holding it (see stopWorker).
type Controller struct {
	leds        LEDs
	interval    time.Duration
	logger      *slog.Logger
	transitions *prometheus.CounterVec
	lock        sync.RWMutex
	mode        Mode
	manual      [NumLEDs]bool
	blink       pattern.Pattern
	chase       pattern.Pattern
	worker      *worker
	stopped     bool
}

var _ prometheus.Collector = &Controller{}

func New(leds LEDs, interval time.Duration, logger *slog.Logger) (*Controller, error) {
	blink, err := pattern.New("blink")
	if err != nil {
		return nil, fmt.Errorf("blink: %w", err)
	}
	chase, err := pattern.New("chase")
	if err != nil {
		return nil, fmt.Errorf("chase: %w", err)
	}
	return &Controller{
		leds:     leds,
		interval: interval,
		logger:   logger,
		blink:    blink,
		chase:    chase,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledpanel_mode_transitions_total",
			Help: "Number of mode transitions",
		}, []string{"mode"}),
	}, nil
}

type action int

const (
	actionNone action = iota
	actionStartBlink
	actionStartChase
	actionEnterManual
	actionToggleLED
	actionReset
)

type transition struct {
	mode     Mode
	switchID int
}

// transitionTable spells out all sixteen (mode, switch) combinations,
// so no press can fall through to an unintended action. In manual
// mode, switches 0 to 2 toggle their LED and only switch 3 leaves the
// mode. In every other mode, each switch selects its mode.
var transitionTable = map[transition]action{
	{ModeIdle, SwitchAllBlink}: actionStartBlink,
	{ModeIdle, SwitchChase}:    actionStartChase,
	{ModeIdle, SwitchManual}:   actionEnterManual,
	{ModeIdle, SwitchReset}:    actionReset,

	{ModeAllBlink, SwitchAllBlink}: actionStartBlink,
	{ModeAllBlink, SwitchChase}:    actionStartChase,
	{ModeAllBlink, SwitchManual}:   actionEnterManual,
	{ModeAllBlink, SwitchReset}:    actionReset,

	{ModeChase, SwitchAllBlink}: actionStartBlink,
	{ModeChase, SwitchChase}:    actionStartChase,
	{ModeChase, SwitchManual}:   actionEnterManual,
	{ModeChase, SwitchReset}:    actionReset,

	{ModeManual, 0}:           actionToggleLED,
	{ModeManual, 1}:           actionToggleLED,
	{ModeManual, 2}:           actionToggleLED,
	{ModeManual, SwitchReset}: actionReset,
}

// HandleEvent processes one accepted press. It returns once the
// transition is complete: any previous worker has fully stopped and
// the new state is in effect.
func (c *Controller) HandleEvent(switchID int) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.stopped {
		c.logger.Debug("controller stopped, ignoring press", "switch", switchID)
		return
	}
	if switchID < 0 || switchID >= NumSwitches {
		c.logger.Warn("ignoring press of unknown switch", "switch", switchID)
		return
	}

	switch transitionTable[transition{mode: c.mode, switchID: switchID}] {
	case actionStartBlink:
		c.startPattern(ModeAllBlink, c.blink)
	case actionStartChase:
		c.startPattern(ModeChase, c.chase)
	case actionEnterManual:
		c.enterManual()
	case actionToggleLED:
		c.toggleLED(switchID)
	case actionReset:
		c.reset()
	}
}

// startPattern replaces the running worker (if any) with one driving
// the given pattern. Re-selecting the current mode restarts its
// pattern from the top.
func (c *Controller) startPattern(mode Mode, p pattern.Pattern) {
	c.stopWorker()
	p.Rewind()
	c.setMode(mode)
	c.worker = startWorker(p, c.leds, c.interval, c.logger.With("pattern", mode.String()))
}

func (c *Controller) enterManual() {
	c.stopWorker()
	c.clearLEDs()
	c.manual = [NumLEDs]bool{}
	c.setMode(ModeManual)
}

func (c *Controller) toggleLED(id int) {
	c.manual[id] = !c.manual[id]
	if err := c.leds.Set(id, c.manual[id]); err != nil {
		c.logger.Error("failed to set led", "led", id, "err", err)
	}
	c.logger.Debug("led toggled", "led", id, "on", c.manual[id])
}

func (c *Controller) reset() {
	c.stopWorker()
	c.clearLEDs()
	c.manual = [NumLEDs]bool{}
	c.blink.Reset()
	c.chase.Reset()
	c.setMode(ModeIdle)
}

func (c *Controller) setMode(mode Mode) {
	c.mode = mode
	c.transitions.WithLabelValues(mode.String()).Inc()
	c.logger.Info("mode changed", "mode", mode.String())
}

func (c *Controller) clearLEDs() {
	for id := range NumLEDs {
		if err := c.leds.Set(id, false); err != nil {
			c.logger.Error("failed to clear led", "led", id, "err", err)
		}
	}
}

// stopWorker cancels the active worker, if any, and waits for it to
// finish. Safe to call with the lock held: the worker only watches its
// own cancel channel and never needs the controller's lock.
func (c *Controller) stopWorker() {
	if c.worker != nil {
		c.worker.stop()
		c.worker = nil
	}
}

// Mode returns the current operating mode.
func (c *Controller) Mode() Mode {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.mode
}

// State returns the current operating mode and LED states.
func (c *Controller) State() (Mode, []bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.mode, c.leds.States()
}

// Stop stops any running pattern, switches all LEDs off and ignores
// all further presses.
func (c *Controller) Stop() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.stopped {
		return
	}
	c.reset()
	c.stopped = true
}

var (
	modeMetric = prometheus.NewDesc(
		"ledpanel_mode",
		"Operating mode (1 for the active mode)",
		[]string{"mode"},
		nil,
	)
	ledMetric = prometheus.NewDesc(
		"ledpanel_led_on",
		"LED state (1 when lit)",
		[]string{"led"},
		nil,
	)
)

// Describe implements the prometheus.Collector interface.
func (c *Controller) Describe(ch chan<- *prometheus.Desc) {
	ch <- modeMetric
	ch <- ledMetric
	c.transitions.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (c *Controller) Collect(ch chan<- prometheus.Metric) {
	mode, states := c.State()
	for m := ModeIdle; m <= ModeManual; m++ {
		var value float64
		if m == mode {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(modeMetric, prometheus.GaugeValue, value, m.String())
	}
	for id, on := range states {
		var value float64
		if on {
			value = 1
		}
		ch <- prometheus.MustNewConstMetric(ledMetric, prometheus.GaugeValue, value, strconv.Itoa(id))
	}
	c.transitions.Collect(ch)
}
