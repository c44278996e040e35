// Package ledpanel assembles the mode controller, its hardware
// bindings and the HTTP API into one runnable panel.
package ledpanel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/clambin/ledpanel/gpio"
	"github.com/clambin/ledpanel/internal/configuration"
	"github.com/clambin/ledpanel/internal/ledpanel/controller"
	"github.com/clambin/ledpanel/internal/ledpanel/debounce"
	"github.com/clambin/ledpanel/led"
	"github.com/prometheus/client_golang/prometheus"
)

// LEDBank is an LED driver plus the teardown the panel performs on
// shutdown.
type LEDBank interface {
	controller.LEDs
	Off() error
	Close() error
}

type Panel struct {
	http.Handler
	controller *controller.Controller
	debouncer  *debounce.Filter
	leds       LEDBank
	buttons    *gpio.Buttons
	metrics    *metrics
	logger     *slog.Logger
	closeOnce  sync.Once
	closeErr   error
	closed     atomic.Bool
}

// New builds a Panel from the configuration: the LED bank (GPIO lines,
// or sysfs LEDs when led-paths is set), the debounce filter, the
// controller and the HTTP routes, and finally the hardware buttons.
// Without a GPIO chip, presses only arrive through the API.
func New(cfg configuration.Configuration, r prometheus.Registerer, logger *slog.Logger) (*Panel, error) {
	leds, err := makeLEDs(cfg.Hardware)
	if err != nil {
		return nil, fmt.Errorf("leds: %w", err)
	}
	p, err := newPanel(cfg, leds, r, logger)
	if err != nil {
		_ = leds.Close()
		return nil, err
	}
	if cfg.Hardware.Chip != "" {
		if p.buttons, err = makeButtons(cfg.Hardware, p.Press); err != nil {
			_ = leds.Close()
			return nil, fmt.Errorf("buttons: %w", err)
		}
	} else {
		logger.Info("no gpio chip configured, presses only arrive through the api")
	}
	return p, nil
}

func newPanel(cfg configuration.Configuration, leds LEDBank, r prometheus.Registerer, logger *slog.Logger) (*Panel, error) {
	c, err := controller.New(leds, cfg.Panel.Interval, logger.With("component", "controller"))
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	p := Panel{
		controller: c,
		debouncer:  debounce.New(controller.NumSwitches, cfg.Panel.Debounce),
		leds:       leds,
		metrics:    newMetrics(),
		logger:     logger,
	}
	m := http.NewServeMux()
	routes(m, &p)
	p.Handler = m
	if r != nil {
		r.MustRegister(p.metrics, c)
	}
	return &p, nil
}

func makeLEDs(cfg configuration.HardwareConfiguration) (LEDBank, error) {
	if cfg.LEDPaths != "" {
		dirs, err := cfg.LEDDirs()
		if err != nil {
			return nil, err
		}
		bank, err := led.NewBank(dirs)
		if err != nil {
			return nil, err
		}
		return bank, nil
	}
	if cfg.Chip == "" {
		return nil, errors.New("no led output configured")
	}
	offsets, err := cfg.LEDOffsets()
	if err != nil {
		return nil, err
	}
	leds, err := gpio.NewLEDs(cfg.Chip, offsets)
	if err != nil {
		return nil, err
	}
	return leds, nil
}

func makeButtons(cfg configuration.HardwareConfiguration, handler func(int)) (*gpio.Buttons, error) {
	offsets, err := cfg.SwitchOffsets()
	if err != nil {
		return nil, err
	}
	edge, err := gpio.ParseEdge(cfg.Edge)
	if err != nil {
		return nil, err
	}
	return gpio.NewButtons(cfg.Chip, offsets, edge, handler)
}

// Press feeds one raw press, from a hardware button or the API,
// through the debounce filter into the controller.
func (p *Panel) Press(switchID int) {
	if switchID < 0 || switchID >= controller.NumSwitches {
		p.logger.Warn("ignoring press of unknown switch", "switch", switchID)
		return
	}
	result := "accepted"
	if p.debouncer.Accept(switchID, time.Now()) {
		p.controller.HandleEvent(switchID)
	} else {
		result = "rejected"
		p.logger.Debug("press debounced", "switch", switchID)
	}
	p.metrics.presses.WithLabelValues(strconv.Itoa(switchID), result).Inc()
}

// Run keeps the panel running until the context is cancelled, then
// shuts it down.
func (p *Panel) Run(ctx context.Context) error {
	p.logger.Info("panel started")
	defer p.logger.Info("panel stopped")
	<-ctx.Done()
	return p.Close()
}

// Close stops the running pattern, forces all LEDs off and releases
// the button and LED lines. Safe to call more than once.
func (p *Panel) Close() error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		p.controller.Stop()
		errs := []error{p.leds.Off()}
		if p.buttons != nil {
			errs = append(errs, p.buttons.Close())
		}
		errs = append(errs, p.leds.Close())
		p.closeErr = errors.Join(errs...)
	})
	return p.closeErr
}

// Healthy reports whether the panel is serving presses.
func (p *Panel) Healthy() bool {
	return !p.closed.Load()
}
