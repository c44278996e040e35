package controller

import (
	"log/slog"
	"time"

	"github.com/clambin/ledpanel/internal/ledpanel/controller/pattern"
)

// worker drives one pattern until stopped. It owns its cancel and done
// channels, so cancellation never involves the controller's lock.
type worker struct {
	cancel chan struct{}
	done   chan struct{}
}

func startWorker(p pattern.Pattern, leds LEDs, interval time.Duration, logger *slog.Logger) *worker {
	w := worker{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.run(p, leds, interval, logger)
	return &w
}

// stop cancels the worker and waits for it to finish. A worker
// sleeping until its next step wakes up immediately.
func (w *worker) stop() {
	close(w.cancel)
	<-w.done
}

func (w *worker) run(p pattern.Pattern, leds LEDs, interval time.Duration, logger *slog.Logger) {
	defer close(w.done)
	logger.Debug("pattern started")
	defer logger.Debug("pattern stopped")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		next := p.Next(NumLEDs)
		logger.Debug("next frame", "leds", frame(next))
		for id, on := range next {
			select {
			case <-w.cancel:
				return
			default:
			}
			if err := leds.Set(id, on); err != nil {
				logger.Error("failed to set led", "led", id, "err", err)
			}
		}
		select {
		case <-w.cancel:
			return
		case <-ticker.C:
		}
	}
}

var _ slog.LogValuer = frame{}

// frame renders an LED frame as a bit string in logs.
type frame []bool

func (f frame) LogValue() slog.Value {
	bits := make([]byte, len(f))
	for i, on := range f {
		bits[i] = '0'
		if on {
			bits[i] = '1'
		}
	}
	return slog.StringValue(string(bits))
}
