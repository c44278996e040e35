// Package configuration parses the command line options.
package configuration

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/clambin/ledpanel/internal/ledpanel/controller"
)

type Configuration struct {
	Addr           string
	PrometheusAddr string
	Debug          bool
	Logging        LoggingConfiguration
	Panel          PanelConfiguration
	Hardware       HardwareConfiguration
}

type LoggingConfiguration struct {
	Format  string
	Journal bool
}

type PanelConfiguration struct {
	Interval time.Duration
	Debounce time.Duration
}

type HardwareConfiguration struct {
	Chip     string
	LEDs     string
	Switches string
	Edge     string
	LEDPaths string
}

// LEDOffsets parses the leds flag into GPIO line offsets.
func (h HardwareConfiguration) LEDOffsets() ([]int, error) {
	return parseOffsets(h.LEDs, controller.NumLEDs)
}

// SwitchOffsets parses the switches flag into GPIO line offsets.
func (h HardwareConfiguration) SwitchOffsets() ([]int, error) {
	return parseOffsets(h.Switches, controller.NumSwitches)
}

// LEDDirs parses the led-paths flag into sysfs LED directories.
func (h HardwareConfiguration) LEDDirs() ([]string, error) {
	dirs := strings.Split(h.LEDPaths, ",")
	if len(dirs) != controller.NumLEDs {
		return nil, fmt.Errorf("need %d led paths, got %d", controller.NumLEDs, len(dirs))
	}
	return dirs, nil
}

func parseOffsets(list string, count int) ([]int, error) {
	fields := strings.Split(list, ",")
	if len(fields) != count {
		return nil, fmt.Errorf("need %d gpio offsets, got %d", count, len(fields))
	}
	offsets := make([]int, len(fields))
	for i, field := range fields {
		offset, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid gpio offset: %s", field)
		}
		offsets[i] = offset
	}
	return offsets, nil
}

func GetConfiguration() Configuration {
	var cfg Configuration
	flag.StringVar(&cfg.Addr, "addr", ":8080", "api server address")
	flag.StringVar(&cfg.PrometheusAddr, "prometheus", ":9090", "prometheus metrics address")
	flag.BoolVar(&cfg.Debug, "debug", false, "log debug messages")
	flag.StringVar(&cfg.Logging.Format, "log-format", "text", "log format (text or json)")
	flag.BoolVar(&cfg.Logging.Journal, "log-journal", false, "log to the systemd journal when available")
	flag.DurationVar(&cfg.Panel.Interval, "interval", time.Second, "delay between pattern steps")
	flag.DurationVar(&cfg.Panel.Debounce, "debounce", 200*time.Millisecond, "minimum delay between presses of the same switch")
	flag.StringVar(&cfg.Hardware.Chip, "chip", "gpiochip0", "gpio chip with the leds and switches (empty: api-only, leds via led-paths)")
	flag.StringVar(&cfg.Hardware.LEDs, "leds", "23,24,25,1", "gpio line offsets of the leds")
	flag.StringVar(&cfg.Hardware.Switches, "switches", "4,17,27,22", "gpio line offsets of the switches")
	flag.StringVar(&cfg.Hardware.Edge, "edge", "rising", "switch trigger edge (rising or falling)")
	flag.StringVar(&cfg.Hardware.LEDPaths, "led-paths", "", "sysfs led directories to drive instead of gpio lines")

	flag.Parse()
	return cfg
}
