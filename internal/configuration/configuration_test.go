package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetConfiguration(t *testing.T) {
	want := Configuration{
		Addr:           ":8080",
		PrometheusAddr: ":9090",
		Logging:        LoggingConfiguration{Format: "text"},
		Panel: PanelConfiguration{
			Interval: time.Second,
			Debounce: 200 * time.Millisecond,
		},
		Hardware: HardwareConfiguration{
			Chip:     "gpiochip0",
			LEDs:     "23,24,25,1",
			Switches: "4,17,27,22",
			Edge:     "rising",
		},
	}
	assert.Equal(t, want, GetConfiguration())
}

func TestHardwareConfiguration_LEDOffsets(t *testing.T) {
	testCases := []struct {
		name    string
		leds    string
		want    []int
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "valid", leds: "23,24,25,1", want: []int{23, 24, 25, 1}, wantErr: assert.NoError},
		{name: "spaces", leds: "23, 24, 25, 1", want: []int{23, 24, 25, 1}, wantErr: assert.NoError},
		{name: "too few", leds: "23,24,25", wantErr: assert.Error},
		{name: "too many", leds: "23,24,25,1,2", wantErr: assert.Error},
		{name: "not a number", leds: "23,24,25,x", wantErr: assert.Error},
		{name: "empty", leds: "", wantErr: assert.Error},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := HardwareConfiguration{LEDs: testCase.leds}.LEDOffsets()
			testCase.wantErr(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestHardwareConfiguration_SwitchOffsets(t *testing.T) {
	got, err := HardwareConfiguration{Switches: "4,17,27,22"}.SwitchOffsets()
	assert.NoError(t, err)
	assert.Equal(t, []int{4, 17, 27, 22}, got)

	_, err = HardwareConfiguration{Switches: "4"}.SwitchOffsets()
	assert.Error(t, err)
}

func TestHardwareConfiguration_LEDDirs(t *testing.T) {
	dirs, err := HardwareConfiguration{LEDPaths: "/a,/b,/c,/d"}.LEDDirs()
	assert.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b", "/c", "/d"}, dirs)

	_, err = HardwareConfiguration{LEDPaths: "/a"}.LEDDirs()
	assert.Error(t, err)
}
