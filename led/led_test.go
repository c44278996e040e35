package led

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLED(t *testing.T, maxBrightness string) string {
	t.Helper()
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "brightness"), []byte("0"), 0644))
	if maxBrightness != "" {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "max_brightness"), []byte(maxBrightness), 0644))
	}
	return tmpDir
}

func TestLED_Set(t *testing.T) {
	testCases := []struct {
		name          string
		maxBrightness string
		want          string
	}{
		{name: "default", maxBrightness: "", want: "255"},
		{name: "single", maxBrightness: "1", want: "1"},
		{name: "dimmable", maxBrightness: "100", want: "100"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			path := makeLED(t, testCase.maxBrightness)
			l, err := New(path)
			require.NoError(t, err)

			require.NoError(t, l.Set(true))
			content, err := os.ReadFile(filepath.Join(path, "brightness"))
			require.NoError(t, err)
			assert.Equal(t, testCase.want, string(content))
			on, err := l.Get()
			require.NoError(t, err)
			assert.True(t, on)

			require.NoError(t, l.Set(false))
			on, err = l.Get()
			require.NoError(t, err)
			assert.False(t, on)
		})
	}
}

func TestNew_NotALED(t *testing.T) {
	_, err := New(t.TempDir())
	assert.Error(t, err)
}

func TestLED_Triggers(t *testing.T) {
	testCases := []struct {
		name     string
		triggers string
		want     []string
		wantErr  assert.ErrorAssertionFunc
	}{
		{
			name:     "valid",
			triggers: "[none] timer oneshot heartbeat",
			want:     []string{"none", "timer", "oneshot", "heartbeat"},
			wantErr:  assert.NoError,
		},
		{
			name:     "none active",
			triggers: "none timer oneshot heartbeat",
			want:     []string{"none", "timer", "oneshot", "heartbeat"},
			wantErr:  assert.NoError,
		},
		{
			name:    "missing",
			wantErr: assert.Error,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			path := makeLED(t, "255")
			if testCase.triggers != "" {
				require.NoError(t, os.WriteFile(filepath.Join(path, "trigger"), []byte(testCase.triggers), 0644))
			}
			l, err := New(path)
			require.NoError(t, err)

			got, err := l.Triggers()
			testCase.wantErr(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestLED_ActiveTrigger(t *testing.T) {
	testCases := []struct {
		name     string
		triggers string
		want     string
		wantErr  assert.ErrorAssertionFunc
	}{
		{name: "first", triggers: "[none] timer heartbeat", want: "none", wantErr: assert.NoError},
		{name: "middle", triggers: "none [timer] heartbeat", want: "timer", wantErr: assert.NoError},
		{name: "none active", triggers: "none timer heartbeat", want: "", wantErr: assert.NoError},
		{name: "missing", wantErr: assert.Error},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			path := makeLED(t, "255")
			if testCase.triggers != "" {
				require.NoError(t, os.WriteFile(filepath.Join(path, "trigger"), []byte(testCase.triggers), 0644))
			}
			l, err := New(path)
			require.NoError(t, err)

			got, err := l.ActiveTrigger()
			testCase.wantErr(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestLED_SetTrigger(t *testing.T) {
	path := makeLED(t, "255")
	require.NoError(t, os.WriteFile(filepath.Join(path, "trigger"), []byte("[none] timer heartbeat"), 0644))
	l, err := New(path)
	require.NoError(t, err)

	require.NoError(t, l.SetTrigger("heartbeat"))
	content, err := os.ReadFile(filepath.Join(path, "trigger"))
	require.NoError(t, err)
	assert.Equal(t, "heartbeat", string(content))

	assert.Error(t, l.SetTrigger("disco"))
}
